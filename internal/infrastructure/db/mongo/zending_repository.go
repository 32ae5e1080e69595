package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/priorityparcel/portal-api/internal/core/domain"
	"github.com/priorityparcel/portal-api/internal/core/ports"
)

const (
	collectionZendingen = "zendingen"
	collectionUpdates   = "zending_updates"
)

// ZendingRepository implements ports.ZendingRepository on MongoDB.
type ZendingRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewZendingRepository(db *mongo.Database) *ZendingRepository {
	return &ZendingRepository{db: db, coll: db.Collection(collectionZendingen)}
}

func (r *ZendingRepository) Create(ctx context.Context, z *domain.Zending) (*domain.Zending, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collectionZendingen)
	if err != nil {
		return nil, err
	}

	stored := *z
	stored.ID = id

	if _, err := r.coll.InsertOne(ctx, stored); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateZending
		}
		return nil, fmt.Errorf("insert zending: %w", err)
	}
	return &stored, nil
}

func (r *ZendingRepository) FindByID(ctx context.Context, id int) (*domain.Zending, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ZendingRepository) FindByTrackingCode(ctx context.Context, code string) (*domain.Zending, error) {
	return r.findOne(ctx, bson.M{"tracking_code": code})
}

func (r *ZendingRepository) findOne(ctx context.Context, filter bson.M) (*domain.Zending, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var z domain.Zending
	if err := r.coll.FindOne(ctx, filter).Decode(&z); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrZendingNotFound
		}
		return nil, fmt.Errorf("find zending: %w", err)
	}
	return &z, nil
}

// ListByUser returns the user's zendingen ordered by verzendDatum descending.
func (r *ZendingRepository) ListByUser(ctx context.Context, userID int) ([]*domain.Zending, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *ZendingRepository) List(ctx context.Context) ([]*domain.Zending, error) {
	return r.list(ctx, bson.M{})
}

func (r *ZendingRepository) list(ctx context.Context, filter bson.M) ([]*domain.Zending, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	sort := options.Find().SetSort(bson.D{{Key: "verzend_datum", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, sort)
	if err != nil {
		return nil, fmt.Errorf("list zendingen: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Zending
	for cursor.Next(ctx) {
		var z domain.Zending
		if err := cursor.Decode(&z); err != nil {
			return nil, fmt.Errorf("decode zending: %w", err)
		}
		out = append(out, &z)
	}
	return out, cursor.Err()
}

// ApplyUpdate atomically sets status and laatste_update, stamping
// werkelijke_aflever_datum when the new status is afgeleverd.
func (r *ZendingRepository) ApplyUpdate(ctx context.Context, trackingCode string, status domain.ZendingStatus, locatie string, ts time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"status": string(status),
		"laatste_update": bson.M{
			"status":   string(status),
			"locatie":  locatie,
			"tijdstip": ts.UTC(),
		},
	}
	if status == domain.StatusAfgeleverd {
		set["werkelijke_aflever_datum"] = ts.UTC()
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"tracking_code": trackingCode}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("apply zending update: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrZendingNotFound
	}
	return nil
}

func (r *ZendingRepository) InsertUpdate(ctx context.Context, update *domain.ZendingUpdate) (*domain.ZendingUpdate, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collectionUpdates)
	if err != nil {
		return nil, err
	}

	stored := *update
	stored.ID = id
	if stored.Tijdstip.IsZero() {
		stored.Tijdstip = time.Now().UTC()
	}

	if _, err := r.db.Collection(collectionUpdates).InsertOne(ctx, stored); err != nil {
		return nil, fmt.Errorf("insert zending update: %w", err)
	}
	return &stored, nil
}

// ListUpdates returns the audit entries for one zending, oldest first.
func (r *ZendingRepository) ListUpdates(ctx context.Context, zendingID int) ([]*domain.ZendingUpdate, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	sort := options.Find().SetSort(bson.D{{Key: "tijdstip", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.db.Collection(collectionUpdates).Find(ctx, bson.M{"zending_id": zendingID}, sort)
	if err != nil {
		return nil, fmt.Errorf("list zending updates: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.ZendingUpdate
	for cursor.Next(ctx) {
		var u domain.ZendingUpdate
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("decode zending update: %w", err)
		}
		out = append(out, &u)
	}
	return out, cursor.Err()
}

// Stats computes the dashboard aggregates. Counts use server-side queries;
// the delivery average scans the delivered set, which stays small.
func (r *ZendingRepository) Stats(ctx context.Context) (*ports.ZendingStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	totaal, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("count zendingen: %w", err)
	}

	actief, err := r.coll.CountDocuments(ctx, bson.M{
		"status": bson.M{"$nin": bson.A{string(domain.StatusAfgeleverd), string(domain.StatusGeannuleerd)}},
	})
	if err != nil {
		return nil, fmt.Errorf("count active zendingen: %w", err)
	}

	stats := &ports.ZendingStats{Totaal: int(totaal), Actief: int(actief)}

	cursor, err := r.coll.Find(ctx, bson.M{"status": string(domain.StatusAfgeleverd)})
	if err != nil {
		return nil, fmt.Errorf("find delivered zendingen: %w", err)
	}
	defer cursor.Close(ctx)

	var totalDays float64
	var withDates int
	for cursor.Next(ctx) {
		var z domain.Zending
		if err := cursor.Decode(&z); err != nil {
			return nil, fmt.Errorf("decode zending: %w", err)
		}
		stats.Afgeleverd++
		if z.WerkelijkeAfleverDatum != nil {
			withDates++
			totalDays += z.WerkelijkeAfleverDatum.Sub(z.VerzendDatum).Hours() / 24
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	if withDates > 0 {
		stats.GemiddeldeLeverDays = totalDays / float64(withDates)
	}
	return stats, nil
}

// EnsureIndexes creates the indexes on the zending collections.
func (r *ZendingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "tracking_code", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return err
	}

	_, err := r.db.Collection(collectionUpdates).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "zending_id", Value: 1}},
	})
	return err
}
