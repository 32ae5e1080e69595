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
)

const collectionOffertes = "prijs_offertes"

// OfferteRepository implements ports.OfferteRepository on MongoDB.
type OfferteRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewOfferteRepository(db *mongo.Database) *OfferteRepository {
	return &OfferteRepository{db: db, coll: db.Collection(collectionOffertes)}
}

type mongoOfferte struct {
	ID             int       `bson:"_id"`
	TransportType  string    `bson:"transport_type"`
	Gewicht        string    `bson:"gewicht"`
	Afmetingen     string    `bson:"afmetingen"`
	Spoed          string    `bson:"spoed"`
	Naam           string    `bson:"naam"`
	Bedrijf        string    `bson:"bedrijf,omitempty"`
	Email          string    `bson:"email"`
	Telefoon       string    `bson:"telefoon"`
	Ophaladres     string    `bson:"ophaladres"`
	Afleveradres   string    `bson:"afleveradres"`
	Bericht        string    `bson:"bericht,omitempty"`
	PrijsIndicatie string    `bson:"prijs_indicatie"`
	IPAddress      string    `bson:"ip_address,omitempty"`
	IsVerwerkt     bool      `bson:"is_verwerkt"`
	CreatedAt      time.Time `bson:"created_at"`
}

func (mo mongoOfferte) toDomain() *domain.PrijsOfferte {
	return &domain.PrijsOfferte{
		ID:             mo.ID,
		TransportType:  mo.TransportType,
		Gewicht:        mo.Gewicht,
		Afmetingen:     mo.Afmetingen,
		Spoed:          mo.Spoed,
		Naam:           mo.Naam,
		Bedrijf:        mo.Bedrijf,
		Email:          mo.Email,
		Telefoon:       mo.Telefoon,
		Ophaladres:     mo.Ophaladres,
		Afleveradres:   mo.Afleveradres,
		Bericht:        mo.Bericht,
		PrijsIndicatie: mo.PrijsIndicatie,
		IPAddress:      mo.IPAddress,
		IsVerwerkt:     mo.IsVerwerkt,
		CreatedAt:      mo.CreatedAt,
	}
}

func (r *OfferteRepository) Create(ctx context.Context, offerte *domain.PrijsOfferte) (*domain.PrijsOfferte, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collectionOffertes)
	if err != nil {
		return nil, err
	}

	createdAt := offerte.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	doc := mongoOfferte{
		ID:             id,
		TransportType:  offerte.TransportType,
		Gewicht:        offerte.Gewicht,
		Afmetingen:     offerte.Afmetingen,
		Spoed:          offerte.Spoed,
		Naam:           offerte.Naam,
		Bedrijf:        offerte.Bedrijf,
		Email:          offerte.Email,
		Telefoon:       offerte.Telefoon,
		Ophaladres:     offerte.Ophaladres,
		Afleveradres:   offerte.Afleveradres,
		Bericht:        offerte.Bericht,
		PrijsIndicatie: offerte.PrijsIndicatie,
		IPAddress:      offerte.IPAddress,
		CreatedAt:      createdAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert prijsofferte: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *OfferteRepository) FindByID(ctx context.Context, id int) (*domain.PrijsOfferte, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mo mongoOfferte
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mo); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOfferteNotFound
		}
		return nil, fmt.Errorf("find prijsofferte: %w", err)
	}
	return mo.toDomain(), nil
}

// List returns all offertes ordered newest-first by createdAt.
func (r *OfferteRepository) List(ctx context.Context) ([]*domain.PrijsOfferte, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	sort := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, sort)
	if err != nil {
		return nil, fmt.Errorf("list prijsoffertes: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.PrijsOfferte
	for cursor.Next(ctx) {
		var mo mongoOfferte
		if err := cursor.Decode(&mo); err != nil {
			return nil, fmt.Errorf("decode prijsofferte: %w", err)
		}
		out = append(out, mo.toDomain())
	}
	return out, cursor.Err()
}

func (r *OfferteRepository) MarkVerwerkt(ctx context.Context, id int) (*domain.PrijsOfferte, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mo mongoOfferte
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_verwerkt": true}},
		opts,
	).Decode(&mo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOfferteNotFound
		}
		return nil, fmt.Errorf("mark prijsofferte processed: %w", err)
	}
	return mo.toDomain(), nil
}
