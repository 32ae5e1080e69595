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

const collectionContact = "contact_messages"

// ContactRepository implements ports.ContactRepository on MongoDB.
type ContactRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{db: db, coll: db.Collection(collectionContact)}
}

type mongoContact struct {
	ID           int       `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	Phone        string    `bson:"phone,omitempty"`
	Location     string    `bson:"location,omitempty"`
	Message      string    `bson:"message"`
	IPAddress    string    `bson:"ip_address,omitempty"`
	IsBeantwoord bool      `bson:"is_beantwoord"`
	CreatedAt    time.Time `bson:"created_at"`
}

func (mc mongoContact) toDomain() *domain.ContactMessage {
	return &domain.ContactMessage{
		ID:           mc.ID,
		Name:         mc.Name,
		Email:        mc.Email,
		Phone:        mc.Phone,
		Location:     mc.Location,
		Message:      mc.Message,
		IPAddress:    mc.IPAddress,
		IsBeantwoord: mc.IsBeantwoord,
		CreatedAt:    mc.CreatedAt,
	}
}

func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collectionContact)
	if err != nil {
		return nil, err
	}

	createdAt := msg.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	doc := mongoContact{
		ID:        id,
		Name:      msg.Name,
		Email:     msg.Email,
		Phone:     msg.Phone,
		Location:  msg.Location,
		Message:   msg.Message,
		IPAddress: msg.IPAddress,
		CreatedAt: createdAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert contact message: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id int) (*domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoContact
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBerichtNotFound
		}
		return nil, fmt.Errorf("find contact message: %w", err)
	}
	return mc.toDomain(), nil
}

// List returns all messages ordered newest-first by createdAt.
func (r *ContactRepository) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	sort := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, sort)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.ContactMessage
	for cursor.Next(ctx) {
		var mc mongoContact
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode contact message: %w", err)
		}
		out = append(out, mc.toDomain())
	}
	return out, cursor.Err()
}

func (r *ContactRepository) MarkBeantwoord(ctx context.Context, id int) (*domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mc mongoContact
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_beantwoord": true}},
		opts,
	).Decode(&mc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBerichtNotFound
		}
		return nil, fmt.Errorf("mark contact message answered: %w", err)
	}
	return mc.toDomain(), nil
}
