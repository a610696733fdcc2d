package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ndzibs/freight-site/internal/core/domain"
)

type ContactRepository struct {
	col *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{col: db.Collection(collectionContacts)}
}

type contactDoc struct {
	ID          string    `bson:"_id"`
	Seq         int64     `bson:"seq"`
	FirstName   string    `bson:"first_name"`
	LastName    string    `bson:"last_name"`
	Email       string    `bson:"email"`
	Phone       *string   `bson:"phone"`
	ServiceType *string   `bson:"service_type"`
	Message     string    `bson:"message"`
	Status      string    `bson:"status"`
	CreatedAt   time.Time `bson:"created_at"`
}

func (d contactDoc) toDomain() domain.Contact {
	return domain.Contact{
		ID: d.ID, FirstName: d.FirstName, LastName: d.LastName, Email: d.Email,
		Phone: d.Phone, ServiceType: d.ServiceType, Message: d.Message,
		Status: d.Status, CreatedAt: d.CreatedAt,
	}
}

func (r *ContactRepository) GetAll(ctx context.Context) ([]domain.Contact, error) {
	return findAll(ctx, r.col, bson.M{}, contactDoc.toDomain)
}

func (r *ContactRepository) Create(ctx context.Context, in domain.ContactInput) (*domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := domain.NewContact(in)
	id, seq := newIdentity()
	d := contactDoc{
		ID:          id,
		Seq:         seq,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		ServiceType: c.ServiceType,
		Message:     c.Message,
		Status:      c.Status,
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
	if _, err := r.col.InsertOne(ctx, d); err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	out := d.toDomain()
	return &out, nil
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var d contactDoc
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}}, opts).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("update contact status: %w", err)
	}
	out := d.toDomain()
	return &out, nil
}
