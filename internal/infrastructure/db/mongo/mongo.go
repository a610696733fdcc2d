// Package mongo is the document Storage Provider backed by MongoDB.
package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ndzibs/freight-site/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

const (
	collectionUsers        = "users"
	collectionContent      = "content"
	collectionServices     = "services"
	collectionPricing      = "pricing"
	collectionTestimonials = "testimonials"
	collectionContacts     = "contacts"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// Storage exposes the mongo repositories as one ports.Storage.
type Storage struct {
	client       *mongo.Client
	users        *UserRepository
	content      *ContentRepository
	services     *ServiceRepository
	pricing      *PricingRepository
	testimonials *TestimonialRepository
	contacts     *ContactRepository
}

func NewStorage(client *mongo.Client, db *mongo.Database) *Storage {
	return &Storage{
		client:       client,
		users:        NewUserRepository(db),
		content:      NewContentRepository(db),
		services:     NewServiceRepository(db),
		pricing:      NewPricingRepository(db),
		testimonials: NewTestimonialRepository(db),
		contacts:     NewContactRepository(db),
	}
}

func (s *Storage) Users() ports.UserRepository               { return s.users }
func (s *Storage) Content() ports.ContentRepository          { return s.content }
func (s *Storage) Services() ports.ServiceRepository         { return s.services }
func (s *Storage) Pricing() ports.PricingRepository          { return s.pricing }
func (s *Storage) Testimonials() ports.TestimonialRepository { return s.testimonials }
func (s *Storage) Contacts() ports.ContactRepository         { return s.contacts }

func (s *Storage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return s.client.Ping(ctx, nil)
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique and lookup indexes every collection relies on.
func (s *Storage) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)
	specs := []struct {
		coll    *mongo.Collection
		indexes []mongo.IndexModel
	}{
		{s.users.col, []mongo.IndexModel{{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique}}},
		{s.content.col, []mongo.IndexModel{{Keys: bson.D{{Key: "key", Value: 1}}, Options: unique}}},
		{s.services.col, activeIndexes()},
		{s.pricing.col, activeIndexes()},
		{s.testimonials.col, activeIndexes()},
		{s.contacts.col, []mongo.IndexModel{{Keys: bson.D{{Key: "seq", Value: 1}}}}},
	}
	for _, spec := range specs {
		if _, err := spec.coll.Indexes().CreateMany(ctx, spec.indexes); err != nil {
			return fmt.Errorf("create indexes on %s: %w", spec.coll.Name(), err)
		}
	}
	return nil
}

func activeIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "active", Value: 1}, {Key: "seq", Value: 1}}},
	}
}

var _ ports.Storage = (*Storage)(nil)

// newIdentity returns a fresh string id and an insertion sequence used for
// ordering, since random ids carry no order.
func newIdentity() (string, int64) {
	return uuid.NewString(), time.Now().UnixNano()
}

var bySeq = options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})

// findAll decodes every document matching filter, ordered by insertion,
// and converts it with conv. The result is never nil.
func findAll[D any, T any](ctx context.Context, col *mongo.Collection, filter bson.M, conv func(D) T) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := col.Find(ctx, filter, bySeq)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", col.Name(), err)
	}
	defer cur.Close(ctx)

	out := make([]T, 0)
	for cur.Next(ctx) {
		var d D
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode %s: %w", col.Name(), err)
		}
		out = append(out, conv(d))
	}
	return out, cur.Err()
}

// deleteByID reports whether a document with id was removed.
func deleteByID(ctx context.Context, col *mongo.Collection, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete from %s: %w", col.Name(), err)
	}
	return res.DeletedCount > 0, nil
}
