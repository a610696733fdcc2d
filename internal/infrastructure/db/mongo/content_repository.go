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

type ContentRepository struct {
	col *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{col: db.Collection(collectionContent)}
}

type contentDoc struct {
	ID        string    `bson:"_id"`
	Seq       int64     `bson:"seq"`
	Key       string    `bson:"key"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (d contentDoc) toDomain() domain.Content {
	return domain.Content{ID: d.ID, Key: d.Key, Value: d.Value, UpdatedAt: d.UpdatedAt}
}

func (r *ContentRepository) GetAll(ctx context.Context) ([]domain.Content, error) {
	return findAll(ctx, r.col, bson.M{}, contentDoc.toDomain)
}

func (r *ContentRepository) GetByKey(ctx context.Context, key string) (*domain.Content, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d contentDoc
	if err := r.col.FindOne(ctx, bson.M{"key": key}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContentNotFound
		}
		return nil, fmt.Errorf("find content: %w", err)
	}
	c := d.toDomain()
	return &c, nil
}

// UpdateByKey upserts in one FindOneAndUpdate. The unique index on key turns
// a lost race between two inserting writers into domain.ErrDuplicateKey.
func (r *ContentRepository) UpdateByKey(ctx context.Context, key, value string) (*domain.Content, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, seq := newIdentity()
	update := bson.M{
		"$set":         bson.M{"value": value, "updated_at": time.Now().UTC()},
		"$setOnInsert": bson.M{"_id": id, "seq": seq},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var d contentDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"key": key}, update, opts).Decode(&d); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("upsert content %q: %w", key, domain.ErrDuplicateKey)
		}
		return nil, fmt.Errorf("upsert content: %w", err)
	}
	c := d.toDomain()
	return &c, nil
}
