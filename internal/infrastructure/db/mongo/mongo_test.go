package mongo

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/ndzibs/freight-site/internal/core/domain"
)

func TestServiceRepository_GetActive(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes nullable fields", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)
		ns := mt.DB.Name() + "." + collectionServices
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: "svc-1"},
				{Key: "seq", Value: int64(1)},
				{Key: "name", Value: "Air Freight"},
				{Key: "type", Value: domain.ServiceTypeAir},
				{Key: "description", Value: "Fast"},
				{Key: "next_date", Value: nil},
				{Key: "frequency", Value: "Weekly Shipments"},
				{Key: "features", Value: nil},
				{Key: "active", Value: true},
			}),
		)

		out, err := repo.GetActive(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 {
			t.Fatalf("expected 1 service, got %d", len(out))
		}
		if out[0].NextDate != nil || out[0].Features != nil {
			t.Errorf("expected null nextDate and features, got %+v", out[0])
		}
		if out[0].Frequency == nil || *out[0].Frequency != "Weekly Shipments" {
			t.Errorf("unexpected frequency: %v", out[0].Frequency)
		}
	})

	mt.Run("empty collection yields empty slice", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)
		ns := mt.DB.Name() + "." + collectionServices
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		out, err := repo.GetActive(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out == nil || len(out) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", out)
		}
	})
}

func TestServiceRepository_UpdateNotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unknown id", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)
		ns := mt.DB.Name() + "." + collectionServices
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		name := "x"
		_, err := repo.Update(context.Background(), "missing", domain.ServicePatch{Name: &name})
		if !errors.Is(err, domain.ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})
}

func TestServiceRepository_Delete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("reports whether a document was removed", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)
		mt.AddMockResponses(
			bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}},
			bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}},
		)

		ok, err := repo.Delete(context.Background(), "svc-1")
		if err != nil || !ok {
			t.Fatalf("first delete: ok=%v err=%v", ok, err)
		}
		ok, err = repo.Delete(context.Background(), "svc-1")
		if err != nil || ok {
			t.Fatalf("second delete: ok=%v err=%v", ok, err)
		}
	})
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicate username", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := repo.Create(context.Background(), domain.UserInput{Username: "admin", PasswordHash: "h"})
		if !errors.Is(err, domain.ErrUserExists) {
			t.Fatalf("expected ErrUserExists, got %v", err)
		}
	})

	mt.Run("role forced to admin", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		u, err := repo.Create(context.Background(), domain.UserInput{Username: "ops", PasswordHash: "h"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Role != domain.RoleAdmin || u.ID == "" {
			t.Errorf("unexpected user: %+v", u)
		}
	})
}

func TestContentRepository_UpdateByKey(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the upserted document", func(mt *mtest.T) {
		repo := NewContentRepository(mt.DB)
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{
				{Key: "_id", Value: "c-1"},
				{Key: "seq", Value: int64(1)},
				{Key: "key", Value: "hero_title"},
				{Key: "value", Value: "Ship with us"},
			}},
		})

		c, err := repo.UpdateByKey(context.Background(), "hero_title", "Ship with us")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Key != "hero_title" || c.Value != "Ship with us" {
			t.Errorf("unexpected content: %+v", c)
		}
	})
}

func TestContactRepository_UpdateStatusNotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unknown id", func(mt *mtest.T) {
		repo := NewContactRepository(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})

		_, err := repo.UpdateStatus(context.Background(), "nope", domain.ContactStatusClosed)
		if !errors.Is(err, domain.ErrContactNotFound) {
			t.Fatalf("expected ErrContactNotFound, got %v", err)
		}
	})
}
