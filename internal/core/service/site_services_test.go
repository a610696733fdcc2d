package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ndzibs/freight-site/internal/core/domain"
	"github.com/ndzibs/freight-site/internal/infrastructure/db/memory"
)

func ptr[T any](v T) *T { return &v }

func TestCatalogService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(memory.NewEmpty().Services(), zerolog.Nop())

	created, err := svc.CreateService(ctx, domain.ServiceInput{
		Name: "Sea Freight", Type: domain.ServiceTypeSea, Description: "FCL and LCL",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created.Active {
		t.Fatalf("expected new service to be active")
	}

	if _, err := svc.UpdateService(ctx, created.ID, domain.ServicePatch{Active: ptr(false)}); err != nil {
		t.Fatalf("update: %v", err)
	}
	active, err := svc.GetActiveServices(ctx)
	if err != nil {
		t.Fatalf("get active: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected no active services, got %d", len(active))
	}

	ok, err := svc.DeleteService(ctx, created.ID)
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	ok, err = svc.DeleteService(ctx, created.ID)
	if err != nil || ok {
		t.Fatalf("second delete: ok=%v err=%v", ok, err)
	}
}

func TestCatalogService_UpdateMissing(t *testing.T) {
	svc := NewCatalogService(memory.NewEmpty().Services(), zerolog.Nop())

	_, err := svc.UpdateService(context.Background(), "missing", domain.ServicePatch{Name: ptr("x")})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPricingService_UpdateRateOnly(t *testing.T) {
	ctx := context.Background()
	svc := NewPricingService(memory.NewEmpty().Pricing(), zerolog.Nop())

	created, err := svc.CreatePricing(ctx, domain.PricingInput{
		Category: "General Cargo", Description: "Everyday goods", Rate: 4500, Unit: "per CBM",
		Features: []string{"Door pickup"}, Color: "blue", Icon: "box",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdatePricing(ctx, created.ID, domain.PricingPatch{Rate: ptr(6000)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Rate != 6000 || updated.Category != "General Cargo" || len(updated.Features) != 1 {
		t.Fatalf("unexpected pricing after update: %+v", updated)
	}
}

func TestTestimonialService_DefaultRating(t *testing.T) {
	svc := NewTestimonialService(memory.NewEmpty().Testimonials(), zerolog.Nop())

	created, err := svc.CreateTestimonial(context.Background(), domain.TestimonialInput{
		Name: "Maria", Location: "Cebu", Content: "Reliable",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Rating != domain.DefaultRating || !created.Active {
		t.Fatalf("unexpected defaults: %+v", created)
	}
}

func TestContentService_UpsertsUnknownKey(t *testing.T) {
	ctx := context.Background()
	svc := NewContentService(memory.NewEmpty().Content(), zerolog.Nop())

	if _, err := svc.UpdateContent(ctx, "new_banner", "Hello"); err != nil {
		t.Fatalf("first update: %v", err)
	}
	if _, err := svc.UpdateContent(ctx, "new_banner", "Hello again"); err != nil {
		t.Fatalf("second update: %v", err)
	}

	all, err := svc.GetAllContent(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 1 || all[0].Value != "Hello again" {
		t.Fatalf("expected one record with the latest value, got %+v", all)
	}
}
