package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ndzibs/freight-site/internal/core/domain"
	"github.com/ndzibs/freight-site/internal/core/ports"
	"github.com/ndzibs/freight-site/internal/infrastructure/db/seed"
	"github.com/ndzibs/freight-site/internal/infrastructure/db/storagetest"
)

func TestStore_Conformance(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) ports.Storage { return NewEmpty() })
}

func TestNew_SeedsDefaults(t *testing.T) {
	ctx := context.Background()
	s, err := New(ctx, seed.DefaultAdmin, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	content, _ := s.Content().GetAll(ctx)
	if len(content) != len(seed.Content()) {
		t.Errorf("expected %d content entries, got %d", len(seed.Content()), len(content))
	}
	services, _ := s.Services().GetActive(ctx)
	if len(services) != 2 {
		t.Errorf("expected 2 active services, got %d", len(services))
	}
	pricing, _ := s.Pricing().GetActive(ctx)
	if len(pricing) != 5 {
		t.Errorf("expected 5 pricing tiers, got %d", len(pricing))
	}
	testimonials, _ := s.Testimonials().GetActive(ctx)
	if len(testimonials) != 3 {
		t.Errorf("expected 3 testimonials, got %d", len(testimonials))
	}
	contacts, _ := s.Contacts().GetAll(ctx)
	if len(contacts) != 0 {
		t.Errorf("expected no contacts, got %d", len(contacts))
	}

	admin, err := s.Users().GetByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("admin user missing: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Errorf("unexpected role %q", admin.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")); err != nil {
		t.Errorf("seeded password must be stored as a bcrypt hash: %v", err)
	}

	// Air freight has no scheduled date: it must stay null.
	for _, svc := range services {
		if svc.Type == domain.ServiceTypeAir && svc.NextDate != nil {
			t.Errorf("air freight nextDate should be null, got %q", *svc.NextDate)
		}
	}
}

func TestSeedApply_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewEmpty()
	for i := 0; i < 2; i++ {
		if err := seed.Apply(ctx, s, seed.DefaultAdmin, zerolog.Nop()); err != nil {
			t.Fatalf("apply #%d: %v", i, err)
		}
	}
	services, _ := s.Services().GetAll(ctx)
	if len(services) != 2 {
		t.Fatalf("second apply must not duplicate records, got %d services", len(services))
	}
}

func TestStore_GetAll_PreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewEmpty()
	for i := 0; i < 5; i++ {
		if _, err := s.Pricing().Create(ctx, domain.PricingInput{Category: fmt.Sprintf("c%d", i), Rate: i}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	all, _ := s.Pricing().GetAll(ctx)
	if _, err := s.Pricing().Delete(ctx, all[2].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	all, _ = s.Pricing().GetAll(ctx)
	want := []string{"c0", "c1", "c3", "c4"}
	for i, p := range all {
		if p.Category != want[i] {
			t.Fatalf("position %d: got %s, want %s", i, p.Category, want[i])
		}
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewEmpty()
	created, _ := s.Services().Create(ctx, domain.ServiceInput{Name: "n", Type: domain.ServiceTypeSea, Description: "d", Features: []string{"a"}})
	created.Features[0] = "mutated"
	created.Name = "mutated"

	all, _ := s.Services().GetAll(ctx)
	if all[0].Name != "n" || all[0].Features[0] != "a" {
		t.Fatalf("store shares memory with caller: %+v", all[0])
	}
}

func TestStore_EmptyListsAreNotNil(t *testing.T) {
	ctx := context.Background()
	s := NewEmpty()
	contacts, _ := s.Contacts().GetAll(ctx)
	if contacts == nil {
		t.Fatal("GetAll must return an empty slice, not nil")
	}
}

func TestStore_ContentUpsert_ConcurrentCallersCreateOneRecord(t *testing.T) {
	ctx := context.Background()
	s := NewEmpty()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = s.Content().UpdateByKey(ctx, "hero_title", fmt.Sprintf("v%d", i))
		}(i)
	}
	wg.Wait()

	all, _ := s.Content().GetAll(ctx)
	if len(all) != 1 {
		t.Fatalf("expected exactly one record for the key, got %d", len(all))
	}
}

func TestStore_WithClockAndIDs(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	n := 0
	s := NewEmpty(
		WithClock(func() time.Time { return fixed }),
		WithIDGenerator(func() string { n++; return fmt.Sprintf("id-%d", n) }),
	)

	c, _ := s.Contacts().Create(ctx, domain.ContactInput{FirstName: "A", LastName: "B", Email: "a@b.com", Message: "hi"})
	if c.ID != "id-1" || !c.CreatedAt.Equal(fixed) {
		t.Fatalf("unexpected contact %+v", c)
	}
}
