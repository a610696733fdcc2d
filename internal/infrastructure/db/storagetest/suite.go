// Package storagetest is a conformance suite every ports.Storage variant
// must pass. Backends call Run from their own tests with a factory that
// returns an empty store.
package storagetest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndzibs/freight-site/internal/core/domain"
	"github.com/ndzibs/freight-site/internal/core/ports"
)

// Factory returns a fresh, empty storage for one subtest.
type Factory func(t *testing.T) ports.Storage

// Run executes the whole suite.
func Run(t *testing.T, newStorage Factory) {
	t.Run("ServiceCreateAssignsUniqueIDsAndDefaults", func(t *testing.T) { testServiceCreate(t, newStorage(t)) })
	t.Run("ActiveSubsetFollowsUpdates", func(t *testing.T) { testActiveSubset(t, newStorage(t)) })
	t.Run("UpdatePreservesUntouchedFields", func(t *testing.T) { testPricingUpdate(t, newStorage(t)) })
	t.Run("UpdateMissingIsNotFound", func(t *testing.T) { testUpdateMissing(t, newStorage(t)) })
	t.Run("DeleteIsIdempotent", func(t *testing.T) { testDeleteTwice(t, newStorage(t)) })
	t.Run("ContentUpsertKeepsOneRecordPerKey", func(t *testing.T) { testContentUpsert(t, newStorage(t)) })
	t.Run("TestimonialDefaults", func(t *testing.T) { testTestimonialDefaults(t, newStorage(t)) })
	t.Run("ContactLifecycle", func(t *testing.T) { testContactLifecycle(t, newStorage(t)) })
	t.Run("UsersForceAdminRole", func(t *testing.T) { testUsers(t, newStorage(t)) })
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }

func testServiceCreate(t *testing.T, st ports.Storage) {
	ctx := context.Background()
	repo := st.Services()

	a, err := repo.Create(ctx, domain.ServiceInput{Name: "Sea Freight", Type: domain.ServiceTypeSea, Description: "slow"})
	require.NoError(t, err)
	b, err := repo.Create(ctx, domain.ServiceInput{
		Name:        "Air Freight",
		Type:        domain.ServiceTypeAir,
		Description: "fast",
		Frequency:   strPtr("Weekly"),
		Features:    []string{"Express handling"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.True(t, a.Active, "active defaults to true")
	assert.Nil(t, a.NextDate)
	assert.Nil(t, a.Features)
	require.NotNil(t, b.Frequency)
	assert.Equal(t, "Weekly", *b.Frequency)
	assert.Equal(t, []string{"Express handling"}, b.Features)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func testActiveSubset(t *testing.T, st ports.Storage) {
	ctx := context.Background()
	repo := st.Testimonials()

	on, err := repo.Create(ctx, domain.TestimonialInput{Name: "A", Location: "Gaborone", Content: "good"})
	require.NoError(t, err)
	off, err := repo.Create(ctx, domain.TestimonialInput{Name: "B", Location: "Maun", Content: "ok", Active: boolPtr(false)})
	require.NoError(t, err)

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, on.ID, active[0].ID)

	_, err = repo.Update(ctx, off.ID, domain.TestimonialPatch{Active: boolPtr(true)})
	require.NoError(t, err)
	_, err = repo.Update(ctx, on.ID, domain.TestimonialPatch{Active: boolPtr(false)})
	require.NoError(t, err)

	active, err = repo.GetActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, off.ID, active[0].ID)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func testPricingUpdate(t *testing.T, st ports.Storage) {
	ctx := context.Background()
	repo := st.Pricing()

	created, err := repo.Create(ctx, domain.PricingInput{
		Category:    "Electronics",
		Description: "Electronics & electrical goods",
		Rate:        5000,
		Unit:        "per CBM",
		Features:    []string{"Full insurance"},
		Color:       "purple",
		Icon:        "fas fa-laptop",
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, domain.PricingPatch{Rate: intPtr(6000)})
	require.NoError(t, err)

	want := *created
	want.Rate = 6000
	assert.Equal(t, want, *updated)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, want, all[0])
}

func testUpdateMissing(t *testing.T, st ports.Storage) {
	ctx := context.Background()
	const missing = "00000000-0000-0000-0000-000000000000"

	_, err := st.Services().Update(ctx, missing, domain.ServicePatch{Name: strPtr("x")})
	assert.True(t, errors.Is(err, domain.ErrNotFound), "services: %v", err)

	_, err = st.Pricing().Update(ctx, missing, domain.PricingPatch{Rate: intPtr(1)})
	assert.True(t, errors.Is(err, domain.ErrNotFound), "pricing: %v", err)

	_, err = st.Testimonials().Update(ctx, missing, domain.TestimonialPatch{Rating: intPtr(4)})
	assert.True(t, errors.Is(err, domain.ErrNotFound), "testimonials: %v", err)

	_, err = st.Contacts().UpdateStatus(ctx, missing, "closed")
	assert.True(t, errors.Is(err, domain.ErrNotFound), "contacts: %v", err)
}

func testDeleteTwice(t *testing.T, st ports.Storage) {
	ctx := context.Background()
	repo := st.Services()

	svc, err := repo.Create(ctx, domain.ServiceInput{Name: "n", Type: domain.ServiceTypeSea, Description: "d"})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, svc.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, svc.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func testContentUpsert(t *testing.T, st ports.Storage) {
	ctx := context.Background()
	repo := st.Content()

	first, err := repo.UpdateByKey(ctx, "hero_title", "v1")
	require.NoError(t, err)
	second, err := repo.UpdateByKey(ctx, "hero_title", "v2")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "v2", second.Value)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	count := 0
	for _, c := range all {
		if c.Key == "hero_title" {
			count++
			assert.Equal(t, "v2", c.Value)
		}
	}
	assert.Equal(t, 1, count)

	got, err := repo.GetByKey(ctx, "hero_title")
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Value)

	_, err = repo.GetByKey(ctx, "unknown")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func testTestimonialDefaults(t *testing.T, st ports.Storage) {
	ctx := context.Background()

	tm, err := st.Testimonials().Create(ctx, domain.TestimonialInput{Name: "Thabo", Location: "Gaborone", Content: "great"})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRating, tm.Rating)
	assert.True(t, tm.Active)
	assert.False(t, tm.CreatedAt.IsZero())

	updated, err := st.Testimonials().Update(ctx, tm.ID, domain.TestimonialPatch{Rating: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Rating)
	assert.True(t, updated.CreatedAt.Equal(tm.CreatedAt), "createdAt is immutable")
}

func testContactLifecycle(t *testing.T, st ports.Storage) {
	ctx := context.Background()
	repo := st.Contacts()

	c, err := repo.Create(ctx, domain.ContactInput{FirstName: "A", LastName: "B", Email: "a@b.com", Message: "hi"})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, domain.ContactStatusNew, c.Status)
	assert.False(t, c.CreatedAt.IsZero())
	assert.Nil(t, c.Phone)
	assert.Nil(t, c.ServiceType)

	updated, err := repo.UpdateStatus(ctx, c.ID, domain.ContactStatusContacted)
	require.NoError(t, err)
	assert.Equal(t, domain.ContactStatusContacted, updated.Status)
	assert.Equal(t, c.Message, updated.Message)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.ContactStatusContacted, all[0].Status)
}

func testUsers(t *testing.T, st ports.Storage) {
	ctx := context.Background()
	repo := st.Users()

	u, err := repo.Create(ctx, domain.UserInput{Username: "Ottie", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ottie", byID.Username)

	byName, err := repo.GetByUsername(ctx, "Ottie")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	_, err = repo.GetByUsername(ctx, "ottie")
	assert.True(t, errors.Is(err, domain.ErrNotFound), "username lookup is case-sensitive")

	_, err = repo.Create(ctx, domain.UserInput{Username: "Ottie", PasswordHash: "other"})
	assert.True(t, errors.Is(err, domain.ErrUserExists))
}
