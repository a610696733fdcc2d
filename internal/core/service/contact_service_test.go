package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ndzibs/freight-site/internal/core/domain"
	"github.com/ndzibs/freight-site/internal/infrastructure/db/memory"
)

type stubGuard struct {
	seen  map[string]bool
	err   error
	calls int
}

func newStubGuard() *stubGuard { return &stubGuard{seen: make(map[string]bool)} }

func (g *stubGuard) Claim(_ context.Context, email, message string) (bool, error) {
	g.calls++
	if g.err != nil {
		return false, g.err
	}
	k := email + "|" + message
	if g.seen[k] {
		return false, nil
	}
	g.seen[k] = true
	return true, nil
}

func (g *stubGuard) Release(_ context.Context, email, message string) error {
	delete(g.seen, email+"|"+message)
	return nil
}

type failingContactRepo struct{}

func (failingContactRepo) GetAll(context.Context) ([]domain.Contact, error) { return nil, nil }
func (failingContactRepo) Create(context.Context, domain.ContactInput) (*domain.Contact, error) {
	return nil, errors.New("disk full")
}
func (failingContactRepo) UpdateStatus(context.Context, string, string) (*domain.Contact, error) {
	return nil, domain.ErrContactNotFound
}

func contactInput() domain.ContactInput {
	return domain.ContactInput{
		FirstName: "Jose",
		LastName:  "Rizal",
		Email:     "jose@example.com",
		Message:   "Need a quote for 2 CBM",
	}
}

func TestContactService_CreateContact_StatusNew(t *testing.T) {
	svc := NewContactService(memory.NewEmpty().Contacts(), nil, zerolog.Nop())

	c, err := svc.CreateContact(context.Background(), contactInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.Status != domain.ContactStatusNew {
		t.Fatalf("expected status new, got %s", c.Status)
	}
	if c.Phone != nil || c.ServiceType != nil {
		t.Fatalf("expected null optional fields, got %+v", c)
	}
}

func TestContactService_CreateContact_RejectsDuplicate(t *testing.T) {
	guard := newStubGuard()
	svc := NewContactService(memory.NewEmpty().Contacts(), guard, zerolog.Nop())

	if _, err := svc.CreateContact(context.Background(), contactInput()); err != nil {
		t.Fatalf("first submission: %v", err)
	}
	if _, err := svc.CreateContact(context.Background(), contactInput()); !errors.Is(err, domain.ErrDuplicateSubmission) {
		t.Fatalf("expected ErrDuplicateSubmission, got %v", err)
	}

	all, _ := svc.GetAllContacts(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected one stored contact, got %d", len(all))
	}
}

func TestContactService_CreateContact_GuardFailureAccepts(t *testing.T) {
	guard := newStubGuard()
	guard.err = errors.New("redis down")
	svc := NewContactService(memory.NewEmpty().Contacts(), guard, zerolog.Nop())

	if _, err := svc.CreateContact(context.Background(), contactInput()); err != nil {
		t.Fatalf("expected contact to be accepted, got %v", err)
	}
	if guard.calls != 1 {
		t.Fatalf("expected guard to be consulted once, got %d", guard.calls)
	}
}

func TestContactService_CreateContact_RepositoryError(t *testing.T) {
	svc := NewContactService(failingContactRepo{}, nil, zerolog.Nop())

	if _, err := svc.CreateContact(context.Background(), contactInput()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestContactService_CreateContact_RepositoryErrorAllowsRetry(t *testing.T) {
	guard := newStubGuard()
	ctx := context.Background()

	failing := NewContactService(failingContactRepo{}, guard, zerolog.Nop())
	if _, err := failing.CreateContact(ctx, contactInput()); err == nil {
		t.Fatalf("expected error")
	}
	if len(guard.seen) != 0 {
		t.Fatalf("expected claim to be released, still holding %v", guard.seen)
	}

	svc := NewContactService(memory.NewEmpty().Contacts(), guard, zerolog.Nop())
	if _, err := svc.CreateContact(ctx, contactInput()); err != nil {
		t.Fatalf("retry after failed save must be accepted, got %v", err)
	}
}

func TestContactService_UpdateContactStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewContactService(memory.NewEmpty().Contacts(), nil, zerolog.Nop())

	c, _ := svc.CreateContact(ctx, contactInput())
	updated, err := svc.UpdateContactStatus(ctx, c.ID, domain.ContactStatusQuoted)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != domain.ContactStatusQuoted {
		t.Fatalf("unexpected status: %s", updated.Status)
	}

	if _, err := svc.UpdateContactStatus(ctx, "missing", domain.ContactStatusClosed); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
