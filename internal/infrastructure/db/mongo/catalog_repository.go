package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ndzibs/freight-site/internal/core/domain"
)

var activeOnly = bson.M{"active": true}

// replaceMerged loads the document with id, lets merge modify it and writes
// it back whole. notFound is returned when the id is unknown.
func replaceMerged[D any](ctx context.Context, col *mongo.Collection, id string, notFound error, merge func(*D)) (*D, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d D
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound
		}
		return nil, fmt.Errorf("find %s: %w", col.Name(), err)
	}
	merge(&d)

	res, err := col.ReplaceOne(ctx, bson.M{"_id": id}, d)
	if err != nil {
		return nil, fmt.Errorf("replace %s: %w", col.Name(), err)
	}
	if res.MatchedCount == 0 {
		return nil, notFound
	}
	return &d, nil
}

// ---- services ----

type ServiceRepository struct {
	col *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{col: db.Collection(collectionServices)}
}

type serviceDoc struct {
	ID          string   `bson:"_id"`
	Seq         int64    `bson:"seq"`
	Name        string   `bson:"name"`
	Type        string   `bson:"type"`
	Description string   `bson:"description"`
	NextDate    *string  `bson:"next_date"`
	Frequency   *string  `bson:"frequency"`
	Features    []string `bson:"features"`
	Active      bool     `bson:"active"`
}

func (d serviceDoc) toDomain() domain.Service {
	return domain.Service{
		ID: d.ID, Name: d.Name, Type: d.Type, Description: d.Description,
		NextDate: d.NextDate, Frequency: d.Frequency, Features: d.Features, Active: d.Active,
	}
}

func (d *serviceDoc) set(s domain.Service) {
	d.Name, d.Type, d.Description = s.Name, s.Type, s.Description
	d.NextDate, d.Frequency, d.Features, d.Active = s.NextDate, s.Frequency, s.Features, s.Active
}

func (r *ServiceRepository) GetAll(ctx context.Context) ([]domain.Service, error) {
	return findAll(ctx, r.col, bson.M{}, serviceDoc.toDomain)
}

func (r *ServiceRepository) GetActive(ctx context.Context) ([]domain.Service, error) {
	return findAll(ctx, r.col, activeOnly, serviceDoc.toDomain)
}

func (r *ServiceRepository) Create(ctx context.Context, in domain.ServiceInput) (*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d serviceDoc
	d.ID, d.Seq = newIdentity()
	d.set(domain.NewService(in))
	if _, err := r.col.InsertOne(ctx, d); err != nil {
		return nil, fmt.Errorf("insert service: %w", err)
	}
	s := d.toDomain()
	return &s, nil
}

func (r *ServiceRepository) Update(ctx context.Context, id string, patch domain.ServicePatch) (*domain.Service, error) {
	d, err := replaceMerged(ctx, r.col, id, domain.ErrServiceNotFound, func(d *serviceDoc) {
		s := d.toDomain()
		s.Apply(patch)
		d.set(s)
	})
	if err != nil {
		return nil, err
	}
	s := d.toDomain()
	return &s, nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.col, id)
}

// ---- pricing ----

type PricingRepository struct {
	col *mongo.Collection
}

func NewPricingRepository(db *mongo.Database) *PricingRepository {
	return &PricingRepository{col: db.Collection(collectionPricing)}
}

type pricingDoc struct {
	ID          string   `bson:"_id"`
	Seq         int64    `bson:"seq"`
	Category    string   `bson:"category"`
	Description string   `bson:"description"`
	Rate        int      `bson:"rate"`
	Unit        string   `bson:"unit"`
	Features    []string `bson:"features"`
	Color       string   `bson:"color"`
	Icon        string   `bson:"icon"`
	Active      bool     `bson:"active"`
}

func (d pricingDoc) toDomain() domain.Pricing {
	return domain.Pricing{
		ID: d.ID, Category: d.Category, Description: d.Description, Rate: d.Rate, Unit: d.Unit,
		Features: d.Features, Color: d.Color, Icon: d.Icon, Active: d.Active,
	}
}

func (d *pricingDoc) set(p domain.Pricing) {
	d.Category, d.Description, d.Rate, d.Unit = p.Category, p.Description, p.Rate, p.Unit
	d.Features, d.Color, d.Icon, d.Active = p.Features, p.Color, p.Icon, p.Active
}

func (r *PricingRepository) GetAll(ctx context.Context) ([]domain.Pricing, error) {
	return findAll(ctx, r.col, bson.M{}, pricingDoc.toDomain)
}

func (r *PricingRepository) GetActive(ctx context.Context) ([]domain.Pricing, error) {
	return findAll(ctx, r.col, activeOnly, pricingDoc.toDomain)
}

func (r *PricingRepository) Create(ctx context.Context, in domain.PricingInput) (*domain.Pricing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d pricingDoc
	d.ID, d.Seq = newIdentity()
	d.set(domain.NewPricing(in))
	if _, err := r.col.InsertOne(ctx, d); err != nil {
		return nil, fmt.Errorf("insert pricing: %w", err)
	}
	p := d.toDomain()
	return &p, nil
}

func (r *PricingRepository) Update(ctx context.Context, id string, patch domain.PricingPatch) (*domain.Pricing, error) {
	d, err := replaceMerged(ctx, r.col, id, domain.ErrPricingNotFound, func(d *pricingDoc) {
		p := d.toDomain()
		p.Apply(patch)
		d.set(p)
	})
	if err != nil {
		return nil, err
	}
	p := d.toDomain()
	return &p, nil
}

func (r *PricingRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.col, id)
}

// ---- testimonials ----

type TestimonialRepository struct {
	col *mongo.Collection
}

func NewTestimonialRepository(db *mongo.Database) *TestimonialRepository {
	return &TestimonialRepository{col: db.Collection(collectionTestimonials)}
}

type testimonialDoc struct {
	ID        string    `bson:"_id"`
	Seq       int64     `bson:"seq"`
	Name      string    `bson:"name"`
	Location  string    `bson:"location"`
	Content   string    `bson:"content"`
	Rating    int       `bson:"rating"`
	Active    bool      `bson:"active"`
	CreatedAt time.Time `bson:"created_at"`
}

func (d testimonialDoc) toDomain() domain.Testimonial {
	return domain.Testimonial{
		ID: d.ID, Name: d.Name, Location: d.Location, Content: d.Content,
		Rating: d.Rating, Active: d.Active, CreatedAt: d.CreatedAt,
	}
}

// set copies the mutable fields; CreatedAt stays as stored.
func (d *testimonialDoc) set(t domain.Testimonial) {
	d.Name, d.Location, d.Content, d.Rating, d.Active = t.Name, t.Location, t.Content, t.Rating, t.Active
}

func (r *TestimonialRepository) GetAll(ctx context.Context) ([]domain.Testimonial, error) {
	return findAll(ctx, r.col, bson.M{}, testimonialDoc.toDomain)
}

func (r *TestimonialRepository) GetActive(ctx context.Context) ([]domain.Testimonial, error) {
	return findAll(ctx, r.col, activeOnly, testimonialDoc.toDomain)
}

func (r *TestimonialRepository) Create(ctx context.Context, in domain.TestimonialInput) (*domain.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d testimonialDoc
	d.ID, d.Seq = newIdentity()
	d.set(domain.NewTestimonial(in))
	d.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	if _, err := r.col.InsertOne(ctx, d); err != nil {
		return nil, fmt.Errorf("insert testimonial: %w", err)
	}
	t := d.toDomain()
	return &t, nil
}

func (r *TestimonialRepository) Update(ctx context.Context, id string, patch domain.TestimonialPatch) (*domain.Testimonial, error) {
	d, err := replaceMerged(ctx, r.col, id, domain.ErrTestimonialNotFound, func(d *testimonialDoc) {
		t := d.toDomain()
		t.Apply(patch)
		d.set(t)
	})
	if err != nil {
		return nil, err
	}
	t := d.toDomain()
	return &t, nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.col, id)
}
