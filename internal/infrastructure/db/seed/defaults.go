// Package seed holds the default site data a fresh installation starts
// with and applies it to any ports.Storage backend.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ndzibs/freight-site/internal/core/domain"
	"github.com/ndzibs/freight-site/internal/core/ports"
)

// Admin is the account created when the users table is empty.
type Admin struct {
	Username string
	Password string
}

// DefaultAdmin is used when no credentials are configured.
var DefaultAdmin = Admin{Username: "admin", Password: "admin123"}

// ContentEntry is one default key/value pair of site copy.
type ContentEntry struct {
	Key   string
	Value string
}

func strPtr(s string) *string { return &s }

// Content returns the default site copy, in display order.
func Content() []ContentEntry {
	return []ContentEntry{
		{Key: "company_description", Value: "Ottawa Ndzibs Shipping provides safe and dependable sea and air freight services from China to Botswana. With years of experience, we ensure smooth customs clearance, cargo safety, and competitive pricing."},
		{Key: "hero_title", Value: "Reliable Shipping from China to Botswana"},
		{Key: "hero_subtitle", Value: "Secure, fast, and hassle-free sea & air freight services. Book your space today!"},
		{Key: "contact_phone1", Value: "+267 72951666"},
		{Key: "contact_phone2", Value: "+267 73133989"},
		{Key: "contact_email", Value: "ottiegosalamang@gmail.com"},
		{Key: "contact_address", Value: "Plot 19376, Phase 2, Gaborone – Office 5"},
	}
}

func Services() []domain.ServiceInput {
	return []domain.ServiceInput{
		{
			Name:        "Sea Freight",
			Type:        domain.ServiceTypeSea,
			Description: "Cost-effective sea freight for large shipments. Perfect for furniture, bulk goods, and non-urgent deliveries.",
			NextDate:    strPtr("25 August 2025"),
			Frequency:   strPtr("Monthly"),
			Features:    []string{"30-45 day transit time", "Full container & LCL options", "Door-to-door delivery"},
		},
		{
			Name:        "Air Freight",
			Type:        domain.ServiceTypeAir,
			Description: "Fast air freight for urgent shipments. Weekly flights with collection at Phase 2, Gaborone.",
			Frequency:   strPtr("Weekly Shipments"),
			Features:    []string{"5-7 day transit time", "Express handling", "Collection in Gaborone"},
		},
	}
}

func Pricing() []domain.PricingInput {
	return []domain.PricingInput{
		{Category: "Furniture & Décor", Description: "Building items, home décor, furniture", Rate: 4500, Unit: "per CBM",
			Features: []string{"Protective packaging", "Careful handling", "Insurance included"}, Color: "blue", Icon: "fas fa-couch"},
		{Category: "Beauty & Cosmetics", Description: "Hair, cosmetics, skincare products", Rate: 4900, Unit: "per CBM",
			Features: []string{"Temperature controlled", "Secure handling", "Customs compliance"}, Color: "pink", Icon: "fas fa-cut"},
		{Category: "Electronics", Description: "Electronics & electrical goods", Rate: 5000, Unit: "per CBM",
			Features: []string{"Anti-static packaging", "Fragile handling", "Full insurance"}, Color: "purple", Icon: "fas fa-laptop"},
		{Category: "Textiles & Clothing", Description: "Non-branded clothing, fabrics", Rate: 5200, Unit: "per CBM",
			Features: []string{"Moisture protection", "Compressed packing", "Quality guarantee"}, Color: "green", Icon: "fas fa-tshirt"},
		{Category: "Small Goods", Description: "Smaller goods charged by weight", Rate: 90, Unit: "per kg + P150 Handling Fee",
			Features: []string{"Individual tracking", "Express processing", "Secure packaging"}, Color: "orange", Icon: "fas fa-box"},
	}
}

func Testimonials() []domain.TestimonialInput {
	return []domain.TestimonialInput{
		{Name: "Thabo Mogale", Location: "Gaborone, Botswana", Rating: 5,
			Content: "Excellent service! My furniture arrived safely and on time. The team was professional throughout the entire process."},
		{Name: "Lesego Motswedi", Location: "Francistown, Botswana", Rating: 5,
			Content: "Fast air freight service for my electronics. Great communication and transparent pricing. Highly recommended!"},
		{Name: "Kgomotso Ditsele", Location: "Maun, Botswana", Rating: 5,
			Content: "Been using Ottawa Ndzibs for all my business imports. Reliable, professional, and great value for money."},
	}
}

// Apply writes the defaults into every empty collection of st. Collections
// that already hold records are left alone, so Apply is safe to run on
// every start.
func Apply(ctx context.Context, st ports.Storage, admin Admin, log zerolog.Logger) error {
	if err := seedAdmin(ctx, st.Users(), admin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	existing, err := st.Content().GetAll(ctx)
	if err != nil {
		return fmt.Errorf("seed content: %w", err)
	}
	if len(existing) == 0 {
		for _, c := range Content() {
			if _, err := st.Content().UpdateByKey(ctx, c.Key, c.Value); err != nil {
				return fmt.Errorf("seed content %q: %w", c.Key, err)
			}
		}
	}

	services, err := st.Services().GetAll(ctx)
	if err != nil {
		return fmt.Errorf("seed services: %w", err)
	}
	if len(services) == 0 {
		for _, in := range Services() {
			if _, err := st.Services().Create(ctx, in); err != nil {
				return fmt.Errorf("seed service %q: %w", in.Name, err)
			}
		}
	}

	pricing, err := st.Pricing().GetAll(ctx)
	if err != nil {
		return fmt.Errorf("seed pricing: %w", err)
	}
	if len(pricing) == 0 {
		for _, in := range Pricing() {
			if _, err := st.Pricing().Create(ctx, in); err != nil {
				return fmt.Errorf("seed pricing %q: %w", in.Category, err)
			}
		}
	}

	testimonials, err := st.Testimonials().GetAll(ctx)
	if err != nil {
		return fmt.Errorf("seed testimonials: %w", err)
	}
	if len(testimonials) == 0 {
		for _, in := range Testimonials() {
			if _, err := st.Testimonials().Create(ctx, in); err != nil {
				return fmt.Errorf("seed testimonial %q: %w", in.Name, err)
			}
		}
	}

	log.Debug().Msg("default site data ensured")
	return nil
}

func seedAdmin(ctx context.Context, users ports.UserRepository, admin Admin) error {
	if admin.Username == "" {
		admin = DefaultAdmin
	}
	_, err := users.GetByUsername(ctx, admin.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = users.Create(ctx, domain.UserInput{Username: admin.Username, PasswordHash: string(hash)})
	if errors.Is(err, domain.ErrUserExists) {
		return nil
	}
	return err
}
