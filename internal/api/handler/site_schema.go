package handler

import "github.com/ndzibs/freight-site/internal/core/domain"

// --- Request types ---
//
// Create requests mirror the entity minus server-assigned fields. Patch
// requests make every field optional; a present field is validated with the
// same rules as on creation.

type updateContentRequest struct {
	Value string `json:"value"`
}

type createServiceRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Type        string   `json:"type"        validate:"required,oneof=sea air"`
	Description string   `json:"description" validate:"required"`
	NextDate    *string  `json:"nextDate"`
	Frequency   *string  `json:"frequency"`
	Features    []string `json:"features"`
	Active      *bool    `json:"active"`
}

func (r createServiceRequest) toInput() domain.ServiceInput {
	return domain.ServiceInput{
		Name:        r.Name,
		Type:        r.Type,
		Description: r.Description,
		NextDate:    r.NextDate,
		Frequency:   r.Frequency,
		Features:    r.Features,
		Active:      r.Active,
	}
}

type updateServiceRequest struct {
	Name        *string                   `json:"name"        validate:"omitnil,min=1"`
	Type        *string                   `json:"type"        validate:"omitnil,oneof=sea air"`
	Description *string                   `json:"description" validate:"omitnil,min=1"`
	NextDate    domain.Optional[string]   `json:"nextDate"`
	Frequency   domain.Optional[string]   `json:"frequency"`
	Features    domain.Optional[[]string] `json:"features"`
	Active      *bool                     `json:"active"`
}

func (r updateServiceRequest) toPatch() domain.ServicePatch {
	return domain.ServicePatch{
		Name:        r.Name,
		Type:        r.Type,
		Description: r.Description,
		NextDate:    r.NextDate,
		Frequency:   r.Frequency,
		Features:    r.Features,
		Active:      r.Active,
	}
}

type createPricingRequest struct {
	Category    string   `json:"category"    validate:"required"`
	Description string   `json:"description" validate:"required"`
	Rate        *int     `json:"rate"        validate:"required,gte=0"`
	Unit        string   `json:"unit"        validate:"required"`
	Features    []string `json:"features"`
	Color       string   `json:"color"       validate:"required"`
	Icon        string   `json:"icon"        validate:"required"`
	Active      *bool    `json:"active"`
}

func (r createPricingRequest) toInput() domain.PricingInput {
	in := domain.PricingInput{
		Category:    r.Category,
		Description: r.Description,
		Unit:        r.Unit,
		Features:    r.Features,
		Color:       r.Color,
		Icon:        r.Icon,
		Active:      r.Active,
	}
	if r.Rate != nil {
		in.Rate = *r.Rate
	}
	return in
}

type updatePricingRequest struct {
	Category    *string                   `json:"category"    validate:"omitnil,min=1"`
	Description *string                   `json:"description" validate:"omitnil,min=1"`
	Rate        *int                      `json:"rate"        validate:"omitnil,gte=0"`
	Unit        *string                   `json:"unit"        validate:"omitnil,min=1"`
	Features    domain.Optional[[]string] `json:"features"`
	Color       *string                   `json:"color"       validate:"omitnil,min=1"`
	Icon        *string                   `json:"icon"        validate:"omitnil,min=1"`
	Active      *bool                     `json:"active"`
}

func (r updatePricingRequest) toPatch() domain.PricingPatch {
	return domain.PricingPatch{
		Category:    r.Category,
		Description: r.Description,
		Rate:        r.Rate,
		Unit:        r.Unit,
		Features:    r.Features,
		Color:       r.Color,
		Icon:        r.Icon,
		Active:      r.Active,
	}
}

type createTestimonialRequest struct {
	Name     string `json:"name"     validate:"required"`
	Location string `json:"location" validate:"required"`
	Content  string `json:"content"  validate:"required"`
	Rating   *int   `json:"rating"   validate:"omitnil,min=1,max=5"`
	Active   *bool  `json:"active"`
}

func (r createTestimonialRequest) toInput() domain.TestimonialInput {
	in := domain.TestimonialInput{
		Name:     r.Name,
		Location: r.Location,
		Content:  r.Content,
		Active:   r.Active,
	}
	if r.Rating != nil {
		in.Rating = *r.Rating
	}
	return in
}

type updateTestimonialRequest struct {
	Name     *string `json:"name"     validate:"omitnil,min=1"`
	Location *string `json:"location" validate:"omitnil,min=1"`
	Content  *string `json:"content"  validate:"omitnil,min=1"`
	Rating   *int    `json:"rating"   validate:"omitnil,min=1,max=5"`
	Active   *bool   `json:"active"`
}

func (r updateTestimonialRequest) toPatch() domain.TestimonialPatch {
	return domain.TestimonialPatch{
		Name:     r.Name,
		Location: r.Location,
		Content:  r.Content,
		Rating:   r.Rating,
		Active:   r.Active,
	}
}

type createContactRequest struct {
	FirstName   string  `json:"firstName"   validate:"required"`
	LastName    string  `json:"lastName"    validate:"required"`
	Email       string  `json:"email"       validate:"required,email"`
	Phone       *string `json:"phone"`
	ServiceType *string `json:"serviceType"`
	Message     string  `json:"message"     validate:"required"`
}

func (r createContactRequest) toInput() domain.ContactInput {
	return domain.ContactInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		ServiceType: r.ServiceType,
		Message:     r.Message,
	}
}

type updateContactStatusRequest struct {
	Status string `json:"status"`
}
