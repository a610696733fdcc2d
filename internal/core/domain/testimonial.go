package domain

import "time"

const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 5
)

// Testimonial is a customer quote. CreatedAt is assigned by storage and
// cannot be changed through a patch.
type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// TestimonialInput is the creation payload. A zero Rating means "not
// supplied" and becomes DefaultRating.
type TestimonialInput struct {
	Name     string
	Location string
	Content  string
	Rating   int
	Active   *bool
}

type TestimonialPatch struct {
	Name     *string
	Location *string
	Content  *string
	Rating   *int
	Active   *bool
}

func NewTestimonial(in TestimonialInput) Testimonial {
	rating := in.Rating
	if rating == 0 {
		rating = DefaultRating
	}
	return Testimonial{
		Name:     in.Name,
		Location: in.Location,
		Content:  in.Content,
		Rating:   rating,
		Active:   in.Active == nil || *in.Active,
	}
}

func (t *Testimonial) Apply(p TestimonialPatch) {
	setIf(&t.Name, p.Name)
	setIf(&t.Location, p.Location)
	setIf(&t.Content, p.Content)
	setIf(&t.Rating, p.Rating)
	setIf(&t.Active, p.Active)
}
