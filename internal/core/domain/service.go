package domain

// Freight service types.
const (
	ServiceTypeSea = "sea"
	ServiceTypeAir = "air"
)

// Service is a freight offering shown in the public services section.
// NextDate, Frequency and Features are nullable: nil is stored and rendered
// as null, distinct from an empty string or list.
type Service struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	NextDate    *string  `json:"nextDate"`
	Frequency   *string  `json:"frequency"`
	Features    []string `json:"features"`
	Active      bool     `json:"active"`
}

// ServiceInput is the creation payload. Active defaults to true when nil.
type ServiceInput struct {
	Name        string
	Type        string
	Description string
	NextDate    *string
	Frequency   *string
	Features    []string
	Active      *bool
}

// ServicePatch carries the fields of a partial update. Nil pointers and
// unset Optionals leave the stored value untouched.
type ServicePatch struct {
	Name        *string
	Type        *string
	Description *string
	NextDate    Optional[string]
	Frequency   Optional[string]
	Features    Optional[[]string]
	Active      *bool
}

// NewService builds the record persisted for in, without an ID.
func NewService(in ServiceInput) Service {
	return Service{
		Name:        in.Name,
		Type:        in.Type,
		Description: in.Description,
		NextDate:    cloneString(in.NextDate),
		Frequency:   cloneString(in.Frequency),
		Features:    cloneStrings(in.Features),
		Active:      in.Active == nil || *in.Active,
	}
}

// Apply merges p onto s.
func (s *Service) Apply(p ServicePatch) {
	setIf(&s.Name, p.Name)
	setIf(&s.Type, p.Type)
	setIf(&s.Description, p.Description)
	p.NextDate.applyTo(&s.NextDate)
	p.Frequency.applyTo(&s.Frequency)
	if p.Features.Set {
		if p.Features.Value == nil {
			s.Features = nil
		} else {
			s.Features = cloneStrings(*p.Features.Value)
		}
	}
	setIf(&s.Active, p.Active)
}

// Clone returns a deep copy of s.
func (s Service) Clone() Service {
	s.NextDate = cloneString(s.NextDate)
	s.Frequency = cloneString(s.Frequency)
	s.Features = cloneStrings(s.Features)
	return s
}
