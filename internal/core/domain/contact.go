package domain

import "time"

// Contact statuses. New is assigned on submission; the others are set by
// an admin working the enquiry.
const (
	ContactStatusNew       = "new"
	ContactStatusContacted = "contacted"
	ContactStatusQuoted    = "quoted"
	ContactStatusClosed    = "closed"
)

// Contact is an enquiry submitted through the public contact form.
type Contact struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	ServiceType *string   `json:"serviceType"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ContactInput struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       *string
	ServiceType *string
	Message     string
}

// NewContact builds a contact in the ContactStatusNew state. Empty optional
// strings are normalised to null.
func NewContact(in ContactInput) Contact {
	return Contact{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       nonEmpty(in.Phone),
		ServiceType: nonEmpty(in.ServiceType),
		Message:     in.Message,
		Status:      ContactStatusNew,
	}
}

func (c Contact) Clone() Contact {
	c.Phone = cloneString(c.Phone)
	c.ServiceType = cloneString(c.ServiceType)
	return c
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
