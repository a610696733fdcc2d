package domain

const (
	RoleAdmin = "admin"
)

// User models an admin account. Users are created at seed time or through
// registration and are never updated or deleted over the API.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// UserInput is the creation payload for a user. Role is not part of it:
// storage always assigns RoleAdmin.
type UserInput struct {
	Username     string
	PasswordHash string
}
