package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account. PublicID is the identifier exposed to clients
// and embedded in tokens; ID stays internal.
type User struct {
	ID           int       `json:"-"`
	PublicID     string    `json:"public_id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	FullName     string    `json:"full_name"`
	PhoneNumber  int64     `json:"phone_number"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	Country      string    `json:"country,omitempty"`
	Admin        bool      `json:"admin"`
	CreatedAt    time.Time `json:"-"`
}

// Role returns RoleAdmin or RoleUser depending on the admin flag.
func (u *User) Role() string {
	if u.Admin {
		return RoleAdmin
	}
	return RoleUser
}

// UserSummary is the public listing shape of a user
type UserSummary struct {
	PublicID    string `json:"public_id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	PhoneNumber int64  `json:"phone_number"`
	Admin       bool   `json:"admin"`
}

// SignupRequest is used for creating a new user
type SignupRequest struct {
	Email       string `json:"email" binding:"required,email,max=120"`
	Password    string `json:"password" binding:"required,min=6"`
	FullName    string `json:"full_name" binding:"required,max=40"`
	PhoneNumber *int64 `json:"phone_number" binding:"required"` // pointer so that 0 is accepted
	Address     string `json:"address" binding:"max=60"`
	City        string `json:"city" binding:"max=20"`
	State       string `json:"state" binding:"max=20"`
	Country     string `json:"country" binding:"max=20"`
	Admin       bool   `json:"admin"`
}
