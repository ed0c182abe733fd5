package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	// AdminUsername is reserved for the seeded administrator.
	AdminUsername = "admin"
)

// User represents an account on the platform
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Role         string    `json:"role"`
	FullName     string    `json:"full_name"`
	Telegram     *string   `json:"telegram"`
	ResumeLink   *string   `json:"resume_link"`
	CreatedAt    time.Time `json:"-"`
}

// IsAdmin reports whether u holds the admin role.
func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }

// ProfileComplete reports whether u may submit entities and apply to
// vacancies: a telegram handle and a well-formed resume link are required.
func (u *User) ProfileComplete() bool {
	if u == nil || u.Telegram == nil || *u.Telegram == "" || u.ResumeLink == nil {
		return false
	}

	return IsValidURL(*u.ResumeLink)
}

// UserContact is the subset of a user shown next to the entities they own.
type UserContact struct {
	Username   string
	Telegram   *string
	ResumeLink *string
}

// UserSummary is the admin-facing user list item.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// RegisterRequest is the payload of POST /register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=4"`
}

// LoginRequest is the payload of POST /login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest is the payload of PUT /profile. Only fields present in
// the body are applied; an explicit null clears telegram/resume_link.
type UpdateProfileRequest struct {
	FullName   OptionalString `json:"full_name"`
	Telegram   OptionalString `json:"telegram"`
	ResumeLink OptionalString `json:"resume_link"`
}

// Empty reports whether the request changes nothing.
func (r UpdateProfileRequest) Empty() bool {
	return !r.FullName.Set && !r.Telegram.Set && !r.ResumeLink.Set
}
