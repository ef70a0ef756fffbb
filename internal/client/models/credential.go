// Package models defines the data exchanged between the portal, the remote
// API and the local state store.
package models

// Credential is what a student submits on the registration form. It is sent
// to the remote API as-is and, in fallback mode, appended to the local roster.
// No format or uniqueness checks are applied; only the required fields must be
// non-empty.
type Credential struct {
	Surname   string `json:"surname" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	Email     string `json:"email" validate:"required"`
	MatricNo  string `json:"matricNo" validate:"required"`
	Phone     string `json:"phone"`
	Password  string `json:"password" validate:"required"`
}

// DisplayName is the name shown for a fallback session.
func (c Credential) DisplayName() string {
	return c.FirstName + " " + c.Surname
}

// Identity is the display identity of the current session.
type Identity struct {
	Name         string `json:"name"`
	MatricNumber string `json:"matricNumber"`
}

// LoginRequest is the body of POST /Auth/login.
type LoginRequest struct {
	MatricNumber string `json:"matricNumber" validate:"required"`
	Password     string `json:"password" validate:"required"`
}

// RegisterResponse is the part of the registration reply the portal reads.
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// LoginResponse is the part of the login reply the portal reads.
type LoginResponse struct {
	Token string `json:"token"`
}
