package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidCredentials covers unknown username, wrong password and
	// deactivated accounts. The three cases are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidToken  = errors.New("invalid token")
	ErrTokenExpired  = errors.New("token expired")
	ErrMissingExpiry = errors.New("token has no expiry")

	ErrForbidden    = errors.New("access forbidden")
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

// User models an account: customer, supplier, admin, or any combination.
// The three role flags are independent booleans; supplier/customer
// exclusivity is enforced only by the permission toggle, not by the model.
type User struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	IsAdmin      bool      `json:"is_admin"`
	IsSupplier   bool      `json:"is_supplier"`
	IsCustomer   bool      `json:"is_customer"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NextPermissionState returns the supplier/customer pair a toggle moves the
// user to: suppliers become customers and vice versa. The pair is mutually
// exclusive in both directions and the toggle has no terminal state.
func (u *User) NextPermissionState() (isSupplier, isCustomer bool) {
	if u.IsSupplier {
		return false, true
	}
	return true, false
}
