package ports

import (
	"context"

	"github.com/ecomarket/catalog-api/internal/core/domain"
)

// RegisterInput carries a signup request. Role flags are caller-supplied
// and stored as-is; the API does not second-guess them.
type RegisterInput struct {
	FirstName  string
	LastName   string
	Username   string
	Email      string
	Password   string
	IsAdmin    bool
	IsSupplier bool
	IsCustomer bool
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login exchanges credentials for a signed session token. Unknown
	// username, wrong password and inactive account all surface as
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
}
