package ports

import (
	"context"

	"github.com/ecomarket/catalog-api/internal/core/auth"
	"github.com/ecomarket/catalog-api/internal/core/domain"
)

// PermissionService owns the two admin-only state machines on user
// accounts: the supplier/customer toggle and the activation toggle.
type PermissionService interface {
	// ToggleSupplier flips the target between supplier and customer,
	// keeping the pair mutually exclusive. Admin-only.
	ToggleSupplier(ctx context.Context, caller *auth.SessionClaims, targetID int64) (*domain.User, error)
	// ToggleActive flips the target's is_active flag. Admin-only, and
	// admin accounts can never be deactivated through this path.
	ToggleActive(ctx context.Context, caller *auth.SessionClaims, targetID int64) (*domain.User, error)
}
