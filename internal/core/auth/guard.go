package auth

// Guards are pure allow/deny decisions over resolved session claims.
// Callers turn a deny into domain.ErrForbidden.

// IsAdmin allows only administrators.
func IsAdmin(c *SessionClaims) bool {
	return c != nil && c.IsAdmin
}

// IsSupplierOrAdmin allows suppliers and administrators.
func IsSupplierOrAdmin(c *SessionClaims) bool {
	return c != nil && (c.IsSupplier || c.IsAdmin)
}

// IsOwnerOrAdmin allows the owner of a resource and administrators.
func IsOwnerOrAdmin(c *SessionClaims, ownerID int64) bool {
	return c != nil && (c.IsAdmin || c.UserID == ownerID)
}
