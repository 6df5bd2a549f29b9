package domain

import "time"

// AuditEntry records a security-relevant action: logins, permission and
// activation toggles, catalog mutations. Entries are written best-effort by
// the audit pipeline and never block the request that produced them.
type AuditEntry struct {
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Target    string    `json:"target,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
