package service

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecomarket/catalog-api/internal/api/metrics"
	"github.com/ecomarket/catalog-api/internal/core/auth"
	"github.com/ecomarket/catalog-api/internal/core/domain"
	"github.com/ecomarket/catalog-api/internal/core/ports"
)

// PermissionService implements the admin-only account state machines.
// Neither toggle serializes concurrent calls on the same target: each is a
// single atomic repository update, and a near-simultaneous toggle by two
// admins is a benign race, not a correctness hazard.
type PermissionService struct {
	repo  ports.UserRepository
	audit ports.AuditSink
	log   zerolog.Logger
}

func NewPermissionService(repo ports.UserRepository, audit ports.AuditSink, log zerolog.Logger) *PermissionService {
	return &PermissionService{repo: repo, audit: audit, log: log}
}

// ToggleSupplier swaps the target between supplier and customer. The pair
// stays mutually exclusive and toggling twice restores the original state.
func (s *PermissionService) ToggleSupplier(ctx context.Context, caller *auth.SessionClaims, targetID int64) (*domain.User, error) {
	if !auth.IsAdmin(caller) {
		return nil, domain.ErrForbidden
	}

	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	isSupplier, isCustomer := target.NextPermissionState()
	if err := s.repo.UpdateFlags(ctx, targetID, map[string]bool{
		"is_supplier": isSupplier,
		"is_customer": isCustomer,
	}); err != nil {
		return nil, err
	}

	target.IsSupplier = isSupplier
	target.IsCustomer = isCustomer

	action := "customer"
	if isSupplier {
		action = "supplier"
	}
	metrics.PermissionTogglesTotal.WithLabelValues(action).Inc()
	s.recordToggle(caller, targetID, "permission."+action)
	return target, nil
}

// ToggleActive flips the target's activation flag. Admin targets are
// untouchable here so that an admin can never be locked out by another.
func (s *PermissionService) ToggleActive(ctx context.Context, caller *auth.SessionClaims, targetID int64) (*domain.User, error) {
	if !auth.IsAdmin(caller) {
		return nil, domain.ErrForbidden
	}

	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target.IsAdmin {
		return nil, domain.ErrForbidden
	}

	active := !target.IsActive
	if err := s.repo.UpdateFlags(ctx, targetID, map[string]bool{"is_active": active}); err != nil {
		return nil, err
	}
	target.IsActive = active

	action := "deactivated"
	if active {
		action = "activated"
	}
	metrics.PermissionTogglesTotal.WithLabelValues(action).Inc()
	s.recordToggle(caller, targetID, "user."+action)
	return target, nil
}

func (s *PermissionService) recordToggle(caller *auth.SessionClaims, targetID int64, action string) {
	s.audit.Enqueue(ports.AuditEventInput{
		Actor:     caller.Subject,
		Action:    action,
		Target:    strconv.FormatInt(targetID, 10),
		Timestamp: time.Now().UTC(),
	})
	s.log.Info().Str("actor", caller.Subject).Int64("target_id", targetID).Str("action", action).Msg("account flags updated")
}
