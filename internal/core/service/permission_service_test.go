package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ecomarket/catalog-api/internal/core/auth"
	"github.com/ecomarket/catalog-api/internal/core/domain"
)

func adminClaims() *auth.SessionClaims {
	c := &auth.SessionClaims{UserID: 99, IsAdmin: true}
	c.Subject = "root"
	return c
}

func customerClaims() *auth.SessionClaims {
	c := &auth.SessionClaims{UserID: 50, IsCustomer: true}
	c.Subject = "shopper"
	return c
}

func testPermissionService(repo *stubUserRepo) *PermissionService {
	return NewPermissionService(repo, &captureSink{}, zerolog.Nop())
}

func TestToggleSupplier_SupplierToCustomer(t *testing.T) {
	repo := newStubUserRepo()
	svc := testPermissionService(repo)
	target := repo.add(&domain.User{Username: "alice", IsActive: true, IsSupplier: true})

	updated, err := svc.ToggleSupplier(context.Background(), adminClaims(), target.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if updated.IsSupplier || !updated.IsCustomer {
		t.Fatalf("expected {supplier:false customer:true}, got %+v", updated)
	}

	stored, _ := repo.FindByID(context.Background(), target.ID)
	if stored.IsSupplier || !stored.IsCustomer {
		t.Fatalf("store not updated: %+v", stored)
	}
}

func TestToggleSupplier_CustomerToSupplier(t *testing.T) {
	repo := newStubUserRepo()
	svc := testPermissionService(repo)
	target := repo.add(&domain.User{Username: "bob", IsActive: true, IsCustomer: true})

	updated, err := svc.ToggleSupplier(context.Background(), adminClaims(), target.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !updated.IsSupplier || updated.IsCustomer {
		t.Fatalf("expected {supplier:true customer:false}, got %+v", updated)
	}
}

func TestToggleSupplier_DoubleToggleRestores(t *testing.T) {
	repo := newStubUserRepo()
	svc := testPermissionService(repo)
	target := repo.add(&domain.User{Username: "carol", IsActive: true, IsSupplier: true})

	if _, err := svc.ToggleSupplier(context.Background(), adminClaims(), target.ID); err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if _, err := svc.ToggleSupplier(context.Background(), adminClaims(), target.ID); err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), target.ID)
	if !stored.IsSupplier || stored.IsCustomer {
		t.Fatalf("two toggles must restore the original pair, got %+v", stored)
	}
}

func TestToggleSupplier_NonAdminForbidden(t *testing.T) {
	repo := newStubUserRepo()
	svc := testPermissionService(repo)
	target := repo.add(&domain.User{Username: "dave", IsActive: true, IsCustomer: true})

	if _, err := svc.ToggleSupplier(context.Background(), customerClaims(), target.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), target.ID)
	if stored.IsSupplier || !stored.IsCustomer {
		t.Fatalf("denied toggle must not mutate the target: %+v", stored)
	}
}

func TestToggleSupplier_TargetMissing(t *testing.T) {
	svc := testPermissionService(newStubUserRepo())

	if _, err := svc.ToggleSupplier(context.Background(), adminClaims(), 404); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestToggleActive_DeactivateAndReactivate(t *testing.T) {
	repo := newStubUserRepo()
	svc := testPermissionService(repo)
	target := repo.add(&domain.User{Username: "erin", IsActive: true, IsCustomer: true})

	updated, err := svc.ToggleActive(context.Background(), adminClaims(), target.ID)
	if err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if updated.IsActive {
		t.Fatalf("expected target deactivated")
	}

	updated, err = svc.ToggleActive(context.Background(), adminClaims(), target.ID)
	if err != nil {
		t.Fatalf("reactivate failed: %v", err)
	}
	if !updated.IsActive {
		t.Fatalf("expected target reactivated")
	}
}

func TestToggleActive_AdminTargetForbidden(t *testing.T) {
	repo := newStubUserRepo()
	svc := testPermissionService(repo)
	target := repo.add(&domain.User{Username: "frank", IsActive: true, IsAdmin: true})

	if _, err := svc.ToggleActive(context.Background(), adminClaims(), target.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for admin target, got %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), target.ID)
	if !stored.IsActive {
		t.Fatalf("admin target must stay active: %+v", stored)
	}
}

func TestToggleActive_NonAdminForbidden(t *testing.T) {
	repo := newStubUserRepo()
	svc := testPermissionService(repo)
	target := repo.add(&domain.User{Username: "gina", IsActive: true, IsCustomer: true})

	if _, err := svc.ToggleActive(context.Background(), customerClaims(), target.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestToggleActive_TargetMissing(t *testing.T) {
	svc := testPermissionService(newStubUserRepo())

	if _, err := svc.ToggleActive(context.Background(), adminClaims(), 404); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestToggle_AuditsAction(t *testing.T) {
	repo := newStubUserRepo()
	sink := &captureSink{}
	svc := NewPermissionService(repo, sink, zerolog.Nop())
	target := repo.add(&domain.User{Username: "hank", IsActive: true, IsSupplier: true})

	if _, err := svc.ToggleSupplier(context.Background(), adminClaims(), target.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	actions := sink.actions()
	if len(actions) != 1 || actions[0] != "permission.customer" {
		t.Fatalf("expected permission.customer audit event, got %v", actions)
	}
}
