package domain

import "testing"

func TestNextPermissionState_SupplierBecomesCustomer(t *testing.T) {
	u := &User{IsSupplier: true, IsCustomer: false}
	isSupplier, isCustomer := u.NextPermissionState()
	if isSupplier || !isCustomer {
		t.Fatalf("expected supplier -> customer, got supplier=%v customer=%v", isSupplier, isCustomer)
	}
}

func TestNextPermissionState_CustomerBecomesSupplier(t *testing.T) {
	u := &User{IsSupplier: false, IsCustomer: true}
	isSupplier, isCustomer := u.NextPermissionState()
	if !isSupplier || isCustomer {
		t.Fatalf("expected customer -> supplier, got supplier=%v customer=%v", isSupplier, isCustomer)
	}
}

func TestNextPermissionState_DoubleToggleRestoresState(t *testing.T) {
	u := &User{IsSupplier: true, IsCustomer: false}
	u.IsSupplier, u.IsCustomer = u.NextPermissionState()
	u.IsSupplier, u.IsCustomer = u.NextPermissionState()
	if !u.IsSupplier || u.IsCustomer {
		t.Fatalf("two toggles must restore the original pair, got supplier=%v customer=%v", u.IsSupplier, u.IsCustomer)
	}
}

func TestNextPermissionState_ExclusivePair(t *testing.T) {
	// Even from an inconsistent starting state the toggle lands on a
	// mutually exclusive pair.
	u := &User{IsSupplier: false, IsCustomer: false}
	isSupplier, isCustomer := u.NextPermissionState()
	if isSupplier == isCustomer {
		t.Fatalf("pair must be mutually exclusive, got supplier=%v customer=%v", isSupplier, isCustomer)
	}
}
