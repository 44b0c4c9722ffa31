package nomination

import (
	"context"
	"testing"

	"sipeka/internal/apperr"
	"sipeka/internal/domain/identity"
)

type fakeStore struct {
	employee *EmployeeRef
	existing *Nomination
	active   int
	inserted *Nomination
	pending  []Enriched
	byUnit   []Enriched
}

func (f *fakeStore) EmployeeRefByID(_ context.Context, _ string) (*EmployeeRef, error) {
	return f.employee, nil
}

func (f *fakeStore) NominationByEmployeeAndPeriod(_ context.Context, _, _ string) (*Nomination, error) {
	return f.existing, nil
}

func (f *fakeStore) CountActiveByNominator(_ context.Context, _, _ string) (int, error) {
	return f.active, nil
}

func (f *fakeStore) InsertNomination(_ context.Context, nom Nomination) (Nomination, error) {
	nom.ID = "n1"
	f.inserted = &nom
	return nom, nil
}

func (f *fakeStore) ListPending(_ context.Context, _ string) ([]Enriched, error) {
	return f.pending, nil
}

func (f *fakeStore) ListByUnit(_ context.Context, _ string) ([]Enriched, error) {
	return f.byUnit, nil
}

func unitLeader() identity.User {
	return identity.User{ID: "u1", Role: identity.RoleUnitLeader, UnitID: "unit-1"}
}

func TestCreateNomination(t *testing.T) {
	store := &fakeStore{employee: &EmployeeRef{ID: "e1", UnitID: "unit-1"}}
	svc := NewService(store)

	nom, err := svc.Create(context.Background(), unitLeader(), "e1", "2026-Q1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if nom.Status != StatusNominated {
		t.Fatalf("expected status %q, got %q", StatusNominated, nom.Status)
	}
	if store.inserted.UnitID != "unit-1" || store.inserted.NominatedBy != "u1" {
		t.Fatalf("unexpected insert: %+v", store.inserted)
	}
}

func TestCreateRequiresUnitLeader(t *testing.T) {
	svc := NewService(&fakeStore{})

	_, err := svc.Create(context.Background(), identity.User{Role: identity.RoleSupervisor, UnitID: "unit-1"}, "e1", "2026-Q1")
	if !apperr.IsKind(err, apperr.KindAuth) {
		t.Fatalf("expected auth error for supervisor, got %v", err)
	}

	_, err = svc.Create(context.Background(), identity.User{Role: identity.RoleUnitLeader}, "e1", "2026-Q1")
	if !apperr.IsKind(err, apperr.KindAuth) {
		t.Fatalf("expected auth error without unit, got %v", err)
	}
}

func TestCreateRequiresPeriod(t *testing.T) {
	svc := NewService(&fakeStore{employee: &EmployeeRef{ID: "e1", UnitID: "unit-1"}})

	_, err := svc.Create(context.Background(), unitLeader(), "e1", "   ")
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateUnknownEmployee(t *testing.T) {
	svc := NewService(&fakeStore{})

	_, err := svc.Create(context.Background(), unitLeader(), "missing", "2026-Q1")
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateRejectsOtherUnit(t *testing.T) {
	svc := NewService(&fakeStore{employee: &EmployeeRef{ID: "e1", UnitID: "unit-2"}})

	_, err := svc.Create(context.Background(), unitLeader(), "e1", "2026-Q1")
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreateRejectsDuplicate(t *testing.T) {
	store := &fakeStore{
		employee: &EmployeeRef{ID: "e1", UnitID: "unit-1"},
		existing: &Nomination{ID: "n0", EmployeeID: "e1", Period: "2026-Q1"},
	}
	svc := NewService(store)

	_, err := svc.Create(context.Background(), unitLeader(), "e1", "2026-Q1")
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreateEnforcesActiveCap(t *testing.T) {
	store := &fakeStore{
		employee: &EmployeeRef{ID: "e1", UnitID: "unit-1"},
		active:   MaxActivePerPeriod,
	}
	svc := NewService(store)

	_, err := svc.Create(context.Background(), unitLeader(), "e1", "2026-Q1")
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("expected conflict at cap, got %v", err)
	}
}

func TestListPendingScoping(t *testing.T) {
	store := &fakeStore{pending: []Enriched{{Nomination: Nomination{ID: "n1"}}}}
	svc := NewService(store)

	noms, err := svc.ListPendingForReview(context.Background(), identity.User{Role: identity.RoleAdmin})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(noms) != 1 {
		t.Fatalf("admin should see pending nominations, got %d", len(noms))
	}

	noms, err = svc.ListPendingForReview(context.Background(), unitLeader())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(noms) != 0 {
		t.Fatalf("unit leaders should not see the review queue, got %d", len(noms))
	}
}

func TestListOwnUsesFrozenUnit(t *testing.T) {
	store := &fakeStore{byUnit: []Enriched{{Nomination: Nomination{ID: "n1", UnitID: "unit-1"}}}}
	svc := NewService(store)

	noms, err := svc.ListOwn(context.Background(), unitLeader())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(noms) != 1 {
		t.Fatalf("expected 1 nomination, got %d", len(noms))
	}

	noms, err = svc.ListOwn(context.Background(), identity.User{Role: identity.RoleAdmin})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(noms) != 0 {
		t.Fatalf("caller without unit should see nothing, got %d", len(noms))
	}
}
