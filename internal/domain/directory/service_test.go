package directory

import (
	"context"
	"testing"

	"sipeka/internal/apperr"
	"sipeka/internal/domain/identity"
)

type fakeStore struct {
	units         map[string]*Unit
	unitsByName   map[string]*Unit
	employees     map[string]*Employee
	employeeCount int
	cascade       CascadeResult
	deletedUnit   string
	renamedUnit   string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		units:       make(map[string]*Unit),
		unitsByName: make(map[string]*Unit),
		employees:   make(map[string]*Employee),
	}
}

func (f *fakeStore) addUnit(id, name string) {
	unit := &Unit{ID: id, Name: name}
	f.units[id] = unit
	f.unitsByName[name] = unit
}

func (f *fakeStore) UnitByID(_ context.Context, unitID string) (*Unit, error) {
	return f.units[unitID], nil
}

func (f *fakeStore) UnitByName(_ context.Context, name string) (*Unit, error) {
	return f.unitsByName[name], nil
}

func (f *fakeStore) InsertUnit(_ context.Context, name string) (Unit, error) {
	unit := Unit{ID: "new-unit", Name: name}
	f.addUnit(unit.ID, name)
	return unit, nil
}

func (f *fakeStore) UpdateUnitName(_ context.Context, unitID, name string) error {
	f.renamedUnit = unitID
	return nil
}

func (f *fakeStore) DeleteUnit(_ context.Context, unitID string) error {
	f.deletedUnit = unitID
	return nil
}

func (f *fakeStore) ListUnits(_ context.Context) ([]Unit, error) {
	return nil, nil
}

func (f *fakeStore) ListUnitsPage(_ context.Context, _, _ int) ([]Unit, error) {
	return nil, nil
}

func (f *fakeStore) CountUnits(_ context.Context) (int, error) {
	return len(f.units), nil
}

func (f *fakeStore) EmployeeByID(_ context.Context, employeeID string) (*Employee, error) {
	return f.employees[employeeID], nil
}

func (f *fakeStore) EmployeeCountByUnit(_ context.Context, _ string) (int, error) {
	return f.employeeCount, nil
}

func (f *fakeStore) InsertEmployee(_ context.Context, name, nip, unitID string) (Employee, error) {
	return Employee{ID: "new-employee", Name: name, NIP: nip, UnitID: unitID}, nil
}

func (f *fakeStore) UpdateEmployee(_ context.Context, _, _, _, _ string) error {
	return nil
}

func (f *fakeStore) DeleteEmployeeCascade(_ context.Context, _ string) (CascadeResult, error) {
	return f.cascade, nil
}

func (f *fakeStore) ListEmployees(_ context.Context, _ string, _, _ int) ([]Employee, error) {
	return nil, nil
}

func (f *fakeStore) CountEmployees(_ context.Context, _ string) (int, error) {
	return 0, nil
}

func (f *fakeStore) ListEmployeesByUnit(_ context.Context, _ string) ([]Employee, error) {
	return nil, nil
}

func admin() identity.User {
	return identity.User{ID: "a1", Role: identity.RoleAdmin}
}

func TestCreateUnit(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	unit, err := svc.CreateUnit(context.Background(), admin(), "  Bidang Umum  ")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if unit.Name != "Bidang Umum" {
		t.Fatalf("expected trimmed name, got %q", unit.Name)
	}
}

func TestCreateUnitRequiresAdmin(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.CreateUnit(context.Background(), identity.User{Role: identity.RoleUnitLeader}, "Bidang Umum")
	if !apperr.IsKind(err, apperr.KindAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
}

func TestCreateUnitRejectsDuplicateName(t *testing.T) {
	store := newFakeStore()
	store.addUnit("u1", "Bidang Umum")
	svc := NewService(store)

	_, err := svc.CreateUnit(context.Background(), admin(), "Bidang Umum")
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRenameUnitCollision(t *testing.T) {
	store := newFakeStore()
	store.addUnit("u1", "Bidang Umum")
	store.addUnit("u2", "Bidang Keuangan")
	svc := NewService(store)

	err := svc.RenameUnit(context.Background(), admin(), "u1", "Bidang Keuangan")
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	// renaming to the unit's own name is a no-op, not a collision
	if err := svc.RenameUnit(context.Background(), admin(), "u1", "Bidang Umum"); err != nil {
		t.Fatalf("rename to own name failed: %v", err)
	}
}

func TestDeleteUnitBlockedByEmployees(t *testing.T) {
	store := newFakeStore()
	store.addUnit("u1", "Bidang Umum")
	store.employeeCount = 3
	svc := NewService(store)

	err := svc.DeleteUnit(context.Background(), admin(), "u1")
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if store.deletedUnit != "" {
		t.Fatal("unit should not have been deleted")
	}
}

func TestDeleteUnitEmpty(t *testing.T) {
	store := newFakeStore()
	store.addUnit("u1", "Bidang Umum")
	svc := NewService(store)

	if err := svc.DeleteUnit(context.Background(), admin(), "u1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if store.deletedUnit != "u1" {
		t.Fatal("unit should have been deleted")
	}
}

func TestCreateEmployeeValidation(t *testing.T) {
	store := newFakeStore()
	store.addUnit("u1", "Bidang Umum")
	svc := NewService(store)

	_, err := svc.CreateEmployee(context.Background(), admin(), "", "12345", "u1")
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for empty name, got %v", err)
	}

	_, err = svc.CreateEmployee(context.Background(), admin(), "Budi", "12345", "missing")
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found for unknown unit, got %v", err)
	}

	emp, err := svc.CreateEmployee(context.Background(), admin(), "Budi", "12345", "u1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if emp.UnitID != "u1" {
		t.Fatalf("unexpected employee: %+v", emp)
	}
}

func TestDeleteEmployeeCascade(t *testing.T) {
	store := newFakeStore()
	store.employees["e1"] = &Employee{ID: "e1", Name: "Budi"}
	store.cascade = CascadeResult{EvaluationsDeleted: 1, NominationsDeleted: 2}
	svc := NewService(store)

	result, err := svc.DeleteEmployee(context.Background(), admin(), "e1")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if result.EvaluationsDeleted != 1 || result.NominationsDeleted != 2 {
		t.Fatalf("unexpected cascade result: %+v", result)
	}
}

func TestListEmployeesScoping(t *testing.T) {
	svc := NewService(newFakeStore())

	employees, total, err := svc.ListEmployees(context.Background(), identity.User{Role: identity.RoleSupervisor}, "", 50, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(employees) != 0 || total != 0 {
		t.Fatal("non-admins should see an empty employee list")
	}
}
