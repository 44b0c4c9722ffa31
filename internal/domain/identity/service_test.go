package identity

import (
	"context"
	"testing"

	"sipeka/internal/apperr"
)

const unitID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

type fakeStore struct {
	usersByToken map[string]*User
	usersByID    map[string]*User
	unitExists   bool
	inserted     *User
	roleUpdates  map[string][2]string
	deletedToken string
	deleteFound  bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		usersByToken: make(map[string]*User),
		usersByID:    make(map[string]*User),
		roleUpdates:  make(map[string][2]string),
	}
}

func (f *fakeStore) UserByToken(_ context.Context, token string) (*User, error) {
	return f.usersByToken[token], nil
}

func (f *fakeStore) UserByID(_ context.Context, userID string) (*User, error) {
	return f.usersByID[userID], nil
}

func (f *fakeStore) InsertUser(_ context.Context, user User) (string, error) {
	user.ID = "new-user"
	f.inserted = &user
	f.usersByToken[user.TokenIdentifier] = &user
	return user.ID, nil
}

func (f *fakeStore) UpdateUserProfile(_ context.Context, token, name, image string) (bool, error) {
	user, ok := f.usersByToken[token]
	if !ok {
		return false, nil
	}
	user.Name = name
	user.Image = image
	return true, nil
}

func (f *fakeStore) UpdateUserRole(_ context.Context, userID, role, unitID string) error {
	f.roleUpdates[userID] = [2]string{role, unitID}
	return nil
}

func (f *fakeStore) DeleteUserByToken(_ context.Context, token string) (bool, error) {
	f.deletedToken = token
	return f.deleteFound, nil
}

func (f *fakeStore) ListUsers(_ context.Context, _, _ int) ([]User, error) {
	return nil, nil
}

func (f *fakeStore) CountUsers(_ context.Context) (int, error) {
	return len(f.usersByToken), nil
}

func (f *fakeStore) ListUsersByRole(_ context.Context, _ string) ([]User, error) {
	return nil, nil
}

func (f *fakeStore) UnitExists(_ context.Context, _ string) (bool, error) {
	return f.unitExists, nil
}

type fakeInviter struct {
	lastEmail string
	lastRole  string
	lastUnit  string
}

func (f *fakeInviter) Invite(_ context.Context, email, role, unitID string) (InvitationReceipt, error) {
	f.lastEmail, f.lastRole, f.lastUnit = email, role, unitID
	return InvitationReceipt{ID: "inv1", Email: email, Status: "pending"}, nil
}

func admin() User {
	return User{ID: "a1", Role: RoleAdmin}
}

func TestResolveCaller(t *testing.T) {
	store := newFakeStore()
	store.usersByToken["iss|sub"] = &User{ID: "u1", Role: RoleAdmin}
	svc := NewService(store, &fakeInviter{})

	user, err := svc.ResolveCaller(context.Background(), "iss|sub")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if user.ID != "u1" {
		t.Fatalf("unexpected user: %+v", user)
	}

	_, err = svc.ResolveCaller(context.Background(), "")
	if !apperr.IsKind(err, apperr.KindAuth) {
		t.Fatalf("expected auth error for empty token, got %v", err)
	}

	_, err = svc.ResolveCaller(context.Background(), "iss|unknown")
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAssignRole(t *testing.T) {
	store := newFakeStore()
	store.usersByID["u2"] = &User{ID: "u2", Role: RoleUnitLeader}
	store.unitExists = true
	svc := NewService(store, &fakeInviter{})

	if err := svc.AssignRole(context.Background(), admin(), "u2", RoleSupervisor, unitID); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if got := store.roleUpdates["u2"]; got[0] != RoleSupervisor || got[1] != unitID {
		t.Fatalf("unexpected update: %v", got)
	}
}

func TestAssignRoleForbidsSelfChange(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeInviter{})

	err := svc.AssignRole(context.Background(), admin(), "a1", RoleSupervisor, unitID)
	if !apperr.IsKind(err, apperr.KindAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
}

func TestAssignRoleAdminClearsUnit(t *testing.T) {
	store := newFakeStore()
	store.usersByID["u2"] = &User{ID: "u2", Role: RoleSupervisor, UnitID: unitID}
	svc := NewService(store, &fakeInviter{})

	if err := svc.AssignRole(context.Background(), admin(), "u2", RoleAdmin, unitID); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if got := store.roleUpdates["u2"]; got[1] != "" {
		t.Fatalf("admin role should clear the unit, got %q", got[1])
	}
}

func TestAssignRoleRequiresUnitForScopedRoles(t *testing.T) {
	store := newFakeStore()
	store.usersByID["u2"] = &User{ID: "u2", Role: RoleUnitLeader}
	svc := NewService(store, &fakeInviter{})

	err := svc.AssignRole(context.Background(), admin(), "u2", RoleSupervisor, "")
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestInvite(t *testing.T) {
	store := newFakeStore()
	store.unitExists = true
	inviter := &fakeInviter{}
	svc := NewService(store, inviter)

	receipt, err := svc.Invite(context.Background(), admin(), "budi@example.com", RoleUnitLeader, unitID)
	if err != nil {
		t.Fatalf("invite failed: %v", err)
	}
	if receipt.ID != "inv1" || inviter.lastRole != RoleUnitLeader {
		t.Fatalf("unexpected receipt: %+v (role %q)", receipt, inviter.lastRole)
	}

	_, err = svc.Invite(context.Background(), admin(), "not-an-email", RoleUnitLeader, unitID)
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, err = svc.Invite(context.Background(), User{Role: RoleSupervisor}, "budi@example.com", RoleUnitLeader, unitID)
	if !apperr.IsKind(err, apperr.KindAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
}
