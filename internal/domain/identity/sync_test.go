package identity

import (
	"context"
	"testing"

	"sipeka/internal/apperr"
)

func TestSyncCreatedProvisionsDefaultRole(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeInviter{})

	event := ProviderEvent{
		Type: EventUserCreated,
		Data: ProviderUserData{ID: "usr_1", FirstName: "Budi", LastName: "Santoso", ImageURL: "https://img.example/budi.png"},
	}
	if err := svc.SyncFromProvider(context.Background(), "iss|usr_1", event); err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	if store.inserted == nil {
		t.Fatal("expected a user to be inserted")
	}
	if store.inserted.Role != DefaultProvisionRole {
		t.Fatalf("expected default role %q, got %q", DefaultProvisionRole, store.inserted.Role)
	}
	if store.inserted.Name != "Budi Santoso" {
		t.Fatalf("unexpected name %q", store.inserted.Name)
	}
}

func TestSyncCreatedHonorsInviteMetadata(t *testing.T) {
	store := newFakeStore()
	store.unitExists = true
	svc := NewService(store, &fakeInviter{})

	event := ProviderEvent{
		Type: EventUserCreated,
		Data: ProviderUserData{
			ID:             "usr_1",
			FirstName:      "Siti",
			PublicMetadata: ProviderMetadata{Role: RoleSupervisor, UnitID: unitID},
		},
	}
	if err := svc.SyncFromProvider(context.Background(), "iss|usr_1", event); err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if store.inserted.Role != RoleSupervisor || store.inserted.UnitID != unitID {
		t.Fatalf("unexpected insert: %+v", store.inserted)
	}
}

func TestSyncCreatedRejectsUnknownRole(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeInviter{})

	event := ProviderEvent{
		Type: EventUserCreated,
		Data: ProviderUserData{ID: "usr_1", PublicMetadata: ProviderMetadata{Role: "superuser"}},
	}
	err := svc.SyncFromProvider(context.Background(), "iss|usr_1", event)
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSyncCreatedIdempotent(t *testing.T) {
	store := newFakeStore()
	store.usersByToken["iss|usr_1"] = &User{ID: "u1", Role: RoleUnitLeader}
	svc := NewService(store, &fakeInviter{})

	event := ProviderEvent{
		Type: EventUserCreated,
		Data: ProviderUserData{ID: "usr_1", FirstName: "Budi"},
	}
	if err := svc.SyncFromProvider(context.Background(), "iss|usr_1", event); err != nil {
		t.Fatalf("redelivery should be a no-op: %v", err)
	}
	if store.inserted != nil {
		t.Fatal("redelivery must not insert a second row")
	}
}

func TestSyncUpdated(t *testing.T) {
	store := newFakeStore()
	store.usersByToken["iss|usr_1"] = &User{ID: "u1", Name: "Budi"}
	svc := NewService(store, &fakeInviter{})

	event := ProviderEvent{
		Type: EventUserUpdated,
		Data: ProviderUserData{ID: "usr_1", FirstName: "Budi", LastName: "Santoso"},
	}
	if err := svc.SyncFromProvider(context.Background(), "iss|usr_1", event); err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if store.usersByToken["iss|usr_1"].Name != "Budi Santoso" {
		t.Fatalf("profile not updated: %+v", store.usersByToken["iss|usr_1"])
	}
}

func TestSyncDeleted(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeInviter{})

	event := ProviderEvent{Type: EventUserDeleted, Data: ProviderUserData{ID: "usr_1"}}
	if err := svc.SyncFromProvider(context.Background(), "iss|usr_1", event); err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if store.deletedToken != "iss|usr_1" {
		t.Fatalf("expected delete by token, got %q", store.deletedToken)
	}
}

func TestSyncUnknownEventAcknowledged(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeInviter{})

	event := ProviderEvent{Type: "session.created"}
	if err := svc.SyncFromProvider(context.Background(), "iss|usr_1", event); err != nil {
		t.Fatalf("unknown events must be acknowledged: %v", err)
	}
	if store.inserted != nil || store.deletedToken != "" {
		t.Fatal("unknown events must not change state")
	}
}
