package identity

import "context"

// StoreAPI is the persistence surface the service runs on. Lookup
// methods return a nil user when no row matches.
type StoreAPI interface {
	UserByToken(ctx context.Context, tokenIdentifier string) (*User, error)
	UserByID(ctx context.Context, userID string) (*User, error)
	InsertUser(ctx context.Context, user User) (string, error)
	UpdateUserProfile(ctx context.Context, tokenIdentifier, name, image string) (bool, error)
	UpdateUserRole(ctx context.Context, userID, role, unitID string) error
	DeleteUserByToken(ctx context.Context, tokenIdentifier string) (bool, error)
	ListUsers(ctx context.Context, limit, offset int) ([]User, error)
	CountUsers(ctx context.Context) (int, error)
	ListUsersByRole(ctx context.Context, role string) ([]User, error)
	UnitExists(ctx context.Context, unitID string) (bool, error)
}
