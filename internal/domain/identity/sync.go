package identity

import (
	"context"
	"strings"

	"sipeka/internal/apperr"
	"sipeka/internal/platform/querier"
)

// SyncFromProvider applies one verified provider lifecycle event.
// Re-delivery of any event is a no-op; the registry is the only writer
// of user rows, so the provider stream is the source of truth.
func (s *Service) SyncFromProvider(ctx context.Context, tokenIdentifier string, event ProviderEvent) error {
	switch event.Type {
	case EventUserCreated:
		return s.syncCreated(ctx, tokenIdentifier, event.Data)
	case EventUserUpdated:
		return s.syncUpdated(ctx, tokenIdentifier, event.Data)
	case EventUserDeleted:
		_, err := s.store.DeleteUserByToken(ctx, tokenIdentifier)
		return err
	default:
		// Unknown lifecycle events are acknowledged without state change.
		return nil
	}
}

func (s *Service) syncCreated(ctx context.Context, tokenIdentifier string, data ProviderUserData) error {
	role := data.PublicMetadata.Role
	if role == "" {
		role = DefaultProvisionRole
	} else if !ValidRole(role) {
		return apperr.Validation("peran pada metadata undangan tidak dikenal: " + role)
	}

	unitID := data.PublicMetadata.UnitID
	if unitID != "" {
		if err := s.checkUnit(ctx, unitID); err != nil {
			return err
		}
	}

	existing, err := s.store.UserByToken(ctx, tokenIdentifier)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	_, err = s.store.InsertUser(ctx, User{
		TokenIdentifier: tokenIdentifier,
		Name:            displayName(data),
		Image:           data.ImageURL,
		Role:            role,
		UnitID:          unitID,
	})
	if querier.IsUniqueViolation(err) {
		// Raced with a re-delivery of the same event.
		return nil
	}
	return err
}

func (s *Service) syncUpdated(ctx context.Context, tokenIdentifier string, data ProviderUserData) error {
	_, err := s.store.UpdateUserProfile(ctx, tokenIdentifier, displayName(data), data.ImageURL)
	return err
}

func displayName(data ProviderUserData) string {
	return strings.TrimSpace(data.FirstName + " " + data.LastName)
}
