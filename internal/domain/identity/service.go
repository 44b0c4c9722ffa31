package identity

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"sipeka/internal/apperr"
)

type Service struct {
	store   StoreAPI
	inviter Inviter
}

func NewService(store StoreAPI, inviter Inviter) *Service {
	return &Service{store: store, inviter: inviter}
}

// ResolveCaller maps a session token identifier to the internal user
// record. Every other operation in the system starts here.
func (s *Service) ResolveCaller(ctx context.Context, tokenIdentifier string) (User, error) {
	if strings.TrimSpace(tokenIdentifier) == "" {
		return User{}, apperr.Auth("anda belum login")
	}
	user, err := s.store.UserByToken(ctx, tokenIdentifier)
	if err != nil {
		return User{}, err
	}
	if user == nil {
		return User{}, apperr.NotFound("user tidak ditemukan")
	}
	return *user, nil
}

func (s *Service) ListUsers(ctx context.Context, caller User, limit, offset int) ([]User, error) {
	if caller.Role != RoleAdmin {
		return nil, apperr.Auth("hanya admin yang dapat mengakses data ini")
	}
	return s.store.ListUsers(ctx, limit, offset)
}

func (s *Service) CountUsers(ctx context.Context, caller User) (int, error) {
	if caller.Role != RoleAdmin {
		return 0, apperr.Auth("hanya admin yang dapat mengakses data ini")
	}
	return s.store.CountUsers(ctx)
}

func (s *Service) ListUsersByRole(ctx context.Context, caller User, role string) ([]User, error) {
	if !ValidRole(role) {
		return nil, apperr.Validation("peran tidak dikenal")
	}
	return s.store.ListUsersByRole(ctx, role)
}

// AssignRole changes another user's role. Admins cannot change their
// own role, and the unit is cleared when the new role is admin.
func (s *Service) AssignRole(ctx context.Context, caller User, userID, role, unitID string) error {
	if caller.Role != RoleAdmin {
		return apperr.Auth("hanya admin yang dapat mengubah peran pengguna")
	}
	if caller.ID == userID {
		return apperr.Auth("anda tidak dapat mengubah peran anda sendiri")
	}
	if !ValidRole(role) {
		return apperr.Validation("peran tidak dikenal")
	}

	target, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return err
	}
	if target == nil {
		return apperr.NotFound("user tidak ditemukan")
	}

	if role == RoleAdmin {
		unitID = ""
	} else {
		if unitID == "" {
			return apperr.Validation("bidang wajib diisi untuk peran ini")
		}
		if err := s.checkUnit(ctx, unitID); err != nil {
			return err
		}
	}

	return s.store.UpdateUserRole(ctx, userID, role, unitID)
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func (s *Service) Invite(ctx context.Context, caller User, email, role, unitID string) (InvitationReceipt, error) {
	if caller.Role != RoleAdmin {
		return InvitationReceipt{}, apperr.Auth("hanya admin yang dapat mengirim undangan")
	}
	if !emailPattern.MatchString(email) {
		return InvitationReceipt{}, apperr.Validation("format email tidak valid")
	}
	if !ValidRole(role) {
		return InvitationReceipt{}, apperr.Validation("peran tidak dikenal")
	}
	if unitID != "" {
		if err := s.checkUnit(ctx, unitID); err != nil {
			return InvitationReceipt{}, err
		}
	}
	return s.inviter.Invite(ctx, email, role, unitID)
}

func (s *Service) checkUnit(ctx context.Context, unitID string) error {
	if uuid.Validate(unitID) != nil {
		return apperr.Validation("bidang tidak valid")
	}
	exists, err := s.store.UnitExists(ctx, unitID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("bidang tidak ditemukan")
	}
	return nil
}
