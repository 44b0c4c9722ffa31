package nomination

import (
	"context"
	"strings"

	"sipeka/internal/apperr"
	"sipeka/internal/domain/identity"
	"sipeka/internal/platform/querier"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

// Create nominates an employee for the given period. Only a unit
// leader may nominate, only from their own unit, at most once per
// (employee, period), and never beyond the active cap.
func (s *Service) Create(ctx context.Context, caller identity.User, employeeID, period string) (Nomination, error) {
	if caller.Role != identity.RoleUnitLeader || caller.UnitID == "" {
		return Nomination{}, apperr.Auth("hanya kepala seksi yang dapat membuat nominasi")
	}
	period = strings.TrimSpace(period)
	if period == "" {
		return Nomination{}, apperr.Validation("periode wajib diisi")
	}

	employee, err := s.store.EmployeeRefByID(ctx, employeeID)
	if err != nil {
		return Nomination{}, err
	}
	if employee == nil {
		return Nomination{}, apperr.NotFound("pegawai tidak ditemukan")
	}
	if employee.UnitID != caller.UnitID {
		return Nomination{}, apperr.Conflict("anda hanya bisa menominasikan pegawai dari unit kerja anda")
	}

	existing, err := s.store.NominationByEmployeeAndPeriod(ctx, employeeID, period)
	if err != nil {
		return Nomination{}, err
	}
	if existing != nil {
		return Nomination{}, apperr.Conflict("pegawai ini sudah pernah dinominasikan untuk periode yang sama")
	}

	active, err := s.store.CountActiveByNominator(ctx, caller.ID, period)
	if err != nil {
		return Nomination{}, err
	}
	if active >= MaxActivePerPeriod {
		return Nomination{}, apperr.Conflict("batas nominasi aktif untuk periode ini sudah tercapai")
	}

	created, err := s.store.InsertNomination(ctx, Nomination{
		EmployeeID:  employeeID,
		UnitID:      employee.UnitID,
		NominatedBy: caller.ID,
		Period:      period,
		Status:      StatusNominated,
	})
	if querier.IsUniqueViolation(err) {
		return Nomination{}, apperr.Conflict("pegawai ini sudah pernah dinominasikan untuk periode yang sama")
	}
	return created, err
}

// ListPendingForReview returns nominations awaiting a score: all of
// them for admins, the caller's unit for supervisors, nothing for
// anyone else.
func (s *Service) ListPendingForReview(ctx context.Context, caller identity.User) ([]Enriched, error) {
	switch {
	case caller.Role == identity.RoleAdmin:
		return s.store.ListPending(ctx, "")
	case caller.Role == identity.RoleSupervisor && caller.UnitID != "":
		return s.store.ListPending(ctx, caller.UnitID)
	default:
		return []Enriched{}, nil
	}
}

// ListOwn returns the nominations frozen to the caller's unit, newest
// first. The frozen unit is authoritative even if an employee has
// since moved.
func (s *Service) ListOwn(ctx context.Context, caller identity.User) ([]Enriched, error) {
	if caller.UnitID == "" {
		return []Enriched{}, nil
	}
	return s.store.ListByUnit(ctx, caller.UnitID)
}
