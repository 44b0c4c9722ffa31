package evaluation

import (
	"context"

	"sipeka/internal/apperr"
	"sipeka/internal/domain/identity"
	"sipeka/internal/domain/nomination"
	"sipeka/internal/platform/querier"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

// Submit records one supervisor's scores for a nominated employee and
// closes the nomination. The guards run in the order the workflow
// defines them: caller role, score shape, nomination existence, frozen
// unit, state, then the one-evaluation-per-evaluator rule.
func (s *Service) Submit(ctx context.Context, caller identity.User, nominationID string, scores []ScoreInput) (Evaluation, error) {
	if caller.Role != identity.RoleSupervisor || caller.UnitID == "" {
		return Evaluation{}, apperr.Auth("hanya atasan dengan bidang yang terdefinisi yang dapat menilai")
	}

	total, mean, err := computeTotals(scores)
	if err != nil {
		return Evaluation{}, err
	}

	nom, err := s.store.NominationRefByID(ctx, nominationID)
	if err != nil {
		return Evaluation{}, err
	}
	if nom == nil {
		return Evaluation{}, apperr.NotFound("nominasi tidak ditemukan")
	}
	if nom.UnitID != caller.UnitID {
		return Evaluation{}, apperr.Auth("anda tidak berhak menilai nominasi dari bidang lain")
	}
	if nom.Status == nomination.StatusCompleted {
		return Evaluation{}, apperr.Conflict("nominasi ini sudah selesai dinilai")
	}

	already, err := s.store.HasEvaluation(ctx, nominationID, caller.ID)
	if err != nil {
		return Evaluation{}, err
	}
	if already {
		return Evaluation{}, apperr.Conflict("anda sudah pernah memberikan penilaian untuk nominasi ini")
	}

	known, err := s.store.CountIndicatorsByIDs(ctx, indicatorIDs(scores))
	if err != nil {
		return Evaluation{}, err
	}
	if known != len(scores) {
		return Evaluation{}, apperr.Validation("skor merujuk ke indikator yang tidak dikenal")
	}

	created, err := s.store.InsertEvaluation(ctx, Evaluation{
		NominationID: nominationID,
		EvaluatorID:  caller.ID,
		UnitID:       nom.UnitID,
		Total:        total,
		Mean:         mean,
		Completed:    true,
	}, scores)
	if querier.IsUniqueViolation(err) {
		// Lost a race against our own duplicate submission.
		return Evaluation{}, apperr.Conflict("anda sudah pernah memberikan penilaian untuk nominasi ini")
	}
	return created, err
}

// ListAllResults is the history view: admins see every evaluation,
// supervisors see their unit's, everyone else sees nothing.
func (s *Service) ListAllResults(ctx context.Context, caller identity.User) ([]Result, error) {
	switch {
	case caller.Role == identity.RoleAdmin:
		return s.store.ListResults(ctx, "")
	case caller.Role == identity.RoleSupervisor && caller.UnitID != "":
		return s.store.ListResults(ctx, caller.UnitID)
	default:
		return []Result{}, nil
	}
}

// ListMine returns evaluations newest first: all of them for admins,
// the caller's own for supervisors.
func (s *Service) ListMine(ctx context.Context, caller identity.User) ([]Result, error) {
	switch caller.Role {
	case identity.RoleAdmin:
		return s.store.ListResults(ctx, "")
	case identity.RoleSupervisor:
		return s.store.ListByEvaluator(ctx, caller.ID)
	default:
		return []Result{}, nil
	}
}
