package reports

import (
	"context"

	"sipeka/internal/apperr"
	"sipeka/internal/domain/evaluation"
	"sipeka/internal/domain/identity"
)

// ResultSource supplies the enriched, caller-scoped evaluation rows
// the exports render. Satisfied by the evaluation service.
type ResultSource interface {
	ListAllResults(ctx context.Context, caller identity.User) ([]evaluation.Result, error)
}

type StoreAPI interface {
	UnitSummaries(ctx context.Context, unitID string) ([]UnitSummary, error)
	NominationCounts(ctx context.Context, unitID string) (pending, completed int, err error)
	EvaluationCount(ctx context.Context, unitID string) (int, error)
}

type Service struct {
	store   StoreAPI
	results ResultSource
}

func NewService(store StoreAPI, results ResultSource) *Service {
	return &Service{store: store, results: results}
}

func (s *Service) Summary(ctx context.Context, caller identity.User) (Summary, error) {
	unitID, err := scopeFor(caller)
	if err != nil {
		return Summary{}, err
	}

	units, err := s.store.UnitSummaries(ctx, unitID)
	if err != nil {
		return Summary{}, err
	}
	pending, completed, err := s.store.NominationCounts(ctx, unitID)
	if err != nil {
		return Summary{}, err
	}
	total, err := s.store.EvaluationCount(ctx, unitID)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Units:                units,
		NominationsPending:   pending,
		NominationsCompleted: completed,
		EvaluationsTotal:     total,
	}, nil
}

func (s *Service) ExportPDF(ctx context.Context, caller identity.User) ([]byte, error) {
	if _, err := scopeFor(caller); err != nil {
		return nil, err
	}
	results, err := s.results.ListAllResults(ctx, caller)
	if err != nil {
		return nil, err
	}
	return buildResultsPDF(results)
}

func (s *Service) ExportXLSX(ctx context.Context, caller identity.User) ([]byte, error) {
	if _, err := scopeFor(caller); err != nil {
		return nil, err
	}
	results, err := s.results.ListAllResults(ctx, caller)
	if err != nil {
		return nil, err
	}
	return buildResultsWorkbook(results)
}

func scopeFor(caller identity.User) (string, error) {
	switch {
	case caller.Role == identity.RoleAdmin:
		return "", nil
	case caller.Role == identity.RoleSupervisor && caller.UnitID != "":
		return caller.UnitID, nil
	default:
		return "", apperr.Auth("anda tidak berhak mengakses laporan")
	}
}
