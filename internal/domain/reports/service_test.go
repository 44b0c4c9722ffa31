package reports

import (
	"context"
	"testing"

	"sipeka/internal/apperr"
	"sipeka/internal/domain/evaluation"
	"sipeka/internal/domain/identity"
)

type fakeStore struct {
	lastScope string
	units     []UnitSummary
	pending   int
	completed int
	total     int
}

func (f *fakeStore) UnitSummaries(_ context.Context, unitID string) ([]UnitSummary, error) {
	f.lastScope = unitID
	return f.units, nil
}

func (f *fakeStore) NominationCounts(_ context.Context, _ string) (int, int, error) {
	return f.pending, f.completed, nil
}

func (f *fakeStore) EvaluationCount(_ context.Context, _ string) (int, error) {
	return f.total, nil
}

type fakeResults struct {
	results []evaluation.Result
}

func (f *fakeResults) ListAllResults(_ context.Context, _ identity.User) ([]evaluation.Result, error) {
	return f.results, nil
}

func TestSummaryScoping(t *testing.T) {
	store := &fakeStore{
		units:     []UnitSummary{{UnitID: "u1", UnitName: "Bidang Umum", Evaluations: 3, MeanScore: 81.5}},
		pending:   2,
		completed: 5,
		total:     5,
	}
	svc := NewService(store, &fakeResults{})

	summary, err := svc.Summary(context.Background(), identity.User{Role: identity.RoleAdmin})
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if store.lastScope != "" {
		t.Fatalf("admin scope should be unrestricted, got %q", store.lastScope)
	}
	if summary.NominationsPending != 2 || summary.EvaluationsTotal != 5 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	_, err = svc.Summary(context.Background(), identity.User{Role: identity.RoleSupervisor, UnitID: "unit-1"})
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if store.lastScope != "unit-1" {
		t.Fatalf("supervisor scope should be their unit, got %q", store.lastScope)
	}

	_, err = svc.Summary(context.Background(), identity.User{Role: identity.RoleUnitLeader, UnitID: "unit-1"})
	if !apperr.IsKind(err, apperr.KindAuth) {
		t.Fatalf("expected auth error for unit leader, got %v", err)
	}
}

func TestExportsProducePayloads(t *testing.T) {
	results := &fakeResults{results: []evaluation.Result{{
		ID:            "ev1",
		EmployeeName:  "Budi Santoso",
		EmployeeNIP:   "19800101",
		UnitName:      "Bidang Umum",
		EvaluatorName: "Siti",
		Period:        "2026-Q1",
		Total:         140,
		Mean:          70,
	}}}
	svc := NewService(&fakeStore{}, results)

	pdf, err := svc.ExportPDF(context.Background(), identity.User{Role: identity.RoleAdmin})
	if err != nil {
		t.Fatalf("pdf export failed: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("pdf payload is empty")
	}

	xlsx, err := svc.ExportXLSX(context.Background(), identity.User{Role: identity.RoleAdmin})
	if err != nil {
		t.Fatalf("xlsx export failed: %v", err)
	}
	if len(xlsx) == 0 {
		t.Fatal("xlsx payload is empty")
	}

	if _, err := svc.ExportPDF(context.Background(), identity.User{Role: identity.RoleUnitLeader}); !apperr.IsKind(err, apperr.KindAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
}
