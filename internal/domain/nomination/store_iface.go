package nomination

import "context"

type StoreAPI interface {
	EmployeeRefByID(ctx context.Context, employeeID string) (*EmployeeRef, error)
	NominationByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (*Nomination, error)
	CountActiveByNominator(ctx context.Context, nominatorID, period string) (int, error)
	InsertNomination(ctx context.Context, nom Nomination) (Nomination, error)
	ListPending(ctx context.Context, unitID string) ([]Enriched, error)
	ListByUnit(ctx context.Context, unitID string) ([]Enriched, error)
}
