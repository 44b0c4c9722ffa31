package evaluation

import "context"

type StoreAPI interface {
	NominationRefByID(ctx context.Context, nominationID string) (*NominationRef, error)
	HasEvaluation(ctx context.Context, nominationID, evaluatorID string) (bool, error)
	CountIndicatorsByIDs(ctx context.Context, indicatorIDs []string) (int, error)
	// InsertEvaluation persists the evaluation and its scores and flips
	// the nomination to completed, all in one transaction.
	InsertEvaluation(ctx context.Context, eval Evaluation, scores []ScoreInput) (Evaluation, error)
	ListResults(ctx context.Context, unitID string) ([]Result, error)
	ListByEvaluator(ctx context.Context, evaluatorID string) ([]Result, error)
}
