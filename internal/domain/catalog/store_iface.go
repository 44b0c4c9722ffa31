package catalog

import "context"

type StoreAPI interface {
	IndicatorByID(ctx context.Context, indicatorID string) (*Indicator, error)
	InsertIndicator(ctx context.Context, name, description string) (Indicator, error)
	UpdateIndicator(ctx context.Context, indicatorID, name, description string) error
	DeleteIndicator(ctx context.Context, indicatorID string) error
	ScoreRefCount(ctx context.Context, indicatorID string) (int, error)
	ListIndicators(ctx context.Context) ([]Indicator, error)
	ListIndicatorsPage(ctx context.Context, limit, offset int) ([]Indicator, error)
	CountIndicators(ctx context.Context) (int, error)
}
