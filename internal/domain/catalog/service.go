package catalog

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

func (s *Service) CreateIndicator(ctx context.Context, caller identity.User, name, description string) (Indicator, error) {
	if caller.Role != identity.RoleAdmin {
		return Indicator{}, apperr.Auth("hanya admin yang bisa menambah indikator")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Indicator{}, apperr.Validation("nama indikator wajib diisi")
	}
	return s.store.InsertIndicator(ctx, name, strings.TrimSpace(description))
}

func (s *Service) UpdateIndicator(ctx context.Context, caller identity.User, indicatorID, name, description string) error {
	if caller.Role != identity.RoleAdmin {
		return apperr.Auth("hanya admin yang dapat melakukan aksi ini")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return apperr.Validation("nama indikator wajib diisi")
	}

	indicator, err := s.store.IndicatorByID(ctx, indicatorID)
	if err != nil {
		return err
	}
	if indicator == nil {
		return apperr.NotFound("indikator tidak ditemukan")
	}

	return s.store.UpdateIndicator(ctx, indicatorID, name, strings.TrimSpace(description))
}

// DeleteIndicator refuses while any stored evaluation score still
// references the indicator, so history keeps resolving.
func (s *Service) DeleteIndicator(ctx context.Context, caller identity.User, indicatorID string) error {
	if caller.Role != identity.RoleAdmin {
		return apperr.Auth("hanya admin yang dapat melakukan aksi ini")
	}

	indicator, err := s.store.IndicatorByID(ctx, indicatorID)
	if err != nil {
		return err
	}
	if indicator == nil {
		return apperr.NotFound("indikator tidak ditemukan")
	}

	refs, err := s.store.ScoreRefCount(ctx, indicatorID)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apperr.Conflict("tidak bisa menghapus indikator karena sudah pernah digunakan dalam penilaian")
	}

	err = s.store.DeleteIndicator(ctx, indicatorID)
	if querier.IsForeignKeyViolation(err) {
		// Raced with a concurrent evaluation submission.
		return apperr.Conflict("tidak bisa menghapus indikator karena sudah pernah digunakan dalam penilaian")
	}
	return err
}

func (s *Service) ListIndicators(ctx context.Context, caller identity.User) ([]Indicator, error) {
	return s.store.ListIndicators(ctx)
}

func (s *Service) ListIndicatorsPage(ctx context.Context, caller identity.User, limit, offset int) ([]Indicator, int, error) {
	indicators, err := s.store.ListIndicatorsPage(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.store.CountIndicators(ctx)
	if err != nil {
		return nil, 0, err
	}
	return indicators, total, nil
}
