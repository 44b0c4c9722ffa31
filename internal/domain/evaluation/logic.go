package evaluation

import "sipeka/internal/apperr"

// computeTotals derives the aggregate values for a score list. An
// empty list is rejected here, before any arithmetic can divide by
// zero.
func computeTotals(scores []ScoreInput) (total, mean float64, err error) {
	if len(scores) == 0 {
		return 0, 0, apperr.Validation("daftar skor tidak boleh kosong")
	}
	seen := make(map[string]struct{}, len(scores))
	for _, score := range scores {
		if score.IndicatorID == "" {
			return 0, 0, apperr.Validation("setiap skor harus merujuk ke sebuah indikator")
		}
		if _, dup := seen[score.IndicatorID]; dup {
			return 0, 0, apperr.Validation("indikator yang sama dinilai lebih dari sekali")
		}
		seen[score.IndicatorID] = struct{}{}
		if score.Nilai < 0 || score.Nilai > 100 {
			return 0, 0, apperr.Validation("nilai harus berada di antara 0 dan 100")
		}
		total += score.Nilai
	}
	mean = total / float64(len(scores))
	return total, mean, nil
}

func indicatorIDs(scores []ScoreInput) []string {
	ids := make([]string, 0, len(scores))
	for _, score := range scores {
		ids = append(ids, score.IndicatorID)
	}
	return ids
}
