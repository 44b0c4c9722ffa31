package reports

type UnitSummary struct {
	UnitID      string  `json:"unitId"`
	UnitName    string  `json:"unitName"`
	Evaluations int     `json:"evaluations"`
	MeanScore   float64 `json:"meanScore"`
}

// Summary is the dashboard aggregate: per-unit evaluation averages and
// the nomination pipeline, scoped to what the caller may see.
type Summary struct {
	Units                []UnitSummary `json:"units"`
	NominationsPending   int           `json:"nominationsPending"`
	NominationsCompleted int           `json:"nominationsCompleted"`
	EvaluationsTotal     int           `json:"evaluationsTotal"`
}
