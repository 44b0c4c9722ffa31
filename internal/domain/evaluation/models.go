package evaluation

import "time"

// ScoreInput is one submitted indicator score. Indicators are
// referenced by id; names are resolved only when results are read.
type ScoreInput struct {
	IndicatorID string  `json:"indicatorId"`
	Nilai       float64 `json:"nilai"`
}

type Score struct {
	IndicatorID   string  `json:"indicatorId"`
	IndicatorName string  `json:"indicator"`
	Nilai         float64 `json:"nilai"`
}

type Evaluation struct {
	ID           string    `json:"id"`
	NominationID string    `json:"nominationId"`
	EvaluatorID  string    `json:"evaluatorId"`
	UnitID       string    `json:"unitId"`
	Total        float64   `json:"totalNilai"`
	Mean         float64   `json:"rataRataNilai"`
	Completed    bool      `json:"selesai"`
	SubmittedAt  time.Time `json:"tanggal"`
}

// Result is an evaluation joined with everything the history and
// review screens display.
type Result struct {
	ID            string    `json:"id"`
	EmployeeName  string    `json:"employeeName"`
	EmployeeNIP   string    `json:"employeeNip"`
	UnitName      string    `json:"unitName"`
	EvaluatorName string    `json:"evaluatorName"`
	Period        string    `json:"period"`
	Scores        []Score   `json:"scores"`
	Total         float64   `json:"totalNilai"`
	Mean          float64   `json:"rataRataNilai"`
	SubmittedAt   time.Time `json:"tanggal"`
}

// NominationRef is the slice of a nomination the engine needs: its
// frozen unit and its state.
type NominationRef struct {
	ID     string
	UnitID string
	Status string
}
