package nomination

import "time"

// Nomination proposes one employee for evaluation in one period. The
// unit is copied from the employee at creation time and never follows
// later transfers.
type Nomination struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	UnitID      string    `json:"unitId"`
	NominatedBy string    `json:"nominatedBy"`
	Period      string    `json:"period"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Enriched is a nomination joined with display fields for review and
// history screens.
type Enriched struct {
	Nomination
	EmployeeName string `json:"employeeName"`
	EmployeeNIP  string `json:"employeeNip"`
	UnitName     string `json:"unitName"`
}

// EmployeeRef is the slice of the directory a nomination needs.
type EmployeeRef struct {
	ID     string
	Name   string
	NIP    string
	UnitID string
}
