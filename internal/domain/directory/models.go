package directory

import "time"

type Unit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type Employee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NIP       string    `json:"nip"`
	UnitID    string    `json:"unitId"`
	UnitName  string    `json:"unitName"`
	CreatedAt time.Time `json:"createdAt"`
}

// CascadeResult reports what an employee delete removed alongside the
// employee row itself.
type CascadeResult struct {
	EvaluationsDeleted int `json:"evaluationsDeleted"`
	NominationsDeleted int `json:"nominationsDeleted"`
}
