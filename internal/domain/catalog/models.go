package catalog

import "time"

// Indicator is a named scoring criterion applied uniformly across an
// evaluation. Scores reference indicators by id, so renames never
// detach historical results.
type Indicator struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
