package nomination

const (
	StatusNominated = "nominated"
	StatusCompleted = "completed"

	// MaxActivePerPeriod caps how many un-evaluated nominations one unit
	// leader may hold open in a single period.
	MaxActivePerPeriod = 2
)
