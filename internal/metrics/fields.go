package metrics

// Metric attribute keys shared by every instrument.
const (
	AttrQuery   = "query"
	AttrOutcome = "outcome"
)
