// Package defaults centralizes the CLI defaults so flags, docs, and
// tests stay in sync.
package defaults

// Range defaults. Conservative on purpose: the combinator enforces no
// size cap, so the shipped ranges keep the Cartesian product small.
const (
	YearRange   = "2019-2022"
	MonthRange  = "2,3"
	DayRange    = "1-3"
	NumberRange = "1,2"
)

// Levels is the default extension level selection.
const Levels = "1,2"
