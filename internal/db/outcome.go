package db

// Outcome makes the "created" vs "found existing" distinction an explicit
// branch instead of an implicit nil check around conflict-suppressed inserts.
type Outcome int

const (
	OutcomeInserted Outcome = iota
	OutcomeAlreadyExists
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInserted:
		return "inserted"
	case OutcomeAlreadyExists:
		return "already_exists"
	default:
		return "unknown"
	}
}
