package models

import "github.com/shopspring/decimal"

// SplitType is the rule governing how an expense's total is divided among
// its sharing participants.
type SplitType string

const (
	// SplitEqual divides the total evenly among the sharers.
	SplitEqual SplitType = "EQUAL"

	// SplitPercentage divides the total by per-sharer percentages that must
	// sum to 100.
	SplitPercentage SplitType = "PERCENTAGE"

	// SplitCustom uses literal per-sharer amounts that must sum to the
	// expense total.
	SplitCustom SplitType = "CUSTOM"

	// SplitShares divides the total proportionally to per-sharer weights.
	SplitShares SplitType = "SHARES"
)

// Valid reports whether s is one of the known split types.
func (s SplitType) Valid() bool {
	switch s {
	case SplitEqual, SplitPercentage, SplitCustom, SplitShares:
		return true
	}
	return false
}

// ShareSpec is one participant's stake in one expense.
type ShareSpec struct {
	// ParticipantID identifies the sharing participant.
	ParticipantID string

	// Name is the participant's display name at the time of entry.
	Name string

	// Value is interpreted according to the expense's split type: a
	// percentage, a literal amount, or a relative weight. Unused for EQUAL.
	Value decimal.Decimal

	// Amount is the money this participant owes for this expense. It is
	// derived once per calculation pass and never mutated afterward.
	Amount decimal.Decimal
}

// Expense is a single shared cost. Expenses are immutable inputs to a
// calculation; the engine never modifies them.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// TripID is the trip this expense belongs to.
	TripID string

	// Description is the human-readable label (e.g. "Dinner", "Fuel").
	Description string

	// Amount is the full expense total at cent precision.
	Amount decimal.Decimal

	// Currency is an opaque display tag; it is never converted.
	Currency string

	// PayerID identifies who paid the full amount.
	PayerID string

	// SplitType selects how Shares' Values are interpreted.
	SplitType SplitType

	// Shares is the ordered list of sharing participants. Order matters:
	// earlier sharers absorb rounding remainders for EQUAL splits.
	Shares []ShareSpec

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}
