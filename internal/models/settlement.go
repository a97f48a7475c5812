package models

import "github.com/shopspring/decimal"

// Settlement is a recorded payment between trip participants to clear
// debts. Recorded settlements are bookkeeping the application layer keeps;
// the calculation engine never reads them and always computes its plan
// fresh from expenses.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// TripID is the trip this settlement belongs to.
	TripID string

	// FromID is the participant who paid (debtor settling up).
	FromID string

	// ToID is the participant who received payment (creditor being paid).
	ToID string

	// Amount is the payment amount at cent precision.
	Amount decimal.Decimal

	// Note is an optional description for the settlement.
	Note string

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64
}
