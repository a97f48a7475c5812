package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidSplit is the validation class for malformed split
// specifications: percentages off 100, custom amounts off the expense
// total, bad share weights. Always wrapped in a *SplitError naming the
// offending expense.
var ErrInvalidSplit = errors.New("invalid split specification")

// ErrInconsistentBalances means the balance accumulation and the debt-graph
// fold disagree beyond tolerance. That is an engine bug, not bad input, and
// the calculation fails loudly rather than returning a plausible-looking
// wrong result.
var ErrInconsistentBalances = errors.New("balance accumulation and debt graph disagree")

// SplitError identifies the expense whose split specification failed
// validation. A single malformed expense invalidates the whole calculation;
// no partial balance sheet is ever returned.
type SplitError struct {
	// ExpenseID is the offending expense's ID, if it has one.
	ExpenseID string

	// Description is the offending expense's label, for user-facing
	// messages.
	Description string

	// Reason explains what was wrong with the specification.
	Reason string

	err error
}

func (e *SplitError) Error() string {
	label := e.Description
	if label == "" {
		label = e.ExpenseID
	}
	return fmt.Sprintf("expense %q: %s", label, e.Reason)
}

func (e *SplitError) Unwrap() error {
	return e.err
}

func splitErr(exp expenseRef, wrapped error, format string, args ...any) *SplitError {
	return &SplitError{
		ExpenseID:   exp.id,
		Description: exp.description,
		Reason:      fmt.Sprintf(format, args...),
		err:         wrapped,
	}
}

type expenseRef struct {
	id          string
	description string
}
