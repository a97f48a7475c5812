// Package engine turns a snapshot of trip expenses into per-participant net
// balances and a minimal settlement plan.
//
// A calculation is a pure function of its expense list plus the trip roster:
// the engine holds no state between invocations, so concurrent calculations
// need no coordination.
package engine

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/triptally/triptally/internal/models"
	"github.com/triptally/triptally/internal/money"
)

// UserBalance is one participant's position across all expenses.
type UserBalance struct {
	// ParticipantID identifies the participant.
	ParticipantID string

	// Name is the participant's display name, when known.
	Name string

	// TotalPaid is the sum of expense totals this participant paid.
	TotalPaid decimal.Decimal

	// TotalShare is the sum of this participant's computed shares.
	TotalShare decimal.Decimal

	// Balance is TotalPaid - TotalShare. Positive means they are owed
	// money; negative means they owe.
	Balance decimal.Decimal
}

// DebtRelationship is a raw directed obligation (debtor -> creditor)
// accumulated straight from expense data, before settlement minimization.
// It is kept in the result for auditability; the settlement plan is derived
// from net balances, not from these edges.
type DebtRelationship struct {
	FromID string
	ToID   string
	Amount decimal.Decimal
}

// PlannedSettlement is a single directed payment instruction in the
// optimized plan. It carries no persistent identity; recording paid/pending
// status is the application layer's business.
type PlannedSettlement struct {
	FromID string
	ToID   string
	Amount decimal.Decimal
}

// Summary is the headline numbers for a calculation.
type Summary struct {
	// SettlementCount is the number of payments in the optimized plan.
	SettlementCount int

	// TotalToTransfer is the total money that must change hands.
	TotalToTransfer decimal.Decimal

	// AveragePerParticipant is total expenses divided by participant
	// count; zero when there are no participants.
	AveragePerParticipant decimal.Decimal

	// IsBalanced is true iff every participant's balance is within
	// tolerance of zero, i.e. the trip needs zero settlements.
	IsBalanced bool
}

// Result is the full output of one calculation.
type Result struct {
	// Balances holds every roster participant plus anyone appearing in an
	// expense, sorted descending by balance.
	Balances []UserBalance

	// Debts is the raw pairwise debt graph, one edge per ordered pair.
	Debts []DebtRelationship

	// Settlements is the optimized payment plan.
	Settlements []PlannedSettlement

	// TotalExpenses is the sum of all expense totals.
	TotalExpenses decimal.Decimal

	Summary Summary
}

// Calculate computes balances, the debt graph, and the minimal settlement
// plan for the given expenses. Every ID in roster appears in the output
// even if it never occurs in an expense; the roster, not the expense set,
// determines completeness. A single malformed expense aborts the whole
// calculation with a *SplitError.
func Calculate(expenses []models.Expense, roster []models.Participant) (*Result, error) {
	balances := make(map[string]*UserBalance)
	var order []string // deterministic iteration: roster order, then first appearance

	ensure := func(id, name string) *UserBalance {
		b, ok := balances[id]
		if !ok {
			b = &UserBalance{ParticipantID: id, Name: name}
			balances[id] = b
			order = append(order, id)
		}
		if b.Name == "" {
			b.Name = name
		}
		return b
	}

	for _, p := range roster {
		ensure(p.ID, p.Name)
	}

	// debts[debtor][creditor] accumulates every share owed to a payer.
	debts := make(map[string]map[string]decimal.Decimal)
	total := decimal.Zero

	for i := range expenses {
		exp := &expenses[i]

		shares, err := ComputeShares(exp)
		if err != nil {
			return nil, err
		}

		total = money.Add(total, money.Round(exp.Amount))

		payer := ensure(exp.PayerID, "")
		payer.TotalPaid = money.Add(payer.TotalPaid, exp.Amount)

		for _, sh := range shares {
			b := ensure(sh.ParticipantID, sh.Name)
			b.TotalShare = money.Add(b.TotalShare, sh.Amount)

			if sh.ParticipantID == exp.PayerID {
				continue
			}
			row, ok := debts[sh.ParticipantID]
			if !ok {
				row = make(map[string]decimal.Decimal)
				debts[sh.ParticipantID] = row
			}
			row[exp.PayerID] = money.Add(row[exp.PayerID], sh.Amount)
		}
	}

	for _, b := range balances {
		b.Balance = money.Sub(b.TotalPaid, b.TotalShare)
	}

	if err := checkConsistency(balances, debts); err != nil {
		return nil, err
	}

	settlements := optimizeSettlements(balances, order)

	result := &Result{
		Balances:      assembleBalances(balances, order),
		Debts:         assembleDebts(debts, order),
		Settlements:   settlements,
		TotalExpenses: total,
	}
	result.Summary = summarize(result)
	return result, nil
}

// checkConsistency folds the debt graph back into net balances and compares
// against the accumulated ones. The two derivations must agree within
// tolerance; a mismatch is an engine bug.
func checkConsistency(balances map[string]*UserBalance, debts map[string]map[string]decimal.Decimal) error {
	folded := make(map[string]decimal.Decimal, len(balances))
	for debtor, row := range debts {
		for creditor, amt := range row {
			folded[debtor] = money.Sub(folded[debtor], amt)
			folded[creditor] = money.Add(folded[creditor], amt)
		}
	}
	for id, b := range balances {
		if !money.Equal(folded[id], b.Balance) {
			return fmt.Errorf("%w: participant %s has %s accumulated vs %s folded",
				ErrInconsistentBalances, id, b.Balance, folded[id])
		}
	}
	return nil
}

func assembleBalances(balances map[string]*UserBalance, order []string) []UserBalance {
	out := make([]UserBalance, 0, len(order))
	for _, id := range order {
		out = append(out, *balances[id])
	}
	// Descending by balance is a display convenience; ID breaks ties so the
	// output is identical run to run.
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Balance.Equal(out[j].Balance) {
			return out[i].Balance.GreaterThan(out[j].Balance)
		}
		return out[i].ParticipantID < out[j].ParticipantID
	})
	return out
}

func assembleDebts(debts map[string]map[string]decimal.Decimal, order []string) []DebtRelationship {
	var out []DebtRelationship
	for _, debtor := range order {
		row, ok := debts[debtor]
		if !ok {
			continue
		}
		for _, creditor := range order {
			amt, ok := row[creditor]
			if !ok || money.IsZero(amt) {
				continue
			}
			out = append(out, DebtRelationship{FromID: debtor, ToID: creditor, Amount: amt})
		}
	}
	return out
}

func summarize(r *Result) Summary {
	totalToTransfer := decimal.Zero
	for _, s := range r.Settlements {
		totalToTransfer = money.Add(totalToTransfer, s.Amount)
	}

	balanced := true
	for _, b := range r.Balances {
		if !money.IsZero(b.Balance) {
			balanced = false
			break
		}
	}

	// An empty roster has no meaningful average; zero, never Inf.
	average := decimal.Zero
	if n := len(r.Balances); n > 0 {
		average, _ = money.Div(r.TotalExpenses, decimal.NewFromInt(int64(n)))
	}

	return Summary{
		SettlementCount:       len(r.Settlements),
		TotalToTransfer:       totalToTransfer,
		AveragePerParticipant: average,
		IsBalanced:            balanced,
	}
}
