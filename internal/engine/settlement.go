package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/triptally/triptally/internal/money"
)

// optimizeSettlements collapses net balances into the fewest payment
// instructions the greedy heuristic can find: repeatedly match the largest
// creditor against the largest debtor and settle min(credit, debt).
//
// The result is deterministic (ties order by participant ID), terminates in
// at most creditors+debtors-1 steps, and fully covers every debtor when the
// conservation invariant holds. It is not guaranteed globally minimal in
// every topology; the exact minimum is NP-hard and not worth it here.
func optimizeSettlements(balances map[string]*UserBalance, order []string) []PlannedSettlement {
	type party struct {
		id     string
		amount decimal.Decimal // positive for both sides
	}

	var creditors, debtors []party
	for _, id := range order {
		b := balances[id]
		switch {
		case b.Balance.GreaterThan(money.Tolerance):
			creditors = append(creditors, party{id: id, amount: b.Balance})
		case b.Balance.LessThan(money.Tolerance.Neg()):
			debtors = append(debtors, party{id: id, amount: b.Balance.Neg()})
		}
		// Anyone inside the tolerance band is already settled.
	}

	byAmountDesc := func(parties []party) func(i, j int) bool {
		return func(i, j int) bool {
			if !parties[i].amount.Equal(parties[j].amount) {
				return parties[i].amount.GreaterThan(parties[j].amount)
			}
			return parties[i].id < parties[j].id
		}
	}
	sort.SliceStable(creditors, byAmountDesc(creditors))
	sort.SliceStable(debtors, byAmountDesc(debtors))

	var plan []PlannedSettlement
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := debtors[i].amount
		if creditors[j].amount.LessThan(amount) {
			amount = creditors[j].amount
		}

		// Tiny residuals are dropped, never emitted as near-zero payments.
		if amount.GreaterThan(money.Tolerance) {
			plan = append(plan, PlannedSettlement{
				FromID: debtors[i].id,
				ToID:   creditors[j].id,
				Amount: amount,
			})
		}

		debtors[i].amount = money.Sub(debtors[i].amount, amount)
		creditors[j].amount = money.Sub(creditors[j].amount, amount)

		if debtors[i].amount.LessThan(money.Tolerance) {
			i++
		}
		if creditors[j].amount.LessThan(money.Tolerance) {
			j++
		}
	}

	return plan
}
