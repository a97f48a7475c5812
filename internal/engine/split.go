package engine

import (
	"github.com/shopspring/decimal"

	"github.com/triptally/triptally/internal/models"
	"github.com/triptally/triptally/internal/money"
)

// ComputeShares derives each sharer's amount for one expense, dispatching
// on the split type. It returns a copy of the expense's ShareSpecs with
// Amount filled in; the input expense is never modified. The amounts are
// guaranteed to sum exactly to the expense total.
func ComputeShares(exp *models.Expense) ([]models.ShareSpec, error) {
	ref := expenseRef{id: exp.ID, description: exp.Description}

	if len(exp.Shares) == 0 {
		return nil, splitErr(ref, money.ErrInvalidDistribution, "no sharing participants")
	}
	if exp.Amount.IsNegative() {
		return nil, splitErr(ref, money.ErrInvalidDistribution, "negative amount %s", exp.Amount)
	}

	var (
		parts []decimal.Decimal
		err   error
	)
	switch exp.SplitType {
	case models.SplitEqual:
		parts, err = money.Distribute(exp.Amount, len(exp.Shares))
		if err != nil {
			return nil, splitErr(ref, err, "cannot divide %s among %d participants", exp.Amount, len(exp.Shares))
		}

	case models.SplitPercentage:
		parts, err = money.DistributeByPercentages(exp.Amount, shareValues(exp.Shares))
		if err != nil {
			return nil, splitErr(ref, ErrInvalidSplit, "percentages must sum to 100")
		}

	case models.SplitCustom:
		parts = make([]decimal.Decimal, len(exp.Shares))
		declared := decimal.Zero
		for i, sh := range exp.Shares {
			parts[i] = money.Round(sh.Value)
			declared = declared.Add(parts[i])
		}
		if !money.Equal(declared, exp.Amount) {
			return nil, splitErr(ref, ErrInvalidSplit, "custom amounts sum to %s, expense total is %s", declared, exp.Amount)
		}

	case models.SplitShares:
		parts, err = money.DistributeByShares(exp.Amount, shareValues(exp.Shares))
		if err != nil {
			return nil, splitErr(ref, ErrInvalidSplit, "share weights must be non-negative with a positive sum")
		}

	default:
		return nil, splitErr(ref, ErrInvalidSplit, "unknown split type %q", exp.SplitType)
	}

	shares := make([]models.ShareSpec, len(exp.Shares))
	copy(shares, exp.Shares)
	for i := range shares {
		shares[i].Amount = parts[i]
	}
	return shares, nil
}

func shareValues(shares []models.ShareSpec) []decimal.Decimal {
	values := make([]decimal.Decimal, len(shares))
	for i, sh := range shares {
		values[i] = sh.Value
	}
	return values
}
