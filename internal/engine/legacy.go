package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/triptally/triptally/internal/models"
)

// LegacyExpense is the older flat record shape: participants referenced by
// display name only, always split equally, no per-sharer values.
type LegacyExpense struct {
	Description string
	Amount      decimal.Decimal
	Currency    string
	PaidBy      string
	SharedWith  []string
}

// ConvertLegacy upgrades a legacy record into an Expense, resolving names
// against the trip roster. A name that matches no roster participant is an
// error; no placeholder participant is ever fabricated.
func ConvertLegacy(legacy LegacyExpense, roster []models.Participant) (models.Expense, error) {
	byName := make(map[string]models.Participant, len(roster))
	for _, p := range roster {
		byName[p.Name] = p
	}

	resolve := func(name string) (models.Participant, error) {
		p, ok := byName[name]
		if !ok {
			return models.Participant{}, fmt.Errorf("legacy expense %q references unknown participant %q", legacy.Description, name)
		}
		return p, nil
	}

	payer, err := resolve(legacy.PaidBy)
	if err != nil {
		return models.Expense{}, err
	}

	shares := make([]models.ShareSpec, len(legacy.SharedWith))
	for i, name := range legacy.SharedWith {
		p, err := resolve(name)
		if err != nil {
			return models.Expense{}, err
		}
		shares[i] = models.ShareSpec{ParticipantID: p.ID, Name: p.Name}
	}

	return models.Expense{
		Description: legacy.Description,
		Amount:      legacy.Amount,
		Currency:    legacy.Currency,
		PayerID:     payer.ID,
		SplitType:   models.SplitEqual,
		Shares:      shares,
	}, nil
}
