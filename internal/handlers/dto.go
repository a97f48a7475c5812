package handlers

import (
	"github.com/shopspring/decimal"

	"github.com/triptally/triptally/internal/engine"
	"github.com/triptally/triptally/internal/models"
	"github.com/triptally/triptally/internal/money"
)

// Request/response shapes for the JSON API. Amounts travel as decimal
// strings, never floats.

type createTripRequest struct {
	Name         string   `json:"name" binding:"required"`
	Currency     string   `json:"currency" binding:"required"`
	Participants []string `json:"participants" binding:"required,min=1"`
}

type addParticipantsRequest struct {
	Names []string `json:"names" binding:"required,min=1"`
}

type participantResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type tripResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Currency     string                `json:"currency"`
	Participants []participantResponse `json:"participants"`
	CreatedAt    int64                 `json:"createdAt"`
}

func toTripResponse(trip *models.Trip) tripResponse {
	participants := make([]participantResponse, len(trip.Participants))
	for i, p := range trip.Participants {
		participants[i] = participantResponse{ID: p.ID, Name: p.Name}
	}
	return tripResponse{
		ID:           trip.ID,
		Name:         trip.Name,
		Currency:     trip.Currency,
		Participants: participants,
		CreatedAt:    trip.CreatedAt,
	}
}

type shareSpecRequest struct {
	ParticipantID string          `json:"participantId" binding:"required"`
	Value         decimal.Decimal `json:"value"`
}

type expenseRequest struct {
	Description string             `json:"description" binding:"required"`
	Amount      decimal.Decimal    `json:"amount"`
	Currency    string             `json:"currency"`
	PayerID     string             `json:"payerId" binding:"required"`
	SplitType   string             `json:"splitType" binding:"required"`
	Shares      []shareSpecRequest `json:"shares" binding:"required,min=1"`
}

func (r *expenseRequest) toModel(tripID, expenseID string) *models.Expense {
	shares := make([]models.ShareSpec, len(r.Shares))
	for i, sh := range r.Shares {
		shares[i] = models.ShareSpec{ParticipantID: sh.ParticipantID, Value: sh.Value}
	}
	return &models.Expense{
		ID:          expenseID,
		TripID:      tripID,
		Description: r.Description,
		Amount:      r.Amount,
		Currency:    r.Currency,
		PayerID:     r.PayerID,
		SplitType:   models.SplitType(r.SplitType),
		Shares:      shares,
	}
}

type shareResponse struct {
	ParticipantID string          `json:"participantId"`
	Name          string          `json:"name,omitempty"`
	Value         decimal.Decimal `json:"value"`
	Amount        decimal.Decimal `json:"amount"`
}

type expenseResponse struct {
	ID          string          `json:"id"`
	TripID      string          `json:"tripId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	PayerID     string          `json:"payerId"`
	SplitType   string          `json:"splitType"`
	Shares      []shareResponse `json:"shares"`
	CreatedAt   int64           `json:"createdAt"`
}

func toExpenseResponse(expense *models.Expense) expenseResponse {
	shares := make([]shareResponse, len(expense.Shares))
	for i, sh := range expense.Shares {
		shares[i] = shareResponse{
			ParticipantID: sh.ParticipantID,
			Name:          sh.Name,
			Value:         sh.Value,
			Amount:        sh.Amount,
		}
	}
	return expenseResponse{
		ID:          expense.ID,
		TripID:      expense.TripID,
		Description: expense.Description,
		Amount:      expense.Amount,
		Currency:    expense.Currency,
		PayerID:     expense.PayerID,
		SplitType:   string(expense.SplitType),
		Shares:      shares,
		CreatedAt:   expense.CreatedAt,
	}
}

type balanceResponse struct {
	ParticipantID string          `json:"participantId"`
	Name          string          `json:"name,omitempty"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	TotalShare    decimal.Decimal `json:"totalShare"`
	Balance       decimal.Decimal `json:"balance"`
	Display       string          `json:"display"`
}

type transferResponse struct {
	FromID  string          `json:"fromId"`
	ToID    string          `json:"toId"`
	Amount  decimal.Decimal `json:"amount"`
	Display string          `json:"display"`
}

type summaryResponse struct {
	SettlementCount       int             `json:"settlementCount"`
	TotalToTransfer       decimal.Decimal `json:"totalToTransfer"`
	AveragePerParticipant decimal.Decimal `json:"averagePerParticipant"`
	IsBalanced            bool            `json:"isBalanced"`
}

type tripBalancesResponse struct {
	TripID        string             `json:"tripId"`
	Currency      string             `json:"currency"`
	Balances      []balanceResponse  `json:"balances"`
	Debts         []transferResponse `json:"debts"`
	Settlements   []transferResponse `json:"settlements"`
	TotalExpenses decimal.Decimal    `json:"totalExpenses"`
	Summary       summaryResponse    `json:"summary"`
}

func toTripBalancesResponse(trip *models.Trip, result *engine.Result) tripBalancesResponse {
	balances := make([]balanceResponse, len(result.Balances))
	for i, b := range result.Balances {
		balances[i] = balanceResponse{
			ParticipantID: b.ParticipantID,
			Name:          b.Name,
			TotalPaid:     b.TotalPaid,
			TotalShare:    b.TotalShare,
			Balance:       b.Balance,
			Display:       money.Format(b.Balance, trip.Currency),
		}
	}

	debts := make([]transferResponse, len(result.Debts))
	for i, d := range result.Debts {
		debts[i] = transferResponse{
			FromID:  d.FromID,
			ToID:    d.ToID,
			Amount:  d.Amount,
			Display: money.Format(d.Amount, trip.Currency),
		}
	}

	settlements := make([]transferResponse, len(result.Settlements))
	for i, s := range result.Settlements {
		settlements[i] = transferResponse{
			FromID:  s.FromID,
			ToID:    s.ToID,
			Amount:  s.Amount,
			Display: money.Format(s.Amount, trip.Currency),
		}
	}

	return tripBalancesResponse{
		TripID:        trip.ID,
		Currency:      trip.Currency,
		Balances:      balances,
		Debts:         debts,
		Settlements:   settlements,
		TotalExpenses: result.TotalExpenses,
		Summary: summaryResponse{
			SettlementCount:       result.Summary.SettlementCount,
			TotalToTransfer:       result.Summary.TotalToTransfer,
			AveragePerParticipant: result.Summary.AveragePerParticipant,
			IsBalanced:            result.Summary.IsBalanced,
		},
	}
}

type settlementRequest struct {
	FromID string          `json:"fromId" binding:"required"`
	ToID   string          `json:"toId" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note"`
}

type settlementResponse struct {
	ID        string          `json:"id"`
	TripID    string          `json:"tripId"`
	FromID    string          `json:"fromId"`
	ToID      string          `json:"toId"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note,omitempty"`
	CreatedAt int64           `json:"createdAt"`
}

func toSettlementResponse(s *models.Settlement) settlementResponse {
	return settlementResponse{
		ID:        s.ID,
		TripID:    s.TripID,
		FromID:    s.FromID,
		ToID:      s.ToID,
		Amount:    s.Amount,
		Note:      s.Note,
		CreatedAt: s.CreatedAt,
	}
}
