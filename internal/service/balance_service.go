package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/triptally/triptally/internal/apperrors"
	"github.com/triptally/triptally/internal/engine"
	"github.com/triptally/triptally/internal/models"
	"github.com/triptally/triptally/internal/storage"
)

// BalanceService runs the calculation engine over a trip's expenses and
// keeps the book of manually recorded settlements. The computed plan and
// the recorded payments stay separate: the engine always works fresh from
// expenses and never sees what has already been paid.
type BalanceService struct {
	store storage.Store
}

// NewBalanceService creates a BalanceService with the given storage
// backend.
func NewBalanceService(store storage.Store) *BalanceService {
	return &BalanceService{store: store}
}

// TripBalances is a trip's engine result together with the trip it was
// computed for.
type TripBalances struct {
	Trip   *models.Trip
	Result *engine.Result
}

// CalculateBalances loads a trip's roster and expenses and computes
// balances, the debt graph, and the optimized settlement plan.
func (s *BalanceService) CalculateBalances(ctx context.Context, tripID string) (*TripBalances, error) {
	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("%w: trip %s", apperrors.ErrNotFound, tripID)
	}

	expenses, err := s.store.ListExpensesByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	result, err := engine.Calculate(expenses, trip.Participants)
	if err != nil {
		return nil, err
	}

	slog.Debug("Balances calculated",
		"trip_id", tripID,
		"expenses", len(expenses),
		"settlements", result.Summary.SettlementCount,
		"is_balanced", result.Summary.IsBalanced,
	)
	return &TripBalances{Trip: trip, Result: result}, nil
}

// RecordSettlement records a payment between two roster participants.
func (s *BalanceService) RecordSettlement(ctx context.Context, settlement *models.Settlement) (*models.Settlement, error) {
	trip, err := s.store.GetTrip(ctx, settlement.TripID)
	if err != nil {
		return nil, fmt.Errorf("%w: trip %s", apperrors.ErrNotFound, settlement.TripID)
	}

	if !trip.HasParticipant(settlement.FromID) || !trip.HasParticipant(settlement.ToID) {
		return nil, fmt.Errorf("%w: settlement parties must be on the trip roster", apperrors.ErrValidation)
	}
	if settlement.FromID == settlement.ToID {
		return nil, fmt.Errorf("%w: cannot settle with oneself", apperrors.ErrValidation)
	}
	if !settlement.Amount.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: settlement amount must be positive", apperrors.ErrValidation)
	}

	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		return nil, fmt.Errorf("failed to record settlement: %w", err)
	}
	slog.Info("Settlement recorded", "settlement_id", settlement.ID, "trip_id", settlement.TripID,
		"amount", settlement.Amount)
	return settlement, nil
}

// ListSettlements returns a trip's recorded settlements.
func (s *BalanceService) ListSettlements(ctx context.Context, tripID string) ([]*models.Settlement, error) {
	if _, err := s.store.GetTrip(ctx, tripID); err != nil {
		return nil, fmt.Errorf("%w: trip %s", apperrors.ErrNotFound, tripID)
	}
	return s.store.ListSettlementsByTrip(ctx, tripID)
}

// DeleteSettlement removes a recorded settlement.
func (s *BalanceService) DeleteSettlement(ctx context.Context, settlementID string) error {
	if err := s.store.DeleteSettlement(ctx, settlementID); err != nil {
		return fmt.Errorf("%w: settlement %s", apperrors.ErrNotFound, settlementID)
	}
	slog.Info("Settlement deleted", "settlement_id", settlementID)
	return nil
}
