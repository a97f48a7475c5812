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

// ExpenseService manages a trip's expenses. Split specifications are
// validated with the engine before anything is persisted, so the store
// never holds an expense the calculation would reject.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates an ExpenseService with the given storage
// backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// CreateExpense validates and persists a new expense. The returned expense
// carries computed share amounts.
func (s *ExpenseService) CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	shares, err := s.validateExpense(ctx, expense)
	if err != nil {
		return nil, err
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	slog.Info("Expense created", "expense_id", expense.ID, "trip_id", expense.TripID,
		"amount", expense.Amount, "split_type", expense.SplitType)

	out := *expense
	out.Shares = shares
	return &out, nil
}

// UpdateExpense validates and replaces an existing expense.
func (s *ExpenseService) UpdateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	existing, err := s.store.GetExpense(ctx, expense.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expense.ID)
	}
	expense.TripID = existing.TripID
	expense.CreatedAt = existing.CreatedAt

	shares, err := s.validateExpense(ctx, expense)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	slog.Info("Expense updated", "expense_id", expense.ID, "trip_id", expense.TripID)

	out := *expense
	out.Shares = shares
	return &out, nil
}

// GetExpense retrieves an expense with computed share amounts.
func (s *ExpenseService) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expense, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expenseID)
	}

	shares, err := engine.ComputeShares(expense)
	if err != nil {
		// Stored expenses passed validation on write; this means the data
		// was mutated out from under us.
		return nil, fmt.Errorf("stored expense no longer computes: %w", err)
	}
	expense.Shares = shares
	return expense, nil
}

// DeleteExpense removes an expense.
func (s *ExpenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.store.DeleteExpense(ctx, expenseID); err != nil {
		return fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expenseID)
	}
	slog.Info("Expense deleted", "expense_id", expenseID)
	return nil
}

// ListExpensesByTrip returns a trip's expenses with computed share amounts.
func (s *ExpenseService) ListExpensesByTrip(ctx context.Context, tripID string) ([]models.Expense, error) {
	if _, err := s.store.GetTrip(ctx, tripID); err != nil {
		return nil, fmt.Errorf("%w: trip %s", apperrors.ErrNotFound, tripID)
	}

	expenses, err := s.store.ListExpensesByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	for i := range expenses {
		shares, err := engine.ComputeShares(&expenses[i])
		if err != nil {
			return nil, fmt.Errorf("stored expense no longer computes: %w", err)
		}
		expenses[i].Shares = shares
	}
	return expenses, nil
}

// validateExpense checks the expense structurally against its trip and runs
// the engine's share computation once, returning the computed shares.
func (s *ExpenseService) validateExpense(ctx context.Context, expense *models.Expense) ([]models.ShareSpec, error) {
	trip, err := s.store.GetTrip(ctx, expense.TripID)
	if err != nil {
		return nil, fmt.Errorf("%w: trip %s", apperrors.ErrNotFound, expense.TripID)
	}

	if expense.Amount.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be non-negative", apperrors.ErrValidation)
	}
	if !expense.SplitType.Valid() {
		return nil, fmt.Errorf("%w: unknown split type %q", apperrors.ErrValidation, expense.SplitType)
	}
	if !trip.HasParticipant(expense.PayerID) {
		return nil, fmt.Errorf("%w: payer %s is not on the trip roster", apperrors.ErrValidation, expense.PayerID)
	}
	for _, sh := range expense.Shares {
		if !trip.HasParticipant(sh.ParticipantID) {
			return nil, fmt.Errorf("%w: sharer %s is not on the trip roster", apperrors.ErrValidation, sh.ParticipantID)
		}
	}
	if expense.Currency == "" {
		expense.Currency = trip.Currency
	}

	shares, err := engine.ComputeShares(expense)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return shares, nil
}
