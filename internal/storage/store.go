// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/triptally/triptally/internal/models"
)

// Store defines the interface for trip, expense, and settlement storage.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	// CreateTrip persists a new trip with its participant roster.
	// The trip's ID and CreatedAt fields are populated by the store.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip retrieves a trip by ID, roster included in roster order.
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// ListTrips returns all trips, newest first, rosters included.
	ListTrips(ctx context.Context) ([]*models.Trip, error)

	// DeleteTrip removes a trip and everything belonging to it.
	DeleteTrip(ctx context.Context, tripID string) error

	// AddParticipants appends new participants to a trip's roster,
	// assigning IDs to any that lack one.
	AddParticipants(ctx context.Context, tripID string, participants []models.Participant) error

	// CreateExpense persists a new expense with its share specs.
	// The expense's ID and CreatedAt fields are populated by the store.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by ID, shares in input order.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// UpdateExpense replaces an existing expense and its shares.
	UpdateExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes an expense and its shares.
	DeleteExpense(ctx context.Context, expenseID string) error

	// ListExpensesByTrip returns a trip's expenses, oldest first, shares
	// included.
	ListExpensesByTrip(ctx context.Context, tripID string) ([]models.Expense, error)

	// CreateSettlement records a payment between participants.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// ListSettlementsByTrip returns recorded settlements, newest first.
	ListSettlementsByTrip(ctx context.Context, tripID string) ([]*models.Settlement, error)

	// DeleteSettlement removes a recorded settlement.
	DeleteSettlement(ctx context.Context, settlementID string) error

	// Close releases any resources held by the store.
	Close() error
}
