package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/triptally/triptally/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "triptally-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	trip := &models.Trip{
		Name:     "Lisbon",
		Currency: "EUR",
		Participants: []models.Participant{
			{Name: "Alice"},
			{Name: "Bob"},
			{Name: "Carol"},
		},
	}

	t.Run("CreateTrip generates IDs", func(t *testing.T) {
		if err := store.CreateTrip(ctx, trip); err != nil {
			t.Fatalf("CreateTrip failed: %v", err)
		}
		if trip.ID == "" {
			t.Error("Expected trip ID to be generated")
		}
		if trip.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
		for i, p := range trip.Participants {
			if p.ID == "" {
				t.Errorf("Expected participant %d to get an ID", i)
			}
		}
	})

	t.Run("GetTrip preserves roster order", func(t *testing.T) {
		got, err := store.GetTrip(ctx, trip.ID)
		if err != nil {
			t.Fatalf("GetTrip failed: %v", err)
		}
		if got.Name != "Lisbon" || got.Currency != "EUR" {
			t.Errorf("Trip fields mismatch: %+v", got)
		}
		if len(got.Participants) != 3 {
			t.Fatalf("Participants count = %d, want 3", len(got.Participants))
		}
		for i, want := range []string{"Alice", "Bob", "Carol"} {
			if got.Participants[i].Name != want {
				t.Errorf("Participant[%d] = %s, want %s", i, got.Participants[i].Name, want)
			}
		}
	})

	t.Run("GetTrip returns error for nonexistent trip", func(t *testing.T) {
		if _, err := store.GetTrip(ctx, "nonexistent-id"); err == nil {
			t.Error("Expected error for nonexistent trip, got nil")
		}
	})

	t.Run("AddParticipants appends after existing roster", func(t *testing.T) {
		if err := store.AddParticipants(ctx, trip.ID, []models.Participant{{Name: "Dave"}}); err != nil {
			t.Fatalf("AddParticipants failed: %v", err)
		}
		got, err := store.GetTrip(ctx, trip.ID)
		if err != nil {
			t.Fatalf("GetTrip failed: %v", err)
		}
		if len(got.Participants) != 4 || got.Participants[3].Name != "Dave" {
			t.Errorf("Expected Dave appended last, got %+v", got.Participants)
		}
	})

	var expense *models.Expense

	t.Run("CreateExpense round-trips decimal amounts", func(t *testing.T) {
		got, err := store.GetTrip(ctx, trip.ID)
		if err != nil {
			t.Fatalf("GetTrip failed: %v", err)
		}
		alice, bob := got.Participants[0], got.Participants[1]

		expense = &models.Expense{
			TripID:      trip.ID,
			Description: "Dinner",
			Amount:      dec("90.01"),
			Currency:    "EUR",
			PayerID:     alice.ID,
			SplitType:   models.SplitPercentage,
			Shares: []models.ShareSpec{
				{ParticipantID: alice.ID, Name: alice.Name, Value: dec("66.67")},
				{ParticipantID: bob.ID, Name: bob.Name, Value: dec("33.33")},
			},
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		retrieved, err := store.GetExpense(ctx, expense.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if !retrieved.Amount.Equal(dec("90.01")) {
			t.Errorf("Amount = %s, want 90.01", retrieved.Amount)
		}
		if retrieved.SplitType != models.SplitPercentage {
			t.Errorf("SplitType = %s, want PERCENTAGE", retrieved.SplitType)
		}
		if len(retrieved.Shares) != 2 {
			t.Fatalf("Shares count = %d, want 2", len(retrieved.Shares))
		}
		if !retrieved.Shares[0].Value.Equal(dec("66.67")) {
			t.Errorf("Share[0].Value = %s, want 66.67", retrieved.Shares[0].Value)
		}
		if retrieved.Shares[1].Name != "Bob" {
			t.Errorf("Share[1].Name = %s, want Bob", retrieved.Shares[1].Name)
		}
	})

	t.Run("UpdateExpense replaces shares", func(t *testing.T) {
		expense.SplitType = models.SplitEqual
		expense.Shares = expense.Shares[:1]
		if err := store.UpdateExpense(ctx, expense); err != nil {
			t.Fatalf("UpdateExpense failed: %v", err)
		}
		retrieved, err := store.GetExpense(ctx, expense.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if retrieved.SplitType != models.SplitEqual || len(retrieved.Shares) != 1 {
			t.Errorf("Update not applied: %+v", retrieved)
		}
	})

	t.Run("ListExpensesByTrip includes shares", func(t *testing.T) {
		expenses, err := store.ListExpensesByTrip(ctx, trip.ID)
		if err != nil {
			t.Fatalf("ListExpensesByTrip failed: %v", err)
		}
		if len(expenses) != 1 {
			t.Fatalf("Expenses count = %d, want 1", len(expenses))
		}
		if len(expenses[0].Shares) != 1 {
			t.Errorf("Shares not loaded: %+v", expenses[0])
		}
	})

	t.Run("Settlements round-trip", func(t *testing.T) {
		got, err := store.GetTrip(ctx, trip.ID)
		if err != nil {
			t.Fatalf("GetTrip failed: %v", err)
		}
		settlement := &models.Settlement{
			TripID: trip.ID,
			FromID: got.Participants[1].ID,
			ToID:   got.Participants[0].ID,
			Amount: dec("30.01"),
			Note:   "venmo",
		}
		if err := store.CreateSettlement(ctx, settlement); err != nil {
			t.Fatalf("CreateSettlement failed: %v", err)
		}

		settlements, err := store.ListSettlementsByTrip(ctx, trip.ID)
		if err != nil {
			t.Fatalf("ListSettlementsByTrip failed: %v", err)
		}
		if len(settlements) != 1 {
			t.Fatalf("Settlements count = %d, want 1", len(settlements))
		}
		if !settlements[0].Amount.Equal(dec("30.01")) || settlements[0].Note != "venmo" {
			t.Errorf("Settlement mismatch: %+v", settlements[0])
		}

		if err := store.DeleteSettlement(ctx, settlement.ID); err != nil {
			t.Fatalf("DeleteSettlement failed: %v", err)
		}
		if err := store.DeleteSettlement(ctx, settlement.ID); err == nil {
			t.Error("Expected error deleting twice, got nil")
		}
	})

	t.Run("DeleteExpense", func(t *testing.T) {
		if err := store.DeleteExpense(ctx, expense.ID); err != nil {
			t.Fatalf("DeleteExpense failed: %v", err)
		}
		if _, err := store.GetExpense(ctx, expense.ID); err == nil {
			t.Error("Expected error for deleted expense, got nil")
		}
	})

	t.Run("DeleteTrip cascades", func(t *testing.T) {
		if err := store.DeleteTrip(ctx, trip.ID); err != nil {
			t.Fatalf("DeleteTrip failed: %v", err)
		}
		if _, err := store.GetTrip(ctx, trip.ID); err == nil {
			t.Error("Expected error for deleted trip, got nil")
		}
	})

	t.Run("ListTrips newest first", func(t *testing.T) {
		older := &models.Trip{Name: "Porto", Currency: "EUR", CreatedAt: 100}
		newer := &models.Trip{Name: "Madrid", Currency: "EUR", CreatedAt: 200}
		for _, tr := range []*models.Trip{older, newer} {
			if err := store.CreateTrip(ctx, tr); err != nil {
				t.Fatalf("CreateTrip failed: %v", err)
			}
		}
		trips, err := store.ListTrips(ctx)
		if err != nil {
			t.Fatalf("ListTrips failed: %v", err)
		}
		if len(trips) != 2 || trips[0].Name != "Madrid" {
			t.Errorf("Expected Madrid first, got %+v", trips)
		}
	})
}
