package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/triptally/triptally/internal/apperrors"
	"github.com/triptally/triptally/internal/models"
	"github.com/triptally/triptally/internal/storage"
)

// TripService manages trips and their participant rosters.
type TripService struct {
	store storage.Store
}

// NewTripService creates a TripService with the given storage backend.
func NewTripService(store storage.Store) *TripService {
	return &TripService{store: store}
}

// CreateTrip creates a trip with the given participant names. Names must be
// non-empty and unique within the trip.
func (s *TripService) CreateTrip(ctx context.Context, name, currency string, participantNames []string) (*models.Trip, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: trip name required", apperrors.ErrValidation)
	}
	if len(participantNames) == 0 {
		return nil, fmt.Errorf("%w: at least one participant required", apperrors.ErrValidation)
	}

	seen := make(map[string]bool, len(participantNames))
	participants := make([]models.Participant, 0, len(participantNames))
	for _, pn := range participantNames {
		pn = strings.TrimSpace(pn)
		if pn == "" {
			return nil, fmt.Errorf("%w: participant name cannot be empty", apperrors.ErrValidation)
		}
		if seen[pn] {
			return nil, fmt.Errorf("%w: duplicate participant %q", apperrors.ErrDuplicate, pn)
		}
		seen[pn] = true
		participants = append(participants, models.Participant{Name: pn})
	}

	trip := &models.Trip{
		Name:         name,
		Currency:     currency,
		Participants: participants,
	}
	if err := s.store.CreateTrip(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	slog.Info("Trip created", "trip_id", trip.ID, "participants", len(trip.Participants))
	return trip, nil
}

// GetTrip retrieves a trip by ID.
func (s *TripService) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("%w: trip %s", apperrors.ErrNotFound, tripID)
	}
	return trip, nil
}

// ListTrips returns all trips.
func (s *TripService) ListTrips(ctx context.Context) ([]*models.Trip, error) {
	return s.store.ListTrips(ctx)
}

// DeleteTrip removes a trip and everything belonging to it.
func (s *TripService) DeleteTrip(ctx context.Context, tripID string) error {
	if err := s.store.DeleteTrip(ctx, tripID); err != nil {
		return fmt.Errorf("%w: trip %s", apperrors.ErrNotFound, tripID)
	}
	slog.Info("Trip deleted", "trip_id", tripID)
	return nil
}

// AddParticipants appends named participants to a trip's roster, skipping
// names that are already on it.
func (s *TripService) AddParticipants(ctx context.Context, tripID string, names []string) (*models.Trip, error) {
	trip, err := s.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	newOnes := findNewParticipants(names, trip.Participants)
	if len(newOnes) > 0 {
		if err := s.store.AddParticipants(ctx, tripID, newOnes); err != nil {
			return nil, fmt.Errorf("failed to add participants: %w", err)
		}
		slog.Info("Participants added", "trip_id", tripID, "count", len(newOnes))
	}

	return s.GetTrip(ctx, tripID)
}

// findNewParticipants returns one Participant per name not already on the
// roster.
func findNewParticipants(names []string, existing []models.Participant) []models.Participant {
	onRoster := make(map[string]bool, len(existing))
	for _, p := range existing {
		onRoster[p.Name] = true
	}

	var newOnes []models.Participant
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || onRoster[name] {
			continue
		}
		onRoster[name] = true
		newOnes = append(newOnes, models.Participant{Name: name})
	}
	return newOnes
}
