package models

// Participant is one member of a trip.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	ID string

	// Name is the display name of the participant.
	Name string
}

// Trip represents a group of people sharing expenses, e.g. "Lisbon 2026".
// The trip's participant roster, not the expense set, determines which
// participants appear in balance output.
type Trip struct {
	// ID is the unique identifier for the trip (UUID format).
	ID string

	// Name is the display name of the trip.
	Name string

	// Currency is the trip's display currency tag (ISO 4217). It is opaque
	// to the engine; no conversion happens anywhere.
	Currency string

	// Participants is the ordered roster of trip members. Order matters:
	// it is the tie-break order for rounding-remainder assignment.
	Participants []Participant

	// CreatedAt is the Unix timestamp when the trip was created.
	CreatedAt int64
}

// ParticipantIDs returns the roster's IDs in roster order.
func (t *Trip) ParticipantIDs() []string {
	ids := make([]string, len(t.Participants))
	for i, p := range t.Participants {
		ids[i] = p.ID
	}
	return ids
}

// HasParticipant reports whether the given ID is on the roster.
func (t *Trip) HasParticipant(id string) bool {
	for _, p := range t.Participants {
		if p.ID == id {
			return true
		}
	}
	return false
}
