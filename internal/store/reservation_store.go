package store

import (
	"sync"

	"github.com/TECH-MENTORING-EU/FoodRescue/internal/domain"
)

// ReservationStore is an in-process ledger of reservations against
// analyzed food items, mutex-guarded like AnalysisStore. Reservations are
// never updated or deleted once added.
//
// The reserved amount is recorded as given; it is not checked against the
// detected quantity of the referenced analysis item (see DESIGN.md).
type ReservationStore struct {
	mu           sync.Mutex
	reservations []domain.FoodReservation
}

func NewReservationStore() *ReservationStore {
	return &ReservationStore{}
}

// AddReservation appends to the ledger. The reservation's ReservedAt was
// stamped by its constructor; the store records it unchanged.
func (s *ReservationStore) AddReservation(r domain.FoodReservation) {
	s.mu.Lock()
	s.reservations = append(s.reservations, r)
	s.mu.Unlock()
}

// ViewReservations returns the calling user's reservations in insertion
// order. Identity match is exact. The result is never nil.
func (s *ReservationStore) ViewReservations(userID string) []domain.FoodReservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.FoodReservation, 0)
	for _, r := range s.reservations {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}
