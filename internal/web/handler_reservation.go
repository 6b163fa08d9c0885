package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/TECH-MENTORING-EU/FoodRescue/internal/domain"
)

type reservationRequest struct {
	AnalysisID     string `json:"analysis_id"`
	Product        string `json:"product"`
	ReservedAmount int    `json:"reserved_amount"`
}

type reservationPayload struct {
	AnalysisID     string    `json:"analysis_id"`
	Product        string    `json:"product"`
	ReservedAmount int       `json:"reserved_amount"`
	UserID         string    `json:"user_id"`
	ReservedAt     time.Time `json:"reserved_at"`
}

func toReservationPayload(r domain.FoodReservation) reservationPayload {
	return reservationPayload{
		AnalysisID:     r.AnalysisID.String(),
		Product:        r.Product,
		ReservedAmount: r.ReservedAmount,
		UserID:         r.UserID,
		ReservedAt:     r.ReservedAt,
	}
}

// handleAddReservation records a claim against an analyzed item. The
// requested amount is recorded as-is; remaining stock is not decremented
// or checked.
func (s *Server) handleAddReservation(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid reservation payload", http.StatusBadRequest)
		return
	}
	if req.Product == "" || req.ReservedAmount <= 0 {
		http.Error(w, "invalid reservation payload", http.StatusBadRequest)
		return
	}

	analysisID, err := uuid.Parse(req.AnalysisID)
	if err != nil {
		http.Error(w, "invalid analysis id", http.StatusBadRequest)
		return
	}
	if _, ok := s.analyses.Get(analysisID); !ok {
		http.Error(w, "analysis not found", http.StatusNotFound)
		return
	}

	reservation := domain.NewFoodReservation(analysisID, req.Product, req.ReservedAmount, user)
	s.reservations.AddReservation(reservation)

	s.logger.Info("reservation added", "analysis_id", analysisID, "product", req.Product, "user", user)
	s.writeJSON(w, http.StatusCreated, toReservationPayload(reservation))
}

func (s *Server) handleViewReservations(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	if user == "" {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	reservations := s.reservations.ViewReservations(user)

	payload := make([]reservationPayload, 0, len(reservations))
	for _, res := range reservations {
		payload = append(payload, toReservationPayload(res))
	}
	s.writeJSON(w, http.StatusOK, payload)
}
