package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/TECH-MENTORING-EU/FoodRescue/internal/domain"
)

type donationPayload struct {
	ID             int64     `json:"id,omitempty"`
	DonorName      string    `json:"donor_name"`
	FoodType       string    `json:"food_type"`
	Quantity       int       `json:"quantity"`
	Unit           string    `json:"unit"`
	DonationDate   time.Time `json:"donation_date"`
	PickupLocation string    `json:"pickup_location"`
	IsPickedUp     bool      `json:"is_picked_up"`
}

func toDonationPayload(d *domain.FoodDonation) donationPayload {
	return donationPayload{
		ID:             d.ID,
		DonorName:      d.DonorName,
		FoodType:       d.FoodType,
		Quantity:       d.Quantity,
		Unit:           d.Unit,
		DonationDate:   d.DonationDate,
		PickupLocation: d.PickupLocation,
		IsPickedUp:     d.IsPickedUp,
	}
}

func (p donationPayload) toDomain() *domain.FoodDonation {
	return &domain.FoodDonation{
		ID:             p.ID,
		DonorName:      p.DonorName,
		FoodType:       p.FoodType,
		Quantity:       p.Quantity,
		Unit:           p.Unit,
		DonationDate:   p.DonationDate,
		PickupLocation: p.PickupLocation,
		IsPickedUp:     p.IsPickedUp,
	}
}

func decodeDonation(r *http.Request) (donationPayload, bool) {
	var p donationPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		return p, false
	}
	if p.Quantity < 0 {
		return p, false
	}
	if p.DonationDate.IsZero() {
		p.DonationDate = time.Now()
	}
	return p, true
}

func (s *Server) handleListDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := s.donations.GetAll(r.Context())
	if err != nil {
		s.logger.Error("list donations failed", "error", err)
		http.Error(w, "failed to list donations", http.StatusInternalServerError)
		return
	}

	payload := make([]donationPayload, 0, len(donations))
	for _, d := range donations {
		payload = append(payload, toDonationPayload(d))
	}
	s.writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleGetDonation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid donation id", http.StatusBadRequest)
		return
	}

	d, err := s.donations.GetByID(r.Context(), id)
	if err != nil {
		s.logger.Error("get donation failed", "id", id, "error", err)
		http.Error(w, "failed to get donation", http.StatusInternalServerError)
		return
	}
	if d == nil {
		http.NotFound(w, r)
		return
	}

	s.writeJSON(w, http.StatusOK, toDonationPayload(d))
}

func (s *Server) handleCreateDonation(w http.ResponseWriter, r *http.Request) {
	p, ok := decodeDonation(r)
	if !ok {
		http.Error(w, "invalid donation payload", http.StatusBadRequest)
		return
	}

	id, err := s.donations.Create(r.Context(), p.toDomain())
	if err != nil {
		s.logger.Error("create donation failed", "error", err)
		http.Error(w, "failed to create donation", http.StatusInternalServerError)
		return
	}

	p.ID = id
	s.writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleUpdateDonation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid donation id", http.StatusBadRequest)
		return
	}

	p, ok := decodeDonation(r)
	if !ok {
		http.Error(w, "invalid donation payload", http.StatusBadRequest)
		return
	}

	d := p.toDomain()
	d.ID = id

	updated, err := s.donations.Update(r.Context(), d)
	if err != nil {
		s.logger.Error("update donation failed", "id", id, "error", err)
		http.Error(w, "failed to update donation", http.StatusInternalServerError)
		return
	}
	if !updated {
		http.NotFound(w, r)
		return
	}

	s.writeJSON(w, http.StatusOK, toDonationPayload(d))
}

func (s *Server) handleDeleteDonation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid donation id", http.StatusBadRequest)
		return
	}

	deleted, err := s.donations.Delete(r.Context(), id)
	if err != nil {
		s.logger.Error("delete donation failed", "id", id, "error", err)
		http.Error(w, "failed to delete donation", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.NotFound(w, r)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseID extracts the {id} path variable and returns it as int64.
func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
