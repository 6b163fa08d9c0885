package domain

import (
	"time"

	"github.com/google/uuid"
)

// FoodDonation is a unit of donated food available for pickup. ID is
// assigned by the database on insert; ids on incoming records are ignored.
type FoodDonation struct {
	ID             int64
	DonorName      string
	FoodType       string
	Quantity       int
	Unit           string
	DonationDate   time.Time
	PickupLocation string
	IsPickedUp     bool
}

// FoodItem is one parsed row of an analysis item table. Owned by its
// parent FoodAnalysisResult.
type FoodItem struct {
	Name     string
	Quantity int
}

// FoodAnalysisResult is the stored outcome of analyzing a food photo.
// Immutable once added to the analysis store.
type FoodAnalysisResult struct {
	ID          uuid.UUID
	ImageBase64 string
	Caption     string
	ItemTable   string
	Items       []FoodItem
	CreatedAt   time.Time
}

// FoodReservation is a user's claim on a quantity of an analyzed food item.
// AnalysisID is a non-owning reference into the analysis store.
type FoodReservation struct {
	AnalysisID     uuid.UUID
	Product        string
	ReservedAmount int
	UserID         string
	ReservedAt     time.Time
}

// NewFoodReservation stamps ReservedAt at construction time; the
// reservation store records the value as-is and never overwrites it.
func NewFoodReservation(analysisID uuid.UUID, product string, amount int, userID string) FoodReservation {
	return FoodReservation{
		AnalysisID:     analysisID,
		Product:        product,
		ReservedAmount: amount,
		UserID:         userID,
		ReservedAt:     time.Now().UTC(),
	}
}
