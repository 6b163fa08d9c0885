package testdata

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/TECH-MENTORING-EU/FoodRescue/internal/domain"
)

const (
	// DefaultCount is used when Generate is asked for zero donations.
	DefaultCount = 10
	// MaxCount bounds a single batch; this is a demo-data facility, not a
	// load generator.
	MaxCount = 10000
)

var foodTypes = []string{
	"Bread", "Vegetables", "Fruits", "Dairy", "Canned Goods",
	"Prepared Meals", "Bakery Items", "Meat", "Beverages",
}

var units = []string{"kg", "units", "boxes", "bags"}

// Generator produces plausible FoodDonation records for seeding and demos.
type Generator struct {
	faker *gofakeit.Faker
}

func NewGenerator() *Generator {
	return &Generator{faker: gofakeit.New(0)}
}

// Generate returns exactly count donations with ids sequential from 1.
// Ids are unique only within the batch; the repository assigns real
// identity on insert. count == 0 means DefaultCount; a negative or absurd
// count is rejected before any work.
func (g *Generator) Generate(count int) ([]*domain.FoodDonation, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid donation count %d: must not be negative", count)
	}
	if count > MaxCount {
		return nil, fmt.Errorf("invalid donation count %d: at most %d per batch", count, MaxCount)
	}
	if count == 0 {
		count = DefaultCount
	}

	now := time.Now()
	donations := make([]*domain.FoodDonation, 0, count)
	for i := 0; i < count; i++ {
		donations = append(donations, &domain.FoodDonation{
			ID:             int64(i + 1),
			DonorName:      g.faker.Company(),
			FoodType:       g.faker.RandomString(foodTypes),
			Quantity:       g.faker.Number(1, 100),
			Unit:           g.faker.RandomString(units),
			DonationDate:   g.faker.DateRange(now.AddDate(0, 0, -30), now),
			PickupLocation: g.faker.Address().Address,
			IsPickedUp:     g.faker.Bool(),
		})
	}

	return donations, nil
}
