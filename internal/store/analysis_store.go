package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/TECH-MENTORING-EU/FoodRescue/internal/domain"
	"github.com/TECH-MENTORING-EU/FoodRescue/internal/vision"
)

// AnalysisStore is an append-only, in-process ledger of food-image
// analysis results. A single mutex serializes mutation; readers get
// snapshot copies, so no caller ever observes a partially-appended record.
// Construct one per process and inject it; the store is never a global.
type AnalysisStore struct {
	mu      sync.Mutex
	results []domain.FoodAnalysisResult
}

func NewAnalysisStore() *AnalysisStore {
	return &AnalysisStore{}
}

// Add records a new analysis with a fresh id and the current timestamp,
// deriving the FoodItem list from the item table text. Records are
// immutable once added. The simple (image, caption) shape is the empty
// table, which parses to no items.
func (s *AnalysisStore) Add(imageBase64, caption, itemTable string) domain.FoodAnalysisResult {
	result := domain.FoodAnalysisResult{
		ID:          uuid.New(),
		ImageBase64: imageBase64,
		Caption:     caption,
		ItemTable:   itemTable,
		Items:       vision.ParseItemTable(itemTable),
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	s.results = append(s.results, result)
	s.mu.Unlock()

	return result
}

// Results returns the full history in insertion order. The returned slice
// is a copy; mutating it cannot reach the underlying collection.
func (s *AnalysisStore) Results() []domain.FoodAnalysisResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.FoodAnalysisResult, len(s.results))
	copy(out, s.results)
	return out
}

// Get looks up a single result by id for reservation attribution. The
// boolean reports presence; absence is not an error.
func (s *AnalysisStore) Get(id uuid.UUID) (domain.FoodAnalysisResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.results {
		if r.ID == id {
			return r, true
		}
	}
	return domain.FoodAnalysisResult{}, false
}

// Clear empties the store unconditionally. Irreversible.
func (s *AnalysisStore) Clear() {
	s.mu.Lock()
	s.results = nil
	s.mu.Unlock()
}
