package vision

import (
	"context"
	"io"

	"github.com/TECH-MENTORING-EU/FoodRescue/internal/domain"
)

// AnalysisPrompt is the shared prompt used by all vision adapters.
const AnalysisPrompt = `Describe this photo of donated food.
First line: a one-sentence caption of what the photo shows.
Then list every distinct food item, one per line,
format: name | quantity
where quantity is a whole number of pieces or packages.`

// Analyzer produces a caption and an item table for a food photo. The
// stores record whatever the analyzer returns; analysis quality is the
// collaborator's concern, not this module's.
type Analyzer interface {
	Analyze(ctx context.Context, r io.Reader, mimeType string) (*Analysis, error)
}

type Analysis struct {
	Caption     string
	ItemTable   string
	Items       []domain.FoodItem
	RawResponse string
}

// NewAnalysis splits a raw model response into caption and item table and
// derives the parsed item list.
func NewAnalysis(raw string) *Analysis {
	caption, table := SplitResponse(raw)
	return &Analysis{
		Caption:     caption,
		ItemTable:   table,
		Items:       ParseItemTable(table),
		RawResponse: raw,
	}
}
