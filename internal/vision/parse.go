package vision

import (
	"strings"

	"github.com/TECH-MENTORING-EU/FoodRescue/internal/domain"
)

// SplitResponse splits a model response into a caption and an item table.
// The first non-empty line without a pipe is the caption; every line with
// a pipe belongs to the table. Anything else (preambles, blank lines) is
// dropped.
func SplitResponse(raw string) (caption, itemTable string) {
	var tableLines []string

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(line, "|") {
			tableLines = append(tableLines, line)
			continue
		}
		if caption == "" {
			caption = line
		}
	}

	return caption, strings.Join(tableLines, "\n")
}

// ParseItemTable parses item-table text in format: name | quantity,
// one item per line. Rows whose quantity cell does not start with digits
// keep the item with quantity 0; the table text itself stays the source
// of truth.
func ParseItemTable(table string) []domain.FoodItem {
	lines := strings.Split(table, "\n")
	items := make([]domain.FoodItem, 0)

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, "|")
		name := strings.TrimSpace(parts[0])
		if name == "" {
			continue
		}

		item := domain.FoodItem{Name: name}
		if len(parts) >= 2 {
			item.Quantity = parseQuantity(parts[1])
		}
		items = append(items, item)
	}

	return items
}

// parseQuantity reads the leading whole number of a quantity cell, so
// "3 boxes" parses as 3 and "a few" as 0.
func parseQuantity(s string) int {
	s = strings.TrimSpace(s)
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
	}
	return n
}
