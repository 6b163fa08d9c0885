package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitResponse(t *testing.T) {
	raw := "A crate of fresh vegetables and bread.\ncarrots | 12\nbread loaf | 2"

	caption, table := SplitResponse(raw)

	assert.Equal(t, "A crate of fresh vegetables and bread.", caption)
	assert.Equal(t, "carrots | 12\nbread loaf | 2", table)
}

func TestSplitResponseSkipsBlankLines(t *testing.T) {
	raw := "\n\nA bag of apples.\n\napples | 6\n"

	caption, table := SplitResponse(raw)

	assert.Equal(t, "A bag of apples.", caption)
	assert.Equal(t, "apples | 6", table)
}

func TestSplitResponseNoTable(t *testing.T) {
	caption, table := SplitResponse("Just an empty table surface.")

	assert.Equal(t, "Just an empty table surface.", caption)
	assert.Empty(t, table)
}

func TestSplitResponseKeepsFirstCaptionOnly(t *testing.T) {
	raw := "A pantry shelf.\nSome extra commentary here.\nrice | 3"

	caption, table := SplitResponse(raw)

	assert.Equal(t, "A pantry shelf.", caption)
	assert.Equal(t, "rice | 3", table)
}

func TestParseItemTable(t *testing.T) {
	items := ParseItemTable("carrots | 12\nbread loaf | 2")

	assert.Len(t, items, 2)
	assert.Equal(t, "carrots", items[0].Name)
	assert.Equal(t, 12, items[0].Quantity)
	assert.Equal(t, "bread loaf", items[1].Name)
	assert.Equal(t, 2, items[1].Quantity)
}

func TestParseItemTableEmpty(t *testing.T) {
	items := ParseItemTable("")

	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestParseItemTableMissingQuantity(t *testing.T) {
	items := ParseItemTable("mystery tin")

	assert.Len(t, items, 1)
	assert.Equal(t, "mystery tin", items[0].Name)
	assert.Zero(t, items[0].Quantity)
}

func TestParseItemTableNonNumericQuantity(t *testing.T) {
	items := ParseItemTable("apples | a few\noranges | 4 bags")

	assert.Len(t, items, 2)
	assert.Zero(t, items[0].Quantity)
	assert.Equal(t, 4, items[1].Quantity)
}

func TestParseItemTableSkipsNamelessRows(t *testing.T) {
	items := ParseItemTable(" | 3\nbeans | 2")

	assert.Len(t, items, 1)
	assert.Equal(t, "beans", items[0].Name)
}
