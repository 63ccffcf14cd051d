package detection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doc-assembly/fielddetect/internal/core/entity"
	"github.com/doc-assembly/fielddetect/internal/core/port"
)

func TestCheckboxStrategy_Widget(t *testing.T) {
	doc := newFakeDoc()
	page := port.Page{Number: 1, Width: 600, Height: 800}
	doc.pages[1] = page
	doc.widgets[1] = []port.Widget{
		{Kind: port.WidgetCheckbox, Bbox: entity.BoundingBox{X: 50, Y: 700, Width: 12, Height: 12}, Name: "agree"},
	}

	cfg := DefaultConfig()
	in := pageInput{doc: doc, page: page, layout: extractLayout(page), pageNumber: 1, cfg: cfg}

	got := checkboxStrategy{}.detect(context.Background(), in)

	require.Len(t, got, 1)
	assert.Equal(t, entity.FieldTypeCheckbox, got[0].FieldType)
	assert.Equal(t, 0.95, got[0].DetectionConfidence)
}

func TestCheckboxStrategy_SquareRectWithinBounds(t *testing.T) {
	doc := newFakeDoc()
	page := port.Page{Number: 1, Width: 600, Height: 800}
	doc.pages[1] = page
	doc.drawings[1] = []port.Drawing{
		{Kind: port.DrawingRect, Bbox: entity.BoundingBox{X: 50, Y: 700, Width: 10, Height: 10}},
	}

	cfg := DefaultConfig()
	in := pageInput{doc: doc, page: page, layout: extractLayout(page), pageNumber: 1, cfg: cfg}

	got := checkboxStrategy{}.detect(context.Background(), in)

	require.Len(t, got, 1)
	assert.Equal(t, 0.70, got[0].DetectionConfidence)
}

func TestCheckboxStrategy_RectTooLargeIsIgnored(t *testing.T) {
	doc := newFakeDoc()
	page := port.Page{Number: 1, Width: 600, Height: 800}
	doc.pages[1] = page
	doc.drawings[1] = []port.Drawing{
		{Kind: port.DrawingRect, Bbox: entity.BoundingBox{X: 50, Y: 700, Width: 200, Height: 200}},
	}

	cfg := DefaultConfig()
	in := pageInput{doc: doc, page: page, layout: extractLayout(page), pageNumber: 1, cfg: cfg}

	got := checkboxStrategy{}.detect(context.Background(), in)
	assert.Empty(t, got)
}

func TestCheckboxStrategy_NonSquareRectIsIgnored(t *testing.T) {
	doc := newFakeDoc()
	page := port.Page{Number: 1, Width: 600, Height: 800}
	doc.pages[1] = page
	doc.drawings[1] = []port.Drawing{
		{Kind: port.DrawingRect, Bbox: entity.BoundingBox{X: 50, Y: 700, Width: 9, Height: 20}},
	}

	cfg := DefaultConfig()
	in := pageInput{doc: doc, page: page, layout: extractLayout(page), pageNumber: 1, cfg: cfg}

	got := checkboxStrategy{}.detect(context.Background(), in)
	assert.Empty(t, got)
}

func TestCheckboxStrategy_Glyph(t *testing.T) {
	page := port.Page{
		Number: 1, Width: 600, Height: 800,
		Spans: []port.TextSpan{{Text: "☐ I agree", Bbox: entity.BoundingBox{X: 50, Y: 700, Width: 60, Height: 10}}},
	}
	doc := newFakeDoc()
	doc.pages[1] = page

	cfg := DefaultConfig()
	in := pageInput{doc: doc, page: page, layout: extractLayout(page), pageNumber: 1, cfg: cfg}

	got := checkboxStrategy{}.detect(context.Background(), in)

	require.Len(t, got, 1)
	assert.Equal(t, entity.FieldTypeCheckbox, got[0].FieldType)
}
