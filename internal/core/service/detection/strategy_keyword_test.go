package detection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doc-assembly/fielddetect/internal/core/entity"
	"github.com/doc-assembly/fielddetect/internal/core/port"
)

func TestKeywordStrategy_SignatureLineWinsOverDate(t *testing.T) {
	page := port.Page{
		Number: 1, Width: 600, Height: 800,
		Spans: []port.TextSpan{
			{Text: "Signature Date", Bbox: entity.BoundingBox{X: 50, Y: 300, Width: 80, Height: 10}},
		},
	}
	doc := newFakeDoc()
	doc.pages[1] = page

	cfg := DefaultConfig()
	in := pageInput{doc: doc, page: page, layout: extractLayout(page), pageNumber: 1, cfg: cfg}

	got := keywordStrategy{}.detect(context.Background(), in)

	require.Len(t, got, 1)
	assert.Equal(t, entity.FieldTypeSignature, got[0].FieldType)
}

func TestKeywordStrategy_DateAlone(t *testing.T) {
	page := port.Page{
		Number: 1, Width: 600, Height: 800,
		Spans: []port.TextSpan{
			{Text: "Effective Date", Bbox: entity.BoundingBox{X: 50, Y: 300, Width: 80, Height: 10}},
		},
	}
	doc := newFakeDoc()
	doc.pages[1] = page

	cfg := DefaultConfig()
	in := pageInput{doc: doc, page: page, layout: extractLayout(page), pageNumber: 1, cfg: cfg}

	got := keywordStrategy{}.detect(context.Background(), in)

	require.Len(t, got, 1)
	assert.Equal(t, entity.FieldTypeDateSigned, got[0].FieldType)
}

func TestKeywordStrategy_InitialsLine(t *testing.T) {
	page := port.Page{
		Number: 1, Width: 600, Height: 800,
		Spans: []port.TextSpan{
			{Text: "Initial Here", Bbox: entity.BoundingBox{X: 50, Y: 300, Width: 80, Height: 10}},
		},
	}
	doc := newFakeDoc()
	doc.pages[1] = page

	cfg := DefaultConfig()
	in := pageInput{doc: doc, page: page, layout: extractLayout(page), pageNumber: 1, cfg: cfg}

	got := keywordStrategy{}.detect(context.Background(), in)

	require.Len(t, got, 1)
	assert.Equal(t, entity.FieldTypeInitials, got[0].FieldType)
}

func TestKeywordStrategy_CandidateGeometryIsRightOfLabel(t *testing.T) {
	page := port.Page{
		Number: 1, Width: 600, Height: 800,
		Spans: []port.TextSpan{
			{Text: "Signature", Bbox: entity.BoundingBox{X: 50, Y: 300, Width: 80, Height: 10}},
		},
	}
	doc := newFakeDoc()
	doc.pages[1] = page

	cfg := DefaultConfig()
	in := pageInput{doc: doc, page: page, layout: extractLayout(page), pageNumber: 1, cfg: cfg}

	got := keywordStrategy{}.detect(context.Background(), in)

	require.Len(t, got, 1)
	assert.Equal(t, 50.0+80.0+10.0, got[0].Bbox.X)
}
