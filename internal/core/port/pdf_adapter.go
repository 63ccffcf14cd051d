// Package port defines the interfaces the detection service depends on,
// implemented by the secondary adapters.
package port

import (
	"context"

	"github.com/doc-assembly/fielddetect/internal/core/entity"
)

// TextSpan is one run of text as the PDF's content stream renders it,
// carrying its own bounding box and font metadata.
type TextSpan struct {
	Text     string
	Bbox     entity.BoundingBox
	FontSize float64
	FontName string
}

// DrawingKind tags which vector primitive a Drawing carries.
type DrawingKind int

const (
	DrawingLine DrawingKind = iota
	DrawingRect
	DrawingPath
)

// Point is an (x, y) pair in PDF user-space points.
type Point struct {
	X, Y float64
}

// Drawing is one vector graphics primitive extracted from a page's content
// stream. DrawingLine carries Start/End plus their enclosing Bbox, and
// DrawingRect carries only Bbox; DrawingPath additionally aggregates the path's sub-items
// for callers that need the finer detail (the strategies in this spec use
// only Line and Rect).
type Drawing struct {
	Kind  DrawingKind
	Start Point
	End   Point
	Bbox  entity.BoundingBox
	Items []Drawing
}

// WidgetKind tags the AcroForm widget type.
type WidgetKind int

const (
	WidgetUnknown WidgetKind = iota
	WidgetCheckbox
	WidgetRadio
	WidgetText
	WidgetPushbutton
)

// Widget is one interactive form field annotation already present in the
// PDF (an AcroForm widget), consumed opportunistically when present.
type Widget struct {
	Kind WidgetKind
	Bbox entity.BoundingBox
	Name string
}

// Page is the per-page surface the detection strategies read from. All
// coordinates are PDF user-space points in the adapter's fixed
// bottom-left-origin, y-up convention.
type Page struct {
	Number int
	Width  float64
	Height float64
	Spans  []TextSpan
}

// PDFDocument is an open PDF handle: enumerable pages plus raw per-page
// accessors for drawings, widgets and substring search. The orchestrator
// acquires one handle per DetectFields call and releases it on exit.
type PDFDocument interface {
	// NumPages returns the page count.
	NumPages() int
	// Page returns the normalized page surface for the given 1-indexed
	// page number.
	Page(ctx context.Context, pageNumber int) (Page, error)
	// Drawings returns every vector drawing primitive on the given page.
	Drawings(ctx context.Context, pageNumber int) ([]Drawing, error)
	// Widgets returns every interactive form widget on the given page.
	Widgets(ctx context.Context, pageNumber int) ([]Widget, error)
	// Search returns the bounding box of every occurrence of substr on the
	// given page, in document order.
	Search(ctx context.Context, pageNumber int, substr string) ([]entity.BoundingBox, error)
	// Close releases the underlying file handle.
	Close() error
}

// PDFSource is either a filesystem path or raw PDF bytes; exactly one of
// the two fields should be set.
type PDFSource struct {
	Path  string
	Bytes []byte
}

// PDFAdapter opens a PDFSource and returns a PDFDocument. Implementations
// MUST treat DetectionError::PdfOpen as the only fatal failure mode here;
// everything page-specific degrades instead of failing the whole open.
type PDFAdapter interface {
	Open(ctx context.Context, src PDFSource) (PDFDocument, error)
}
