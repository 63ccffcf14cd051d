package detection

import (
	"context"
	"strings"

	"github.com/doc-assembly/fielddetect/internal/core/entity"
	"github.com/doc-assembly/fielddetect/internal/core/port"
)

// fakeDoc is a minimal in-memory port.PDFDocument used to drive individual
// strategies without a real PDF file.
type fakeDoc struct {
	pages    map[int]port.Page
	drawings map[int][]port.Drawing
	widgets  map[int][]port.Widget
}

func newFakeDoc() *fakeDoc {
	return &fakeDoc{
		pages:    map[int]port.Page{},
		drawings: map[int][]port.Drawing{},
		widgets:  map[int][]port.Widget{},
	}
}

func (f *fakeDoc) NumPages() int { return len(f.pages) }

func (f *fakeDoc) Page(ctx context.Context, pageNumber int) (port.Page, error) {
	return f.pages[pageNumber], nil
}

func (f *fakeDoc) Drawings(ctx context.Context, pageNumber int) ([]port.Drawing, error) {
	return f.drawings[pageNumber], nil
}

func (f *fakeDoc) Widgets(ctx context.Context, pageNumber int) ([]port.Widget, error) {
	return f.widgets[pageNumber], nil
}

// Search is a coarse stand-in for the real adapter's span-level search: it
// reports one hit (the whole line's bbox) per line containing substr,
// which is precise enough for strategies that only care whether and where
// (to line granularity) a substring occurs.
func (f *fakeDoc) Search(ctx context.Context, pageNumber int, substr string) ([]entity.BoundingBox, error) {
	if substr == "" {
		return nil, nil
	}
	var hits []entity.BoundingBox
	for _, line := range extractLayout(f.pages[pageNumber]).Lines {
		if strings.Contains(line.Text, substr) {
			hits = append(hits, line.Bbox)
		}
	}
	return hits, nil
}

func (f *fakeDoc) Close() error { return nil }

var _ port.PDFDocument = (*fakeDoc)(nil)
