// Package pdfadapter implements port.PDFAdapter (C1): pdfcpu validates and
// opens the file fast-failing on anything that isn't a real PDF, and
// dslipak/pdf does the structural reading — text spans, vector drawing
// primitives tokenized out of the raw content stream, and AcroForm widget
// annotations walked off the low-level object tree via page.V.Key(...)
// navigation.
package pdfadapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dslipak/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/doc-assembly/fielddetect/internal/core/entity"
	"github.com/doc-assembly/fielddetect/internal/core/port"
)

// Adapter is the concrete port.PDFAdapter. It carries no mutable state: a
// single Adapter value is safe to share across concurrent DetectFields
// calls, each of which Opens its own independent PDFDocument.
type Adapter struct {
	validateConfig *model.Configuration
}

// New builds an Adapter with pdfcpu's default validation configuration.
func New() *Adapter {
	return &Adapter{validateConfig: model.NewDefaultConfiguration()}
}

var _ port.PDFAdapter = (*Adapter)(nil)

// Open validates the source as a real PDF via pdfcpu, then opens it for
// structural reading via dslipak/pdf. Bytes sources are spilled to a
// temp file first since both libraries are most reliably driven off a
// file path.
func (a *Adapter) Open(ctx context.Context, src port.PDFSource) (port.PDFDocument, error) {
	path, cleanup, err := resolvePath(src)
	if err != nil {
		return nil, fmt.Errorf("resolving pdf source: %w", err)
	}

	if err := api.ValidateFile(path, a.validateConfig); err != nil {
		cleanup()
		return nil, fmt.Errorf("pdf failed validation: %w", err)
	}

	reader, err := pdf.Open(path)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("opening pdf structure: %w", err)
	}

	return &document{reader: reader, numPages: reader.NumPage(), cleanup: cleanup}, nil
}

// resolvePath returns a filesystem path for src, spilling Bytes to a temp
// file when no Path was given. The returned cleanup func removes any temp
// file it created; it is always safe to call.
func resolvePath(src port.PDFSource) (path string, cleanup func(), err error) {
	if src.Path != "" {
		return src.Path, func() {}, nil
	}
	if len(src.Bytes) == 0 {
		return "", func() {}, fmt.Errorf("pdf source has neither path nor bytes")
	}

	tmp, err := os.CreateTemp("", "fielddetect-*.pdf")
	if err != nil {
		return "", func() {}, fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := io.Copy(tmp, bytes.NewReader(src.Bytes)); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", func() {}, fmt.Errorf("writing temp file: %w", err)
	}
	name := tmp.Name()
	tmp.Close()

	return name, func() { os.Remove(name) }, nil
}

// document is the port.PDFDocument implementation backed by an open
// dslipak/pdf reader.
type document struct {
	reader   *pdf.Reader
	numPages int
	cleanup  func()
}

func (d *document) NumPages() int { return d.numPages }

func (d *document) Close() error {
	d.cleanup()
	return nil
}

func (d *document) Page(ctx context.Context, pageNumber int) (port.Page, error) {
	p := d.reader.Page(pageNumber)
	if p.V.IsNull() {
		return port.Page{}, fmt.Errorf("page %d is null", pageNumber)
	}

	width, height := pageDimensions(p)

	content, err := safeContent(p)
	if err != nil {
		return port.Page{}, fmt.Errorf("reading page %d content: %w", pageNumber, err)
	}

	chars := make([]pdf.Text, 0, len(content.Text))
	for _, t := range content.Text {
		if t.S == "" {
			continue
		}
		chars = append(chars, t)
	}

	return port.Page{Number: pageNumber, Width: width, Height: height, Spans: mergeCharsIntoWords(chars)}, nil
}

func (d *document) Drawings(ctx context.Context, pageNumber int) ([]port.Drawing, error) {
	p := d.reader.Page(pageNumber)
	if p.V.IsNull() {
		return nil, fmt.Errorf("page %d is null", pageNumber)
	}

	data, err := rawContentStreamBytes(p)
	if err != nil {
		return nil, fmt.Errorf("reading content stream for page %d: %w", pageNumber, err)
	}

	return parseContentStreamDrawings(data), nil
}

func (d *document) Widgets(ctx context.Context, pageNumber int) ([]port.Widget, error) {
	p := d.reader.Page(pageNumber)
	if p.V.IsNull() {
		return nil, fmt.Errorf("page %d is null", pageNumber)
	}
	return extractWidgets(p), nil
}

func (d *document) Search(ctx context.Context, pageNumber int, substr string) ([]entity.BoundingBox, error) {
	page, err := d.Page(ctx, pageNumber)
	if err != nil {
		return nil, err
	}
	return searchPage(page, substr), nil
}

// pageDimensions reads /MediaBox off the page's low-level object dict.
func pageDimensions(p pdf.Page) (width, height float64) {
	mediaBox := p.V.Key("MediaBox")
	if mediaBox.Len() < 4 {
		return 0, 0
	}
	return mediaBox.Index(2).Float64(), mediaBox.Index(3).Float64()
}

// safeContent recovers from panics in content extraction: some PDF
// generators produce font encodings dslipak/pdf cannot handle.
func safeContent(p pdf.Page) (content pdf.Content, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf content extraction panicked: %v", r)
		}
	}()
	content = p.Content()
	return content, nil
}
