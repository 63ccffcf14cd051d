// Package detection implements the field detection engine: C1's adapter is
// consumed through the port.PDFAdapter interface, C2-C8 live in this
// package, and Service (this file) is the C9 orchestrator.
package detection

import (
	"context"
	"log/slog"
	"time"

	"github.com/doc-assembly/fielddetect/internal/core/entity"
	"github.com/doc-assembly/fielddetect/internal/core/port"
)

// Service is the C9 orchestrator: it drives every strategy across every
// page of a PDF, dedupes, filters by confidence, and reports timing. It
// carries no mutable state beyond its adapter and config, both read-only
// after construction, so one Service may be shared across concurrent
// DetectFields calls.
type Service struct {
	adapter    port.PDFAdapter
	cfg        Config
	strategies []strategy
}

// NewService builds a detection Service over the given adapter. Strategies
// run in this fixed order on every page: underline, checkbox, keyword,
// anchor — preserving this order keeps candidate ordering (and therefore
// dedup ties) deterministic.
func NewService(adapter port.PDFAdapter, cfg Config) *Service {
	return &Service{
		adapter: adapter,
		cfg:     cfg,
		strategies: []strategy{
			underlineStrategy{},
			checkboxStrategy{},
			keywordStrategy{},
			anchorStrategy{},
		},
	}
}

var _ port.Detector = (*Service)(nil)

// DetectFields runs every strategy across every page of src and returns the
// deduplicated, confidence-filtered result. layout may be nil; when non-nil
// it is trusted verbatim and C2 is skipped for every page it covers.
func (s *Service) DetectFields(ctx context.Context, documentID string, src port.PDFSource, layout []entity.PageLayout) (entity.DetectionResult, error) {
	if documentID == "" {
		return entity.DetectionResult{}, entity.NewDetectError(entity.ErrKindInvalidInput, "document_id must not be empty", entity.ErrEmptyDocumentID)
	}

	start := time.Now()

	doc, err := s.adapter.Open(ctx, src)
	if err != nil {
		return entity.DetectionResult{}, entity.NewDetectError(entity.ErrKindPdfOpen, "opening pdf", err)
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			slog.WarnContext(ctx, "closing pdf handle failed", slog.String("error", cerr.Error()))
		}
	}()

	var all []entity.Candidate

	for pageNumber := 1; pageNumber <= doc.NumPages(); pageNumber++ {
		select {
		case <-ctx.Done():
			return entity.DetectionResult{}, ctx.Err()
		default:
		}

		page, err := doc.Page(ctx, pageNumber)
		if err != nil {
			slog.WarnContext(ctx, "skipping malformed page", slog.Int("page", pageNumber), slog.String("error", err.Error()))
			continue
		}

		pageLayout := layoutFor(layout, pageNumber, page)

		in := pageInput{doc: doc, page: page, layout: pageLayout, pageNumber: pageNumber, cfg: s.cfg}

		for _, strat := range s.strategies {
			candidates := s.runStrategy(ctx, strat, in)
			if len(candidates) == 0 {
				slog.DebugContext(ctx, "strategy yielded no candidates", slog.String("strategy", strat.name()), slog.Int("page", pageNumber))
			}
			all = append(all, candidates...)
		}
	}

	deduped := deduplicate(all, s.cfg.OverlapThreshold)

	filtered := make([]entity.Candidate, 0, len(deduped))
	for _, c := range deduped {
		if c.DetectionConfidence >= s.cfg.DetectionConfidenceThreshold {
			filtered = append(filtered, c)
		}
	}

	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	return entity.DetectionResult{
		DocumentID:         documentID,
		DetectedFields:     filtered,
		DetectionTimeMs:    elapsed,
		TotalCandidates:    len(deduped),
		FilteredCandidates: len(filtered),
	}, nil
}

// runStrategy calls strat.detect, recovering from any panic so one
// strategy's internal failure never fails the whole detection.
func (s *Service) runStrategy(ctx context.Context, strat strategy, in pageInput) (candidates []entity.Candidate) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "strategy panicked, degrading to no candidates",
				slog.String("strategy", strat.name()), slog.Int("page", in.pageNumber), slog.Any("panic", r))
			candidates = nil
		}
	}()
	return strat.detect(ctx, in)
}

// layoutFor returns the caller-supplied layout for pageNumber when present,
// else runs C2 over the adapter's raw page.
func layoutFor(layout []entity.PageLayout, pageNumber int, page port.Page) entity.PageLayout {
	for _, l := range layout {
		if l.PageNumber == pageNumber {
			return l
		}
	}
	return extractLayout(page)
}

// DetectionErrorKind re-exports entity.ErrorKind so callers that only
// import this package can still match on error kind without importing
// entity directly.
type DetectionErrorKind = entity.ErrorKind
