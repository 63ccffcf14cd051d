package port

import (
	"context"

	"github.com/doc-assembly/fielddetect/internal/core/entity"
)

// Detector is the public contract the detection service exposes to its
// callers: one entry point, a bounding box and confidence-scored
// DetectionResult out.
type Detector interface {
	DetectFields(ctx context.Context, documentID string, src PDFSource, layout []entity.PageLayout) (entity.DetectionResult, error)
}
