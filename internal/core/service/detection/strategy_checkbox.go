package detection

import (
	"context"
	"fmt"
	"math"

	"github.com/doc-assembly/fielddetect/internal/core/entity"
	"github.com/doc-assembly/fielddetect/internal/core/port"
)

// checkboxGlyphs is the Unicode glyph set scanned for in text.
var checkboxGlyphs = []string{"☐", "☑", "☒", "□", "▢", "▣"}

// checkboxStrategy is C5: interactive widgets, small square vector
// rectangles, and Unicode checkbox glyphs. Role assignment is left at the
// weak default — no label-driven role inference is attempted for checkboxes.
type checkboxStrategy struct{}

func (checkboxStrategy) name() string { return "checkbox" }

func (s checkboxStrategy) detect(ctx context.Context, in pageInput) []entity.Candidate {
	var out []entity.Candidate
	out = append(out, s.detectWidgets(ctx, in)...)
	out = append(out, s.detectSquareRects(ctx, in)...)
	out = append(out, s.detectGlyphs(ctx, in)...)
	return out
}

func (checkboxStrategy) detectWidgets(ctx context.Context, in pageInput) []entity.Candidate {
	widgets, err := in.doc.Widgets(ctx, in.pageNumber)
	if err != nil {
		return nil
	}

	var out []entity.Candidate
	for _, w := range widgets {
		if w.Kind != port.WidgetCheckbox {
			continue
		}
		out = append(out, newCheckboxCandidate(in.pageNumber, w.Bbox, 0.95, 0.95, "PDF checkbox widget detected"))
	}
	return out
}

func (checkboxStrategy) detectSquareRects(ctx context.Context, in pageInput) []entity.Candidate {
	drawings, err := in.doc.Drawings(ctx, in.pageNumber)
	if err != nil {
		return nil
	}

	var out []entity.Candidate
	for _, d := range drawings {
		if d.Kind != port.DrawingRect {
			continue
		}
		w, h := d.Bbox.Width, d.Bbox.Height
		if w < in.cfg.CheckboxSizeMin || w > in.cfg.CheckboxSizeMax {
			continue
		}
		if h < in.cfg.CheckboxSizeMin || h > in.cfg.CheckboxSizeMax {
			continue
		}
		if math.Abs(w-h) >= in.cfg.CheckboxSquarenessTol {
			continue
		}
		out = append(out, newCheckboxCandidate(in.pageNumber, d.Bbox, 0.70, 0.80, "Small square shape detected (potential checkbox)"))
	}
	return out
}

func (checkboxStrategy) detectGlyphs(ctx context.Context, in pageInput) []entity.Candidate {
	var out []entity.Candidate
	for _, glyph := range checkboxGlyphs {
		hits, err := in.doc.Search(ctx, in.pageNumber, glyph)
		if err != nil {
			continue
		}
		for _, hit := range hits {
			bbox := entity.BoundingBox{X: hit.X, Y: hit.Y, Width: hit.Width + 5, Height: hit.Height + 5}
			evidence := fmt.Sprintf("Checkbox character %q detected", glyph)
			out = append(out, newCheckboxCandidate(in.pageNumber, bbox, 0.90, 0.95, evidence))
		}
	}
	return out
}

// newCheckboxCandidate builds a CHECKBOX candidate with the default
// ROLE/signer_1 assignee.
func newCheckboxCandidate(pageNumber int, bbox entity.BoundingBox, detectionConf, classificationConf float64, evidence string) entity.Candidate {
	return entity.Candidate{
		PageNumber:               pageNumber,
		Bbox:                     bbox,
		FieldType:                entity.FieldTypeCheckbox,
		AssigneeType:             entity.AssigneeRole,
		DetectedRoleKey:          entity.StrPtr("signer_1"),
		DetectionConfidence:      detectionConf,
		ClassificationConfidence: classificationConf,
		RoleConfidence:           0.3,
		Evidence:                 evidence,
	}
}
