package pdfadapter

import (
	"github.com/dslipak/pdf"

	"github.com/doc-assembly/fielddetect/internal/core/entity"
	"github.com/doc-assembly/fielddetect/internal/core/port"
)

// AcroForm field-flag bits relevant to button-type fields (PDF 1.7 §12.7.4.2,
// Table 226); bit numbers there are 1-indexed, so bit N lives at 1<<(N-1).
const (
	fieldFlagRadio      = 1 << 15 // bit 16
	fieldFlagPushbutton = 1 << 16 // bit 17
)

// extractWidgets walks a page's /Annots array for Widget annotations backed
// by a button field (/FT /Btn) and classifies each by its /Ff flags. /FT,
// /Ff and /T fall back to the widget's direct /Parent when the widget's own
// dictionary lacks them.
func extractWidgets(p pdf.Page) []port.Widget {
	annots := p.V.Key("Annots")
	if annots.Kind() != pdf.Array {
		return nil
	}

	var widgets []port.Widget
	for i := 0; i < annots.Len(); i++ {
		annot := annots.Index(i)
		if annot.Key("Subtype").Name() != "Widget" {
			continue
		}

		ft := fieldType(annot)
		if ft != "Btn" {
			continue
		}

		rect := annot.Key("Rect")
		if rect.Kind() != pdf.Array || rect.Len() < 4 {
			continue
		}
		x0, y0 := rect.Index(0).Float64(), rect.Index(1).Float64()
		x1, y1 := rect.Index(2).Float64(), rect.Index(3).Float64()

		ff := fieldFlags(annot)
		kind := port.WidgetCheckbox
		switch {
		case ff&fieldFlagPushbutton != 0:
			kind = port.WidgetPushbutton
		case ff&fieldFlagRadio != 0:
			kind = port.WidgetRadio
		}

		name := annot.Key("T").Text()
		if name == "" {
			name = fieldName(annot)
		}

		widgets = append(widgets, port.Widget{
			Kind: kind,
			Bbox: entity.BoundingBox{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0},
			Name: name,
		})
	}

	return widgets
}

// fieldType resolves /FT, walking up to /Parent when a widget annotation
// merges its field dictionary with its parent (a common AcroForm shape).
func fieldType(annot pdf.Value) string {
	if ft := annot.Key("FT").Name(); ft != "" {
		return ft
	}
	return annot.Key("Parent").Key("FT").Name()
}

func fieldFlags(annot pdf.Value) int64 {
	if ff := annot.Key("Ff"); ff.Kind() != pdf.Null {
		return ff.Int64()
	}
	return annot.Key("Parent").Key("Ff").Int64()
}

func fieldName(annot pdf.Value) string {
	return annot.Key("Parent").Key("T").Text()
}
