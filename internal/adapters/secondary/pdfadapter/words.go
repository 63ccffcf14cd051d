package pdfadapter

import (
	"sort"
	"strings"

	"github.com/dslipak/pdf"

	"github.com/doc-assembly/fielddetect/internal/core/entity"
	"github.com/doc-assembly/fielddetect/internal/core/port"
)

// dslipak/pdf's Content().Text entries are per-character, same as the
// rsc.io/pdf lineage it forked from: each pdf.Text is one glyph with its
// own X/Y/W/FontSize. wordSpaceMultiplier and wordRowTolerance mirror the
// antfly docsaf LayoutAnalyzer's WordSpaceMultiplier/RowTolerance defaults
// for reconstructing words from that per-character stream.
const (
	wordRowTolerance    = 2.0
	wordSpaceMultiplier = 0.3
)

// mergeCharsIntoWords groups chars into visual rows, then within each row
// merges consecutive characters into one TextSpan per word. A character
// ends the current word in two cases: it is itself whitespace (consumed
// and dropped, same as a PDF renderer would never paint it), or the gap
// since the previous character exceeds wordSpaceMultiplier*fontSize
// (falling back to a fixed 3pt gap when fontSize is zero) — the latter
// catches generators that space words apart purely by position, with no
// literal space glyph in the content stream.
func mergeCharsIntoWords(chars []pdf.Text) []port.TextSpan {
	if len(chars) == 0 {
		return nil
	}

	rows := groupCharsByRow(chars)

	var spans []port.TextSpan
	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })

		var current *port.TextSpan
		for _, c := range row {
			if strings.TrimSpace(c.S) == "" {
				if current != nil {
					spans = append(spans, *current)
					current = nil
				}
				continue
			}

			if current == nil {
				current = newWordSpan(c)
				continue
			}

			gap := c.X - (current.Bbox.X + current.Bbox.Width)
			threshold := wordSpaceMultiplier * current.FontSize
			if current.FontSize == 0 {
				threshold = 3.0
			}

			if gap <= threshold {
				current.Text += c.S
				current.Bbox.Width = c.X + c.W - current.Bbox.X
				continue
			}

			spans = append(spans, *current)
			current = newWordSpan(c)
		}
		if current != nil {
			spans = append(spans, *current)
		}
	}

	return spans
}

func newWordSpan(c pdf.Text) *port.TextSpan {
	return &port.TextSpan{
		Text:     c.S,
		Bbox:     entity.BoundingBox{X: c.X, Y: c.Y, Width: c.W, Height: c.FontSize},
		FontSize: c.FontSize,
		FontName: c.Font,
	}
}

// groupCharsByRow buckets characters by Y coordinate within wordRowTolerance,
// preserving each row's original stream order for the X-sort that follows.
func groupCharsByRow(chars []pdf.Text) [][]pdf.Text {
	type rowBucket struct {
		y     float64
		chars []pdf.Text
	}

	var buckets []rowBucket
	for _, c := range chars {
		placed := false
		for i := range buckets {
			if absFloat(c.Y-buckets[i].y) <= wordRowTolerance {
				buckets[i].chars = append(buckets[i].chars, c)
				placed = true
				break
			}
		}
		if !placed {
			buckets = append(buckets, rowBucket{y: c.Y, chars: []pdf.Text{c}})
		}
	}

	rows := make([][]pdf.Text, len(buckets))
	for i, b := range buckets {
		rows[i] = b.chars
	}
	return rows
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
