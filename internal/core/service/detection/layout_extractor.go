package detection

import (
	"math"
	"sort"
	"strings"

	"github.com/doc-assembly/fielddetect/internal/core/entity"
	"github.com/doc-assembly/fielddetect/internal/core/port"
)

// lineGroupingTolerance is how close two spans' Y coordinates must be to be
// considered part of the same visual line (yTolerance = 2.0).
const lineGroupingTolerance = 2.0

// extractLayout implements C2: group a page's already word-merged text
// spans (the adapter hands each word its own span, not raw per-character
// glyphs) into lines and blocks (blocks are derived from lines with no
// further gap heuristic, since none of the strategies consume blocks
// directly). Adjacent words on one line are rejoined with a single space
// when building the line's text, since the per-character whitespace the
// adapter saw is consumed during word-merging rather than carried forward
// as its own Word.
func extractLayout(page port.Page) entity.PageLayout {
	layout := entity.PageLayout{
		PageNumber: page.Number,
		Width:      page.Width,
		Height:     page.Height,
	}

	for _, span := range page.Spans {
		if span.Text == "" {
			continue
		}
		layout.Words = append(layout.Words, entity.Word{
			Text:     span.Text,
			Bbox:     span.Bbox,
			FontSize: span.FontSize,
			FontName: span.FontName,
		})
	}

	layout.Lines = groupIntoLines(layout.Words)
	pageRect := entity.BoundingBox{X: 0, Y: 0, Width: page.Width, Height: page.Height}
	layout.Blocks = []entity.Block{{Bbox: pageRect, Lines: layout.Lines}}

	return layout
}

// groupIntoLines buckets words by rounded Y coordinate, then concatenates
// each bucket left-to-right into one Line.
func groupIntoLines(words []entity.Word) []entity.Line {
	if len(words) == 0 {
		return nil
	}

	buckets := make(map[int][]entity.Word)
	var keys []int
	for _, w := range words {
		key := int(math.Round(w.Bbox.Y / lineGroupingTolerance))
		if _, ok := buckets[key]; !ok {
			keys = append(keys, key)
		}
		buckets[key] = append(buckets[key], w)
	}

	// Descending Y so lines come out top-to-bottom in the adapter's
	// bottom-left-origin, y-up convention.
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	lines := make([]entity.Line, 0, len(keys))
	for _, key := range keys {
		bucket := buckets[key]
		sort.SliceStable(bucket, func(i, j int) bool { return bucket[i].Bbox.X < bucket[j].Bbox.X })

		words := make([]string, 0, len(bucket))
		minX, minY := bucket[0].Bbox.X, bucket[0].Bbox.Y
		maxX := bucket[0].Bbox.X + bucket[0].Bbox.Width
		maxY := bucket[0].Bbox.Y + bucket[0].Bbox.Height
		for _, w := range bucket {
			words = append(words, w.Text)
			if w.Bbox.X < minX {
				minX = w.Bbox.X
			}
			if w.Bbox.Y < minY {
				minY = w.Bbox.Y
			}
			if x2 := w.Bbox.X + w.Bbox.Width; x2 > maxX {
				maxX = x2
			}
			if y2 := w.Bbox.Y + w.Bbox.Height; y2 > maxY {
				maxY = y2
			}
		}

		lines = append(lines, entity.Line{
			Text:  strings.Join(words, " "),
			Bbox:  entity.BoundingBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY},
			Words: bucket,
		})
	}

	return lines
}
