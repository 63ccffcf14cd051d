package pdfadapter

import (
	"math"
	"sort"
	"strings"

	"github.com/doc-assembly/fielddetect/internal/core/entity"
	"github.com/doc-assembly/fielddetect/internal/core/port"
)

// searchYTolerance is the line-grouping tolerance so a substring spanning
// adjacent spans on the same visual line is still found.
const searchYTolerance = 2.0

// searchLine is one line's spans in left-to-right reading order, together
// with their concatenated text (no separator) that searchPage matches
// substrings against.
type searchLine struct {
	text  string
	spans []port.TextSpan
	// offsets[i] is the starting byte offset of spans[i] within text.
	offsets []int
}

// searchPage finds every occurrence of substr within each visual line of
// page, returning the union bounding box of the spans that occurrence
// overlaps. This is an approximation when a match straddles a span
// boundary mid-word, which is acceptable: anchor tags and sender variables
// are emitted by the document template as whole tokens, so they coincide
// with span boundaries in practice.
func searchPage(page port.Page, substr string) []entity.BoundingBox {
	if substr == "" {
		return nil
	}

	var hits []entity.BoundingBox
	for _, line := range buildSearchLines(page.Spans) {
		start := 0
		for {
			idx := strings.Index(line.text[start:], substr)
			if idx < 0 {
				break
			}
			matchStart := start + idx
			matchEnd := matchStart + len(substr)
			if bbox, ok := boxForRange(line, matchStart, matchEnd); ok {
				hits = append(hits, bbox)
			}
			start = matchStart + 1
			if start >= len(line.text) {
				break
			}
		}
	}
	return hits
}

// buildSearchLines groups spans by rounded Y coordinate and sorts each
// group left to right, same bucketing as C2's line grouping.
func buildSearchLines(spans []port.TextSpan) []searchLine {
	if len(spans) == 0 {
		return nil
	}

	buckets := make(map[int][]port.TextSpan)
	var keys []int
	for _, s := range spans {
		if s.Text == "" {
			continue
		}
		key := int(math.Round(s.Bbox.Y / searchYTolerance))
		if _, ok := buckets[key]; !ok {
			keys = append(keys, key)
		}
		buckets[key] = append(buckets[key], s)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	lines := make([]searchLine, 0, len(keys))
	for _, key := range keys {
		bucket := buckets[key]
		sort.SliceStable(bucket, func(i, j int) bool { return bucket[i].Bbox.X < bucket[j].Bbox.X })

		var sb strings.Builder
		offsets := make([]int, len(bucket))
		for i, s := range bucket {
			offsets[i] = sb.Len()
			sb.WriteString(s.Text)
		}

		lines = append(lines, searchLine{text: sb.String(), spans: bucket, offsets: offsets})
	}

	return lines
}

// boxForRange unions the bounding boxes of every span whose character
// range intersects [start, end) within line.
func boxForRange(line searchLine, start, end int) (entity.BoundingBox, bool) {
	var box entity.BoundingBox
	found := false

	for i, span := range line.spans {
		spanStart := line.offsets[i]
		spanEnd := spanStart + len(span.Text)
		if spanEnd <= start || spanStart >= end {
			continue
		}
		if !found {
			box = span.Bbox
			found = true
			continue
		}
		box = unionBbox(box, span.Bbox)
	}

	return box, found
}

func unionBbox(a, b entity.BoundingBox) entity.BoundingBox {
	minX := math.Min(a.X, b.X)
	minY := math.Min(a.Y, b.Y)
	maxX := math.Max(a.X+a.Width, b.X+b.Width)
	maxY := math.Max(a.Y+a.Height, b.Y+b.Height)
	return entity.BoundingBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
