package detection

import (
	"math"
	"strings"

	"github.com/doc-assembly/fielddetect/internal/core/entity"
)

// findNearbyLabel considers every word on the page, keeping only those
// with word.y <= y && word.x <= x+width (in the y-up page convention: at or
// below the underline's Y, starting no further right than its end), then
// returns the text of the Manhattan-closest one within maxDistance. Returns
// "" when nothing qualifies.
func findNearbyLabel(layout entity.PageLayout, x, y, width, maxDistance float64) string {
	best := ""
	bestDistance := math.Inf(1)

	for _, w := range layout.Words {
		if w.Bbox.Y > y || w.Bbox.X > x+width {
			continue
		}
		distance := math.Abs(y-w.Bbox.Y) + math.Abs(x-w.Bbox.X)
		if distance < bestDistance && distance < maxDistance {
			bestDistance = distance
			best = w.Text
		}
	}

	return best
}

// classifyLabel lowercases the label, runs the ordered keyword scan
// (lexicon.go), and runs role inference on the same lowercased text.
func classifyLabel(label string) (fieldType entity.FieldType, roleKey string, roleConfidence float64) {
	labelLower := strings.ToLower(label)
	fieldType, _ = classifyByLabel(labelLower)
	roleKey, roleConfidence = inferRole(labelLower)
	return fieldType, roleKey, roleConfidence
}
