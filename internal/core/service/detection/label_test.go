package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doc-assembly/fielddetect/internal/core/entity"
)

func wordAt(text string, x, y float64) entity.Word {
	return entity.Word{Text: text, Bbox: entity.BoundingBox{X: x, Y: y, Width: float64(len(text)) * 5, Height: 10}}
}

func TestFindNearbyLabel(t *testing.T) {
	layout := entity.PageLayout{
		Words: []entity.Word{
			wordAt("Signature:", 100, 200),
			wordAt("Unrelated", 400, 600),
			wordAt("Date:", 300, 200),
		},
	}

	// An underline starting just right of "Signature:" at the same Y.
	got := findNearbyLabel(layout, 160, 200, 80, 100)
	assert.Equal(t, "Signature:", got)
}

func TestFindNearbyLabel_NothingWithinRange(t *testing.T) {
	layout := entity.PageLayout{
		Words: []entity.Word{wordAt("Far away", 1000, 1000)},
	}
	got := findNearbyLabel(layout, 0, 0, 50, 10)
	assert.Equal(t, "", got)
}

func TestClassifyLabel(t *testing.T) {
	fieldType, roleKey, confidence := classifyLabel("Client Signature")
	assert.Equal(t, entity.FieldTypeSignature, fieldType)
	assert.Equal(t, "client", roleKey)
	assert.Equal(t, 0.7, confidence)
}
