package detection

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doc-assembly/fielddetect/internal/core/entity"
)

func TestClassifyByLabel_Precedence(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  entity.FieldType
	}{
		{"plain signature", "Signature", entity.FieldTypeSignature},
		{"date signed resolves to date not signature", "Date Signed", entity.FieldTypeDateSigned},
		{"signature wins over date when both appear", "Signature Date", entity.FieldTypeSignature},
		{"print name", "Print Name", entity.FieldTypeName},
		{"email address", "Email Address", entity.FieldTypeEmail},
		{"initials", "Initial Here", entity.FieldTypeInitials},
		{"unmatched label falls back to text", "Comments", entity.FieldTypeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := classifyByLabel(strings.ToLower(tt.label))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchedKeyword(t *testing.T) {
	assert.Equal(t, "date", matchedKeyword("the date today", dateKeywords))
	assert.Equal(t, "", matchedKeyword("nothing relevant here", dateKeywords))
}

func TestAnchorTypeMap_KnownCodes(t *testing.T) {
	assert.Equal(t, entity.FieldTypeSignature, anchorTypeMap["sig"])
	assert.Equal(t, entity.FieldTypeCheckbox, anchorTypeMap["check"])
	_, ok := anchorTypeMap["bogus"]
	assert.False(t, ok)
}
