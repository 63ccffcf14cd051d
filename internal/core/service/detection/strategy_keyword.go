package detection

import (
	"context"
	"fmt"
	"strings"

	"github.com/doc-assembly/fielddetect/internal/core/entity"
)

// keywordStrategy is C6: for every line, the first of
// signature/date/initials keywords to match wins and places a rigidly
// positioned candidate to the right of the label.
type keywordStrategy struct{}

func (keywordStrategy) name() string { return "keyword" }

func (keywordStrategy) detect(ctx context.Context, in pageInput) []entity.Candidate {
	var out []entity.Candidate

	for _, line := range in.layout.Lines {
		textLower := strings.ToLower(line.Text)

		if kw := matchedKeyword(textLower, signatureKeywords); kw != "" {
			out = append(out, emitKeywordCandidate(in.pageNumber, line.Bbox, textLower, kw,
				entity.FieldTypeSignature, 150, 40, 0.8, 0.9))
			continue
		}

		// Date is skipped when the line also says "signature", to avoid
		// double-emitting from a single "Signature Date" header.
		if kw := matchedKeyword(textLower, dateKeywords); kw != "" && !strings.Contains(textLower, "signature") {
			out = append(out, emitKeywordCandidate(in.pageNumber, line.Bbox, textLower, kw,
				entity.FieldTypeDateSigned, 100, 20, 0.75, 0.85))
			continue
		}

		if kw := matchedKeyword(textLower, initialsKeywords); kw != "" {
			out = append(out, emitKeywordCandidate(in.pageNumber, line.Bbox, textLower, kw,
				entity.FieldTypeInitials, 60, 30, 0.8, 0.85))
			continue
		}
	}

	return out
}

// emitKeywordCandidate builds the candidate for one keyword hit on a line,
// placing the bbox immediately to the right of the label per the fixed
// field-type geometry table.
func emitKeywordCandidate(pageNumber int, labelBbox entity.BoundingBox, textLower, keyword string, fieldType entity.FieldType, width, height, detectionConf, classificationConf float64) entity.Candidate {
	bbox := entity.BoundingBox{
		X:      labelBbox.X + labelBbox.Width + 10,
		Y:      labelBbox.Y,
		Width:  width,
		Height: height,
	}

	roleKey, roleConf := inferRole(textLower)
	assignee, rolePtr := roleAssignee(roleKey)

	trimmed := strings.TrimSpace(textLower)

	return entity.Candidate{
		PageNumber:               pageNumber,
		Bbox:                     bbox,
		FieldType:                fieldType,
		AssigneeType:             assignee,
		DetectedRoleKey:          rolePtr,
		DetectionConfidence:      detectionConf,
		ClassificationConfidence: classificationConf,
		RoleConfidence:           roleConf,
		Evidence:                 fmt.Sprintf("%s keyword %q detected (inferred role: %s)", fieldTypeLabel(fieldType), keyword, roleKey),
		Label:                    entity.StrPtr(trimmed),
		NearbyText:               entity.StrPtr(trimmed),
	}
}

func fieldTypeLabel(t entity.FieldType) string {
	switch t {
	case entity.FieldTypeSignature:
		return "Signature"
	case entity.FieldTypeDateSigned:
		return "Date"
	case entity.FieldTypeInitials:
		return "Initials"
	default:
		return string(t)
	}
}
