package detection

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/doc-assembly/fielddetect/internal/core/entity"
)

var (
	// roleAnchorPattern is the preferred, new-style anchor: [type|role:key].
	roleAnchorPattern = regexp.MustCompile(`\[(\w+)\|role:(\w+)\]`)
	// legacyAnchorPattern is the older [type|signerN] / [type|sender] form.
	// Applied after roleAnchorPattern and skipped when the match also
	// contains "role:" so the two patterns never double-match.
	legacyAnchorPattern = regexp.MustCompile(`\[(\w+)\|(\w+)\]`)
	// senderVarPattern is the sender-filled {{var}} placeholder.
	senderVarPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)
)

// legacyRoleCode maps a legacy anchor's second segment to a role key. The
// "sender" code is not in this map; the call site handles it.
var legacyRoleCode = map[string]string{
	"signer1":  "signer_1",
	"signer_1": "signer_1",
	"s1":       "signer_1",
	"signer2":  "signer_2",
	"signer_2": "signer_2",
	"s2":       "signer_2",
}

// anchorStrategy is C7: inline authoring tags parsed directly from the
// page's rendered text, located precisely via substring search.
type anchorStrategy struct{}

func (anchorStrategy) name() string { return "anchor" }

func (s anchorStrategy) detect(ctx context.Context, in pageInput) []entity.Candidate {
	text := pageText(in.layout)

	var out []entity.Candidate
	out = append(out, s.detectRoleAnchors(ctx, in, text)...)
	out = append(out, s.detectLegacyAnchors(ctx, in, text)...)
	out = append(out, s.detectSenderVars(ctx, in, text)...)
	return out
}

// pageText reconstructs a full-page text blob from the layout's lines,
// newline-joined, so the anchor regexes can match across a whole page the
// same way they would against fitz's page.get_text("text").
func pageText(layout entity.PageLayout) string {
	var sb strings.Builder
	for i, l := range layout.Lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.Text)
	}
	return sb.String()
}

func anchorSize(fieldType entity.FieldType) (width, height float64) {
	switch fieldType {
	case entity.FieldTypeSignature:
		width = 150
	case entity.FieldTypeName:
		width = 100
	default:
		width = 80
	}
	if fieldType == entity.FieldTypeSignature || fieldType == entity.FieldTypeInitials {
		height = 40
	} else {
		height = 20
	}
	return width, height
}

func (anchorStrategy) detectRoleAnchors(ctx context.Context, in pageInput, text string) []entity.Candidate {
	var out []entity.Candidate

	for _, m := range roleAnchorPattern.FindAllStringSubmatch(text, -1) {
		full, typeCode, roleKey := m[0], strings.ToLower(m[1]), strings.ToLower(m[2])

		bbox, ok := locateAnchor(ctx, in, full)
		if !ok {
			continue
		}

		fieldType := anchorTypeMap[typeCode]
		if fieldType == "" {
			fieldType = entity.FieldTypeText
		}
		width, height := anchorSize(fieldType)
		bbox.Width, bbox.Height = width, height

		out = append(out, entity.Candidate{
			PageNumber:               in.pageNumber,
			Bbox:                     bbox,
			FieldType:                fieldType,
			AssigneeType:             entity.AssigneeRole,
			DetectedRoleKey:          entity.StrPtr(roleKey),
			DetectionConfidence:      0.95,
			ClassificationConfidence: 0.95,
			RoleConfidence:           0.95,
			Evidence:                 fmt.Sprintf("Anchor tag %q detected (role: %s)", full, roleKey),
			Label:                    entity.StrPtr(full),
		})
	}

	return out
}

func (anchorStrategy) detectLegacyAnchors(ctx context.Context, in pageInput, text string) []entity.Candidate {
	var out []entity.Candidate

	for _, m := range legacyAnchorPattern.FindAllStringSubmatch(text, -1) {
		full, typeCode, roleCode := m[0], strings.ToLower(m[1]), strings.ToLower(m[2])

		if strings.Contains(strings.ToLower(full), "role:") {
			continue // already matched by the new-format pattern
		}

		bbox, ok := locateAnchor(ctx, in, full)
		if !ok {
			continue
		}

		fieldType := anchorTypeMap[typeCode]
		if fieldType == "" {
			fieldType = entity.FieldTypeText
		}
		width, height := anchorSize(fieldType)
		bbox.Width, bbox.Height = width, height

		assignee := entity.AssigneeRole
		var roleKeyPtr *string
		if roleCode == "sender" {
			assignee = entity.AssigneeSender
		} else if rk, ok := legacyRoleCode[roleCode]; ok {
			roleKeyPtr = entity.StrPtr(rk)
		} else {
			roleKeyPtr = entity.StrPtr("signer_1")
		}

		out = append(out, entity.Candidate{
			PageNumber:               in.pageNumber,
			Bbox:                     bbox,
			FieldType:                fieldType,
			AssigneeType:             assignee,
			DetectedRoleKey:          roleKeyPtr,
			DetectionConfidence:      0.95,
			ClassificationConfidence: 0.95,
			RoleConfidence:           0.95,
			Evidence:                 fmt.Sprintf("Anchor tag %q detected", full),
			Label:                    entity.StrPtr(full),
		})
	}

	return out
}

func (anchorStrategy) detectSenderVars(ctx context.Context, in pageInput, text string) []entity.Candidate {
	var out []entity.Candidate

	for _, m := range senderVarPattern.FindAllStringSubmatch(text, -1) {
		full, varName := m[0], m[1]

		bbox, ok := locateAnchor(ctx, in, full)
		if !ok {
			continue
		}
		bbox.Width, bbox.Height = 100, 20

		out = append(out, entity.Candidate{
			PageNumber:               in.pageNumber,
			Bbox:                     bbox,
			FieldType:                entity.FieldTypeText,
			AssigneeType:             entity.AssigneeSender,
			DetectedRoleKey:          nil,
			DetectionConfidence:      0.95,
			ClassificationConfidence: 0.9,
			RoleConfidence:           0.95,
			Evidence:                 fmt.Sprintf("Sender variable tag \"{{%s}}\" detected", varName),
			Label:                    entity.StrPtr(varName),
		})
	}

	return out
}

// locateAnchor finds the first rendered occurrence of an exact matched
// substring via the adapter's search.
func locateAnchor(ctx context.Context, in pageInput, substr string) (entity.BoundingBox, bool) {
	hits, err := in.doc.Search(ctx, in.pageNumber, substr)
	if err != nil || len(hits) == 0 {
		return entity.BoundingBox{}, false
	}
	return hits[0], true
}
