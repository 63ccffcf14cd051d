package detection

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/doc-assembly/fielddetect/internal/core/entity"
	"github.com/doc-assembly/fielddetect/internal/core/port"
)

var underscoreRunPattern = regexp.MustCompile(`_{3,}`)

// underlineStrategy is C4: vector underlines and underscore-run blanks.
type underlineStrategy struct{}

func (underlineStrategy) name() string { return "underline" }

func (s underlineStrategy) detect(ctx context.Context, in pageInput) []entity.Candidate {
	var out []entity.Candidate
	out = append(out, s.detectVectorUnderlines(ctx, in)...)
	out = append(out, s.detectUnderscoreBlanks(in)...)
	return out
}

// detectVectorUnderlines emits a candidate for every sufficiently long
// horizontal line primitive, attaching the nearest preceding label.
func (s underlineStrategy) detectVectorUnderlines(ctx context.Context, in pageInput) []entity.Candidate {
	drawings, err := in.doc.Drawings(ctx, in.pageNumber)
	if err != nil {
		return nil
	}

	var out []entity.Candidate
	for _, d := range drawings {
		if d.Kind != port.DrawingLine {
			continue
		}
		if math.Abs(d.End.Y-d.Start.Y) >= in.cfg.LineHorizontalEpsilon {
			continue // not horizontal
		}

		length := math.Abs(d.End.X - d.Start.X)
		if length <= in.cfg.MinUnderlineLength {
			continue
		}

		minX := math.Min(d.Start.X, d.End.X)
		lineY := d.Start.Y

		label := findNearbyLabel(in.layout, minX, lineY, length, in.cfg.MaxLabelDistance)

		bbox := entity.BoundingBox{X: minX, Y: lineY - 15, Width: length, Height: 20}

		detectionConf := 0.5
		classificationConf := 0.4
		evidence := "Underline detected (no label)"
		var labelPtr, nearbyPtr *string
		fieldType := entity.FieldTypeText
		var assignee entity.AssigneeType = entity.AssigneeRole
		var roleKey *string
		roleConf := 0.3

		if label != "" {
			detectionConf = 0.7
			classificationConf = 0.6
			evidence = fmt.Sprintf("Underline detected with nearby text: %q", label)
			labelPtr = entity.StrPtr(label)
			nearbyPtr = entity.StrPtr(label)
			var rk string
			fieldType, rk, roleConf = classifyLabel(label)
			assignee, roleKey = roleAssignee(rk)
		}

		out = append(out, entity.Candidate{
			PageNumber:               in.pageNumber,
			Bbox:                     bbox,
			FieldType:                fieldType,
			AssigneeType:             assignee,
			DetectedRoleKey:          roleKey,
			DetectionConfidence:      detectionConf,
			ClassificationConfidence: classificationConf,
			RoleConfidence:           roleConf,
			Evidence:                 evidence,
			Label:                    labelPtr,
			NearbyText:               nearbyPtr,
		})
	}
	return out
}

// detectUnderscoreBlanks emits a candidate for every run of 3+ underscores
// found in a normalized line's text.
func (underlineStrategy) detectUnderscoreBlanks(in pageInput) []entity.Candidate {
	var out []entity.Candidate

	for _, line := range in.layout.Lines {
		loc := underscoreRunPattern.FindStringIndex(line.Text)
		if loc == nil {
			continue
		}

		labelText := strings.TrimSpace(line.Text[:loc[0]])

		fieldType := entity.FieldTypeText
		assignee := entity.AssigneeRole
		var roleKey *string
		roleConf := 0.3

		if labelText != "" {
			var rk string
			fieldType, rk, roleConf = classifyLabel(labelText)
			assignee, roleKey = roleAssignee(rk)
		}

		classificationConf := 0.5
		evidence := "Underscore blank detected"
		var labelPtr, nearbyPtr *string
		if labelText != "" {
			classificationConf = 0.7
			evidence = fmt.Sprintf("Underscore blank with label: %q", labelText)
			labelPtr = entity.StrPtr(labelText)
			nearbyPtr = entity.StrPtr(labelText)
		}

		bbox := line.Bbox
		if bbox.Width == 0 {
			bbox.Width = 100
		}
		if bbox.Height == 0 {
			bbox.Height = 20
		}

		out = append(out, entity.Candidate{
			PageNumber:               in.pageNumber,
			Bbox:                     bbox,
			FieldType:                fieldType,
			AssigneeType:             assignee,
			DetectedRoleKey:          roleKey,
			DetectionConfidence:      0.8,
			ClassificationConfidence: classificationConf,
			RoleConfidence:           roleConf,
			Evidence:                 evidence,
			Label:                    labelPtr,
			NearbyText:               nearbyPtr,
		})
	}

	return out
}
