package detection

import (
	"context"

	"github.com/doc-assembly/fielddetect/internal/core/entity"
	"github.com/doc-assembly/fielddetect/internal/core/port"
)

// pageInput bundles everything a strategy needs to inspect one page. Every
// strategy has the same shape: (page, layout) -> []Candidate, modeled as an
// interface with one method rather than a class hierarchy.
type pageInput struct {
	doc        port.PDFDocument
	page       port.Page
	layout     entity.PageLayout
	pageNumber int
	cfg        Config
}

// strategy is the common shape every detection strategy (C4-C7) implements.
type strategy interface {
	// name identifies the strategy in logs and evidence strings.
	name() string
	// detect returns every candidate this strategy finds on one page. It
	// never returns an error: a strategy's internal failures degrade to
	// "no candidates emitted", caught by the orchestrator.
	detect(ctx context.Context, in pageInput) []entity.Candidate
}

// roleAssignee builds the (AssigneeType, *string) pair for a ROLE-assigned
// candidate from an inferred role key.
func roleAssignee(roleKey string) (entity.AssigneeType, *string) {
	return entity.AssigneeRole, entity.StrPtr(roleKey)
}
