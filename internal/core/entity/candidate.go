package entity

// Candidate is one proposed fillable region, emitted by a single detection
// strategy and possibly surviving deduplication and confidence filtering.
type Candidate struct {
	PageNumber int         `json:"page_number"`
	Bbox       BoundingBox `json:"bbox"`
	FieldType  FieldType   `json:"field_type"`

	AssigneeType    AssigneeType `json:"assignee_type"`
	DetectedRoleKey *string      `json:"detected_role_key"`

	DetectionConfidence      float64 `json:"detection_confidence"`
	ClassificationConfidence float64 `json:"classification_confidence"`
	RoleConfidence           float64 `json:"role_confidence"`

	Evidence   string  `json:"evidence"`
	Label      *string `json:"label"`
	NearbyText *string `json:"nearby_text"`
}

// LegacyOwner is the three-valued owner enum the surrounding system carried
// before the assignee_type/detected_role_key model. It is never part of the
// public JSON contract; collaborators that still need it call this accessor
// directly.
type LegacyOwner string

const (
	LegacyOwnerSender  LegacyOwner = "SENDER"
	LegacyOwnerSigner1 LegacyOwner = "SIGNER_1"
	LegacyOwnerSigner2 LegacyOwner = "SIGNER_2"
)

// legacyRoleMap is a fixed, best-effort mapping from inferred role key to
// the old two-signer owner enum, kept only for collaborators that have not
// migrated off it.
var legacyRoleMap = map[string]LegacyOwner{
	"client":     LegacyOwnerSigner1,
	"employee":   LegacyOwnerSigner1,
	"contractor": LegacyOwnerSigner1,
	"tenant":     LegacyOwnerSigner1,
	"buyer":      LegacyOwnerSigner1,
	"borrower":   LegacyOwnerSigner1,
	"company":    LegacyOwnerSigner2,
	"employer":   LegacyOwnerSigner2,
	"landlord":   LegacyOwnerSigner2,
	"seller":     LegacyOwnerSigner2,
	"lender":     LegacyOwnerSigner2,
	"witness":    LegacyOwnerSigner2,
	"guarantor":  LegacyOwnerSigner2,
}

// LegacyOwner derives the deprecated three-valued owner for this candidate.
// SENDER assignees map directly; ROLE assignees fall back to SIGNER_1 when
// the role key isn't in the fixed legacy table.
func (c Candidate) LegacyOwner() LegacyOwner {
	if c.AssigneeType == AssigneeSender {
		return LegacyOwnerSender
	}
	if c.DetectedRoleKey == nil {
		return LegacyOwnerSigner1
	}
	if owner, ok := legacyRoleMap[*c.DetectedRoleKey]; ok {
		return owner
	}
	return LegacyOwnerSigner1
}

// StrPtr is a small convenience for building optional string fields.
func StrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
