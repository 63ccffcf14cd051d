package entity

// FieldType is the closed set of semantic field types a candidate can be
// classified as.
type FieldType string

const (
	FieldTypeText       FieldType = "TEXT"
	FieldTypeName       FieldType = "NAME"
	FieldTypeEmail      FieldType = "EMAIL"
	FieldTypeDateSigned FieldType = "DATE_SIGNED"
	FieldTypeCheckbox   FieldType = "CHECKBOX"
	FieldTypeSignature  FieldType = "SIGNATURE"
	FieldTypeInitials   FieldType = "INITIALS"
)

// Valid reports whether t is one of the closed FieldType values.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeName, FieldTypeEmail, FieldTypeDateSigned,
		FieldTypeCheckbox, FieldTypeSignature, FieldTypeInitials:
		return true
	default:
		return false
	}
}

// AssigneeType indicates who is expected to fill a candidate field.
type AssigneeType string

const (
	// AssigneeSender is filled by the document originator before dispatch.
	AssigneeSender AssigneeType = "SENDER"
	// AssigneeRole is filled by a named downstream signer role.
	AssigneeRole AssigneeType = "ROLE"
)

// Valid reports whether a is one of the closed AssigneeType values.
func (a AssigneeType) Valid() bool {
	return a == AssigneeSender || a == AssigneeRole
}
