package detection

import (
	"strings"

	"github.com/doc-assembly/fielddetect/internal/core/entity"
)

// signatureKeywords, dateKeywords, nameKeywords, emailKeywords and
// initialsKeywords are the closed phrase lists a label is scanned against,
// in this fixed precedence order: signature, date, name, email, initials.
// Checking signature before date makes "signature date" classify as
// SIGNATURE; "date signed" still classifies as DATE_SIGNED because none of
// the signature phrases occurs in it.
var (
	signatureKeywords = []string{
		"signature", "sign here", "authorized signature",
		"client signature", "employee signature", "contractor signature",
		"landlord signature", "tenant signature", "buyer signature",
		"seller signature", "witness signature",
	}

	dateKeywords = []string{
		"date", "dated", "date signed", "effective date",
		"start date", "end date", "as of",
	}

	nameKeywords = []string{
		"name", "print name", "printed name", "full name",
		"client name", "employee name", "contractor name",
		"landlord", "tenant", "buyer", "seller",
	}

	emailKeywords = []string{"email", "e-mail", "email address"}

	initialsKeywords = []string{"initials", "initial here", "initial"}
)

// roleKeywords enumerates, in a fixed insertion order, the phrases that
// disambiguate which named party a field belongs to. First match wins.
var roleKeywords = []struct {
	Key      string
	Keywords []string
}{
	{"client", []string{"client", "customer", "buyer", "purchaser", "party a", "first party"}},
	{"contractor", []string{"contractor", "consultant", "freelancer", "vendor"}},
	{"employee", []string{"employee", "worker", "staff", "team member"}},
	{"company", []string{"company", "employer", "corporation", "business", "party b", "second party"}},
	{"landlord", []string{"landlord", "lessor", "property owner", "owner"}},
	{"tenant", []string{"tenant", "renter", "lessee", "occupant"}},
	{"seller", []string{"seller", "vendor"}},
	{"borrower", []string{"borrower", "debtor"}},
	{"lender", []string{"lender", "creditor", "bank"}},
	{"witness", []string{"witness"}},
	{"guarantor", []string{"guarantor", "co-signer", "cosigner"}},
}

// anchorTypeMap maps an anchor tag's type code to the FieldType it denotes.
// Unknown codes default to FieldTypeText at the call site.
var anchorTypeMap = map[string]entity.FieldType{
	"sig":       entity.FieldTypeSignature,
	"signature": entity.FieldTypeSignature,
	"init":      entity.FieldTypeInitials,
	"initials":  entity.FieldTypeInitials,
	"date":      entity.FieldTypeDateSigned,
	"text":      entity.FieldTypeText,
	"name":      entity.FieldTypeName,
	"email":     entity.FieldTypeEmail,
	"check":     entity.FieldTypeCheckbox,
	"checkbox":  entity.FieldTypeCheckbox,
}

// classifyByLabel runs the fixed keyword precedence scan over a (already
// lowercased) label and returns the matched type, or FieldTypeText plus
// false if nothing matched.
func classifyByLabel(labelLower string) (entity.FieldType, bool) {
	for _, kw := range signatureKeywords {
		if strings.Contains(labelLower, kw) {
			return entity.FieldTypeSignature, true
		}
	}
	for _, kw := range dateKeywords {
		if strings.Contains(labelLower, kw) {
			return entity.FieldTypeDateSigned, true
		}
	}
	for _, kw := range nameKeywords {
		if strings.Contains(labelLower, kw) {
			return entity.FieldTypeName, true
		}
	}
	for _, kw := range emailKeywords {
		if strings.Contains(labelLower, kw) {
			return entity.FieldTypeEmail, true
		}
	}
	for _, kw := range initialsKeywords {
		if strings.Contains(labelLower, kw) {
			return entity.FieldTypeInitials, true
		}
	}
	return entity.FieldTypeText, false
}

// matchedKeyword returns the first keyword from list that appears in
// textLower, or "" if none do. Used where the emitted evidence string
// needs to name the exact trigger phrase.
func matchedKeyword(textLower string, list []string) string {
	for _, kw := range list {
		if strings.Contains(textLower, kw) {
			return kw
		}
	}
	return ""
}
