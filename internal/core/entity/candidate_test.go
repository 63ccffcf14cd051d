package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidate_LegacyOwner(t *testing.T) {
	tests := []struct {
		name string
		c    Candidate
		want LegacyOwner
	}{
		{"sender maps to SENDER regardless of role key", Candidate{AssigneeType: AssigneeSender}, LegacyOwnerSender},
		{"nil role key defaults to SIGNER_1", Candidate{AssigneeType: AssigneeRole, DetectedRoleKey: nil}, LegacyOwnerSigner1},
		{"client maps to SIGNER_1", Candidate{AssigneeType: AssigneeRole, DetectedRoleKey: StrPtr("client")}, LegacyOwnerSigner1},
		{"company maps to SIGNER_2", Candidate{AssigneeType: AssigneeRole, DetectedRoleKey: StrPtr("company")}, LegacyOwnerSigner2},
		{"unknown role key defaults to SIGNER_1", Candidate{AssigneeType: AssigneeRole, DetectedRoleKey: StrPtr("notary")}, LegacyOwnerSigner1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.LegacyOwner())
		})
	}
}

func TestStrPtr(t *testing.T) {
	assert.Nil(t, StrPtr(""))
	require := StrPtr("client")
	if assert.NotNil(t, require) {
		assert.Equal(t, "client", *require)
	}
}
