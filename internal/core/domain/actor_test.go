package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBranchID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *uint
	}{
		{name: "absent", raw: "", want: nil},
		{name: "blank", raw: "   ", want: nil},
		{name: "non numeric", raw: "douala", want: nil},
		{name: "mixed", raw: "12abc", want: nil},
		{name: "negative", raw: "-3", want: nil},
		{name: "numeric", raw: "7", want: uintPtr(7)},
		{name: "padded", raw: " 42 ", want: uintPtr(42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBranchID(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleDGAdmin, ParseRole("DG_ADMIN"))
	assert.Equal(t, RoleDGAdmin, ParseRole("dg_admin"))
	assert.Equal(t, RoleAgencyManager, ParseRole("Agency_Manager"))
	assert.Equal(t, RoleAgent, ParseRole("agent"))
	assert.Equal(t, RoleAgent, ParseRole(""))
	assert.Equal(t, RoleAgent, ParseRole("root"))
}

func TestActorBranch(t *testing.T) {
	_, ok := ParseActor("", "AGENT").Branch()
	assert.False(t, ok)

	_, ok = ParseActor("0", "AGENT").Branch()
	assert.False(t, ok, "branch 0 is not a usable scope")

	id, ok := ParseActor("3", "agency_manager").Branch()
	assert.True(t, ok)
	assert.Equal(t, uint(3), id)

	assert.True(t, ParseActor("", "dg_admin").IsDG())
	assert.False(t, ParseActor("1", "AGENT").IsDG())
}

func TestErrorKinds(t *testing.T) {
	assert.ErrorIs(t, ErrMissingScope, ErrInvalidInput)
	assert.ErrorIs(t, ErrClientNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrCNIAlreadyUsed, ErrDuplicateKey)
	assert.ErrorIs(t, ErrClientDuplicate, ErrDuplicateConflict)
	assert.ErrorIs(t, ErrClientHasActivePolicies, ErrConflict)
	assert.NotErrorIs(t, ErrClientDuplicate, ErrDuplicateKey)
	assert.Equal(t, "client has active policies", ErrClientHasActivePolicies.Error())
}

func uintPtr(v uint) *uint { return &v }
