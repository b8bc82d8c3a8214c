package services

import (
	"testing"

	"intia-api/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchServiceListOrderedByID(t *testing.T) {
	f := newFixture(t)

	dg, err := f.branches.Create(f.ctx, &CreateBranchInput{Code: "DG", Name: "Direction Generale"})
	require.NoError(t, err)

	branches, err := f.branches.List(f.ctx)
	require.NoError(t, err)
	require.Len(t, branches, 3)
	assert.Equal(t, f.douala.ID, branches[0].ID)
	assert.Equal(t, f.yaounde.ID, branches[1].ID)
	assert.Equal(t, dg.ID, branches[2].ID)
}

func TestBranchServiceCreateDuplicateCode(t *testing.T) {
	f := newFixture(t)

	_, err := f.branches.Create(f.ctx, &CreateBranchInput{Code: "DOUALA", Name: "Another Douala"})
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
	assert.ErrorIs(t, err, domain.ErrBranchCodeExists)
}

func TestBranchServiceCreateValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.branches.Create(f.ctx, &CreateBranchInput{Code: "D", Name: "Douala Nord"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.branches.Create(f.ctx, &CreateBranchInput{Code: "BAF", Name: "  B "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	b, err := f.branches.Create(f.ctx, &CreateBranchInput{Code: " BAF ", Name: "Bafoussam"})
	require.NoError(t, err)
	assert.Equal(t, "BAF", b.Code)
	assert.NotZero(t, b.ID)
}
