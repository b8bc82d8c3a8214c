package services

import (
	"testing"
	"time"

	"intia-api/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPolicyInput(clientID, branchID uint) *CreatePolicyInput {
	return &CreatePolicyInput{
		PolicyNo:  "POL-001",
		Type:      "AUTO",
		StartDate: "2024-01-01",
		EndDate:   "2025-01-01",
		Premium:   150000,
		ClientID:  clientID,
		BranchID:  branchID,
	}
}

func TestPolicyServiceCreate(t *testing.T) {
	f := newFixture(t)
	c := f.mustClient(t, f.douala, "Awa", "Bello", "600000000")

	p, err := f.policies.Create(f.ctx, newPolicyInput(c.ID, f.douala.ID))
	require.NoError(t, err)
	assert.Equal(t, string(domain.PolicyActive), p.Status)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), p.StartDate.UTC())
	require.NotNil(t, p.Client)
	assert.Equal(t, "Bello", p.Client.LastName)
	require.NotNil(t, p.Branch)
	assert.Equal(t, "DOUALA", p.Branch.Code)
}

func TestPolicyServiceCreateOneDayPolicy(t *testing.T) {
	f := newFixture(t)
	c := f.mustClient(t, f.douala, "Awa", "Bello", "600000000")

	in := newPolicyInput(c.ID, f.douala.ID)
	in.StartDate, in.EndDate = "2024-01-01", "2024-01-02"
	_, err := f.policies.Create(f.ctx, in)
	assert.NoError(t, err)
}

func TestPolicyServiceCreatePolicyBranchMayDifferFromClient(t *testing.T) {
	f := newFixture(t)
	c := f.mustClient(t, f.douala, "Awa", "Bello", "600000000")

	p, err := f.policies.Create(f.ctx, newPolicyInput(c.ID, f.yaounde.ID))
	require.NoError(t, err)
	assert.Equal(t, f.yaounde.ID, p.BranchID)
	assert.Equal(t, f.douala.ID, p.Client.BranchID)
}

func TestPolicyServiceCreateErrors(t *testing.T) {
	f := newFixture(t)
	c := f.mustClient(t, f.douala, "Awa", "Bello", "600000000")

	tests := []struct {
		name   string
		mutate func(in *CreatePolicyInput)
		want   error
	}{
		{"end equals start", func(in *CreatePolicyInput) { in.EndDate = in.StartDate }, domain.ErrEndBeforeStart},
		{"end before start", func(in *CreatePolicyInput) { in.EndDate = "2023-12-31" }, domain.ErrEndBeforeStart},
		{"unparseable start", func(in *CreatePolicyInput) { in.StartDate = "01/02/2024" }, domain.ErrInvalidDates},
		{"unparseable end", func(in *CreatePolicyInput) { in.EndDate = "soon" }, domain.ErrInvalidDates},
		{"unknown client", func(in *CreatePolicyInput) { in.ClientID = 999 }, domain.ErrClientNotFound},
		{"unknown branch", func(in *CreatePolicyInput) { in.BranchID = 999 }, domain.ErrBranchNotFound},
		{"bad type", func(in *CreatePolicyInput) { in.Type = "BOAT" }, domain.ErrInvalidInput},
		{"bad status", func(in *CreatePolicyInput) { in.Status = "PENDING" }, domain.ErrInvalidInput},
		{"zero premium", func(in *CreatePolicyInput) { in.Premium = 0 }, domain.ErrInvalidInput},
		{"blank policy number", func(in *CreatePolicyInput) { in.PolicyNo = " " }, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newPolicyInput(c.ID, f.douala.ID)
			tt.mutate(in)
			_, err := f.policies.Create(f.ctx, in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPolicyServiceCreateInactiveClientAllowed(t *testing.T) {
	f := newFixture(t)
	c := f.mustClient(t, f.douala, "Awa", "Bello", "600000000")
	_, err := f.clients.Remove(f.ctx, c.ID, dgAdmin())
	require.NoError(t, err)

	_, err = f.policies.Create(f.ctx, newPolicyInput(c.ID, f.douala.ID))
	assert.NoError(t, err)
}

func TestPolicyServiceFindAllFilters(t *testing.T) {
	f := newFixture(t)
	a := f.mustClient(t, f.douala, "Awa", "Bello", "600000001")
	b := f.mustClient(t, f.yaounde, "Jean", "Mbarga", "600000002")

	p1 := f.mustPolicy(t, a, "P1", "2024-01-01", "2025-01-01", domain.PolicyActive)
	f.mustPolicy(t, a, "P2", "2020-01-01", "2021-01-01", domain.PolicyExpired)
	p3 := f.mustPolicy(t, b, "P3", "2024-01-01", "2025-01-01", domain.PolicyActive)

	all, err := f.policies.FindAll(f.ctx, PolicyFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, p3.ID, all[0].ID)

	active := domain.PolicyActive
	got, err := f.policies.FindAll(f.ctx, PolicyFilter{BranchID: &f.douala.ID, Status: &active})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, p1.ID, got[0].ID)

	got, err = f.policies.FindAll(f.ctx, PolicyFilter{ClientID: &a.ID})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	none := uint(999)
	got, err = f.policies.FindAll(f.ctx, PolicyFilter{ClientID: &none})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPolicyServiceFindOneNotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.policies.FindOne(f.ctx, 999)
	assert.ErrorIs(t, err, domain.ErrPolicyNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPolicyServiceUpdate(t *testing.T) {
	f := newFixture(t)
	c := f.mustClient(t, f.douala, "Awa", "Bello", "600000000")
	p := f.mustPolicy(t, c, "P1", "2024-01-01", "2025-01-01", domain.PolicyActive)

	premium := int64(200000)
	got, err := f.policies.Update(f.ctx, p.ID, &UpdatePolicyInput{
		Premium: &premium,
		Type:    strPtr("sante"),
	})
	require.NoError(t, err)
	assert.Equal(t, premium, got.Premium)
	assert.Equal(t, "SANTE", got.Type)
	assert.Equal(t, "P1", got.PolicyNo)
}

func TestPolicyServiceUpdateSingleDateNotComparedWithStored(t *testing.T) {
	f := newFixture(t)
	c := f.mustClient(t, f.douala, "Awa", "Bello", "600000000")
	p := f.mustPolicy(t, c, "P1", "2024-01-01", "2024-06-01", domain.PolicyActive)

	got, err := f.policies.Update(f.ctx, p.ID, &UpdatePolicyInput{EndDate: strPtr("2023-01-01")})
	require.NoError(t, err)
	assert.True(t, got.EndDate.Before(got.StartDate))
}

func TestPolicyServiceUpdateDateErrors(t *testing.T) {
	f := newFixture(t)
	c := f.mustClient(t, f.douala, "Awa", "Bello", "600000000")
	p := f.mustPolicy(t, c, "P1", "2024-01-01", "2024-06-01", domain.PolicyActive)

	_, err := f.policies.Update(f.ctx, p.ID, &UpdatePolicyInput{StartDate: strPtr("nope")})
	assert.ErrorIs(t, err, domain.ErrInvalidStartDate)

	_, err = f.policies.Update(f.ctx, p.ID, &UpdatePolicyInput{EndDate: strPtr("nope")})
	assert.ErrorIs(t, err, domain.ErrInvalidEndDate)

	_, err = f.policies.Update(f.ctx, p.ID, &UpdatePolicyInput{
		StartDate: strPtr("2024-05-01"),
		EndDate:   strPtr("2024-05-01"),
	})
	assert.ErrorIs(t, err, domain.ErrEndBeforeStart)

	_, err = f.policies.Update(f.ctx, 999, &UpdatePolicyInput{})
	assert.ErrorIs(t, err, domain.ErrPolicyNotFound)
}

func TestPolicyServiceUpdateReferences(t *testing.T) {
	f := newFixture(t)
	a := f.mustClient(t, f.douala, "Awa", "Bello", "600000001")
	b := f.mustClient(t, f.yaounde, "Jean", "Mbarga", "600000002")
	p := f.mustPolicy(t, a, "P1", "2024-01-01", "2025-01-01", domain.PolicyActive)

	missing := uint(999)
	_, err := f.policies.Update(f.ctx, p.ID, &UpdatePolicyInput{ClientID: &missing})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)

	_, err = f.policies.Update(f.ctx, p.ID, &UpdatePolicyInput{BranchID: &missing})
	assert.ErrorIs(t, err, domain.ErrBranchNotFound)

	got, err := f.policies.Update(f.ctx, p.ID, &UpdatePolicyInput{ClientID: &b.ID, BranchID: &f.yaounde.ID})
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ClientID)
	assert.Equal(t, "YAOUNDE", got.Branch.Code)
}

func TestPolicyServiceRemoveCancels(t *testing.T) {
	f := newFixture(t)
	c := f.mustClient(t, f.douala, "Awa", "Bello", "600000000")
	p := f.mustPolicy(t, c, "P1", "2024-01-01", "2025-01-01", domain.PolicyActive)

	got, err := f.policies.Remove(f.ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.PolicyCanceled), got.Status)
	assert.Equal(t, p.PolicyNo, got.PolicyNo)
	assert.Equal(t, p.Premium, got.Premium)
	assert.True(t, p.EndDate.Equal(got.EndDate))

	// canceling twice is allowed
	_, err = f.policies.Remove(f.ctx, p.ID)
	assert.NoError(t, err)

	_, err = f.policies.Remove(f.ctx, 999)
	assert.ErrorIs(t, err, domain.ErrPolicyNotFound)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"2024-03-15T10:30:00Z", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), true},
		{"2024-03-15T10:30:00.000Z", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), true},
		{"2024-03-15T11:30:00+01:00", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), true},
		{"2024-03-15T10:30:00", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), true},
		{"15/03/2024", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.True(t, tt.want.Equal(got), "%s: got %s", tt.in, got)
	}
}
