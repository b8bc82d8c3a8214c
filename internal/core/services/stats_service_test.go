package services

import (
	"testing"
	"time"

	"intia-api/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsServiceOverview(t *testing.T) {
	f := newFixture(t)
	f.stats.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

	a := f.mustClient(t, f.douala, "Awa", "Bello", "600000001")
	b := f.mustClient(t, f.douala, "Jean", "Mbarga", "600000002")
	c := f.mustClient(t, f.yaounde, "Paul", "Ngono", "600000003")
	_, err := f.clients.Remove(f.ctx, b.ID, dgAdmin())
	require.NoError(t, err)

	soon := f.mustPolicy(t, a, "P-SOON", "2024-01-01", "2024-06-10", domain.PolicyActive)
	sooner := f.mustPolicy(t, c, "P-SOONER", "2024-01-01", "2024-06-05", domain.PolicyActive)
	f.mustPolicy(t, a, "P-LATER", "2024-01-01", "2024-12-31", domain.PolicyActive)
	f.mustPolicy(t, a, "P-PAST", "2024-01-01", "2024-05-01", domain.PolicyActive)
	f.mustPolicy(t, c, "P-EXP", "2024-01-01", "2024-06-08", domain.PolicyExpired)
	f.mustPolicy(t, c, "P-CAN", "2024-01-01", "2024-06-08", domain.PolicyCanceled)

	got, err := f.stats.Overview(f.ctx)
	require.NoError(t, err)

	// inactive clients are still counted
	assert.Equal(t, OverviewTotals{
		Clients:          3,
		Policies:         6,
		PoliciesActive:   4,
		PoliciesExpired:  1,
		PoliciesCanceled: 1,
	}, got.Totals)

	require.Len(t, got.ByBranch.Clients, 2)
	assert.Equal(t, f.douala.ID, got.ByBranch.Clients[0].BranchID)
	assert.EqualValues(t, 2, got.ByBranch.Clients[0].Count)
	assert.Equal(t, f.yaounde.ID, got.ByBranch.Clients[1].BranchID)
	assert.EqualValues(t, 1, got.ByBranch.Clients[1].Count)

	require.Len(t, got.ByBranch.Policies, 2)
	assert.EqualValues(t, 3, got.ByBranch.Policies[0].Count)
	assert.EqualValues(t, 3, got.ByBranch.Policies[1].Count)

	require.Len(t, got.ExpiringSoon, 2)
	assert.Equal(t, sooner.ID, got.ExpiringSoon[0].ID)
	assert.Equal(t, soon.ID, got.ExpiringSoon[1].ID)
	require.NotNil(t, got.ExpiringSoon[0].Client)
	assert.Equal(t, "Ngono", got.ExpiringSoon[0].Client.LastName)
	require.NotNil(t, got.ExpiringSoon[0].Branch)
	assert.Equal(t, "YAOUNDE", got.ExpiringSoon[0].Branch.Code)
}

func TestStatsServiceOverviewEmpty(t *testing.T) {
	f := newFixture(t)

	got, err := f.stats.Overview(f.ctx)
	require.NoError(t, err)
	assert.Zero(t, got.Totals)
	assert.Empty(t, got.ByBranch.Clients)
	assert.Empty(t, got.ByBranch.Policies)
	assert.Empty(t, got.ExpiringSoon)
}

func TestStatsServiceExpiringSoonCapped(t *testing.T) {
	f := newFixture(t)
	f.stats.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	c := f.mustClient(t, f.douala, "Awa", "Bello", "600000000")

	for i := 0; i < domain.ExpiringSoonLimit+5; i++ {
		end := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour)
		f.mustPolicy(t, c, "P", "2024-01-01", end.Format(time.RFC3339), domain.PolicyActive)
	}

	got, err := f.stats.Overview(f.ctx)
	require.NoError(t, err)
	require.Len(t, got.ExpiringSoon, domain.ExpiringSoonLimit)
	for i := 1; i < len(got.ExpiringSoon); i++ {
		assert.False(t, got.ExpiringSoon[i].EndDate.Before(got.ExpiringSoon[i-1].EndDate))
	}
}
