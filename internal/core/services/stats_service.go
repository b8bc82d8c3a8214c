package services

import (
	"context"
	"time"

	"intia-api/internal/adapters/persistence/models"
	"intia-api/internal/adapters/persistence/repositories"
	"intia-api/internal/core/domain"
)

// StatsService builds the admin dashboard overview. Read-only and unscoped.
type StatsService struct {
	statsRepo repositories.StatsRepository
	now       func() time.Time
}

// NewStatsService creates a new stats service
func NewStatsService(statsRepo repositories.StatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo, now: time.Now}
}

// OverviewTotals holds global counts
type OverviewTotals struct {
	Clients          int64 `json:"clients"`
	Policies         int64 `json:"policies"`
	PoliciesActive   int64 `json:"policiesActive"`
	PoliciesExpired  int64 `json:"policiesExpired"`
	PoliciesCanceled int64 `json:"policiesCanceled"`
}

// OverviewByBranch holds per-branch group counts
type OverviewByBranch struct {
	Clients  []repositories.BranchCount `json:"clients"`
	Policies []repositories.BranchCount `json:"policies"`
}

// Overview is the admin dashboard snapshot
type Overview struct {
	Totals       OverviewTotals   `json:"totals"`
	ByBranch     OverviewByBranch `json:"byBranch"`
	ExpiringSoon []*models.Policy `json:"expiringSoon"`
}

// Overview returns global and per-branch counts plus the ACTIVE policies
// ending within the next 30 days
func (s *StatsService) Overview(ctx context.Context) (*Overview, error) {
	data := &Overview{}
	var err error

	if data.Totals.Clients, err = s.statsRepo.CountClients(ctx); err != nil {
		return nil, err
	}
	if data.Totals.Policies, err = s.statsRepo.CountPolicies(ctx, nil); err != nil {
		return nil, err
	}

	byStatus := []struct {
		status domain.PolicyStatus
		dst    *int64
	}{
		{domain.PolicyActive, &data.Totals.PoliciesActive},
		{domain.PolicyExpired, &data.Totals.PoliciesExpired},
		{domain.PolicyCanceled, &data.Totals.PoliciesCanceled},
	}
	for _, b := range byStatus {
		status := b.status
		if *b.dst, err = s.statsRepo.CountPolicies(ctx, &status); err != nil {
			return nil, err
		}
	}

	// Counts by branch (clients + policies)
	if data.ByBranch.Clients, err = s.statsRepo.CountClientsByBranch(ctx); err != nil {
		return nil, err
	}
	if data.ByBranch.Policies, err = s.statsRepo.CountPoliciesByBranch(ctx); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	data.ExpiringSoon, err = s.statsRepo.ListExpiring(ctx, now, now.Add(domain.ExpiringWindow), domain.ExpiringSoonLimit)
	if err != nil {
		return nil, err
	}

	return data, nil
}
