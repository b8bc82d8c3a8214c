package services

import (
	"context"
	"testing"

	"intia-api/internal/adapters/persistence/models"
	"intia-api/internal/adapters/persistence/repositories"
	"intia-api/internal/core/domain"
	"intia-api/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	ctx      context.Context
	db       *gorm.DB
	branches *BranchService
	clients  *ClientService
	policies *PolicyService
	stats    *StatsService
	cron     *CronService

	douala  *models.Branch
	yaounde *models.Branch
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)

	branchRepo := repositories.NewBranchRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	policyRepo := repositories.NewPolicyRepository(db)
	statsRepo := repositories.NewStatsRepository(db)
	tx := repositories.NewTransactor(db)

	return &fixture{
		ctx:      context.Background(),
		db:       db,
		branches: NewBranchService(branchRepo),
		clients:  NewClientService(tx, clientRepo, branchRepo, policyRepo, nil),
		policies: NewPolicyService(policyRepo, clientRepo, branchRepo, nil),
		stats:    NewStatsService(statsRepo),
		cron:     NewCronService(policyRepo, "", nil),
		douala:   testutil.SeedBranch(t, db, "DOUALA", "INTIA - Douala"),
		yaounde:  testutil.SeedBranch(t, db, "YAOUNDE", "INTIA - Yaounde"),
	}
}

func dgAdmin() domain.Actor {
	return domain.Actor{Role: domain.RoleDGAdmin}
}

func agentOf(branch *models.Branch) domain.Actor {
	id := branch.ID
	return domain.Actor{Role: domain.RoleAgent, BranchID: &id}
}

func managerOf(branch *models.Branch) domain.Actor {
	id := branch.ID
	return domain.Actor{Role: domain.RoleAgencyManager, BranchID: &id}
}

func strPtr(s string) *string { return &s }

func (f *fixture) mustClient(t *testing.T, branch *models.Branch, first, last, phone string) *models.Client {
	t.Helper()
	c, err := f.clients.Create(f.ctx, &CreateClientInput{
		FirstName: first,
		LastName:  last,
		Phone:     phone,
		BranchID:  branch.ID,
	}, dgAdmin())
	require.NoError(t, err)
	return c
}

func (f *fixture) mustPolicy(t *testing.T, client *models.Client, policyNo, start, end string, status domain.PolicyStatus) *models.Policy {
	t.Helper()
	p, err := f.policies.Create(f.ctx, &CreatePolicyInput{
		PolicyNo:  policyNo,
		Type:      string(domain.PolicyTypeAuto),
		Status:    string(status),
		StartDate: start,
		EndDate:   end,
		Premium:   1000,
		ClientID:  client.ID,
		BranchID:  client.BranchID,
	})
	require.NoError(t, err)
	return p
}
