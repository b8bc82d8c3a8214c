package repositories

import (
	"context"
	"time"

	"intia-api/internal/adapters/persistence/models"
	"intia-api/internal/core/domain"
)

// Transactor runs a unit of work in a single transaction
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// BranchRepository defines branch repository interface
type BranchRepository interface {
	Create(ctx context.Context, branch *models.Branch) error
	GetByID(ctx context.Context, id uint) (*models.Branch, error)
	List(ctx context.Context) ([]*models.Branch, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// ClientFilter narrows client listings. A nil BranchID means every branch.
type ClientFilter struct {
	BranchID   *uint
	ActiveOnly bool
	Search     string
}

// ClientRepository defines client repository interface
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	// GetByID loads a client with its branch and policies. A non-nil branchID
	// restricts the lookup to that branch.
	GetByID(ctx context.Context, id uint, branchID *uint) (*models.Client, error)
	GetByCNI(ctx context.Context, cni string) (*models.Client, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, filter ClientFilter, offset, limit int) ([]*models.Client, int64, error)
	ExistsActiveByPhoneAndLastName(ctx context.Context, phone, lastName string) (bool, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	SetStatus(ctx context.Context, id uint, status domain.ClientStatus) error
}

// PolicyFilter holds optional exact-match policy filters. Nil fields are not compared.
type PolicyFilter struct {
	BranchID *uint
	ClientID *uint
	Status   *domain.PolicyStatus
}

// PolicyRepository defines policy repository interface
type PolicyRepository interface {
	Create(ctx context.Context, policy *models.Policy) error
	// GetByID loads a policy with its client and branch
	GetByID(ctx context.Context, id uint) (*models.Policy, error)
	List(ctx context.Context, filter PolicyFilter) ([]*models.Policy, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	SetStatus(ctx context.Context, id uint, status domain.PolicyStatus) error
	CountActiveByClientID(ctx context.Context, clientID uint) (int64, error)
	ExpireEndedBefore(ctx context.Context, now time.Time) (int64, error)
}

// BranchCount is one row of a per-branch group count
type BranchCount struct {
	BranchID uint  `json:"branchId"`
	Count    int64 `json:"count"`
}

// StatsRepository defines read-only aggregate queries
type StatsRepository interface {
	CountClients(ctx context.Context) (int64, error)
	CountPolicies(ctx context.Context, status *domain.PolicyStatus) (int64, error)
	CountClientsByBranch(ctx context.Context) ([]BranchCount, error)
	CountPoliciesByBranch(ctx context.Context) ([]BranchCount, error)
	ListExpiring(ctx context.Context, from, to time.Time, limit int) ([]*models.Policy, error)
}
