package repositories

import (
	"context"
	"time"

	"intia-api/internal/adapters/persistence/models"
	"intia-api/internal/core/domain"

	"gorm.io/gorm"
)

// policyRepository implements PolicyRepository interface
type policyRepository struct {
	db *gorm.DB
}

// NewPolicyRepository creates a new policy repository
func NewPolicyRepository(db *gorm.DB) PolicyRepository {
	return &policyRepository{db: db}
}

// Create creates a new policy
func (r *policyRepository) Create(ctx context.Context, policy *models.Policy) error {
	return conn(ctx, r.db).Omit("Client", "Branch").Create(policy).Error
}

// GetByID gets a policy by ID with client and branch
func (r *policyRepository) GetByID(ctx context.Context, id uint) (*models.Policy, error) {
	var policy models.Policy
	err := conn(ctx, r.db).
		Preload("Client").
		Preload("Branch").
		Where("id = ?", id).
		First(&policy).Error
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

// List lists policies matching filter, newest first
func (r *policyRepository) List(ctx context.Context, filter PolicyFilter) ([]*models.Policy, error) {
	var policies []*models.Policy

	q := conn(ctx, r.db).Preload("Client").Preload("Branch")
	if filter.BranchID != nil {
		q = q.Where("branch_id = ?", *filter.BranchID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", string(*filter.Status))
	}
	if filter.ClientID != nil {
		q = q.Where("client_id = ?", *filter.ClientID)
	}

	err := q.Order("created_at DESC").Order("id DESC").Find(&policies).Error
	return policies, err
}

// Update updates the given columns of a policy
func (r *policyRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return conn(ctx, r.db).Model(&models.Policy{}).Where("id = ?", id).Updates(fields).Error
}

// SetStatus moves a policy to another lifecycle state
func (r *policyRepository) SetStatus(ctx context.Context, id uint, status domain.PolicyStatus) error {
	return conn(ctx, r.db).Model(&models.Policy{}).Where("id = ?", id).Update("status", string(status)).Error
}

// CountActiveByClientID counts the ACTIVE policies held by a client
func (r *policyRepository) CountActiveByClientID(ctx context.Context, clientID uint) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.Policy{}).
		Where("client_id = ? AND status = ?", clientID, string(domain.PolicyActive)).
		Count(&count).Error
	return count, err
}

// ExpireEndedBefore marks every ACTIVE policy ending before now as EXPIRED
func (r *policyRepository) ExpireEndedBefore(ctx context.Context, now time.Time) (int64, error) {
	res := conn(ctx, r.db).Model(&models.Policy{}).
		Where("status = ? AND end_date < ?", string(domain.PolicyActive), now).
		Update("status", string(domain.PolicyExpired))
	return res.RowsAffected, res.Error
}
