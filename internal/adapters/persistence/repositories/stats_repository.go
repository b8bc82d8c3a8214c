package repositories

import (
	"context"
	"time"

	"intia-api/internal/adapters/persistence/models"
	"intia-api/internal/core/domain"

	"gorm.io/gorm"
)

// statsRepository implements StatsRepository interface
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// CountClients counts every client row, active or not
func (r *statsRepository) CountClients(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.Client{}).Count(&count).Error
	return count, err
}

// CountPolicies counts policies, optionally with one status
func (r *statsRepository) CountPolicies(ctx context.Context, status *domain.PolicyStatus) (int64, error) {
	var count int64
	q := conn(ctx, r.db).Model(&models.Policy{})
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}
	err := q.Count(&count).Error
	return count, err
}

// CountClientsByBranch groups client counts by branch
func (r *statsRepository) CountClientsByBranch(ctx context.Context) ([]BranchCount, error) {
	return r.countByBranch(ctx, &models.Client{})
}

// CountPoliciesByBranch groups policy counts by branch
func (r *statsRepository) CountPoliciesByBranch(ctx context.Context) ([]BranchCount, error) {
	return r.countByBranch(ctx, &models.Policy{})
}

func (r *statsRepository) countByBranch(ctx context.Context, model interface{}) ([]BranchCount, error) {
	rows := []BranchCount{}
	err := conn(ctx, r.db).Model(model).
		Select("branch_id, COUNT(*) AS count").
		Group("branch_id").
		Order("branch_id ASC").
		Scan(&rows).Error
	return rows, err
}

// ListExpiring lists ACTIVE policies ending within [from, to], soonest first
func (r *statsRepository) ListExpiring(ctx context.Context, from, to time.Time, limit int) ([]*models.Policy, error) {
	policies := []*models.Policy{}
	err := conn(ctx, r.db).
		Preload("Client").
		Preload("Branch").
		Where("status = ? AND end_date >= ? AND end_date <= ?", string(domain.PolicyActive), from, to).
		Order("end_date ASC").
		Limit(limit).
		Find(&policies).Error
	return policies, err
}
