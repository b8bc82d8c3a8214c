package repositories

import (
	"context"

	"intia-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// branchRepository implements BranchRepository interface
type branchRepository struct {
	db *gorm.DB
}

// NewBranchRepository creates a new branch repository
func NewBranchRepository(db *gorm.DB) BranchRepository {
	return &branchRepository{db: db}
}

// Create creates a new branch
func (r *branchRepository) Create(ctx context.Context, branch *models.Branch) error {
	return conn(ctx, r.db).Create(branch).Error
}

// GetByID gets a branch by ID
func (r *branchRepository) GetByID(ctx context.Context, id uint) (*models.Branch, error) {
	var branch models.Branch
	err := conn(ctx, r.db).Where("id = ?", id).First(&branch).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

// List lists all branches ordered by id
func (r *branchRepository) List(ctx context.Context) ([]*models.Branch, error) {
	var branches []*models.Branch
	err := conn(ctx, r.db).Order("id ASC").Find(&branches).Error
	return branches, err
}

// ExistsByID checks if a branch exists
func (r *branchRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.Branch{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ExistsByCode checks if a branch code is taken
func (r *branchRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.Branch{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}
