package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"intia-api/internal/adapters/persistence/models"
	"intia-api/internal/adapters/persistence/repositories"
	"intia-api/internal/core/domain"
	"intia-api/internal/pkg/validation"

	"gorm.io/gorm"
)

// BranchService handles branch registry business logic
type BranchService struct {
	branchRepo repositories.BranchRepository
}

// NewBranchService creates a new branch service
func NewBranchService(branchRepo repositories.BranchRepository) *BranchService {
	return &BranchService{branchRepo: branchRepo}
}

// List lists all branches by ascending id
func (s *BranchService) List(ctx context.Context) ([]*models.Branch, error) {
	return s.branchRepo.List(ctx)
}

// Create creates a branch with a unique code
func (s *BranchService) Create(ctx context.Context, input *CreateBranchInput) (*models.Branch, error) {
	code := strings.TrimSpace(input.Code)
	name := strings.TrimSpace(input.Name)

	v := validation.Violations{}
	validation.MinLength("code", code, 2, v)
	validation.MinLength("name", name, 3, v)
	if !v.Empty() {
		return nil, domain.Invalid(v.Error())
	}

	exists, err := s.branchRepo.ExistsByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrBranchCodeExists
	}

	branch := &models.Branch{Code: code, Name: name}
	if err := s.branchRepo.Create(ctx, branch); err != nil {
		// the unique index catches a code inserted since the check
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrBranchCodeExists
		}
		return nil, err
	}

	log.Printf("🏢 Branch created: %s (id=%d)", branch.Code, branch.ID)
	return branch, nil
}

// getBranch translates a missing row into ErrBranchNotFound
func getBranch(ctx context.Context, repo repositories.BranchRepository, id uint) (*models.Branch, error) {
	branch, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBranchNotFound
		}
		return nil, err
	}
	return branch, nil
}

func requireBranch(ctx context.Context, repo repositories.BranchRepository, id uint) error {
	exists, err := repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrBranchNotFound
	}
	return nil
}
