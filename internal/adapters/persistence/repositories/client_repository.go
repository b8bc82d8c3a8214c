package repositories

import (
	"context"
	"strings"

	"intia-api/internal/adapters/persistence/models"
	"intia-api/internal/core/domain"

	"gorm.io/gorm"
)

// clientRepository implements ClientRepository interface
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

// Create creates a new client
func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	return conn(ctx, r.db).Omit("Branch", "Policies").Create(client).Error
}

// GetByID gets a client by ID, optionally restricted to one branch
func (r *clientRepository) GetByID(ctx context.Context, id uint, branchID *uint) (*models.Client, error) {
	var client models.Client
	q := conn(ctx, r.db).
		Preload("Branch").
		Preload("Policies", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Where("id = ?", id)
	if branchID != nil {
		q = q.Where("branch_id = ?", *branchID)
	}
	if err := q.First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// GetByCNI gets a client by national identity card number
func (r *clientRepository) GetByCNI(ctx context.Context, cni string) (*models.Client, error) {
	var client models.Client
	err := conn(ctx, r.db).Where("cni = ?", cni).First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// ExistsByID checks if a client exists, active or not
func (r *clientRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.Client{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// List lists clients matching filter with pagination, newest first
func (r *clientRepository) List(ctx context.Context, filter ClientFilter, offset, limit int) ([]*models.Client, int64, error) {
	var clients []*models.Client
	var total int64

	q := conn(ctx, r.db).Model(&models.Client{})
	if filter.BranchID != nil {
		q = q.Where("branch_id = ?", *filter.BranchID)
	}
	if filter.ActiveOnly {
		q = q.Where("status = ?", string(domain.ClientActive))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := containsPattern(s)
		lower := containsPattern(strings.ToLower(s))
		q = q.Where(
			"(LOWER(first_name) LIKE ? ESCAPE '!' OR LOWER(last_name) LIKE ? ESCAPE '!' OR "+
				"LOWER(email) LIKE ? ESCAPE '!' OR phone LIKE ? ESCAPE '!' OR cni LIKE ? ESCAPE '!')",
			lower, lower, lower, like, like,
		)
	}

	// Count total
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Session(&gorm.Session{}).
		Preload("Branch").
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&clients).Error
	if err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

// ExistsActiveByPhoneAndLastName checks for an active client with the same phone and last name
func (r *clientRepository) ExistsActiveByPhoneAndLastName(ctx context.Context, phone, lastName string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.Client{}).
		Where("phone = ? AND last_name = ? AND status = ?", phone, lastName, string(domain.ClientActive)).
		Count(&count).Error
	return count > 0, err
}

// Update updates the given columns of a client
func (r *clientRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return conn(ctx, r.db).Model(&models.Client{}).Where("id = ?", id).Updates(fields).Error
}

// SetStatus moves a client to another lifecycle state
func (r *clientRepository) SetStatus(ctx context.Context, id uint, status domain.ClientStatus) error {
	return conn(ctx, r.db).Model(&models.Client{}).Where("id = ?", id).Update("status", string(status)).Error
}

// likeEscaper escapes LIKE metacharacters with '!'
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern builds a LIKE pattern matching s literally as a substring
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
