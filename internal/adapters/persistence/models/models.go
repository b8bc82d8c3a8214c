package models

import (
	"encoding/json"
	"time"

	"intia-api/internal/core/domain"

	"gorm.io/gorm"
)

// Branch represents branches table
type Branch struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name      string    `gorm:"size:150;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Branch) TableName() string {
	return "branches"
}

// Client represents clients table.
// CNI is nullable so any number of clients may have none, while the unique
// index rejects two clients sharing one.
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:100;not null" json:"firstName"`
	LastName  string    `gorm:"size:100;not null;index:idx_clients_phone_last_name,priority:2" json:"lastName"`
	Phone     string    `gorm:"size:30;not null;index:idx_clients_phone_last_name,priority:1" json:"phone"`
	Email     *string   `gorm:"size:150" json:"email"`
	CNI       *string   `gorm:"column:cni;size:50;uniqueIndex" json:"cni"`
	Address   *string   `gorm:"size:255" json:"address"`
	BranchID  uint      `gorm:"index;not null" json:"branchId"`
	Status    string    `gorm:"size:10;not null;default:'ACTIVE';index" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Branch   *Branch  `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	Policies []Policy `gorm:"foreignKey:ClientID" json:"policies,omitempty"`
}

func (Client) TableName() string {
	return "clients"
}

// IsActive reports whether the client has not been deactivated
func (c *Client) IsActive() bool {
	return c.Status == string(domain.ClientActive)
}

// MarshalJSON adds the isActive flag the dashboard filters on
func (c Client) MarshalJSON() ([]byte, error) {
	type client Client
	return json.Marshal(struct {
		client
		IsActive bool `json:"isActive"`
	}{client(c), c.IsActive()})
}

// Policy represents policies table
type Policy struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PolicyNo  string    `gorm:"size:50;not null;index" json:"policyNo"`
	Type      string    `gorm:"size:10;not null" json:"type"`
	Status    string    `gorm:"size:10;not null;index" json:"status"`
	StartDate time.Time `gorm:"not null" json:"startDate"`
	EndDate   time.Time `gorm:"not null;index" json:"endDate"`
	Premium   int64     `gorm:"not null" json:"premium"`
	ClientID  uint      `gorm:"index;not null" json:"clientId"`
	BranchID  uint      `gorm:"index;not null" json:"branchId"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Branch *Branch `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
}

func (Policy) TableName() string {
	return "policies"
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Branch{},
		&Client{},
		&Policy{},
	)
}
