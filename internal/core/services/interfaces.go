package services

import (
	"intia-api/internal/adapters/persistence/models"
	"intia-api/internal/adapters/persistence/repositories"
)

// Input DTOs. Handlers decode request bodies straight into these.

// CreateBranchInput for creating a branch
type CreateBranchInput struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CreateClientInput for creating a client
type CreateClientInput struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email"`
	CNI       *string `json:"cni"`
	Address   *string `json:"address"`
	BranchID  uint    `json:"branchId"`
}

// UpdateClientInput for patching a client. Nil fields are left untouched.
type UpdateClientInput struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	CNI       *string `json:"cni"`
	Address   *string `json:"address"`
	BranchID  *uint   `json:"branchId"`
}

// ListClientsInput for searching clients
type ListClientsInput struct {
	Q        string
	Page     int
	PageSize int
}

// ClientPage is one page of a client listing
type ClientPage struct {
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	Total      int64            `json:"total"`
	TotalPages int              `json:"totalPages"`
	Items      []*models.Client `json:"items"`
}

// CreatePolicyInput for creating a policy. Dates are YYYY-MM-DD or RFC 3339.
type CreatePolicyInput struct {
	PolicyNo  string `json:"policyNo"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Premium   int64  `json:"premium"`
	ClientID  uint   `json:"clientId"`
	BranchID  uint   `json:"branchId"`
}

// UpdatePolicyInput for patching a policy. Nil fields are left untouched.
type UpdatePolicyInput struct {
	PolicyNo  *string `json:"policyNo"`
	Type      *string `json:"type"`
	Status    *string `json:"status"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Premium   *int64  `json:"premium"`
	ClientID  *uint   `json:"clientId"`
	BranchID  *uint   `json:"branchId"`
}

// PolicyFilter is the optional exact-match filter of a policy listing
type PolicyFilter = repositories.PolicyFilter
