package handlers

import (
	"strings"

	"intia-api/internal/core/domain"
	"intia-api/internal/core/services"
	"intia-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PolicyHandler handles policy ledger endpoints
type PolicyHandler struct {
	policyService *services.PolicyService
}

// NewPolicyHandler creates a new policy handler
func NewPolicyHandler(policyService *services.PolicyService) *PolicyHandler {
	return &PolicyHandler{policyService: policyService}
}

// Create creates a policy
// @Summary Create policy
// @Description Create a policy for an existing client and branch
// @Tags Policies
// @Accept json
// @Produce json
// @Param body body services.CreatePolicyInput true "Policy data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /policies [post]
func (h *PolicyHandler) Create(c *fiber.Ctx) error {
	var req services.CreatePolicyInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	policy, err := h.policyService.Create(c.UserContext(), &req)
	if err != nil {
		return handleError(c, err)
	}
	return response.Created(c, "Policy created successfully", policy)
}

// List lists policies
// @Summary List policies
// @Description List policies, newest first, filtered by branch, status and client
// @Tags Policies
// @Produce json
// @Param branchId query int false "Branch ID"
// @Param status query string false "ACTIVE, EXPIRED or CANCELED"
// @Param clientId query int false "Client ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /policies [get]
func (h *PolicyHandler) List(c *fiber.Ctx) error {
	filter, err := policyFilter(c)
	if err != nil {
		return handleError(c, err)
	}

	policies, err := h.policyService.FindAll(c.UserContext(), filter)
	if err != nil {
		return handleError(c, err)
	}
	return response.Success(c, "Policies retrieved successfully", policies)
}

// Get gets a policy by ID
// @Summary Get policy
// @Description Get a policy with its client and branch
// @Tags Policies
// @Produce json
// @Param id path int true "Policy ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /policies/{id} [get]
func (h *PolicyHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}

	policy, err := h.policyService.FindOne(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	return response.Success(c, "Policy retrieved successfully", policy)
}

// Update patches a policy
// @Summary Update policy
// @Description Patch a policy. Dates are only compared when both are sent.
// @Tags Policies
// @Accept json
// @Produce json
// @Param id path int true "Policy ID"
// @Param body body services.UpdatePolicyInput true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /policies/{id} [patch]
func (h *PolicyHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}

	var req services.UpdatePolicyInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	policy, err := h.policyService.Update(c.UserContext(), id, &req)
	if err != nil {
		return handleError(c, err)
	}
	return response.Success(c, "Policy updated successfully", policy)
}

// Remove cancels a policy
// @Summary Cancel policy
// @Description Set the policy status to CANCELED. The row is kept.
// @Tags Policies
// @Produce json
// @Param id path int true "Policy ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /policies/{id} [delete]
func (h *PolicyHandler) Remove(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}

	policy, err := h.policyService.Remove(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	return response.Success(c, "Policy canceled successfully", policy)
}

func policyFilter(c *fiber.Ctx) (services.PolicyFilter, error) {
	var filter services.PolicyFilter
	var err error

	if filter.BranchID, err = queryID(c, "branchId"); err != nil {
		return filter, err
	}
	if filter.ClientID, err = queryID(c, "clientId"); err != nil {
		return filter, err
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status := domain.PolicyStatus(strings.ToUpper(raw))
		if !status.Valid() {
			return filter, domain.Invalid("invalid status")
		}
		filter.Status = &status
	}
	return filter, nil
}
