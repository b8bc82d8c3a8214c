package handlers

import (
	"intia-api/internal/core/services"
	"intia-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// BranchHandler handles branch registry endpoints
type BranchHandler struct {
	branchService *services.BranchService
}

// NewBranchHandler creates a new branch handler
func NewBranchHandler(branchService *services.BranchService) *BranchHandler {
	return &BranchHandler{branchService: branchService}
}

// List lists all branches
// @Summary List branches
// @Description Get all branches ordered by id
// @Tags Branches
// @Produce json
// @Success 200 {object} response.Response
// @Router /branches [get]
func (h *BranchHandler) List(c *fiber.Ctx) error {
	branches, err := h.branchService.List(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return response.Success(c, "Branches retrieved successfully", branches)
}

// Create creates a branch
// @Summary Create branch
// @Description Create a new branch with a unique code
// @Tags Branches
// @Accept json
// @Produce json
// @Param body body services.CreateBranchInput true "Branch data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /branches [post]
func (h *BranchHandler) Create(c *fiber.Ctx) error {
	var req services.CreateBranchInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	branch, err := h.branchService.Create(c.UserContext(), &req)
	if err != nil {
		return handleError(c, err)
	}
	return response.Created(c, "Branch created successfully", branch)
}
