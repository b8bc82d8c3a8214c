package handlers

import (
	"intia-api/internal/adapters/http/middleware"
	"intia-api/internal/core/services"
	"intia-api/internal/pkg/pagination"
	"intia-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ClientHandler handles client directory endpoints.
// Every route is scoped by the actor resolved from x-branch-id / x-role.
type ClientHandler struct {
	clientService *services.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// Create creates a client
// @Summary Create client
// @Description Create a client. Non DG actors always create in their own branch.
// @Tags Clients
// @Accept json
// @Produce json
// @Param x-role header string false "DG_ADMIN, AGENCY_MANAGER or AGENT"
// @Param x-branch-id header int false "Actor branch"
// @Param body body services.CreateClientInput true "Client data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var req services.CreateClientInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	client, err := h.clientService.Create(c.UserContext(), &req, middleware.ActorFrom(c))
	if err != nil {
		return handleError(c, err)
	}
	return response.Created(c, "Client created successfully", client)
}

// List lists active clients
// @Summary List clients
// @Description Search active clients visible to the actor, newest first
// @Tags Clients
// @Produce json
// @Param x-role header string false "DG_ADMIN, AGENCY_MANAGER or AGENT"
// @Param x-branch-id header int false "Actor branch"
// @Param q query string false "Search in names, phone, email and cni"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size (max 50)" default(10)
// @Success 200 {object} response.Response{data=services.ClientPage}
// @Failure 400 {object} response.Response
// @Router /clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	page, err := h.clientService.FindAll(c.UserContext(), &services.ListClientsInput{
		Q:        c.Query("q"),
		Page:     params.Page,
		PageSize: params.PageSize,
	}, middleware.ActorFrom(c))
	if err != nil {
		return handleError(c, err)
	}
	return response.Success(c, "Clients retrieved successfully", page)
}

// Get gets a client by ID
// @Summary Get client
// @Description Get a client with its branch and policies. Inactive clients are returned too.
// @Tags Clients
// @Produce json
// @Param x-role header string false "DG_ADMIN, AGENCY_MANAGER or AGENT"
// @Param x-branch-id header int false "Actor branch"
// @Param id path int true "Client ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /clients/{id} [get]
func (h *ClientHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}

	client, err := h.clientService.FindOne(c.UserContext(), id, middleware.ActorFrom(c))
	if err != nil {
		return handleError(c, err)
	}
	return response.Success(c, "Client retrieved successfully", client)
}

// Update patches a client
// @Summary Update client
// @Description Patch a client. Only DG actors can move a client to another branch.
// @Tags Clients
// @Accept json
// @Produce json
// @Param x-role header string false "DG_ADMIN, AGENCY_MANAGER or AGENT"
// @Param x-branch-id header int false "Actor branch"
// @Param id path int true "Client ID"
// @Param body body services.UpdateClientInput true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /clients/{id} [patch]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}

	var req services.UpdateClientInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	client, err := h.clientService.Update(c.UserContext(), id, &req, middleware.ActorFrom(c))
	if err != nil {
		return handleError(c, err)
	}
	return response.Success(c, "Client updated successfully", client)
}

// Remove deactivates a client
// @Summary Deactivate client
// @Description Soft delete a client. Refused while the client holds ACTIVE policies.
// @Tags Clients
// @Produce json
// @Param x-role header string false "DG_ADMIN, AGENCY_MANAGER or AGENT"
// @Param x-branch-id header int false "Actor branch"
// @Param id path int true "Client ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /clients/{id} [delete]
func (h *ClientHandler) Remove(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return handleError(c, err)
	}

	client, err := h.clientService.Remove(c.UserContext(), id, middleware.ActorFrom(c))
	if err != nil {
		return handleError(c, err)
	}
	return response.Success(c, "Client deactivated successfully", client)
}
