package handlers

import (
	"errors"
	"log"
	"strconv"

	"intia-api/internal/core/domain"
	"intia-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// handleError writes the response matching the kind of err
func handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrDuplicateKey):
		return response.Conflict(c, response.CodeDuplicateKey, err.Error())
	case errors.Is(err, domain.ErrDuplicateConflict):
		return response.Conflict(c, response.CodeDuplicateConflict, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return response.Conflict(c, response.CodeConflict, err.Error())
	}

	log.Printf("❌ %s %s: %v", c.Method(), c.OriginalURL(), err)
	return response.InternalServerError(c, "Internal server error")
}

// paramID parses the :id path parameter
func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, domain.Invalid("invalid id")
	}
	return uint(id), nil
}

// queryID parses an optional numeric query parameter. 0 means no filter.
func queryID(c *fiber.Ctx, key string) (*uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, domain.Invalid("invalid " + key)
	}
	if id == 0 {
		return nil, nil
	}
	v := uint(id)
	return &v, nil
}
