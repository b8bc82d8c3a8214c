package middleware

import (
	"strconv"
	"time"

	"intia-api/internal/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// Metrics records count and latency of every request by route pattern
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		// copy: label values outlive the request buffers
		m.ObserveRequest(utils.CopyString(c.Method()), c.Route().Path, strconv.Itoa(status), start)
		return err
	}
}
