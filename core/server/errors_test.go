package server_test

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"economy-manager/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	notFound := fiber.NewError(fiber.StatusNotFound, "shop not found")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Sentinel", notFound, fiber.StatusNotFound},
		{"Wrapped", fmt.Errorf("lookup: %w", notFound), fiber.StatusNotFound},
		{"Plain", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, server.StatusOf(tt.err))
		})
	}
}

func TestRespond(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return server.Respond(c, fmt.Errorf("buy: %w", fiber.NewError(fiber.StatusConflict, "insufficient funds")))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}
