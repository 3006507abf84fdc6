package merchant_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"economy-manager/feature/merchant"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlers(t *testing.T) {
	svc, _ := newServices(t)
	app := fiber.New()
	merchant.NewHandler(svc).RegisterRoutes(app)

	call := func(method, path, body string) (int, string) {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, 2000)
		require.NoError(t, err)
		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(data)
	}

	status, body := call("POST", "/merchants", `{"name":"Smith","position":{"world":"overworld","x":1,"y":2,"z":3}}`)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Contains(t, body, `"shop_number":1`)

	status, _ = call("PUT", "/merchants/1/position", `{"world":"nether"}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, body = call("PUT", "/merchants/1/shop", `{"shop_number":0}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "above zero")

	status, body = call("GET", "/merchants?world=nether", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "Smith")

	status, _ = call("DELETE", "/merchants/1", "")
	assert.Equal(t, fiber.StatusNoContent, status)

	status, _ = call("GET", "/merchants/1", "")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = call("GET", "/merchants/abc", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}
