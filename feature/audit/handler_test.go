package audit_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"economy-manager/feature/audit"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlers(t *testing.T) {
	app := fiber.New()
	audit.NewHandler(newService(seed(t), nil)).RegisterRoutes(app)

	call := func(method, path, body string) (int, string) {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, 2000)
		require.NoError(t, err)
		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(data)
	}

	status, body := call("GET", "/audit?sync=true", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"sync_actions":2`)
	assert.Contains(t, body, `"backfill_actions":0`)

	status, body = call("GET", "/audit/"+alice, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "ledger=120.00")

	status, _ = call("GET", "/audit/not-a-uuid", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = call("POST", "/audit/repair", `{"sync":true,"backfill":true}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"executed":0`)

	status, body = call("POST", "/audit/repair", `{"sync":true,"backfill":true,"confirm":true}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"executed":3`)

	status, body = call("GET", "/audit", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"mismatches":0`)

	status, _ = call("POST", "/audit/repair", `{`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
