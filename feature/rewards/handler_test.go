package rewards_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"economy-manager/feature/rewards"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlers(t *testing.T) {
	app := fiber.New()
	rewards.NewHandler(newService(t)).RegisterRoutes(app)

	call := func(method, path, body string) (int, string) {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, 2000)
		require.NoError(t, err)
		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(data)
	}

	status, _ := call("POST", "/rewards/rules", `{"kind":"block","target":"*","amount":0.25}`)
	require.Equal(t, fiber.StatusCreated, status)

	status, body := call("POST", "/rewards/trigger", `{"player":"`+player+`","kind":"block","target":"stone","count":8}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"amount":2`)

	status, _ = call("PATCH", "/rewards/rules/1", `{"enabled":false}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, body = call("GET", "/rewards/rules?kind=block", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"enabled":false`)

	status, _ = call("GET", "/rewards/rules?kind=fish", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = call("DELETE", "/rewards/rules/1", "")
	assert.Equal(t, fiber.StatusNoContent, status)
}
