package economy_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"economy-manager/feature/economy"
	"economy-manager/feature/economy/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) *fiber.App {
	svc, _ := newService(t, economy.Config{StartingBalance: 100, CoinSymbol: "$"})
	app := fiber.New()
	economy.NewHandler(svc).RegisterRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestHandlers(t *testing.T) {
	app := newApp(t)

	status, body := doJSON(t, app, "GET", "/economy/accounts/"+alice, "")
	assert.Equal(t, fiber.StatusOK, status)
	var acc models.Account
	require.NoError(t, json.Unmarshal(body, &acc))
	assert.Equal(t, 100.0, acc.Coins)

	status, _ = doJSON(t, app, "POST", "/economy/accounts/"+alice+"/add", `{"currency":"cash","amount":5}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, body = doJSON(t, app, "POST", "/economy/accounts/"+alice+"/subtract", `{"currency":"cash","amount":50}`)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Contains(t, string(body), "insufficient funds")

	status, _ = doJSON(t, app, "PUT", "/economy/accounts/"+alice+"/balance", `{"currency":"coins","amount":10}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = doJSON(t, app, "POST", "/economy/transfers", `{"from":"`+alice+`","to":"`+bob+`","currency":"coins","amount":4}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, body = doJSON(t, app, "GET", "/economy/accounts/"+alice+"/summary", "")
	assert.Equal(t, fiber.StatusOK, status)
	var summary economy.Summary
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.Equal(t, 6.0, summary.Coins)
	assert.Equal(t, 5.0, summary.Cash)

	status, body = doJSON(t, app, "GET", "/economy/top?currency=coins&limit=1", "")
	assert.Equal(t, fiber.StatusOK, status)
	var top []models.Account
	require.NoError(t, json.Unmarshal(body, &top))
	require.Len(t, top, 1)
	assert.Equal(t, bob, top[0].UUID)

	status, _ = doJSON(t, app, "GET", "/economy/accounts/"+alice+"/history?limit=2", "")
	assert.Equal(t, fiber.StatusOK, status)
}

func TestHandlers_BadInput(t *testing.T) {
	app := newApp(t)

	status, _ := doJSON(t, app, "GET", "/economy/accounts/steve", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, "POST", "/economy/accounts/"+alice+"/add", `{not json`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, "POST", "/economy/accounts/"+alice+"/add", `{"currency":"gems","amount":1}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
