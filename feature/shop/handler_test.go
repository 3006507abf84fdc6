package shop_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"economy-manager/feature/shop"
	"economy-manager/feature/shop/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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
	f := newFixture(t, shop.Config{})
	app := fiber.New()
	shop.NewHandler(f.svc).RegisterRoutes(app)

	status, body := doJSON(t, app, "POST", "/shops", `{"name":"Smith"}`)
	require.Equal(t, fiber.StatusCreated, status)
	var created models.Shop
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, 1, created.Number)

	status, _ = doJSON(t, app, "POST", "/shops/1/tabs", `{"name":"Weapons"}`)
	assert.Equal(t, fiber.StatusCreated, status)

	status, body = doJSON(t, app, "POST", "/shops/1/items", `{"tab":"Weapons","item_id":"sword","quantity":1,"price_buy":30,"price_sell":10}`)
	require.Equal(t, fiber.StatusCreated, status)
	var item models.Item
	require.NoError(t, json.Unmarshal(body, &item))
	assert.Equal(t, models.Unlimited, item.Stock)

	buyPath := fmt.Sprintf("/shops/1/items/%d/buy", item.ID)
	status, body = doJSON(t, app, "POST", buyPath, `{"player":"`+alice+`"}`)
	require.Equal(t, fiber.StatusOK, status)
	var receipt shop.Receipt
	require.NoError(t, json.Unmarshal(body, &receipt))
	assert.Equal(t, 70.0, receipt.Balance)

	status, body = doJSON(t, app, "POST", buyPath, `{"player":"`+alice+`","multiplier":5}`)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Contains(t, string(body), "insufficient funds")

	status, body = doJSON(t, app, "POST", fmt.Sprintf("/shops/1/items/%d/sell", item.ID), `{"player":"`+alice+`"}`)
	assert.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &receipt))
	assert.Equal(t, 80.0, receipt.Balance)

	status, _ = doJSON(t, app, "DELETE", "/shops/1/tabs/Weapons", "")
	assert.Equal(t, fiber.StatusConflict, status)

	status, _ = doJSON(t, app, "PATCH", fmt.Sprintf("/shops/1/items/%d", item.ID), `{"price_buy":25}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/shops/1/items/%d", item.ID), "")
	assert.Equal(t, fiber.StatusNoContent, status)

	status, _ = doJSON(t, app, "DELETE", "/shops/1", "")
	assert.Equal(t, fiber.StatusNoContent, status)

	status, _ = doJSON(t, app, "DELETE", "/shops/0", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, "POST", "/shops/0/items/abc/buy", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = doJSON(t, app, "GET", "/commands", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))
}

func TestHandlers_Catalog(t *testing.T) {
	f := newFixture(t, shop.Config{})
	app := fiber.New()
	shop.NewHandler(f.svc).RegisterRoutes(app)

	req := httptest.NewRequest("PUT", "/catalog", strings.NewReader(catalogYAML))
	req.Header.Set("Content-Type", "application/x-yaml")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	status, body := doJSON(t, app, "GET", "/catalog", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), "item_id: sword")

	req = httptest.NewRequest("PUT", "/catalog", strings.NewReader("shops: [\n"))
	resp, err = app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
