package playershop

import (
	"economy-manager/core/logger"
	"economy-manager/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for player shops.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateRequest opens a shop.
type CreateRequest struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

// UpdateRequest renames, opens or closes a shop.
type UpdateRequest struct {
	Name *string `json:"name,omitempty"`
	Open *bool   `json:"open,omitempty"`
}

// TabRequest names a tab.
type TabRequest struct {
	Name string `json:"name"`
}

// RestockRequest moves more items into a listing.
type RestockRequest struct {
	Slot   int `json:"slot"`
	Amount int `json:"amount"`
}

// RegisterRoutes registers the player shop routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/playershops")
	group.Get("/", h.HandleListOpen)
	group.Post("/", h.HandleCreate)
	group.Post("/listings/:id/buy", h.HandleBuy)
	group.Post("/listings/:id/sell", h.HandleSellTo)

	group.Get("/:owner", h.HandleGet)
	group.Patch("/:owner", h.HandleUpdate)
	group.Delete("/:owner", h.HandleDelete)

	group.Get("/:owner/tabs", h.HandleListTabs)
	group.Post("/:owner/tabs", h.HandleAddTab)
	group.Patch("/:owner/tabs/:tab", h.HandleRenameTab)
	group.Delete("/:owner/tabs/:tab", h.HandleRemoveTab)

	group.Get("/:owner/listings", h.HandleListings)
	group.Post("/:owner/listings", h.HandleList)
	group.Patch("/:owner/listings/:id", h.HandleUpdateListing)
	group.Post("/:owner/listings/:id/restock", h.HandleRestock)
	group.Delete("/:owner/listings/:id", h.HandleUnlist)
}

// HandleListOpen lists open shops.
// @Summary List Open Player Shops
// @Tags playershop
// @Produce json
// @Success 200 {array} models.Shop
// @Router /playershops [get]
func (h *Handler) HandleListOpen(c *fiber.Ctx) error {
	shops, err := h.service.ListOpen(c.UserContext())
	if err != nil {
		return h.fail(c, "Player shop list failed", err)
	}
	return c.JSON(shops)
}

// HandleCreate opens a shop.
// @Summary Create Player Shop
// @Tags playershop
// @Accept json
// @Produce json
// @Param body body CreateRequest true "Owner and name"
// @Success 201 {object} models.Shop
// @Router /playershops [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	ps, err := h.service.Create(c.UserContext(), req.Owner, req.Name)
	if err != nil {
		return h.fail(c, "Player shop creation failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(ps)
}

// HandleGet returns a player's shop.
// @Summary Get Player Shop
// @Tags playershop
// @Produce json
// @Param owner path string true "Owner UUID"
// @Success 200 {object} models.Shop
// @Router /playershops/{owner} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	ps, err := h.service.Get(c.UserContext(), c.Params("owner"))
	if err != nil {
		return h.fail(c, "Player shop lookup failed", err)
	}
	return c.JSON(ps)
}

// HandleUpdate renames, opens or closes a shop.
// @Summary Update Player Shop
// @Tags playershop
// @Accept json
// @Produce json
// @Param owner path string true "Owner UUID"
// @Param body body UpdateRequest true "Fields to change"
// @Success 200 {object} models.Shop
// @Router /playershops/{owner} [patch]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	ctx, owner := c.UserContext(), c.Params("owner")
	ps, err := h.service.Get(ctx, owner)
	if err == nil && req.Name != nil {
		ps, err = h.service.Rename(ctx, owner, *req.Name)
	}
	if err == nil && req.Open != nil {
		ps, err = h.service.SetOpen(ctx, owner, *req.Open)
	}
	if err != nil {
		return h.fail(c, "Player shop update failed", err)
	}
	return c.JSON(ps)
}

// HandleDelete removes an empty shop.
// @Summary Delete Player Shop
// @Tags playershop
// @Param owner path string true "Owner UUID"
// @Success 204
// @Failure 409 {object} map[string]string
// @Router /playershops/{owner} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("owner")); err != nil {
		return h.fail(c, "Player shop deletion failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListTabs lists a shop's tabs.
// @Summary List Player Shop Tabs
// @Tags playershop
// @Produce json
// @Param owner path string true "Owner UUID"
// @Success 200 {array} shopmodels.Tab
// @Router /playershops/{owner}/tabs [get]
func (h *Handler) HandleListTabs(c *fiber.Ctx) error {
	tabs, err := h.service.ListTabs(c.UserContext(), c.Params("owner"))
	if err != nil {
		return h.fail(c, "Tab list failed", err)
	}
	return c.JSON(tabs)
}

// HandleAddTab adds a tab.
// @Summary Add Player Shop Tab
// @Tags playershop
// @Accept json
// @Produce json
// @Param owner path string true "Owner UUID"
// @Param body body TabRequest true "Tab"
// @Success 201 {object} shopmodels.Tab
// @Router /playershops/{owner}/tabs [post]
func (h *Handler) HandleAddTab(c *fiber.Ctx) error {
	var req TabRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	tab, err := h.service.AddTab(c.UserContext(), c.Params("owner"), req.Name)
	if err != nil {
		return h.fail(c, "Tab creation failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(tab)
}

// HandleRenameTab renames a tab.
// @Summary Rename Player Shop Tab
// @Tags playershop
// @Accept json
// @Produce json
// @Param owner path string true "Owner UUID"
// @Param tab path string true "Tab name"
// @Param body body TabRequest true "New name"
// @Success 200 {object} shopmodels.Tab
// @Router /playershops/{owner}/tabs/{tab} [patch]
func (h *Handler) HandleRenameTab(c *fiber.Ctx) error {
	var req TabRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	tab, err := h.service.RenameTab(c.UserContext(), c.Params("owner"), c.Params("tab"), req.Name)
	if err != nil {
		return h.fail(c, "Tab rename failed", err)
	}
	return c.JSON(tab)
}

// HandleRemoveTab removes an empty tab.
// @Summary Remove Player Shop Tab
// @Tags playershop
// @Param owner path string true "Owner UUID"
// @Param tab path string true "Tab name"
// @Success 204
// @Router /playershops/{owner}/tabs/{tab} [delete]
func (h *Handler) HandleRemoveTab(c *fiber.Ctx) error {
	if err := h.service.RemoveTab(c.UserContext(), c.Params("owner"), c.Params("tab")); err != nil {
		return h.fail(c, "Tab removal failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListings lists a shop's listings.
// @Summary List Listings
// @Tags playershop
// @Produce json
// @Param owner path string true "Owner UUID"
// @Param tab query string false "Only this tab"
// @Success 200 {array} models.Listing
// @Router /playershops/{owner}/listings [get]
func (h *Handler) HandleListings(c *fiber.Ctx) error {
	listings, err := h.service.Listings(c.UserContext(), c.Params("owner"), c.Query("tab"))
	if err != nil {
		return h.fail(c, "Listing list failed", err)
	}
	return c.JSON(listings)
}

// HandleList creates a listing from an inventory slot.
// @Summary Create Listing
// @Tags playershop
// @Accept json
// @Produce json
// @Param owner path string true "Owner UUID"
// @Param body body ListRequest true "Slot, amount and terms"
// @Success 201 {object} models.Listing
// @Router /playershops/{owner}/listings [post]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	var req ListRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	listing, err := h.service.List(c.UserContext(), c.Params("owner"), req)
	if err != nil {
		return h.fail(c, "Listing failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(listing)
}

// HandleUpdateListing changes a listing.
// @Summary Update Listing
// @Tags playershop
// @Accept json
// @Produce json
// @Param owner path string true "Owner UUID"
// @Param id path int true "Listing ID"
// @Param body body ListingUpdate true "Fields to change"
// @Success 200 {object} models.Listing
// @Router /playershops/{owner}/listings/{id} [patch]
func (h *Handler) HandleUpdateListing(c *fiber.Ctx) error {
	id, err := listingID(c)
	if err != nil {
		return server.Respond(c, err)
	}
	var req ListingUpdate
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	listing, err := h.service.UpdateListing(c.UserContext(), c.Params("owner"), id, req)
	if err != nil {
		return h.fail(c, "Listing update failed", err)
	}
	return c.JSON(listing)
}

// HandleRestock adds stock from an inventory slot.
// @Summary Restock Listing
// @Tags playershop
// @Accept json
// @Produce json
// @Param owner path string true "Owner UUID"
// @Param id path int true "Listing ID"
// @Param body body RestockRequest true "Slot and amount"
// @Success 200 {object} models.Listing
// @Router /playershops/{owner}/listings/{id}/restock [post]
func (h *Handler) HandleRestock(c *fiber.Ctx) error {
	id, err := listingID(c)
	if err != nil {
		return server.Respond(c, err)
	}
	var req RestockRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	listing, err := h.service.Restock(c.UserContext(), c.Params("owner"), id, req.Slot, req.Amount)
	if err != nil {
		return h.fail(c, "Restock failed", err)
	}
	return c.JSON(listing)
}

// HandleUnlist gives a listing's stock back to its owner.
// @Summary Remove Listing
// @Tags playershop
// @Produce json
// @Param owner path string true "Owner UUID"
// @Param id path int true "Listing ID"
// @Success 200 {object} UnlistResult
// @Router /playershops/{owner}/listings/{id} [delete]
func (h *Handler) HandleUnlist(c *fiber.Ctx) error {
	id, err := listingID(c)
	if err != nil {
		return server.Respond(c, err)
	}
	result, err := h.service.Unlist(c.UserContext(), c.Params("owner"), id)
	if err != nil {
		return h.fail(c, "Unlist failed", err)
	}
	return c.JSON(result)
}

// HandleBuy buys from a listing.
// @Summary Buy From Listing
// @Tags playershop
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param body body TradeRequest true "Buyer and multiplier"
// @Success 200 {object} Receipt
// @Failure 409 {object} map[string]string
// @Router /playershops/listings/{id}/buy [post]
func (h *Handler) HandleBuy(c *fiber.Ctx) error {
	id, req, err := trade(c)
	if err != nil {
		return server.Respond(c, err)
	}
	receipt, err := h.service.Buy(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, "Player shop purchase failed", err)
	}
	return c.JSON(receipt)
}

// HandleSellTo sells to a listing.
// @Summary Sell To Listing
// @Tags playershop
// @Accept json
// @Produce json
// @Param id path int true "Listing ID"
// @Param body body TradeRequest true "Seller and multiplier"
// @Success 200 {object} Receipt
// @Failure 409 {object} map[string]string
// @Router /playershops/listings/{id}/sell [post]
func (h *Handler) HandleSellTo(c *fiber.Ctx) error {
	id, req, err := trade(c)
	if err != nil {
		return server.Respond(c, err)
	}
	receipt, err := h.service.SellTo(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, "Player shop sale failed", err)
	}
	return c.JSON(receipt)
}

func listingID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

func trade(c *fiber.Ctx) (uint, TradeRequest, error) {
	var req TradeRequest
	id, err := listingID(c)
	if err != nil {
		return 0, req, err
	}
	if err := c.BodyParser(&req); err != nil {
		return 0, req, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Multiplier == 0 {
		req.Multiplier = 1
	}
	return id, req, nil
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	l := logger.WithRayID(h.service.logger, c)
	if server.StatusOf(err) >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Debug(msg, zap.Error(err))
	}
	return server.Respond(c, err)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
}
