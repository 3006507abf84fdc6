package playershop

import (
	"context"
	"math"

	"economy-manager/feature/economy"
	"economy-manager/feature/inventory"
	invmodels "economy-manager/feature/inventory/models"
	"economy-manager/feature/playershop/models"
	"economy-manager/feature/shop"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ListRequest moves items from an inventory slot into a new listing.
type ListRequest struct {
	Tab       string  `json:"tab"`
	Slot      int     `json:"slot"`
	Amount    int     `json:"amount"`
	Quantity  int     `json:"quantity"`
	PriceBuy  float64 `json:"price_buy"`
	PriceSell float64 `json:"price_sell"`
}

// ListingUpdate lists the fields to change. Nil fields are kept.
type ListingUpdate struct {
	Tab       *string  `json:"tab,omitempty"`
	Quantity  *int     `json:"quantity,omitempty"`
	PriceBuy  *float64 `json:"price_buy,omitempty"`
	PriceSell *float64 `json:"price_sell,omitempty"`
}

// UnlistResult reports what a removal gave back.
type UnlistResult struct {
	Returned  int  `json:"returned"`
	Remaining int  `json:"remaining"`
	Deleted   bool `json:"deleted"`
}

func validPrice(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// checkTerms validates the lot size and prices of a listing and rounds the prices.
func checkTerms(l *models.Listing) error {
	if l.Quantity <= 0 || l.Quantity > shop.MaxQuantity || !validPrice(l.PriceBuy) || !validPrice(l.PriceSell) {
		return ErrInvalidListing
	}
	l.PriceBuy = economy.Round2(l.PriceBuy)
	l.PriceSell = economy.Round2(l.PriceSell)
	if l.PriceBuy == 0 && l.PriceSell == 0 {
		return ErrInvalidListing
	}
	return nil
}

// List creates a listing stocked from one of the owner's inventory slots.
func (s *Service) List(ctx context.Context, owner string, req ListRequest) (*models.Listing, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidListing
	}
	var listing *models.Listing
	err := s.inShop(ctx, owner, func(tx *gorm.DB, ps *models.Shop) error {
		tab, err := s.tabs.Resolve(tx, Scope(ps.OwnerUUID), req.Tab)
		if err != nil {
			return err
		}
		listing = &models.Listing{
			ShopID:    ps.ID,
			OwnerUUID: ps.OwnerUUID,
			Tab:       tab,
			Quantity:  req.Quantity,
			PriceBuy:  req.PriceBuy,
			PriceSell: req.PriceSell,
		}
		if err := checkTerms(listing); err != nil {
			return err
		}

		stack, err := s.inventory.TakeFromSlot(tx, ps.OwnerUUID, req.Slot, req.Amount)
		if err != nil {
			return err
		}
		listing.ItemID = stack.ItemID
		listing.Durability = stack.Durability
		listing.MaxDurability = stack.MaxDurability
		listing.Stock = stack.Quantity
		return tx.Create(listing).Error
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Listing created",
		zap.String("owner", listing.OwnerUUID),
		zap.Uint("listing", listing.ID),
		zap.String("item_id", listing.ItemID),
		zap.Int("stock", listing.Stock))
	return listing, nil
}

// Restock moves more items from a slot into a listing. The slot must hold the same
// item at the same durability.
func (s *Service) Restock(ctx context.Context, owner string, id uint, slot, amount int) (*models.Listing, error) {
	if amount <= 0 {
		return nil, ErrInvalidListing
	}
	var listing *models.Listing
	err := s.inShop(ctx, owner, func(tx *gorm.DB, ps *models.Shop) error {
		var err error
		if listing, err = s.ownListing(tx, ps, id); err != nil {
			return err
		}
		stack, err := s.inventory.TakeFromSlot(tx, ps.OwnerUUID, slot, amount)
		if err != nil {
			return err
		}
		if !stack.SameKind(listingStack(listing, 0)) {
			return ErrItemMismatch
		}
		listing.Stock += stack.Quantity
		return tx.Model(listing).Update("stock", listing.Stock).Error
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

// UpdateListing changes a listing's terms.
func (s *Service) UpdateListing(ctx context.Context, owner string, id uint, upd ListingUpdate) (*models.Listing, error) {
	var listing *models.Listing
	err := s.inShop(ctx, owner, func(tx *gorm.DB, ps *models.Shop) error {
		var err error
		if listing, err = s.ownListing(tx, ps, id); err != nil {
			return err
		}
		if upd.Tab != nil {
			if listing.Tab, err = s.tabs.Resolve(tx, Scope(ps.OwnerUUID), *upd.Tab); err != nil {
				return err
			}
		}
		if upd.Quantity != nil {
			listing.Quantity = *upd.Quantity
		}
		if upd.PriceBuy != nil {
			listing.PriceBuy = *upd.PriceBuy
		}
		if upd.PriceSell != nil {
			listing.PriceSell = *upd.PriceSell
		}
		if err := checkTerms(listing); err != nil {
			return err
		}
		return tx.Save(listing).Error
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

// Unlist gives the listing's stock back to the owner with its durability. Whatever
// does not fit stays listed; an emptied listing is deleted.
func (s *Service) Unlist(ctx context.Context, owner string, id uint) (*UnlistResult, error) {
	result := &UnlistResult{}
	var ownerID string
	err := s.inShop(ctx, owner, func(tx *gorm.DB, ps *models.Shop) error {
		ownerID = ps.OwnerUUID
		listing, err := s.ownListing(tx, ps, id)
		if err != nil {
			return err
		}
		if listing.Stock > 0 {
			given, err := s.inventory.GiveUpTo(tx, ps.OwnerUUID, listingStack(listing, listing.Stock))
			if err != nil {
				return err
			}
			if given == 0 {
				return inventory.ErrInventoryFull
			}
			result.Returned = given
			result.Remaining = listing.Stock - given
		}
		if result.Remaining > 0 {
			return tx.Model(listing).Update("stock", result.Remaining).Error
		}
		result.Deleted = true
		return tx.Delete(listing).Error
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Listing removed",
		zap.String("owner", ownerID),
		zap.Uint("listing", id),
		zap.Int("returned", result.Returned),
		zap.Int("remaining", result.Remaining))
	return result, nil
}

func (s *Service) ownListing(tx *gorm.DB, ps *models.Shop, id uint) (*models.Listing, error) {
	listing, err := findListing(tx, id)
	if err != nil {
		return nil, err
	}
	if listing.ShopID != ps.ID {
		return nil, ErrListingNotFound
	}
	return listing, nil
}

func listingStack(l *models.Listing, qty int) invmodels.Stack {
	return invmodels.Stack{
		ItemID:        l.ItemID,
		Quantity:      qty,
		Durability:    l.Durability,
		MaxDurability: l.MaxDurability,
	}
}
