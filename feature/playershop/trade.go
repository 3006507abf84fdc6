package playershop

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"economy-manager/feature/economy"
	ecomodels "economy-manager/feature/economy/models"
	"economy-manager/feature/playershop/models"
	"economy-manager/feature/shop"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TradeRequest identifies one buy from or sale to a listing.
type TradeRequest struct {
	Player     string `json:"player"`
	Multiplier int    `json:"multiplier"`
}

// Receipt describes a completed player shop trade.
type Receipt struct {
	Listing  uint    `json:"listing"`
	Owner    string  `json:"owner"`
	ItemID   string  `json:"item_id"`
	Units    int     `json:"units"`
	Amount   float64 `json:"amount"`
	Tax      float64 `json:"tax"`
	Received float64 `json:"received"`
	Balance  float64 `json:"balance"`
	Stock    int     `json:"stock"`
}

// Buy pays the owner for items from a listing. The owner receives the price minus tax.
func (s *Service) Buy(ctx context.Context, listingID uint, req TradeRequest) (*Receipt, error) {
	buyer, err := economy.NormalizeUUID(req.Player)
	if err != nil {
		return nil, err
	}

	var receipt *Receipt
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		listing, err := s.tradable(tx, listingID, buyer)
		if err != nil {
			return err
		}
		if listing.PriceBuy <= 0 {
			return ErrNotBuyable
		}
		units, err := shop.Units(listing.Quantity, req.Multiplier, s.cfg.MaxMultiplier)
		if err != nil {
			return err
		}
		if listing.Stock < units {
			return ErrOutOfStock
		}

		cost := economy.Round2(listing.PriceBuy * float64(req.Multiplier))
		tax := economy.Tax(cost, s.cfg.TaxRate)
		if err := s.lockAccounts(tx, buyer, listing.OwnerUUID); err != nil {
			return err
		}

		ref := reference(listing)
		acc, err := s.ledger.Debit(tx, buyer, ecomodels.CurrencyCoins, cost, "playershop_buy", ref)
		if err != nil {
			return err
		}
		if err := s.pay(tx, listing.OwnerUUID, cost, tax, "playershop_sale", ref); err != nil {
			return err
		}
		if err := s.inventory.Give(tx, buyer, listingStack(listing, units)); err != nil {
			return err
		}

		listing.Stock -= units
		if err := tx.Model(listing).Update("stock", listing.Stock).Error; err != nil {
			return fmt.Errorf("failed to update stock: %w", err)
		}

		receipt = &Receipt{
			Listing:  listing.ID,
			Owner:    listing.OwnerUUID,
			ItemID:   listing.ItemID,
			Units:    units,
			Amount:   cost,
			Tax:      tax,
			Received: economy.Round2(cost - tax),
			Balance:  acc.Coins,
			Stock:    listing.Stock,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Player shop purchase completed",
		zap.String("buyer", buyer),
		zap.String("owner", receipt.Owner),
		zap.Uint("listing", receipt.Listing),
		zap.Int("units", receipt.Units),
		zap.Float64("cost", receipt.Amount),
		zap.Float64("tax", receipt.Tax))
	return receipt, nil
}

// SellTo sells matching items to a listing. The owner pays, the seller receives the
// payout minus tax.
func (s *Service) SellTo(ctx context.Context, listingID uint, req TradeRequest) (*Receipt, error) {
	seller, err := economy.NormalizeUUID(req.Player)
	if err != nil {
		return nil, err
	}

	var receipt *Receipt
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		listing, err := s.tradable(tx, listingID, seller)
		if err != nil {
			return err
		}
		if listing.PriceSell <= 0 {
			return ErrNotSellable
		}
		units, err := shop.Units(listing.Quantity, req.Multiplier, s.cfg.MaxMultiplier)
		if err != nil {
			return err
		}

		// Accounts before inventory, the same order Buy takes its locks in.
		payout := economy.Round2(listing.PriceSell * float64(req.Multiplier))
		tax := economy.Tax(payout, s.cfg.TaxRate)
		if err := s.lockAccounts(tx, seller, listing.OwnerUUID); err != nil {
			return err
		}
		if _, err := s.inventory.TakeMatching(tx, seller, listingStack(listing, 0), units); err != nil {
			return err
		}

		ref := reference(listing)
		if _, err := s.ledger.Debit(tx, listing.OwnerUUID, ecomodels.CurrencyCoins, payout, "playershop_restock", ref); err != nil {
			return err
		}
		if err := s.pay(tx, seller, payout, tax, "playershop_sell", ref); err != nil {
			return err
		}
		acc, err := s.ledger.Account(tx, seller)
		if err != nil {
			return err
		}

		listing.Stock += units
		if err := tx.Model(listing).Update("stock", listing.Stock).Error; err != nil {
			return fmt.Errorf("failed to update stock: %w", err)
		}

		receipt = &Receipt{
			Listing:  listing.ID,
			Owner:    listing.OwnerUUID,
			ItemID:   listing.ItemID,
			Units:    units,
			Amount:   payout,
			Tax:      tax,
			Received: economy.Round2(payout - tax),
			Balance:  acc.Coins,
			Stock:    listing.Stock,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Player shop sale completed",
		zap.String("seller", seller),
		zap.String("owner", receipt.Owner),
		zap.Uint("listing", receipt.Listing),
		zap.Int("units", receipt.Units),
		zap.Float64("payout", receipt.Amount),
		zap.Float64("tax", receipt.Tax))
	return receipt, nil
}

// tradable loads a listing a player may trade with.
func (s *Service) tradable(tx *gorm.DB, listingID uint, player string) (*models.Listing, error) {
	listing, err := findListing(tx, listingID)
	if err != nil {
		return nil, err
	}
	var ps models.Shop
	if err := tx.Where("id = ?", listing.ShopID).First(&ps).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, fmt.Errorf("failed to load player shop: %w", err)
	}
	if !ps.Open {
		return nil, ErrShopClosed
	}
	if ps.OwnerUUID == player {
		return nil, ErrOwnShop
	}
	return listing, nil
}

// pay credits amount minus tax to receiver and the tax to the tax account.
func (s *Service) pay(tx *gorm.DB, receiver string, amount, tax float64, reason, ref string) error {
	net := economy.Round2(amount - tax)
	if net > 0 {
		if _, err := s.ledger.Credit(tx, receiver, ecomodels.CurrencyCoins, net, reason, ref); err != nil {
			return err
		}
	}
	if tax > 0 && s.taxAccount != "" {
		if _, err := s.ledger.Credit(tx, s.taxAccount, ecomodels.CurrencyCoins, tax, "playershop_tax", ref); err != nil {
			return err
		}
	}
	return nil
}

// lockAccounts locks the trading accounts in a stable order.
func (s *Service) lockAccounts(tx *gorm.DB, ids ...string) error {
	if s.taxAccount != "" {
		ids = append(ids, s.taxAccount)
	}
	sort.Strings(ids)
	for i, id := range ids {
		if i > 0 && ids[i-1] == id {
			continue
		}
		if _, err := s.ledger.Account(tx, id); err != nil {
			return err
		}
	}
	return nil
}
