package shop

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"economy-manager/feature/economy"
	invmodels "economy-manager/feature/inventory/models"
	"economy-manager/feature/shop/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TradeRequest identifies one buy or sell.
type TradeRequest struct {
	Shop           int    `json:"-"`
	Item           uint   `json:"-"`
	Player         string `json:"player"`
	Multiplier     int    `json:"multiplier"`
	IdempotencyKey string `json:"-"`
}

// Receipt describes a completed trade.
type Receipt struct {
	Shop     int      `json:"shop"`
	Item     uint     `json:"item"`
	ItemID   string   `json:"item_id,omitempty"`
	Units    int      `json:"units"`
	Amount   float64  `json:"amount"`
	Currency string   `json:"currency"`
	Balance  float64  `json:"balance"`
	Stock    int      `json:"stock"`
	Commands []string `json:"commands,omitempty"`
}

// RenderCommand fills a command template for a player.
func RenderCommand(tmpl, player string, quantity int) string {
	return strings.NewReplacer(
		"{player}", player,
		"{quantity}", strconv.Itoa(quantity),
	).Replace(tmpl)
}

// MaxQuantity bounds the lot size of a listing so lot × multiplier cannot overflow.
const MaxQuantity = 1 << 20

// Units returns quantity × multiplier, rejecting multipliers outside [1, max] and
// lot sizes outside [1, MaxQuantity].
func Units(quantity, multiplier, max int) (int, error) {
	if multiplier < 1 || multiplier > max || quantity <= 0 || quantity > MaxQuantity {
		return 0, ErrInvalidMultiplier
	}
	if multiplier > math.MaxInt32/quantity {
		return 0, ErrInvalidMultiplier
	}
	return quantity * multiplier, nil
}

// Buy charges the player and hands over the listing. Debit, items or commands and the
// stock change commit together or not at all.
func (s *Service) Buy(ctx context.Context, req TradeRequest) (*Receipt, error) {
	player, err := economy.NormalizeUUID(req.Player)
	if err != nil {
		return nil, err
	}
	release, err := s.claim(ctx, req.IdempotencyKey)
	if err != nil {
		return nil, err
	}

	var receipt *Receipt
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := findItem(tx, req.Shop, req.Item, true)
		if err != nil {
			return err
		}
		if item.PriceBuy <= 0 {
			return ErrNotBuyable
		}
		units, err := Units(item.Quantity, req.Multiplier, s.cfg.MaxMultiplier)
		if err != nil {
			return err
		}
		if item.Stock != models.Unlimited && item.Stock < units {
			return ErrOutOfStock
		}

		cost := economy.Round2(item.PriceBuy * float64(req.Multiplier))
		currency := economy.CurrencyFor(item.UseCash)
		acc, err := s.ledger.Debit(tx, player, currency, cost, "shop_buy", reference(item))
		if err != nil {
			return err
		}

		receipt = &Receipt{
			Shop:     item.ShopNumber,
			Item:     item.ID,
			ItemID:   item.ItemID,
			Units:    units,
			Amount:   cost,
			Currency: currency,
			Balance:  acc.Balance(currency),
		}

		if item.IsCommand {
			cmd := RenderCommand(item.Command, player, item.Quantity)
			for i := 0; i < req.Multiplier; i++ {
				if err := enqueue(tx, player, cmd, reference(item)); err != nil {
					return err
				}
				receipt.Commands = append(receipt.Commands, cmd)
			}
		} else {
			stack := invmodels.Stack{
				ItemID:        item.ItemID,
				Quantity:      units,
				Durability:    item.Durability,
				MaxDurability: item.MaxDurability,
			}
			if err := s.inventory.Give(tx, player, stack); err != nil {
				return err
			}
		}

		receipt.Stock, err = adjustStock(tx, item, -units)
		return err
	})
	if err != nil {
		release()
		return nil, err
	}

	s.logger.Info("Purchase completed",
		zap.String("player", player),
		zap.Int("shop", receipt.Shop),
		zap.Uint("item", receipt.Item),
		zap.Int("units", receipt.Units),
		zap.Float64("cost", receipt.Amount),
		zap.String("currency", receipt.Currency))
	return receipt, nil
}

// Sell takes items from the player and pays the listing's sell price.
func (s *Service) Sell(ctx context.Context, req TradeRequest) (*Receipt, error) {
	player, err := economy.NormalizeUUID(req.Player)
	if err != nil {
		return nil, err
	}
	release, err := s.claim(ctx, req.IdempotencyKey)
	if err != nil {
		return nil, err
	}

	var receipt *Receipt
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := findItem(tx, req.Shop, req.Item, true)
		if err != nil {
			return err
		}
		if item.PriceSell <= 0 || item.IsCommand {
			return ErrNotSellable
		}
		units, err := Units(item.Quantity, req.Multiplier, s.cfg.MaxMultiplier)
		if err != nil {
			return err
		}

		// Account before inventory, matching Buy.
		if _, err := s.ledger.Account(tx, player); err != nil {
			return err
		}
		if _, err := s.inventory.Take(tx, player, item.ItemID, units); err != nil {
			return err
		}

		payout := economy.Round2(item.PriceSell * float64(req.Multiplier))
		currency := economy.CurrencyFor(item.UseCash)
		acc, err := s.ledger.Credit(tx, player, currency, payout, "shop_sell", reference(item))
		if err != nil {
			return err
		}

		receipt = &Receipt{
			Shop:     item.ShopNumber,
			Item:     item.ID,
			ItemID:   item.ItemID,
			Units:    units,
			Amount:   payout,
			Currency: currency,
			Balance:  acc.Balance(currency),
		}
		receipt.Stock, err = adjustStock(tx, item, units)
		return err
	})
	if err != nil {
		release()
		return nil, err
	}

	s.logger.Info("Sale completed",
		zap.String("player", player),
		zap.Int("shop", receipt.Shop),
		zap.Uint("item", receipt.Item),
		zap.Int("units", receipt.Units),
		zap.Float64("payout", receipt.Amount),
		zap.String("currency", receipt.Currency))
	return receipt, nil
}

// claim reserves an idempotency key. The returned func frees it again.
func (s *Service) claim(ctx context.Context, key string) (func(), error) {
	key = strings.TrimSpace(key)
	if key == "" || s.guard == nil {
		return func() {}, nil
	}
	ok, err := s.guard.Acquire(ctx, "shop:"+key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrDuplicateRequest
	}
	return func() {
		if err := s.guard.Release(context.WithoutCancel(ctx), "shop:"+key); err != nil {
			s.logger.Warn("Failed to release idempotency key", zap.String("key", key), zap.Error(err))
		}
	}, nil
}

// adjustStock applies delta to a finite stock and returns the new value.
func adjustStock(tx *gorm.DB, item *models.Item, delta int) (int, error) {
	if item.Stock == models.Unlimited {
		return models.Unlimited, nil
	}
	next := item.Stock + delta
	if next < 0 {
		return 0, ErrOutOfStock
	}
	if err := tx.Model(&models.Item{}).Where("id = ?", item.ID).Update("stock", next).Error; err != nil {
		return 0, fmt.Errorf("failed to update stock: %w", err)
	}
	item.Stock = next
	return next, nil
}

func reference(item *models.Item) string {
	return fmt.Sprintf("shop:%d:item:%d", item.ShopNumber, item.ID)
}
