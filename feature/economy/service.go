package economy

import (
	"context"
	"fmt"
	"sort"

	"economy-manager/feature/economy/models"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Summary is the balance overview shown on the player's HUD.
type Summary struct {
	UUID      string  `json:"uuid"`
	Coins     float64 `json:"coins"`
	Cash      float64 `json:"cash"`
	CoinsText string  `json:"coins_text"`
	CashText  string  `json:"cash_text"`
}

// Service handles balance operations.
type Service struct {
	db     *gorm.DB
	ledger *Ledger
	cfg    Config
	logger *zap.Logger
}

// NewService creates a new economy service.
func NewService(db *gorm.DB, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		ledger: NewLedger(cfg),
		cfg:    cfg,
		logger: logger,
	}
}

// Ledger exposes the transactional ledger to other features.
func (s *Service) Ledger() *Ledger {
	return s.ledger
}

// Get returns the account, opening it if the player is new.
func (s *Service) Get(ctx context.Context, player string) (*models.Account, error) {
	id, err := NormalizeUUID(player)
	if err != nil {
		return nil, err
	}
	var acc *models.Account
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		acc, err = s.ledger.Account(tx, id)
		return err
	})
	return acc, err
}

// Summary returns the formatted balance overview.
func (s *Service) Summary(ctx context.Context, player string) (*Summary, error) {
	acc, err := s.Get(ctx, player)
	if err != nil {
		return nil, err
	}
	return &Summary{
		UUID:      acc.UUID,
		Coins:     acc.Coins,
		Cash:      acc.Cash,
		CoinsText: s.cfg.CoinSymbol + humanize.FormatFloat("#,###.##", acc.Coins),
		CashText:  s.cfg.CashSymbol + humanize.FormatFloat("#,###.##", acc.Cash),
	}, nil
}

// Add credits amount.
func (s *Service) Add(ctx context.Context, player, currency string, amount float64, reason string) (*models.Account, error) {
	return s.mutate(ctx, player, func(tx *gorm.DB, id string) (*models.Account, error) {
		return s.ledger.Credit(tx, id, currency, amount, reasonOr(reason, "admin_add"), "")
	})
}

// Subtract debits amount. Nothing changes if the balance is too low.
func (s *Service) Subtract(ctx context.Context, player, currency string, amount float64, reason string) (*models.Account, error) {
	return s.mutate(ctx, player, func(tx *gorm.DB, id string) (*models.Account, error) {
		return s.ledger.Debit(tx, id, currency, amount, reasonOr(reason, "admin_subtract"), "")
	})
}

// Set overwrites the balance.
func (s *Service) Set(ctx context.Context, player, currency string, amount float64, reason string) (*models.Account, error) {
	return s.mutate(ctx, player, func(tx *gorm.DB, id string) (*models.Account, error) {
		return s.ledger.Set(tx, id, currency, amount, reasonOr(reason, "admin_set"))
	})
}

// Transfer moves amount between two players atomically.
func (s *Service) Transfer(ctx context.Context, from, to, currency string, amount float64) (*models.Account, *models.Account, error) {
	fromID, err := NormalizeUUID(from)
	if err != nil {
		return nil, nil, err
	}
	toID, err := NormalizeUUID(to)
	if err != nil {
		return nil, nil, err
	}
	if fromID == toID {
		return nil, nil, ErrSelfTransfer
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, nil, err
	}

	var sender, receiver *models.Account
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock both rows in a stable order.
		ids := []string{fromID, toID}
		sort.Strings(ids)
		for _, id := range ids {
			if _, err := s.ledger.Account(tx, id); err != nil {
				return err
			}
		}

		ref := "transfer:" + fromID + ":" + toID
		if sender, err = s.ledger.Debit(tx, fromID, currency, amount, "transfer_out", ref); err != nil {
			return err
		}
		receiver, err = s.ledger.Credit(tx, toID, currency, amount, "transfer_in", ref)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("Transfer completed",
		zap.String("from", fromID),
		zap.String("to", toID),
		zap.String("currency", currency),
		zap.Float64("amount", Round2(amount)))
	return sender, receiver, nil
}

// Top returns the richest accounts in currency.
func (s *Service) Top(ctx context.Context, currency string, limit int) ([]models.Account, error) {
	if err := ValidateCurrency(currency); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	var accounts []models.Account
	err := s.db.WithContext(ctx).
		Order(currency + " DESC").
		Order("uuid ASC").
		Limit(limit).
		Find(&accounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	return accounts, nil
}

// History returns the newest ledger entries of a player.
func (s *Service) History(ctx context.Context, player string, limit int) ([]models.LedgerEntry, error) {
	id, err := NormalizeUUID(player)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	var entries []models.LedgerEntry
	err = s.db.WithContext(ctx).
		Where("account_uuid = ?", id).
		Order("id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return entries, nil
}

func (s *Service) mutate(ctx context.Context, player string, fn func(tx *gorm.DB, id string) (*models.Account, error)) (*models.Account, error) {
	id, err := NormalizeUUID(player)
	if err != nil {
		return nil, err
	}
	var acc *models.Account
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		acc, err = fn(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

func reasonOr(reason, fallback string) string {
	if reason == "" {
		return fallback
	}
	return reason
}
