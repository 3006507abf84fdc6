package rewards

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"economy-manager/feature/economy"
	ecomodels "economy-manager/feature/economy/models"
	"economy-manager/feature/rewards/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// maxCount bounds how many kills or blocks one trigger may report.
const maxCount = 10000

// RuleRequest creates or changes a rule. Nil fields keep their value on update;
// a new rule defaults to coins and enabled.
type RuleRequest struct {
	Kind     string   `json:"kind"`
	Target   string   `json:"target"`
	Amount   *float64 `json:"amount,omitempty"`
	Currency *string  `json:"currency,omitempty"`
	Enabled  *bool    `json:"enabled,omitempty"`
}

// TriggerRequest reports what a player did.
type TriggerRequest struct {
	Player string `json:"player"`
	Kind   string `json:"kind"`
	Target string `json:"target"`
	Count  int    `json:"count"`
}

// Payout is the result of a trigger. Rule is nil when nothing was paid.
type Payout struct {
	Rule     *uint   `json:"rule,omitempty"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency,omitempty"`
	Balance  float64 `json:"balance"`
}

// Service manages reward rules and pays rewards.
type Service struct {
	db     *gorm.DB
	ledger *economy.Ledger
	logger *zap.Logger
}

// NewService creates a new rewards service.
func NewService(db *gorm.DB, ledger *economy.Ledger, logger *zap.Logger) *Service {
	return &Service{db: db, ledger: ledger, logger: logger}
}

func validKind(kind string) error {
	switch kind {
	case models.KindBlock, models.KindMonster:
		return nil
	default:
		return ErrInvalidKind
	}
}

func checkRule(r *models.Rule) error {
	if err := validKind(r.Kind); err != nil {
		return err
	}
	r.Target = strings.TrimSpace(r.Target)
	if r.Target == "" || len(r.Target) > 128 {
		return ErrInvalidRule
	}
	if err := economy.ValidateAmount(r.Amount); err != nil {
		return ErrInvalidRule
	}
	if err := economy.ValidateCurrency(r.Currency); err != nil {
		return err
	}
	r.Amount = economy.Round2(r.Amount)
	return nil
}

// ListRules returns the rules, optionally of one kind.
func (s *Service) ListRules(ctx context.Context, kind string) ([]models.Rule, error) {
	q := s.db.WithContext(ctx)
	if kind != "" {
		if err := validKind(kind); err != nil {
			return nil, err
		}
		q = q.Where("kind = ?", kind)
	}
	var rules []models.Rule
	if err := q.Order("kind ASC").Order("target ASC").Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to list reward rules: %w", err)
	}
	return rules, nil
}

// GetRule returns one rule.
func (s *Service) GetRule(ctx context.Context, id uint) (*models.Rule, error) {
	return findRule(s.db.WithContext(ctx), id)
}

// CreateRule adds a rule for a kind and target.
func (s *Service) CreateRule(ctx context.Context, req RuleRequest) (*models.Rule, error) {
	rule := &models.Rule{
		Kind:     strings.ToLower(strings.TrimSpace(req.Kind)),
		Target:   req.Target,
		Currency: ecomodels.CurrencyCoins,
		Enabled:  true,
	}
	apply(rule, req)
	if err := checkRule(rule); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Rule{}).Where("kind = ? AND target = ?", rule.Kind, rule.Target).Count(&n).Error; err != nil {
			return fmt.Errorf("failed to check reward rules: %w", err)
		}
		if n > 0 {
			return ErrRuleExists
		}
		return tx.Create(rule).Error
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Reward rule created",
		zap.String("kind", rule.Kind),
		zap.String("target", rule.Target),
		zap.Float64("amount", rule.Amount))
	return rule, nil
}

// UpdateRule changes amount, currency or enabled of a rule.
func (s *Service) UpdateRule(ctx context.Context, id uint, req RuleRequest) (*models.Rule, error) {
	var rule *models.Rule
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if rule, err = findRule(tx, id); err != nil {
			return err
		}
		apply(rule, req)
		if err := checkRule(rule); err != nil {
			return err
		}
		return tx.Save(rule).Error
	})
	if err != nil {
		return nil, err
	}
	return rule, nil
}

// DeleteRule removes a rule.
func (s *Service) DeleteRule(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Rule{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete reward rule: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRuleNotFound
	}
	return nil
}

// Trigger pays the player for count blocks or kills of target. The exact rule wins
// over the kind's wildcard rule. A missing or disabled rule pays nothing.
func (s *Service) Trigger(ctx context.Context, req TriggerRequest) (*Payout, error) {
	player, err := economy.NormalizeUUID(req.Player)
	if err != nil {
		return nil, err
	}
	kind := strings.ToLower(strings.TrimSpace(req.Kind))
	if err := validKind(kind); err != nil {
		return nil, err
	}
	if req.Count == 0 {
		req.Count = 1
	}
	if req.Count < 0 || req.Count > maxCount {
		return nil, ErrInvalidCount
	}

	payout := &Payout{}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rule, err := s.match(tx, kind, strings.TrimSpace(req.Target))
		if err != nil || rule == nil {
			return err
		}
		amount := economy.Round2(rule.Amount * float64(req.Count))
		ref := fmt.Sprintf("reward:%s:%s", kind, req.Target)
		acc, err := s.ledger.Credit(tx, player, rule.Currency, amount, "reward", ref)
		if err != nil {
			return err
		}
		id := rule.ID
		payout.Rule = &id
		payout.Amount = amount
		payout.Currency = rule.Currency
		payout.Balance = acc.Balance(rule.Currency)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if payout.Rule != nil {
		s.logger.Debug("Reward paid",
			zap.String("player", player),
			zap.String("kind", kind),
			zap.String("target", req.Target),
			zap.Float64("amount", payout.Amount))
	}
	return payout, nil
}

// match returns the enabled rule for target, falling back to the wildcard.
func (s *Service) match(tx *gorm.DB, kind, target string) (*models.Rule, error) {
	var rules []models.Rule
	err := tx.Where("kind = ? AND target IN ?", kind, []string{target, models.AnyTarget}).Find(&rules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to match reward rule: %w", err)
	}
	var wildcard *models.Rule
	for i := range rules {
		if rules[i].Target == target {
			if !rules[i].Enabled {
				return nil, nil
			}
			return &rules[i], nil
		}
		wildcard = &rules[i]
	}
	if wildcard != nil && wildcard.Enabled {
		return wildcard, nil
	}
	return nil, nil
}

func apply(rule *models.Rule, req RuleRequest) {
	if req.Amount != nil {
		rule.Amount = *req.Amount
	}
	if req.Currency != nil {
		rule.Currency = *req.Currency
	}
	if req.Enabled != nil {
		rule.Enabled = *req.Enabled
	}
}

func findRule(tx *gorm.DB, id uint) (*models.Rule, error) {
	var rule models.Rule
	err := tx.First(&rule, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load reward rule %d: %w", id, err)
	}
	return &rule, nil
}
