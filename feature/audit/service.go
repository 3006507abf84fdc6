package audit

import (
	"context"
	"time"

	"economy-manager/core/reconcile"
	"economy-manager/feature/economy"

	"go.uber.org/zap"
)

// Service runs ledger audits.
type Service struct {
	spec   *reconcile.Spec
	logger *zap.Logger
}

// NewService creates an audit service over adapter.
func NewService(adapter reconcile.Adapter, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		spec: &reconcile.Spec{
			Adapter:  adapter,
			CacheTTL: time.Duration(cfg.CacheTTLSeconds) * time.Second,
		},
		logger: logger,
	}
}

// Report reconciles every account and plans the repairs opts enables.
func (s *Service) Report(ctx context.Context, opts reconcile.ReconcileOptions) (*reconcile.ReconcilePlan, error) {
	return reconcile.ReconcileWithPlan(ctx, s.spec, opts)
}

// Account reconciles a single account.
func (s *Service) Account(ctx context.Context, player string) (*reconcile.ReconcileResult, error) {
	id, err := economy.NormalizeUUID(player)
	if err != nil {
		return nil, err
	}
	return reconcile.ReconcileOne(ctx, s.spec, reconcile.Query{ID: id})
}

// Repair plans and, when confirmed and not a dry run, applies repairs.
func (s *Service) Repair(ctx context.Context, opts reconcile.ReconcileOptions) (*reconcile.ReconcilePlan, int, error) {
	// Repairs must see live data.
	reconcile.InvalidateCache(s.spec)

	plan, executed, err := reconcile.ReconcileAndApply(ctx, s.spec, opts)
	if err != nil {
		s.logger.Error("Audit repair failed", zap.Int("executed", executed), zap.Error(err))
		return plan, executed, err
	}

	s.logger.Info("Audit repair finished",
		zap.Int("mismatches", plan.Summary.Mismatches),
		zap.Int("sync_actions", plan.Summary.SyncActions),
		zap.Int("backfill_actions", plan.Summary.BackfillActions),
		zap.Int("executed", executed),
		zap.Bool("dry_run", opts.DryRun),
		zap.Bool("confirmed", opts.Confirmed))
	return plan, executed, nil
}
