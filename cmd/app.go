package cmd

import (
	"context"
	"fmt"
	"time"

	"economy-manager/core/cache"
	"economy-manager/core/config"
	"economy-manager/core/database"
	"economy-manager/core/loader"
	"economy-manager/core/logger"
	"economy-manager/core/storage"
	"economy-manager/feature/audit"
	"economy-manager/feature/economy"
	economymodels "economy-manager/feature/economy/models"
	"economy-manager/feature/integrity"
	"economy-manager/feature/inventory"
	inventorymodels "economy-manager/feature/inventory/models"
	"economy-manager/feature/merchant"
	merchantmodels "economy-manager/feature/merchant/models"
	"economy-manager/feature/playershop"
	playershopmodels "economy-manager/feature/playershop/models"
	"economy-manager/feature/rewards"
	rewardsmodels "economy-manager/feature/rewards/models"
	"economy-manager/feature/shop"
	shopmodels "economy-manager/feature/shop/models"
	"economy-manager/feature/snapshot"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// allModels lists every table the service owns, in migration order.
func allModels() []any {
	var all []any
	for _, group := range [][]any{
		economymodels.All(),
		inventorymodels.All(),
		shopmodels.All(),
		playershopmodels.All(),
		merchantmodels.All(),
		rewardsmodels.All(),
	} {
		all = append(all, group...)
	}
	return all
}

// deps is what every command needs before doing real work.
type deps struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	store  storage.Client
}

// bootstrap loads configuration, creates the logger and connects to the database.
// Storage is optional; a nil store disables snapshots.
func bootstrap() (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logg = logg.With(zap.String("server", cfg.Server.Name))

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Warn("Storage unavailable, snapshots disabled", zap.Error(err))
		store = nil
	}

	return &deps{cfg: cfg, logger: logg, db: db, store: store}, nil
}

// features holds the wired feature set.
type features struct {
	economy    *economy.Feature
	inventory  *inventory.Feature
	shop       *shop.Feature
	playershop *playershop.Feature
	merchant   *merchant.Feature
	rewards    *rewards.Feature
	snapshot   *snapshot.Feature
	audit      *audit.Feature
	integrity  *integrity.Feature

	// snapshots is nil when storage is unavailable.
	snapshots audit.SnapshotSource
}

// buildFeatures wires every feature to its dependencies. guard may be nil.
func (r *deps) buildFeatures(guard cache.Guard) *features {
	cfg := r.cfg
	f := &features{}

	f.economy = economy.NewFeature(r.db, cfg.Economy, r.logger)
	ledger := f.economy.Service().Ledger()

	f.inventory = inventory.NewFeature(r.db, cfg.Inventory, r.logger)
	inv := f.inventory.Service().Inventory()

	f.shop = shop.NewFeature(r.db, ledger, inv, guard, cfg.Shop, r.logger)
	f.playershop = playershop.NewFeature(r.db, ledger, inv, f.shop.Service().Tabs(), playershop.Config{
		TaxRate:       cfg.Economy.PlayerShopTax,
		TaxAccount:    cfg.Economy.TaxAccount,
		MaxMultiplier: cfg.Shop.MaxMultiplier,
	}, r.logger)
	f.merchant = merchant.NewFeature(r.db, f.shop.Service(), r.logger)
	f.rewards = rewards.NewFeature(r.db, ledger, r.logger)

	f.snapshot = snapshot.NewFeature(r.db, r.store, cfg.Storage.Bucket, cfg.Snapshot, r.logger)

	// A typed nil would slip past the audit adapter's nil check.
	if r.store != nil {
		f.snapshots = f.snapshot.Service()
	}
	f.audit = audit.NewFeature(r.db, ledger, f.snapshots, cfg.Audit, r.logger)

	f.integrity = integrity.NewFeature(r.store, cfg.Storage.Bucket,
		[]string{f.snapshot.Service().Prefix()}, r.db, allModels(), r.logger)

	return f
}

// register adds every feature to mgr in load order.
func (f *features) register(mgr *loader.Manager) {
	mgr.Register(f.economy)
	mgr.Register(f.inventory)
	mgr.Register(f.shop)
	mgr.Register(f.playershop)
	mgr.Register(f.merchant)
	mgr.Register(f.rewards)
	mgr.Register(f.snapshot)
	mgr.Register(f.audit)
	mgr.Register(f.integrity)
}

// connectGuard returns the Redis idempotency guard, or nil when the cache is off.
func (r *deps) connectGuard(ctx context.Context) (cache.Guard, error) {
	if !r.cfg.Cache.Enabled {
		return nil, nil
	}
	client, err := cache.Connect(ctx, r.cfg.Cache)
	if err != nil {
		return nil, err
	}
	r.logger.Info("Connected to cache", zap.String("addr", r.cfg.Cache.Addr))
	return cache.NewRedisGuard(client, time.Duration(r.cfg.Cache.TTLSeconds)*time.Second), nil
}
