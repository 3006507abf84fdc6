package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"economy-manager/core/storage"
	economymodels "economy-manager/feature/economy/models"
	playershopmodels "economy-manager/feature/playershop/models"
	shopmodels "economy-manager/feature/shop/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const extension = ".json.zst"

// Info describes a stored snapshot.
type Info struct {
	Name      string    `json:"name"`
	Key       string    `json:"key"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// Service writes and reads snapshots.
type Service struct {
	db     *gorm.DB
	client storage.Client
	bucket string
	cfg    Config
	logger *zap.Logger
}

// NewService creates a new snapshot service.
func NewService(db *gorm.DB, client storage.Client, bucket string, cfg Config, logger *zap.Logger) *Service {
	cfg.Prefix = strings.Trim(cfg.Prefix, "/")
	if cfg.Prefix == "" {
		cfg.Prefix = "snapshots"
	}
	return &Service{db: db, client: client, bucket: bucket, cfg: cfg, logger: logger}
}

// Prefix returns the folder snapshots live in.
func (s *Service) Prefix() string {
	return s.cfg.Prefix
}

// Create exports the economy and uploads it.
func (s *Service) Create(ctx context.Context) (*Info, error) {
	snap, err := s.export(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, snap, s.cfg.Level); err != nil {
		return nil, err
	}

	name := strconv.FormatInt(snap.CreatedAt.UnixNano(), 10)
	key := s.key(name)
	size := int64(buf.Len())
	_, err = s.client.PutObject(ctx, s.bucket, key, &buf, size, minio.PutObjectOptions{
		ContentType: "application/zstd",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload snapshot: %w", err)
	}

	counts := snap.Counts()
	s.logger.Info("Snapshot created",
		zap.String("key", key),
		zap.Int64("size", size),
		zap.Int("accounts", counts.Accounts),
		zap.Int("listings", counts.Listings))
	return &Info{Name: name, Key: key, Size: size, CreatedAt: snap.CreatedAt}, nil
}

// List returns the stored snapshots, newest first.
func (s *Service) List(ctx context.Context) ([]Info, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    s.cfg.Prefix + "/",
		Recursive: true,
	}

	var out []Info
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", obj.Err)
		}
		name, ok := s.nameOf(obj.Key)
		if !ok {
			continue
		}
		nanos, _ := strconv.ParseInt(name, 10, 64)
		out = append(out, Info{
			Name:      name,
			Key:       obj.Key,
			Size:      obj.Size,
			CreatedAt: time.Unix(0, nanos).UTC(),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Load downloads and decodes one snapshot.
func (s *Service) Load(ctx context.Context, name string) (*Snapshot, error) {
	if !validName(name) {
		return nil, ErrInvalidName
	}
	key := s.key(name)

	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to stat snapshot %s: %w", name, err)
	}

	reader, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot %s: %w", name, err)
	}
	defer reader.Close()

	return Decode(reader)
}

// Latest loads the newest snapshot.
func (s *Service) Latest(ctx context.Context) (*Snapshot, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrSnapshotNotFound
	}
	return s.Load(ctx, list[0].Name)
}

// Prune deletes all but the newest keep snapshots and reports how many were removed.
func (s *Service) Prune(ctx context.Context, keep int) (int, error) {
	if keep < 1 {
		return 0, ErrInvalidKeep
	}
	list, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(list) <= keep {
		return 0, nil
	}

	stale := list[keep:]
	objects := make(chan minio.ObjectInfo, len(stale))
	for _, info := range stale {
		objects <- minio.ObjectInfo{Key: info.Key}
	}
	close(objects)

	var failed []string
	for rerr := range s.client.RemoveObjects(ctx, s.bucket, objects, minio.RemoveObjectsOptions{}) {
		failed = append(failed, rerr.ObjectName)
		s.logger.Warn("Failed to remove snapshot",
			zap.String("key", rerr.ObjectName),
			zap.Error(rerr.Err))
	}
	removed := len(stale) - len(failed)
	if len(failed) > 0 {
		return removed, fmt.Errorf("failed to remove %d snapshots", len(failed))
	}

	s.logger.Info("Snapshots pruned", zap.Int("removed", removed), zap.Int("kept", keep))
	return removed, nil
}

// export reads every table in one transaction so the snapshot is consistent.
func (s *Service) export(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{Version: Version, CreatedAt: time.Now().UTC()}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("uuid").Find(&snap.Accounts).Error; err != nil {
			return fmt.Errorf("failed to read accounts: %w", err)
		}
		if err := tx.Order("number").Find(&snap.Shops).Error; err != nil {
			return fmt.Errorf("failed to read shops: %w", err)
		}
		var tabs []shopmodels.Tab
		if err := tx.Order("scope, position").Find(&tabs).Error; err != nil {
			return fmt.Errorf("failed to read tabs: %w", err)
		}
		for _, t := range tabs {
			snap.Tabs = append(snap.Tabs, Tab{Scope: t.Scope, Name: t.Name, Position: t.Position})
		}
		if err := tx.Order("id").Find(&snap.Items).Error; err != nil {
			return fmt.Errorf("failed to read shop items: %w", err)
		}
		if err := tx.Order("id").Find(&snap.PlayerShops).Error; err != nil {
			return fmt.Errorf("failed to read player shops: %w", err)
		}
		if err := tx.Order("id").Find(&snap.Listings).Error; err != nil {
			return fmt.Errorf("failed to read listings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *Service) key(name string) string {
	return s.cfg.Prefix + "/" + name + extension
}

func (s *Service) nameOf(key string) (string, bool) {
	rest, ok := strings.CutPrefix(key, s.cfg.Prefix+"/")
	if !ok {
		return "", false
	}
	name, ok := strings.CutSuffix(rest, extension)
	if !ok || !validName(name) {
		return "", false
	}
	return name, true
}

func validName(name string) bool {
	n, err := strconv.ParseInt(name, 10, 64)
	return err == nil && n > 0
}

// Models lists the tables a snapshot reads.
func Models() []any {
	return []any{
		&economymodels.Account{},
		&shopmodels.Shop{},
		&shopmodels.Tab{},
		&shopmodels.Item{},
		&playershopmodels.Shop{},
		&playershopmodels.Listing{},
	}
}
