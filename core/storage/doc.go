// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface. The economy stores its
// snapshots (compressed exports of balances and shop catalogs) here, and the integrity
// feature verifies the bucket layout through it. Both AWS S3 and self-hosted MinIO work.
//
// # Client Interface
//
// Client mirrors the subset of minio.Client the service needs, which keeps storage
// interactions mockable (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
