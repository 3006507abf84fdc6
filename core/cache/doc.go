// Package cache provides the Redis-backed idempotency guard used by trade endpoints.
//
// The game server may retry a purchase when a response is lost. Trade requests carrying
// an Idempotency-Key header claim that key with SETNX before the database transaction
// runs; a second request with the same key is rejected. When the transaction fails the
// key is released so the client can retry.
//
// The guard is optional: with cache.enabled=false Connect returns a nil client and the
// services skip the check.
package cache
