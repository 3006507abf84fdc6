// Package logger builds the zap logger every command and feature shares.
//
// Level "debug" selects zap's development preset; other levels use the production
// preset at that level. Format picks json or console encoding, and Output lists the
// sinks (stdout, stderr or file paths). Timestamps are ISO8601 in both encodings.
//
// Request handlers log through WithRayID so each line carries the ray id the rayid
// middleware assigned, which the game server can match against its own logs:
//
//	l := logger.WithRayID(h.logger, c)
//	l.Warn("Purchase rejected", zap.Error(err))
package logger
