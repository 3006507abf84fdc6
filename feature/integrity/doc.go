// Package integrity provides system health checks.
//
// Unlike the 'audit' package which reconciles balances, this package validates the
// infrastructure the economy runs on.
//
// # Checks Provided
//
//   - Structure: the snapshot bucket exists and holds the required folders (e.g., /snapshots).
//   - Schema: every table and column declared by the models exists in the database, with
//     declared column types (varchar sizes) matching.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/schema : Runs schema check.
package integrity
