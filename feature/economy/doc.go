// Package economy implements player balances.
//
// Every account holds two currencies: coins (earned and spent in normal play) and cash
// (the premium currency used by cash shop items). Accounts open lazily with the
// configured starting balance the first time a player is seen.
//
// # Ledger
//
// All mutations go through Ledger, which runs inside a caller-owned GORM transaction:
// it locks the account row, checks the result is not negative and does not exceed the
// configured cap, writes the new balance and appends a LedgerEntry. Shops use the same
// Ledger inside their own transactions, so a failed purchase rolls back the debit
// together with everything else. The audit command later checks that each balance
// equals the sum of its ledger deltas.
//
// # HTTP Endpoints
//
//   - GET  /economy/accounts/:uuid            : balances
//   - GET  /economy/accounts/:uuid/summary    : HUD summary with formatted amounts
//   - GET  /economy/accounts/:uuid/history    : ledger entries
//   - POST /economy/accounts/:uuid/add        : credit
//   - POST /economy/accounts/:uuid/subtract   : debit
//   - PUT  /economy/accounts/:uuid/balance    : overwrite
//   - POST /economy/transfers                 : player to player payment
//   - GET  /economy/top                       : leaderboard
package economy
