// Package server holds the HTTP server configuration and error mapping helpers.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure and the conventions every feature handler
// uses to turn service errors into HTTP responses.
//
// # Errors
//
// Feature services declare their domain errors as *fiber.Error sentinels
// (for example fiber.NewError(fiber.StatusConflict, "insufficient funds")).
// StatusOf unwraps an error chain and returns the sentinel's status code, or 500
// for anything unknown. Respond writes the {"error": "..."} body used by all handlers.
package server
