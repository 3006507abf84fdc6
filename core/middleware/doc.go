// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key header or api_key query). The game server
//     is the only client, so every economy route sits behind it.
//   - rayid: tags every request with a ray id (reusing the caller's X-Ray-ID when it
//     is a UUID) and echoes it back for log correlation.
//
// These are registered globally in the start command.
package middleware
