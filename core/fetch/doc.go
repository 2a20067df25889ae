// Package fetch provides the outbound HTTP client for federation requests.
//
// All remote lookups (nodeinfo discovery, emoji listings, webfinger, actor
// profiles, image downloads) go through this client, which enforces strict
// timeouts on connection setup, TLS handshake, response headers and the
// overall request. A hung remote server therefore fails a single sync attempt
// instead of blocking it forever.
//
// # Error Classification
//
// The client deliberately returns low-level errors:
//   - *StatusError for non-2xx responses (callers inspect the code, e.g. the
//     actor resolver distinguishes 404 from 401)
//   - plain errors for transport failures and malformed JSON bodies
//
// Mapping these onto the user-facing error taxonomy is the caller's job; see
// feature/directory and feature/author.
package fetch
