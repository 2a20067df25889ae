// Package author implements the actor resolver, an independent sync path
// that turns a federated handle (name@host) into a cached profile.
//
// Resolution is a two-hop walk: webfinger yields the canonical ("self")
// profile link, and the actor document fetched from it (with
// Accept: application/activity+json) yields the display name and avatar.
// Profiles are cached once per distinct handle and never refreshed.
//
// # Failure Conditions
//
// Each condition maps to its own ResolveError: invalid handle, account not
// found (webfinger 404), missing self link, profile not found (404), and
// profile access denied (401). The 401 case covers servers requiring
// authenticated fetches; there is deliberately no credentialed retry.
//
// # HTTP Endpoints
//
//   - POST /authors/:handle : resolve and cache a handle
//   - GET  /authors/:handle : read the cached profile
package author
