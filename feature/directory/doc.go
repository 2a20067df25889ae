// Package directory implements the emoji directory synchronization and
// caching engine.
//
// A sync request for a host enters the freshness cache gate: when the stored
// catalog is non-empty and younger than 24 hours it is served without any
// network access. On a miss, the engine walks the host's nodeinfo chain to
// classify it (first sight only; the family is sticky afterwards), fetches
// the emoji listing through the family's adapter, rejects sets with
// duplicated shortcodes, and reconciles the result into the store without
// clobbering operator-curated metadata.
//
// # Components
//
//   - Discover: two-hop nodeinfo walk mapping software names through a fixed
//     allow-list onto backend families (mastodon; misskey, which also covers
//     cherrypick).
//   - Adapters: a registered map from family tag to fetch function. Adding a
//     family means one adapter plus one allow-list entry.
//   - FindDuplicateShortcodes: the duplicate validator. A collision deletes
//     the whole server row; a partially synced host is worse than no host.
//   - Store: the repository. Upserts are explicit two-branch operations so
//     curated fields are only ever written by the operator.
//   - Service: orchestration, per-host singleflight, and the curated
//     annotation path (which resolves author handles first).
//
// # Failure Policy
//
// Typed errors (DiscoveryError, ValidationError, DuplicateKeyError, plus
// fetch.ConnectivityError) surface to the caller. The one exception: an
// unreachable emoji endpoint degrades to the stored catalog instead of
// failing the request, so a single dead endpoint cannot block access.
//
// # HTTP Endpoints
//
//   - GET    /servers                : list registered servers
//   - POST   /servers/:host         : register + initial sync
//   - GET    /servers/:host/emojis  : catalog through the cache gate
//   - PATCH  /servers/:host/emojis  : annotate curated fields
//   - GET    /api/:host             : public copy-permission listing
package directory
