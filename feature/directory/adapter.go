package directory

import (
	"context"

	"mamoji/core/fetch"
)

// Family identifies the protocol dialect a host speaks for its emoji API.
type Family string

const (
	FamilyMastodon Family = "mastodon"
	FamilyMisskey  Family = "misskey"
)

// RemoteEmoji is the family-independent shape every adapter normalizes to.
// Tags and Sensitive are nil when the family does not supply them; the
// reconciliation writer only touches fields the adapter supplied.
type RemoteEmoji struct {
	Shortcode string
	URL       string
	Category  *string
	Tags      []string
	Sensitive *bool
}

// FetchFunc fetches and normalizes the native emoji listing of one family.
type FetchFunc func(ctx context.Context, client *fetch.Client, host string) ([]RemoteEmoji, error)

// adapters maps each family to its fetch implementation. Adding a family
// means registering one adapter and one allow-list entry; existing adapters
// are never modified.
var adapters = map[Family]FetchFunc{}

// RegisterAdapter binds a family tag to its adapter implementation.
func RegisterAdapter(family Family, fn FetchFunc) {
	adapters[family] = fn
}

// AdapterFor returns the adapter registered for a family.
func AdapterFor(family Family) (FetchFunc, bool) {
	fn, ok := adapters[family]
	return fn, ok
}

func init() {
	RegisterAdapter(FamilyMastodon, FetchMastodonEmojis)
	RegisterAdapter(FamilyMisskey, FetchMisskeyEmojis)
}
