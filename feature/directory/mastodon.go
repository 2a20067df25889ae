package directory

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"mamoji/core/fetch"
)

const mastodonEmojiEndpoint = "/api/v1/custom_emojis"

type mastodonEmoji struct {
	Shortcode string  `json:"shortcode"`
	URL       string  `json:"url"`
	Category  *string `json:"category"`
}

// FetchMastodonEmojis retrieves and normalizes the Mastodon custom emoji
// listing. Mastodon supplies no tags or sensitivity, so those stay nil and
// the writer leaves the curated values alone.
func FetchMastodonEmojis(ctx context.Context, client *fetch.Client, host string) ([]RemoteEmoji, error) {
	var payload []mastodonEmoji
	if err := client.GetJSON(ctx, client.HostURL(host, mastodonEmojiEndpoint), "", &payload); err != nil {
		return nil, classifyAdapterError(err)
	}

	out := make([]RemoteEmoji, 0, len(payload))
	for i, e := range payload {
		if e.Shortcode == "" {
			return nil, &ValidationError{Reason: fmt.Sprintf("emoji %d: missing shortcode", i)}
		}
		if err := validateImageURL(e.URL); err != nil {
			return nil, &ValidationError{Reason: fmt.Sprintf("emoji %q: %v", e.Shortcode, err)}
		}
		out = append(out, RemoteEmoji{
			Shortcode: e.Shortcode,
			URL:       e.URL,
			Category:  e.Category,
		})
	}
	return out, nil
}

// classifyAdapterError maps a fetch failure onto the error taxonomy:
// a body that did not match the schema is a validation error, everything
// else (transport, timeout, bad status) is a connectivity error.
func classifyAdapterError(err error) error {
	var de *fetch.DecodeError
	if errors.As(err, &de) {
		return &ValidationError{Reason: "response did not match schema", Err: de}
	}
	return &fetch.ConnectivityError{Cause: err}
}

func validateImageURL(raw string) error {
	if raw == "" {
		return errors.New("missing image url")
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("malformed image url")
	}
	return nil
}
