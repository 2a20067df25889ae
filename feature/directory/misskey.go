package directory

import (
	"context"
	"fmt"

	"mamoji/core/fetch"
)

const misskeyEmojiEndpoint = "/api/emojis"

type misskeyEmojiList struct {
	Emojis []misskeyEmoji `json:"emojis"`
}

type misskeyEmoji struct {
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Category    *string  `json:"category"`
	Aliases     []string `json:"aliases"`
	IsSensitive *bool    `json:"isSensitive"`
}

// FetchMisskeyEmojis retrieves and normalizes the Misskey emoji listing.
// The Misskey shape carries aliases (mapped to tags) and a sensitivity flag,
// so those fields are supplied to the writer.
func FetchMisskeyEmojis(ctx context.Context, client *fetch.Client, host string) ([]RemoteEmoji, error) {
	var payload misskeyEmojiList
	if err := client.GetJSON(ctx, client.HostURL(host, misskeyEmojiEndpoint), "", &payload); err != nil {
		return nil, classifyAdapterError(err)
	}
	if payload.Emojis == nil {
		return nil, &ValidationError{Reason: "missing emojis list"}
	}

	out := make([]RemoteEmoji, 0, len(payload.Emojis))
	for i, e := range payload.Emojis {
		if e.Name == "" {
			return nil, &ValidationError{Reason: fmt.Sprintf("emoji %d: missing name", i)}
		}
		if err := validateImageURL(e.URL); err != nil {
			return nil, &ValidationError{Reason: fmt.Sprintf("emoji %q: %v", e.Name, err)}
		}
		if e.Aliases == nil {
			return nil, &ValidationError{Reason: fmt.Sprintf("emoji %q: missing aliases", e.Name)}
		}
		out = append(out, RemoteEmoji{
			Shortcode: e.Name,
			URL:       e.URL,
			Category:  e.Category,
			Tags:      dedupeTags(e.Aliases),
			Sensitive: e.IsSensitive,
		})
	}
	return out, nil
}

// dedupeTags removes duplicates and empty entries, preserving first-seen
// order. Always returns a non-nil slice so the writer knows tags were
// supplied.
func dedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
