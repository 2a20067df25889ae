package directory_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mamoji/feature/directory"

	"github.com/stretchr/testify/assert"
)

func fakeMisskeyEmojis(t *testing.T, payload string) string {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/emojis", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, payload)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return strings.TrimPrefix(srv.URL, "http://")
}

func TestFetchMisskeyEmojis(t *testing.T) {
	host := fakeMisskeyEmojis(t, `{"emojis":[
		{"name":"neko","url":"https://files.mi.example/neko.webp","category":"animals","aliases":["cat","neko","cat",""],"isSensitive":false},
		{"name":"lewd","url":"https://files.mi.example/lewd.webp","category":null,"aliases":[],"isSensitive":true}
	]}`)

	emojis, err := directory.FetchMisskeyEmojis(context.Background(), newTestClient(), host)
	assert.NoError(t, err)
	assert.Len(t, emojis, 2)

	assert.Equal(t, "neko", emojis[0].Shortcode)
	// Aliases are deduplicated, empties dropped, first-seen order kept.
	assert.Equal(t, []string{"cat", "neko"}, emojis[0].Tags)
	if assert.NotNil(t, emojis[0].Sensitive) {
		assert.False(t, *emojis[0].Sensitive)
	}

	// Empty aliases still mean "tags were supplied".
	assert.NotNil(t, emojis[1].Tags)
	assert.Empty(t, emojis[1].Tags)
	if assert.NotNil(t, emojis[1].Sensitive) {
		assert.True(t, *emojis[1].Sensitive)
	}
	assert.Nil(t, emojis[1].Category)
}

func TestFetchMisskeyEmojisMissingList(t *testing.T) {
	host := fakeMisskeyEmojis(t, `{"something":"else"}`)

	_, err := directory.FetchMisskeyEmojis(context.Background(), newTestClient(), host)

	var validationErr *directory.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "missing emojis list")
}

func TestFetchMisskeyEmojisMissingAliases(t *testing.T) {
	host := fakeMisskeyEmojis(t, `{"emojis":[{"name":"neko","url":"https://files.mi.example/neko.webp"}]}`)

	_, err := directory.FetchMisskeyEmojis(context.Background(), newTestClient(), host)

	var validationErr *directory.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "missing aliases")
}

func TestFetchMisskeyEmojisMissingName(t *testing.T) {
	host := fakeMisskeyEmojis(t, `{"emojis":[{"name":"","url":"https://files.mi.example/x.webp","aliases":[]}]}`)

	_, err := directory.FetchMisskeyEmojis(context.Background(), newTestClient(), host)

	var validationErr *directory.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
