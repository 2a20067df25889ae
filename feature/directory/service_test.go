package directory

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"mamoji/core/database"
	"mamoji/core/fetch"
	"mamoji/feature/directory/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeMastodon is a minimal Mastodon-compatible instance: it serves the
// nodeinfo chain and a custom emoji listing, and counts emoji requests.
type fakeMastodon struct {
	srv        *httptest.Server
	host       string
	emojisJSON atomic.Value
	emojiHits  atomic.Int64
	emojiCode  atomic.Int64
}

func newFakeMastodon(t *testing.T, emojisJSON string) *fakeMastodon {
	t.Helper()
	f := &fakeMastodon{}
	f.emojisJSON.Store(emojisJSON)
	f.emojiCode.Store(http.StatusOK)

	mux := http.NewServeMux()
	mux.HandleFunc("/.well-known/nodeinfo", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"links":[{"rel":"http://nodeinfo.diaspora.software/ns/schema/2.0","href":"%s/nodeinfo/2.0"}]}`, f.srv.URL)
	})
	mux.HandleFunc("/nodeinfo/2.0", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"software":{"name":"mastodon"},"metadata":{"nodeName":"Example Social"}}`)
	})
	mux.HandleFunc("/api/v1/custom_emojis", func(w http.ResponseWriter, r *http.Request) {
		f.emojiHits.Add(1)
		if code := int(f.emojiCode.Load()); code != http.StatusOK {
			w.WriteHeader(code)
			return
		}
		fmt.Fprint(w, f.emojisJSON.Load().(string))
	})

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	f.host = strings.TrimPrefix(f.srv.URL, "http://")
	return f
}

type recordingResolver struct {
	handles []string
	err     error
}

func (r *recordingResolver) ResolveHandle(ctx context.Context, handle string) error {
	if r.err != nil {
		return r.err
	}
	r.handles = append(r.handles, handle)
	return nil
}

func newTestService(t *testing.T, authors AuthorResolver) *Service {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Path: ":memory:"})
	assert.NoError(t, err)
	assert.NoError(t, database.Migrate(db, &models.Server{}, &models.Emoji{}))

	client := fetch.NewClient(fetch.Config{
		TimeoutSeconds: 5,
		UserAgent:      "mamoji-test/1.0",
		Insecure:       true,
	})
	return NewService(NewStore(db), client, authors, zap.NewNop())
}

func TestCatalogRegistersUnknownHost(t *testing.T) {
	remote := newFakeMastodon(t, `[
		{"shortcode":"wave","url":"https://files.example.social/wave.png","category":null},
		{"shortcode":"blob","url":"https://files.example.social/blob.png","category":"blobs"}
	]`)
	svc := newTestService(t, nil)
	ctx := context.Background()

	emojis, err := svc.Catalog(ctx, remote.host)
	assert.NoError(t, err)
	if assert.Len(t, emojis, 2) {
		// Sorted by shortcode.
		assert.Equal(t, "blob", emojis[0].Shortcode)
		assert.Equal(t, "wave", emojis[1].Shortcode)

		wave := emojis[1]
		assert.Nil(t, wave.Category)
		assert.True(t, wave.Copyable)
		assert.False(t, wave.Sensitive)
		assert.NotNil(t, wave.Tags)
		assert.Empty(t, wave.Tags)
	}

	srv, err := svc.store.Server(ctx, remote.host)
	assert.NoError(t, err)
	if assert.NotNil(t, srv) {
		assert.Equal(t, "Example Social", srv.Name)
		assert.Equal(t, "mastodon", srv.Software)
		assert.False(t, srv.SyncedAt.IsZero())
	}
	assert.Equal(t, int64(1), remote.emojiHits.Load())
}

func TestCatalogFreshnessWindow(t *testing.T) {
	remote := newFakeMastodon(t, `[{"shortcode":"wave","url":"https://files.example.social/wave.png"}]`)
	svc := newTestService(t, nil)
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	_, err := svc.Catalog(ctx, remote.host)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), remote.emojiHits.Load())

	// Just inside the window: served from storage, no remote request.
	svc.now = func() time.Time { return base.Add(FreshnessWindow - time.Minute) }
	emojis, err := svc.Catalog(ctx, remote.host)
	assert.NoError(t, err)
	assert.Len(t, emojis, 1)
	assert.Equal(t, int64(1), remote.emojiHits.Load())

	// Just past the window: the remote is consulted again.
	svc.now = func() time.Time { return base.Add(FreshnessWindow + time.Minute) }
	_, err = svc.Catalog(ctx, remote.host)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), remote.emojiHits.Load())
}

func TestCatalogRefreshesEmptyCatalog(t *testing.T) {
	remote := newFakeMastodon(t, `[]`)
	svc := newTestService(t, nil)
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	_, err := svc.Catalog(ctx, remote.host)
	assert.NoError(t, err)

	// Zero stored emoji always refresh, even inside the window.
	svc.now = func() time.Time { return base.Add(time.Minute) }
	_, err = svc.Catalog(ctx, remote.host)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), remote.emojiHits.Load())
}

func TestCatalogDuplicateShortcodesDeletesServer(t *testing.T) {
	remote := newFakeMastodon(t, `[
		{"shortcode":"blob","url":"https://files.example.social/blob1.png"},
		{"shortcode":"blob","url":"https://files.example.social/blob2.png"}
	]`)
	svc := newTestService(t, nil)
	ctx := context.Background()

	_, err := svc.Catalog(ctx, remote.host)

	var dupErr *DuplicateKeyError
	assert.ErrorAs(t, err, &dupErr)
	assert.Equal(t, []string{"blob"}, dupErr.Shortcodes)
	assert.Contains(t, err.Error(), "duplicated shortcodes: blob")

	// The server row did not survive the failed registration.
	srv, err := svc.store.Server(ctx, remote.host)
	assert.NoError(t, err)
	assert.Nil(t, srv)
}

func TestCatalogServesStoredOnUnreachableEndpoint(t *testing.T) {
	remote := newFakeMastodon(t, `[{"shortcode":"wave","url":"https://files.example.social/wave.png"}]`)
	svc := newTestService(t, nil)
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	_, err := svc.Catalog(ctx, remote.host)
	assert.NoError(t, err)

	// The emoji endpoint starts failing; a stale catalog request degrades to
	// the stored catalog instead of erroring.
	remote.emojiCode.Store(http.StatusInternalServerError)
	svc.now = func() time.Time { return base.Add(FreshnessWindow + time.Hour) }

	emojis, err := svc.Catalog(ctx, remote.host)
	assert.NoError(t, err)
	assert.Len(t, emojis, 1)
	assert.Equal(t, "wave", emojis[0].Shortcode)
}

func TestCatalogStaleRefreshPreservesCuratedFields(t *testing.T) {
	remote := newFakeMastodon(t, `[{"shortcode":"wave","url":"https://files.example.social/wave.png","category":"gestures"}]`)
	svc := newTestService(t, &recordingResolver{})
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	_, err := svc.Catalog(ctx, remote.host)
	assert.NoError(t, err)

	handle := "alice@example.social"
	err = svc.Annotate(ctx, remote.host, []string{"wave"}, Annotation{
		Copyable:     false,
		AuthorHandle: &handle,
		Tags:         []string{"greeting"},
	})
	assert.NoError(t, err)

	// The remote moves the image; the stale refresh must keep the curation.
	remote.emojisJSON.Store(`[{"shortcode":"wave","url":"https://files.example.social/wave-v2.png","category":"gestures"}]`)
	svc.now = func() time.Time { return base.Add(FreshnessWindow + time.Hour) }

	emojis, err := svc.Catalog(ctx, remote.host)
	assert.NoError(t, err)
	if assert.Len(t, emojis, 1) {
		assert.Equal(t, "https://files.example.social/wave-v2.png", emojis[0].URL)
		assert.False(t, emojis[0].Copyable)
		assert.Equal(t, []string{"greeting"}, emojis[0].Tags)
		if assert.NotNil(t, emojis[0].AuthorHandle) {
			assert.Equal(t, handle, *emojis[0].AuthorHandle)
		}
	}
}

func TestAnnotateResolvesAuthorFirst(t *testing.T) {
	remote := newFakeMastodon(t, `[{"shortcode":"wave","url":"https://files.example.social/wave.png"}]`)
	resolver := &recordingResolver{}
	svc := newTestService(t, resolver)
	ctx := context.Background()

	_, err := svc.Catalog(ctx, remote.host)
	assert.NoError(t, err)

	handle := "alice@example.social"
	err = svc.Annotate(ctx, remote.host, []string{"wave"}, Annotation{
		Copyable:     true,
		AuthorHandle: &handle,
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{handle}, resolver.handles)
}

func TestAnnotateFailsOnUnresolvableAuthor(t *testing.T) {
	remote := newFakeMastodon(t, `[{"shortcode":"wave","url":"https://files.example.social/wave.png"}]`)
	resolver := &recordingResolver{err: errors.New("account does not exist")}
	svc := newTestService(t, resolver)
	ctx := context.Background()

	_, err := svc.Catalog(ctx, remote.host)
	assert.NoError(t, err)

	handle := "ghost@example.social"
	err = svc.Annotate(ctx, remote.host, []string{"wave"}, Annotation{
		Copyable:     false,
		AuthorHandle: &handle,
	})
	assert.Error(t, err)

	// Nothing was written.
	emojis, listErr := svc.store.ListEmojis(ctx, remote.host)
	assert.NoError(t, listErr)
	if assert.Len(t, emojis, 1) {
		assert.True(t, emojis[0].Copyable)
		assert.Nil(t, emojis[0].AuthorHandle)
	}
}

func TestAnnotateRequiresSelection(t *testing.T) {
	svc := newTestService(t, nil)

	err := svc.Annotate(context.Background(), "example.social", nil, Annotation{Copyable: true})
	assert.Error(t, err)
}

func TestRegisterKnownHostActsLikeCatalog(t *testing.T) {
	remote := newFakeMastodon(t, `[{"shortcode":"wave","url":"https://files.example.social/wave.png"}]`)
	svc := newTestService(t, nil)
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	_, err := svc.Register(ctx, remote.host)
	assert.NoError(t, err)

	// Registering again inside the window is a cache hit, not a re-sync.
	svc.now = func() time.Time { return base.Add(time.Hour) }
	emojis, err := svc.Register(ctx, remote.host)
	assert.NoError(t, err)
	assert.Len(t, emojis, 1)
	assert.Equal(t, int64(1), remote.emojiHits.Load())
}
