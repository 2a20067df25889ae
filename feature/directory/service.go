package directory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mamoji/core/fetch"
	"mamoji/feature/directory/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// FreshnessWindow is the maximum age of a stored catalog before a sync
// request forces a remote refresh. The sole tunable of the cache gate.
const FreshnessWindow = 24 * time.Hour

// AuthorResolver resolves a federated handle before it is attached to emoji
// as an attribution. Implemented by the author feature.
type AuthorResolver interface {
	ResolveHandle(ctx context.Context, handle string) error
}

// Service is the directory synchronization and caching engine.
type Service struct {
	store   *Store
	client  *fetch.Client
	authors AuthorResolver
	logger  *zap.Logger

	// group serializes concurrent syncs for the same host; two catalog
	// requests racing on one host share a single refresh.
	group singleflight.Group

	// now is the wall clock; injected for freshness tests.
	now func() time.Time
}

// NewService creates the sync engine. authors may be nil, in which case
// annotations cannot carry an author handle.
func NewService(store *Store, client *fetch.Client, authors AuthorResolver, logger *zap.Logger) *Service {
	return &Service{
		store:   store,
		client:  client,
		authors: authors,
		logger:  logger,
		now:     time.Now,
	}
}

// Catalog returns the emoji catalog for a host, sorted by shortcode.
// The freshness cache gate decides whether the stored catalog is served
// as-is or a remote refresh runs first. Unknown hosts are discovered and
// registered on the way.
func (s *Service) Catalog(ctx context.Context, host string) ([]models.Emoji, error) {
	v, err, _ := s.group.Do(host, func() (any, error) {
		return s.catalog(ctx, host)
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Emoji), nil
}

func (s *Service) catalog(ctx context.Context, host string) ([]models.Emoji, error) {
	srv, err := s.store.Server(ctx, host)
	if err != nil {
		return nil, err
	}

	if srv == nil {
		// First sight of this host: classify it. The server row is only
		// created after discovery succeeds, and its family is fixed from
		// here on.
		info, err := Discover(ctx, s.client, host)
		if err != nil {
			return nil, err
		}
		srv = &models.Server{URL: host, Name: info.Name, Software: string(info.Family)}
		if err := s.store.CreateServer(ctx, srv); err != nil {
			return nil, err
		}
		s.logger.Info("Registered server",
			zap.String("host", host),
			zap.String("software", srv.Software))
		return s.refresh(ctx, srv)
	}

	count, err := s.store.CountEmojis(ctx, host)
	if err != nil {
		return nil, err
	}
	if count > 0 && s.now().Sub(srv.SyncedAt) <= FreshnessWindow {
		return s.store.ListEmojis(ctx, host)
	}

	return s.refresh(ctx, srv)
}

// refresh runs the remote half of a sync: adapter fetch, duplicate
// validation, sequential reconciliation writes, sync timestamp bump,
// and a re-read of the merged catalog.
func (s *Service) refresh(ctx context.Context, srv *models.Server) ([]models.Emoji, error) {
	fn, ok := AdapterFor(Family(srv.Software))
	if !ok {
		return nil, fmt.Errorf("no adapter registered for family %s", srv.Software)
	}

	emojis, err := fn(ctx, s.client, srv.URL)
	if err != nil {
		var ce *fetch.ConnectivityError
		if errors.As(err, &ce) {
			// An unreachable emoji endpoint must not block catalog
			// access; serve whatever is stored.
			s.logger.Warn("Emoji endpoint unreachable, serving stored catalog",
				zap.String("host", srv.URL),
				zap.Error(err))
			return s.store.ListEmojis(ctx, srv.URL)
		}
		return nil, err
	}

	if dups := FindDuplicateShortcodes(emojis); len(dups) > 0 {
		// Duplicate shortcodes make the composite key unsatisfiable; a
		// partially synced host is worse than no host.
		if derr := s.store.DeleteServer(ctx, srv.URL); derr != nil {
			return nil, derr
		}
		s.logger.Warn("Deleted server with duplicated shortcodes",
			zap.String("host", srv.URL),
			zap.Strings("shortcodes", dups))
		return nil, &DuplicateKeyError{Host: srv.URL, Shortcodes: dups}
	}

	// Sequential upserts: concurrent writes to the same (host, shortcode)
	// key could race on curated fields.
	for _, e := range emojis {
		if err := s.store.UpsertEmoji(ctx, srv.URL, e); err != nil {
			return nil, err
		}
	}

	if err := s.store.TouchSynced(ctx, srv.URL, s.now()); err != nil {
		return nil, err
	}
	s.logger.Info("Synced server",
		zap.String("host", srv.URL),
		zap.Int("emojis", len(emojis)))

	return s.store.ListEmojis(ctx, srv.URL)
}

// Register discovers a host and runs its initial sync. Registering an
// already-known host behaves like a catalog request.
func (s *Service) Register(ctx context.Context, host string) ([]models.Emoji, error) {
	return s.Catalog(ctx, host)
}

// Servers lists every registered server with its emoji count.
func (s *Service) Servers(ctx context.Context) ([]models.ServerOverview, error) {
	return s.store.ListServers(ctx)
}

// CopyStatus returns the public copy-permission listing for a host.
func (s *Service) CopyStatus(ctx context.Context, host string) ([]models.CopyStatus, error) {
	return s.store.ListCopyStatus(ctx, host)
}

// Annotate applies operator-curated metadata to the named emoji. When an
// author handle is present it is resolved (and cached) first; resolution
// failures surface to the caller and nothing is written.
func (s *Service) Annotate(ctx context.Context, host string, shortcodes []string, ann Annotation) error {
	if len(shortcodes) == 0 {
		return errors.New("no emoji selected")
	}
	if ann.AuthorHandle != nil {
		if s.authors == nil {
			return errors.New("author resolution is not available")
		}
		if err := s.authors.ResolveHandle(ctx, *ann.AuthorHandle); err != nil {
			return err
		}
	}
	return s.store.UpdateCurated(ctx, host, shortcodes, ann)
}
