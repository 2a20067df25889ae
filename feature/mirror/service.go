package mirror

import (
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"sync"

	"mamoji/core/fetch"
	"mamoji/core/storage"
	"mamoji/feature/directory/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentDownloads bounds parallel image fetches per mirror run so a
// large catalog does not hammer the remote server.
const maxConcurrentDownloads = 8

// Catalog provides the emoji listing for a host. The directory feature's
// service satisfies this.
type Catalog interface {
	Catalog(ctx context.Context, host string) ([]models.Emoji, error)
}

// Failure records a single emoji image that could not be mirrored.
type Failure struct {
	Shortcode string `json:"shortcode"`
	Reason    string `json:"reason"`
}

// Report summarizes a mirror run for one host.
type Report struct {
	Host     string    `json:"host"`
	Mirrored int       `json:"mirrored"`
	Failures []Failure `json:"failures"`
}

// Service mirrors emoji images from remote servers into object storage.
type Service struct {
	catalog Catalog
	client  *fetch.Client
	store   storage.Client
	bucket  string
	logger  *zap.Logger
}

// NewService creates a new mirror service.
func NewService(catalog Catalog, client *fetch.Client, store storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		catalog: catalog,
		client:  client,
		store:   store,
		bucket:  bucket,
		logger:  logger,
	}
}

// Mirror downloads every emoji image of the host's catalog into the bucket
// under emoji/{host}/{shortcode}{ext}. Individual image failures are
// collected in the report rather than aborting the run.
func (s *Service) Mirror(ctx context.Context, host string) (*Report, error) {
	emojis, err := s.catalog.Catalog(ctx, host)
	if err != nil {
		return nil, err
	}

	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}

	var (
		mu       sync.Mutex
		mirrored int
		failures []Failure
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentDownloads)
	for _, emoji := range emojis {
		g.Go(func() error {
			if err := s.mirrorOne(gctx, host, emoji); err != nil {
				mu.Lock()
				failures = append(failures, Failure{Shortcode: emoji.Shortcode, Reason: err.Error()})
				mu.Unlock()
				s.logger.Warn("Failed to mirror emoji",
					zap.String("host", host),
					zap.String("shortcode", emoji.Shortcode),
					zap.Error(err))
				return nil
			}
			mu.Lock()
			mirrored++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(failures, func(i, j int) bool { return failures[i].Shortcode < failures[j].Shortcode })
	s.logger.Info("Mirrored emoji images",
		zap.String("host", host),
		zap.Int("mirrored", mirrored),
		zap.Int("failed", len(failures)))
	return &Report{Host: host, Mirrored: mirrored, Failures: failures}, nil
}

func (s *Service) mirrorOne(ctx context.Context, host string, emoji models.Emoji) error {
	body, contentType, err := s.client.Get(ctx, emoji.URL)
	if err != nil {
		return err
	}
	defer body.Close()

	objectName := fmt.Sprintf("emoji/%s/%s%s", host, emoji.Shortcode, extFor(contentType, emoji.URL))
	_, err = s.store.PutObject(ctx, s.bucket, objectName, body, -1, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", objectName, err)
	}
	return nil
}

func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.store.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.store.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Image streams a previously mirrored object out of storage.
func (s *Service) Image(ctx context.Context, host, file string) (io.ReadCloser, error) {
	objectName := fmt.Sprintf("emoji/%s/%s", host, file)
	return s.store.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
}

// extFor picks a file extension from the response content type, falling back
// to whatever extension the source URL carries.
func extFor(contentType, sourceURL string) string {
	switch {
	case strings.HasPrefix(contentType, "image/png"):
		return ".png"
	case strings.HasPrefix(contentType, "image/apng"):
		return ".apng"
	case strings.HasPrefix(contentType, "image/gif"):
		return ".gif"
	case strings.HasPrefix(contentType, "image/webp"):
		return ".webp"
	case strings.HasPrefix(contentType, "image/jpeg"):
		return ".jpg"
	case strings.HasPrefix(contentType, "image/svg"):
		return ".svg"
	}
	if ext := path.Ext(sourceURL); ext != "" && len(ext) <= 5 {
		return ext
	}
	return ".png"
}
