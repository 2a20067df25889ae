package directory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mamoji/feature/directory/models"

	"gorm.io/gorm"
)

// Store is the repository for servers and their emoji. It is constructed
// once at process start and passed to every component that needs durable
// state; there is no package-level database handle.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on top of an open GORM connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Server returns the stored row for a host, or nil when the host is not
// registered.
func (s *Store) Server(ctx context.Context, host string) (*models.Server, error) {
	var srv models.Server
	err := s.db.WithContext(ctx).Where("url = ?", host).First(&srv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load server %s: %w", host, err)
	}
	return &srv, nil
}

// CreateServer inserts a newly discovered server.
func (s *Store) CreateServer(ctx context.Context, srv *models.Server) error {
	if err := s.db.WithContext(ctx).Create(srv).Error; err != nil {
		return fmt.Errorf("failed to create server %s: %w", srv.URL, err)
	}
	return nil
}

// DeleteServer removes a server and all of its emoji. The cascade is
// explicit so it holds on SQLite files without foreign key enforcement.
func (s *Store) DeleteServer(ctx context.Context, host string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("server_url = ?", host).Delete(&models.Emoji{}).Error; err != nil {
			return fmt.Errorf("failed to delete emojis of %s: %w", host, err)
		}
		if err := tx.Where("url = ?", host).Delete(&models.Server{}).Error; err != nil {
			return fmt.Errorf("failed to delete server %s: %w", host, err)
		}
		return nil
	})
}

// ListServers returns every registered server with its emoji count.
func (s *Store) ListServers(ctx context.Context) ([]models.ServerOverview, error) {
	var out []models.ServerOverview
	err := s.db.WithContext(ctx).
		Model(&models.Server{}).
		Select("servers.url, servers.name, servers.software, servers.synced_at, count(emojis.shortcode) as emoji_count").
		Joins("LEFT JOIN emojis ON emojis.server_url = servers.url").
		Group("servers.url").
		Order("servers.url asc").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}
	return out, nil
}

// CountEmojis returns the number of stored emoji for a host.
func (s *Store) CountEmojis(ctx context.Context, host string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.Emoji{}).
		Where("server_url = ?", host).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count emojis of %s: %w", host, err)
	}
	return n, nil
}

// ListEmojis returns the full stored catalog for a host, sorted by
// shortcode ascending.
func (s *Store) ListEmojis(ctx context.Context, host string) ([]models.Emoji, error) {
	var out []models.Emoji
	err := s.db.WithContext(ctx).
		Where("server_url = ?", host).
		Order("shortcode asc").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list emojis of %s: %w", host, err)
	}
	return out, nil
}

// ListCopyStatus returns the public copy-permission listing for a host,
// sorted by shortcode ascending.
func (s *Store) ListCopyStatus(ctx context.Context, host string) ([]models.CopyStatus, error) {
	var out []models.CopyStatus
	err := s.db.WithContext(ctx).
		Model(&models.Emoji{}).
		Select("shortcode, copyable, author_handle").
		Where("server_url = ?", host).
		Order("shortcode asc").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list copy status of %s: %w", host, err)
	}
	return out, nil
}

// UpsertEmoji applies one normalized remote emoji as an explicit two-branch
// operation: absent rows are created with curated defaults, present rows get
// only the fields the adapter supplied (URL and category always; tags and
// sensitivity only when the family carries them). Curated values are never
// clobbered.
func (s *Store) UpsertEmoji(ctx context.Context, host string, in RemoteEmoji) error {
	var existing models.Emoji
	err := s.db.WithContext(ctx).
		Where("server_url = ? AND shortcode = ?", host, in.Shortcode).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		tags := in.Tags
		if tags == nil {
			tags = []string{}
		}
		emoji := models.Emoji{
			ServerURL: host,
			Shortcode: in.Shortcode,
			URL:       in.URL,
			Category:  in.Category,
			Tags:      tags,
			Sensitive: in.Sensitive != nil && *in.Sensitive,
			Copyable:  true,
		}
		if err := s.db.WithContext(ctx).Create(&emoji).Error; err != nil {
			return fmt.Errorf("failed to create emoji %s:%s: %w", host, in.Shortcode, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load emoji %s:%s: %w", host, in.Shortcode, err)
	}

	existing.URL = in.URL
	existing.Category = in.Category
	cols := []string{"url", "category"}
	if in.Tags != nil {
		existing.Tags = in.Tags
		cols = append(cols, "tags")
	}
	if in.Sensitive != nil {
		existing.Sensitive = *in.Sensitive
		cols = append(cols, "sensitive")
	}

	if err := s.db.WithContext(ctx).Model(&existing).Select(cols).Updates(&existing).Error; err != nil {
		return fmt.Errorf("failed to update emoji %s:%s: %w", host, in.Shortcode, err)
	}
	return nil
}

// TouchSynced records a successful reconciliation pass for a host.
func (s *Store) TouchSynced(ctx context.Context, host string, t time.Time) error {
	err := s.db.WithContext(ctx).
		Model(&models.Server{}).
		Where("url = ?", host).
		Update("synced_at", t).Error
	if err != nil {
		return fmt.Errorf("failed to update sync time of %s: %w", host, err)
	}
	return nil
}

// Annotation is the set of operator-curated values applied to emoji.
// Nil Tags or Note leave the stored value untouched; AuthorHandle nil
// clears the attribution.
type Annotation struct {
	Copyable     bool
	Sensitive    bool
	AuthorHandle *string
	Tags         []string
	Note         *string
}

// UpdateCurated applies an annotation to the named emoji of a host,
// one row at a time.
func (s *Store) UpdateCurated(ctx context.Context, host string, shortcodes []string, ann Annotation) error {
	for _, code := range shortcodes {
		emoji := models.Emoji{
			ServerURL:    host,
			Shortcode:    code,
			Copyable:     ann.Copyable,
			Sensitive:    ann.Sensitive,
			AuthorHandle: ann.AuthorHandle,
		}
		cols := []string{"copyable", "sensitive", "author_handle"}
		if ann.Tags != nil {
			emoji.Tags = dedupeTags(ann.Tags)
			cols = append(cols, "tags")
		}
		if ann.Note != nil {
			emoji.Note = *ann.Note
			cols = append(cols, "note")
		}

		res := s.db.WithContext(ctx).Model(&emoji).Select(cols).Updates(&emoji)
		if res.Error != nil {
			return fmt.Errorf("failed to annotate emoji %s:%s: %w", host, code, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("emoji %s:%s does not exist", host, code)
		}
	}
	return nil
}
