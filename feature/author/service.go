package author

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"mamoji/core/fetch"
	"mamoji/feature/author/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const activityJSON = "application/activity+json"

type webfingerDocument struct {
	Links []webfingerLink `json:"links"`
}

type webfingerLink struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
	Type string `json:"type"`
}

type actorDocument struct {
	Name string `json:"name"`
	Icon struct {
		URL string `json:"url"`
	} `json:"icon"`
}

// Service resolves federated handles into cached author profiles.
type Service struct {
	db     *gorm.DB
	client *fetch.Client
	logger *zap.Logger
}

// NewService creates a new author service.
func NewService(db *gorm.DB, client *fetch.Client, logger *zap.Logger) *Service {
	return &Service{db: db, client: client, logger: logger}
}

// Resolve returns the author for a handle, performing the webfinger/actor
// walk on first sight. Cached handles are returned without network access
// and are never refreshed.
func (s *Service) Resolve(ctx context.Context, handle string) (*models.Author, error) {
	name, host, ok := splitHandle(handle)
	if !ok {
		return nil, errInvalidHandle(handle)
	}

	var cached models.Author
	err := s.db.WithContext(ctx).Where("handle = ?", handle).First(&cached).Error
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load author %s: %w", handle, err)
	}

	profileURL, err := s.lookupProfileLink(ctx, host, handle)
	if err != nil {
		return nil, err
	}

	var actor actorDocument
	if err := s.client.GetJSON(ctx, profileURL, activityJSON, &actor); err != nil {
		var status *fetch.StatusError
		if errors.As(err, &status) {
			switch status.Code {
			case 404:
				return nil, errProfileNotFound(handle)
			case 401:
				return nil, errProfileDenied(handle)
			}
		}
		return nil, &fetch.ConnectivityError{Cause: err}
	}

	displayName := actor.Name
	if displayName == "" {
		displayName = name
	}

	author := models.Author{Handle: handle, Name: displayName, AvatarURL: actor.Icon.URL}
	if err := s.db.WithContext(ctx).Create(&author).Error; err != nil {
		return nil, fmt.Errorf("failed to store author %s: %w", handle, err)
	}
	s.logger.Info("Resolved author",
		zap.String("handle", handle),
		zap.String("name", displayName))
	return &author, nil
}

// ResolveHandle implements the directory feature's AuthorResolver contract.
func (s *Service) ResolveHandle(ctx context.Context, handle string) error {
	_, err := s.Resolve(ctx, handle)
	return err
}

// Author returns a cached author, or nil when the handle was never resolved.
func (s *Service) Author(ctx context.Context, handle string) (*models.Author, error) {
	var author models.Author
	err := s.db.WithContext(ctx).Where("handle = ?", handle).First(&author).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load author %s: %w", handle, err)
	}
	return &author, nil
}

// lookupProfileLink resolves a handle through webfinger and returns the
// canonical ("self") profile URL.
func (s *Service) lookupProfileLink(ctx context.Context, host, handle string) (string, error) {
	wfURL := s.client.HostURL(host, "/.well-known/webfinger?resource=acct:"+url.QueryEscape(handle))

	var wf webfingerDocument
	if err := s.client.GetJSON(ctx, wfURL, "", &wf); err != nil {
		var status *fetch.StatusError
		if errors.As(err, &status) && status.Code == 404 {
			return "", errAccountNotFound(handle)
		}
		return "", &fetch.ConnectivityError{Cause: err}
	}

	// Prefer the activity+json self link; fall back to any self link.
	var href string
	for _, l := range wf.Links {
		if l.Rel != "self" || l.Href == "" {
			continue
		}
		if strings.Contains(l.Type, "activity+json") {
			return l.Href, nil
		}
		if href == "" {
			href = l.Href
		}
	}
	if href == "" {
		return "", errNoProfileLink(handle)
	}
	return href, nil
}

// splitHandle parses "name@host" with exactly one separator.
func splitHandle(handle string) (name, host string, ok bool) {
	parts := strings.Split(handle, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
