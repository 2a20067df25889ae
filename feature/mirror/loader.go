package mirror

import (
	"mamoji/core/fetch"
	"mamoji/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
	enabled bool
}

// NewFeature creates the mirror feature. A nil storage client disables it.
func NewFeature(catalog Catalog, client *fetch.Client, store storage.Client, bucket string, logger *zap.Logger) *Feature {
	if store == nil {
		return &Feature{enabled: false}
	}
	svc := NewService(catalog, client, store, bucket, logger)
	return &Feature{handler: NewHandler(svc, logger), enabled: true}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "mirror"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
