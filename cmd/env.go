package cmd

import (
	"mamoji/core/config"
	"mamoji/core/database"
	"mamoji/core/fetch"
	"mamoji/core/logger"

	authorModels "mamoji/feature/author/models"
	directoryModels "mamoji/feature/directory/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// env bundles the shared dependencies of the one-shot commands.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	client *fetch.Client
}

// models lists every persisted type for migration.
func models() []any {
	return []any{
		&directoryModels.Server{},
		&directoryModels.Emoji{},
		&authorModels.Author{},
	}
}

// newEnv loads configuration and connects the shared dependencies. The
// one-shot commands (sync, author, mirror) all start here.
func newEnv() (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db, models()...); err != nil {
		return nil, err
	}

	return &env{
		cfg:    cfg,
		logger: logg,
		db:     db,
		client: fetch.NewClient(cfg.Federation),
	}, nil
}
