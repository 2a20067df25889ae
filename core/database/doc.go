// Package database handles catalog database connections and migrations.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) that
// selects the configured driver and applies connection pool and timeout
// settings.
//
// # Drivers
//
// Two drivers are supported:
//   - sqlite (default): a local file, suitable for the single-operator
//     deployment this application targets. Uses the pure-Go glebarez driver,
//     so no cgo is required.
//   - mysql: a TCP connection with connect/read/write timeouts baked into
//     the DSN.
//
// # Migrations
//
// The schema is owned by this application and created through Migrate, a thin
// wrapper over GORM AutoMigrate invoked at process start with the catalog
// models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//	err = database.Migrate(db, &models.Server{}, &models.Emoji{})
package database
