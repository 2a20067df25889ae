// Package config provides configuration management for mamoji.
//
// It utilizes Viper for loading configuration from environment variables and
// a .env file loaded via godotenv.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: catalog database connection (sqlite file or MySQL)
//   - Storage: S3/MinIO credentials and bucket for the emoji mirror
//   - Federation: outbound request timeouts and user agent
//   - Log: logging level and format
//
// Defaults are declared as `default` struct tags on each partial config and
// registered in Viper through reflection, so every key is overridable from
// the environment (e.g. DATABASE_DRIVER, FEDERATION_TIMEOUT_SECONDS).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
