// Package config provides configuration management for roster-sync.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file loaded via godotenv.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP admin server settings (port, API key)
//   - Database: MySQL connection details for reference units
//   - Storage: S3/MinIO credentials and the CSV bucket
//   - Remote: repository publisher credentials and target
//   - Roster: reference source selection and fallback policy
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
