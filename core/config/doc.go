// Package config provides configuration management for the uploader.
//
// It utilizes Viper for loading configuration from an optional config.yaml,
// a .env file and environment variables. Defaults come from the `default`
// struct tags of each section.
//
// # Configuration Structure
//
//   - Server: HTTP server settings (port, API key)
//   - Storage: endpoint, credentials, bucket, folder prefix, ACL, API version
//   - Log: Logging level and format
//
// Environment variables use the section as prefix, e.g. STORAGE_BUCKET,
// STORAGE_ACCESS_KEY, STORAGE_FOLDER, SERVER_PORT, LOG_LEVEL.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
