// Package config provides configuration management for studycafe.
//
// This package handles:
//   - Loading and saving settings from TOML files
//   - Default configuration values
//   - The STUDYCAFE_API_URL environment override
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// API at http://localhost:8001, 60s request timeout
//	// Artist names sorted with the Korean collation
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.toml")
//	if err != nil {
//	    // parse or validation error; a missing file yields defaults
//	}
//	settings.ApplyEnv(os.LookupEnv)
//
// The resolved APIURL is handed to the API client when it is built. No
// other package reads the environment.
package config
