// Package config provides configuration management for tgdump.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to the output file configuration used by other packages
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Reads *.json documents
//	// Renders up to 4 songs concurrently
//	// Prints renderings to stdout
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/tgdump.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.OutputPath = "/tmp/renderings"
//	err := settings.Save("/path/to/tgdump.json")
package config
