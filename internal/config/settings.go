package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	ioutils "github.com/music-mining/tgmodels/internal/io"
)

// Settings holds all configuration options.
type Settings struct {
	// Input settings
	InputExtension string `json:"input_extension"`

	// Rendering settings
	MaxConcurrentSongs int `json:"max_concurrent_songs"`

	// Output settings. An empty OutputPath writes renderings to stdout.
	OutputPath        string `json:"output_path"`
	FileNameFormat    string `json:"file_name_format"`
	OutputExtension   string `json:"output_extension"`
	OverwriteExisting bool   `json:"overwrite_existing"`

	// Terminal settings
	Styled bool `json:"styled"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		InputExtension: ".json",

		MaxConcurrentSongs: 4,

		OutputPath:        "",
		FileNameFormat:    "{artist} - {name}",
		OutputExtension:   ".txt",
		OverwriteExisting: true,

		Styled: true,
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToOutputConfig converts settings to an OutputConfig.
func (s *Settings) ToOutputConfig() *ioutils.OutputConfig {
	ext := s.OutputExtension
	if ext == "" {
		ext = ".txt"
	}

	return &ioutils.OutputConfig{
		Dir:            s.OutputPath,
		FileNameFormat: s.FileNameFormat,
		Extension:      ext,
	}
}
