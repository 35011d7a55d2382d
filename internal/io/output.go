package ioutils

import (
	"path/filepath"
	"strings"

	"github.com/music-mining/tgmodels/internal/tg"
)

// OutputConfig holds output file naming settings.
//
// The FileNameFormat supports placeholders that are replaced with actual values:
//   - {name} - Song name
//   - {artist} - Song artist
//   - {file} - Base name of the source document, without extension
//
// Example:
//
//	cfg := &OutputConfig{
//	    Dir:            "/tmp/renderings",
//	    FileNameFormat: "{artist} - {name}",
//	    Extension:      ".txt",
//	}
//	// Results in paths like "/tmp/renderings/Anon - Etude.txt"
type OutputConfig struct {
	// Dir is the directory renderings are written to.
	Dir string

	// FileNameFormat is the template for file names, without extension.
	FileNameFormat string

	// Extension is appended to every file name, including the dot.
	Extension string
}

// Path computes the output path for a song loaded from source.
//
// Falls back to the source base name when the format expands to an empty
// name (e.g. a song without name or artist and format "{name}").
func (c *OutputConfig) Path(song *tg.Song, source string) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))

	fileName := c.FileNameFormat
	fileName = strings.ReplaceAll(fileName, "{name}", song.Name)
	fileName = strings.ReplaceAll(fileName, "{artist}", song.Artist)
	fileName = strings.ReplaceAll(fileName, "{file}", base)
	fileName = SanitizeFileName(fileName)

	if strings.Trim(fileName, " -_") == "" {
		fileName = SanitizeFileName(base)
	}

	return filepath.Join(c.Dir, fileName+c.Extension)
}
