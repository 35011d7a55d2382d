package songfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/music-mining/tgmodels/internal/tg"
	"github.com/music-mining/tgmodels/internal/tg/dto"
)

// utf8BOM is the byte order mark some editors prepend to JSON files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parser builds songs from model documents.
//
// Example usage:
//
//	parser := NewParser(tg.NewFactory())
//	song, err := parser.LoadFile("etude.json")
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s by %s (%d tracks)\n", song.Name, song.Artist, song.CountTracks())
type Parser struct {
	factory *tg.Factory
}

// NewParser creates a Parser that builds entities with f.
// A nil f uses a new tg.Factory.
func NewParser(f *tg.Factory) *Parser {
	if f == nil {
		f = tg.NewFactory()
	}
	return &Parser{factory: f}
}

// ParseSong decodes a document and converts it to a song.
//
// Returns an error if:
//   - The data is not valid JSON for a song document
//   - A note refers to a string its track does not have (dto.ErrUnknownString)
//   - A beat lists more voices than tg.MaxVoices (dto.ErrTooManyVoices)
func (p *Parser) ParseSong(data []byte) (*tg.Song, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var doc dto.JSONSong
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse song JSON: %w", err)
	}

	song, err := doc.ToSong(p.factory)
	if err != nil {
		return nil, fmt.Errorf("invalid song document: %w", err)
	}

	return song, nil
}

// LoadFile reads and parses the document at path.
func (p *Parser) LoadFile(path string) (*tg.Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	song, err := p.ParseSong(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return song, nil
}
