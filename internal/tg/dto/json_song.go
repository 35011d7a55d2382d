// Package dto holds the JSON document form of the song model.
//
// Documents mirror the tg entities one to one, except that notes refer to
// the strings of their track by number and measure headers are derived
// from the measure positions. Conversion goes through a tg.Factory so the
// resulting entities carry the same defaults as hand-built ones.
package dto

import (
	"errors"
	"fmt"

	"github.com/music-mining/tgmodels/internal/tg"
)

var (
	// ErrUnknownString is returned when a note refers to a string number
	// its track does not have.
	ErrUnknownString = errors.New("note refers to an unknown string")

	// ErrTooManyVoices is returned when a beat lists more than tg.MaxVoices voices.
	ErrTooManyVoices = errors.New("beat has too many voices")
)

// JSONSong is the document form of a tg.Song.
type JSONSong struct {
	Name           string              `json:"name"`
	Artist         string              `json:"artist"`
	Album          string              `json:"album"`
	Author         string              `json:"author"`
	MeasureHeaders []JSONMeasureHeader `json:"measure_headers"`
	Tracks         []JSONTrack         `json:"tracks"`
}

// JSONMeasureHeader overrides the timing of one measure position.
// Zero fields keep the factory defaults (4/4 at tempo 120).
type JSONMeasureHeader struct {
	Tempo       int `json:"tempo"`
	Numerator   int `json:"numerator"`
	Denominator int `json:"denominator"`
}

// ToSong converts the document to a tg.Song.
//
// One measure header is created per measure position, for the longest of
// the header list and every track's measure list. Headers are numbered
// from 1 and laid out back to back from tg.QuarterTime.
func (js *JSONSong) ToSong(f *tg.Factory) (*tg.Song, error) {
	song := f.NewSong()
	song.Name = js.Name
	song.Artist = js.Artist
	song.Album = js.Album
	song.Author = js.Author

	count := len(js.MeasureHeaders)
	for _, jt := range js.Tracks {
		count = max(count, len(jt.Measures))
	}

	start := int64(tg.QuarterTime)
	for i := 0; i < count; i++ {
		header := f.NewMeasureHeader()
		header.Number = i + 1
		header.Start = start
		if i < len(js.MeasureHeaders) {
			js.MeasureHeaders[i].apply(header)
		}
		start += header.Length()
		song.AddMeasureHeader(header)
	}

	for i, jt := range js.Tracks {
		track, err := jt.ToTrack(f, song, i+1)
		if err != nil {
			return nil, fmt.Errorf("track %d: %w", i+1, err)
		}
		song.AddTrack(track)
	}

	return song, nil
}

func (jh JSONMeasureHeader) apply(header *tg.MeasureHeader) {
	if jh.Tempo > 0 {
		header.Tempo = jh.Tempo
	}
	if jh.Numerator > 0 {
		header.Numerator = jh.Numerator
	}
	if jh.Denominator > 0 {
		header.Denominator.Value = jh.Denominator
	}
}
