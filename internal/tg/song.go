package tg

import "github.com/music-mining/tgmodels/internal/iterutil"

// Song is a named composition made of tracks.
//
// Song also owns the measure headers: the timing metadata (number, start,
// tempo, time signature) shared by the measures at the same position in
// every track.
type Song struct {
	// Name is the song title.
	Name string

	// Artist is the performing artist.
	Artist string

	// Album is the album the song was published on, if any.
	Album string

	// Author is the composer, if known.
	Author string

	tracks         []*Track
	measureHeaders []*MeasureHeader
}

// NewSong creates an empty song with no tracks and no measure headers.
func NewSong() *Song {
	return &Song{}
}

// Tracks returns an iterator over the song's tracks in order.
func (s *Song) Tracks() iterutil.Iterator[*Track] {
	return iterutil.FromSlice(s.tracks)
}

// AddTrack appends a track to the song.
func (s *Song) AddTrack(track *Track) {
	s.tracks = append(s.tracks, track)
}

// CountTracks returns the number of tracks.
func (s *Song) CountTracks() int {
	return len(s.tracks)
}

// Track returns the track at index, or nil if index is out of range.
func (s *Song) Track(index int) *Track {
	if index < 0 || index >= len(s.tracks) {
		return nil
	}
	return s.tracks[index]
}

// MeasureHeaders returns an iterator over the song's measure headers in order.
func (s *Song) MeasureHeaders() iterutil.Iterator[*MeasureHeader] {
	return iterutil.FromSlice(s.measureHeaders)
}

// AddMeasureHeader appends a measure header to the song.
func (s *Song) AddMeasureHeader(header *MeasureHeader) {
	s.measureHeaders = append(s.measureHeaders, header)
}

// CountMeasureHeaders returns the number of measure headers.
func (s *Song) CountMeasureHeaders() int {
	return len(s.measureHeaders)
}

// MeasureHeader returns the header at index, or nil if index is out of range.
func (s *Song) MeasureHeader(index int) *MeasureHeader {
	if index < 0 || index >= len(s.measureHeaders) {
		return nil
	}
	return s.measureHeaders[index]
}

// Track is a performer part: a tuning and a sequence of measures.
type Track struct {
	// Number is the track number, 1-indexed within its song.
	Number int

	// Name is the part name, e.g. "Lead Guitar".
	Name string

	measures []*Measure
	strings  []*GuitarString
}

// NewTrack creates an empty track with no measures and no strings.
func NewTrack(f *Factory) *Track {
	return &Track{}
}

// Measures returns an iterator over the track's measures in order.
func (t *Track) Measures() iterutil.Iterator[*Measure] {
	return iterutil.FromSlice(t.measures)
}

// AddMeasure appends a measure to the track.
func (t *Track) AddMeasure(measure *Measure) {
	t.measures = append(t.measures, measure)
}

// CountMeasures returns the number of measures.
func (t *Track) CountMeasures() int {
	return len(t.measures)
}

// Measure returns the measure at index, or nil if index is out of range.
func (t *Track) Measure(index int) *Measure {
	if index < 0 || index >= len(t.measures) {
		return nil
	}
	return t.measures[index]
}

// Strings returns the track tuning, ordered by string number.
func (t *Track) Strings() []*GuitarString {
	return t.strings
}

// SetStrings replaces the track tuning.
func (t *Track) SetStrings(strings []*GuitarString) {
	t.strings = strings
}

// GuitarString returns the string with the given number, or nil.
func (t *Track) GuitarString(number int) *GuitarString {
	for _, s := range t.strings {
		if s.Number == number {
			return s
		}
	}
	return nil
}
