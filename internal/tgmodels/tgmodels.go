package tgmodels

import (
	"github.com/music-mining/tgmodels/internal/iterutil"
	"github.com/music-mining/tgmodels/internal/render"
	"github.com/music-mining/tgmodels/internal/tg"
)

// Song is a tg.Song that renders itself with its tracks.
type Song struct {
	*tg.Song
}

// NewSong creates an empty song.
func NewSong() *Song {
	return &Song{tg.NewSong()}
}

// TrackList returns the song's tracks as a slice.
func (s *Song) TrackList() []*tg.Track {
	return iterutil.ListFromIterator(s.Tracks())
}

func (s *Song) String() string {
	return render.Song(s.Song)
}

// Track is a tg.Track that renders itself with its measures and strings.
type Track struct {
	*tg.Track
}

// NewTrack creates an empty track.
func NewTrack(f *tg.Factory) *Track {
	return &Track{tg.NewTrack(f)}
}

// MeasureList returns the track's measures as a slice.
func (t *Track) MeasureList() []*tg.Measure {
	return iterutil.ListFromIterator(t.Measures())
}

func (t *Track) String() string {
	return render.Track(t.Track)
}

// Measure is a tg.Measure that renders itself with its beats.
type Measure struct {
	*tg.Measure
}

// NewMeasure creates an empty measure bound to header.
func NewMeasure(header *tg.MeasureHeader) *Measure {
	return &Measure{tg.NewMeasure(header)}
}

func (m *Measure) String() string {
	return render.Measure(m.Measure)
}

// Beat is a tg.Beat that renders itself with its voices.
type Beat struct {
	*tg.Beat
}

// NewBeat creates a beat holding tg.MaxVoices voices.
func NewBeat(f *tg.Factory) *Beat {
	return &Beat{tg.NewBeat(f)}
}

// VoiceList returns the beat's voices in index order.
func (b *Beat) VoiceList() []*tg.Voice {
	res := make([]*tg.Voice, 0, b.CountVoices())
	for i := 0; i < b.CountVoices(); i++ {
		res = append(res, b.Voice(i))
	}
	return res
}

func (b *Beat) String() string {
	return render.Beat(b.Beat)
}

// Voice is a tg.Voice that renders itself with its duration and notes.
type Voice struct {
	*tg.Voice
}

// NewVoice creates an empty voice at index.
func NewVoice(f *tg.Factory, index int) *Voice {
	return &Voice{tg.NewVoice(f, index)}
}

func (v *Voice) String() string {
	return render.Voice(v.Voice)
}

// Note is a fretted note, i.e. a fret number and a string.
type Note struct {
	*tg.Note
}

// NewNote creates a note on fret 0 with no string.
func NewNote(f *tg.Factory) *Note {
	return &Note{tg.NewNote(f)}
}

func (n *Note) String() string {
	return render.Note(n.Note)
}

// GString is a string of a guitar.
type GString struct {
	*tg.GuitarString
}

// NewGString creates string number 0 tuned to pitch 0.
func NewGString() *GString {
	return &GString{tg.NewGuitarString()}
}

func (s *GString) String() string {
	return render.GuitarString(s.GuitarString)
}

// Duration is a tg.Duration that renders its code.
type Duration struct {
	*tg.Duration
}

// NewDuration creates a quarter duration.
func NewDuration(f *tg.Factory) *Duration {
	return &Duration{tg.NewDuration(f)}
}

func (d *Duration) String() string {
	return render.Duration(d.Duration)
}
