package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/music-mining/tgmodels/internal/iterutil"
	"github.com/music-mining/tgmodels/internal/tg"
)

const null = "null"

// List renders items as "[a, b, c]" using fn for each element.
func List[T any](items []T, fn func(T) string) string {
	var sb strings.Builder
	writeList(&sb, items, func(sb *strings.Builder, item T) {
		sb.WriteString(fn(item))
	})
	return sb.String()
}

// Song renders a song and all of its tracks.
func Song(s *tg.Song) string {
	return build(s, writeSong)
}

// Track renders a track, its measures and its strings.
func Track(t *tg.Track) string {
	return build(t, writeTrack)
}

// Measure renders a measure and its beats.
func Measure(m *tg.Measure) string {
	return build(m, writeMeasure)
}

// Beat renders a beat and its voices.
func Beat(b *tg.Beat) string {
	return build(b, writeBeat)
}

// Voice renders a voice, its duration and its notes.
func Voice(v *tg.Voice) string {
	return build(v, writeVoice)
}

// Note renders a note and its string.
func Note(n *tg.Note) string {
	return build(n, writeNote)
}

// GuitarString renders a string.
func GuitarString(s *tg.GuitarString) string {
	return build(s, writeGuitarString)
}

// Duration renders a duration.
func Duration(d *tg.Duration) string {
	return build(d, writeDuration)
}

// Render dispatches on the kind of v and returns its rendering.
//
// v may be a model entity pointer or a slice of them. Other values are
// formatted with fmt.Sprint, so the tgmodels types, whose String methods
// call back into this package, render the same as their embedded entity.
func Render(v any) string {
	switch v := v.(type) {
	case *tg.Song:
		return Song(v)
	case *tg.Track:
		return Track(v)
	case *tg.Measure:
		return Measure(v)
	case *tg.Beat:
		return Beat(v)
	case *tg.Voice:
		return Voice(v)
	case *tg.Note:
		return Note(v)
	case *tg.GuitarString:
		return GuitarString(v)
	case *tg.Duration:
		return Duration(v)
	case []*tg.Track:
		return List(v, Track)
	case []*tg.Measure:
		return List(v, Measure)
	case []*tg.Beat:
		return List(v, Beat)
	case []*tg.Voice:
		return List(v, Voice)
	case []*tg.Note:
		return List(v, Note)
	case []*tg.GuitarString:
		return List(v, GuitarString)
	default:
		return fmt.Sprint(v)
	}
}

func build[T any](v *T, write func(*strings.Builder, *T)) string {
	var sb strings.Builder
	write(&sb, v)
	return sb.String()
}

func writeList[T any](sb *strings.Builder, items []T, write func(*strings.Builder, T)) {
	sb.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		write(sb, item)
	}
	sb.WriteByte(']')
}

func writeSong(sb *strings.Builder, s *tg.Song) {
	if s == nil {
		sb.WriteString(null)
		return
	}
	sb.WriteString("Song [name=")
	sb.WriteString(s.Name)
	sb.WriteString(",\n artist=")
	sb.WriteString(s.Artist)
	sb.WriteString(",\n tracks=")
	writeList(sb, iterutil.ListFromIterator(s.Tracks()), writeTrack)
	sb.WriteByte(']')
}

func writeTrack(sb *strings.Builder, t *tg.Track) {
	if t == nil {
		sb.WriteString(null)
		return
	}
	sb.WriteString("Track [number=")
	sb.WriteString(strconv.Itoa(t.Number))
	sb.WriteString(", measures=")
	writeList(sb, iterutil.ListFromIterator(t.Measures()), writeMeasure)
	sb.WriteString(", strings=")
	writeList(sb, t.Strings(), writeGuitarString)
	sb.WriteString(", name=")
	sb.WriteString(t.Name)
	sb.WriteByte(']')
}

func writeMeasure(sb *strings.Builder, m *tg.Measure) {
	if m == nil {
		sb.WriteString(null)
		return
	}
	sb.WriteString("Measure [beats=")
	writeList(sb, m.Beats(), writeBeat)
	sb.WriteByte(']')
}

func writeBeat(sb *strings.Builder, b *tg.Beat) {
	if b == nil {
		sb.WriteString(null)
		return
	}
	voices := make([]*tg.Voice, b.CountVoices())
	for i := range voices {
		voices[i] = b.Voice(i)
	}
	sb.WriteString("Beat [voices=")
	writeList(sb, voices, writeVoice)
	sb.WriteByte(']')
}

func writeVoice(sb *strings.Builder, v *tg.Voice) {
	if v == nil {
		sb.WriteString(null)
		return
	}
	sb.WriteString("Voice [duration=")
	writeDuration(sb, v.Duration)
	sb.WriteString(", notes=")
	writeList(sb, v.Notes(), writeNote)
	sb.WriteByte(']')
}

func writeNote(sb *strings.Builder, n *tg.Note) {
	if n == nil {
		sb.WriteString(null)
		return
	}
	sb.WriteString("Note [value=")
	sb.WriteString(strconv.Itoa(n.Value))
	sb.WriteString(", string=")
	writeGuitarString(sb, n.GuitarString)
	sb.WriteByte(']')
}

func writeGuitarString(sb *strings.Builder, s *tg.GuitarString) {
	if s == nil {
		sb.WriteString(null)
		return
	}
	sb.WriteString("GString [number()=")
	sb.WriteString(strconv.Itoa(s.Number))
	sb.WriteString(", value()=")
	sb.WriteString(strconv.Itoa(s.Value))
	sb.WriteByte(']')
}

func writeDuration(sb *strings.Builder, d *tg.Duration) {
	if d == nil {
		sb.WriteString(null)
		return
	}
	sb.WriteString("Duration [value=")
	sb.WriteString(strconv.Itoa(d.Value))
	sb.WriteByte(']')
}
