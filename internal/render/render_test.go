package render

import (
	"strings"
	"testing"

	"github.com/music-mining/tgmodels/internal/tg"
)

const (
	noteFive   = "Note [value=5, string=GString [number()=1, value()=40]]"
	voiceOne   = "Voice [duration=Duration [value=4], notes=[" + noteFive + "]]"
	voiceEmpty = "Voice [duration=Duration [value=4], notes=[]]"
)

func newNote(f *tg.Factory, value int, str *tg.GuitarString) *tg.Note {
	note := f.NewNote()
	note.Value = value
	note.GuitarString = str
	return note
}

// newBeat builds a beat whose first voice holds fret 5 on string 1.
func newBeat(f *tg.Factory) *tg.Beat {
	beat := f.NewBeat()
	beat.Voice(0).AddNote(newNote(f, 5, &tg.GuitarString{Number: 1, Value: 40}))
	return beat
}

func TestScenarios(t *testing.T) {
	f := tg.NewFactory()

	tests := []struct {
		name string
		got  func() string
		want string
	}{
		{
			name: "empty song",
			got:  func() string { return Song(tg.NewSong()) },
			want: "Song [name=,\n artist=,\n tracks=[]]",
		},
		{
			name: "single string single fret",
			got: func() string {
				return Note(newNote(f, 5, &tg.GuitarString{Number: 1, Value: 40}))
			},
			want: noteFive,
		},
		{
			name: "duration",
			got:  func() string { return Duration(&tg.Duration{Value: 4}) },
			want: "Duration [value=4]",
		},
		{
			name: "voice with one note",
			got: func() string {
				voice := f.NewVoice(0)
				voice.AddNote(newNote(f, 5, &tg.GuitarString{Number: 1, Value: 40}))
				return Voice(voice)
			},
			want: voiceOne,
		},
		{
			name: "beat with two voices",
			got:  func() string { return Beat(newBeat(f)) },
			want: "Beat [voices=[" + voiceOne + ", " + voiceEmpty + "]]",
		},
		{
			name: "beat without voices",
			got:  func() string { return Beat(&tg.Beat{}) },
			want: "Beat [voices=[]]",
		},
		{
			name: "guitar string",
			got:  func() string { return GuitarString(&tg.GuitarString{Number: 6, Value: 40}) },
			want: "GString [number()=6, value()=40]",
		},
		{
			name: "empty measure",
			got:  func() string { return Measure(f.NewMeasure(f.NewMeasureHeader())) },
			want: "Measure [beats=[]]",
		},
		{
			name: "empty track",
			got: func() string {
				track := f.NewTrack()
				track.Number = 2
				track.Name = "Bass"
				return Track(track)
			},
			want: "Track [number=2, measures=[], strings=[], name=Bass]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got(); got != tt.want {
				t.Errorf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestSong_Full(t *testing.T) {
	f := tg.NewFactory()
	song := f.NewSong()
	song.Name = "Etude"
	song.Artist = "Anon"

	track := f.NewTrack()
	track.Number = 1
	track.Name = "Guitar"
	track.SetStrings(tg.NewGuitarStrings(64, 59))

	measure := f.NewMeasure(f.NewMeasureHeader())
	measure.AddBeat(newBeat(f))
	track.AddMeasure(measure)
	song.AddTrack(track)

	want := "Song [name=Etude,\n artist=Anon,\n tracks=[" +
		"Track [number=1, measures=[Measure [beats=[Beat [voices=[" + voiceOne + ", " + voiceEmpty + "]]]]], " +
		"strings=[GString [number()=1, value()=64], GString [number()=2, value()=59]], name=Guitar]]]"

	if got := Song(song); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestSong_ContainsTrackRenderings(t *testing.T) {
	f := tg.NewFactory()
	song := f.NewSong()
	for i, name := range []string{"Lead", "Rhythm", "Bass"} {
		track := f.NewTrack()
		track.Number = i + 1
		track.Name = name
		song.AddTrack(track)
	}

	got := Song(song)
	if !strings.HasPrefix(got, "Song [name=") {
		t.Errorf("rendering should start with %q, got %q", "Song [name=", got)
	}

	last := -1
	for i := 0; i < song.CountTracks(); i++ {
		trackText := Track(song.Track(i))
		idx := strings.Index(got, trackText)
		if idx < 0 {
			t.Fatalf("song rendering misses track %d: %q", i, trackText)
		}
		if idx <= last {
			t.Errorf("track %d rendered out of order", i)
		}
		last = idx
	}
}

func TestRendering_Idempotent(t *testing.T) {
	f := tg.NewFactory()
	song := f.NewSong()
	track := f.NewTrack()
	measure := f.NewMeasure(f.NewMeasureHeader())
	measure.AddBeat(newBeat(f))
	track.AddMeasure(measure)
	song.AddTrack(track)

	first := Song(song)
	second := Song(song)
	if first != second {
		t.Errorf("renderings differ:\n%q\n%q", first, second)
	}
	if song.CountTracks() != 1 || track.CountMeasures() != 1 {
		t.Error("rendering should not change the model")
	}
}

func TestNilEntities(t *testing.T) {
	voice := &tg.Voice{}
	if got := Voice(voice); got != "Voice [duration=null, notes=[]]" {
		t.Errorf("got %q", got)
	}
	if got := Note(&tg.Note{Value: 3}); got != "Note [value=3, string=null]" {
		t.Errorf("got %q", got)
	}
	if got := Song(nil); got != "null" {
		t.Errorf("got %q", got)
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{"empty", nil, "[]"},
		{"one", []string{"a"}, "[a]"},
		{"three", []string{"a", "b", "c"}, "[a, b, c]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := List(tt.items, func(s string) string { return s })
			if got != tt.want {
				t.Errorf("List() = %q, want %q", got, tt.want)
			}
		})
	}
}

type stringer struct{}

func (stringer) String() string { return "custom" }

func TestRender_Dispatch(t *testing.T) {
	str := &tg.GuitarString{Number: 1, Value: 40}

	tests := []struct {
		name string
		v    any
		want string
	}{
		{"string", str, GuitarString(str)},
		{"duration", &tg.Duration{Value: 8}, "Duration [value=8]"},
		{"string slice", []*tg.GuitarString{str, str}, "[" + GuitarString(str) + ", " + GuitarString(str) + "]"},
		{"empty note slice", []*tg.Note{}, "[]"},
		{"stringer", stringer{}, "custom"},
		{"int", 7, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.v); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}
