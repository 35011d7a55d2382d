package tg

// MaxVoices is the number of voices a factory-built beat holds.
const MaxVoices = 2

// Beat is a simultaneity within a measure, split into voices.
//
// The zero Beat holds no voices. Beats created through a Factory hold
// MaxVoices voices, indexed from 0.
type Beat struct {
	// Start is the beat position in ticks.
	Start int64

	voices []*Voice
}

// NewBeat creates a beat holding MaxVoices voices built by f.
func NewBeat(f *Factory) *Beat {
	b := &Beat{Start: QuarterTime}
	b.voices = make([]*Voice, MaxVoices)
	for i := range b.voices {
		b.voices[i] = f.NewVoice(i)
	}
	return b
}

// CountVoices returns the number of voices of the beat.
func (b *Beat) CountVoices() int {
	return len(b.voices)
}

// Voice returns the voice at index, or nil if index is out of range.
func (b *Beat) Voice(index int) *Voice {
	if index < 0 || index >= len(b.voices) {
		return nil
	}
	return b.voices[index]
}

// SetVoice replaces the voice at index. Indices outside
// [0, CountVoices()) and nil voices are ignored.
func (b *Beat) SetVoice(index int, voice *Voice) {
	if voice == nil || index < 0 || index >= len(b.voices) {
		return
	}
	voice.Index = index
	b.voices[index] = voice
}

// Voice is one rhythmic layer of a beat.
type Voice struct {
	// Index is the position of the voice within its beat.
	Index int

	// Duration is the rhythmic value of the voice.
	Duration *Duration

	// Empty marks a voice that holds no rhythmic content of its own.
	Empty bool

	notes []*Note
}

// NewVoice creates an empty voice at index with a default duration.
func NewVoice(f *Factory, index int) *Voice {
	return &Voice{
		Index:    index,
		Duration: f.NewDuration(),
		Empty:    true,
	}
}

// Notes returns the notes of the voice in order.
func (v *Voice) Notes() []*Note {
	return v.notes
}

// AddNote appends a note to the voice and marks it non-empty.
func (v *Voice) AddNote(note *Note) {
	v.notes = append(v.notes, note)
	v.Empty = false
}

// CountNotes returns the number of notes.
func (v *Voice) CountNotes() int {
	return len(v.notes)
}
