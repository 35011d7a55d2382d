package tg

// Duration codes, as reciprocal note values.
const (
	Whole        = 1
	Half         = 2
	Quarter      = 4
	Eighth       = 8
	Sixteenth    = 16
	ThirtySecond = 32
	SixtyFourth  = 64
)

// StandardTuning is the open pitch of the six strings of a guitar in
// standard tuning, from string 1 (high E) to string 6 (low E), as MIDI
// note numbers.
var StandardTuning = []int{64, 59, 55, 50, 45, 40}

// Note is a fretted note: a fret value on a string.
type Note struct {
	// Value is the fret number.
	Value int

	// Velocity is the dynamic of the note, on the MIDI 0-127 scale.
	Velocity int

	// GuitarString is the string the note is played on.
	GuitarString *GuitarString
}

// NewNote creates a note on fret 0 with forte velocity and no string.
func NewNote(f *Factory) *Note {
	return &Note{Velocity: 95}
}

// Pitch returns the sounding pitch of the note, or -1 without a string.
func (n *Note) Pitch() int {
	if n.GuitarString == nil {
		return -1
	}
	return n.GuitarString.Value + n.Value
}

// GuitarString is a tunable string of a fretted instrument.
type GuitarString struct {
	// Number is the string number, 1 being the highest pitched string.
	Number int

	// Value is the open pitch as a MIDI note number.
	Value int
}

// NewGuitarString creates string number 0 tuned to pitch 0.
func NewGuitarString() *GuitarString {
	return &GuitarString{}
}

// NewGuitarStrings creates one string per pitch, numbered from 1.
func NewGuitarStrings(tuning ...int) []*GuitarString {
	strings := make([]*GuitarString, len(tuning))
	for i, value := range tuning {
		strings[i] = &GuitarString{Number: i + 1, Value: value}
	}
	return strings
}

// Duration is a rhythmic value.
type Duration struct {
	// Value is the duration code, see Whole through SixtyFourth.
	Value int

	// Dotted extends the duration by half its length.
	Dotted bool

	// DoubleDotted extends the duration by three quarters of its length.
	DoubleDotted bool
}

// NewDuration creates an undotted quarter duration.
func NewDuration(f *Factory) *Duration {
	return &Duration{Value: Quarter}
}

// Time returns the length of the duration in ticks. A zero or negative
// code has no length.
func (d *Duration) Time() int64 {
	if d.Value <= 0 {
		return 0
	}
	t := int64(QuarterTime) * 4 / int64(d.Value)
	switch {
	case d.DoubleDotted:
		t += t/2 + t/4
	case d.Dotted:
		t += t / 2
	}
	return t
}
