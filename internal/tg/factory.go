package tg

// Factory creates model entities and their default children.
//
// The zero Factory is ready to use. Every constructor of this package that
// takes a Factory delegates child creation to it.
type Factory struct{}

// NewFactory returns a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewSong creates an empty song.
func (f *Factory) NewSong() *Song {
	return NewSong()
}

// NewMeasureHeader creates a 4/4 measure header at tempo 120.
func (f *Factory) NewMeasureHeader() *MeasureHeader {
	return NewMeasureHeader(f)
}

// NewTrack creates an empty track.
func (f *Factory) NewTrack() *Track {
	return NewTrack(f)
}

// NewMeasure creates an empty measure bound to header.
func (f *Factory) NewMeasure(header *MeasureHeader) *Measure {
	return NewMeasure(header)
}

// NewBeat creates a beat holding MaxVoices empty voices.
func (f *Factory) NewBeat() *Beat {
	return NewBeat(f)
}

// NewVoice creates an empty voice with a quarter duration.
func (f *Factory) NewVoice(index int) *Voice {
	return NewVoice(f, index)
}

// NewNote creates a note on fret 0 with no string.
func (f *Factory) NewNote() *Note {
	return NewNote(f)
}

// NewGuitarString creates string number 0 tuned to pitch 0.
func (f *Factory) NewGuitarString() *GuitarString {
	return NewGuitarString()
}

// NewDuration creates a quarter duration.
func (f *Factory) NewDuration() *Duration {
	return NewDuration(f)
}
