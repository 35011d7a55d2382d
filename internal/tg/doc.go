// Package tg is an in-memory guitar tablature song model.
//
// The model mirrors the TuxGuitar song model: a Song holds Tracks and the
// MeasureHeaders shared by those tracks; a Track holds Measures and its
// tuning as GuitarStrings; a Measure holds Beats; a Beat holds a fixed
// number of Voices; a Voice holds a Duration and the Notes sounded
// together; a Note is a fret value on a GuitarString.
//
// # Construction
//
// Entities are created through a Factory, which also builds the default
// children an entity owns (the voices of a beat, the duration of a voice):
//
//	f := tg.NewFactory()
//	song := tg.NewSong()
//	track := f.NewTrack()
//	track.SetStrings(tg.NewGuitarStrings(tg.StandardTuning...))
//	header := f.NewMeasureHeader()
//	measure := f.NewMeasure(header)
//	beat := f.NewBeat()
//	note := f.NewNote()
//	note.Value = 5
//	note.GuitarString = track.Strings()[5]
//	beat.Voice(0).AddNote(note)
//	measure.AddBeat(beat)
//	track.AddMeasure(measure)
//	song.AddTrack(track)
//
// # Collections
//
// Tracks, measures and measure headers are exposed as iterators, as the
// host model does. Strings, beats and notes are exposed as slices. Both are
// views over the entity's own storage and must not be mutated while they
// are being consumed.
//
// The model performs no validation: it is a plain container.
package tg
