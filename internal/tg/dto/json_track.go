package dto

import (
	"fmt"

	"github.com/music-mining/tgmodels/internal/tg"
)

// JSONTrack is the document form of a tg.Track.
type JSONTrack struct {
	Number   *int          `json:"number"`
	Name     string        `json:"name"`
	Strings  []JSONString  `json:"strings"`
	Measures []JSONMeasure `json:"measures"`
}

// JSONString is the document form of a tg.GuitarString.
type JSONString struct {
	Number int `json:"number"`
	Value  int `json:"value"`
}

// JSONMeasure is the document form of a tg.Measure.
type JSONMeasure struct {
	Beats []JSONBeat `json:"beats"`
}

// JSONBeat is the document form of a tg.Beat.
type JSONBeat struct {
	Voices []JSONVoice `json:"voices"`
}

// JSONVoice is the document form of a tg.Voice.
type JSONVoice struct {
	Duration     int        `json:"duration"`
	Dotted       bool       `json:"dotted"`
	DoubleDotted bool       `json:"double_dotted"`
	Notes        []JSONNote `json:"notes"`
}

// JSONNote is the document form of a tg.Note. String is the number of a
// string of the enclosing track.
type JSONNote struct {
	Value    int  `json:"value"`
	String   int  `json:"string"`
	Velocity *int `json:"velocity"`
}

// ToTrack converts the document to a tg.Track whose measures use the
// measure headers of song, in order.
//
// The track number defaults to number when the document omits it, and the
// tuning defaults to tg.StandardTuning.
func (jt *JSONTrack) ToTrack(f *tg.Factory, song *tg.Song, number int) (*tg.Track, error) {
	track := f.NewTrack()
	track.Name = jt.Name
	track.Number = number
	if jt.Number != nil {
		track.Number = *jt.Number
	}

	if len(jt.Strings) == 0 {
		track.SetStrings(tg.NewGuitarStrings(tg.StandardTuning...))
	} else {
		strings := make([]*tg.GuitarString, len(jt.Strings))
		for i, js := range jt.Strings {
			str := f.NewGuitarString()
			str.Number = js.Number
			str.Value = js.Value
			strings[i] = str
		}
		track.SetStrings(strings)
	}

	for i, jm := range jt.Measures {
		measure, err := jm.toMeasure(f, track, song.MeasureHeader(i))
		if err != nil {
			return nil, fmt.Errorf("measure %d: %w", i+1, err)
		}
		track.AddMeasure(measure)
	}

	return track, nil
}

func (jm *JSONMeasure) toMeasure(f *tg.Factory, track *tg.Track, header *tg.MeasureHeader) (*tg.Measure, error) {
	measure := f.NewMeasure(header)

	start := header.Start
	for i, jb := range jm.Beats {
		beat, err := jb.toBeat(f, track)
		if err != nil {
			return nil, fmt.Errorf("beat %d: %w", i+1, err)
		}
		beat.Start = start
		start += beat.Voice(0).Duration.Time()
		measure.AddBeat(beat)
	}

	return measure, nil
}

func (jb *JSONBeat) toBeat(f *tg.Factory, track *tg.Track) (*tg.Beat, error) {
	if len(jb.Voices) > tg.MaxVoices {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyVoices, len(jb.Voices), tg.MaxVoices)
	}

	beat := f.NewBeat()
	for i, jv := range jb.Voices {
		voice := beat.Voice(i)
		if jv.Duration > 0 {
			voice.Duration.Value = jv.Duration
		}
		voice.Duration.Dotted = jv.Dotted
		voice.Duration.DoubleDotted = jv.DoubleDotted

		for _, jn := range jv.Notes {
			str := track.GuitarString(jn.String)
			if str == nil {
				return nil, fmt.Errorf("%w: %d", ErrUnknownString, jn.String)
			}
			note := f.NewNote()
			note.Value = jn.Value
			note.GuitarString = str
			if jn.Velocity != nil {
				note.Velocity = *jn.Velocity
			}
			voice.AddNote(note)
		}
	}

	return beat, nil
}
