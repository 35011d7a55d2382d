package tg

// QuarterTime is the length of a quarter note in ticks. The first measure
// of a song starts at QuarterTime.
const QuarterTime = 960

// MeasureHeader holds the timing metadata of one measure position.
//
// All tracks of a song share the same header for the measure at a given
// index, so a tempo or time signature change applies to every track.
type MeasureHeader struct {
	// Number is the measure number, 1-indexed.
	Number int

	// Start is the start position of the measure, in ticks.
	Start int64

	// Tempo is the tempo in quarter notes per minute.
	Tempo int

	// Numerator is the number of beats per measure.
	Numerator int

	// Denominator is the beat unit of the time signature.
	Denominator *Duration
}

// NewMeasureHeader creates a header for measure 1 in 4/4 at tempo 120.
func NewMeasureHeader(f *Factory) *MeasureHeader {
	return &MeasureHeader{
		Number:      1,
		Start:       QuarterTime,
		Tempo:       120,
		Numerator:   4,
		Denominator: f.NewDuration(),
	}
}

// Length returns the length of the measure in ticks.
func (h *MeasureHeader) Length() int64 {
	return int64(h.Numerator) * h.Denominator.Time()
}

// Measure is one time-bounded bar of a track.
type Measure struct {
	// Header supplies the timing metadata of the measure.
	Header *MeasureHeader

	beats []*Beat
}

// NewMeasure creates an empty measure bound to header.
func NewMeasure(header *MeasureHeader) *Measure {
	return &Measure{Header: header}
}

// Beats returns the beats of the measure in order.
func (m *Measure) Beats() []*Beat {
	return m.beats
}

// AddBeat appends a beat to the measure.
func (m *Measure) AddBeat(beat *Beat) {
	m.beats = append(m.beats, beat)
}

// CountBeats returns the number of beats.
func (m *Measure) CountBeats() int {
	return len(m.beats)
}

// Number returns the measure number from the header.
func (m *Measure) Number() int {
	return m.Header.Number
}

// Start returns the measure start from the header, in ticks.
func (m *Measure) Start() int64 {
	return m.Header.Start
}
