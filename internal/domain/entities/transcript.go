package entities

// Segment is a single timestamped chunk of transcribed speech as delivered
// by the speech-to-text provider. Segments are immutable input.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Duration returns the segment length in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// Sentence is a segmenter-derived unit with interpolated timing. It is the
// atomic unit the structure detectors operate on and is never mutated after
// creation.
type Sentence struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Text       string  `json:"text"`
	Normalized string  `json:"normalized"`
}
