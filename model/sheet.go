package model

// Note is the legacy flat representation: no voice, no staff. It coexists
// with MultiVoiceNote; the convert package bridges the two.
type Note struct {
	Pitches      []string     `json:"pitches,omitempty"`
	Rest         bool         `json:"rest,omitempty"`
	Duration     NoteDuration `json:"duration"`
	Dots         int          `json:"dots,omitempty"`
	Time         float64      `json:"time"`
	Accidental   string       `json:"accidental,omitempty"`
	Articulation string       `json:"articulation,omitempty"`
	Dynamic      string       `json:"dynamic,omitempty"`
	Fingering    string       `json:"fingering,omitempty"`
	Tie          string       `json:"tie,omitempty"`
}

type SheetMeasure struct {
	Number        int            `json:"number"`
	Notes         []Note         `json:"notes"`
	TimeSignature *TimeSignature `json:"timeSignature,omitempty"`
	KeySignature  *KeySignature  `json:"keySignature,omitempty"`
	Tempo         int            `json:"tempo,omitempty"`
	Dynamic       string         `json:"dynamic,omitempty"`
	RehearsalMark string         `json:"rehearsalMark,omitempty"`
	BarLine       string         `json:"barLine,omitempty"`
	RepeatCount   int            `json:"repeatCount,omitempty"`
}

// SheetMusic holds one ungrouped note list per measure and a single clef for
// the whole piece. GRAND_STAFF here means "split into two staves on convert".
type SheetMusic struct {
	Title      string         `json:"title"`
	Composer   string         `json:"composer,omitempty"`
	Clef       Clef           `json:"clef"`
	Instrument Instrument     `json:"instrument"`
	Measures   []SheetMeasure `json:"measures"`
}
