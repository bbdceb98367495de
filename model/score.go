package model

import (
	"time"

	"github.com/google/uuid"
)

// MultiVoiceNote is one note (or chord, or rest) owned by exactly one voice.
// Time is measured in beats from the start of its measure.
type MultiVoiceNote struct {
	Pitches      []string     `json:"pitches,omitempty"`
	Rest         bool         `json:"rest,omitempty"`
	Duration     NoteDuration `json:"duration"`
	Dots         int          `json:"dots,omitempty"`
	Time         float64      `json:"time"`
	VoiceId      string       `json:"voiceId"`
	Accidental   string       `json:"accidental,omitempty"`
	Articulation string       `json:"articulation,omitempty"`
	Dynamic      string       `json:"dynamic,omitempty"`
	Fingering    string       `json:"fingering,omitempty"`
	Tie          string       `json:"tie,omitempty"`
}

// Voice is one contrapuntal line. Its id must be unique within its staff.
type Voice struct {
	Id    string           `json:"id"`
	Notes []MultiVoiceNote `json:"notes"`
}

type Staff struct {
	Id     string  `json:"id"`
	Clef   Clef    `json:"clef"`
	Voices []Voice `json:"voices"`
}

// Part references the staff ids it owns; those ids must resolve in every
// measure of the score, not just the first one.
type Part struct {
	Id          string   `json:"id"`
	Instrument  string   `json:"instrument"`
	StaffIds    []string `json:"staffIds"`
	MidiProgram int      `json:"midiProgram"`
	Volume      float64  `json:"volume"`
	Pan         float64  `json:"pan"`
}

// Measure overrides (time signature, key, tempo...) take effect from that
// measure forward. Zero values mean "no override".
type Measure struct {
	Number        int            `json:"number"`
	Staves        []Staff        `json:"staves"`
	TimeSignature *TimeSignature `json:"timeSignature,omitempty"`
	KeySignature  *KeySignature  `json:"keySignature,omitempty"`
	Tempo         int            `json:"tempo,omitempty"`
	Dynamic       string         `json:"dynamic,omitempty"`
	RehearsalMark string         `json:"rehearsalMark,omitempty"`
	BarLine       string         `json:"barLine,omitempty"`
	RepeatCount   int            `json:"repeatCount,omitempty"`
}

type Score struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	Composer  string    `json:"composer,omitempty"`
	Parts     []Part    `json:"parts"`
	Measures  []Measure `json:"measures"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewScore(title string, composer string) *Score {
	now := time.Now().UTC()
	return &Score{
		Id:        uuid.New().String(),
		Title:     title,
		Composer:  composer,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
