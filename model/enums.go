package model

// Closed musical vocabularies. These are deliberately typed string constants
// so they survive JSON untouched; every lookup that consumes one switches
// exhaustively and reports unknown variants as errors.

type Clef string

const (
	ClefTreble     Clef = "treble"
	ClefBass       Clef = "bass"
	ClefAlto       Clef = "alto"
	ClefTenor      Clef = "tenor"
	ClefGrandStaff Clef = "grand_staff"
)

type NoteDuration string

const (
	Whole        NoteDuration = "whole"
	Half         NoteDuration = "half"
	Quarter      NoteDuration = "quarter"
	Eighth       NoteDuration = "eighth"
	Sixteenth    NoteDuration = "sixteenth"
	ThirtySecond NoteDuration = "thirty_second"
)

// BaseBeats is the undotted length in beats, where a quarter note is one beat.
func (d NoteDuration) BaseBeats() (float64, bool) {
	switch d {
	case Whole:
		return 4, true
	case Half:
		return 2, true
	case Quarter:
		return 1, true
	case Eighth:
		return 0.5, true
	case Sixteenth:
		return 0.25, true
	case ThirtySecond:
		return 0.125, true
	}
	return 0, false
}

type TimeSignature struct {
	Numerator   int `json:"numerator"`
	Denominator int `json:"denominator"`
}

// BeatsPerMeasure counts numerator beats of 4/denominator length each, in the
// same quarter-note unit Note.Time uses.
func (ts TimeSignature) BeatsPerMeasure() float64 {
	return float64(ts.Numerator) * 4 / float64(ts.Denominator)
}

type ScaleType string

const (
	ScaleMajor           ScaleType = "major"
	ScaleNaturalMinor    ScaleType = "natural_minor"
	ScaleHarmonicMinor   ScaleType = "harmonic_minor"
	ScaleMelodicMinor    ScaleType = "melodic_minor"
	ScalePentatonicMajor ScaleType = "pentatonic_major"
	ScalePentatonicMinor ScaleType = "pentatonic_minor"
	ScaleBlues           ScaleType = "blues"
	ScaleChromatic       ScaleType = "chromatic"
	ScaleWholeTone       ScaleType = "whole_tone"
	ScaleDiminished      ScaleType = "diminished"
	ScaleAugmented       ScaleType = "augmented"
)

type ChordType string

const (
	ChordMajor           ChordType = "major"
	ChordMinor           ChordType = "minor"
	ChordDiminished      ChordType = "diminished"
	ChordAugmented       ChordType = "augmented"
	ChordMajor7          ChordType = "major7"
	ChordMinor7          ChordType = "minor7"
	ChordDominant7       ChordType = "dominant7"
	ChordHalfDiminished7 ChordType = "half_diminished7"
	ChordDiminished7     ChordType = "diminished7"
)

type KeySignature string

const (
	CMajor      KeySignature = "C_MAJOR"
	GMajor      KeySignature = "G_MAJOR"
	DMajor      KeySignature = "D_MAJOR"
	AMajor      KeySignature = "A_MAJOR"
	EMajor      KeySignature = "E_MAJOR"
	BMajor      KeySignature = "B_MAJOR"
	FSharpMajor KeySignature = "F#_MAJOR"
	CSharpMajor KeySignature = "C#_MAJOR"
	FMajor      KeySignature = "F_MAJOR"
	BFlatMajor  KeySignature = "Bb_MAJOR"
	EFlatMajor  KeySignature = "Eb_MAJOR"
	AFlatMajor  KeySignature = "Ab_MAJOR"
	DFlatMajor  KeySignature = "Db_MAJOR"
	GFlatMajor  KeySignature = "Gb_MAJOR"
	CFlatMajor  KeySignature = "Cb_MAJOR"

	AMinor      KeySignature = "A_MINOR"
	EMinor      KeySignature = "E_MINOR"
	BMinor      KeySignature = "B_MINOR"
	FSharpMinor KeySignature = "F#_MINOR"
	CSharpMinor KeySignature = "C#_MINOR"
	GSharpMinor KeySignature = "G#_MINOR"
	DSharpMinor KeySignature = "D#_MINOR"
	ASharpMinor KeySignature = "A#_MINOR"
	DMinor      KeySignature = "D_MINOR"
	GMinor      KeySignature = "G_MINOR"
	CMinor      KeySignature = "C_MINOR"
	FMinor      KeySignature = "F_MINOR"
	BFlatMinor  KeySignature = "Bb_MINOR"
	EFlatMinor  KeySignature = "Eb_MINOR"
	AFlatMinor  KeySignature = "Ab_MINOR"
)

type Instrument string

const (
	InstrumentPiano  Instrument = "piano"
	InstrumentGuitar Instrument = "guitar"
)
