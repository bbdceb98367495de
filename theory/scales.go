package theory

import (
	"fmt"

	"github.com/rmerrell/polyvoice/model"
)

// Semitone offsets from the root, one entry per supported scale type.
var scaleIntervals = map[model.ScaleType][]int{
	model.ScaleMajor:           {0, 2, 4, 5, 7, 9, 11},
	model.ScaleNaturalMinor:    {0, 2, 3, 5, 7, 8, 10},
	model.ScaleHarmonicMinor:   {0, 2, 3, 5, 7, 8, 11},
	model.ScaleMelodicMinor:    {0, 2, 3, 5, 7, 9, 11},
	model.ScalePentatonicMajor: {0, 2, 4, 7, 9},
	model.ScalePentatonicMinor: {0, 3, 5, 7, 10},
	model.ScaleBlues:           {0, 3, 5, 6, 7, 10},
	model.ScaleChromatic:       {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	model.ScaleWholeTone:       {0, 2, 4, 6, 8, 10},
	model.ScaleDiminished:      {0, 2, 3, 5, 6, 8, 9, 11},
	model.ScaleAugmented:       {0, 3, 4, 7, 8, 11},
}

var chordIntervals = map[model.ChordType][]int{
	model.ChordMajor:           {0, 4, 7},
	model.ChordMinor:           {0, 3, 7},
	model.ChordDiminished:      {0, 3, 6},
	model.ChordAugmented:       {0, 4, 8},
	model.ChordMajor7:          {0, 4, 7, 11},
	model.ChordMinor7:          {0, 3, 7, 10},
	model.ChordDominant7:       {0, 4, 7, 10},
	model.ChordHalfDiminished7: {0, 3, 6, 10},
	model.ChordDiminished7:     {0, 3, 6, 9},
}

// spellIntervals applies an interval set to a root. A bare pitch class like
// "C" yields reusable pitch-class names; a rooted pitch like "C4" yields
// absolute ascending pitches that may cross into the next octave.
func spellIntervals(root string, intervals []int) ([]string, error) {
	sem, octave, hasOctave, err := parsePitch(root)
	if err != nil {
		return nil, err
	}
	pc := ((sem % 12) + 12) % 12
	notes := make([]string, 0, len(intervals))
	if !hasOctave {
		for _, iv := range intervals {
			notes = append(notes, sharpNames[(pc+iv)%12])
		}
		return notes, nil
	}
	base := (octave+1)*12 + sem
	for _, iv := range intervals {
		note, err := MidiToNote(base + iv)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, nil
}

func GetScaleNotes(root string, scale model.ScaleType) ([]string, error) {
	intervals, ok := scaleIntervals[scale]
	if !ok {
		return nil, fmt.Errorf("unknown scale type %q", scale)
	}
	return spellIntervals(root, intervals)
}

func GetChordNotes(root string, chord model.ChordType) ([]string, error) {
	intervals, ok := chordIntervals[chord]
	if !ok {
		return nil, fmt.Errorf("unknown chord type %q", chord)
	}
	return spellIntervals(root, intervals)
}
