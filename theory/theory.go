package theory

import (
	"fmt"
	"strconv"

	"github.com/rmerrell/polyvoice/model"
)

// Semitone offsets of the natural letters within an octave.
var letterSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// Canonical spelling for each pitch class. The MIDI mapping is many-to-one
// (C# and Db share an index), so anything round-tripped through an integer
// comes back sharp-spelled.
var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// parsePitch accepts "C", "F#", "Bb4" etc. hasOctave reports whether the
// trailing octave digit was present. sem is the offset from the octave's C
// and stays unwrapped (-1 for Cb, 12 for B#) so the octave carry survives;
// pitch-class callers normalize it themselves.
func parsePitch(pitch string) (sem int, octave int, hasOctave bool, err error) {
	if len(pitch) == 0 {
		return 0, 0, false, fmt.Errorf("could not parse pitch %q: empty", pitch)
	}
	sem, ok := letterSemitones[pitch[0]]
	if !ok {
		return 0, 0, false, fmt.Errorf("could not parse pitch %q: bad letter", pitch)
	}
	rest := pitch[1:]
	if len(rest) > 0 {
		switch rest[0] {
		case '#':
			sem++
			rest = rest[1:]
		case 'b':
			sem--
			rest = rest[1:]
		}
	}
	if len(rest) == 0 {
		return sem, 0, false, nil
	}
	octave, aerr := strconv.Atoi(rest)
	if aerr != nil || octave < 0 || octave > 9 {
		return 0, 0, false, fmt.Errorf("could not parse pitch %q: bad octave", pitch)
	}
	return sem, octave, true, nil
}

// NoteToMidi converts e.g. "C4" to 60. The octave is required here, and the
// resulting index must land on the keyboard: Cb4 is 59 (B3) and B#4 is 72
// (C5), sharing an index with their enharmonic spellings.
func NoteToMidi(pitch string) (int, error) {
	sem, octave, hasOctave, err := parsePitch(pitch)
	if err != nil {
		return 0, err
	}
	if !hasOctave {
		return 0, fmt.Errorf("could not parse pitch %q: missing octave", pitch)
	}
	n := (octave+1)*12 + sem
	if n < 0 || n > 127 {
		return 0, fmt.Errorf("pitch %q is outside the midi range", pitch)
	}
	return n, nil
}

// MidiToNote is the sharp-spelled inverse of NoteToMidi.
func MidiToNote(n int) (string, error) {
	if n < 0 || n > 127 {
		return "", fmt.Errorf("midi note %v out of range", n)
	}
	return sharpNames[n%12] + strconv.Itoa(n/12-1), nil
}

// TransposeNote shifts a pitch by semitones and normalizes the spelling.
func TransposeNote(pitch string, semitones int) (string, error) {
	n, err := NoteToMidi(pitch)
	if err != nil {
		return "", err
	}
	return MidiToNote(n + semitones)
}

// DottedBeats is the length in beats of a duration with k dots:
// base × (2 − 2^−k).
func DottedBeats(d model.NoteDuration, dots int) (float64, bool) {
	base, ok := d.BaseBeats()
	if !ok || dots < 0 {
		return 0, false
	}
	mult := 2 - 1/float64(int(1)<<dots)
	return base * mult, true
}
