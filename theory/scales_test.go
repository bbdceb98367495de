package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rmerrell/polyvoice/model"
)

func TestScaleWithoutOctaveReturnsPitchClasses(t *testing.T) {
	assert := assert.New(t)

	notes, err := GetScaleNotes("C", model.ScaleMajor)
	assert.NoError(err)
	assert.Equal([]string{"C", "D", "E", "F", "G", "A", "B"}, notes)

	notes, err = GetScaleNotes("A", model.ScaleNaturalMinor)
	assert.NoError(err)
	assert.Equal([]string{"A", "B", "C", "D", "E", "F", "G"}, notes)

	notes, err = GetScaleNotes("C", model.ScalePentatonicMajor)
	assert.NoError(err)
	assert.Equal([]string{"C", "D", "E", "G", "A"}, notes)
}

func TestScaleWithOctaveReturnsAbsolutePitches(t *testing.T) {
	assert := assert.New(t)

	notes, err := GetScaleNotes("C4", model.ScaleMajor)
	assert.NoError(err)
	assert.Equal([]string{"C4", "D4", "E4", "F4", "G4", "A4", "B4"}, notes)

	// upper degrees cross into the next octave
	notes, err = GetScaleNotes("A4", model.ScaleMajor)
	assert.NoError(err)
	assert.Equal([]string{"A4", "B4", "C#5", "D5", "E5", "F#5", "G#5"}, notes)
}

func TestScaleErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := GetScaleNotes("C", model.ScaleType("mixolydian"))
	assert.Error(err)

	_, err = GetScaleNotes("H", model.ScaleMajor)
	assert.Error(err)
}

func TestChordNotes(t *testing.T) {
	assert := assert.New(t)

	notes, err := GetChordNotes("C", model.ChordMajor)
	assert.NoError(err)
	assert.Equal([]string{"C", "E", "G"}, notes)

	notes, err = GetChordNotes("A", model.ChordMinor)
	assert.NoError(err)
	assert.Equal([]string{"A", "C", "E"}, notes)

	// flat spellings normalize to sharps
	notes, err = GetChordNotes("C4", model.ChordDominant7)
	assert.NoError(err)
	assert.Equal([]string{"C4", "E4", "G4", "A#4"}, notes)

	_, err = GetChordNotes("C", model.ChordType("sus4"))
	assert.Error(err)
}
