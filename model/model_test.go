package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBeatsPerMeasure(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(4.0, TimeSignature{Numerator: 4, Denominator: 4}.BeatsPerMeasure())
	assert.Equal(3.0, TimeSignature{Numerator: 3, Denominator: 4}.BeatsPerMeasure())
	assert.Equal(3.0, TimeSignature{Numerator: 6, Denominator: 8}.BeatsPerMeasure())
	assert.Equal(2.0, TimeSignature{Numerator: 2, Denominator: 4}.BeatsPerMeasure())
}

func TestBaseBeats(t *testing.T) {
	assert := assert.New(t)

	beats, ok := Quarter.BaseBeats()
	assert.True(ok)
	assert.Equal(1.0, beats)

	_, ok = NoteDuration("breve").BaseBeats()
	assert.False(ok)
}

func TestNewScoreStampsIdentityAndTimes(t *testing.T) {
	assert := assert.New(t)

	score := NewScore("Etude", "Czerny")
	assert.NotEmpty(score.Id)
	assert.Equal("Etude", score.Title)
	assert.Equal("Czerny", score.Composer)
	assert.False(score.CreatedAt.IsZero())
	assert.Equal(score.CreatedAt, score.UpdatedAt)
}

func TestValidationResultAbsorb(t *testing.T) {
	assert := assert.New(t)

	res := NewValidationResult()
	assert.True(res.Valid)

	other := NewValidationResult()
	other.AddWarning("late note")
	res.Absorb(other)
	assert.True(res.Valid)
	assert.Len(res.Warnings, 1)

	bad := NewValidationResult()
	bad.AddError("duplicate voice")
	res.Absorb(bad)
	assert.False(res.Valid)
	assert.Len(res.Errors, 1)
}
