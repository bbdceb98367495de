package midi

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rmerrell/polyvoice/model"
)

func exportableScore() *model.Score {
	score := model.NewScore("Export", "")
	score.Parts = []model.Part{{Id: "part0", Instrument: "piano", StaffIds: []string{"treble"}}}
	score.Measures = []model.Measure{{
		Number: 0,
		Staves: []model.Staff{{Id: "treble", Clef: model.ClefTreble, Voices: []model.Voice{{
			Id: "v1",
			Notes: []model.MultiVoiceNote{
				{Pitches: []string{"C4"}, Duration: model.Quarter, Time: 0, VoiceId: "v1"},
				{Pitches: []string{"E4"}, Duration: model.Quarter, Time: 1, VoiceId: "v1"},
				{Rest: true, Duration: model.Half, Time: 2, VoiceId: "v1"},
			},
		}}}},
	}}
	return score
}

func TestScoreToSMFTracksPerPart(t *testing.T) {
	assert := assert.New(t)

	s, err := ScoreToSMF(exportableScore(), 120)
	assert.NoError(err)
	assert.Len(s.Tracks, 1)
}

func TestScoreToSMFNoteEvents(t *testing.T) {
	assert := assert.New(t)

	s, err := ScoreToSMF(exportableScore(), 120)
	assert.NoError(err)

	type onOff struct {
		key   uint8
		tick  uint64
		isOff bool
	}
	var got []onOff
	var absTicks uint64
	for _, event := range s.Tracks[0] {
		absTicks += uint64(event.Delta)
		var channel uint8
		var key uint8
		var velocity uint8
		switch {
		case event.Message.GetNoteOn(&channel, &key, &velocity):
			got = append(got, onOff{key: key, tick: absTicks})
		case event.Message.GetNoteOff(&channel, &key, &velocity):
			got = append(got, onOff{key: key, tick: absTicks, isOff: true})
		}
	}

	// C4 on the downbeat, E4 a quarter later; the rest emits nothing
	assert.Equal([]onOff{
		{key: 60, tick: 0},
		{key: 60, tick: 960, isOff: true},
		{key: 64, tick: 960},
		{key: 64, tick: 1920, isOff: true},
	}, got)
}

func TestScoreToSMFRequiresParts(t *testing.T) {
	score := model.NewScore("Empty", "")
	_, err := ScoreToSMF(score, 120)
	assert.Error(t, err)
}

func TestScoreToSMFRejectsUnknownDurations(t *testing.T) {
	score := exportableScore()
	score.Measures[0].Staves[0].Voices[0].Notes[0].Duration = "breve"
	_, err := ScoreToSMF(score, 120)
	assert.Error(t, err)
}

func TestWriteAndReadScoreFile(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "export.mid")
	err := WriteScoreFile(exportableScore(), path, 120)
	assert.NoError(err)

	s, err := ReadMidiFile(path)
	assert.NoError(err)
	assert.Len(s.Tracks, 1)
}
