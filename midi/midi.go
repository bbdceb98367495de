package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/rmerrell/polyvoice/model"
	"github.com/rmerrell/polyvoice/theory"
)

const ticksPerQuarter = 960

const defaultVelocity = 80

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

type timedMessage struct {
	tick    uint64
	isOff   bool
	message midi.Message
}

// ScoreToSMF renders one track per part at 960 ticks per quarter note.
// Tempo and meter changes ride on the first track; note times come from the
// same beat arithmetic the validator uses. defaultTempo applies until the
// first measure-level tempo override.
func ScoreToSMF(score *model.Score, defaultTempo int) (*smf.SMF, error) {
	if len(score.Parts) == 0 {
		return nil, errors.New("score has no parts to export")
	}
	if defaultTempo <= 0 {
		defaultTempo = 120
	}

	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	for i, part := range score.Parts {
		channel := uint8(i % 16)
		var msgs []timedMessage
		msgs = append(msgs, timedMessage{
			tick:    0,
			message: midi.ProgramChange(channel, uint8(part.MidiProgram)),
		})
		if i == 0 {
			msgs = append(msgs, conductorMessages(score, defaultTempo)...)
		}

		partMsgs, err := partMessages(score, part, channel)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, partMsgs...)

		res.Tracks = append(res.Tracks, buildTrack(msgs))
	}
	return &res, nil
}

// WriteScoreFile exports a score to a standard MIDI file on disk.
func WriteScoreFile(score *model.Score, path string, defaultTempo int) error {
	s, err := ScoreToSMF(score, defaultTempo)
	if err != nil {
		return err
	}
	return s.WriteFile(path)
}

// conductorMessages emits the initial tempo/meter plus every measure-level
// override at the tick where it takes effect.
func conductorMessages(score *model.Score, defaultTempo int) []timedMessage {
	msgs := []timedMessage{
		{tick: 0, message: midi.Message(smf.MetaTempo(float64(defaultTempo)))},
		{tick: 0, message: midi.Message(smf.MetaMeter(4, 4))},
	}
	ts := model.TimeSignature{Numerator: 4, Denominator: 4}
	var startBeats float64
	for _, measure := range score.Measures {
		tick := beatsToTicks(startBeats)
		if measure.TimeSignature != nil {
			ts = *measure.TimeSignature
			msgs = append(msgs, timedMessage{
				tick:    tick,
				message: midi.Message(smf.MetaMeter(uint8(ts.Numerator), uint8(ts.Denominator))),
			})
		}
		if measure.Tempo > 0 {
			msgs = append(msgs, timedMessage{
				tick:    tick,
				message: midi.Message(smf.MetaTempo(float64(measure.Tempo))),
			})
		}
		startBeats += ts.BeatsPerMeasure()
	}
	return msgs
}

func partMessages(score *model.Score, part model.Part, channel uint8) ([]timedMessage, error) {
	var msgs []timedMessage
	ts := model.TimeSignature{Numerator: 4, Denominator: 4}
	var startBeats float64
	for _, measure := range score.Measures {
		if measure.TimeSignature != nil {
			ts = *measure.TimeSignature
		}
		for _, staffId := range part.StaffIds {
			staff, ok := findStaff(measure, staffId)
			if !ok {
				continue
			}
			for _, voice := range staff.Voices {
				for _, note := range voice.Notes {
					noteMsgs, err := noteMessages(note, startBeats, channel)
					if err != nil {
						return nil, err
					}
					msgs = append(msgs, noteMsgs...)
				}
			}
		}
		startBeats += ts.BeatsPerMeasure()
	}
	return msgs, nil
}

func noteMessages(note model.MultiVoiceNote, measureStart float64, channel uint8) ([]timedMessage, error) {
	if note.Rest {
		return nil, nil
	}
	beats, ok := theory.DottedBeats(note.Duration, note.Dots)
	if !ok {
		return nil, fmt.Errorf("cannot export note with duration %q", note.Duration)
	}
	on := beatsToTicks(measureStart + note.Time)
	off := beatsToTicks(measureStart + note.Time + beats)
	var msgs []timedMessage
	for _, pitch := range note.Pitches {
		key, err := theory.NoteToMidi(pitch)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs,
			timedMessage{tick: on, message: midi.NoteOn(channel, uint8(key), defaultVelocity)},
			timedMessage{tick: off, isOff: true, message: midi.NoteOff(channel, uint8(key))},
		)
	}
	return msgs, nil
}

func buildTrack(msgs []timedMessage) smf.Track {
	// note offs before note ons at the same tick so repeated pitches don't
	// overlap
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].tick != msgs[j].tick {
			return msgs[i].tick < msgs[j].tick
		}
		return msgs[i].isOff && !msgs[j].isOff
	})

	var track smf.Track
	var prevTick uint64
	for _, m := range msgs {
		delta := uint32(m.tick - prevTick)
		track = append(track, smf.Event{Delta: delta, Message: smf.Message(m.message)})
		prevTick = m.tick
	}
	track.Close(0)
	return track
}

func findStaff(measure model.Measure, staffId string) (model.Staff, bool) {
	var blank model.Staff
	for _, staff := range measure.Staves {
		if staff.Id == staffId {
			return staff, true
		}
	}
	return blank, false
}

func beatsToTicks(beats float64) uint64 {
	return uint64(beats * ticksPerQuarter)
}
