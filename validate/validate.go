package validate

import (
	"fmt"
	"math"

	"github.com/rmerrell/polyvoice/model"
	"github.com/rmerrell/polyvoice/theory"
	"github.com/rmerrell/polyvoice/util"
)

// beat sums are built from powers of two but keep a tolerance anyway so
// float accumulation can't produce spurious mismatches
const beatEpsilon = 1e-9

type DurationCheck struct {
	Expected float64 `json:"expected"`
	Actual   float64 `json:"actual"`
}

// CalculateVoiceDuration accounts for every note in the voice. It never
// fails; callers diagnose mismatches from the pair. Notes with an unknown
// duration contribute zero beats (ValidateMultiVoiceNote reports those).
func CalculateVoiceDuration(voice model.Voice, ts model.TimeSignature) DurationCheck {
	beats := make([]float64, 0, len(voice.Notes))
	for _, note := range voice.Notes {
		if b, ok := theory.DottedBeats(note.Duration, note.Dots); ok {
			beats = append(beats, b)
		}
	}
	return DurationCheck{
		Expected: ts.BeatsPerMeasure(),
		Actual:   util.Sum(beats),
	}
}

// ValidateMeasureTiming checks that every voice in every staff fills the
// measure exactly. A measure with no voices is valid silence.
func ValidateMeasureTiming(measure model.Measure, ts model.TimeSignature) model.ValidationResult {
	res := model.NewValidationResult()
	for _, staff := range measure.Staves {
		for _, voice := range staff.Voices {
			check := CalculateVoiceDuration(voice, ts)
			if math.Abs(check.Expected-check.Actual) > beatEpsilon {
				res.AddError(fmt.Sprintf(
					"measure %v staff %v voice %v: expected %v beats, got %v",
					measure.Number, staff.Id, voice.Id, check.Expected, check.Actual))
			}
		}
	}
	return res
}

// ValidateVoice checks note chronology. Out-of-order times are warnings, not
// errors: mid-edit voices transiently break ordering and that should not
// fail a save.
func ValidateVoice(voice model.Voice) model.ValidationResult {
	res := model.NewValidationResult()
	for i := 1; i < len(voice.Notes); i++ {
		prev := voice.Notes[i-1].Time
		cur := voice.Notes[i].Time
		if cur < prev {
			res.AddWarning(fmt.Sprintf(
				"voice %v: note %d starts at beat %v, before previous note at %v",
				voice.Id, i, cur, prev))
		}
	}
	return res
}

func ValidateStaff(staff model.Staff) model.ValidationResult {
	res := model.NewValidationResult()
	seen := make(map[string]int)
	for _, voice := range staff.Voices {
		seen[voice.Id]++
	}
	for _, id := range util.GetKeys(seen) {
		if seen[id] > 1 {
			res.AddError(fmt.Sprintf("staff %v: duplicate voice id %q", staff.Id, id))
		}
	}
	return res
}

func ValidatePart(part model.Part) model.ValidationResult {
	res := model.NewValidationResult()
	if part.MidiProgram < 0 || part.MidiProgram > 127 {
		res.AddError(fmt.Sprintf("part %v: midi program %v outside [0,127]", part.Id, part.MidiProgram))
	}
	if part.Volume < 0 || part.Volume > 1 {
		res.AddError(fmt.Sprintf("part %v: volume %v outside [0,1]", part.Id, part.Volume))
	}
	if part.Pan < -1 || part.Pan > 1 {
		res.AddError(fmt.Sprintf("part %v: pan %v outside [-1,1]", part.Id, part.Pan))
	}
	return res
}

func ValidateMultiVoiceNote(note model.MultiVoiceNote) model.ValidationResult {
	res := model.NewValidationResult()
	if !note.Rest {
		if len(note.Pitches) == 0 {
			res.AddError("note has no pitches and is not a rest")
		}
		for _, p := range note.Pitches {
			if _, err := theory.NoteToMidi(p); err != nil {
				res.AddError(err.Error())
			}
		}
	}
	if _, ok := note.Duration.BaseBeats(); !ok {
		res.AddError(fmt.Sprintf("note has missing or unknown duration %q", note.Duration))
	}
	if note.Time < 0 {
		res.AddError(fmt.Sprintf("note has missing or negative time %v", note.Time))
	}
	if note.VoiceId == "" {
		res.AddError("note has no voice id")
	}
	return res
}

// ValidateScore runs the whole battery: part ranges, referential integrity
// of staff ids across every measure, per-staff and per-voice checks, and
// measure timing with time-signature overrides threaded forward from 4/4.
func ValidateScore(score *model.Score) model.ValidationResult {
	res := model.NewValidationResult()

	for _, part := range score.Parts {
		res.Absorb(ValidatePart(part))
		for _, staffId := range part.StaffIds {
			for _, measure := range score.Measures {
				if !measureHasStaff(measure, staffId) {
					res.AddError(fmt.Sprintf(
						"part %v references staff %q absent from measure %v",
						part.Id, staffId, measure.Number))
					break
				}
			}
		}
	}

	ts := model.TimeSignature{Numerator: 4, Denominator: 4}
	for _, measure := range score.Measures {
		if measure.TimeSignature != nil {
			ts = *measure.TimeSignature
		}
		res.Absorb(ValidateMeasureTiming(measure, ts))
		for _, staff := range measure.Staves {
			res.Absorb(ValidateStaff(staff))
			for _, voice := range staff.Voices {
				res.Absorb(ValidateVoice(voice))
				for _, note := range voice.Notes {
					res.Absorb(ValidateMultiVoiceNote(note))
				}
			}
		}
	}
	return res
}

func measureHasStaff(measure model.Measure, staffId string) bool {
	for _, staff := range measure.Staves {
		if staff.Id == staffId {
			return true
		}
	}
	return false
}
