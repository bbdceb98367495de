package convert

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rmerrell/polyvoice/model"
	"github.com/rmerrell/polyvoice/theory"
	"github.com/rmerrell/polyvoice/util"
)

// GrandStaffSplit is the partition point for grand-staff measures: middle C.
// Notes at or above it land in the treble/rightHand voice.
const GrandStaffSplit = 60

const (
	trebleStaffId = "treble"
	bassStaffId   = "bass"
	rightHandId   = "rightHand"
	leftHandId    = "leftHand"
)

// SheetMusicToScore lifts the flat legacy model into the multi-voice one.
// Grand-staff measures partition every note into exactly one of two voices;
// any other clef keeps all notes in a single voice. Measure overrides pass
// through unchanged.
func SheetMusicToScore(flat *model.SheetMusic) *model.Score {
	score := model.NewScore(flat.Title, flat.Composer)

	grand := flat.Clef == model.ClefGrandStaff
	score.Parts = []model.Part{buildPart(flat, grand)}

	for _, sm := range flat.Measures {
		measure := model.Measure{
			Number:        sm.Number,
			TimeSignature: sm.TimeSignature,
			KeySignature:  sm.KeySignature,
			Tempo:         sm.Tempo,
			Dynamic:       sm.Dynamic,
			RehearsalMark: sm.RehearsalMark,
			BarLine:       sm.BarLine,
			RepeatCount:   sm.RepeatCount,
		}
		if grand {
			measure.Staves = splitGrandStaff(sm.Notes)
		} else {
			clef := flat.Clef
			if clef == "" {
				clef = model.ClefTreble
			}
			voice := model.Voice{Id: "melody", Notes: make([]model.MultiVoiceNote, 0, len(sm.Notes))}
			for _, n := range sm.Notes {
				voice.Notes = append(voice.Notes, toMultiVoiceNote(n, "melody"))
			}
			measure.Staves = []model.Staff{{Id: string(clef), Clef: clef, Voices: []model.Voice{voice}}}
		}
		score.Measures = append(score.Measures, measure)
	}
	return score
}

func buildPart(flat *model.SheetMusic, grand bool) model.Part {
	instrument := flat.Instrument
	if instrument == "" {
		if grand {
			instrument = model.InstrumentPiano
		} else {
			instrument = model.InstrumentGuitar
		}
	}
	part := model.Part{
		Id:         "part0",
		Instrument: string(instrument),
		Volume:     0.8,
	}
	if instrument == model.InstrumentGuitar {
		part.MidiProgram = 24
	}
	if grand {
		part.StaffIds = []string{trebleStaffId, bassStaffId}
	} else {
		clef := flat.Clef
		if clef == "" {
			clef = model.ClefTreble
		}
		part.StaffIds = []string{string(clef)}
	}
	return part
}

// splitGrandStaff partitions notes at GrandStaffSplit. A chord goes where
// its lowest pitch says, so no note is ever split or duplicated. Rests stay
// with the right hand.
func splitGrandStaff(notes []model.Note) []model.Staff {
	right := model.Voice{Id: rightHandId, Notes: []model.MultiVoiceNote{}}
	left := model.Voice{Id: leftHandId, Notes: []model.MultiVoiceNote{}}
	for _, n := range notes {
		if lowestPitch(n) >= GrandStaffSplit {
			right.Notes = append(right.Notes, toMultiVoiceNote(n, rightHandId))
		} else {
			left.Notes = append(left.Notes, toMultiVoiceNote(n, leftHandId))
		}
	}
	return []model.Staff{
		{Id: trebleStaffId, Clef: model.ClefTreble, Voices: []model.Voice{right}},
		{Id: bassStaffId, Clef: model.ClefBass, Voices: []model.Voice{left}},
	}
}

// lowestPitch places unpitched or unparseable notes above the split so they
// default to the right hand.
func lowestPitch(n model.Note) int {
	if n.Rest || len(n.Pitches) == 0 {
		return GrandStaffSplit
	}
	lowest := 128
	for _, p := range n.Pitches {
		midi, err := theory.NoteToMidi(p)
		if err != nil {
			continue
		}
		lowest = util.Min(lowest, midi)
	}
	return lowest
}

func toMultiVoiceNote(n model.Note, voiceId string) model.MultiVoiceNote {
	return model.MultiVoiceNote{
		Pitches:      n.Pitches,
		Rest:         n.Rest,
		Duration:     n.Duration,
		Dots:         n.Dots,
		Time:         n.Time,
		VoiceId:      voiceId,
		Accidental:   n.Accidental,
		Articulation: n.Articulation,
		Dynamic:      n.Dynamic,
		Fingering:    n.Fingering,
		Tie:          n.Tie,
	}
}

func toFlatNote(n model.MultiVoiceNote) model.Note {
	return model.Note{
		Pitches:      n.Pitches,
		Rest:         n.Rest,
		Duration:     n.Duration,
		Dots:         n.Dots,
		Time:         n.Time,
		Accidental:   n.Accidental,
		Articulation: n.Articulation,
		Dynamic:      n.Dynamic,
		Fingering:    n.Fingering,
		Tie:          n.Tie,
	}
}

// ScoreToSheetMusic flattens every staff and voice into one time-ordered
// note list per measure. Ties break by staff order, then voice order, then
// original note order (stable sort over in-order appends).
func ScoreToSheetMusic(score *model.Score) *model.SheetMusic {
	flat := &model.SheetMusic{
		Title:      score.Title,
		Composer:   score.Composer,
		Clef:       inferClef(score),
		Instrument: inferInstrument(score),
	}
	for _, measure := range score.Measures {
		sm := model.SheetMeasure{
			Number:        measure.Number,
			Notes:         []model.Note{},
			TimeSignature: measure.TimeSignature,
			KeySignature:  measure.KeySignature,
			Tempo:         measure.Tempo,
			Dynamic:       measure.Dynamic,
			RehearsalMark: measure.RehearsalMark,
			BarLine:       measure.BarLine,
			RepeatCount:   measure.RepeatCount,
		}
		for _, staff := range measure.Staves {
			for _, voice := range staff.Voices {
				for _, note := range voice.Notes {
					sm.Notes = append(sm.Notes, toFlatNote(note))
				}
			}
		}
		sort.SliceStable(sm.Notes, func(i, j int) bool {
			return sm.Notes[i].Time < sm.Notes[j].Time
		})
		flat.Measures = append(flat.Measures, sm)
	}
	return flat
}

func inferClef(score *model.Score) model.Clef {
	if len(score.Parts) > 0 && len(score.Parts[0].StaffIds) >= 2 {
		return model.ClefGrandStaff
	}
	for _, measure := range score.Measures {
		for _, staff := range measure.Staves {
			return staff.Clef
		}
	}
	return model.ClefTreble
}

// inferInstrument is deliberately binary: piano when any part says so, else
// guitar. Isolated here so an instrument table can replace it.
func inferInstrument(score *model.Score) model.Instrument {
	for _, part := range score.Parts {
		if strings.Contains(strings.ToLower(part.Instrument), "piano") {
			return model.InstrumentPiano
		}
	}
	return model.InstrumentGuitar
}

// ExtractVoiceFromScore keeps only the staves containing the named voice,
// and within them only that voice. An unknown id yields a score whose every
// measure has zero staves; that is not an error.
func ExtractVoiceFromScore(score *model.Score, voiceId string) *model.Score {
	extracted := *score
	extracted.Title = score.Title + " - " + voiceId
	extracted.Measures = make([]model.Measure, 0, len(score.Measures))
	for _, measure := range score.Measures {
		m := measure
		m.Staves = []model.Staff{}
		for _, staff := range measure.Staves {
			for _, voice := range staff.Voices {
				if voice.Id == voiceId {
					m.Staves = append(m.Staves, model.Staff{
						Id:     staff.Id,
						Clef:   staff.Clef,
						Voices: []model.Voice{voice},
					})
					break
				}
			}
		}
		extracted.Measures = append(extracted.Measures, m)
	}
	return &extracted
}

// MergeScores combines measure-aligned scores into one. Part ids are
// renumbered part0..partN by a running index; per measure index the staves
// lists concatenate in input order.
//
// An empty input is caller misuse and panics. A single score comes back as
// the same pointer: treat it as shared and read-only.
func MergeScores(scores []*model.Score, title string) *model.Score {
	if len(scores) == 0 {
		panic("Not supposed to merge zero scores!")
	}
	if len(scores) == 1 {
		return scores[0]
	}

	if title == "" {
		title = "Merged Score"
	}
	merged := model.NewScore(title, "")

	partNum := 0
	numMeasures := 0
	for _, score := range scores {
		for _, part := range score.Parts {
			p := part
			p.Id = fmt.Sprintf("part%d", partNum)
			partNum++
			merged.Parts = append(merged.Parts, p)
		}
		if len(score.Measures) > numMeasures {
			numMeasures = len(score.Measures)
		}
	}

	for i := 0; i < numMeasures; i++ {
		measure := model.Measure{Number: i, Staves: []model.Staff{}}
		for _, score := range scores {
			if i >= len(score.Measures) {
				continue
			}
			in := score.Measures[i]
			measure.Staves = append(measure.Staves, in.Staves...)
			// overrides win first-come, matching stave order
			if measure.TimeSignature == nil {
				measure.TimeSignature = in.TimeSignature
			}
			if measure.KeySignature == nil {
				measure.KeySignature = in.KeySignature
			}
			if measure.Tempo == 0 {
				measure.Tempo = in.Tempo
			}
			if measure.Dynamic == "" {
				measure.Dynamic = in.Dynamic
			}
			if measure.RehearsalMark == "" {
				measure.RehearsalMark = in.RehearsalMark
			}
			if measure.BarLine == "" {
				measure.BarLine = in.BarLine
			}
			if measure.RepeatCount == 0 {
				measure.RepeatCount = in.RepeatCount
			}
		}
		merged.Measures = append(merged.Measures, measure)
	}
	return merged
}
