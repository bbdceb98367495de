package validate

import (
	"fmt"
	"strings"

	"github.com/rmerrell/polyvoice/model"
	"github.com/rmerrell/polyvoice/theory"
)

// ValidateExerciseParameters collects every violation instead of stopping at
// the first, so the UI can show all of them at once.
func ValidateExerciseParameters(params model.ExerciseParameters) model.ValidationResult {
	res := model.NewValidationResult()

	if _, err := theory.GetKeySignatureAlterations(params.Key); err != nil {
		res.AddError(err.Error())
	}
	if _, err := theory.GetScaleNotes("C", params.Scale); err != nil {
		res.AddError(err.Error())
	}

	low, high, err := parseNoteRange(params.NoteRange)
	if err != nil {
		res.AddError(err.Error())
	} else if low > high {
		res.AddError(fmt.Sprintf("note range %q is inverted", params.NoteRange))
	}

	if params.Difficulty < 1 || params.Difficulty > 10 {
		res.AddError(fmt.Sprintf("difficulty %v outside [1,10]", params.Difficulty))
	}
	if params.Measures < 1 || params.Measures > 100 {
		res.AddError(fmt.Sprintf("measure count %v outside [1,100]", params.Measures))
	}
	if params.Tempo < 20 || params.Tempo > 300 {
		res.AddError(fmt.Sprintf("tempo %v outside [20,300]", params.Tempo))
	}
	return res
}

// parseNoteRange reads "<low>-<high>", e.g. "C2-C6".
func parseNoteRange(r string) (int, int, error) {
	parts := strings.Split(r, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("note range %q is not of the form C2-C6", r)
	}
	low, err := theory.NoteToMidi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("note range %q: %v", r, err)
	}
	high, err := theory.NoteToMidi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("note range %q: %v", r, err)
	}
	return low, high, nil
}
