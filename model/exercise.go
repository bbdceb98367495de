package model

// ExerciseParameters comes from the exercise-generation UI. The core only
// validates it; content synthesis happens elsewhere.
type ExerciseParameters struct {
	Key           KeySignature  `json:"key"`
	Scale         ScaleType     `json:"scale"`
	NoteRange     string        `json:"noteRange"` // e.g. "C2-C6"
	Difficulty    int           `json:"difficulty"`
	Measures      int           `json:"measures"`
	Tempo         int           `json:"tempo"`
	TimeSignature TimeSignature `json:"timeSignature"`
}
