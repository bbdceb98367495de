package model

type MergeRequestBody struct {
	Scores []*Score `json:"scores"`
	Title  string   `json:"title,omitempty"`
}

type NotesResponse struct {
	Notes []string `json:"notes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
