package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/rmerrell/polyvoice/model"
	"github.com/rmerrell/polyvoice/theory"
)

func doRequest(t *testing.T, method string, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			panic(err.Error())
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	return w.Result()
}

func TestHandleValidate(t *testing.T) {
	assert := assert.New(t)

	score := model.NewScore("Empty", "")
	resp := doRequest(t, http.MethodPost, "/validate", score)
	assert.Equal(200, resp.StatusCode)

	var res model.ValidationResult
	assert.NoError(json.NewDecoder(resp.Body).Decode(&res))
	assert.True(res.Valid)
}

func TestHandleConvertScore(t *testing.T) {
	assert := assert.New(t)

	flat := model.SheetMusic{
		Title:      "Prelude",
		Clef:       model.ClefGrandStaff,
		Instrument: model.InstrumentPiano,
		Measures: []model.SheetMeasure{{
			Number: 0,
			Notes: []model.Note{
				{Pitches: []string{"C5"}, Duration: model.Whole, Time: 0},
			},
		}},
	}
	resp := doRequest(t, http.MethodPost, "/convert/score", flat)
	assert.Equal(200, resp.StatusCode)

	var score model.Score
	assert.NoError(json.NewDecoder(resp.Body).Decode(&score))
	assert.Len(score.Measures, 1)
	assert.Len(score.Measures[0].Staves, 2)
}

func TestHandleMergeRejectsEmptyInput(t *testing.T) {
	assert := assert.New(t)

	resp := doRequest(t, http.MethodPost, "/merge", model.MergeRequestBody{})
	assert.Equal(400, resp.StatusCode)

	var errRes model.ErrorResponse
	assert.NoError(json.NewDecoder(resp.Body).Decode(&errRes))
	assert.Contains(errRes.Error, "at least one score")
}

func TestHandleScales(t *testing.T) {
	assert := assert.New(t)

	resp := doRequest(t, http.MethodGet, "/scales/C/major", nil)
	assert.Equal(200, resp.StatusCode)

	var res model.NotesResponse
	assert.NoError(json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal([]string{"C", "D", "E", "F", "G", "A", "B"}, res.Notes)

	resp = doRequest(t, http.MethodGet, "/scales/C/phrygian", nil)
	assert.Equal(400, resp.StatusCode)
}

func TestRequestLoggingPassesThrough(t *testing.T) {
	assert := assert.New(t)

	hook := logtest.NewGlobal()
	defer hook.Reset()

	req := httptest.NewRequest(http.MethodGet, "/scales/C/major", nil)
	w := httptest.NewRecorder()
	logRequests(NewRouter()).ServeHTTP(w, req)

	assert.Equal(200, w.Result().StatusCode)
	assert.NotEmpty(hook.Entries)
	last := hook.LastEntry()
	assert.Equal("GET", last.Data["method"])
	assert.Equal("/scales/C/major", last.Data["path"])
}

func TestHandleKeys(t *testing.T) {
	assert := assert.New(t)

	resp := doRequest(t, http.MethodGet, "/keys/G_MAJOR", nil)
	assert.Equal(200, resp.StatusCode)

	var res theory.Alterations
	assert.NoError(json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal([]string{"F#"}, res.Sharps)
	assert.Empty(res.Flats)
}
