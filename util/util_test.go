package util

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKeysAreSorted(t *testing.T) {
	m := map[string]int{"treble": 1, "alto": 2, "bass": 3}
	assert.Equal(t, []string{"alto", "bass", "treble"}, GetKeys(m))
}

func TestMin(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(59, Min(128, 59))
	assert.Equal(59, Min(59, 128))
	assert.Equal(1.5, Min(1.5, 4.0))
}

func TestSum(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(4.0, Sum([]float64{1, 1, 2}))
	assert.Equal(0, Sum([]int{}))
}

func TestJSONFileRoundTrip(t *testing.T) {
	assert := assert.New(t)

	type payload struct {
		Title string   `json:"title"`
		Tags  []string `json:"tags"`
	}
	path := filepath.Join(t.TempDir(), "score.json")
	CreateJSON(path, payload{Title: "Etude", Tags: []string{"practice"}})

	got := ReadJSONOrPanic[payload](path)
	assert.Equal("Etude", got.Title)
	assert.Equal([]string{"practice"}, got.Tags)
}
