package util

import (
	"encoding/json"
	"os"
	"sort"

	"golang.org/x/exp/constraints"
)

// GetKeys returns map keys in sorted order so error output is deterministic.
func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Min[A constraints.Ordered](a A, b A) A {
	if a > b {
		return b
	}
	return a
}

func Sum[A constraints.Integer | constraints.Float](nums []A) A {
	var total A
	for _, v := range nums {
		total += v
	}
	return total
}

func CreateJSON(filename string, data any) {
	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		panic("Couldn't marshal for file: " + filename + ": " + err.Error())
	}
	if err := os.WriteFile(filename, buf, 0644); err != nil {
		panic("Write failed for file: " + filename + ": " + err.Error())
	}
}

func ReadJSONOrPanic[A any](path string) A {
	buf, err := os.ReadFile(path)
	if err != nil {
		panic("Couldn't read file: " + err.Error())
	}
	var data A
	if err := json.Unmarshal(buf, &data); err != nil {
		panic("Could not decode JSON file: " + err.Error())
	}
	return data
}
