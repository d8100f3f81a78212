package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := maps.All(map[string]int{"a": 1})
	b := maps.All(map[string]int{"b": 2})

	var keys []string
	for k, v := range IterSeq2Concat(a, b) {
		keys = append(keys, k)
		assert.Equal(map[string]int{"a": 1, "b": 2}[k], v)
	}
	assert.Equal([]string{"a", "b"}, keys)

	// Early stop.
	count := 0
	for range IterSeq2Concat(a, b) {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestIterSeq2Sorted(t *testing.T) {
	assert := assert.New(t)

	a := maps.All(map[string]int{"z": 1, "m": 2})
	b := maps.All(map[string]int{"a": 3, "m": 4})

	var keys []string
	var values []int
	for k, v := range IterSeq2Sorted(IterSeq2Concat(a, b)) {
		keys = append(keys, k)
		values = append(values, v)
	}
	assert.Equal([]string{"a", "m", "z"}, keys)
	assert.Equal([]int{3, 4, 1}, values)
}
