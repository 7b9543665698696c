package util

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKeys(t *testing.T) {
	assert := assert.New(t)
	keys := GetKeys(map[string]int{"b": 1, "a": 2, "c": 3})
	sort.Strings(keys)
	assert.Equal([]string{"a", "b", "c"}, keys)
	assert.Empty(GetKeys(map[string]int{}))
}

func TestMax(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(int64(1), Max(int64(1), int64(0)))
	assert.Equal(int64(1), Max(int64(0), int64(1)))
	assert.Equal(int64(1), Max(int64(1), int64(-5)))
	assert.Equal(uint8(7), Max(uint8(7), uint8(7)))
}
