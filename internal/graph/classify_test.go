package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelThresholds(t *testing.T) {
	cases := []struct {
		count int
		level int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{5, 2},
		{6, 3},
		{10, 3},
		{11, 3},
		{24, 3},
		{25, 4},
		{100, 4},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.level, Level(tc.count), "count %d", tc.count)
	}
}

func TestLevelMonotonic(t *testing.T) {
	prev := Level(0)
	for count := 1; count <= 60; count++ {
		level := Level(count)
		assert.GreaterOrEqual(t, level, prev, "count %d", count)
		prev = level
	}
}
