package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateAverage(t *testing.T) {
	assert.Equal(t, 0.0, CalculateAverage(10, 0))
	assert.Equal(t, 2.5, CalculateAverage(5, 2))
	assert.InDelta(t, 1.0/3.0, CalculateAverage(1, 3), 1e-9)
}

func TestCalculateAverages(t *testing.T) {
	w, ta, r := CalculateAverages([]int{0, 1, 2}, []int{2, 3, 4}, []int{0, 0, 3})
	assert.Equal(t, 1.0, w)
	assert.Equal(t, 3.0, ta)
	assert.Equal(t, 1.0, r)

	w, ta, r = CalculateAverages(nil, nil, nil)
	assert.Zero(t, w)
	assert.Zero(t, ta)
	assert.Zero(t, r)
}
