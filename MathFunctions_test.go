package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowAggregates(t *testing.T) {
	t.Run("skip_empty_cells", func(t *testing.T) {
		args := []any{int64(4), nil, int64(10), nil, int64(1)}

		maxValue, _ := calculateMax(args...)
		minValue, _ := calculateMin(args...)
		sum, _ := calculateSum(args...)
		avg, _ := calculateAvg(args...)

		assert.Equal(t, int64(10), maxValue)
		assert.Equal(t, int64(1), minValue)
		assert.Equal(t, 15, sum)
		assert.Equal(t, float64(5), avg)
	})

	t.Run("mixed_numbers", func(t *testing.T) {
		sum, _ := calculateSum(int64(1), 2.5)
		maxValue, _ := calculateMax(int64(3), 2.5)

		assert.Equal(t, 3.5, sum)
		assert.Equal(t, int64(3), maxValue)
	})

	t.Run("only_empty_cells", func(t *testing.T) {
		maxValue, _ := calculateMax(nil, nil)
		minValue, _ := calculateMin()
		sum, _ := calculateSum(nil)
		avg, _ := calculateAvg(nil, nil)

		assert.Nil(t, maxValue)
		assert.Nil(t, minValue)
		assert.Equal(t, 0, sum)
		assert.Equal(t, 0, avg)
	})
}
