package runtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEstimateETA(t *testing.T) {
	t.Run("mean of recorded durations times remaining", func(t *testing.T) {
		eta := EstimateETA([]float64{2, 4}, 3)
		assert.Equal(t, 9*time.Second, eta)
	})

	t.Run("no samples yet", func(t *testing.T) {
		assert.Zero(t, EstimateETA(nil, 5))
	})

	t.Run("nothing remaining", func(t *testing.T) {
		assert.Zero(t, EstimateETA([]float64{2}, 0))
	})

	t.Run("fractional durations", func(t *testing.T) {
		eta := EstimateETA([]float64{1.5}, 2)
		assert.Equal(t, 3*time.Second, eta)
	})
}
