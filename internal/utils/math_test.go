package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomIntN(t *testing.T) {
	assert.Equal(t, 0, RandomIntN(0))
	assert.Equal(t, 0, RandomIntN(-3))
	assert.Equal(t, 0, RandomIntN(1))

	for i := 0; i < 100; i++ {
		v := RandomIntN(5)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
	}
}

func TestRandomFloat(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := RandomFloat()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		expected int
	}{
		{"below range", -5, 1},
		{"in range", 50, 50},
		{"above range", 500, 100},
		{"lower edge", 1, 1},
		{"upper edge", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampInt(tt.value, 1, 100))
		})
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(3, 0))
	assert.InDelta(t, 0.25, Ratio(1, 4), 1e-9)
}
