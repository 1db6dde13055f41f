package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAroundOneDegreeRadius(t *testing.T) {
	// 111.32 km is exactly one degree, so the box around the origin
	// spans [-1, 1] on both axes.
	box := Around(0, 0, 111.32)

	assert.InDelta(t, -1, box.MinLat, 1e-9)
	assert.InDelta(t, 1, box.MaxLat, 1e-9)
	assert.InDelta(t, -1, box.MinLng, 1e-9)
	assert.InDelta(t, 1, box.MaxLng, 1e-9)
}

func TestAroundOffsetCenter(t *testing.T) {
	box := Around(45.5, -73.6, 55.66)

	assert.InDelta(t, 45.0, box.MinLat, 1e-9)
	assert.InDelta(t, 46.0, box.MaxLat, 1e-9)
	assert.InDelta(t, -74.1, box.MinLng, 1e-9)
	assert.InDelta(t, -73.1, box.MaxLng, 1e-9)
}

func TestContainsBoundaryInclusive(t *testing.T) {
	box := Around(0, 0, 111.32)

	tests := []struct {
		name string
		lat  float64
		lng  float64
		want bool
	}{
		{"center", 0, 0, true},
		{"north edge", 1, 0, true},
		{"south edge", -1, 0, true},
		{"east edge", 0, 1, true},
		{"west edge", 0, -1, true},
		{"corner", 1, 1, true},
		{"just outside lat", 1.0001, 0, false},
		{"just outside lng", 0, -1.0001, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, box.Contains(tc.lat, tc.lng))
		})
	}
}

// The square filter keeps corner points that a true circle would drop.
func TestAroundIsSquareNotCircle(t *testing.T) {
	box := Around(0, 0, 111.32)

	// ~1.41 degrees from the center, well past the 1-degree radius.
	assert.True(t, box.Contains(0.99, 0.99))
}
