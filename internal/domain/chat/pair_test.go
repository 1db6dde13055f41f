package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePair(t *testing.T) {
	a, b := NormalizePair(3, 9)
	assert.Equal(t, uint(3), a)
	assert.Equal(t, uint(9), b)

	a, b = NormalizePair(9, 3)
	assert.Equal(t, uint(3), a)
	assert.Equal(t, uint(9), b)

	a, b = NormalizePair(5, 5)
	assert.Equal(t, uint(5), a)
	assert.Equal(t, uint(5), b)
}
