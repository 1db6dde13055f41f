package payments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Without an access token payments are off and booking creation must not
// be affected.
func TestNilClientSkipsPreference(t *testing.T) {
	var c *Client

	pref, err := c.CreateBookingPreference(context.Background(), 1, "Pipe fix", 80)
	require.NoError(t, err)
	assert.Nil(t, pref)
}

func TestNewWithoutTokenDisablesPayments(t *testing.T) {
	assert.Nil(t, New(""))
}
