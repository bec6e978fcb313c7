package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute)

	type payload struct {
		Name string `json:"name"`
	}

	hit, err := c.GetJSON(ctx, "k", &payload{})
	require.NoError(t, err)
	require.False(t, hit)

	require.NoError(t, c.SetJSON(ctx, "k", payload{Name: "Jane"}, time.Minute))

	var got payload
	hit, err = c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, "Jane", got.Name)

	require.NoError(t, c.Del(ctx, "k"))
	hit, err = c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	require.False(t, hit)
}
