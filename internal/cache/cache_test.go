package cache_test

import (
	"testing"
	"time"

	"pulsefit/fitness-app/internal/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCache_ReadWrite(t *testing.T) {
	c := cache.NewSessionCache()

	_, ok := c.Read("today:u1:2024-06-03", time.Minute)
	assert.False(t, ok)

	c.Write("today:u1:2024-06-03", []byte(`{"workoutTitle":"Push Day"}`))

	got, ok := c.Read("today:u1:2024-06-03", time.Minute)
	require.True(t, ok)
	assert.JSONEq(t, `{"workoutTitle":"Push Day"}`, string(got))
}

func TestSessionCache_MaxAge(t *testing.T) {
	c := cache.NewSessionCache()
	c.Write("k", []byte(`"v"`))

	// An already-written entry older than maxAge is a miss.
	_, ok := c.Read("k", 0)
	assert.False(t, ok)

	got, ok := c.Read("k", time.Minute)
	require.True(t, ok)
	assert.Equal(t, `"v"`, string(got))
}

func TestSessionCache_Invalidate(t *testing.T) {
	c := cache.NewSessionCache()
	c.Write("k", []byte(`"v"`))
	c.Invalidate("k")

	_, ok := c.Read("k", time.Minute)
	assert.False(t, ok)
}
