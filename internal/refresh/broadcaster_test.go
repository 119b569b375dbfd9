package refresh_test

import (
	"testing"

	"pulsefit/fitness-app/internal/refresh"

	"github.com/stretchr/testify/assert"
)

func TestBroadcaster_TriggerInvokesAll(t *testing.T) {
	b := refresh.NewBroadcaster()

	var calls []string
	b.Register(func() { calls = append(calls, "a") })
	b.Register(func() { calls = append(calls, "b") })

	b.TriggerRefetch()
	assert.Len(t, calls, 2)
	assert.ElementsMatch(t, []string{"a", "b"}, calls)
}

func TestBroadcaster_Unsubscribe(t *testing.T) {
	b := refresh.NewBroadcaster()

	called := 0
	unsub := b.Register(func() { called++ })

	b.TriggerRefetch()
	assert.Equal(t, 1, called)

	unsub()
	unsub() // second call is a no-op

	b.TriggerRefetch()
	assert.Equal(t, 1, called)
}

func TestBroadcaster_PanickingListenerDoesNotBlockOthers(t *testing.T) {
	b := refresh.NewBroadcaster()

	survived := false
	b.Register(func() { panic("listener gone wrong") })
	b.Register(func() { survived = true })

	assert.NotPanics(t, func() { b.TriggerRefetch() })
	assert.True(t, survived)
}
