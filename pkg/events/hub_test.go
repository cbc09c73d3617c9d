package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventHubPublish(t *testing.T) {
	h := NewEventHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	h.Publish(DesignCompleted, DesignCompletedEvent{R1: 2400, R2: 300, R3: 62000, Error: 0.0019})

	ev := <-ch
	assert.Equal(t, DesignCompleted, ev.Name)

	payload, err := DecodeAs[DesignCompletedEvent](ev)
	require.NoError(t, err)
	assert.Equal(t, 2400.0, payload.R1)
	assert.Equal(t, 62000.0, payload.R3)
}

func TestEventHubDropsWhenFull(t *testing.T) {
	h := NewEventHub()
	ch := h.Subscribe()

	for i := 0; i < 100; i++ {
		h.Publish(ConfigChanged, ConfigChangedEvent{Reason: "test", Ts: int64(i)})
	}
	assert.Len(t, ch, cap(ch))

	h.Unsubscribe(ch)
	// Drain; the channel is closed after unsubscribing.
	for range ch {
	}
	h.Unsubscribe(ch)
}

func TestNilHubPublish(t *testing.T) {
	var h *EventHub
	assert.NotPanics(t, func() { h.Publish(DesignCompleted, nil) })
}

func TestDecodeAsEmpty(t *testing.T) {
	payload, err := DecodeAs[ConfigChangedEvent](Event{Name: ConfigChanged})
	require.NoError(t, err)
	assert.Equal(t, ConfigChangedEvent{}, payload)
}
