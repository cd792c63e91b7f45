package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventInvokesAllListeners(t *testing.T) {
	var e Event
	calls := 0
	e.AddListener(func() { calls++ })
	e.AddListener(func() { calls += 10 })

	e.Invoke()
	assert.Equal(t, 11, calls)

	e.Invoke()
	assert.Equal(t, 22, calls)
}

func TestEventIgnoresNilListener(t *testing.T) {
	var e Event
	e.AddListener(nil)
	e.Invoke() // must not panic

	calls := 0
	e.AddListener(func() { calls++ })
	e.Invoke()
	assert.Equal(t, 1, calls)
}

func TestEventRemoveAllListeners(t *testing.T) {
	var e Event
	calls := 0
	e.AddListener(func() { calls++ })
	e.RemoveAllListeners()
	e.Invoke()
	assert.Equal(t, 0, calls)
}
