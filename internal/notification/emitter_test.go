package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitAppearsInActive(t *testing.T) {
	emitter := NewEmitter(time.Minute)
	defer emitter.Close()

	n := emitter.Emit("session-1", "Added to cart!", CategoryCart)

	active := emitter.Active("session-1")
	require.Len(t, active, 1)
	assert.Equal(t, n.ID, active[0].ID)
	assert.Equal(t, "Added to cart!", active[0].Message)
	assert.Equal(t, CategoryCart, active[0].Category)
}

func TestNotificationExpiresAfterTTL(t *testing.T) {
	emitter := NewEmitter(time.Minute)
	defer emitter.Close()

	emitter.EmitWithTTL("session-1", "fleeting", CategoryInfo, 20*time.Millisecond)

	require.Len(t, emitter.Active("session-1"), 1)

	assert.Eventually(t, func() bool {
		return len(emitter.Active("session-1")) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestDismissRemovesBeforeExpiry(t *testing.T) {
	emitter := NewEmitter(time.Minute)
	defer emitter.Close()

	n := emitter.Emit("session-1", "dismiss me", CategoryInfo)

	assert.True(t, emitter.Dismiss("session-1", n.ID))
	assert.Empty(t, emitter.Active("session-1"))
}

func TestDismissUnknownIDIsNoOp(t *testing.T) {
	emitter := NewEmitter(time.Minute)
	defer emitter.Close()

	emitter.Emit("session-1", "keep me", CategoryInfo)

	assert.False(t, emitter.Dismiss("session-1", "no-such-id"))
	assert.Len(t, emitter.Active("session-1"), 1)
}

func TestDismissTwiceReportsFalseSecondTime(t *testing.T) {
	emitter := NewEmitter(time.Minute)
	defer emitter.Close()

	n := emitter.Emit("session-1", "once", CategoryInfo)

	assert.True(t, emitter.Dismiss("session-1", n.ID))
	assert.False(t, emitter.Dismiss("session-1", n.ID))
}

func TestActiveOrderedOldestFirst(t *testing.T) {
	emitter := NewEmitter(time.Minute)
	defer emitter.Close()

	first := emitter.Emit("session-1", "first", CategoryInfo)
	second := emitter.Emit("session-1", "second", CategorySuccess)

	active := emitter.Active("session-1")
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, second.ID, active[1].ID)
}

func TestSessionsAreIsolated(t *testing.T) {
	emitter := NewEmitter(time.Minute)
	defer emitter.Close()

	emitter.Emit("session-a", "for a", CategoryInfo)

	assert.Empty(t, emitter.Active("session-b"))
}

func TestCloseDropsEverything(t *testing.T) {
	emitter := NewEmitter(time.Minute)
	emitter.Emit("session-1", "gone", CategoryInfo)

	emitter.Close()

	assert.Empty(t, emitter.Active("session-1"))
}
