package entity

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatSessionTurnGuard(t *testing.T) {
	sess := NewChatSession(DefaultCompareSlots)
	assert.Equal(t, PhaseIdle, sess.Phase())

	require.NoError(t, sess.BeginTurn())
	assert.Equal(t, PhasePending, sess.Phase())

	err := sess.BeginTurn()
	assert.ErrorIs(t, err, ErrTurnInFlight)

	sess.EndTurn()
	assert.Equal(t, PhaseIdle, sess.Phase())
	require.NoError(t, sess.BeginTurn())
}

func TestChatSessionCheckoutGuardCollapsesConcurrentAttempts(t *testing.T) {
	sess := NewChatSession(DefaultCompareSlots)

	var acquired atomic.Int32
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if sess.BeginCheckout() {
				acquired.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), acquired.Load(), "only one checkout may start")

	sess.EndCheckout()
	assert.True(t, sess.BeginCheckout(), "guard is reusable after release")
}

func TestChatSessionTimelineIsAppendOnly(t *testing.T) {
	sess := NewChatSession(DefaultCompareSlots)

	first := sess.Append(RoleUser, "hello")
	second := sess.Append(RoleBot, "hi there")

	assert.Equal(t, 0, first.Seq)
	assert.Equal(t, 1, second.Seq)

	timeline := sess.Timeline()
	require.Len(t, timeline, 2)
	assert.Equal(t, RoleUser, timeline[0].Role)
	assert.Equal(t, RoleBot, timeline[1].Role)

	// The returned slice is a copy.
	timeline[0].Text = "mutated"
	assert.Equal(t, "hello", sess.Timeline()[0].Text)
}

func TestChatSessionTakeQuickReply(t *testing.T) {
	sess := NewChatSession(DefaultCompareSlots)
	sess.SetQuickReplies([]string{"Checkout", "Show more"})

	assert.True(t, sess.TakeQuickReply("Checkout"))

	// The whole set vanished with the tap, a second tap is stale.
	assert.False(t, sess.TakeQuickReply("Show more"))
	assert.Empty(t, sess.QuickReplies())
}

func TestChatSessionTakeQuickReplyUnknownLabel(t *testing.T) {
	sess := NewChatSession(DefaultCompareSlots)
	sess.SetQuickReplies([]string{"Show more"})

	assert.False(t, sess.TakeQuickReply("Checkout"))
	assert.Equal(t, []string{"Show more"}, sess.QuickReplies(), "a miss leaves the set displayed")
}

func TestChatSessionLocationCopy(t *testing.T) {
	sess := NewChatSession(DefaultCompareSlots)
	assert.Nil(t, sess.Location())

	sess.SetLocation(Coordinates{Latitude: 40.7, Longitude: -74.0})

	loc := sess.Location()
	require.NotNil(t, loc)
	loc.Latitude = 0

	assert.InDelta(t, 40.7, sess.Location().Latitude, 1e-9)
}
