package deck

import (
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCards(n int) []Card {
	titles := []string{"BOOKS", "MUSIC", "MOVIES", "SPORTS & ADRENALINE", "RANDOM FACTS", "TRAVEL", "FOOD"}
	cards := make([]Card, n)
	for i := range cards {
		cards[i] = Card{
			Title:       titles[i%len(titles)],
			TargetRoute: "/beyond/" + string(rune('a'+i)),
		}
	}
	return cards
}

func newNav(t *testing.T, n int) *Navigator {
	t.Helper()
	nav, err := New(testCards(n))
	require.NoError(t, err)
	return nav
}

// settle completes the pending transition as the host timer would.
func settle(t *testing.T, nav *Navigator, tr Transition) {
	t.Helper()
	require.True(t, nav.Settle(tr.Seq), "settle seq %d", tr.Seq)
}

func TestNew_RejectsEmpty(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrEmpty)
}

func TestNew_InitialState(t *testing.T) {
	nav := newNav(t, 5)

	assert.Equal(t, 0, nav.Current())
	assert.Empty(t, nav.Passed())
	assert.False(t, nav.Animating())
	_, exiting := nav.ExitingIndex()
	assert.False(t, exiting)
	assert.Equal(t, DefaultTransition, nav.Duration())
	assert.NotEmpty(t, nav.ID())
}

func TestNew_ReindexesAndCopiesCards(t *testing.T) {
	cards := testCards(3)
	cards[2].Index = 99
	nav, err := New(cards, WithTransition(time.Second), WithID("deck-1"))
	require.NoError(t, err)

	cards[0].Title = "mutated"
	c, ok := nav.Card(0)
	require.True(t, ok)
	assert.Equal(t, "BOOKS", c.Title)
	c, _ = nav.Card(2)
	assert.Equal(t, 2, c.Index)
	assert.Equal(t, time.Second, nav.Duration())
	assert.Equal(t, "deck-1", nav.ID())
	_, ok = nav.Card(3)
	assert.False(t, ok)
}

func TestAdvanceAdvanceRetreat(t *testing.T) {
	nav := newNav(t, 5)

	tr, ok := nav.Advance()
	require.True(t, ok)
	assert.Equal(t, 1, nav.Current())
	assert.Equal(t, []int{0}, nav.Passed())
	exit, has := nav.ExitingIndex()
	assert.True(t, has)
	assert.Equal(t, 0, exit)
	assert.Equal(t, DefaultTransition, tr.Duration)
	settle(t, nav, tr)
	_, has = nav.ExitingIndex()
	assert.False(t, has)

	tr, ok = nav.Advance()
	require.True(t, ok)
	assert.Equal(t, 2, nav.Current())
	assert.Equal(t, []int{0, 1}, nav.Passed())
	settle(t, nav, tr)

	tr, ok = nav.Retreat()
	require.True(t, ok)
	assert.Equal(t, 1, nav.Current())
	assert.Equal(t, []int{0}, nav.Passed())
	_, has = nav.ExitingIndex()
	assert.False(t, has, "retreat never marks a card as exiting")
	assert.True(t, nav.Animating())
	settle(t, nav, tr)
	assert.False(t, nav.Animating())
}

func TestAdvance_AtLastCardIsNoop(t *testing.T) {
	nav := newNav(t, 2)
	tr, ok := nav.Advance()
	require.True(t, ok)
	settle(t, nav, tr)

	before := nav.Snapshot()
	_, ok = nav.Advance()
	assert.False(t, ok)
	assert.Equal(t, before, nav.Snapshot())
	assert.True(t, nav.IsLast())
}

func TestRetreat_WithNothingPassedIsNoop(t *testing.T) {
	nav := newNav(t, 4)
	before := nav.Snapshot()
	_, ok := nav.Retreat()
	assert.False(t, ok)
	assert.Equal(t, before, nav.Snapshot())
	assert.True(t, nav.IsFirst())
}

func TestAnimatingRejectsOverlappingTransitions(t *testing.T) {
	nav := newNav(t, 5)

	tr, ok := nav.Advance()
	require.True(t, ok)
	_, ok = nav.Advance()
	assert.False(t, ok)
	assert.Equal(t, 1, nav.Current(), "two advances without delay move only once")

	_, ok = nav.Retreat()
	assert.False(t, ok)
	_, ok = nav.JumpTo(3)
	assert.False(t, ok)
	assert.Equal(t, 1, nav.Current())

	settle(t, nav, tr)
	_, ok = nav.Advance()
	assert.True(t, ok)
}

func TestJumpTo_SkipsIntermediateCards(t *testing.T) {
	nav := newNav(t, 5)

	tr, ok := nav.JumpTo(3)
	require.True(t, ok)
	assert.Equal(t, 3, nav.Current())
	assert.Equal(t, []int{0}, nav.Passed())
	exit, has := nav.ExitingIndex()
	require.True(t, has)
	assert.Equal(t, 0, exit)
	settle(t, nav, tr)

	tr, ok = nav.Retreat()
	require.True(t, ok)
	assert.Equal(t, 0, nav.Current())
	assert.Empty(t, nav.Passed())
	settle(t, nav, tr)
}

func TestJumpTo_RejectsInvalidTargets(t *testing.T) {
	nav := newNav(t, 5)
	tr, _ := nav.Advance()
	settle(t, nav, tr)
	tr, _ = nav.Advance()
	settle(t, nav, tr)

	for _, target := range []int{-1, 0, 1, 2, 5, 42} {
		before := nav.Snapshot()
		_, ok := nav.JumpTo(target)
		assert.False(t, ok, "target %d", target)
		assert.Equal(t, before, nav.Snapshot())
	}
}

func TestSettle_IgnoresStaleSequence(t *testing.T) {
	nav := newNav(t, 5)
	first, _ := nav.Advance()
	settle(t, nav, first)
	second, _ := nav.Advance()

	assert.False(t, nav.Settle(first.Seq), "an old timer must not end a newer transition")
	assert.True(t, nav.Animating())
	assert.True(t, nav.Settle(second.Seq))
	assert.False(t, nav.Settle(second.Seq), "settling twice is a no-op")
}

func TestDispose_CancelsPendingSettle(t *testing.T) {
	nav := newNav(t, 5)
	tr, _ := nav.Advance()
	nav.Dispose()

	before := nav.Snapshot()
	assert.False(t, nav.Settle(tr.Seq))
	assert.Equal(t, before, nav.Snapshot())
	assert.True(t, nav.Disposed())

	_, ok := nav.Retreat()
	assert.False(t, ok)
	assert.Equal(t, ActionNone, nav.Activate(1).Kind)
}

func TestAdvanceRetreatRoundTrip(t *testing.T) {
	nav := newNav(t, 6)
	for range 3 {
		tr, _ := nav.Advance()
		settle(t, nav, tr)
	}
	before := nav.Snapshot()

	tr, ok := nav.Advance()
	require.True(t, ok)
	settle(t, nav, tr)
	tr, ok = nav.Retreat()
	require.True(t, ok)
	settle(t, nav, tr)

	assert.Equal(t, before, nav.Snapshot())
}

func TestAdvanceSequence_RecordsPreviousCurrents(t *testing.T) {
	nav := newNav(t, 7)
	var want []int
	for {
		prev := nav.Current()
		tr, ok := nav.Advance()
		if !ok {
			break
		}
		want = append(want, prev)
		assert.Equal(t, want, nav.Passed())
		settle(t, nav, tr)
	}
	assert.Equal(t, 6, nav.Current())
	assert.Len(t, want, 6)
}

func TestRandomWalk_HoldsInvariants(t *testing.T) {
	for n := 2; n <= 8; n++ {
		nav := newNav(t, n)
		rng := rand.New(rand.NewPCG(uint64(n), 7))
		sides := make([]Side, n)
		for i := range sides {
			sides[i] = nav.VisualStateOf(i).Side
		}

		var pending *Transition
		for step := 0; step < 500; step++ {
			var tr Transition
			var ok bool
			switch rng.IntN(4) {
			case 0:
				tr, ok = nav.Advance()
			case 1:
				tr, ok = nav.Retreat()
			case 2:
				tr, ok = nav.JumpTo(rng.IntN(n + 1))
			case 3:
				if pending != nil {
					nav.Settle(pending.Seq)
					pending = nil
				}
			}
			if ok {
				require.Nil(t, pending, "accepted a transition while animating")
				pending = &tr
			}

			cur := nav.Current()
			require.GreaterOrEqual(t, cur, 0)
			require.Less(t, cur, n)
			require.NotContains(t, nav.Passed(), cur)

			front := nav.VisualStateOf(cur)
			assert.True(t, front.Interactive)
			assert.Zero(t, front.Depth)
			if exit, has := nav.ExitingIndex(); has {
				assert.False(t, nav.VisualStateOf(exit).Interactive)
			}
			for i := range sides {
				require.Equal(t, sides[i], nav.VisualStateOf(i).Side, "side of card %d changed", i)
			}
			passed := nav.Passed()
			require.Equal(t, len(passed), len(slices.Compact(slices.Sorted(slices.Values(passed)))), "passed has duplicates")
		}
	}
}
