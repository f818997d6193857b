package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTilt_TracksPointerPerInstance(t *testing.T) {
	a := NewTilt(4)
	b := NewTilt(4)

	a.Track(0, 81)
	assert.InDelta(t, -1, a.Pointer(), 1e-9)
	assert.Zero(t, b.Pointer(), "instances do not share pointer state")

	a.Track(80, 81)
	assert.InDelta(t, 1, a.Pointer(), 1e-9)
	a.Track(500, 81)
	assert.InDelta(t, 1, a.Pointer(), 1e-9)

	a.Track(10, 1)
	assert.Zero(t, a.Pointer())

	a.Track(80, 81)
	a.Reset()
	assert.Zero(t, a.Pointer())
}

func TestTilt_LeansVisibleCardsOnly(t *testing.T) {
	nav := newNav(t, 4)
	tilt := NewTilt(4)
	tilt.Track(80, 81)

	front := tilt.Decorate(0, nav.VisualStateOf(0))
	assert.InDelta(t, 4, front.Lean, 1e-9)
	queued := tilt.Decorate(1, nav.VisualStateOf(1))
	assert.InDelta(t, 3.6, queued.Lean, 1e-9)

	tr, _ := nav.Advance()
	hidden := tilt.Decorate(0, nav.VisualStateOf(0))
	assert.Zero(t, hidden.Lean)
	settle(t, nav, tr)
}

func TestDecorators_LeaveNavigatorUntouched(t *testing.T) {
	nav := newNav(t, 5)
	before := nav.Snapshot()
	tilt := NewTilt(3)
	tilt.Track(2, 10)
	shimmer := NewShimmer(12)
	shimmer.Start()
	shimmer.Step()
	shimmer.Step()

	for i := range nav.Len() {
		p := Decorate(i, nav.VisualStateOf(i), tilt, shimmer, nil)
		base := nav.VisualStateOf(i)
		assert.Equal(t, base.Kind, p.Kind)
		assert.Equal(t, base.Interactive, p.Interactive)
		assert.Equal(t, base.Depth, p.Depth)
		if i == 0 {
			assert.Equal(t, 2, p.Glint)
		} else {
			assert.Equal(t, None, p.Glint)
		}
	}
	assert.Equal(t, before, nav.Snapshot())
}

func TestShimmer_SweepsOnce(t *testing.T) {
	s := NewShimmer(3)
	s.Step()
	assert.False(t, s.Active(), "idle until started")
	assert.Equal(t, None, s.Decorate(0, Placement{Kind: KindFront, Glint: None}).Glint)

	s.Start()
	s.Step()
	assert.True(t, s.Active())
	assert.Equal(t, 1, s.Phase())
	assert.Equal(t, 1, s.Decorate(0, Placement{Kind: KindFront, Glint: None}).Glint)
	s.Step()
	s.Step()
	assert.False(t, s.Active(), "a sweep ends after Period steps")
	assert.Zero(t, s.Phase())

	idle := NewShimmer(0)
	idle.Start()
	assert.False(t, idle.Active())
}

func TestDecoratorFunc(t *testing.T) {
	bump := DecoratorFunc(func(_ int, p Placement) Placement {
		p.Lean++
		return p
	})
	p := Decorate(0, Placement{}, bump, bump)
	assert.Equal(t, 2.0, p.Lean)
}

func TestTweener_ConvergesOnTargets(t *testing.T) {
	nav := newNav(t, 4)
	tw := NewTweener(nav.Len())

	first := tw.Step(nav.Placements())
	assert.Equal(t, nav.Placements()[0].Depth, first[0].Depth, "first frame snaps")
	assert.True(t, tw.Settled(nav.Placements()))

	tr, ok := nav.Advance()
	require.True(t, ok)
	targets := nav.Placements()
	mid := tw.Step(targets)
	assert.NotEqual(t, targets[1].Depth, mid[1].Depth, "cards glide rather than jump")
	assert.False(t, tw.Settled(targets))

	var last []Placement
	for range 10 * TweenFPS {
		last = tw.Step(targets)
	}
	assert.True(t, tw.Settled(targets))
	assert.InDelta(t, targets[1].Depth, last[1].Depth, 0.05)
	assert.GreaterOrEqual(t, last[0].Opacity, 0.0)
	settle(t, nav, tr)
}
