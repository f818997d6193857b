package typewriter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypewriter_FullCycle(t *testing.T) {
	w := New([]string{"hi", "yo!"}, DefaultTiming)

	s, d := w.Start()
	assert.Equal(t, Waiting, s.Phase)
	assert.Equal(t, 2*time.Second, d)

	s, d = w.Step(s)
	assert.Equal(t, Typing, s.Phase)
	assert.Equal(t, "", w.Text(s))
	assert.Equal(t, 55*time.Millisecond, d)

	s, _ = w.Step(s)
	assert.Equal(t, "h", w.Text(s))
	s, d = w.Step(s)
	assert.Equal(t, "hi", w.Text(s))
	assert.Equal(t, Holding, s.Phase)
	assert.Equal(t, 2*time.Second, d)

	s, d = w.Step(s)
	assert.Equal(t, Deleting, s.Phase)
	assert.Equal(t, 70*time.Millisecond, d, "the first message deletes slowly")

	s, _ = w.Step(s)
	assert.Equal(t, "h", w.Text(s))
	s, d = w.Step(s)
	assert.Equal(t, Gap, s.Phase)
	assert.Equal(t, "", w.Text(s))
	assert.Equal(t, 600*time.Millisecond, d)

	s, _ = w.Step(s)
	assert.Equal(t, Typing, s.Phase)
	assert.Equal(t, 1, s.Msg)
	for s.Phase == Typing {
		s, _ = w.Step(s)
	}
	assert.Equal(t, "yo!", w.Text(s))
	s, d = w.Step(s)
	assert.Equal(t, 20*time.Millisecond, d)
}

func TestTypewriter_WrapsToFirstMessage(t *testing.T) {
	w := New([]string{"a", "b"}, DefaultTiming)
	s, _ := w.Start()
	var msgs []int
	for range 40 {
		s, _ = w.Step(s)
		if s.Phase == Holding {
			msgs = append(msgs, s.Msg)
		}
	}
	require.GreaterOrEqual(t, len(msgs), 3)
	assert.Equal(t, []int{0, 1, 0}, msgs[:3])
}

func TestTypewriter_RuneSafe(t *testing.T) {
	w := New([]string{"héllo 世"}, DefaultTiming)
	s := State{Phase: Typing, Shown: 2}
	assert.Equal(t, "hé", w.Text(s))
	s.Shown = 99
	assert.Equal(t, "héllo 世", w.Text(s))
	assert.Equal(t, 8, w.Width())
}

func TestTypewriter_Empty(t *testing.T) {
	w := New(nil, DefaultTiming)
	s, _ := w.Start()
	s, d := w.Step(s)
	assert.Equal(t, Waiting, s.Phase)
	assert.Equal(t, DefaultTiming.Start, d)
	assert.Equal(t, "", w.Text(s))
	assert.Zero(t, w.Width())

	blank := New([]string{""}, DefaultTiming)
	s, _ = blank.Step(State{})
	assert.Equal(t, Holding, s.Phase, "an empty message is complete at once")
}

func TestSegments(t *testing.T) {
	hl := []string{"Shree Rahul :)", "About"}

	got := Segments("Yo! I'm Shree Rahul :)", hl)
	assert.Equal(t, []Segment{
		{Text: "Yo! I'm "},
		{Text: "Shree Rahul :)", Highlight: true},
	}, got)

	got = Segments("Yo! I'm Shree Ra", hl)
	assert.Equal(t, []Segment{{Text: "Yo! I'm Shree Ra"}}, got, "partial phrases stay plain")

	got = Segments("About me, About you", hl)
	assert.Equal(t, []Segment{
		{Text: "About", Highlight: true},
		{Text: " me, "},
		{Text: "About", Highlight: true},
		{Text: " you"},
	}, got)

	assert.Nil(t, Segments("", hl))
	assert.Equal(t, []Segment{{Text: "x"}}, Segments("x", []string{""}))
}
