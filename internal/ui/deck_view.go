package ui

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"folio/internal/deck"
	"folio/internal/textutil"
	"folio/internal/trace"
)

// shimmerPeriod is one glint sweep across the widest card, in frames.
const shimmerPeriod = 24

// DeckOptions configures a DeckView.
type DeckOptions struct {
	Transition time.Duration
	Tilt       float64
	Tracer     *trace.Tracer
	Logger     *zap.Logger
}

// cardRect is where a card was drawn on the last frame.
type cardRect struct {
	index      int
	x, y, w, h int
}

func (r cardRect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// DeckView is the card stack of the beyond overview page.
type DeckView struct {
	nav     *deck.Navigator
	tilt    *deck.Tilt
	shimmer *deck.Shimmer
	tween   *deck.Tweener
	tracer  *trace.Tracer
	log     *zap.Logger
	spans   map[uint64]*trace.Span

	gen      uint64
	width    int
	height   int
	backdrop Backdrop
	frame    []deck.Placement
	rects    []cardRect
	ticking  bool // a deckFrameMsg is in flight
}

// Ensure DeckView implements View and Unmounter.
var (
	_ View      = (*DeckView)(nil)
	_ Unmounter = (*DeckView)(nil)
)

// NewDeckView creates the deck page for instance gen.
func NewDeckView(gen uint64, cards []deck.Card, opts DeckOptions) (*DeckView, error) {
	nav, err := deck.New(cards, deck.WithTransition(opts.Transition))
	if err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	d := &DeckView{
		nav:     nav,
		tilt:    deck.NewTilt(opts.Tilt),
		shimmer: deck.NewShimmer(shimmerPeriod),
		tween:   deck.NewTweener(nav.Len()),
		tracer:  opts.Tracer,
		log:     log.With(zap.String("navigator", nav.ID())),
		spans:   make(map[uint64]*trace.Span),
		gen:     gen,
		width:   80,
		height:  20,
	}
	d.frame = d.tween.Step(d.targets())
	d.layout()
	return d, nil
}

// Navigator exposes the underlying state machine.
func (d *DeckView) Navigator() *deck.Navigator { return d.nav }

// Init implements View.
func (d *DeckView) Init() tea.Cmd {
	d.shimmer.Start()
	return d.wake()
}

// wake restarts the frame loop unless it is already running. The loop stops by
// itself once every card has come to rest.
func (d *DeckView) wake() tea.Cmd {
	if d.ticking || d.nav.Disposed() {
		return nil
	}
	d.ticking = true
	return deckFrameCmd(d.nav.ID())
}

// Unmount disposes the navigator so pending settles are dropped.
func (d *DeckView) Unmount() {
	d.nav.Dispose()
	for seq, sp := range d.spans {
		sp.End(attribute.String("folio.outcome", "disposed"))
		delete(d.spans, seq)
	}
	d.log.Debug("deck disposed")
}

// Update implements View.
func (d *DeckView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width, d.height = msg.Width, msg.Height
		d.layout()
	case SceneReadyMsg:
		if msg.Gen == d.gen {
			d.backdrop = msg.Backdrop
		}
	case deckFrameMsg:
		if msg.nav != d.nav.ID() || !d.ticking {
			return d, nil
		}
		if d.nav.Disposed() {
			d.ticking = false
			return d, nil
		}
		d.shimmer.Step()
		targets := d.targets()
		d.frame = d.tween.Step(targets)
		d.layout()
		if d.tween.Settled(targets) && !d.shimmer.Active() {
			d.ticking = false
			return d, nil
		}
		return d, deckFrameCmd(d.nav.ID())
	case deckSettleMsg:
		if msg.nav != d.nav.ID() {
			return d, nil
		}
		d.settle(msg.seq)
		return d, d.wake()
	case tea.KeyMsg:
		return d, d.handleKey(msg.String())
	case tea.MouseMsg:
		return d, d.handleMouse(msg)
	}
	return d, nil
}

func (d *DeckView) handleKey(key string) tea.Cmd {
	switch key {
	case "l", "right", "j", "down":
		t, ok := d.nav.Advance()
		if !ok {
			return nil
		}
		return d.begin(trace.EventAdvance, t)
	case "h", "left", "k", "up":
		t, ok := d.nav.Retreat()
		if !ok {
			return nil
		}
		return d.begin(trace.EventRetreat, t)
	case "enter":
		return d.activate(d.nav.Current())
	}
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= 9 {
		return d.activate(n - 1)
	}
	return nil
}

func (d *DeckView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Action == tea.MouseActionMotion:
		if _, sh := d.stage(); msg.Y < 0 || msg.Y >= sh {
			d.tilt.Reset()
		} else {
			d.tilt.Track(msg.X, d.width)
		}
		return d.wake()
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if i, ok := d.hit(msg.X, msg.Y); ok {
			return d.activate(i)
		}
	}
	return nil
}

// hit returns the top-most card drawn at x, y.
func (d *DeckView) hit(x, y int) (int, bool) {
	for i := len(d.rects) - 1; i >= 0; i-- {
		if d.rects[i].contains(x, y) {
			return d.rects[i].index, true
		}
	}
	return 0, false
}

func (d *DeckView) activate(index int) tea.Cmd {
	act := d.nav.Activate(index)
	switch act.Kind {
	case deck.ActionNavigate:
		card, _ := d.nav.Card(index)
		d.tracer.Record(context.Background(), trace.Event{
			Type:       trace.EventActivate,
			Name:       card.Title,
			Attributes: map[string]string{"navigator": d.nav.ID(), "card": strconv.Itoa(index), "to": act.Route},
		})
		d.log.Info("card activated", zap.Int("card", index), zap.String("route", act.Route))
		return navigateCmd(act.Route)
	case deck.ActionJump:
		return d.begin(trace.EventJump, act.Transition)
	}
	return nil
}

func (d *DeckView) begin(kind trace.EventType, t deck.Transition) tea.Cmd {
	card, _ := d.nav.Card(d.nav.Current())
	d.spans[t.Seq] = d.tracer.Begin(context.Background(), trace.Event{
		Type: kind,
		Name: card.Title,
		Attributes: map[string]string{
			"navigator": d.nav.ID(),
			"card":      strconv.Itoa(card.Index),
			"seq":       strconv.FormatUint(t.Seq, 10),
		},
	})
	d.log.Debug("deck transition", zap.String("kind", string(kind)), zap.Int("card", card.Index), zap.Uint64("seq", t.Seq))
	d.shimmer.Start()
	return tea.Batch(deckSettleCmd(d.nav.ID(), t), d.wake())
}

func (d *DeckView) settle(seq uint64) {
	outcome := "stale"
	if d.nav.Settle(seq) {
		outcome = "settled"
	}
	if sp, ok := d.spans[seq]; ok {
		sp.End(attribute.String("folio.outcome", outcome))
		delete(d.spans, seq)
	}
}

func (d *DeckView) targets() []deck.Placement {
	ps := d.nav.Placements()
	for i := range ps {
		ps[i] = deck.Decorate(i, ps[i], d.tilt, d.shimmer)
	}
	return ps
}

// stage returns the drawing area, leaving the last row for the status line.
func (d *DeckView) stage() (int, int) {
	return max(d.width, 10), max(d.height-1, 5)
}

func (d *DeckView) cardSize(scale float64) (int, int) {
	sw, sh := d.stage()
	bw := min(max(sw*2/5, 24), 44)
	bh := min(max(sh*3/5, 7), 14)
	return max(int(float64(bw)*scale), 10), max(int(float64(bh)*scale), 5)
}

// layout recomputes card rectangles for the current frame, back to front.
func (d *DeckView) layout() {
	sw, sh := d.stage()
	order := make([]int, 0, len(d.frame))
	for i, p := range d.frame {
		if p.Visible() && p.Opacity >= 0.05 {
			order = append(order, i)
		}
	}
	slices.SortStableFunc(order, func(a, b int) int { return d.frame[a].Z - d.frame[b].Z })

	d.rects = d.rects[:0]
	for _, i := range order {
		p := d.frame[i]
		w, h := d.cardSize(p.Scale)
		off := int(p.Offset / 100 * float64(sw))
		x := off
		if p.Side == deck.SideRight {
			x = sw - off - w
		}
		x += int(math.Round(p.Lean))
		y := (sh-h)/2 + int(p.Depth/100)
		d.rects = append(d.rects, cardRect{index: i, x: x, y: y, w: w, h: h})
	}
}

type cellStyle uint8

const (
	cellBackdrop cellStyle = iota
	cellFront
	cellQueued
	cellDim
	cellGlint
)

var cellStyles = map[cellStyle]lipgloss.Style{
	cellBackdrop: Styles.CardDim,
	cellFront:    Styles.CardFront,
	cellQueued:   Styles.CardQueued,
	cellDim:      Styles.CardDim,
	cellGlint:    Styles.CardGlint,
}

type cell struct {
	r  rune // 0 for the right half of a wide rune
	st cellStyle
}

type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int, bg []string) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]cell, h)}
	for y := range c.cells {
		row := make([]cell, w)
		var src string
		if len(bg) > 0 {
			src = bgRow(bg, y, w)
		}
		for x := range row {
			row[x] = cell{r: ' '}
			if x < len(src) {
				row[x].r = rune(src[x])
			}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) set(x, y int, r rune, st cellStyle) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = cell{r: r, st: st}
}

// text writes s from x, y without passing limit.
func (c *canvas) text(x, y, limit int, s string, st cellStyle) {
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 || x+rw > limit {
			return
		}
		c.set(x, y, r, st)
		if rw == 2 {
			c.set(x+1, y, 0, st)
		}
		x += rw
	}
}

func (c *canvas) String() string {
	var b strings.Builder
	for y, row := range c.cells {
		var run strings.Builder
		cur := cellBackdrop
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(cellStyles[cur].Render(run.String()))
				run.Reset()
			}
		}
		for _, cl := range row {
			if cl.r == 0 {
				continue
			}
			if cl.st != cur {
				flush()
				cur = cl.st
			}
			run.WriteRune(cl.r)
		}
		flush()
		if y < len(c.cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func styleOf(p deck.Placement) cellStyle {
	switch {
	case p.Kind == deck.KindFront:
		return cellFront
	case p.Opacity < 0.35 || p.Blur >= 1.5:
		return cellDim
	default:
		return cellQueued
	}
}

func (d *DeckView) drawCard(c *canvas, r cardRect, p deck.Placement) {
	st := styleOf(p)
	card, _ := d.nav.Card(r.index)
	right, bottom := r.x+r.w-1, r.y+r.h-1
	for y := r.y; y <= bottom; y++ {
		for x := r.x; x <= right; x++ {
			ch := ' '
			switch {
			case y == r.y && x == r.x:
				ch = '╭'
			case y == r.y && x == right:
				ch = '╮'
			case y == bottom && x == r.x:
				ch = '╰'
			case y == bottom && x == right:
				ch = '╯'
			case y == r.y || y == bottom:
				ch = '─'
			case x == r.x || x == right:
				ch = '│'
			}
			c.set(x, y, ch, st)
		}
	}

	inner := r.x + 2
	limit := right - 1
	c.text(inner, r.y+1, limit, fmt.Sprintf("%02d/%02d", r.index+1, d.nav.Len()), st)
	c.text(inner, r.y+3, limit, textutil.Truncate(card.Title, limit-inner), st)
	if card.Subtitle != "" && r.h > 5 {
		c.text(inner, r.y+4, limit, textutil.Truncate(card.Subtitle, limit-inner), st)
	}
	if p.Kind == deck.KindFront && r.h > 6 {
		c.text(inner, bottom-1, limit, "enter  "+card.TargetRoute, cellGlint)
	}

	if p.Glint != deck.None && p.Kind == deck.KindFront {
		gx := r.x + 1 + p.Glint*2
		if gx < right {
			for y := r.y + 1; y < bottom; y++ {
				if gx >= 0 && gx < c.w && y >= 0 && y < c.h {
					c.cells[y][gx].st = cellGlint
				}
			}
		}
	}
}

// View implements View.
func (d *DeckView) View() string {
	sw, sh := d.stage()
	c := newCanvas(sw, sh, d.backdrop.Lines)
	for _, r := range d.rects {
		d.drawCard(c, r, d.frame[r.index])
	}
	return c.String() + "\n" + d.status()
}

func (d *DeckView) status() string {
	cur := d.nav.Current()
	card, _ := d.nav.Card(cur)
	parts := []string{
		Styles.Title.Render(fmt.Sprintf("%d/%d", cur+1, d.nav.Len())),
		Styles.Normal.Render(card.Title),
	}
	if d.nav.Animating() {
		parts = append(parts, Styles.Muted.Render("moving"))
	}
	hint := Styles.Hint.Render("h/l move  enter open  1-9 jump")
	left := strings.Join(parts, Styles.Muted.Render("  ·  "))
	gap := max(d.width-lipgloss.Width(left)-lipgloss.Width(hint), 1)
	return left + strings.Repeat(" ", gap) + hint
}
