// Package scene composes the effects into one interactive terminal page.
//
// Scene owns every effect and the pointer tracker. Events and ticks must
// arrive on the same goroutine; nothing here locks.
package scene

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glimmer/audio"
	"github.com/lixenwraith/glimmer/hover"
	"github.com/lixenwraith/glimmer/parameter"
	"github.com/lixenwraith/glimmer/particle"
	"github.com/lixenwraith/glimmer/pointer"
	"github.com/lixenwraith/glimmer/render"
	"github.com/lixenwraith/glimmer/scroll"
	"github.com/lixenwraith/glimmer/sparkle"
	"github.com/lixenwraith/glimmer/trail"
	"github.com/lixenwraith/glimmer/typewriter"
	"github.com/lixenwraith/glimmer/vmath"
)

// Sounder plays effects; *audio.Player satisfies it
type Sounder interface {
	Play(s audio.Sound) bool
	ToggleMute() bool
}

// Options configures a Scene
type Options struct {
	Markers   int
	Palette   []render.RGB
	EdgeColor render.RGB
	Tagline   string
	Seed      uint64
	// Sound may be nil
	Sound Sounder
}

// section pairs observed geometry with its content
type section struct {
	page
	state *scroll.Section
}

// Scene is the composed page
type Scene struct {
	opts    Options
	surface *render.CellSurface
	rng     *vmath.FastRand

	tracker   *pointer.Tracker
	field     *particle.Field
	particles *particle.Layer
	follower  *trail.Follower
	emitter   *sparkle.Emitter
	writer    *typewriter.Writer
	button    *hover.Tracker
	tilt      hover.TiltState
	observer  *scroll.Observer
	navbar    scroll.Navbar
	glide     scroll.Smooth
	sections  []section

	glowID    string
	glowUntil float64

	nowMs     float64
	scrollY   float64
	buttons   tcell.ButtonMask
	trailOn   bool
	narrow    bool
	completed bool
}

// New builds a scene drawing onto surface
func New(surface *render.CellSurface, opts Options) *Scene {
	if opts.Markers <= 0 {
		opts.Markers = parameter.TrailMarkerCount
	}
	if len(opts.Palette) == 0 {
		opts.Palette = render.DefaultPalette
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}

	rng := vmath.NewFastRand(opts.Seed)
	w, h := surface.Size()

	s := &Scene{
		opts:     opts,
		surface:  surface,
		rng:      rng,
		tracker:  pointer.NewTracker(),
		field:    particle.NewField(w, h, rng, opts.Palette),
		follower: trail.New(opts.Markers),
		emitter:  sparkle.NewEmitter(rng, render.RgbPink),
		writer:   typewriter.New(opts.Tagline, parameter.TypewriterSpeed),
		button:   hover.NewTracker(hover.Rect{}, parameter.MagneticButtonStrength),
		tilt:     hover.TiltRest,
		observer: scroll.NewObserver(parameter.RevealThreshold),
		trailOn:  true,
	}
	s.particles = particle.NewLayer(s.field, opts.EdgeColor)
	if opts.Sound != nil {
		s.emitter.OnBurst(func() { opts.Sound.Play(audio.SoundChime) })
	}
	for _, p := range pages {
		s.sections = append(s.sections, section{page: p, state: s.observer.Observe(p.id, 0, 0, len(p.lines))})
	}
	s.layout()
	return s
}

// Resize adapts to a new terminal size in cells
func (s *Scene) Resize(cols, rows int) {
	s.surface.Buffer().Resize(cols, rows)
	s.layout()
}

// layout recomputes everything derived from the surface size
func (s *Scene) layout() {
	w, h := s.surface.Size()
	s.field.Resize(w, h)
	cols, _ := s.surface.Buffer().Bounds()
	s.narrow = cols < parameter.TrailMinColumns

	rowH := h / s.rows()
	sectionH := rowH * parameter.SectionRows
	for i := range s.sections {
		st := s.sections[i].state
		st.Top = h + float64(i)*sectionH
		st.Height = sectionH
	}
	s.scrollY = vmath.Clamp(s.scrollY, 0, s.maxScroll())
}

func (s *Scene) rows() float64 {
	_, rows := s.surface.Buffer().Bounds()
	return float64(max(rows, 1))
}

// maxScroll is the page height minus one viewport
func (s *Scene) maxScroll() float64 {
	if len(s.sections) == 0 {
		return 0
	}
	last := s.sections[len(s.sections)-1].state
	_, h := s.surface.Size()
	return max(last.Top+last.Height-h, 0)
}

// Scroll moves the page by dy surface units, interrupting any glide
func (s *Scene) Scroll(dy float64) {
	s.glide.Cancel()
	s.setScroll(s.scrollY + dy)
}

// ScrollTo glides the page to y over the following ticks
func (s *Scene) ScrollTo(y float64) {
	s.glide.Start(s.scrollY, vmath.Clamp(y, 0, s.maxScroll()), s.nowMs)
}

func (s *Scene) setScroll(y float64) {
	s.scrollY = vmath.Clamp(y, 0, s.maxScroll())
	s.navbar.Scroll(s.scrollY)
}

// jumpTo glides to section id below the navbar row and highlights it briefly
func (s *Scene) jumpTo(id string) {
	_, cellH := s.cellSize()
	for _, sec := range s.sections {
		if sec.id == id {
			s.ScrollTo(sec.state.Top - cellH)
			s.glowID = id
			s.glowUntil = s.nowMs + float64(parameter.SectionGlowDuration.Milliseconds())
			return
		}
	}
}

// sectionGlow returns the highlight alpha of section id at the current tick
func (s *Scene) sectionGlow(id string) float64 {
	if id != s.glowID || s.nowMs >= s.glowUntil {
		return 0
	}
	return parameter.SectionGlowAlpha
}

// scrollTopRect is the back-to-top control in the bottom right corner, in viewport coordinates
func (s *Scene) scrollTopRect() hover.Rect {
	cols, rows := s.surface.Buffer().Bounds()
	label := len([]rune(parameter.ScrollTopLabel))
	x, y := s.surface.FromCell(cols-label-parameter.ScrollTopMargin, rows-1-parameter.ScrollTopMargin/2)
	cellW, cellH := s.cellSize()
	return hover.Rect{
		Left:   x - cellW/2,
		Top:    y - cellH/2,
		Width:  float64(label) * cellW,
		Height: cellH,
	}
}

// buttonRect returns the button bounds in viewport coordinates
func (s *Scene) buttonRect() hover.Rect {
	cols, rows := s.surface.Buffer().Bounds()
	label := len([]rune(parameter.ButtonLabel))
	cx := (cols - label) / 2
	cy := rows/2 + parameter.ButtonGapRows
	x, y := s.surface.FromCell(cx, cy)
	cellW, cellH := s.cellSize()
	return hover.Rect{
		Left:   x - cellW/2,
		Top:    y - cellH/2 - s.scrollY,
		Width:  float64(label) * cellW,
		Height: cellH,
	}
}

func (s *Scene) cellSize() (float64, float64) {
	x0, y0 := s.surface.FromCell(0, 0)
	x1, y1 := s.surface.FromCell(1, 1)
	return x1 - x0, y1 - y0
}

// Tick advances every effect by one redraw step at nowMs
func (s *Scene) Tick(nowMs float64) {
	s.nowMs = nowMs
	p := s.tracker.State()
	if s.glide.Active() {
		s.setScroll(s.glide.At(nowMs))
	}

	s.field.Advance(p, nowMs)
	s.follower.SetVisible(p.Inside && p.Moved && s.trailOn && !s.narrow)
	s.follower.Advance(p)
	s.emitter.Advance(nowMs)

	s.writer.Advance(time.Duration(nowMs * float64(time.Millisecond)))
	full := s.writer.Complete()
	if full && !s.completed && s.opts.Sound != nil {
		s.opts.Sound.Play(audio.SoundBell)
	}
	s.completed = full

	s.button.Rect = s.buttonRect()
	s.button.Update(p.X, p.Y, p.Inside)
	if s.button.Hovered() {
		s.tilt = hover.Tilt(s.button.Rect, p.X, p.Y)
	} else {
		s.tilt = hover.TiltRest
	}

	_, h := s.surface.Size()
	s.observer.Update(s.scrollY, h, nowMs)
}

// Pointer returns the pointer state the next tick will see
func (s *Scene) Pointer() pointer.State {
	return s.tracker.State()
}

// ScrollY returns the page scroll offset in surface units
func (s *Scene) ScrollY() float64 {
	return s.scrollY
}

// Field exposes the particle field
func (s *Scene) Field() *particle.Field {
	return s.field
}

// Follower exposes the trail
func (s *Scene) Follower() *trail.Follower {
	return s.follower
}

// Emitter exposes the sparkle emitter
func (s *Scene) Emitter() *sparkle.Emitter {
	return s.emitter
}
