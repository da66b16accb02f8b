package scene

import (
	"math"

	"github.com/lixenwraith/glimmer/parameter"
	"github.com/lixenwraith/glimmer/render"
	"github.com/lixenwraith/glimmer/scroll"
	"github.com/lixenwraith/glimmer/trail"
)

// textSurface is a Surface that can also place glyph runs
// Text is skipped on surfaces without a cell buffer
type textSurface interface {
	render.Surface
	Buffer() *render.Buffer
}

// navbarBg is the opaque navbar fill once the page has scrolled
var navbarBg = render.RGB{R: 16, G: 16, B: 24}

// MarkerSink draws trail markers as glowing dots, shading head to tail
type MarkerSink struct {
	Surface    render.Surface
	Head, Tail render.RGB
	Count      int
}

// Place implements trail.ElementSink
func (m MarkerSink) Place(mk trail.Marker) {
	t := 0.0
	if m.Count > 1 {
		t = float64(mk.Index) / float64(m.Count-1)
	}
	color := render.Lerp(m.Head, m.Tail, t)
	m.Surface.FillCircle(mk.X, mk.Y, mk.Size/2, color, mk.Alpha, parameter.TrailGlowReach*mk.Glow)
}

// MarkerSink returns the default trail sink for surface
func (s *Scene) MarkerSink(surface render.Surface) MarkerSink {
	return MarkerSink{Surface: surface, Head: render.RgbPurple, Tail: render.RgbPink, Count: s.follower.Len()}
}

type sceneLayer struct {
	layer    render.Layer
	priority render.RenderPriority
}

// layers lists the draw passes in priority order; sink picks the trail target per surface
func (s *Scene) layers(sink func(render.Surface) trail.ElementSink) []sceneLayer {
	return []sceneLayer{
		{s.particles, render.PriorityField},
		{render.LayerFunc(s.renderText), render.PriorityText},
		{s.emitter, render.PrioritySparkle},
		{render.LayerFunc(func(surface render.Surface) {
			s.follower.Place(sink(surface))
		}), render.PriorityTrail},
		{render.LayerFunc(s.renderNavbar), render.PriorityOverlay},
		{render.LayerFunc(s.renderScrollTop), render.PriorityOverlay},
	}
}

// Render draws one full frame onto surface, placing trail markers through sink
func (s *Scene) Render(surface render.Surface, sink trail.ElementSink) {
	surface.Clear()
	for _, l := range s.layers(func(render.Surface) trail.ElementSink { return sink }) {
		if vt, ok := l.layer.(render.VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		l.layer.Render(surface)
	}
}

// Register installs the same passes on o; markers draw through MarkerSink
func (s *Scene) Register(o *render.Orchestrator) {
	for _, l := range s.layers(func(surface render.Surface) trail.ElementSink { return s.MarkerSink(surface) }) {
		o.Register(l.layer, l.priority)
	}
}

// rowsFor converts a surface-unit distance to whole rows
func (s *Scene) rowsFor(dy float64) int {
	_, cellH := s.cellSize()
	return int(math.Round(dy / cellH))
}

func (s *Scene) renderText(surface render.Surface) {
	ts, ok := surface.(textSurface)
	if !ok {
		return
	}
	buf := ts.Buffer()
	cols, rows := buf.Bounds()

	s.renderFloats(buf)

	// Tagline drifts with the first parallax layer
	row := rows/2 - s.rowsFor(s.scrollY-scroll.Parallax(s.scrollY, 0))
	buf.Text(s.writer.CenterColumn(cols), row, s.writer.Display(), render.RgbText, render.AttrBold)

	s.renderButton(buf)

	for _, sec := range s.sections {
		s.renderSection(buf, cols, sec)
	}
}

// renderFloats draws the hero's decorative glyphs, each pulled further by the pointer than the last
func (s *Scene) renderFloats(buf *render.Buffer) {
	w, h := s.surface.Size()
	p := s.tracker.State()
	for i, f := range parameter.FloatGlyphs {
		dx, dy := scroll.MouseParallax(p.X, p.Y, w, h, i)
		col, row := s.surface.ToCell(f.AX*w+dx, f.AY*h+dy-s.scrollY)
		buf.SetFgOnly(col, row, f.Glyph, render.RgbTextDim, render.AttrNone)
	}
}

func (s *Scene) renderButton(buf *render.Buffer) {
	r := s.button.Rect
	tr := s.button.Current()
	cellW, _ := s.cellSize()
	col, row := s.surface.ToCell(r.Left+tr.TranslateX+cellW/2, r.Top+tr.TranslateY+r.Height/2)

	color, attrs := render.RgbTextDim, render.AttrNone
	if s.button.Hovered() {
		color, attrs = render.RgbPink, render.AttrBold
	}

	label := []rune(parameter.ButtonLabel)
	glare := -1 - parameter.GlareSpread
	if s.tilt.GlareOpacity > 0 {
		glare = int(s.tilt.GlareX / 100 * float64(len(label)))
	}
	for i, ch := range label {
		c := color
		if d := i - glare; d >= -parameter.GlareSpread && d <= parameter.GlareSpread {
			c = render.Glow(color, 0.6*s.tilt.GlareOpacity)
		}
		buf.SetFgOnly(col+i, row, ch, c, attrs)
	}
}

func (s *Scene) renderSection(buf *render.Buffer, cols int, sec section) {
	top := s.rowsFor(sec.state.Top - s.scrollY)
	_, rows := buf.Bounds()
	if top > rows || top+parameter.SectionRows < 0 {
		return
	}
	left := cols / 6

	if g := s.sectionGlow(sec.id); g > 0 {
		for y := top; y < top+parameter.SectionRows; y++ {
			for x := left - 2; x < cols-left+2; x++ {
				buf.Set(x, y, 0, render.RGB{}, render.RgbPurple, render.BlendAlphaBg, g, render.AttrNone)
			}
		}
	}

	if op, off := sec.state.Style(s.nowMs); op > 0 {
		fg := render.Lerp(render.RgbBackground, render.RgbPurple, op)
		buf.Text(left, top+1+s.rowsFor(off), sec.title, fg, render.AttrBold)
	}
	for i, line := range sec.lines {
		op, off := sec.state.ChildStyle(i, s.nowMs)
		if op <= 0 {
			continue
		}
		fg := render.Lerp(render.RgbBackground, render.RgbText, op)
		buf.Text(left+2, top+3+i+s.rowsFor(off), line, fg, render.AttrNone)
	}
}

func (s *Scene) renderNavbar(surface render.Surface) {
	ts, ok := surface.(textSurface)
	if !ok || s.navbar.Hidden() {
		return
	}
	buf := ts.Buffer()
	cols, _ := buf.Bounds()

	if s.navbar.Solid() {
		for x := 0; x < cols; x++ {
			buf.Set(x, 0, ' ', render.RGB{}, navbarBg, render.BlendAlphaBg, 0.95, render.AttrNone)
		}
	}

	col := 1 + buf.Text(1, 0, "glimmer", render.RgbPurple, render.AttrBold)
	active := s.observer.Active(s.scrollY)
	for _, sec := range s.sections {
		col += 2
		fg, attrs := render.RgbTextDim, render.AttrNone
		if sec.id == active {
			fg, attrs = render.RgbCyan, render.AttrBold
		}
		col += buf.Text(col, 0, sec.title, fg, attrs)
	}
}

// renderScrollTop draws the back-to-top control once the page is scrolled far enough
func (s *Scene) renderScrollTop(surface render.Surface) {
	ts, ok := surface.(textSurface)
	if !ok || !scroll.ShowScrollTop(s.scrollY) {
		return
	}
	r := s.scrollTopRect()
	cellW, _ := s.cellSize()
	col, row := s.surface.ToCell(r.Left+cellW/2, r.Top+r.Height/2)

	fg := render.RgbPurple
	if p := s.tracker.State(); p.Inside && r.Contains(p.X, p.Y) {
		fg = render.Glow(render.RgbPurple, 0.4)
	}
	ts.Buffer().Text(col, row, parameter.ScrollTopLabel, fg, render.AttrBold)
}
