package scene

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glimmer/audio"
	"github.com/lixenwraith/glimmer/parameter"
	"github.com/lixenwraith/glimmer/particle"
	"github.com/lixenwraith/glimmer/render"
	"github.com/lixenwraith/glimmer/trail"
)

type fakeSound struct {
	played  []audio.Sound
	toggles int
}

func (f *fakeSound) Play(s audio.Sound) bool {
	f.played = append(f.played, s)
	return true
}

func (f *fakeSound) ToggleMute() bool {
	f.toggles++
	return f.toggles%2 == 1
}

func (f *fakeSound) count(s audio.Sound) int {
	n := 0
	for _, p := range f.played {
		if p == s {
			n++
		}
	}
	return n
}

type recordingSink struct {
	markers []trail.Marker
}

func (r *recordingSink) Place(m trail.Marker) {
	r.markers = append(r.markers, m)
}

func newTestScene(cols, rows int, tagline string) (*Scene, *render.CellSurface, *fakeSound) {
	surface := render.NewCellSurface(render.NewBuffer(cols, rows), render.DefaultCellWidth, render.DefaultCellHeight)
	snd := &fakeSound{}
	s := New(surface, Options{
		Tagline:   tagline,
		Seed:      7,
		EdgeColor: render.RgbPurple,
		Sound:     snd,
	})
	return s, surface, snd
}

func mouse(x, y int, btn tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, btn, tcell.ModNone)
}

func rowText(buf *render.Buffer, y int) string {
	cols, _ := buf.Bounds()
	var b strings.Builder
	for x := 0; x < cols; x++ {
		r := buf.Get(x, y).Rune
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestNewSizesField(t *testing.T) {
	s, surface, _ := newTestScene(120, 40, "hello")
	w, h := surface.Size()
	if got, want := s.Field().Len(), particle.Count(w, h); got != want {
		t.Errorf("Expected %d particles for %vx%v, got %d", want, w, h, got)
	}
	if s.Follower().Len() != parameter.TrailMarkerCount {
		t.Errorf("Expected default marker count, got %d", s.Follower().Len())
	}
}

func TestMouseMoveDrivesTrail(t *testing.T) {
	s, surface, _ := newTestScene(120, 40, "hello")

	s.Tick(0)
	if s.Follower().IsVisible() {
		t.Error("Expected trail hidden before any pointer move")
	}

	s.HandleEvent(mouse(60, 20, tcell.ButtonNone))
	wantX, wantY := surface.FromCell(60, 20)
	p := s.Pointer()
	if p.X != wantX || p.Y != wantY || !p.Inside {
		t.Fatalf("Expected pointer at (%v,%v) inside, got %+v", wantX, wantY, p)
	}

	for i := 0; i < 200; i++ {
		s.Tick(float64(i) * 16)
	}
	if !s.Follower().IsVisible() {
		t.Error("Expected trail visible with pointer inside")
	}
	head := s.Follower().Markers()[0]
	if d := head.X - wantX; d > 0.5 || d < -0.5 {
		t.Errorf("Expected head to converge on pointer x %v, got %v", wantX, head.X)
	}

	sink := &recordingSink{}
	s.Render(surface, sink)
	if len(sink.markers) != s.Follower().Len() {
		t.Errorf("Expected %d placed markers, got %d", s.Follower().Len(), len(sink.markers))
	}
}

func TestFocusHidesTrail(t *testing.T) {
	s, _, _ := newTestScene(120, 40, "hello")
	s.HandleEvent(mouse(10, 10, tcell.ButtonNone))
	s.Tick(0)
	if !s.Follower().IsVisible() {
		t.Fatal("Expected trail visible after move")
	}

	s.HandleEvent(tcell.NewEventFocus(false))
	s.Tick(16)
	if s.Follower().IsVisible() {
		t.Error("Expected trail hidden after focus loss")
	}

	s.HandleEvent(tcell.NewEventFocus(true))
	s.Tick(32)
	if !s.Follower().IsVisible() {
		t.Error("Expected trail shown after focus regain")
	}
}

func TestNarrowSurfaceDisablesTrail(t *testing.T) {
	s, _, _ := newTestScene(120, 40, "hello")
	s.HandleEvent(mouse(10, 10, tcell.ButtonNone))

	s.HandleEvent(tcell.NewEventResize(parameter.TrailMinColumns-1, 40))
	s.Tick(0)
	if s.Follower().IsVisible() {
		t.Error("Expected trail hidden on narrow surface")
	}
	w, _ := s.Field().Bounds()
	if want := float64(parameter.TrailMinColumns-1) * render.DefaultCellWidth; w != want {
		t.Errorf("Expected field resized to %v, got %v", want, w)
	}

	s.HandleEvent(tcell.NewEventResize(80, 24))
	s.HandleEvent(mouse(10, 10, tcell.ButtonNone))
	s.Tick(16)
	if !s.Follower().IsVisible() {
		t.Error("Expected trail visible on a standard 80x24 terminal")
	}
}

func TestClickSpawnsSparklesOnPress(t *testing.T) {
	s, _, snd := newTestScene(120, 40, "hello")

	s.HandleEvent(mouse(5, 5, tcell.Button1))
	if got := s.Emitter().Active(); got != parameter.SparkleCount {
		t.Fatalf("Expected %d sparkles after click, got %d", parameter.SparkleCount, got)
	}
	if snd.count(audio.SoundChime) != 1 {
		t.Errorf("Expected one chime, got %d", snd.count(audio.SoundChime))
	}

	// Drag with the button held is not a new click
	s.HandleEvent(mouse(6, 5, tcell.Button1))
	if got := s.Emitter().Active(); got != parameter.SparkleCount {
		t.Errorf("Expected no burst while held, got %d sparkles", got)
	}

	s.HandleEvent(mouse(6, 5, tcell.ButtonNone))
	s.HandleEvent(mouse(6, 5, tcell.Button1))
	if got := s.Emitter().Active(); got != 2*parameter.SparkleCount {
		t.Errorf("Expected second burst after release, got %d sparkles", got)
	}

	// Sparkles finish within 900ms
	s.Tick(1000)
	if got := s.Emitter().Active(); got != 0 {
		t.Errorf("Expected sparkles expired, got %d", got)
	}
}

func TestKeys(t *testing.T) {
	s, _, snd := newTestScene(120, 40, "hello")

	if !s.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone)) {
		t.Error("Expected m to keep running")
	}
	if snd.toggles != 1 {
		t.Errorf("Expected mute toggled once, got %d", snd.toggles)
	}

	s.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	if s.particles.IsVisible() {
		t.Error("Expected particles hidden after p")
	}

	s.HandleEvent(mouse(10, 10, tcell.ButtonNone))
	s.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone))
	s.Tick(0)
	if s.Follower().IsVisible() {
		t.Error("Expected trail hidden after t")
	}

	quits := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	}
	for _, ev := range quits {
		if s.HandleEvent(ev) {
			t.Errorf("Expected %v to quit", ev.Name())
		}
	}
}

func TestScrollRevealsSections(t *testing.T) {
	s, _, _ := newTestScene(120, 40, "hello")

	s.HandleEvent(mouse(0, 0, tcell.WheelUp))
	if s.ScrollY() != 0 {
		t.Errorf("Expected scroll clamped at top, got %v", s.ScrollY())
	}

	s.Tick(0)
	if s.sections[0].state.Revealed() {
		t.Fatal("Expected first section hidden at top of page")
	}

	s.HandleEvent(mouse(0, 0, tcell.WheelDown))
	if s.ScrollY() != parameter.ScrollStep {
		t.Errorf("Expected one scroll step, got %v", s.ScrollY())
	}
	s.Tick(16)
	if !s.sections[0].state.Revealed() {
		t.Error("Expected first section revealed once 10% visible")
	}

	for i := 0; i < 100; i++ {
		s.HandleEvent(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone))
	}
	if s.ScrollY() != s.maxScroll() {
		t.Errorf("Expected scroll clamped at %v, got %v", s.maxScroll(), s.ScrollY())
	}
	if !s.navbar.Solid() {
		t.Error("Expected solid navbar deep in the page")
	}

	s.HandleEvent(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	bottom := s.ScrollY()
	s.Tick(116)
	if y := s.ScrollY(); y <= 0 || y >= bottom {
		t.Errorf("Expected Home to glide between %v and 0, got %v", bottom, y)
	}
	s.Tick(16 + 2*float64(parameter.SmoothScrollDuration.Milliseconds()))
	if s.ScrollY() != 0 {
		t.Errorf("Expected Home to land on top, got %v", s.ScrollY())
	}
}

func TestWheelInterruptsGlide(t *testing.T) {
	s, _, _ := newTestScene(120, 40, "hello")
	s.Tick(0)
	s.ScrollTo(s.maxScroll())
	s.Tick(250)
	s.HandleEvent(mouse(0, 0, tcell.WheelUp))
	stopped := s.ScrollY()
	if stopped <= 0 {
		t.Fatalf("Expected glide under way before the wheel, got %v", stopped)
	}
	s.Tick(1000)
	if s.ScrollY() != stopped {
		t.Errorf("Expected wheel to cancel the glide at %v, got %v", stopped, s.ScrollY())
	}
}

func TestTypewriterBellAndText(t *testing.T) {
	s, surface, snd := newTestScene(120, 40, "hi")

	s.Tick(0)
	s.Render(surface, &recordingSink{})
	if row := rowText(surface.Buffer(), 20); !strings.Contains(row, "h|") {
		t.Errorf("Expected typed prefix with caret on center row, got %q", strings.TrimSpace(row))
	}

	s.Tick(50)
	s.Tick(66)
	if snd.count(audio.SoundBell) != 1 {
		t.Errorf("Expected one bell on completion, got %d", snd.count(audio.SoundBell))
	}

	s.Render(surface, &recordingSink{})
	if row := rowText(surface.Buffer(), 0); !strings.Contains(row, "glimmer") || !strings.Contains(row, "Contact") {
		t.Errorf("Expected navbar on first row, got %q", strings.TrimSpace(row))
	}
	if row := rowText(surface.Buffer(), 20+parameter.ButtonGapRows); !strings.Contains(row, parameter.ButtonLabel) {
		t.Errorf("Expected button label below tagline, got %q", strings.TrimSpace(row))
	}
}

func TestButtonHoverAndClick(t *testing.T) {
	s, _, _ := newTestScene(120, 40, "hi")
	s.Tick(0)

	r := s.button.Rect
	col, row := s.surface.ToCell(r.Left+r.Width/2, r.Top+r.Height/2)
	s.HandleEvent(mouse(col, row, tcell.ButtonNone))
	s.Tick(16)
	if !s.button.Hovered() {
		t.Fatal("Expected button hovered with pointer over it")
	}
	if s.tilt.GlareOpacity != 1 {
		t.Errorf("Expected glare while hovered, got %v", s.tilt.GlareOpacity)
	}

	s.HandleEvent(mouse(col, row, tcell.Button1))
	if s.ScrollY() != 0 {
		t.Errorf("Expected glide to start on the next tick, got %v", s.ScrollY())
	}

	var contact section
	for _, sec := range s.sections {
		if sec.id == "contact" {
			contact = sec
		}
	}
	_, cellH := s.cellSize()
	want := min(contact.state.Top-cellH, s.maxScroll())

	s.Tick(200)
	if y := s.ScrollY(); y <= 0 || y >= want {
		t.Errorf("Expected partial glide toward %v, got %v", want, y)
	}
	if s.sectionGlow("contact") == 0 {
		t.Error("Expected contact section highlighted after the jump")
	}
	if s.sectionGlow("about") != 0 {
		t.Error("Expected other sections unhighlighted")
	}

	s.Tick(900)
	if s.ScrollY() != want {
		t.Errorf("Expected glide to land on %v, got %v", want, s.ScrollY())
	}
	s.Tick(16 + float64(parameter.SectionGlowDuration.Milliseconds()))
	if s.sectionGlow("contact") != 0 {
		t.Error("Expected highlight to expire")
	}
}

func TestScrollTopControl(t *testing.T) {
	s, surface, _ := newTestScene(120, 40, "hello")
	s.Tick(0)

	s.Render(surface, &recordingSink{})
	row := 40 - 1 - parameter.ScrollTopMargin/2
	if strings.Contains(rowText(surface.Buffer(), row), parameter.ScrollTopLabel) {
		t.Fatal("Expected no back-to-top control at the top of the page")
	}

	s.Scroll(parameter.ScrollTopAfter + 100)
	s.Tick(16)
	s.Render(surface, &recordingSink{})
	if !strings.Contains(rowText(surface.Buffer(), row), parameter.ScrollTopLabel) {
		t.Fatalf("Expected back-to-top control on row %d, got %q", row, strings.TrimSpace(rowText(surface.Buffer(), row)))
	}

	r := s.scrollTopRect()
	col, crow := s.surface.ToCell(r.Left+r.Width/2, r.Top+r.Height/2)
	s.HandleEvent(mouse(col, crow, tcell.Button1))
	s.Tick(16 + 2*float64(parameter.SmoothScrollDuration.Milliseconds()))
	if s.ScrollY() != 0 {
		t.Errorf("Expected control to glide back to top, got %v", s.ScrollY())
	}
}

func TestFloatingGlyphsFollowPointer(t *testing.T) {
	s, surface, _ := newTestScene(120, 40, "hello")
	glyph := parameter.FloatGlyphs[0].Glyph

	find := func() (int, int) {
		s.Render(surface, &recordingSink{})
		for y := 0; y < 40; y++ {
			for x := 0; x < 120; x++ {
				if surface.Buffer().Get(x, y).Rune == glyph {
					return x, y
				}
			}
		}
		return -1, -1
	}

	s.HandleEvent(mouse(0, 0, tcell.ButtonNone))
	s.Tick(0)
	x0, y0 := find()
	s.HandleEvent(mouse(119, 39, tcell.ButtonNone))
	s.Tick(16)
	x1, y1 := find()
	if x0 < 0 || x1 < 0 {
		t.Fatalf("Expected floating glyph on screen, got (%d,%d) and (%d,%d)", x0, y0, x1, y1)
	}
	if x1 <= x0 || y1 <= y0 {
		t.Errorf("Expected glyph to drift toward the pointer, moved from (%d,%d) to (%d,%d)", x0, y0, x1, y1)
	}
}

func TestOrchestratorFrame(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(120, 40)

	o := render.NewOrchestrator(screen, render.DefaultCellWidth, render.DefaultCellHeight)
	s := New(o.Surface(), Options{Tagline: "hello", Seed: 1})
	s.Register(o)

	s.HandleEvent(mouse(30, 10, tcell.ButtonNone))
	s.Tick(0)
	o.RenderFrame()

	r, _, _, _ := screen.GetContent(1, 0)
	if r != 'g' {
		t.Errorf("Expected navbar brand at (1,0), got %q", r)
	}

	var row strings.Builder
	for x := 0; x < 120; x++ {
		c, _, _, _ := screen.GetContent(x, 20)
		row.WriteRune(c)
	}
	if !strings.Contains(row.String(), "h|") {
		t.Errorf("Expected typed tagline on screen row 20, got %q", strings.TrimSpace(row.String()))
	}
}
