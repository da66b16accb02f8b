package scene

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glimmer/parameter"
	"github.com/lixenwraith/glimmer/scroll"
)

// HandleEvent applies one terminal event; it returns false when the user asked to quit
func (s *Scene) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		s.Resize(cols, rows)

	case *tcell.EventMouse:
		cx, cy := ev.Position()
		x, y := s.surface.FromCell(cx, cy)
		s.tracker.OnMove(x, y)

		btn := ev.Buttons()
		if btn&tcell.Button1 != 0 && s.buttons&tcell.Button1 == 0 {
			s.click(x, y)
		}
		if btn&tcell.WheelUp != 0 {
			s.Scroll(-parameter.ScrollStep)
		}
		if btn&tcell.WheelDown != 0 {
			s.Scroll(parameter.ScrollStep)
		}
		s.buttons = btn

	case *tcell.EventFocus:
		if ev.Focused {
			s.tracker.OnEnter()
		} else {
			s.tracker.OnLeave()
		}

	case *tcell.EventKey:
		return s.handleKey(ev)
	}
	return true
}

func (s *Scene) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		s.Scroll(-parameter.ScrollStep)
	case tcell.KeyDown:
		s.Scroll(parameter.ScrollStep)
	case tcell.KeyPgUp:
		_, h := s.surface.Size()
		s.Scroll(-h)
	case tcell.KeyPgDn:
		_, h := s.surface.Size()
		s.Scroll(h)
	case tcell.KeyHome:
		s.ScrollTo(0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'm':
			if s.opts.Sound != nil {
				s.opts.Sound.ToggleMute()
			}
		case 't':
			s.trailOn = !s.trailOn
		case 'p':
			s.particles.SetVisible(!s.particles.IsVisible())
		}
	}
	return true
}

// click spawns a sparkle burst at the pointer
// The button glides to the contact section; the corner control glides back to the top
func (s *Scene) click(x, y float64) {
	s.emitter.Spawn(x, y, s.nowMs)
	switch {
	case s.button.Rect.Contains(x, y):
		s.jumpTo("contact")
	case scroll.ShowScrollTop(s.scrollY) && s.scrollTopRect().Contains(x, y):
		s.ScrollTo(0)
	}
}
