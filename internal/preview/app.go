package preview

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Alia5/viipad/ctrl"
	"github.com/Alia5/viipad/overlay"
	"github.com/Alia5/viipad/touch"
	"github.com/gdamore/tcell/v2"
)

const (
	scaleStep   = 0.25
	opacityStep = 10
	redrawEvery = 50 * time.Millisecond
)

// App drives an overlay from a terminal. Every overlay call happens on the
// goroutine running Run.
type App struct {
	screen  tcell.Screen
	overlay *overlay.Overlay
	logger  *slog.Logger

	renderer *Renderer
	mouse    *MouseBridge
	dirty    bool

	recording bool
	recorded  []touch.Event
}

// NewApp wires a screen to an overlay. cellW and cellH give the overlay
// pixel size of one terminal cell.
func NewApp(screen tcell.Screen, o *overlay.Overlay, cellW, cellH int, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		screen:   screen,
		overlay:  o,
		logger:   logger,
		renderer: NewRenderer(screen, cellW, cellH),
		mouse:    NewMouseBridge(cellW, cellH),
		dirty:    true,
	}
}

// Run polls terminal events until ctx is done or the user quits. The
// polling goroutine exits once Run has returned and the screen is finalized.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.screen.EnableMouse()
	a.screen.HideCursor()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(redrawEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			if !a.Handle(ev) {
				a.logger.Debug("preview closed by user")
				return nil
			}
		case <-ticker.C:
			if a.dirty {
				a.Draw()
			}
		}
	}
}

// Record starts keeping every touch frame the mouse produces.
func (a *App) Record() { a.recording = true }

// Recorded returns the frames captured since Record.
func (a *App) Recorded() []touch.Event { return a.recorded }

// Handle applies one terminal event and returns false when the app should
// exit.
func (a *App) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		if t, ok := a.mouse.Translate(ev); ok {
			if a.recording {
				a.recorded = append(a.recorded, t)
			}
			a.overlay.HandleTouch(t)
			a.dirty = true
		}
	case *tcell.EventResize:
		a.screen.Sync()
		a.dirty = true
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	o := a.overlay
	mask := overlay.ShowBasic
	if !o.Visible() {
		mask = 0
	}
	switch ev.Rune() {
	case 'q':
		return false
	case 'e':
		o.SetState(mask, !o.EditMode(), false)
	case 'h':
		o.SetState(mask^overlay.ShowBasic, o.EditMode(), false)
	case 'r':
		o.SetState(mask, o.EditMode(), true)
	case '+', '=':
		o.SetScale(o.Scale() + scaleStep)
	case '-':
		o.SetScale(o.Scale() - scaleStep)
	case ']':
		o.SetOpacityPercent(o.OpacityPercent() + opacityStep)
	case '[':
		o.SetOpacityPercent(o.OpacityPercent() - opacityStep)
	default:
		return true
	}
	a.dirty = true
	return true
}

// Draw repaints the overlay and the status line.
func (a *App) Draw() {
	a.screen.Clear()
	a.overlay.Draw(a.renderer)
	_, h := a.screen.Size()
	drawText(a.screen, 0, h-1, StatusLine(a.overlay), tcell.StyleDefault.Reverse(true))
	a.screen.Show()
	a.dirty = false
}

// StatusLine summarizes the overlay state and its controller output.
func StatusLine(o *overlay.Overlay) string {
	mode := "play"
	if o.EditMode() {
		mode = "edit"
	}
	s := o.Snapshot()
	return fmt.Sprintf("[%s] scale %.2f opacity %d%% | L %+.2f %+.2f %s | R %+.2f %+.2f %s | e:edit h:hide r:reset +/-:scale [/]:opacity q:quit",
		mode, o.Scale(), o.OpacityPercent(),
		s.Axis(ctrl.AxisLeftX), s.Axis(ctrl.AxisLeftY), pressedMark(s, ctrl.StickLeft),
		s.Axis(ctrl.AxisRightX), s.Axis(ctrl.AxisRightY), pressedMark(s, ctrl.StickRight),
	)
}

func pressedMark(s ctrl.State, id int) string {
	if s.IsPressed(id) {
		return "*"
	}
	return " "
}

func drawText(s CellSetter, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
