package view

import (
	"bytes"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"pong/src/arena"
)

//PointerStep is the pointer move in field units for the keyboard and the mouse wheel
const PointerStep = 20.0

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI is the terminal view, the court is drawn with the characters and the mouse or keys move the left paddle
type ConsoleUI struct {
	a arena.Arena
	g *gocui.Gui
	k []keyBindings

	//owned by the gocui goroutine
	court    *court
	last     arena.State
	pointerY float64
}

var (
	runningStateDescr = map[arena.RunningState]string{
		arena.RunningStateManual:   aurora.Colorize("paused", aurora.BlueFg).String(),
		arena.RunningStateStep:     "do the step",
		arena.RunningStateRun:      aurora.Colorize("running", aurora.CyanFg).String(),
		arena.RunningStateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
	}

	palette = map[arena.Color]aurora.Color{
		arena.ColorLeft:  aurora.CyanFg,
		arena.ColorRight: aurora.RedFg,
		arena.ColorBall:  aurora.WhiteFg | aurora.BrightFg,
		arena.ColorNet:   aurora.BlackFg | aurora.BrightFg,
	}
)

func NewViewTerminal() *ConsoleUI {

	var err error
	t := ConsoleUI{}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{'r',
			"R",
			"Run",
			t.cmdRun,
			""},
		{'s',
			"S",
			"Pause",
			t.cmdStop,
			""},
		{'n',
			"N",
			"Next frame",
			t.cmdNextFrame,
			""},
		{gocui.KeyArrowUp,
			"↑",
			"Paddle up",
			t.cmdPointerUp,
			""},
		{gocui.KeyArrowDown,
			"↓",
			"Paddle down",
			t.cmdPointerDown,
			""},
		{gocui.MouseWheelUp,
			"WHEEL",
			"Move the paddle",
			t.cmdPointerUp,
			"court"},
		{gocui.MouseWheelDown,
			"",
			"",
			t.cmdPointerDown,
			"court"},
		{gocui.MouseLeft,
			"MOUSE",
			"Place the paddle",
			t.cmdMouseClick,
			"court"},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

func (t *ConsoleUI) Register(a arena.Arena) {
	t.a = a
	t.last = a.State()
	t.pointerY = t.last.Left.CenterY()
}

func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

//Refresh is called by the arena after every step, the drawing is passed to the gocui goroutine
func (t *ConsoleUI) Refresh(s arena.State) {
	t.g.Update(func(g *gocui.Gui) error {
		t.last = s
		t.renderCourt(g)
		t.renderStatus(g)
		return nil
	})
}

func (t *ConsoleUI) renderCourt(g *gocui.Gui) {
	v, e := g.View("court")
	if e != nil {
		return
	}
	v.Clear()

	maxW, maxH := v.Size()
	if t.court == nil || t.court.width != maxW || t.court.height != maxH {
		t.court = newCourt(t.last.Field, maxW, maxH)
	}
	arena.Draw(t.last, t.court)
	_, _ = fmt.Fprint(v, t.court.String(func(s string, c arena.Color) string {
		return aurora.Colorize(s, palette[c]).String()
	}))
}

func (t *ConsoleUI) renderStatus(g *gocui.Gui) {
	if t.a == nil {
		return
	}
	s := t.a.Status()
	if v, e := g.View("status"); e == nil {
		v.Clear()
		_, _ = fmt.Fprintln(v, t.renderProp("Score", "%v : %v", s.Score.Left, s.Score.Right))
		_, _ = fmt.Fprintln(v, t.renderProp("Frame", "%v", s.FrameNum))
		_, _ = fmt.Fprintln(v, t.renderProp("Step time", "%v", s.StepTime.Round(time.Microsecond)))
		_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[s.RunningMode]))
		_, _ = fmt.Fprintln(v, t.renderProp("Ball speed", "%.1f, %.1f", t.last.Ball.VX, t.last.Ball.VY))
	}
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	statusHeight := 7
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("status")
		_ = g.DeleteView("court")
		t.court = nil
		return nil
	}

	if _, err := t.headerLayout(g, 3, "Pong"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	if v, err := g.SetView("court", 0, 3, maxX-1, maxY-5-statusHeight); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Court"
		v.Frame = true
	}
	t.renderCourt(g)

	if v, err := g.SetView("status", 0, maxY-5-statusHeight+1, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}
	t.renderStatus(g)

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		first := true
		for _, k := range t.k {
			if k.name == "" {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			panic(fmt.Sprintf("Terminal width is too small: %v", maxX))
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}

//movePointer reports the new pointer position to the arena, the position is kept inside the field
func (t *ConsoleUI) movePointer(y float64) {
	t.pointerY = math.Max(0, math.Min(t.last.Field.Height, y))
	t.a.MovePointer(t.pointerY)
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.a.Run()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.a.Stop()
	return nil
}

func (t *ConsoleUI) cmdNextFrame(_ *gocui.View) error {
	t.a.Step()
	return nil
}

func (t *ConsoleUI) cmdPointerUp(_ *gocui.View) error {
	t.movePointer(t.pointerY - PointerStep)
	return nil
}

func (t *ConsoleUI) cmdPointerDown(_ *gocui.View) error {
	t.movePointer(t.pointerY + PointerStep)
	return nil
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	if t.court == nil {
		return nil
	}
	_, cy := v.Cursor()
	t.movePointer(t.court.fieldY(cy))
	return nil
}
