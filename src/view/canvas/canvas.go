// Package canvas draws the game in a window with ebiten.
// The window's frame callback is the scheduler: every Update runs exactly one arena step.
package canvas

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pong/src/arena"
	"pong/src/view"
)

const FramesPerSecond = 60

type Canvas struct {
	a       arena.Arena
	title   string
	pointer *view.PointerFilter
	surface *surface

	mu   sync.Mutex
	last arena.State
}

func NewCanvas(title string) *Canvas {
	return &Canvas{title: title}
}

func (c *Canvas) Register(a arena.Arena) {
	c.a = a
	c.pointer = view.NewPointerFilter(a.State().Field)
	c.surface = &surface{labels: view.NewLabels(renderText, (*ebiten.Image).Deallocate)}
}

//Refresh keeps the snapshot for the next Draw
func (c *Canvas) Refresh(s arena.State) {
	c.mu.Lock()
	c.last = s
	c.mu.Unlock()
}

//Start opens the window and blocks until it's closed
func (c *Canvas) Start() {
	f := c.a.State().Field
	ebiten.SetWindowSize(int(f.Width), int(f.Height))
	ebiten.SetWindowTitle(c.title)
	ebiten.SetTPS(FramesPerSecond)
	defer c.surface.labels.Release()
	if err := ebiten.RunGame(c); err != nil {
		log.Panicln(err)
	}
}

//Update is called once per frame: it passes a moved cursor to the arena and runs the step
//a cursor outside the window keeps the last reported position
func (c *Canvas) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if y, ok := c.pointer.Moved(ebiten.CursorPosition()); ok {
		c.a.MovePointer(y)
	}
	c.a.Tick()
	return nil
}

func (c *Canvas) Draw(screen *ebiten.Image) {
	c.mu.Lock()
	s := c.last
	c.mu.Unlock()
	c.surface.screen = screen
	arena.Draw(s, c.surface)
}

func (c *Canvas) Layout(_, _ int) (int, int) {
	f := c.a.State().Field
	return int(f.Width), int(f.Height)
}

//surface adapts the ebiten image to arena.Renderer
type surface struct {
	screen *ebiten.Image
	labels *view.Labels[*ebiten.Image]
}

func (s *surface) Clear() {
	s.screen.Fill(color.Black)
}

func (s *surface) DrawRect(x, y, w, h float64, c arena.Color) {
	vector.DrawFilledRect(s.screen, float32(x), float32(y), float32(w), float32(h), c.RGBA(), false)
}

func (s *surface) DrawCircle(x, y, r float64, c arena.Color) {
	vector.DrawFilledCircle(s.screen, float32(x), float32(y), float32(r), c.RGBA(), true)
}

//DrawText prints with the debug font, y is the baseline like for the canvas fonts
//the text image of every position is kept until its text changes
func (s *surface) DrawText(text string, x, y float64, c arena.Color) {
	img := s.labels.Get(fmt.Sprintf("%g,%g", x, y), text)
	op := &ebiten.DrawImageOptions{}
	scale := arena.TextSize / debugCharHeight
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-arena.TextSize)
	op.ColorScale.ScaleWithColor(c.RGBA())
	s.screen.DrawImage(img, op)
}

func renderText(text string) *ebiten.Image {
	img := ebiten.NewImage(len(text)*debugCharWidth, debugCharHeight)
	ebitenutil.DebugPrint(img, text)
	return img
}

const (
	debugCharWidth  = 6
	debugCharHeight = 16
)
