package arena

import (
	"math/rand"

	"github.com/pkg/errors"
)

//shapes and rules of the game
const (
	PaddleWidth  = 12.0
	PaddleHeight = 80.0
	BallRadius   = 10.0

	ServeSpeedX = 5.0
	ServeSpeedY = 3.0
	SpinFactor  = 0.15

	AIDeadZone = 10.0
	AIStep     = 4.0
)

//ErrInvalidField is returned when the field can't hold the paddles
var ErrInvalidField = errors.New("invalid field")

//Field is the fixed play area
type Field struct {
	Width  float64
	Height float64
}

//Validate checks the field can host both paddles
func (f Field) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return errors.Wrapf(ErrInvalidField, "size %vx%v must be positive", f.Width, f.Height)
	}
	if f.Height < PaddleHeight {
		return errors.Wrapf(ErrInvalidField, "height %v is less than the paddle height %v", f.Height, PaddleHeight)
	}
	if f.Width < 2*PaddleWidth {
		return errors.Wrapf(ErrInvalidField, "width %v can't hold both paddles", f.Width)
	}
	return nil
}

type Paddle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Color  Color
}

//CenterY returns the vertical center of the paddle
func (p Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

type Ball struct {
	X      float64
	Y      float64
	VX     float64
	VY     float64
	Radius float64
	Color  Color
}

type Score struct {
	Left  int
	Right int
}

//State is the whole game state, the loop owns the live copy and hands snapshots to viewers
type State struct {
	Field Field
	Left  Paddle
	Right Paddle
	Ball  Ball
	Score Score
}

//NewState creates the start layout: centered paddles and a served ball
func NewState(f Field, rnd *rand.Rand) State {
	s := State{
		Field: f,
		Left: Paddle{
			X:      0,
			Y:      f.Height/2 - PaddleHeight/2,
			Width:  PaddleWidth,
			Height: PaddleHeight,
			Color:  ColorLeft,
		},
		Right: Paddle{
			X:      f.Width - PaddleWidth,
			Y:      f.Height/2 - PaddleHeight/2,
			Width:  PaddleWidth,
			Height: PaddleHeight,
			Color:  ColorRight,
		},
		Ball: Ball{
			Radius: BallRadius,
			Color:  ColorBall,
		},
	}
	s.serve(rnd)
	return s
}

//serve places the ball at the field center with a random diagonal direction
func (s *State) serve(rnd *rand.Rand) {
	s.Ball.X = s.Field.Width / 2
	s.Ball.Y = s.Field.Height / 2
	s.Ball.VX = ServeSpeedX * randomSign(rnd)
	s.Ball.VY = ServeSpeedY * randomSign(rnd)
}

func randomSign(rnd *rand.Rand) float64 {
	if rnd.Float64() < 0.5 {
		return 1
	}
	return -1
}
