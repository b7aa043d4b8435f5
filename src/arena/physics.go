package arena

import (
	"math"
	"math/rand"
)

//Step advances the state by one frame
//pointerY is the last reported pointer position, NaN when the input source didn't report yet
//the left paddle follows it before the ball moves, so the collision sees the paddle where the player put it
//the velocity is applied as is, one frame is one time unit
func Step(s *State, pointerY float64, rnd *rand.Rand) {
	if !math.IsNaN(pointerY) {
		followPointer(&s.Left, pointerY, s.Field)
	}

	moveBall(&s.Ball)
	bounceWalls(&s.Ball, s.Field)

	if collides(s.Ball, s.Left) {
		s.Ball.VX = math.Abs(s.Ball.VX)
		spin(&s.Ball, s.Left)
	} else if collides(s.Ball, s.Right) {
		s.Ball.VX = -math.Abs(s.Ball.VX)
		spin(&s.Ball, s.Right)
	}

	if s.Ball.X-s.Ball.Radius < 0 {
		s.Score.Right++
		s.serve(rnd)
	} else if s.Ball.X+s.Ball.Radius > s.Field.Width {
		s.Score.Left++
		s.serve(rnd)
	}

	moveAI(&s.Right, s.Ball, s.Field)
}

func moveBall(b *Ball) {
	b.X += b.VX
	b.Y += b.VY
}

//bounceWalls flips the vertical direction on the top and bottom walls
//the ball isn't pushed back inside, the next frames move it out of the wall
func bounceWalls(b *Ball, f Field) {
	if b.Y-b.Radius < 0 || b.Y+b.Radius > f.Height {
		b.VY = -b.VY
	}
}

//collides checks the ball's bounding box against the paddle
func collides(b Ball, p Paddle) bool {
	return b.X-b.Radius < p.X+p.Width &&
		b.X+b.Radius > p.X &&
		b.Y-b.Radius < p.Y+p.Height &&
		b.Y+b.Radius > p.Y
}

//spin adds the hit offset from the paddle center to the vertical speed, it accumulates without limit
func spin(b *Ball, p Paddle) {
	b.VY += (b.Y - p.CenterY()) * SpinFactor
}

//moveAI steps the paddle toward the ball when the ball is outside the dead zone
func moveAI(p *Paddle, b Ball, f Field) {
	c := p.CenterY()
	if b.Y < c-AIDeadZone {
		p.Y -= AIStep
	} else if b.Y > c+AIDeadZone {
		p.Y += AIStep
	}
	clampPaddle(p, f)
}

//followPointer centers the paddle on the pointer
func followPointer(p *Paddle, pointerY float64, f Field) {
	p.Y = pointerY - p.Height/2
	clampPaddle(p, f)
}

func clampPaddle(p *Paddle, f Field) {
	p.Y = math.Max(0, math.Min(f.Height-p.Height, p.Y))
}
