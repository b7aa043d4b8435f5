package arena

import "strconv"

//Renderer is the drawing surface, any view able to paint the primitives can draw the game
type Renderer interface {
	Clear()
	DrawRect(x, y, w, h float64, c Color)
	DrawCircle(x, y, r float64, c Color)
	DrawText(text string, x, y float64, c Color)
}

//net and score placement
const (
	NetWidth   = 4.0
	NetHeight  = 20.0
	NetSpacing = 30.0

	ScoreLeftOffset  = -60.0
	ScoreRightOffset = 30.0
	ScoreTop         = 50.0
	TextSize         = 32.0
)

//Draw paints the snapshot: clear, net, paddles, ball and scores
func Draw(s State, r Renderer) {
	r.Clear()

	netX := s.Field.Width/2 - NetWidth/2
	for y := 0.0; y < s.Field.Height; y += NetSpacing {
		r.DrawRect(netX, y, NetWidth, NetHeight, ColorNet)
	}

	r.DrawRect(s.Left.X, s.Left.Y, s.Left.Width, s.Left.Height, s.Left.Color)
	r.DrawRect(s.Right.X, s.Right.Y, s.Right.Width, s.Right.Height, s.Right.Color)

	r.DrawCircle(s.Ball.X, s.Ball.Y, s.Ball.Radius, s.Ball.Color)

	r.DrawText(strconv.Itoa(s.Score.Left), s.Field.Width/2+ScoreLeftOffset, ScoreTop, ColorLeft)
	r.DrawText(strconv.Itoa(s.Score.Right), s.Field.Width/2+ScoreRightOffset, ScoreTop, ColorRight)
}
