package arena

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//recorder keeps the draw calls as strings
type recorder struct {
	calls []string
}

func (r *recorder) Clear() {
	r.calls = append(r.calls, "clear")
}

func (r *recorder) DrawRect(x, y, w, h float64, c Color) {
	r.calls = append(r.calls, fmt.Sprintf("rect %v %v %v %v %s", x, y, w, h, c))
}

func (r *recorder) DrawCircle(x, y, radius float64, c Color) {
	r.calls = append(r.calls, fmt.Sprintf("circle %v %v %v %s", x, y, radius, c))
}

func (r *recorder) DrawText(text string, x, y float64, c Color) {
	r.calls = append(r.calls, fmt.Sprintf("text %s %v %v %s", text, x, y, c))
}

func TestDraw(t *testing.T) {
	s, _ := newTestState(t)
	s.Score = Score{Left: 3, Right: 12}
	s.Ball.X, s.Ball.Y = 100, 200

	r := &recorder{}
	Draw(s, r)

	// clear + 20 net segments + 2 paddles + ball + 2 scores
	require.Len(t, r.calls, 26)
	assert.Equal(t, "clear", r.calls[0])
	assert.Equal(t, "rect 398 0 4 20 #aaa", r.calls[1])
	assert.Equal(t, "rect 398 570 4 20 #aaa", r.calls[20])
	assert.Equal(t, "rect 0 260 12 80 #0ff", r.calls[21])
	assert.Equal(t, "rect 788 260 12 80 #f00", r.calls[22])
	assert.Equal(t, "circle 100 200 10 #fff", r.calls[23])
	assert.Equal(t, "text 3 340 50 #0ff", r.calls[24])
	assert.Equal(t, "text 12 430 50 #f00", r.calls[25])
}

func TestDrawNetCoversField(t *testing.T) {
	for h, want := range map[float64]int{80: 3, 100: 4, 599: 20, 600: 20, 601: 21} {
		t.Run(fmt.Sprint(h), func(t *testing.T) {
			s, _ := newTestState(t)
			s.Field.Height = h
			r := &recorder{}
			Draw(s, r)

			net := 0
			for _, c := range r.calls {
				if len(c) > 4 && c[:4] == "rect" && c[len(c)-4:] == "#aaa" {
					net++
				}
			}
			assert.Equal(t, want, net)
		})
	}
}
