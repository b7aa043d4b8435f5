package view

import "pong/src/arena"

//PointerFilter passes the cursor on to the arena only when it moved to a new position inside the field
//a cursor parked outside the window or never moved doesn't override the last report
type PointerFilter struct {
	field arena.Field
	x, y  int
}

func NewPointerFilter(f arena.Field) *PointerFilter {
	return &PointerFilter{field: f}
}

//Moved returns the field y and true when the position differs from the previous call and lies inside the field
func (p *PointerFilter) Moved(x, y int) (float64, bool) {
	if x == p.x && y == p.y {
		return 0, false
	}
	p.x, p.y = x, y
	if x < 0 || y < 0 || float64(x) >= p.field.Width || float64(y) >= p.field.Height {
		return 0, false
	}
	return float64(y), true
}
