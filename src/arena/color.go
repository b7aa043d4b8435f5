package arena

import (
	"image/color"
	"strconv"
)

//Color is a color tag in #rgb notation, renderers map it to their own palette
type Color string

const (
	ColorLeft  Color = "#0ff"
	ColorRight Color = "#f00"
	ColorBall  Color = "#fff"
	ColorNet   Color = "#aaa"
)

//RGBA converts #rgb and #rrggbb tags, unknown tags are white
func (c Color) RGBA() color.RGBA {
	h := string(c)
	if len(h) > 0 && h[0] == '#' {
		h = h[1:]
	}
	switch len(h) {
	case 3:
		v, err := strconv.ParseUint(h, 16, 16)
		if err != nil {
			break
		}
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return color.RGBA{R: r * 0x11, G: g * 0x11, B: b * 0x11, A: 0xff}
	case 6:
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			break
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
	}
	return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}
