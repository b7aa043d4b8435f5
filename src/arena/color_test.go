package arena

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorRGBA(t *testing.T) {
	tests := map[Color]color.RGBA{
		ColorLeft:  {0x00, 0xff, 0xff, 0xff},
		ColorRight: {0xff, 0x00, 0x00, 0xff},
		ColorBall:  {0xff, 0xff, 0xff, 0xff},
		ColorNet:   {0xaa, 0xaa, 0xaa, 0xff},
		"#123456":  {0x12, 0x34, 0x56, 0xff},
		"808080":   {0x80, 0x80, 0x80, 0xff},
		"#zzz":     {0xff, 0xff, 0xff, 0xff},
		"":         {0xff, 0xff, 0xff, 0xff},
	}
	for c, want := range tests {
		assert.Equal(t, want, c.RGBA(), "color %q", c)
	}
}
