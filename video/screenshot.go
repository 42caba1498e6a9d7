package video

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/ushitora-anqou/doomvid/constant"
	"golang.org/x/image/bmp"
)

// Image wraps the framebuffer and palette without copying pixels.
func Image(screen *Screen, pal *Palette) *image.Paletted {
	colors := make(color.Palette, 256)
	for i := range colors {
		r, g, b := pal.Color(uint8(i))
		colors[i] = color.RGBA{r, g, b, 0xff}
	}
	return &image.Paletted{
		Pix:     screen[:],
		Stride:  constant.SCREEN_WIDTH,
		Rect:    image.Rect(0, 0, constant.SCREEN_WIDTH, constant.SCREEN_HEIGHT),
		Palette: colors,
	}
}

// WriteScreenshot encodes the frame as "bmp" or "png".
func WriteScreenshot(w io.Writer, format string, screen *Screen, pal *Palette) error {
	img := Image(screen, pal)
	var err error
	switch strings.ToLower(format) {
	case "bmp":
		err = bmp.Encode(w, img)
	case "png":
		err = png.Encode(w, img)
	default:
		return Errorf("Screenshot", nil, "unsupported format %q", format)
	}
	if err != nil {
		return Errorf("Screenshot", err, "encode %s", format)
	}
	return nil
}
