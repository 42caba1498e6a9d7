package video

import "github.com/ushitora-anqou/doomvid/constant"

func checkExpand(op string, dst []byte, pitch, bpp int, screen []byte) error {
	if len(screen) < constant.SCREEN_PIXELS {
		return Errorf(op, nil, "framebuffer has %d pixels, expected %d", len(screen), constant.SCREEN_PIXELS)
	}
	if pitch < constant.SCREEN_WIDTH*bpp {
		return Errorf(op, nil, "pitch %d is narrower than a row", pitch)
	}
	if need := pitch*(constant.SCREEN_HEIGHT-1) + constant.SCREEN_WIDTH*bpp; len(dst) < need {
		return Errorf(op, nil, "destination has %d bytes, need %d", len(dst), need)
	}
	return nil
}

// ExpandRGB24 writes screen through pal into a 3-byte-per-pixel buffer whose
// rows are pitch bytes apart.
func ExpandRGB24(dst []byte, pitch int, screen []byte, pal *Palette) error {
	if err := checkExpand("ExpandRGB24", dst, pitch, 3, screen); err != nil {
		return err
	}
	for row := 0; row < constant.SCREEN_HEIGHT; row++ {
		src := screen[row*constant.SCREEN_WIDTH : (row+1)*constant.SCREEN_WIDTH]
		out := dst[row*pitch:]
		for col, idx := range src {
			c := int(idx) * 3
			out[col*3+0] = pal[c+0] // r
			out[col*3+1] = pal[c+1] // g
			out[col*3+2] = pal[c+2] // b
		}
	}
	return nil
}

// ExpandARGB8888 writes native-endian ARGB words, i.e. B, G, R, A in memory.
func ExpandARGB8888(dst []byte, pitch int, screen []byte, pal *Palette) error {
	if err := checkExpand("ExpandARGB8888", dst, pitch, 4, screen); err != nil {
		return err
	}
	for row := 0; row < constant.SCREEN_HEIGHT; row++ {
		src := screen[row*constant.SCREEN_WIDTH : (row+1)*constant.SCREEN_WIDTH]
		out := dst[row*pitch:]
		for col, idx := range src {
			c := int(idx) * 3
			out[col*4+0] = pal[c+2] // b
			out[col*4+1] = pal[c+1] // g
			out[col*4+2] = pal[c+0] // r
			out[col*4+3] = 0xff     // a
		}
	}
	return nil
}

// ExpandRGBA writes tightly packed R, G, B, A bytes.
func ExpandRGBA(dst []byte, screen []byte, pal *Palette) error {
	pitch := constant.SCREEN_WIDTH * 4
	if err := checkExpand("ExpandRGBA", dst, pitch, 4, screen); err != nil {
		return err
	}
	for off, idx := range screen[:constant.SCREEN_PIXELS] {
		c := int(idx) * 3
		dst[off*4+0] = pal[c+0] // r
		dst[off*4+1] = pal[c+1] // g
		dst[off*4+2] = pal[c+2] // b
		dst[off*4+3] = 0xff     // a
	}
	return nil
}
