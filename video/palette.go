package video

import "github.com/ushitora-anqou/doomvid/constant"

// GammaTable is one selected row of the engine's gamma correction table.
type GammaTable [256]byte

var IdentityGamma = func() *GammaTable {
	g := &GammaTable{}
	for i := range g {
		g[i] = byte(i)
	}
	return g
}()

// Palette holds 256 colors as consecutive R, G, B bytes.
type Palette [constant.PALETTE_SIZE]byte

// Set rebuilds the palette from a raw engine palette, passing every channel
// through gamma. A nil gamma means no correction.
func (p *Palette) Set(src []byte, gamma *GammaTable) error {
	if len(src) < constant.PALETTE_SIZE {
		return Errorf("SetPalette", nil, "expected %d bytes, got %d", constant.PALETTE_SIZE, len(src))
	}
	if gamma == nil {
		gamma = IdentityGamma
	}
	for i := 0; i < constant.PALETTE_SIZE; i++ {
		p[i] = gamma[src[i]]
	}
	return nil
}

func (p *Palette) Color(idx uint8) (r, g, b uint8) {
	off := int(idx) * 3
	return p[off], p[off+1], p[off+2]
}
