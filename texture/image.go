// Package texture analyzes source images, plans their block
// compression, and encodes them into KTX files next to the exported
// scene. Codec back-ends (block compressors, exotic loaders) plug in
// through the Compressor and Loader interfaces.
package texture

import (
	"github.com/pkg/errors"

	"github.com/Y-Gwork/Granite/scene"
)

// Image is an 8-bit-per-channel RGBA texture, possibly with a mip
// chain, array layers and cube faces. Level 0 slice 0 always exists on
// a loaded image.
type Image struct {
	Width  int
	Height int
	Layers int
	Faces  int
	SRGB   bool
	Levels []MipLevel
}

// MipLevel holds one RGBA8 buffer per layer*face slice.
type MipLevel struct {
	Width  int
	Height int
	Slices [][]byte
}

// NewImage allocates a single-level, single-slice image.
func NewImage(width, height int, srgb bool) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Layers: 1,
		Faces:  1,
		SRGB:   srgb,
		Levels: []MipLevel{{
			Width:  width,
			Height: height,
			Slices: [][]byte{make([]byte, width*height*4)},
		}},
	}
}

// Swizzle permutes the channels of every slice in place. Only R/G/B/A
// sources are valid here; ONE and ZERO exist solely in output swizzles.
func (im *Image) Swizzle(m scene.ComponentMapping) error {
	if m.IsIdentity() {
		return nil
	}
	sel := [4]scene.ComponentSwizzle{m.R, m.G, m.B, m.A}
	for _, s := range sel {
		if s > scene.SwizzleA {
			return errors.Errorf("unrecognized swizzle parameter %s", s)
		}
	}
	for _, level := range im.Levels {
		for _, pixels := range level.Slices {
			if len(pixels) != level.Width*level.Height*4 {
				return errors.New("can only swizzle RGBA textures")
			}
			for i := 0; i < len(pixels); i += 4 {
				var src [4]byte
				copy(src[:], pixels[i:i+4])
				for c := 0; c < 4; c++ {
					pixels[i+c] = src[sel[c]]
				}
			}
		}
	}
	return nil
}
