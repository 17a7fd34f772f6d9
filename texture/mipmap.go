package texture

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/pkg/errors"
)

// GenerateMipmaps replaces the image's level list with a full chain
// down to 1x1, resampling each slice with a linear filter. It is the
// default offline mip generator; callers with gamma-exact or HDR
// requirements inject their own.
func GenerateMipmaps(im *Image) error {
	if len(im.Levels) == 0 || len(im.Levels[0].Slices) == 0 {
		return errors.New("cannot generate mipmaps for an empty image")
	}

	base := im.Levels[0]
	current := make([]*image.RGBA, len(base.Slices))
	for i, pixels := range base.Slices {
		if len(pixels) != base.Width*base.Height*4 {
			return errors.New("mipmap generation requires RGBA8 slices")
		}
		rgba := image.NewRGBA(image.Rect(0, 0, base.Width, base.Height))
		copy(rgba.Pix, pixels)
		current[i] = rgba
	}

	levels := []MipLevel{base}
	width, height := base.Width, base.Height
	for width > 1 || height > 1 {
		width = maxInt(1, width/2)
		height = maxInt(1, height/2)

		level := MipLevel{Width: width, Height: height}
		for i := range current {
			current[i] = transform.Resize(current[i], width, height, transform.Linear)
			pixels := make([]byte, width*height*4)
			copy(pixels, current[i].Pix)
			level.Slices = append(level.Slices, pixels)
		}
		levels = append(levels, level)
	}

	im.Levels = levels
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
