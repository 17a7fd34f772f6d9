package texture

import (
	"image"
	"image/draw"

	// Register the baseline decoders behind image.Decode.
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"

	"github.com/Y-Gwork/Granite/vfs"
)

// Loader decodes a source image into an 8-bit RGBA texture in the color
// space implied by mode. Exotic codecs (EXR, KTX input) plug in here.
type Loader interface {
	Load(path string, mode Mode) (*Image, error)
}

// FileLoader decodes images from a filesystem with the standard
// registered codecs.
type FileLoader struct {
	FS vfs.FS
}

func (l FileLoader) Load(path string, mode Mode) (*Image, error) {
	f, err := l.FS.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	bounds := src.Bounds()
	rgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)

	out := NewImage(bounds.Dx(), bounds.Dy(), mode.SRGB())
	copy(out.Levels[0].Slices[0], rgba.Pix)
	return out, nil
}
