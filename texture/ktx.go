package texture

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/Y-Gwork/Granite/vfs"
)

var ktxIdentifier = [12]byte{0xab, 'K', 'T', 'X', ' ', '1', '1', 0xbb, '\r', '\n', 0x1a, '\n'}

const (
	ktxEndianness     = 0x04030201
	ktxGLUnsignedByte = 0x1401
	ktxGLRGBA         = 0x1908
)

// WriteKTX serializes the image into a KTX 1.1 container. Only the two
// uncompressed formats are writable here; block-compressed payloads are
// produced by an external Compressor.
func WriteKTX(w io.Writer, im *Image, format KTXFormat) error {
	if format.Compressed() {
		return errors.Errorf("format %d requires an external block compressor", format)
	}
	if len(im.Levels) == 0 {
		return errors.New("image has no levels")
	}

	arrayElements := uint32(0)
	if im.Layers > 1 {
		arrayElements = uint32(im.Layers)
	}

	header := [13]uint32{
		ktxEndianness,
		ktxGLUnsignedByte,           // glType
		1,                           // glTypeSize
		ktxGLRGBA,                   // glFormat
		format.GLInternalFormat(),   // glInternalFormat
		ktxGLRGBA,                   // glBaseInternalFormat
		uint32(im.Width),            // pixelWidth
		uint32(im.Height),           // pixelHeight
		0,                           // pixelDepth
		arrayElements,               // numberOfArrayElements
		uint32(maxInt(im.Faces, 1)), // numberOfFaces
		uint32(len(im.Levels)),      // numberOfMipmapLevels
		0,                           // bytesOfKeyValueData
	}

	if _, err := w.Write(ktxIdentifier[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, header[:]); err != nil {
		return err
	}

	for _, level := range im.Levels {
		sliceSize := uint32(level.Width * level.Height * 4)
		imageSize := sliceSize
		if arrayElements > 0 {
			imageSize = sliceSize * arrayElements * uint32(maxInt(im.Faces, 1))
		}
		if err := binary.Write(w, binary.LittleEndian, imageSize); err != nil {
			return err
		}
		for _, pixels := range level.Slices {
			if len(pixels) != int(sliceSize) {
				return errors.New("slice size does not match level dimensions")
			}
			if _, err := w.Write(pixels); err != nil {
				return err
			}
		}
	}
	return nil
}

// SaveKTX writes the image to path through the filesystem seam.
func SaveKTX(fsys vfs.FS, path string, im *Image, format KTXFormat) error {
	f, err := fsys.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := WriteKTX(f, im, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
