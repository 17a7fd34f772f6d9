package texture

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Mode is the color-space/usage interpretation of a source texture. It
// drives both decode color space and the sRGB flag on the output codec.
type Mode uint32

const (
	ModeSRGB Mode = iota
	ModeSRGBA
	ModeRGB
	ModeRGBA
	ModeHDR
)

// SRGB reports whether pixels are encoded in the sRGB transfer curve.
func (m Mode) SRGB() bool {
	return m == ModeSRGB || m == ModeSRGBA
}

func (m Mode) String() string {
	switch m {
	case ModeSRGB:
		return "sRGB"
	case ModeSRGBA:
		return "sRGBA"
	case ModeRGB:
		return "RGB"
	case ModeRGBA:
		return "RGBA"
	case ModeHDR:
		return "HDR"
	}
	return "?"
}

// CompressionFamily is the abstract compression choice; the concrete
// codec is derived per material role by the planner.
type CompressionFamily uint32

const (
	FamilyUncompressed CompressionFamily = iota
	FamilyBC
	FamilyASTC
)

func (f CompressionFamily) String() string {
	switch f {
	case FamilyUncompressed:
		return "uncompressed"
	case FamilyBC:
		return "bc"
	case FamilyASTC:
		return "astc"
	}
	return "?"
}

func (f *CompressionFamily) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "uncompressed", "none":
		*f = FamilyUncompressed
	case "bc":
		*f = FamilyBC
	case "astc":
		*f = FamilyASTC
	default:
		return errors.Errorf("unknown compression family %q", s)
	}
	return nil
}

// Compression is the concrete codec chosen for one image.
type Compression uint32

const (
	CompressionUncompressed Compression = iota
	CompressionBC1
	CompressionBC3
	CompressionBC4
	CompressionBC5
	CompressionBC6H
	CompressionBC7
	CompressionASTC4x4
	CompressionASTC5x5
	CompressionASTC6x6
	CompressionASTC8x8
)

func (c Compression) String() string {
	switch c {
	case CompressionUncompressed:
		return "Uncompressed"
	case CompressionBC1:
		return "BC1"
	case CompressionBC3:
		return "BC3"
	case CompressionBC4:
		return "BC4"
	case CompressionBC5:
		return "BC5"
	case CompressionBC6H:
		return "BC6H"
	case CompressionBC7:
		return "BC7"
	case CompressionASTC4x4:
		return "ASTC4x4"
	case CompressionASTC5x5:
		return "ASTC5x5"
	case CompressionASTC6x6:
		return "ASTC6x6"
	case CompressionASTC8x8:
		return "ASTC8x8"
	}
	return "?"
}

// KTXFormat is the container-level pixel format handed to the KTX
// writer or an external block compressor.
type KTXFormat uint32

const (
	KTXFormatUndefined KTXFormat = iota
	KTXFormatRGBA8Unorm
	KTXFormatRGBA8Srgb
	KTXFormatBC1RGBUnorm
	KTXFormatBC1RGBSrgb
	KTXFormatBC1RGBAUnorm
	KTXFormatBC1RGBASrgb
	KTXFormatBC3Unorm
	KTXFormatBC3Srgb
	KTXFormatBC4Unorm
	KTXFormatBC5Unorm
	KTXFormatBC6HUfloat
	KTXFormatBC7Unorm
	KTXFormatBC7Srgb
	KTXFormatASTC4x4Unorm
	KTXFormatASTC4x4Srgb
	KTXFormatASTC5x5Unorm
	KTXFormatASTC5x5Srgb
	KTXFormatASTC6x6Unorm
	KTXFormatASTC6x6Srgb
	KTXFormatASTC8x8Unorm
	KTXFormatASTC8x8Srgb
)

// CompressionFormat resolves the codec/mode pair into the format the
// encoder writes. BC1 keeps its alpha variant only for RGBA modes;
// BC4/BC5/BC6H have no sRGB variant.
func CompressionFormat(c Compression, m Mode) (KTXFormat, error) {
	srgb := m.SRGB()

	pick := func(unorm, srgbFmt KTXFormat) KTXFormat {
		if srgb {
			return srgbFmt
		}
		return unorm
	}

	switch c {
	case CompressionUncompressed:
		return pick(KTXFormatRGBA8Unorm, KTXFormatRGBA8Srgb), nil
	case CompressionBC1:
		if m == ModeSRGBA || m == ModeRGBA {
			return pick(KTXFormatBC1RGBAUnorm, KTXFormatBC1RGBASrgb), nil
		}
		return pick(KTXFormatBC1RGBUnorm, KTXFormatBC1RGBSrgb), nil
	case CompressionBC3:
		return pick(KTXFormatBC3Unorm, KTXFormatBC3Srgb), nil
	case CompressionBC4:
		return KTXFormatBC4Unorm, nil
	case CompressionBC5:
		return KTXFormatBC5Unorm, nil
	case CompressionBC6H:
		return KTXFormatBC6HUfloat, nil
	case CompressionBC7:
		return pick(KTXFormatBC7Unorm, KTXFormatBC7Srgb), nil
	case CompressionASTC4x4:
		return pick(KTXFormatASTC4x4Unorm, KTXFormatASTC4x4Srgb), nil
	case CompressionASTC5x5:
		return pick(KTXFormatASTC5x5Unorm, KTXFormatASTC5x5Srgb), nil
	case CompressionASTC6x6:
		return pick(KTXFormatASTC6x6Unorm, KTXFormatASTC6x6Srgb), nil
	case CompressionASTC8x8:
		return pick(KTXFormatASTC8x8Unorm, KTXFormatASTC8x8Srgb), nil
	}
	return KTXFormatUndefined, errors.Errorf("unknown compression %d", c)
}

// Compressed reports whether the format is block-compressed and thus
// needs an external encoder.
func (f KTXFormat) Compressed() bool {
	switch f {
	case KTXFormatRGBA8Unorm, KTXFormatRGBA8Srgb:
		return false
	}
	return true
}

// GL internal format codes, as stored in the KTX header.
const (
	glRGBA8                 = 0x8058
	glSRGB8Alpha8           = 0x8C43
	glCompressedDXT1RGB     = 0x83F0
	glCompressedDXT1RGBA    = 0x83F1
	glCompressedDXT5RGBA    = 0x83F3
	glCompressedSrgbDXT1    = 0x8C4C
	glCompressedSrgbADXT1   = 0x8C4D
	glCompressedSrgbADXT5   = 0x8C4F
	glCompressedRedRGTC1    = 0x8DBB
	glCompressedRGRGTC2     = 0x8DBD
	glCompressedBPTCUnorm   = 0x8E8C
	glCompressedSrgbABPTC   = 0x8E8D
	glCompressedBPTCUfloat  = 0x8E8F
	glCompressedASTC4x4     = 0x93B0
	glCompressedASTC5x5     = 0x93B2
	glCompressedASTC6x6     = 0x93B4
	glCompressedASTC8x8     = 0x93B7
	glCompressedSrgbASTC4x4 = 0x93D0
	glCompressedSrgbASTC5x5 = 0x93D2
	glCompressedSrgbASTC6x6 = 0x93D4
	glCompressedSrgbASTC8x8 = 0x93D7
)

// GLInternalFormat returns the GL sized internal format code the KTX
// header records for this format.
func (f KTXFormat) GLInternalFormat() uint32 {
	switch f {
	case KTXFormatRGBA8Unorm:
		return glRGBA8
	case KTXFormatRGBA8Srgb:
		return glSRGB8Alpha8
	case KTXFormatBC1RGBUnorm:
		return glCompressedDXT1RGB
	case KTXFormatBC1RGBSrgb:
		return glCompressedSrgbDXT1
	case KTXFormatBC1RGBAUnorm:
		return glCompressedDXT1RGBA
	case KTXFormatBC1RGBASrgb:
		return glCompressedSrgbADXT1
	case KTXFormatBC3Unorm:
		return glCompressedDXT5RGBA
	case KTXFormatBC3Srgb:
		return glCompressedSrgbADXT5
	case KTXFormatBC4Unorm:
		return glCompressedRedRGTC1
	case KTXFormatBC5Unorm:
		return glCompressedRGRGTC2
	case KTXFormatBC6HUfloat:
		return glCompressedBPTCUfloat
	case KTXFormatBC7Unorm:
		return glCompressedBPTCUnorm
	case KTXFormatBC7Srgb:
		return glCompressedSrgbABPTC
	case KTXFormatASTC4x4Unorm:
		return glCompressedASTC4x4
	case KTXFormatASTC4x4Srgb:
		return glCompressedSrgbASTC4x4
	case KTXFormatASTC5x5Unorm:
		return glCompressedASTC5x5
	case KTXFormatASTC5x5Srgb:
		return glCompressedSrgbASTC5x5
	case KTXFormatASTC6x6Unorm:
		return glCompressedASTC6x6
	case KTXFormatASTC6x6Srgb:
		return glCompressedSrgbASTC6x6
	case KTXFormatASTC8x8Unorm:
		return glCompressedASTC8x8
	case KTXFormatASTC8x8Srgb:
		return glCompressedSrgbASTC8x8
	}
	return 0
}
