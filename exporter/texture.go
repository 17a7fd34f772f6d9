package exporter

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/Y-Gwork/Granite/remap"
	"github.com/Y-Gwork/Granite/scene"
	"github.com/Y-Gwork/Granite/texture"
)

type emittedSampler struct {
	MagFilter uint32
	MinFilter uint32
	WrapS     uint32
	WrapT     uint32
}

type emittedImage struct {
	SourcePath    string
	TargetRelPath string
	MIME          string

	Family  texture.CompressionFamily
	Quality int
	Mode    texture.Mode
	Kind    scene.TextureKind
	Swizzle scene.ComponentMapping

	// Analysis is attached when the image job is scheduled and owned by
	// its worker until the analysis join.
	Analysis *texture.AnalysisResult
}

type emittedTexture struct {
	Image   uint32
	Sampler uint32
}

func samplerForPreset(preset scene.StockSampler) (emittedSampler, error) {
	switch preset {
	case scene.SamplerTrilinearWrap:
		return emittedSampler{glLinear, glLinearMipmapLinear, glRepeat, glRepeat}, nil
	case scene.SamplerTrilinearClamp:
		return emittedSampler{glLinear, glLinearMipmapLinear, glClampToEdge, glClampToEdge}, nil
	case scene.SamplerLinearWrap:
		return emittedSampler{glLinear, glLinearMipmapNearest, glRepeat, glRepeat}, nil
	case scene.SamplerLinearClamp:
		return emittedSampler{glLinear, glLinearMipmapNearest, glClampToEdge, glClampToEdge}, nil
	case scene.SamplerNearestWrap:
		return emittedSampler{glNearest, glNearestMipmapNearest, glRepeat, glRepeat}, nil
	case scene.SamplerNearestClamp:
		return emittedSampler{glNearest, glNearestMipmapNearest, glClampToEdge, glClampToEdge}, nil
	}
	return emittedSampler{}, errors.Errorf("unknown sampler preset %d", preset)
}

func (s *remapState) emitSampler(preset scene.StockSampler) (uint32, error) {
	sampler, err := samplerForPreset(preset)
	if err != nil {
		return 0, err
	}

	h := remap.NewHasher()
	h.U32(uint32(preset))
	return s.samplers.Intern(h.Sum(), func() emittedSampler {
		return sampler
	}), nil
}

// emitImage records a pending image job keyed by everything that
// affects the encoded output. The target file is named after the
// fingerprint so distinct bakes of one source file cannot collide.
func (s *remapState) emitImage(ref scene.TextureRef, kind scene.TextureKind,
	family texture.CompressionFamily, quality int, mode texture.Mode) uint32 {

	h := remap.NewHasher()
	h.Str(ref.Path)
	h.U32(uint32(kind))
	h.U32(uint32(family))
	h.U32(uint32(quality))
	h.S32(int32(mode))
	sum := h.Sum()

	return s.images.Intern(sum, func() emittedImage {
		return emittedImage{
			SourcePath:    ref.Path,
			TargetRelPath: strconv.FormatUint(sum, 10) + ".ktx",
			MIME:          "image/ktx",
			Family:        family,
			Quality:       quality,
			Mode:          mode,
			Kind:          kind,
			Swizzle:       ref.Swizzle,
		}
	})
}

func (s *remapState) emitTexture(ref scene.TextureRef, preset scene.StockSampler, kind scene.TextureKind,
	family texture.CompressionFamily, quality int, mode texture.Mode) (uint32, error) {

	imageIndex := s.emitImage(ref, kind, family, quality, mode)
	samplerIndex, err := s.emitSampler(preset)
	if err != nil {
		return 0, err
	}

	h := remap.NewHasher()
	h.U32(imageIndex)
	h.U32(samplerIndex)
	return s.textures.Intern(h.Sum(), func() emittedTexture {
		return emittedTexture{Image: imageIndex, Sampler: samplerIndex}
	}), nil
}
