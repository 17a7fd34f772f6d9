package scene

import "github.com/go-gl/mathgl/mgl32"

// TextureKind is the material role of a texture; it drives color space,
// compression and swizzle policy during baking.
type TextureKind uint32

const (
	TextureBaseColor TextureKind = iota
	TextureNormal
	TextureMetallicRoughness
	TextureOcclusion
	TextureEmissive
	TextureKindCount
)

func (k TextureKind) String() string {
	switch k {
	case TextureBaseColor:
		return "BaseColor"
	case TextureNormal:
		return "Normal"
	case TextureMetallicRoughness:
		return "MetallicRoughness"
	case TextureOcclusion:
		return "Occlusion"
	case TextureEmissive:
		return "Emissive"
	}
	return "?"
}

type DrawPipeline uint32

const (
	PipelineOpaque DrawPipeline = iota
	PipelineAlphaTest
	PipelineAlphaBlend
)

// StockSampler is one of the fixed sampler presets a material can pick.
type StockSampler uint32

const (
	SamplerTrilinearWrap StockSampler = iota
	SamplerTrilinearClamp
	SamplerLinearWrap
	SamplerLinearClamp
	SamplerNearestWrap
	SamplerNearestClamp
)

// TextureRef points a material slot at a source image on disk.
type TextureRef struct {
	Path    string
	Swizzle ComponentMapping
}

type MaterialInfo struct {
	BaseColor         TextureRef
	Normal            TextureRef
	MetallicRoughness TextureRef
	Occlusion         TextureRef
	Emissive          TextureRef

	Sampler StockSampler

	UniformBaseColor     mgl32.Vec4
	UniformEmissiveColor mgl32.Vec3
	UniformMetallic      float32
	UniformRoughness     float32
	NormalScale          float32
	LODBias              float32

	Pipeline DrawPipeline
	TwoSided bool
}

// NewMaterialInfo returns a material with glTF defaults: white base
// color, fully metallic and rough, identity swizzles.
func NewMaterialInfo() MaterialInfo {
	return MaterialInfo{
		BaseColor:         TextureRef{Swizzle: IdentityMapping()},
		Normal:            TextureRef{Swizzle: IdentityMapping()},
		MetallicRoughness: TextureRef{Swizzle: IdentityMapping()},
		Occlusion:         TextureRef{Swizzle: IdentityMapping()},
		Emissive:          TextureRef{Swizzle: IdentityMapping()},
		UniformBaseColor:  mgl32.Vec4{1, 1, 1, 1},
		UniformMetallic:   1,
		UniformRoughness:  1,
		NormalScale:       1,
	}
}
