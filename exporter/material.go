package exporter

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Y-Gwork/Granite/scene"
	"github.com/Y-Gwork/Granite/texture"
)

// emittedMaterial is the canonical material record. Texture fields are
// indices into the texture cache, -1 when the slot is untextured.
type emittedMaterial struct {
	BaseColor         int
	Normal            int
	MetallicRoughness int
	Occlusion         int
	Emissive          int

	UniformBaseColor     mgl32.Vec4
	UniformEmissiveColor mgl32.Vec3
	UniformMetallic      float32
	UniformRoughness     float32
	LODBias              float32
	NormalScale          float32
	Pipeline             scene.DrawPipeline
	TwoSided             bool
}

func (s *remapState) emitMaterial(canonical uint32) error {
	material := s.material.items[canonical]
	for uint32(len(s.materialCache)) < canonical+1 {
		// Slots for never-referenced canonical materials keep the glTF
		// defaults so they serialize as empty materials.
		s.materialCache = append(s.materialCache, emittedMaterial{
			BaseColor: -1, Normal: -1, MetallicRoughness: -1, Occlusion: -1, Emissive: -1,
			UniformBaseColor: mgl32.Vec4{1, 1, 1, 1},
			UniformMetallic:  1, UniformRoughness: 1, NormalScale: 1,
		})
	}
	output := &s.materialCache[canonical]

	family := s.options.Compression
	quality := s.options.Quality

	if material.Normal.Path != "" {
		index, err := s.emitTexture(material.Normal, material.Sampler, scene.TextureNormal,
			family, quality, texture.ModeRGB)
		if err != nil {
			return err
		}
		output.Normal = int(index)
	}

	if material.Occlusion.Path != "" {
		index, err := s.emitTexture(material.Occlusion, material.Sampler, scene.TextureOcclusion,
			family, quality, texture.ModeRGB)
		if err != nil {
			return err
		}
		output.Occlusion = int(index)
	}

	if material.BaseColor.Path != "" {
		// Alpha-tested and blended surfaces need the alpha channel kept
		// through compression.
		mode := texture.ModeSRGB
		if material.Pipeline != scene.PipelineOpaque {
			mode = texture.ModeSRGBA
		}
		index, err := s.emitTexture(material.BaseColor, material.Sampler, scene.TextureBaseColor,
			family, quality, mode)
		if err != nil {
			return err
		}
		output.BaseColor = int(index)
	}

	if material.MetallicRoughness.Path != "" {
		index, err := s.emitTexture(material.MetallicRoughness, material.Sampler, scene.TextureMetallicRoughness,
			family, quality, texture.ModeRGB)
		if err != nil {
			return err
		}
		output.MetallicRoughness = int(index)
	}

	if material.Emissive.Path != "" {
		index, err := s.emitTexture(material.Emissive, material.Sampler, scene.TextureEmissive,
			family, quality, texture.ModeSRGB)
		if err != nil {
			return err
		}
		output.Emissive = int(index)
	}

	output.UniformBaseColor = material.UniformBaseColor
	output.UniformEmissiveColor = material.UniformEmissiveColor
	output.UniformMetallic = material.UniformMetallic
	output.UniformRoughness = material.UniformRoughness
	output.LODBias = material.LODBias
	output.NormalScale = material.NormalScale
	output.Pipeline = material.Pipeline
	output.TwoSided = material.TwoSided
	return nil
}
