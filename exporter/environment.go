package exporter

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Y-Gwork/Granite/scene"
	"github.com/Y-Gwork/Granite/texture"
)

// emittedEnvironment references the image-based lighting textures plus
// fog parameters. Environments are appended, never deduplicated.
type emittedEnvironment struct {
	Cube       int
	Reflection int
	Irradiance int
	Intensity  float32

	FogColor   mgl32.Vec3
	FogFalloff float32
}

func (s *remapState) emitEnvironment(env *EnvironmentOptions) error {
	out := emittedEnvironment{
		Cube:       -1,
		Reflection: -1,
		Irradiance: -1,
		Intensity:  env.Intensity,
		FogColor:   env.FogColor,
		FogFalloff: env.FogFalloff,
	}

	emit := func(path string) (int, error) {
		ref := scene.TextureRef{Path: path, Swizzle: scene.IdentityMapping()}
		index, err := s.emitTexture(ref, scene.SamplerLinearClamp, scene.TextureEmissive,
			env.Compression, env.Quality, texture.ModeHDR)
		if err != nil {
			return -1, err
		}
		return int(index), nil
	}

	var err error
	if env.Cube != "" {
		if out.Cube, err = emit(env.Cube); err != nil {
			return err
		}
	}
	if env.Reflection != "" {
		if out.Reflection, err = emit(env.Reflection); err != nil {
			return err
		}
	}
	if env.Irradiance != "" {
		if out.Irradiance, err = emit(env.Irradiance); err != nil {
			return err
		}
	}

	s.environments = append(s.environments, out)
	return nil
}
