package exporter

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Y-Gwork/Granite/texture"
	"github.com/Y-Gwork/Granite/vfs"
)

// EnvironmentOptions describe the image-based environment baked into
// the document. The environment carries its own compression settings
// because HDR cubes usually want a different trade-off than material
// textures.
type EnvironmentOptions struct {
	Cube       string `yaml:"cube"`
	Reflection string `yaml:"reflection"`
	Irradiance string `yaml:"irradiance"`

	Intensity  float32    `yaml:"intensity"`
	FogColor   mgl32.Vec3 `yaml:"fog-color"`
	FogFalloff float32    `yaml:"fog-falloff"`

	Compression texture.CompressionFamily `yaml:"compression"`
	Quality     int                       `yaml:"quality"`
}

type Options struct {
	// Threads sizes the worker pool; 0 means hardware concurrency.
	Threads int `yaml:"threads"`

	Compression texture.CompressionFamily `yaml:"compression"`
	Quality     int                       `yaml:"quality"`

	Environment EnvironmentOptions `yaml:"environment"`
}

func DefaultOptions() *Options {
	return &Options{
		Compression: texture.FamilyBC,
		Quality:     3,
		Environment: EnvironmentOptions{
			Intensity:   1,
			Compression: texture.FamilyBC,
			Quality:     3,
		},
	}
}

// LoadOptions reads a YAML options file over the defaults.
func LoadOptions(fsys vfs.FS, path string) (*Options, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	options := DefaultOptions()
	if err := yaml.NewDecoder(f).Decode(options); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return options, nil
}
