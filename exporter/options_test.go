package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Y-Gwork/Granite/texture"
	"github.com/Y-Gwork/Granite/vfs"
)

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bake.yaml")
	contents := `threads: 4
compression: astc
quality: 5
environment:
  cube: textures/sky.hdr
  intensity: 0.5
  fog-color: [0.1, 0.2, 0.3]
  fog-falloff: 2.5
  compression: bc
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	options, err := LoadOptions(vfs.OS{}, path)
	if err != nil {
		t.Fatal(err)
	}

	if options.Threads != 4 {
		t.Errorf("threads=%d; expected 4", options.Threads)
	}
	if options.Compression != texture.FamilyASTC {
		t.Errorf("compression=%v; expected astc", options.Compression)
	}
	if options.Quality != 5 {
		t.Errorf("quality=%d; expected 5", options.Quality)
	}

	env := options.Environment
	if env.Cube != "textures/sky.hdr" || env.Intensity != 0.5 {
		t.Errorf("environment %+v", env)
	}
	if env.FogColor[1] != 0.2 || env.FogFalloff != 2.5 {
		t.Errorf("fog %v %v", env.FogColor, env.FogFalloff)
	}
	if env.Compression != texture.FamilyBC {
		t.Errorf("environment compression=%v; expected bc", env.Compression)
	}
	// Unset fields keep their defaults.
	if env.Quality != 3 {
		t.Errorf("environment quality=%d; expected default 3", env.Quality)
	}
}

func TestLoadOptionsRejectsUnknownFamily(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bake.yaml")
	if err := os.WriteFile(path, []byte("compression: pvrtc\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOptions(vfs.OS{}, path); err == nil {
		t.Error("unknown compression family did not fail")
	}
}
