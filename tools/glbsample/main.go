// glbsample bakes a small built-in scene, exercising the whole export
// pipeline end to end: a red triangle, plus a textured quad when a
// source image is supplied.
package main

import (
	"encoding/binary"
	"math"

	"github.com/docopt/docopt-go"
	"github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"

	"github.com/Y-Gwork/Granite/exporter"
	"github.com/Y-Gwork/Granite/scene"
	"github.com/Y-Gwork/Granite/vfs"
)

const usage = `glbsample bakes a small procedural scene into a GLB file.

Usage:
  glbsample [--options=<yaml>] [--texture=<image>] <output>
  glbsample -h | --help

Options:
  --options=<yaml>   Export options file.
  --texture=<image>  Base color image for a textured quad.
  -h --help          Show this help.`

func floatBytes(values ...float32) []byte {
	out := make([]byte, 0, len(values)*4)
	for _, v := range values {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v))
	}
	return out
}

func indexBytes(values ...uint16) []byte {
	out := make([]byte, 0, len(values)*2)
	for _, v := range values {
		out = binary.LittleEndian.AppendUint16(out, v)
	}
	return out
}

func triangle(material uint32) scene.Mesh {
	mesh := scene.Mesh{
		Positions:      floatBytes(0, 0.5, 0, -0.5, -0.5, 0, 0.5, -0.5, 0),
		PositionStride: 12,
		Count:          3,
		StaticAABB: scene.AABB{
			Min: mgl32.Vec3{-0.5, -0.5, 0},
			Max: mgl32.Vec3{0.5, 0.5, 0},
		},
		HasMaterial:   true,
		MaterialIndex: material,
	}
	mesh.AttributeLayout[scene.AttributePosition] = scene.AttributeLayout{Format: scene.FormatR32G32B32Sfloat}
	return mesh
}

func quad(material uint32) scene.Mesh {
	mesh := scene.Mesh{
		Positions:       floatBytes(-1, -1, 0, 1, -1, 0, 1, 1, 0, -1, 1, 0),
		PositionStride:  12,
		Attributes:      floatBytes(0, 1, 1, 1, 1, 0, 0, 0),
		AttributeStride: 8,
		Indices:         indexBytes(0, 1, 2, 0, 2, 3),
		IndexType:       scene.IndexTypeUint16,
		Count:           6,
		StaticAABB: scene.AABB{
			Min: mgl32.Vec3{-1, -1, 0},
			Max: mgl32.Vec3{1, 1, 0},
		},
		HasMaterial:   true,
		MaterialIndex: material,
	}
	mesh.AttributeLayout[scene.AttributePosition] = scene.AttributeLayout{Format: scene.FormatR32G32B32Sfloat}
	mesh.AttributeLayout[scene.AttributeUV] = scene.AttributeLayout{Format: scene.FormatR32G32Sfloat}
	return mesh
}

func main() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		log.Fatal(err)
	}
	output, _ := opts.String("<output>")
	optionsPath, _ := opts.String("--options")
	texturePath, _ := opts.String("--texture")

	fsys := vfs.OS{}
	options := exporter.DefaultOptions()
	if optionsPath != "" {
		if options, err = exporter.LoadOptions(fsys, optionsPath); err != nil {
			log.Fatal(err)
		}
	}

	red := scene.NewMaterialInfo()
	red.UniformBaseColor = mgl32.Vec4{1, 0, 0, 1}

	info := &scene.SceneInformation{
		Materials: []scene.MaterialInfo{red},
		Meshes:    []scene.Mesh{triangle(0)},
		Nodes:     []scene.Node{{Meshes: []uint32{0}, Transform: scene.IdentityTransform()}},
	}

	if texturePath != "" {
		textured := scene.NewMaterialInfo()
		textured.BaseColor.Path = texturePath
		textured.Sampler = scene.SamplerTrilinearWrap
		info.Materials = append(info.Materials, textured)
		info.Meshes = append(info.Meshes, quad(1))

		node := scene.Node{Meshes: []uint32{1}, Transform: scene.IdentityTransform()}
		node.Transform.Translation = mgl32.Vec3{2, 0, 0}
		info.Nodes = append(info.Nodes, node)
	}

	if err := exporter.Export(info, output, options); err != nil {
		log.Fatalf("export failed: %v", err)
	}
	log.Infof("baked %s", output)
}
