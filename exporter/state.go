// Package exporter bakes an in-memory scene into a binary glTF 2.0
// container. A set of content-addressed caches turns the scene's
// possibly-redundant meshes, materials and textures into the flat
// index-referenced arrays glTF wants; texture analysis and encoding run
// on a worker pool; the document and binary blob are framed into a GLB
// file with compressed KTX siblings.
package exporter

import (
	"github.com/Y-Gwork/Granite/remap"
	"github.com/Y-Gwork/Granite/scene"
)

// inputRemap deduplicates one input slice by fingerprint. toIndex maps
// every source index onto the canonical index; items holds one pointer
// per canonical entry, in first-insertion order.
type inputRemap[T any] struct {
	toIndex []uint32
	items   []*T
	index   map[remap.Hash]uint32
}

func filterInput[T any](out *inputRemap[T], input []T, hash func(*T) remap.Hash) {
	out.toIndex = make([]uint32, 0, len(input))
	for i := range input {
		h := hash(&input[i])
		if idx, ok := out.index[h]; ok {
			out.toIndex = append(out.toIndex, idx)
			continue
		}
		if out.index == nil {
			out.index = make(map[remap.Hash]uint32)
		}
		idx := uint32(len(out.items))
		out.items = append(out.items, &input[i])
		out.index[h] = idx
		out.toIndex = append(out.toIndex, idx)
	}
}

// remapState carries every cache of one export. It is created empty per
// export call, mutated only on the assembler goroutine, and dies with
// the call.
type remapState struct {
	options *Options

	material inputRemap[scene.MaterialInfo]
	mesh     inputRemap[scene.Mesh]

	blob        []byte
	bufferViews remap.Table[bufferView]
	accessors   remap.Table[emittedAccessor]

	materialEmitted map[uint32]struct{}
	materialCache   []emittedMaterial
	meshEmitted     map[uint32]struct{}
	meshCache       []emittedMesh

	samplers remap.Table[emittedSampler]
	images   remap.Table[emittedImage]
	textures remap.Table[emittedTexture]

	meshGroups remap.Table[[]uint32]

	environments []emittedEnvironment
}

func newRemapState(options *Options) *remapState {
	return &remapState{
		options:         options,
		materialEmitted: make(map[uint32]struct{}),
		meshEmitted:     make(map[uint32]struct{}),
	}
}

// hashMesh fingerprints a mesh. Materials must be filtered first: the
// fingerprint covers the canonical material index, not the source one.
// The 0xFF separators keep the three raw streams from aliasing each
// other when their concatenation coincides.
func (s *remapState) hashMesh(m *scene.Mesh) remap.Hash {
	h := remap.NewHasher()

	h.U32(uint32(m.Topology))
	h.U32(uint32(m.IndexType))
	h.U32(m.AttributeStride)
	h.U32(m.PositionStride)
	h.Bool(m.HasMaterial)
	if m.HasMaterial {
		h.U32(s.material.toIndex[m.MaterialIndex])
	}
	for _, layout := range m.AttributeLayout {
		h.U32(uint32(layout.Format))
		h.U32(layout.Offset)
	}

	h.F32(m.StaticAABB.Min.X())
	h.F32(m.StaticAABB.Min.Y())
	h.F32(m.StaticAABB.Min.Z())
	h.F32(m.StaticAABB.Max.X())
	h.F32(m.StaticAABB.Max.Y())
	h.F32(m.StaticAABB.Max.Z())

	h.U32(0xff)
	h.Data(m.Positions)
	h.U32(0xff)
	h.Data(m.Indices)
	h.U32(0xff)
	h.Data(m.Attributes)

	h.U32(m.Count)
	return h.Sum()
}

func (s *remapState) hashMaterial(m *scene.MaterialInfo) remap.Hash {
	h := remap.NewHasher()

	h.Str(m.BaseColor.Path)
	h.Str(m.Normal.Path)
	h.Str(m.Occlusion.Path)
	h.Str(m.MetallicRoughness.Path)
	h.Str(m.Emissive.Path)

	h.F32(m.NormalScale)
	h.F32(m.UniformMetallic)
	h.F32(m.UniformRoughness)
	for i := 0; i < 4; i++ {
		h.F32(m.UniformBaseColor[i])
	}
	h.F32(m.LODBias)
	for i := 0; i < 3; i++ {
		h.F32(m.UniformEmissiveColor[i])
	}
	h.Bool(m.TwoSided)
	h.U32(uint32(m.Pipeline))

	return h.Sum()
}
