package exporter

import (
	"github.com/Y-Gwork/Granite/remap"
	"github.com/Y-Gwork/Granite/scene"
)

// emittedMesh is one canonical mesh primitive. Material keeps the
// source material index; the document walk remaps it when serializing.
type emittedMesh struct {
	IndexAccessor     int
	Material          int
	AttributeMask     uint32
	AttributeAccessor [scene.AttributeCount]uint32
}

func (s *remapState) emitMesh(canonical uint32) error {
	mesh := s.mesh.items[canonical]
	for uint32(len(s.meshCache)) < canonical+1 {
		s.meshCache = append(s.meshCache, emittedMesh{IndexAccessor: -1, Material: -1})
	}
	emit := &s.meshCache[canonical]

	if mesh.HasMaterial {
		emit.Material = int(mesh.MaterialIndex)
	}

	if len(mesh.Indices) > 0 {
		indexStride := uint32(4)
		indexFormat := scene.FormatR32Uint
		if mesh.IndexType == scene.IndexTypeUint16 {
			indexStride = 2
			indexFormat = scene.FormatR16Uint
		}
		view := s.emitBuffer(mesh.Indices, indexStride)
		accessor, err := s.emitAccessor(view, indexFormat, 0, indexStride, mesh.Count)
		if err != nil {
			return err
		}
		emit.IndexAccessor = int(accessor)
	}

	if mesh.HasMaterial {
		remapped := s.material.toIndex[mesh.MaterialIndex]
		if _, done := s.materialEmitted[remapped]; !done {
			if err := s.emitMaterial(remapped); err != nil {
				return err
			}
			s.materialEmitted[remapped] = struct{}{}
		}
	}

	var positionView, attributeView uint32
	if len(mesh.Positions) > 0 {
		positionView = s.emitBuffer(mesh.Positions, mesh.PositionStride)
	}
	if len(mesh.Attributes) > 0 {
		attributeView = s.emitBuffer(mesh.Attributes, mesh.AttributeStride)
	}

	emit.AttributeMask = 0
	for i := scene.MeshAttribute(0); i < scene.AttributeCount; i++ {
		layout := mesh.AttributeLayout[i]
		if layout.Format == scene.FormatUndefined {
			continue
		}
		emit.AttributeMask |= 1 << i

		if i == scene.AttributePosition {
			count := uint32(0)
			if mesh.PositionStride != 0 {
				count = uint32(len(mesh.Positions)) / mesh.PositionStride
			}
			accessor, err := s.emitAccessor(positionView, layout.Format, layout.Offset, mesh.PositionStride, count)
			if err != nil {
				return err
			}
			emit.AttributeAccessor[i] = accessor

			// The position accessor advertises the mesh bounds; no
			// other accessor carries them.
			acc := s.accessors.At(accessor)
			acc.AABB = mesh.StaticAABB
			acc.UseAABB = true
		} else {
			count := uint32(0)
			if mesh.AttributeStride != 0 {
				count = uint32(len(mesh.Attributes)) / mesh.AttributeStride
			}
			accessor, err := s.emitAccessor(attributeView, layout.Format, layout.Offset, mesh.AttributeStride, count)
			if err != nil {
				return err
			}
			emit.AttributeAccessor[i] = accessor
		}
	}
	return nil
}

// emitMeshGroup interns the ordered list of canonical submeshes a node
// attaches; two nodes with the same list share one glTF mesh.
func (s *remapState) emitMeshGroup(meshes []uint32) (uint32, error) {
	h := remap.NewHasher()
	group := make([]uint32, 0, len(meshes))

	for _, source := range meshes {
		canonical := s.mesh.toIndex[source]
		h.U32(canonical)
		group = append(group, canonical)

		if _, done := s.meshEmitted[canonical]; !done {
			if err := s.emitMesh(canonical); err != nil {
				return 0, err
			}
			s.meshEmitted[canonical] = struct{}{}
		}
	}

	return s.meshGroups.Intern(h.Sum(), func() []uint32 {
		return group
	}), nil
}
