package exporter

import (
	"github.com/qmuntal/gltf"

	"github.com/Y-Gwork/Granite/remap"
	"github.com/Y-Gwork/Granite/scene"
)

// bufferView is a contiguous region of the shared binary blob. Offsets
// are aligned up to 16 bytes at insertion time.
type bufferView struct {
	Offset uint32
	Length uint32
	Stride uint32
}

type emittedAccessor struct {
	View       uint32
	Count      uint32
	Type       gltf.AccessorType
	Component  uint32
	Offset     uint32
	Normalized bool

	AABB    scene.AABB
	UseAABB bool
}

// emitBuffer appends the bytes to the blob at the next 16-byte boundary
// and returns the view index. Identical (bytes, stride) pairs share one
// view.
func (s *remapState) emitBuffer(data []byte, stride uint32) uint32 {
	h := remap.NewHasher()
	h.Data(data)
	h.U32(stride)

	return s.bufferViews.Intern(h.Sum(), func() bufferView {
		offset := (uint32(len(s.blob)) + 15) &^ 15
		for uint32(len(s.blob)) < offset {
			s.blob = append(s.blob, 0)
		}
		s.blob = append(s.blob, data...)
		return bufferView{Offset: offset, Length: uint32(len(data)), Stride: stride}
	})
}

// emitAccessor interns a typed view over a buffer view. Accessors
// deduplicate independently of views: two accessors over the same view
// with different offsets stay distinct.
func (s *remapState) emitAccessor(view uint32, format scene.Format, offset, stride, count uint32) (uint32, error) {
	info, err := accessorInfoOf(format)
	if err != nil {
		return 0, err
	}

	h := remap.NewHasher()
	h.U32(view)
	h.U32(uint32(format))
	h.U32(offset)
	h.U32(stride)
	h.U32(count)

	index := s.accessors.Intern(h.Sum(), func() emittedAccessor {
		return emittedAccessor{
			View:       view,
			Count:      count,
			Type:       info.Type,
			Component:  info.Component,
			Offset:     offset,
			Normalized: info.Normalized,
		}
	})
	return index, nil
}
