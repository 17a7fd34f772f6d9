package scene

import "github.com/go-gl/mathgl/mgl32"

type Topology uint32

const (
	TopologyTriangleList Topology = iota
	TopologyTriangleStrip
	TopologyLineList
	TopologyLineStrip
	TopologyPointList
)

type IndexType uint32

const (
	IndexTypeUint16 IndexType = iota
	IndexTypeUint32
)

// MeshAttribute enumerates the semantic vertex slots a mesh can carry.
type MeshAttribute uint32

const (
	AttributePosition MeshAttribute = iota
	AttributeNormal
	AttributeTangent
	AttributeUV
	AttributeVertexColor
	AttributeBoneIndex
	AttributeBoneWeights
	AttributeCount
)

// AttributeLayout locates one semantic slot inside the interleaved
// vertex stream. Format == FormatUndefined means the slot is absent.
type AttributeLayout struct {
	Format Format
	Offset uint32
}

type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Mesh is one submesh as it arrives from the scene. Positions live in
// their own interleaved stream; every other attribute shares the
// attributes stream.
type Mesh struct {
	Topology  Topology
	IndexType IndexType

	Positions       []byte
	PositionStride  uint32
	Attributes      []byte
	AttributeStride uint32
	AttributeLayout [AttributeCount]AttributeLayout

	Indices []byte
	// Count is the number of index elements, or vertices when the mesh
	// is not indexed.
	Count uint32

	StaticAABB AABB

	HasMaterial   bool
	MaterialIndex uint32
}
