package scene

import "github.com/go-gl/mathgl/mgl32"

type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Node is one scene-graph node. Meshes is a list of indices into
// SceneInformation.Meshes; all of them attach to this node as one glTF
// mesh group.
type Node struct {
	Children  []uint32
	Meshes    []uint32
	Transform Transform
}

type CameraType uint32

const (
	CameraPerspective CameraType = iota
	CameraOrthographic
)

type CameraInfo struct {
	Type CameraType

	AspectRatio float32
	YFov        float32
	ZNear       float32
	ZFar        float32
	XMag        float32
	YMag        float32

	AttachedToNode bool
	NodeIndex      uint32
}

type LightType uint32

const (
	LightSpot LightType = iota
	LightPoint
	LightDirectional
	LightAmbient
)

type LightInfo struct {
	Type  LightType
	Color mgl32.Vec3

	ConstantFalloff  float32
	LinearFalloff    float32
	QuadraticFalloff float32

	// Cosines of the spot cone angles.
	InnerCone float32
	OuterCone float32

	AttachedToNode bool
	NodeIndex      uint32
}

// SceneInformation is the in-memory scene handed to the exporter.
// Meshes reference materials by index; nodes reference meshes by index.
type SceneInformation struct {
	Materials []MaterialInfo
	Meshes    []Mesh
	Nodes     []Node
	Cameras   []CameraInfo
	Lights    []LightInfo
}
