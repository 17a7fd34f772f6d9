package exporter

import (
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"

	"github.com/Y-Gwork/Granite/scene"
)

// accessorInfo is the static accessor typing derived from a vertex
// format: the glTF element type, the GL component-type code and the
// normalized flag.
type accessorInfo struct {
	Type       gltf.AccessorType
	Component  uint32
	Normalized bool
}

func accessorTypeOf(format scene.Format) (gltf.AccessorType, error) {
	switch format {
	case scene.FormatR32Sfloat,
		scene.FormatR8Unorm, scene.FormatR8Uint, scene.FormatR8Snorm, scene.FormatR8Sint,
		scene.FormatR16Unorm, scene.FormatR16Uint, scene.FormatR16Snorm, scene.FormatR16Sint,
		scene.FormatR32Uint, scene.FormatR32Sint:
		return gltf.AccessorScalar, nil

	case scene.FormatR32G32Sfloat,
		scene.FormatR8G8Unorm, scene.FormatR8G8Uint, scene.FormatR8G8Snorm, scene.FormatR8G8Sint,
		scene.FormatR16G16Unorm, scene.FormatR16G16Uint, scene.FormatR16G16Snorm, scene.FormatR16G16Sint,
		scene.FormatR32G32Uint, scene.FormatR32G32Sint:
		return gltf.AccessorVec2, nil

	case scene.FormatR32G32B32Sfloat,
		scene.FormatR8G8B8Unorm, scene.FormatR8G8B8Uint, scene.FormatR8G8B8Snorm, scene.FormatR8G8B8Sint,
		scene.FormatR16G16B16Unorm, scene.FormatR16G16B16Uint, scene.FormatR16G16B16Snorm, scene.FormatR16G16B16Sint,
		scene.FormatR32G32B32Uint, scene.FormatR32G32B32Sint:
		return gltf.AccessorVec3, nil

	case scene.FormatR32G32B32A32Sfloat,
		scene.FormatR8G8B8A8Unorm, scene.FormatR8G8B8A8Uint, scene.FormatR8G8B8A8Snorm, scene.FormatR8G8B8A8Sint,
		scene.FormatR16G16B16A16Unorm, scene.FormatR16G16B16A16Uint, scene.FormatR16G16B16A16Snorm, scene.FormatR16G16B16A16Sint,
		scene.FormatR32G32B32A32Uint, scene.FormatR32G32B32A32Sint:
		return gltf.AccessorVec4, nil
	}
	return 0, errors.Errorf("unsupported format %d", format)
}

func accessorNormalized(format scene.Format) bool {
	switch format {
	case scene.FormatR8Unorm, scene.FormatR8G8Unorm, scene.FormatR8G8B8Unorm, scene.FormatR8G8B8A8Unorm,
		scene.FormatR8Snorm, scene.FormatR8G8Snorm, scene.FormatR8G8B8Snorm, scene.FormatR8G8B8A8Snorm,
		scene.FormatR16Unorm, scene.FormatR16G16Unorm, scene.FormatR16G16B16Unorm, scene.FormatR16G16B16A16Unorm,
		scene.FormatR16Snorm, scene.FormatR16G16Snorm, scene.FormatR16G16B16Snorm, scene.FormatR16G16B16A16Snorm:
		return true
	}
	return false
}

func accessorComponentOf(format scene.Format) (uint32, error) {
	switch format {
	case scene.FormatR32Sfloat, scene.FormatR32G32Sfloat, scene.FormatR32G32B32Sfloat, scene.FormatR32G32B32A32Sfloat:
		return glFloat, nil

	case scene.FormatR8Unorm, scene.FormatR8G8Unorm, scene.FormatR8G8B8Unorm, scene.FormatR8G8B8A8Unorm,
		scene.FormatR8Uint, scene.FormatR8G8Uint, scene.FormatR8G8B8Uint, scene.FormatR8G8B8A8Uint:
		return glUnsignedByte, nil

	case scene.FormatR8Snorm, scene.FormatR8G8Snorm, scene.FormatR8G8B8Snorm, scene.FormatR8G8B8A8Snorm,
		scene.FormatR8Sint, scene.FormatR8G8Sint, scene.FormatR8G8B8Sint, scene.FormatR8G8B8A8Sint:
		return glByte, nil

	case scene.FormatR16Unorm, scene.FormatR16G16Unorm, scene.FormatR16G16B16Unorm, scene.FormatR16G16B16A16Unorm,
		scene.FormatR16Uint, scene.FormatR16G16Uint, scene.FormatR16G16B16Uint, scene.FormatR16G16B16A16Uint:
		return glUnsignedShort, nil

	case scene.FormatR16Snorm, scene.FormatR16G16Snorm, scene.FormatR16G16B16Snorm, scene.FormatR16G16B16A16Snorm,
		scene.FormatR16Sint, scene.FormatR16G16Sint, scene.FormatR16G16B16Sint, scene.FormatR16G16B16A16Sint:
		return glShort, nil

	case scene.FormatR32Uint, scene.FormatR32G32Uint, scene.FormatR32G32B32Uint, scene.FormatR32G32B32A32Uint:
		return glUnsignedInt, nil

	case scene.FormatR32Sint, scene.FormatR32G32Sint, scene.FormatR32G32B32Sint, scene.FormatR32G32B32A32Sint:
		return glInt, nil
	}
	return 0, errors.Errorf("unsupported format %d", format)
}

func accessorInfoOf(format scene.Format) (accessorInfo, error) {
	t, err := accessorTypeOf(format)
	if err != nil {
		return accessorInfo{}, err
	}
	c, err := accessorComponentOf(format)
	if err != nil {
		return accessorInfo{}, err
	}
	return accessorInfo{Type: t, Component: c, Normalized: accessorNormalized(format)}, nil
}

// componentTypeOf converts a GL component code into the document enum.
// Signed 32-bit integers have no glTF representation.
func componentTypeOf(component uint32) (gltf.ComponentType, error) {
	switch component {
	case glByte:
		return gltf.ComponentByte, nil
	case glUnsignedByte:
		return gltf.ComponentUbyte, nil
	case glShort:
		return gltf.ComponentShort, nil
	case glUnsignedShort:
		return gltf.ComponentUshort, nil
	case glUnsignedInt:
		return gltf.ComponentUint, nil
	case glFloat:
		return gltf.ComponentFloat, nil
	}
	return 0, errors.Errorf("component type 0x%04x is not representable in glTF", component)
}

func componentCount(t gltf.AccessorType) int {
	switch t {
	case gltf.AccessorScalar:
		return 1
	case gltf.AccessorVec2:
		return 2
	case gltf.AccessorVec3:
		return 3
	case gltf.AccessorVec4:
		return 4
	}
	return 0
}
