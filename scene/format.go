package scene

// Format is a Vulkan-style vertex component format. Only the formats a
// mesh attribute can legally carry are enumerated; everything else is
// FormatUndefined.
type Format uint32

const (
	FormatUndefined Format = iota

	FormatR8Unorm
	FormatR8Snorm
	FormatR8Uint
	FormatR8Sint
	FormatR8G8Unorm
	FormatR8G8Snorm
	FormatR8G8Uint
	FormatR8G8Sint
	FormatR8G8B8Unorm
	FormatR8G8B8Snorm
	FormatR8G8B8Uint
	FormatR8G8B8Sint
	FormatR8G8B8A8Unorm
	FormatR8G8B8A8Snorm
	FormatR8G8B8A8Uint
	FormatR8G8B8A8Sint

	FormatR16Unorm
	FormatR16Snorm
	FormatR16Uint
	FormatR16Sint
	FormatR16G16Unorm
	FormatR16G16Snorm
	FormatR16G16Uint
	FormatR16G16Sint
	FormatR16G16B16Unorm
	FormatR16G16B16Snorm
	FormatR16G16B16Uint
	FormatR16G16B16Sint
	FormatR16G16B16A16Unorm
	FormatR16G16B16A16Snorm
	FormatR16G16B16A16Uint
	FormatR16G16B16A16Sint

	FormatR32Sfloat
	FormatR32Uint
	FormatR32Sint
	FormatR32G32Sfloat
	FormatR32G32Uint
	FormatR32G32Sint
	FormatR32G32B32Sfloat
	FormatR32G32B32Uint
	FormatR32G32B32Sint
	FormatR32G32B32A32Sfloat
	FormatR32G32B32A32Uint
	FormatR32G32B32A32Sint
)
