package scene

// ComponentSwizzle selects the source of one destination channel. The
// numeric values match the encoding used by the glTF image
// extras.swizzle array.
type ComponentSwizzle uint8

const (
	SwizzleR ComponentSwizzle = iota
	SwizzleG
	SwizzleB
	SwizzleA
	SwizzleOne
	SwizzleZero
)

func (s ComponentSwizzle) String() string {
	switch s {
	case SwizzleR:
		return "R"
	case SwizzleG:
		return "G"
	case SwizzleB:
		return "B"
	case SwizzleA:
		return "A"
	case SwizzleOne:
		return "ONE"
	case SwizzleZero:
		return "ZERO"
	}
	return "?"
}

// ComponentMapping describes how destination RGBA is filled from source
// RGBA.
type ComponentMapping struct {
	R ComponentSwizzle
	G ComponentSwizzle
	B ComponentSwizzle
	A ComponentSwizzle
}

func IdentityMapping() ComponentMapping {
	return ComponentMapping{SwizzleR, SwizzleG, SwizzleB, SwizzleA}
}

func (m ComponentMapping) IsIdentity() bool {
	return m == IdentityMapping()
}
