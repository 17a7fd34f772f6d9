package exporter

// GL enum codes recorded in the document, bit-exact per the glTF 2.0
// spec.
const (
	glByte          = 0x1400
	glUnsignedByte  = 0x1401
	glShort         = 0x1402
	glUnsignedShort = 0x1403
	glInt           = 0x1404
	glUnsignedInt   = 0x1405
	glFloat         = 0x1406

	glNearest              = 0x2600
	glLinear               = 0x2601
	glNearestMipmapNearest = 0x2700
	glLinearMipmapNearest  = 0x2701
	glNearestMipmapLinear  = 0x2702
	glLinearMipmapLinear   = 0x2703

	glRepeat      = 0x2901
	glClampToEdge = 0x812F
)
