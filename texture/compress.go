package texture

// CompressorArguments parameterize one external block-compression run.
type CompressorArguments struct {
	Output  string
	Format  KTXFormat
	Quality int
}

// Compressor encodes an analyzed RGBA8 image (with its mip chain) into
// a block-compressed KTX file. Implementations wrap the BC1-7/BC6H/ASTC
// encoder back-ends, which are outside this module.
type Compressor interface {
	Compress(args CompressorArguments, im *Image) error
}
