package texture

import (
	log "github.com/sirupsen/logrus"

	"github.com/pkg/errors"

	"github.com/Y-Gwork/Granite/scene"
)

// MetallicRoughnessMode classifies a metallic-roughness image by which
// of its two informative channels is constant.
type MetallicRoughnessMode uint32

const (
	MRRoughnessMetal MetallicRoughnessMode = iota
	MRRoughnessDielectric
	MRMetallicSmooth
	MRMetallicRough
	MRDefault
)

// AnalysisResult is the per-image state produced on the analysis pool
// and consumed by JSON emission and encode. Exactly one worker owns it
// between submission and the group join.
type AnalysisResult struct {
	SrcPath string
	Image   *Image

	Compression Compression
	Mode        Mode
	Kind        scene.TextureKind

	// Swizzle is the output swizzle a consumer applies to reconstruct
	// the original channel layout. Identity until planning moves
	// channels around.
	Swizzle scene.ComponentMapping

	// LoadErr is isolated to this image; PlanErr fails the export.
	LoadErr error
	PlanErr error
}

func NewAnalysis(kind scene.TextureKind, mode Mode) *AnalysisResult {
	return &AnalysisResult{
		Mode:    mode,
		Kind:    kind,
		Swizzle: scene.IdentityMapping(),
	}
}

// Run performs the load, initial swizzle and compression planning
// phases for one image.
func (r *AnalysisResult) Run(loader Loader, path string, initial scene.ComponentMapping, family CompressionFamily) {
	r.SrcPath = path

	img, err := loader.Load(path, r.Mode)
	if err != nil {
		r.LoadErr = err
		log.Errorf("failed to load image %s: %v", path, err)
		return
	}
	r.Image = img

	if err := img.Swizzle(initial); err != nil {
		r.PlanErr = err
		return
	}
	r.Swizzle = scene.IdentityMapping()

	if err := r.DeduceCompression(family); err != nil {
		r.PlanErr = err
	}
}

// swizzleImage rewrites pixels in place; the output swizzle is adjusted
// separately by the caller.
func (r *AnalysisResult) swizzleImage(m scene.ComponentMapping) error {
	return r.Image.Swizzle(m)
}

// MetallicRoughnessModeOf scans every pixel once and classifies the
// G (metallic) and B (roughness) channels by constancy. Images with
// more than one layer or face always classify as default.
func (r *AnalysisResult) MetallicRoughnessModeOf() MetallicRoughnessMode {
	if r.Image.Layers > 1 || r.Image.Faces > 1 {
		return MRDefault
	}

	pixels := r.Image.Levels[0].Slices[0]
	metallicZeroOnly := true
	metallicOneOnly := true
	roughnessZeroOnly := true
	roughnessOneOnly := true

	for i := 0; i < len(pixels); i += 4 {
		if pixels[i+2] != 0xff {
			roughnessOneOnly = false
		}
		if pixels[i+2] != 0 {
			roughnessZeroOnly = false
		}
		if pixels[i+1] != 0xff {
			metallicOneOnly = false
		}
		if pixels[i+1] != 0 {
			metallicZeroOnly = false
		}
	}

	switch {
	case !metallicZeroOnly && !metallicOneOnly && (roughnessOneOnly || roughnessZeroOnly):
		if roughnessOneOnly {
			return MRMetallicRough
		}
		return MRMetallicSmooth
	case !roughnessZeroOnly && !roughnessOneOnly && (metallicOneOnly || metallicZeroOnly):
		if metallicOneOnly {
			return MRRoughnessMetal
		}
		return MRRoughnessDielectric
	}
	return MRDefault
}

// DeduceCompression selects the concrete codec for the loaded image and
// rewrites channels so two-channel roles can ride single-channel or
// dual-endpoint block modes. It records the output swizzle consumers
// need to undo the packing.
func (r *AnalysisResult) DeduceCompression(family CompressionFamily) error {
	switch family {
	case FamilyASTC:
		switch r.Kind {
		case scene.TextureBaseColor, scene.TextureEmissive:
			r.Compression = CompressionASTC6x6

		case scene.TextureOcclusion:
			r.Compression = CompressionASTC6x6
			if err := r.swizzleImage(scene.ComponentMapping{R: scene.SwizzleR, G: scene.SwizzleR, B: scene.SwizzleR, A: scene.SwizzleR}); err != nil {
				return err
			}

		case scene.TextureNormal:
			r.Compression = CompressionASTC6x6
			if err := r.swizzleImage(scene.ComponentMapping{R: scene.SwizzleR, G: scene.SwizzleR, B: scene.SwizzleR, A: scene.SwizzleG}); err != nil {
				return err
			}
			r.Swizzle = scene.ComponentMapping{R: scene.SwizzleR, G: scene.SwizzleA, B: scene.SwizzleOne, A: scene.SwizzleOne}

		case scene.TextureMetallicRoughness:
			r.Compression = CompressionASTC6x6
			switch mode := r.MetallicRoughnessModeOf(); mode {
			case MRDefault:
				if err := r.swizzleImage(scene.ComponentMapping{R: scene.SwizzleG, G: scene.SwizzleG, B: scene.SwizzleG, A: scene.SwizzleB}); err != nil {
					return err
				}
				r.Swizzle = scene.ComponentMapping{R: scene.SwizzleZero, G: scene.SwizzleR, B: scene.SwizzleA, A: scene.SwizzleZero}

			case MRMetallicRough, MRMetallicSmooth:
				if err := r.swizzleImage(scene.ComponentMapping{R: scene.SwizzleB, G: scene.SwizzleB, B: scene.SwizzleB, A: scene.SwizzleB}); err != nil {
					return err
				}
				g := scene.SwizzleZero
				if mode == MRMetallicRough {
					g = scene.SwizzleOne
				}
				r.Swizzle = scene.ComponentMapping{R: scene.SwizzleZero, G: g, B: scene.SwizzleR, A: scene.SwizzleZero}

			case MRRoughnessMetal, MRRoughnessDielectric:
				if err := r.swizzleImage(scene.ComponentMapping{R: scene.SwizzleG, G: scene.SwizzleG, B: scene.SwizzleG, A: scene.SwizzleG}); err != nil {
					return err
				}
				b := scene.SwizzleZero
				if mode == MRRoughnessMetal {
					b = scene.SwizzleOne
				}
				r.Swizzle = scene.ComponentMapping{R: scene.SwizzleZero, G: scene.SwizzleR, B: b, A: scene.SwizzleZero}
			}

		default:
			return errors.Errorf("invalid material texture kind %s", r.Kind)
		}

	case FamilyBC:
		switch r.Kind {
		case scene.TextureBaseColor, scene.TextureEmissive:
			r.Compression = CompressionBC7

		case scene.TextureOcclusion:
			r.Compression = CompressionBC4

		case scene.TextureNormal:
			r.Compression = CompressionBC5

		case scene.TextureMetallicRoughness:
			switch mode := r.MetallicRoughnessModeOf(); mode {
			case MRDefault:
				r.Compression = CompressionBC5
				if err := r.swizzleImage(scene.ComponentMapping{R: scene.SwizzleG, G: scene.SwizzleB, B: scene.SwizzleB, A: scene.SwizzleA}); err != nil {
					return err
				}
				r.Swizzle = scene.ComponentMapping{R: scene.SwizzleZero, G: scene.SwizzleR, B: scene.SwizzleG, A: scene.SwizzleZero}

			case MRRoughnessMetal, MRRoughnessDielectric:
				r.Compression = CompressionBC4
				if err := r.swizzleImage(scene.ComponentMapping{R: scene.SwizzleG, G: scene.SwizzleG, B: scene.SwizzleG, A: scene.SwizzleG}); err != nil {
					return err
				}
				b := scene.SwizzleZero
				if mode == MRRoughnessMetal {
					b = scene.SwizzleOne
				}
				r.Swizzle = scene.ComponentMapping{R: scene.SwizzleZero, G: scene.SwizzleR, B: b, A: scene.SwizzleZero}

			case MRMetallicRough, MRMetallicSmooth:
				r.Compression = CompressionBC4
				if err := r.swizzleImage(scene.ComponentMapping{R: scene.SwizzleB, G: scene.SwizzleB, B: scene.SwizzleB, A: scene.SwizzleB}); err != nil {
					return err
				}
				g := scene.SwizzleZero
				if mode == MRMetallicRough {
					g = scene.SwizzleOne
				}
				r.Swizzle = scene.ComponentMapping{R: scene.SwizzleZero, G: g, B: scene.SwizzleR, A: scene.SwizzleZero}
			}

		default:
			return errors.Errorf("invalid material texture kind %s", r.Kind)
		}

		// HDR sources cannot ride the LDR BC codecs no matter the role.
		if r.Mode == ModeHDR {
			r.Compression = CompressionBC6H
		}

	case FamilyUncompressed:
		r.Compression = CompressionUncompressed

	default:
		return errors.Errorf("unknown compression family %d", family)
	}

	return nil
}
