package texture

import (
	"testing"

	"github.com/Y-Gwork/Granite/scene"
)

func newTestImage(width, height int, pixel func(x, y int) [4]byte) *Image {
	im := NewImage(width, height, false)
	data := im.Levels[0].Slices[0]
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := pixel(x, y)
			copy(data[(y*width+x)*4:], p[:])
		}
	}
	return im
}

func constantImage(width, height int, p [4]byte) *Image {
	return newTestImage(width, height, func(x, y int) [4]byte { return p })
}

var metallicRoughnessModeTests = []struct {
	name  string
	pixel func(x, y int) [4]byte
	out   MetallicRoughnessMode
}{
	{"g varies, b all 255", func(x, y int) [4]byte { return [4]byte{0, byte(x * 100), 0xff, 0} }, MRMetallicRough},
	{"g varies, b all 0", func(x, y int) [4]byte { return [4]byte{0, byte(x * 100), 0, 0} }, MRMetallicSmooth},
	{"b varies, g all 255", func(x, y int) [4]byte { return [4]byte{0, 0xff, byte(y * 100), 0} }, MRRoughnessMetal},
	{"b varies, g all 0", func(x, y int) [4]byte { return [4]byte{0, 0, byte(y * 100), 0} }, MRRoughnessDielectric},
	{"both vary", func(x, y int) [4]byte { return [4]byte{0, byte(x * 100), byte(y * 100), 0} }, MRDefault},
	{"both constant mid-gray", func(x, y int) [4]byte { return [4]byte{0, 128, 128, 0} }, MRDefault},
}

func TestMetallicRoughnessMode(t *testing.T) {
	for _, test := range metallicRoughnessModeTests {
		r := NewAnalysis(scene.TextureMetallicRoughness, ModeRGB)
		r.Image = newTestImage(2, 2, test.pixel)
		if mode := r.MetallicRoughnessModeOf(); mode != test.out {
			t.Errorf("%s: mode=%d; expected %d", test.name, mode, test.out)
		}
	}
}

func TestMetallicRoughnessModeMultiFaceIsDefault(t *testing.T) {
	r := NewAnalysis(scene.TextureMetallicRoughness, ModeRGB)
	r.Image = constantImage(2, 2, [4]byte{0, 100, 0xff, 0})
	r.Image.Faces = 6
	if mode := r.MetallicRoughnessModeOf(); mode != MRDefault {
		t.Errorf("mode=%d for cube image; expected default", mode)
	}
}

var bcCompressionTests = []struct {
	kind scene.TextureKind
	out  Compression
}{
	{scene.TextureBaseColor, CompressionBC7},
	{scene.TextureEmissive, CompressionBC7},
	{scene.TextureOcclusion, CompressionBC4},
	{scene.TextureNormal, CompressionBC5},
}

func TestDeduceCompressionBC(t *testing.T) {
	for _, test := range bcCompressionTests {
		r := NewAnalysis(test.kind, ModeRGB)
		r.Image = constantImage(2, 2, [4]byte{10, 20, 30, 40})
		if err := r.DeduceCompression(FamilyBC); err != nil {
			t.Errorf("kind %s: %v", test.kind, err)
			continue
		}
		if r.Compression != test.out {
			t.Errorf("kind %s: compression=%s; expected %s", test.kind, r.Compression, test.out)
		}
	}
}

func TestDeduceCompressionASTCIsUniform(t *testing.T) {
	kinds := []scene.TextureKind{
		scene.TextureBaseColor, scene.TextureEmissive, scene.TextureOcclusion,
		scene.TextureNormal, scene.TextureMetallicRoughness,
	}
	for _, kind := range kinds {
		r := NewAnalysis(kind, ModeRGB)
		r.Image = constantImage(2, 2, [4]byte{10, 20, 30, 40})
		if err := r.DeduceCompression(FamilyASTC); err != nil {
			t.Errorf("kind %s: %v", kind, err)
			continue
		}
		if r.Compression != CompressionASTC6x6 {
			t.Errorf("kind %s: compression=%s; expected ASTC6x6", kind, r.Compression)
		}
	}
}

func TestDeduceCompressionHDROverridesRole(t *testing.T) {
	for _, kind := range []scene.TextureKind{scene.TextureBaseColor, scene.TextureNormal, scene.TextureOcclusion} {
		r := NewAnalysis(kind, ModeHDR)
		r.Image = constantImage(2, 2, [4]byte{1, 2, 3, 4})
		if err := r.DeduceCompression(FamilyBC); err != nil {
			t.Fatalf("kind %s: %v", kind, err)
		}
		if r.Compression != CompressionBC6H {
			t.Errorf("kind %s: compression=%s; expected BC6H", kind, r.Compression)
		}
		if !r.Swizzle.IsIdentity() {
			t.Errorf("kind %s: HDR image got output swizzle %v", kind, r.Swizzle)
		}
	}
}

func TestDeduceCompressionUncompressed(t *testing.T) {
	r := NewAnalysis(scene.TextureBaseColor, ModeSRGB)
	r.Image = constantImage(2, 2, [4]byte{1, 2, 3, 4})
	if err := r.DeduceCompression(FamilyUncompressed); err != nil {
		t.Fatal(err)
	}
	if r.Compression != CompressionUncompressed {
		t.Errorf("compression=%s; expected Uncompressed", r.Compression)
	}
}

func TestDeduceCompressionInvalidKind(t *testing.T) {
	r := NewAnalysis(scene.TextureKindCount, ModeRGB)
	r.Image = constantImage(2, 2, [4]byte{})
	if err := r.DeduceCompression(FamilyBC); err == nil {
		t.Error("invalid texture kind did not fail planning")
	}
}

// The all-white-roughness scenario: metallic varies, roughness is
// constant 255, so the planner picks BC4, replicates the B channel into
// every channel and the output swizzle records roughness as constant ONE.
func TestMetallicRoughPlanBC(t *testing.T) {
	r := NewAnalysis(scene.TextureMetallicRoughness, ModeRGB)
	r.Image = newTestImage(2, 2, func(x, y int) [4]byte {
		return [4]byte{0, byte(80 * (x + y)), 0xff, 0}
	})

	if err := r.DeduceCompression(FamilyBC); err != nil {
		t.Fatal(err)
	}
	if r.Compression != CompressionBC4 {
		t.Errorf("compression=%s; expected BC4", r.Compression)
	}

	expected := scene.ComponentMapping{R: scene.SwizzleZero, G: scene.SwizzleOne, B: scene.SwizzleR, A: scene.SwizzleZero}
	if r.Swizzle != expected {
		t.Errorf("output swizzle=%v; expected %v", r.Swizzle, expected)
	}

	// Image swizzle (B,B,B,B) replicated the roughness constant.
	data := r.Image.Levels[0].Slices[0]
	for i := 0; i < len(data); i += 4 {
		for c := 0; c < 4; c++ {
			if data[i+c] != 0xff {
				t.Fatalf("pixel %d channel %d = %d; expected replicated 0xff", i/4, c, data[i+c])
			}
		}
	}
}

func TestMetallicRoughnessDefaultPlanBC(t *testing.T) {
	r := NewAnalysis(scene.TextureMetallicRoughness, ModeRGB)
	src := func(x, y int) [4]byte {
		return [4]byte{7, byte(10 + x), byte(200 - y), 9}
	}
	r.Image = newTestImage(2, 2, src)

	if err := r.DeduceCompression(FamilyBC); err != nil {
		t.Fatal(err)
	}
	if r.Compression != CompressionBC5 {
		t.Errorf("compression=%s; expected BC5", r.Compression)
	}

	// Round trip: stored pixels plus the output swizzle must rebuild
	// the glTF metallic-roughness layout (G=metallic moved, B=roughness
	// moved, R and A zeroed).
	data := r.Image.Levels[0].Slices[0]
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			original := src(x, y)
			stored := data[(y*2+x)*4:]
			rebuilt := applyMapping(r.Swizzle, stored)
			expected := [4]byte{0, original[1], original[2], 0}
			if rebuilt != expected {
				t.Fatalf("pixel (%d,%d): rebuilt %v; expected %v", x, y, rebuilt, expected)
			}
		}
	}
}

func applyMapping(m scene.ComponentMapping, src []byte) [4]byte {
	pick := func(s scene.ComponentSwizzle) byte {
		switch s {
		case scene.SwizzleOne:
			return 0xff
		case scene.SwizzleZero:
			return 0
		default:
			return src[s]
		}
	}
	return [4]byte{pick(m.R), pick(m.G), pick(m.B), pick(m.A)}
}

func TestNormalPlanASTCPacksToLuminanceAlpha(t *testing.T) {
	r := NewAnalysis(scene.TextureNormal, ModeRGB)
	r.Image = newTestImage(1, 1, func(x, y int) [4]byte { return [4]byte{100, 200, 50, 25} })

	if err := r.DeduceCompression(FamilyASTC); err != nil {
		t.Fatal(err)
	}

	data := r.Image.Levels[0].Slices[0]
	if data[0] != 100 || data[1] != 100 || data[2] != 100 || data[3] != 200 {
		t.Errorf("stored pixel %v; expected (R,R,R,G)", data[:4])
	}
	expected := scene.ComponentMapping{R: scene.SwizzleR, G: scene.SwizzleA, B: scene.SwizzleOne, A: scene.SwizzleOne}
	if r.Swizzle != expected {
		t.Errorf("output swizzle=%v; expected %v", r.Swizzle, expected)
	}
}

func TestImageSwizzleRejectsConstantSources(t *testing.T) {
	im := constantImage(1, 1, [4]byte{1, 2, 3, 4})
	err := im.Swizzle(scene.ComponentMapping{R: scene.SwizzleOne, G: scene.SwizzleG, B: scene.SwizzleB, A: scene.SwizzleA})
	if err == nil {
		t.Error("swizzling from ONE did not fail")
	}
}

func TestImageSwizzleAppliesToAllLevels(t *testing.T) {
	im := constantImage(2, 2, [4]byte{1, 2, 3, 4})
	if err := GenerateMipmaps(im); err != nil {
		t.Fatal(err)
	}
	if err := im.Swizzle(scene.ComponentMapping{R: scene.SwizzleB, G: scene.SwizzleG, B: scene.SwizzleR, A: scene.SwizzleA}); err != nil {
		t.Fatal(err)
	}
	for level := range im.Levels {
		data := im.Levels[level].Slices[0]
		if data[0] != 3 || data[2] != 1 {
			t.Errorf("level %d pixel %v; expected swapped R/B", level, data[:4])
		}
	}
}
