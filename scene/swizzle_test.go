package scene

import "testing"

func TestIdentityMapping(t *testing.T) {
	if !IdentityMapping().IsIdentity() {
		t.Error("identity mapping does not report identity")
	}

	variants := []ComponentMapping{
		{SwizzleG, SwizzleG, SwizzleB, SwizzleA},
		{SwizzleR, SwizzleG, SwizzleB, SwizzleOne},
		{SwizzleZero, SwizzleZero, SwizzleZero, SwizzleZero},
	}
	for i, m := range variants {
		if m.IsIdentity() {
			t.Errorf("variant %d reports identity", i)
		}
	}
}

func TestSwizzleCodesMatchExtrasEncoding(t *testing.T) {
	// The enum values double as the integer codes written to
	// images[].extras.swizzle.
	codes := []struct {
		swizzle ComponentSwizzle
		code    int
	}{
		{SwizzleR, 0}, {SwizzleG, 1}, {SwizzleB, 2}, {SwizzleA, 3},
		{SwizzleOne, 4}, {SwizzleZero, 5},
	}
	for _, test := range codes {
		if int(test.swizzle) != test.code {
			t.Errorf("%s=%d; expected %d", test.swizzle, test.swizzle, test.code)
		}
	}
}
