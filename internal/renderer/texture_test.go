package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestShiftDimension(t *testing.T) {
	tests := []struct {
		v     int32
		shift int
		want  int32
	}{
		{1920, 1, 960},
		{1080, 3, 135},
		{16, 4, 1},
		{16, 14, 1},
		{1, 1, 1},
		{0, 0, 1},
		{7, 40, 1},
	}
	for _, tt := range tests {
		if got := ShiftDimension(tt.v, tt.shift); got != tt.want {
			t.Errorf("ShiftDimension(%d, %d) = %d, want %d", tt.v, tt.shift, got, tt.want)
		}
	}
}

func TestStripForPostProcess(t *testing.T) {
	desc := TextureDescriptor{Width: 64, Height: 32, Format: FormatRGBA16F, MipCount: 7, DepthBufferBits: 24, MSAASamples: 4}
	got := desc.StripForPostProcess()

	if got.MipCount != 0 || got.DepthBufferBits != 0 || got.MSAASamples != 1 {
		t.Errorf("Expected mips/depth/msaa stripped, got %s", got)
	}
	if got.Width != 64 || got.Height != 32 || got.Format != FormatRGBA16F {
		t.Errorf("Size and format should be kept, got %s", got)
	}
}

func TestScaledNeverZero(t *testing.T) {
	desc := TextureDescriptor{Width: 3, Height: 900}
	got := desc.Scaled(5)
	if got.Width != 1 || got.Height != 28 {
		t.Errorf("Expected 1x28, got %dx%d", got.Width, got.Height)
	}
	if !got.Valid() {
		t.Error("Scaled descriptor should always be valid")
	}
}

func TestTextureFormatString(t *testing.T) {
	if FormatRGBA8.String() != "RGBA8" {
		t.Errorf("Unexpected %q", FormatRGBA8.String())
	}
	if TextureFormat(42).String() != "Unknown(42)" {
		t.Errorf("Unexpected %q", TextureFormat(42).String())
	}
	if FormatRGBA16F.BytesPerPixel() != 8 {
		t.Error("RGBA16F should be 8 bytes per pixel")
	}
}

func TestLuminance(t *testing.T) {
	if l := Luminance(mgl32.Vec3{1, 1, 1}); l < 0.9999 || l > 1.0001 {
		t.Errorf("White should have luminance 1, got %f", l)
	}
	if Luminance(mgl32.Vec3{}) != 0 {
		t.Error("Black should have luminance 0")
	}
}
