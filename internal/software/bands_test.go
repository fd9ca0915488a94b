package software

import (
	"GopherBloom/internal/bloom"
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/alitto/pond/v2"
)

func TestForEachBandCoversEveryRow(t *testing.T) {
	pool := pond.NewPool(4)
	defer pool.StopAndWait()

	img := image.NewRGBA64(image.Rect(0, 0, 7, 200))
	forEachBand(pool, img, func(offset int, pix []uint8) {
		for i := range pix {
			pix[i]++
		}
	})
	for i, b := range img.Pix {
		if b != 1 {
			t.Fatalf("byte %d touched %d times", i, b)
		}
	}
}

func TestParallelKernelsMatchSequential(t *testing.T) {
	render := func(workers int) []uint8 {
		d := NewDeviceWithWorkers(workers)
		defer d.Close()

		src := NewTexture("src", 160, 160)
		src.Fill(color.RGBA64{R: 0xd000, G: 0x9000, B: 0x2000, A: 0xffff})
		dst := NewTexture("dst", 160, 160)
		dst.Fill(color.RGBA64{R: 0x1000, G: 0x1000, B: 0x1000, A: 0xffff})

		d.SetGlobalFloat(bloom.GlobalLuminanceThreshold, 0.3)
		if err := d.Blit(src, dst, bloom.NewMaterial(), bloom.PassThresholdDownsample); err != nil {
			t.Fatal(err)
		}
		if err := d.Blit(src, dst, bloom.NewMaterial(), bloom.PassComposite); err != nil {
			t.Fatal(err)
		}
		return append([]uint8(nil), dst.Image().Pix...)
	}

	if !bytes.Equal(render(1), render(8)) {
		t.Error("Expected identical output with and without workers")
	}
}
