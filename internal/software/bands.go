package software

import (
	"image"

	"github.com/alitto/pond/v2"
)

// minBandRows keeps tiny levels of the pyramid on the calling goroutine.
const minBandRows = 32

// forEachBand runs fn over horizontal bands of img, in parallel when workers is set.
// fn receives the byte offset of its first row and the Pix slice of its rows.
func forEachBand(workers pond.Pool, img *image.RGBA64, fn func(offset int, pix []uint8)) {
	h := img.Bounds().Dy()
	if workers == nil || h < 2*minBandRows {
		fn(0, img.Pix)
		return
	}

	bands := h / minBandRows
	if n := workers.MaxConcurrency(); bands > n {
		bands = n
	}
	rows := (h + bands - 1) / bands

	group := workers.NewGroup()
	for y := 0; y < h; y += rows {
		end := y + rows
		if end > h {
			end = h
		}
		offset := y * img.Stride
		pix := img.Pix[offset : end*img.Stride]
		group.Submit(func() { fn(offset, pix) })
	}
	group.Wait()
}
