package bloom

import "GopherBloom/internal/renderer"

// FrameData is the per-frame handoff between the mask pass and the compositor.
// The mask pass is its only writer and the compositor its only reader.
type FrameData struct {
	mask     renderer.RenderTarget
	frame    uint64
	produced bool
}

// Mask is the bloom mask target for the current frame.
func (f *FrameData) Mask() renderer.RenderTarget {
	return f.mask
}

// Ready reports whether the mask was cleared and drawn during frame.
func (f *FrameData) Ready(frame uint64) bool {
	return f.produced && f.frame == frame
}

func (f *FrameData) begin(mask renderer.RenderTarget, frame uint64) {
	f.mask = mask
	f.frame = frame
	f.produced = false
}

func (f *FrameData) markProduced(frame uint64) {
	if f.frame == frame && !f.mask.IsNone() {
		f.produced = true
	}
}

func (f *FrameData) reset() {
	f.mask = renderer.None
	f.produced = false
}
