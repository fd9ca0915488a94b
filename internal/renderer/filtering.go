package renderer

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderQueueRange is an inclusive range of render queue values.
type RenderQueueRange struct {
	Lower int
	Upper int
}

var (
	QueueOpaque      = RenderQueueRange{Lower: 0, Upper: 2500}
	QueueTransparent = RenderQueueRange{Lower: 2501, Upper: 5000}
	QueueAll         = RenderQueueRange{Lower: 0, Upper: 5000}
)

func (r RenderQueueRange) Contains(queue int) bool {
	return queue >= r.Lower && queue <= r.Upper
}

// LayerMask is a bitmask over the 32 scene layers.
type LayerMask uint32

const LayerEverything LayerMask = ^LayerMask(0)

func (m LayerMask) Contains(layer uint8) bool {
	if layer > 31 {
		return false
	}
	return m&(1<<layer) != 0
}

// LayerBit returns the mask with only layer set.
func LayerBit(layer uint8) LayerMask {
	if layer > 31 {
		return 0
	}
	return 1 << layer
}

// ShaderTagID names a shader pass that a renderable can be drawn with.
type ShaderTagID string

// SortingCriteria selects the draw order of filtered renderables.
type SortingCriteria int

const (
	SortNone SortingCriteria = iota
	// SortCommonOpaque draws front to back within each render queue.
	SortCommonOpaque
	// SortCommonTransparent draws back to front within each render queue.
	SortCommonTransparent
)

// Renderable is anything the host can hand to DrawRenderers.
type Renderable interface {
	Name() string
	Layer() uint8
	RenderQueue() int
	ShaderTags() []ShaderTagID
	WorldPosition() mgl32.Vec3
	BoundingSphere() (center mgl32.Vec3, radius float32)
}

// DrawingSettings selects which shader passes are drawn and in which order.
type DrawingSettings struct {
	ShaderTags     []ShaderTagID
	Sorting        SortingCriteria
	CameraPosition mgl32.Vec3
}

// FilteringSettings restricts the renderables that get drawn.
type FilteringSettings struct {
	QueueRange RenderQueueRange
	LayerMask  LayerMask
}

// NewFilteringSettings builds filtering settings for a queue range and layer mask.
func NewFilteringSettings(queue RenderQueueRange, mask LayerMask) FilteringSettings {
	return FilteringSettings{QueueRange: queue, LayerMask: mask}
}

// CullingResults is the set of renderables visible to a camera this frame.
type CullingResults struct {
	Visible []Renderable
}

// FilterRenderers returns the visible renderables matching drawing and filtering, in draw order.
func FilterRenderers(cull CullingResults, drawing DrawingSettings, filtering FilteringSettings) []Renderable {
	out := make([]Renderable, 0, len(cull.Visible))
	for _, r := range cull.Visible {
		if r == nil {
			continue
		}
		if !filtering.QueueRange.Contains(r.RenderQueue()) {
			continue
		}
		if !filtering.LayerMask.Contains(r.Layer()) {
			continue
		}
		if !hasAnyTag(r.ShaderTags(), drawing.ShaderTags) {
			continue
		}
		out = append(out, r)
	}

	cam := drawing.CameraPosition
	dist := func(r Renderable) float32 {
		return r.WorldPosition().Sub(cam).LenSqr()
	}

	switch drawing.Sorting {
	case SortCommonOpaque:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].RenderQueue() != out[j].RenderQueue() {
				return out[i].RenderQueue() < out[j].RenderQueue()
			}
			return dist(out[i]) < dist(out[j])
		})
	case SortCommonTransparent:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].RenderQueue() != out[j].RenderQueue() {
				return out[i].RenderQueue() < out[j].RenderQueue()
			}
			return dist(out[i]) > dist(out[j])
		})
	}
	return out
}

func hasAnyTag(have, want []ShaderTagID) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
