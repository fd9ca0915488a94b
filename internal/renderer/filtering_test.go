package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const bloomTag ShaderTagID = "SingleBloom"

func names(list []Renderable) []string {
	out := make([]string, len(list))
	for i, r := range list {
		out[i] = r.Name()
	}
	return out
}

func sameNames(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterRenderersByQueueLayerAndTag(t *testing.T) {
	cull := CullingResults{Visible: []Renderable{
		&fakeRenderable{name: "glow", queue: 2000, tags: []ShaderTagID{bloomTag}},
		&fakeRenderable{name: "plain", queue: 2000, tags: []ShaderTagID{"Forward"}},
		&fakeRenderable{name: "glass", queue: 3000, tags: []ShaderTagID{bloomTag}},
		&fakeRenderable{name: "hidden", queue: 2000, layer: 5, tags: []ShaderTagID{bloomTag}},
		nil,
	}}
	drawing := DrawingSettings{ShaderTags: []ShaderTagID{bloomTag}}

	got := FilterRenderers(cull, drawing, NewFilteringSettings(QueueOpaque, LayerEverything&^LayerBit(5)))
	if !sameNames(names(got), "glow") {
		t.Errorf("Opaque filter drew %v", names(got))
	}

	got = FilterRenderers(cull, drawing, NewFilteringSettings(QueueTransparent, LayerEverything))
	if !sameNames(names(got), "glass") {
		t.Errorf("Transparent filter drew %v", names(got))
	}
}

func TestFilterRenderersNoMatchIsEmpty(t *testing.T) {
	cull := CullingResults{Visible: []Renderable{
		&fakeRenderable{name: "plain", queue: 2000, tags: []ShaderTagID{"Forward"}},
	}}
	got := FilterRenderers(cull, DrawingSettings{ShaderTags: []ShaderTagID{bloomTag}}, NewFilteringSettings(QueueAll, LayerEverything))
	if len(got) != 0 {
		t.Errorf("Expected nothing to draw, got %v", names(got))
	}
}

func TestFilterRenderersSorting(t *testing.T) {
	near := &fakeRenderable{name: "near", queue: 2000, tags: []ShaderTagID{bloomTag}, pos: mgl32.Vec3{0, 0, 1}}
	mid := &fakeRenderable{name: "mid", queue: 2000, tags: []ShaderTagID{bloomTag}, pos: mgl32.Vec3{0, 0, 5}}
	far := &fakeRenderable{name: "far", queue: 2000, tags: []ShaderTagID{bloomTag}, pos: mgl32.Vec3{0, 0, 20}}
	early := &fakeRenderable{name: "early", queue: 1000, tags: []ShaderTagID{bloomTag}, pos: mgl32.Vec3{0, 0, 50}}
	cull := CullingResults{Visible: []Renderable{mid, far, near, early}}
	filter := NewFilteringSettings(QueueAll, LayerEverything)

	opaque := FilterRenderers(cull, DrawingSettings{ShaderTags: []ShaderTagID{bloomTag}, Sorting: SortCommonOpaque}, filter)
	if !sameNames(names(opaque), "early", "near", "mid", "far") {
		t.Errorf("Opaque order %v", names(opaque))
	}

	transparent := FilterRenderers(cull, DrawingSettings{ShaderTags: []ShaderTagID{bloomTag}, Sorting: SortCommonTransparent}, filter)
	if !sameNames(names(transparent), "early", "far", "mid", "near") {
		t.Errorf("Transparent order %v", names(transparent))
	}
}

func TestLayerMask(t *testing.T) {
	if !LayerEverything.Contains(31) {
		t.Error("Everything should contain layer 31")
	}
	if LayerBit(3).Contains(2) {
		t.Error("Layer 3 mask should not contain layer 2")
	}
	if LayerBit(40) != 0 || LayerEverything.Contains(40) {
		t.Error("Layers above 31 should never match")
	}
}
