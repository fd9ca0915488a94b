package bloom

import (
	"GopherBloom/internal/renderer"
	"testing"
)

type size struct{ w, h int32 }

func levelSizes(levels []Level) []size {
	out := make([]size, len(levels))
	for i, l := range levels {
		out[i] = size{l.Descriptor.Width, l.Descriptor.Height}
	}
	return out
}

func TestLayout1080pThreeSteps(t *testing.T) {
	p := Layout(1920, 1080, 3)

	wantDown := []size{{960, 540}, {480, 270}, {240, 135}}
	wantUp := []size{{480, 270}, {960, 540}}

	gotDown := levelSizes(p.Down)
	gotUp := levelSizes(p.Up)
	if len(gotDown) != len(wantDown) || len(gotUp) != len(wantUp) {
		t.Fatalf("Expected 3 down and 2 up levels, got %d and %d", len(gotDown), len(gotUp))
	}
	for i := range wantDown {
		if gotDown[i] != wantDown[i] {
			t.Errorf("Down[%d]: expected %v, got %v", i, wantDown[i], gotDown[i])
		}
	}
	for i := range wantUp {
		if gotUp[i] != wantUp[i] {
			t.Errorf("Up[%d]: expected %v, got %v", i, wantUp[i], gotUp[i])
		}
	}
}

func TestLayoutLevelCounts(t *testing.T) {
	for n := MinStepCount; n <= MaxStepCount; n++ {
		p := Layout(1920, 1080, n)
		if len(p.Down) != n {
			t.Errorf("n=%d: expected %d down levels, got %d", n, n, len(p.Down))
		}
		if len(p.Up) != n-1 {
			t.Errorf("n=%d: expected %d up levels, got %d", n, n-1, len(p.Up))
		}
		for i, l := range p.Down {
			w := renderer.ShiftDimension(1920, i+1)
			h := renderer.ShiftDimension(1080, i+1)
			if l.Descriptor.Width != w || l.Descriptor.Height != h {
				t.Errorf("n=%d Down[%d]: expected %dx%d, got %dx%d", n, i, w, h, l.Descriptor.Width, l.Descriptor.Height)
			}
		}
	}
}

func TestLayoutSingleStep(t *testing.T) {
	p := Layout(640, 480, 1)
	if len(p.Down) != 1 || len(p.Up) != 0 {
		t.Fatalf("Expected 1 down and 0 up levels, got %d and %d", len(p.Down), len(p.Up))
	}
	if p.Result().Name != "BloomDown0" {
		t.Errorf("Expected result BloomDown0, got %s", p.Result().Name)
	}
}

func TestLayoutClampsTinyTargets(t *testing.T) {
	p := Layout(16, 16, 14)
	for i, l := range p.Levels() {
		if !l.Descriptor.Valid() {
			t.Errorf("level %d (%s) has zero size: %v", i, l.Name, l.Descriptor)
		}
	}
	for i := 3; i < len(p.Down); i++ {
		d := p.Down[i].Descriptor
		if d.Width != 1 || d.Height != 1 {
			t.Errorf("Down[%d]: expected 1x1, got %dx%d", i, d.Width, d.Height)
		}
	}
}

func TestLayoutStripsDescriptor(t *testing.T) {
	base := renderer.TextureDescriptor{Width: 256, Height: 256, MipCount: 8, DepthBufferBits: 24, MSAASamples: 4}
	for _, l := range NewPyramid(base, 4).Levels() {
		d := l.Descriptor
		if d.MipCount != 0 || d.DepthBufferBits != 0 || d.MSAASamples != 1 {
			t.Errorf("%s: expected stripped descriptor, got %v", l.Name, d)
		}
	}
}

func TestLayoutUniqueStableNames(t *testing.T) {
	a := Layout(800, 600, 6)
	b := Layout(1024, 768, 6)
	seen := make(map[string]bool)
	for i, l := range a.Levels() {
		if seen[l.Name] {
			t.Errorf("duplicate level name %s", l.Name)
		}
		seen[l.Name] = true
		if b.Levels()[i].Name != l.Name {
			t.Errorf("level %d: names differ between frames: %s vs %s", i, l.Name, b.Levels()[i].Name)
		}
	}
}

func scheduleStrings(steps []Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.String()
	}
	return out
}

func TestScheduleThreeSteps(t *testing.T) {
	mask := renderer.TemporaryTarget(MaskTextureName)
	scene := renderer.TextureTarget(sceneTexture)

	got := scheduleStrings(Layout(1920, 1080, 3).Schedule(mask, scene))
	want := []string{
		"_BloomBlitTex -> BloomDown0 #3",
		"BloomDown0 -> BloomDown1 #0",
		"BloomDown1 -> BloomDown2 #0",
		"BloomDown1 + BloomDown2 -> BloomUp0 #1",
		"BloomDown0 + BloomUp0 -> BloomUp1 #1",
		"BloomUp1 -> scene #2",
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestScheduleSingleStepCompositesDirectly(t *testing.T) {
	mask := renderer.TemporaryTarget(MaskTextureName)
	scene := renderer.TextureTarget(sceneTexture)

	got := scheduleStrings(Layout(1920, 1080, 1).Schedule(mask, scene))
	want := []string{
		"_BloomBlitTex -> BloomDown0 #3",
		"BloomDown0 -> scene #2",
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestScheduleThresholdOnlyOnFirstLevel(t *testing.T) {
	mask := renderer.TemporaryTarget(MaskTextureName)
	for n := MinStepCount; n <= MaxStepCount; n++ {
		steps := Layout(512, 512, n).Schedule(mask, renderer.TextureTarget(sceneTexture))
		thresholds := 0
		for i, s := range steps {
			if s.Pass == PassThresholdDownsample {
				thresholds++
				if i != 0 || s.Source != mask {
					t.Errorf("n=%d: threshold pass at step %d reading %s", n, i, s.Source)
				}
			}
		}
		if thresholds != 1 {
			t.Errorf("n=%d: expected 1 threshold pass, got %d", n, thresholds)
		}
		if last := steps[len(steps)-1]; last.Pass != PassComposite {
			t.Errorf("n=%d: expected composite last, got pass %d", n, last.Pass)
		}
	}
}
