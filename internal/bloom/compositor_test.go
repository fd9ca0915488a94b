package bloom

import (
	"GopherBloom/internal/renderer"
	"strings"
	"testing"
)

func TestRecordBalancesRequestsAndReleases(t *testing.T) {
	mask := renderer.TemporaryTarget(MaskTextureName)
	scene := renderer.TextureTarget(sceneTexture)

	for n := MinStepCount; n <= MaxStepCount; n++ {
		s := DefaultSettings()
		s.StepCount = n
		c := NewCompositor(NewMaterial(), &FrameData{})
		c.Configure(s)

		cmd := renderer.NewCommandBuffer("test")
		c.Record(cmd, mask, scene, renderer.TextureDescriptor{Width: 1920, Height: 1080, MSAASamples: 1})

		requested := make(map[string]int)
		released := make(map[string]int)
		lastBlit, firstRelease := -1, -1
		for i, command := range cmd.Commands() {
			switch v := command.(type) {
			case renderer.GetTemporaryCmd:
				requested[v.Name]++
				if !v.Descriptor.Valid() {
					t.Errorf("n=%d: zero-size request for %s", n, v.Name)
				}
				if v.Filter != renderer.FilterBilinear {
					t.Errorf("n=%d: %s requested with %s filtering", n, v.Name, v.Filter)
				}
			case renderer.ReleaseTemporaryCmd:
				released[v.Name]++
				if firstRelease < 0 {
					firstRelease = i
				}
			case renderer.BlitCmd:
				lastBlit = i
			}
		}

		if want := n + n - 1; len(requested) != want {
			t.Errorf("n=%d: expected %d requested levels, got %d", n, want, len(requested))
		}
		for name, count := range requested {
			if count != 1 || released[name] != 1 {
				t.Errorf("n=%d: %s requested %d times, released %d times", n, name, count, released[name])
			}
		}
		if len(released) != len(requested) {
			t.Errorf("n=%d: released %d names, requested %d", n, len(released), len(requested))
		}
		if firstRelease < lastBlit {
			t.Errorf("n=%d: release at %d before last blit at %d", n, firstRelease, lastBlit)
		}
	}
}

func TestRecordTinyTargetNeverRequestsZeroSize(t *testing.T) {
	s := DefaultSettings()
	s.StepCount = 14
	c := NewCompositor(NewMaterial(), &FrameData{})
	c.Configure(s)

	cmd := renderer.NewCommandBuffer("test")
	c.Record(cmd, renderer.TemporaryTarget(MaskTextureName), renderer.TextureTarget(sceneTexture),
		renderer.TextureDescriptor{Width: 16, Height: 16})

	requests := 0
	for _, command := range cmd.Commands() {
		if v, ok := command.(renderer.GetTemporaryCmd); ok {
			requests++
			if v.Descriptor.Width < 1 || v.Descriptor.Height < 1 {
				t.Errorf("%s requested at %dx%d", v.Name, v.Descriptor.Width, v.Descriptor.Height)
			}
		}
	}
	if requests != 27 {
		t.Errorf("Expected 27 requests, got %d", requests)
	}
}

func TestRecordSetsThresholdBeforeFirstBlit(t *testing.T) {
	s := DefaultSettings()
	s.LuminanceThreshold = 0.25
	c := NewCompositor(NewMaterial(), &FrameData{})
	c.Configure(s)

	cmd := renderer.NewCommandBuffer("test")
	c.Record(cmd, renderer.TemporaryTarget(MaskTextureName), renderer.TextureTarget(sceneTexture),
		renderer.TextureDescriptor{Width: 128, Height: 128})

	for _, command := range cmd.Commands() {
		switch v := command.(type) {
		case renderer.SetGlobalFloatCmd:
			if v.Name != GlobalLuminanceThreshold || v.Value != 0.25 {
				t.Errorf("Expected %s=0.25, got %s=%g", GlobalLuminanceThreshold, v.Name, v.Value)
			}
			return
		case renderer.BlitCmd:
			t.Fatal("blit recorded before the threshold was set")
		}
	}
	t.Fatal("threshold never set")
}

func TestCompositorSkipsWithoutMask(t *testing.T) {
	device := &recDevice{}
	ctx := renderer.NewContext(device)
	c := NewCompositor(NewMaterial(), &FrameData{})

	data := &renderer.RenderingData{Camera: testCamera(64, 32)}
	c.Execute(ctx, data)

	if len(ctx.Pending()) != 0 {
		t.Errorf("Expected no commands, got %d", len(ctx.Pending()))
	}
}

func TestCompositorSkipsStaleMask(t *testing.T) {
	frame := &FrameData{}
	frame.begin(renderer.TemporaryTarget(MaskTextureName), 4)
	frame.markProduced(4)

	ctx := renderer.NewContext(&recDevice{})
	c := NewCompositor(NewMaterial(), frame)
	c.Execute(ctx, &renderer.RenderingData{Camera: testCamera(64, 32), FrameIndex: 5})

	if len(ctx.Pending()) != 0 {
		t.Errorf("Expected no commands for a mask from frame 4, got %d", len(ctx.Pending()))
	}
}

func TestCompositorSkipsWithoutMaterial(t *testing.T) {
	frame := &FrameData{}
	frame.begin(renderer.TemporaryTarget(MaskTextureName), 0)
	frame.markProduced(0)

	ctx := renderer.NewContext(&recDevice{})
	c := NewCompositor(nil, frame)
	c.Execute(ctx, &renderer.RenderingData{Camera: testCamera(64, 32)})

	if len(ctx.Pending()) != 0 {
		t.Errorf("Expected no commands without a material, got %d", len(ctx.Pending()))
	}
}

func TestFeatureFrameOnRecordingDevice(t *testing.T) {
	device := &recDevice{}
	pipeline := renderer.NewPipeline(renderer.NewContext(device))

	s := DefaultSettings()
	s.StepCount = 2
	pipeline.AddFeature(NewFeature(s, NewMaterial()))

	visible := []renderer.Renderable{bloomRenderable("lamp", 0, 2000, 0)}
	if err := pipeline.RenderFrame(testCamera(64, 32), visible); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"targets _BloomBlitTex",
		"clear [0 0 0 1]",
		"targets scene _BloomBlitTex",
		"draw [lamp]",
		"float _LuminanceThreshold=1",
		"blit _BloomBlitTex->BloomDown0 #3",
		"blit BloomDown0->BloomDown1 #0",
		"texture _PrevMip=BloomDown1",
		"blit BloomDown0->BloomUp0 #1",
		"blit BloomUp0->scene #2",
	}
	if strings.Join(device.calls, "\n") != strings.Join(want, "\n") {
		t.Errorf("Expected calls:\n%s\ngot:\n%s", strings.Join(want, "\n"), strings.Join(device.calls, "\n"))
	}

	stats := pipeline.Context().Pool().GetStats()
	if stats.Requests != stats.Releases {
		t.Errorf("Expected balanced pool, got %d requests and %d releases", stats.Requests, stats.Releases)
	}
	if stats.Leaks != 0 {
		t.Errorf("Expected no leaks, got %d", stats.Leaks)
	}
}

func TestFeatureReusesPoolAcrossFrames(t *testing.T) {
	device := &recDevice{}
	pipeline := renderer.NewPipeline(renderer.NewContext(device))
	pipeline.AddFeature(NewFeature(DefaultSettings(), NewMaterial()))

	for i := 0; i < 3; i++ {
		if err := pipeline.RenderFrame(testCamera(256, 256), nil); err != nil {
			t.Fatal(err)
		}
	}

	// mask + 7 down + 6 up
	if len(device.created) != 14 {
		t.Errorf("Expected 14 allocations across 3 frames, got %d", len(device.created))
	}
	if got := pipeline.Context().Pool().Acquired(); len(got) != 0 {
		t.Errorf("Expected nothing held after the frame, got %v", got)
	}
}

func TestFeatureDisabledTouchesNothing(t *testing.T) {
	device := &recDevice{}
	pipeline := renderer.NewPipeline(renderer.NewContext(device))

	s := DefaultSettings()
	s.Enabled = false
	pipeline.AddFeature(NewFeature(s, NewMaterial()))

	if err := pipeline.RenderFrame(testCamera(64, 64), nil); err != nil {
		t.Fatal(err)
	}
	if len(device.calls) != 0 || len(device.created) != 0 {
		t.Errorf("Expected no device work, got calls %v and %d allocations", device.calls, len(device.created))
	}
}

func TestDisabledCameraTouchesNothing(t *testing.T) {
	device := &recDevice{}
	pipeline := renderer.NewPipeline(renderer.NewContext(device))
	pipeline.AddFeature(NewFeature(DefaultSettings(), NewMaterial()))

	camera := testCamera(64, 64)
	camera.Enabled = false
	if err := pipeline.RenderFrame(camera, nil); err != nil {
		t.Fatal(err)
	}
	if len(device.created) != 0 {
		t.Errorf("Expected no allocations, got %d", len(device.created))
	}
}
