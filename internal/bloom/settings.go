package bloom

import (
	"GopherBloom/internal/logger"
	"GopherBloom/internal/renderer"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"go.uber.org/zap"
)

const (
	MinStepCount = 1
	MaxStepCount = 14
)

// Settings are the bloom parameters the host sets for a frame.
type Settings struct {
	Enabled bool `json:"enabled"`

	// Mask geometry filtering
	IsOpaqueMask bool               `json:"isOpaqueMask"`
	LayerFilter  renderer.LayerMask `json:"layerFilter"`

	// Pyramid
	StepCount          int     `json:"stepCount"`
	LuminanceThreshold float32 `json:"luminanceThreshold"`
}

// DefaultSettings returns the defaults used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		Enabled:            true,
		IsOpaqueMask:       true,
		LayerFilter:        renderer.LayerEverything,
		StepCount:          7,
		LuminanceThreshold: 1.0,
	}
}

// HighQualitySettings uses the deepest pyramid for the widest glow
func HighQualitySettings() Settings {
	s := DefaultSettings()
	s.StepCount = MaxStepCount
	s.LuminanceThreshold = 0.8
	return s
}

// PerformanceSettings keeps the pyramid shallow
func PerformanceSettings() Settings {
	s := DefaultSettings()
	s.StepCount = 3
	return s
}

// Clamp forces the settings into their valid ranges. Every adjusted field is logged.
func (s Settings) Clamp() Settings {
	if s.StepCount < MinStepCount || s.StepCount > MaxStepCount {
		clamped := s.StepCount
		if clamped < MinStepCount {
			clamped = MinStepCount
		}
		if clamped > MaxStepCount {
			clamped = MaxStepCount
		}
		logger.Log.Warn("Bloom step count out of range",
			zap.Int("stepCount", s.StepCount),
			zap.Int("clamped", clamped))
		s.StepCount = clamped
	}

	t := s.LuminanceThreshold
	switch {
	case math.IsNaN(float64(t)):
		t = DefaultSettings().LuminanceThreshold
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	if t != s.LuminanceThreshold || math.IsNaN(float64(s.LuminanceThreshold)) {
		logger.Log.Warn("Bloom luminance threshold out of range",
			zap.Float32("threshold", s.LuminanceThreshold),
			zap.Float32("clamped", t))
		s.LuminanceThreshold = t
	}
	return s
}

// QueueRange is the render queue range that feeds the mask pass.
func (s Settings) QueueRange() renderer.RenderQueueRange {
	if s.IsOpaqueMask {
		return renderer.QueueOpaque
	}
	return renderer.QueueTransparent
}

// Sorting is the draw order used for mask geometry.
func (s Settings) Sorting() renderer.SortingCriteria {
	if s.IsOpaqueMask {
		return renderer.SortCommonOpaque
	}
	return renderer.SortCommonTransparent
}

// LoadSettings reads settings from a JSON file. Missing fields keep their defaults
// and the result is always clamped.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read bloom settings: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("parse bloom settings %s: %w", path, err)
	}

	logger.Log.Info("Bloom settings loaded", zap.String("path", path))
	return s.Clamp(), nil
}

// SaveSettings writes settings to a JSON file.
func SaveSettings(path string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal bloom settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write bloom settings: %w", err)
	}
	return nil
}
