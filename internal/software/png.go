package software

import (
	"fmt"
	"image/png"
	"os"
)

// SavePNG writes the texture as a 16-bit PNG.
func SavePNG(path string, t *Texture) error {
	if t.Image() == nil {
		return fmt.Errorf("save %s: texture has no color storage", t.Label())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", t.Label(), err)
	}
	if err := png.Encode(f, t.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", t.Label(), err)
	}
	return f.Close()
}
