package renderer

import "errors"

var (
	ErrZeroSizeTexture       = errors.New("renderer: texture dimensions must be at least 1x1")
	ErrTargetNotAcquired     = errors.New("renderer: temporary target is not acquired")
	ErrTargetAlreadyAcquired = errors.New("renderer: temporary target is already acquired")
	ErrUnknownTarget         = errors.New("renderer: unknown render target")
	ErrNilMaterial           = errors.New("renderer: material is nil")
	ErrPassIndex             = errors.New("renderer: material pass index out of range")
	ErrDeviceClosed          = errors.New("renderer: device is closed")
	ErrNoColorTarget         = errors.New("renderer: no color target bound")
)
