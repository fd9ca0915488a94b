package software

import "errors"

var (
	ErrUnknownKernel  = errors.New("software: no kernel registered for pass")
	ErrForeignTexture = errors.New("software: texture was not created by this device")
	ErrSizeMismatch   = errors.New("software: render targets differ in size")
)
