package opengl

import "errors"

var (
	ErrShaderCompile          = errors.New("opengl: shader compilation failed")
	ErrProgramLink            = errors.New("opengl: program link failed")
	ErrIncompleteFramebuffer  = errors.New("opengl: framebuffer incomplete")
	ErrForeignTexture         = errors.New("opengl: texture was not created by this device")
	ErrTooManyColorAttachment = errors.New("opengl: too many color attachments")
)
