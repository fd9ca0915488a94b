package renderer

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Command is one recorded operation. Commands are replayed by a Context in recording order.
type Command interface {
	CommandName() string
}

type GetTemporaryCmd struct {
	Name       string
	Descriptor TextureDescriptor
	Filter     FilterMode
}

type ReleaseTemporaryCmd struct {
	Name string
}

type SetRenderTargetCmd struct {
	Colors []RenderTarget
	Depth  RenderTarget
}

type ClearRenderTargetCmd struct {
	ClearDepth bool
	ClearColor bool
	Color      mgl32.Vec4
}

type SetGlobalFloatCmd struct {
	Name  string
	Value float32
}

type SetGlobalTextureCmd struct {
	Name   string
	Target RenderTarget
}

type BlitCmd struct {
	Source   RenderTarget
	Dest     RenderTarget
	Material *Material
	Pass     int
}

type DrawRenderersCmd struct {
	Cull      CullingResults
	Drawing   DrawingSettings
	Filtering FilteringSettings
}

type BeginSampleCmd struct {
	Name string
}

type EndSampleCmd struct {
	Name string
}

func (GetTemporaryCmd) CommandName() string      { return "GetTemporaryRT" }
func (ReleaseTemporaryCmd) CommandName() string  { return "ReleaseTemporaryRT" }
func (SetRenderTargetCmd) CommandName() string   { return "SetRenderTarget" }
func (ClearRenderTargetCmd) CommandName() string { return "ClearRenderTarget" }
func (SetGlobalFloatCmd) CommandName() string    { return "SetGlobalFloat" }
func (SetGlobalTextureCmd) CommandName() string  { return "SetGlobalTexture" }
func (BlitCmd) CommandName() string              { return "Blit" }
func (DrawRenderersCmd) CommandName() string     { return "DrawRenderers" }
func (BeginSampleCmd) CommandName() string       { return "BeginSample" }
func (EndSampleCmd) CommandName() string         { return "EndSample" }

// CommandBuffer records rendering commands for later submission.
// Nothing touches the device until the buffer is executed on a Context.
type CommandBuffer struct {
	Name     string
	commands []Command
}

func NewCommandBuffer(name string) *CommandBuffer {
	return &CommandBuffer{Name: name}
}

var commandBufferPool = sync.Pool{
	New: func() interface{} { return &CommandBuffer{} },
}

// GetCommandBuffer returns an empty pooled command buffer.
func GetCommandBuffer(name string) *CommandBuffer {
	cmd := commandBufferPool.Get().(*CommandBuffer)
	cmd.Name = name
	cmd.Clear()
	return cmd
}

// ReleaseCommandBuffer hands a buffer back to the pool. It must not be used afterwards.
func ReleaseCommandBuffer(cmd *CommandBuffer) {
	if cmd == nil {
		return
	}
	cmd.Clear()
	commandBufferPool.Put(cmd)
}

func (cb *CommandBuffer) Clear() {
	for i := range cb.commands {
		cb.commands[i] = nil
	}
	cb.commands = cb.commands[:0]
}

// Commands returns the recorded commands. The slice is owned by the buffer.
func (cb *CommandBuffer) Commands() []Command {
	return cb.commands
}

func (cb *CommandBuffer) Len() int {
	return len(cb.commands)
}

func (cb *CommandBuffer) record(c Command) {
	cb.commands = append(cb.commands, c)
}

// GetTemporaryRT requests a frame-scoped texture under name.
func (cb *CommandBuffer) GetTemporaryRT(name string, desc TextureDescriptor, filter FilterMode) {
	cb.record(GetTemporaryCmd{Name: name, Descriptor: desc, Filter: filter})
}

// ReleaseTemporaryRT returns the texture acquired under name to the pool.
func (cb *CommandBuffer) ReleaseTemporaryRT(name string) {
	cb.record(ReleaseTemporaryCmd{Name: name})
}

// SetRenderTarget binds a single color target without depth.
func (cb *CommandBuffer) SetRenderTarget(color RenderTarget) {
	cb.record(SetRenderTargetCmd{Colors: []RenderTarget{color}, Depth: None})
}

// SetRenderTargets binds several simultaneous color outputs plus an optional depth target.
func (cb *CommandBuffer) SetRenderTargets(colors []RenderTarget, depth RenderTarget) {
	c := make([]RenderTarget, len(colors))
	copy(c, colors)
	cb.record(SetRenderTargetCmd{Colors: c, Depth: depth})
}

func (cb *CommandBuffer) ClearRenderTarget(clearDepth, clearColor bool, color mgl32.Vec4) {
	cb.record(ClearRenderTargetCmd{ClearDepth: clearDepth, ClearColor: clearColor, Color: color})
}

func (cb *CommandBuffer) SetGlobalFloat(name string, value float32) {
	cb.record(SetGlobalFloatCmd{Name: name, Value: value})
}

func (cb *CommandBuffer) SetGlobalTexture(name string, target RenderTarget) {
	cb.record(SetGlobalTextureCmd{Name: name, Target: target})
}

// Blit draws src into dst through pass of mat. A nil material copies.
func (cb *CommandBuffer) Blit(src, dst RenderTarget, mat *Material, pass int) {
	cb.record(BlitCmd{Source: src, Dest: dst, Material: mat, Pass: pass})
}

func (cb *CommandBuffer) BeginSample(name string) {
	cb.record(BeginSampleCmd{Name: name})
}

func (cb *CommandBuffer) EndSample(name string) {
	cb.record(EndSampleCmd{Name: name})
}
