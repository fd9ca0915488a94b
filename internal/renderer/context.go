package renderer

import (
	"GopherBloom/internal/logger"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Context is the per-camera submission stream. Command buffers and draw calls are
// queued in order and replayed against the Device by Submit.
type Context struct {
	device  Device
	pool    *TemporaryPool
	queue   []Command
	samples int
}

func NewContext(device Device) *Context {
	return &Context{
		device: device,
		pool:   NewTemporaryPool(device),
	}
}

func (c *Context) Device() Device { return c.device }

func (c *Context) Pool() *TemporaryPool { return c.pool }

// ExecuteCommandBuffer schedules the commands recorded so far in cmd.
// The buffer may be cleared or reused right after.
func (c *Context) ExecuteCommandBuffer(cmd *CommandBuffer) {
	if cmd == nil {
		return
	}
	c.queue = append(c.queue, cmd.Commands()...)
}

// DrawRenderers schedules a filtered draw of the visible renderables into the bound targets.
func (c *Context) DrawRenderers(cull CullingResults, drawing DrawingSettings, filtering FilteringSettings) {
	c.queue = append(c.queue, DrawRenderersCmd{Cull: cull, Drawing: drawing, Filtering: filtering})
}

// Pending returns the commands queued since the last Submit.
func (c *Context) Pending() []Command {
	return c.queue
}

// Submit replays every queued command in order. A failing command does not stop the
// stream, so later releases still happen; all errors are returned together.
func (c *Context) Submit() error {
	queue := c.queue
	c.queue = nil

	var errs error
	for _, cmd := range queue {
		if err := c.execute(cmd); err != nil {
			logger.Log.Error("Command failed", zap.String("command", cmd.CommandName()), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", cmd.CommandName(), err))
		}
	}
	return errs
}

// EndFrame closes the frame on the pool. Leaked temporaries are force-released and reported.
func (c *Context) EndFrame() []string {
	if c.samples != 0 {
		logger.Log.Warn("Unbalanced profiling samples at end of frame", zap.Int("depth", c.samples))
		c.samples = 0
	}
	return c.pool.EndFrame()
}

func (c *Context) resolve(t RenderTarget) (Texture, error) {
	if t.IsNone() {
		return nil, nil
	}
	if t.IsTemporary() {
		tex, ok := c.pool.Lookup(t.Name())
		if !ok {
			return nil, fmt.Errorf("%q: %w", t.Name(), ErrTargetNotAcquired)
		}
		return tex, nil
	}
	return t.Texture(), nil
}

func (c *Context) execute(cmd Command) error {
	switch v := cmd.(type) {
	case GetTemporaryCmd:
		_, err := c.pool.Acquire(v.Name, v.Descriptor, v.Filter)
		return err

	case ReleaseTemporaryCmd:
		return c.pool.Release(v.Name)

	case SetRenderTargetCmd:
		colors := make([]Texture, 0, len(v.Colors))
		for _, t := range v.Colors {
			tex, err := c.resolve(t)
			if err != nil {
				return err
			}
			if tex == nil {
				return ErrNoColorTarget
			}
			colors = append(colors, tex)
		}
		depth, err := c.resolve(v.Depth)
		if err != nil {
			return err
		}
		return c.device.SetRenderTargets(colors, depth)

	case ClearRenderTargetCmd:
		return c.device.ClearRenderTarget(v.ClearDepth, v.ClearColor, v.Color)

	case SetGlobalFloatCmd:
		c.device.SetGlobalFloat(v.Name, v.Value)
		return nil

	case SetGlobalTextureCmd:
		tex, err := c.resolve(v.Target)
		if err != nil {
			return err
		}
		c.device.SetGlobalTexture(v.Name, tex)
		return nil

	case BlitCmd:
		src, err := c.resolve(v.Source)
		if err != nil {
			return err
		}
		dst, err := c.resolve(v.Dest)
		if err != nil {
			return err
		}
		if src == nil || dst == nil {
			return ErrUnknownTarget
		}
		return c.device.Blit(src, dst, v.Material, v.Pass)

	case DrawRenderersCmd:
		list := FilterRenderers(v.Cull, v.Drawing, v.Filtering)
		logger.Log.Debug("Drawing renderers",
			zap.Int("visible", len(v.Cull.Visible)),
			zap.Int("drawn", len(list)))
		if len(list) == 0 {
			return nil
		}
		return c.device.DrawRenderers(list)

	case BeginSampleCmd:
		c.samples++
		return nil

	case EndSampleCmd:
		c.samples--
		return nil

	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
}
