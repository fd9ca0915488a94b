package renderer

import (
	"GopherBloom/internal/logger"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// DefaultMaxIdleFrames is how many frames an unused slot keeps its texture.
const DefaultMaxIdleFrames = 3

// PoolStats provides debugging and profiling information
type PoolStats struct {
	Requests    int
	Releases    int
	Reuses      int
	Allocations int
	Evictions   int
	Leaks       int
	Acquired    int
	Slots       int
	MemoryBytes uint64
}

type poolSlot struct {
	desc     TextureDescriptor
	filter   FilterMode
	texture  Texture
	acquired bool
	lastUsed uint64
}

// TemporaryPool hands out frame-scoped textures keyed by stable names.
// A name that is requested every frame with the same descriptor keeps its backing texture.
type TemporaryPool struct {
	device        Device
	slots         map[string]*poolSlot
	frame         uint64
	MaxIdleFrames uint64
	mu            sync.Mutex
	stats         PoolStats
}

func NewTemporaryPool(device Device) *TemporaryPool {
	return &TemporaryPool{
		device:        device,
		slots:         make(map[string]*poolSlot),
		MaxIdleFrames: DefaultMaxIdleFrames,
	}
}

// Acquire marks name as in use for the current frame and returns its texture.
func (p *TemporaryPool) Acquire(name string, desc TextureDescriptor, filter FilterMode) (Texture, error) {
	if !desc.Valid() {
		return nil, fmt.Errorf("acquire %q (%s): %w", name, desc, ErrZeroSizeTexture)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stats.Requests++

	slot, exists := p.slots[name]
	if exists && slot.acquired {
		return nil, fmt.Errorf("acquire %q: %w", name, ErrTargetAlreadyAcquired)
	}

	if exists && slot.desc == desc && slot.filter == filter {
		slot.acquired = true
		slot.lastUsed = p.frame
		p.stats.Reuses++
		logger.Log.Debug("Temporary target reused",
			zap.String("name", name),
			zap.Int32("width", desc.Width),
			zap.Int32("height", desc.Height))
		return slot.texture, nil
	}

	if exists {
		p.device.DestroyTexture(slot.texture)
		delete(p.slots, name)
	}

	tex, err := p.device.CreateTexture(name, desc, filter)
	if err != nil {
		return nil, fmt.Errorf("acquire %q: %w", name, err)
	}
	p.slots[name] = &poolSlot{desc: desc, filter: filter, texture: tex, acquired: true, lastUsed: p.frame}
	p.stats.Allocations++

	logger.Log.Debug("Temporary target allocated",
		zap.String("name", name),
		zap.Int32("width", desc.Width),
		zap.Int32("height", desc.Height),
		zap.Stringer("filter", filter))

	return tex, nil
}

// Release returns name to the pool. The texture stays allocated for reuse.
func (p *TemporaryPool) Release(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	slot, exists := p.slots[name]
	if !exists || !slot.acquired {
		return fmt.Errorf("release %q: %w", name, ErrTargetNotAcquired)
	}
	slot.acquired = false
	p.stats.Releases++

	logger.Log.Debug("Temporary target released", zap.String("name", name))
	return nil
}

// Lookup returns the texture currently acquired under name.
func (p *TemporaryPool) Lookup(name string) (Texture, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	slot, exists := p.slots[name]
	if !exists || !slot.acquired {
		return nil, false
	}
	return slot.texture, true
}

// Acquired lists the names still held, sorted.
func (p *TemporaryPool) Acquired() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.acquiredLocked()
}

func (p *TemporaryPool) acquiredLocked() []string {
	var names []string
	for name, slot := range p.slots {
		if slot.acquired {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// EndFrame force-releases anything still held, evicts idle slots and advances the frame.
// It returns the names that leaked.
func (p *TemporaryPool) EndFrame() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	leaked := p.acquiredLocked()
	for _, name := range leaked {
		p.slots[name].acquired = false
		p.stats.Leaks++
		logger.Log.Warn("Temporary target leaked past end of frame",
			zap.String("name", name),
			zap.Uint64("frame", p.frame))
	}

	for name, slot := range p.slots {
		if p.frame-slot.lastUsed > p.MaxIdleFrames {
			p.device.DestroyTexture(slot.texture)
			delete(p.slots, name)
			p.stats.Evictions++
			logger.Log.Debug("Temporary target evicted", zap.String("name", name))
		}
	}

	p.frame++
	return leaked
}

// Frame is the index of the frame currently being recorded.
func (p *TemporaryPool) Frame() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frame
}

// GetStats returns current pool statistics
func (p *TemporaryPool) GetStats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	stats := p.stats
	stats.Slots = len(p.slots)
	stats.Acquired = 0
	stats.MemoryBytes = 0
	for _, slot := range p.slots {
		if slot.acquired {
			stats.Acquired++
		}
		stats.MemoryBytes += slot.desc.SizeBytes()
	}
	return stats
}

// LogStats logs current pool statistics
func (p *TemporaryPool) LogStats() {
	stats := p.GetStats()
	logger.Log.Info("Temporary pool stats",
		zap.Int("requests", stats.Requests),
		zap.Int("releases", stats.Releases),
		zap.Int("reuses", stats.Reuses),
		zap.Int("allocations", stats.Allocations),
		zap.Int("evictions", stats.Evictions),
		zap.Int("leaks", stats.Leaks),
		zap.Int("slots", stats.Slots),
		zap.Uint64("memoryBytes", stats.MemoryBytes))
}

// Clear destroys every texture the pool owns.
func (p *TemporaryPool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for name, slot := range p.slots {
		p.device.DestroyTexture(slot.texture)
		delete(p.slots, name)
	}
	logger.Log.Info("Temporary pool cleared")
}
