// Package observability lets deployments attach metrics or tracing to
// the pipeline, the cache, and the HTTP server without this module
// depending on any telemetry framework.
//
// Each event category has a hook interface with a no-op default. An
// application registers its implementation once at startup:
//
//	observability.SetPipelineHooks(&promHooks{})
//
// and the instrumented code emits through the package-level accessors:
//
//	observability.Pipeline().OnLayoutStart(ctx, direction, nodeCount)
//
// Registration is guarded by a mutex but intended to happen before any
// traffic; hook implementations must be safe for concurrent use.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Hook Interfaces
// =============================================================================

// PipelineHooks receives events from the three pipeline stages. Each
// stage fires a Start/Complete pair; Complete carries the stage error,
// nil on success.
type PipelineHooks interface {
	OnIngestStart(ctx context.Context, variant string)
	OnIngestComplete(ctx context.Context, variant string, nodeCount int, duration time.Duration, err error)

	OnLayoutStart(ctx context.Context, direction string, nodeCount int)
	OnLayoutComplete(ctx context.Context, direction string, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives events from cache lookups and writes. The keyType
// argument names the cache family: graph, layout, or artifact.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// ServerHooks receives events from the HTTP server. OnError fires only
// for server-side failures, not for client errors like a bad payload.
type ServerHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
	OnError(ctx context.Context, method, path string, err error)
}

// =============================================================================
// Defaults
// =============================================================================

// NoopPipelineHooks discards all pipeline events.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnIngestStart(context.Context, string) {}
func (NoopPipelineHooks) OnIngestComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnLayoutStart(context.Context, string, int)                       {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, string, time.Duration, error)   {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks discards all cache events.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopServerHooks discards all server events.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string)                      {}
func (NoopServerHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopServerHooks) OnError(context.Context, string, string, error)                 {}

// =============================================================================
// Registry
// =============================================================================

// holder guards one hook registration.
type holder[T any] struct {
	mu sync.RWMutex
	v  T
}

func (h *holder[T]) get() T {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.v
}

func (h *holder[T]) set(v T) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.v = v
}

var (
	pipelineReg = &holder[PipelineHooks]{v: NoopPipelineHooks{}}
	cacheReg    = &holder[CacheHooks]{v: NoopCacheHooks{}}
	serverReg   = &holder[ServerHooks]{v: NoopServerHooks{}}
)

// SetPipelineHooks registers pipeline hooks. A nil value is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		pipelineReg.set(h)
	}
}

// SetCacheHooks registers cache hooks. A nil value is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		cacheReg.set(h)
	}
}

// SetServerHooks registers server hooks. A nil value is ignored.
func SetServerHooks(h ServerHooks) {
	if h != nil {
		serverReg.set(h)
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks { return pipelineReg.get() }

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return cacheReg.get() }

// Server returns the registered server hooks.
func Server() ServerHooks { return serverReg.get() }

// Reset restores the no-op defaults. Intended for tests.
func Reset() {
	pipelineReg.set(NoopPipelineHooks{})
	cacheReg.set(NoopCacheHooks{})
	serverReg.set(NoopServerHooks{})
}
