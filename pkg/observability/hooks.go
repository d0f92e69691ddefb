// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about synthesis runs and cache
// operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSynthHooks(&mySynthHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Synth().OnSynthesizeStart(pipelineLen)
//	// ... run pipeline ...
//	observability.Synth().OnSynthesizeComplete(applied, duration, err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Synthesis Hooks
// =============================================================================

// SynthHooks receives events from the synthesis engine.
type SynthHooks interface {
	// OnSynthesizeStart records the beginning of a pipeline run.
	OnSynthesizeStart(transformations int)

	// OnTransformationApplied records one applied pipeline step.
	OnTransformationApplied(name, kind string, duration time.Duration)

	// OnSynthesizeComplete records the end of a pipeline run.
	OnSynthesizeComplete(applied int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSynthHooks is a no-op implementation of SynthHooks.
type NoopSynthHooks struct{}

func (NoopSynthHooks) OnSynthesizeStart(int)                                 {}
func (NoopSynthHooks) OnTransformationApplied(string, string, time.Duration) {}
func (NoopSynthHooks) OnSynthesizeComplete(int, time.Duration, error)        {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(string)      {}
func (NoopCacheHooks) OnCacheMiss(string)     {}
func (NoopCacheHooks) OnCacheSet(string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	synthHooks SynthHooks = NoopSynthHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetSynthHooks registers custom synthesis hooks.
// This should be called once at application startup before any synthesis.
func SetSynthHooks(h SynthHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		synthHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Synth returns the registered synthesis hooks.
func Synth() SynthHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return synthHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	synthHooks = NoopSynthHooks{}
	cacheHooks = NoopCacheHooks{}
}
