package graph

import (
	"sync"

	"github.com/agentic-research/wayfind/api"
)

// HotSwapSource is a thread-safe wrapper that allows replacing the
// underlying graph while resolutions are in flight. Handles obtained from
// the old graph stay valid — they keep pointing at the old arena — but new
// resolutions start from the swapped-in root.
type HotSwapSource struct {
	mu      sync.RWMutex
	current Source
}

func NewHotSwapSource(initial Source) *HotSwapSource {
	return &HotSwapSource{current: initial}
}

// Swap atomically replaces the current graph with a new one.
func (h *HotSwapSource) Swap(next Source) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = next
}

// Root delegates to the current graph.
func (h *HotSwapSource) Root() api.Resource {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current.Root()
}
