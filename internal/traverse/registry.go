package traverse

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/agentic-research/wayfind/api"
)

// TraverserFactory builds a traversal strategy rooted at the given
// resource.
type TraverserFactory func(root api.Resource) api.Traverser

// LegacyTraverserFactory builds a pre-1.0 strategy that still returns
// tuple-shaped results.
type LegacyTraverserFactory func(root api.Resource) api.LegacyTraverser

// Registry selects a traversal strategy by the concrete type of the root
// resource. Roots with no registered factory get the default
// ModelGraphTraverser. The capability check happens once per root type at
// registration/lookup, not per walked segment.
type Registry struct {
	mu        sync.RWMutex
	factories map[reflect.Type]TraverserFactory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[reflect.Type]TraverserFactory)}
}

// Register installs a factory for roots with the same concrete type as
// sample.
func (r *Registry) Register(sample api.Resource, factory TraverserFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[reflect.TypeOf(sample)] = factory
}

// RegisterLegacy installs a factory producing a tuple-shaped traverser.
// Its results are upconverted to TraversalResult at this boundary and a
// compatibility warning is logged on every call; legacy shapes never
// propagate past the registry.
func (r *Registry) RegisterLegacy(sample api.Resource, factory LegacyTraverserFactory) {
	r.Register(sample, func(root api.Resource) api.Traverser {
		return &legacyAdapter{inner: factory(root)}
	})
}

// TraverserFor returns the traversal strategy for the given root.
func (r *Registry) TraverserFor(root api.Resource) api.Traverser {
	r.mu.RLock()
	factory, ok := r.factories[reflect.TypeOf(root)]
	r.mu.RUnlock()
	if !ok {
		return NewModelGraphTraverser(root)
	}
	return factory(root)
}

// DefaultRegistry is the process-wide registry used by Traverse and
// FindModel.
var DefaultRegistry = NewRegistry()

func traverserFor(root api.Resource) api.Traverser {
	return DefaultRegistry.TraverserFor(root)
}

// legacyAdapter upconverts tuple-shaped results to the canonical shape.
// Fields the legacy shape does not carry stay nil: the 3-field shape
// leaves Traversed, VirtualRoot and VirtualRootPath absent, and neither
// shape carries a Root.
type legacyAdapter struct {
	inner api.LegacyTraverser
}

func (a *legacyAdapter) Traverse(req *api.Request) (*api.TraversalResult, error) {
	legacy, err := a.inner.TraverseLegacy(req)
	if err != nil {
		return nil, err
	}
	fields := 3
	if legacy.Full {
		fields = 6
	}
	slog.Warn("deprecated tuple-shaped traverser result; update the traverser to return a TraversalResult",
		"traverser", fmt.Sprintf("%T", a.inner),
		"fields", fields)

	result := &api.TraversalResult{
		Context:  legacy.Context,
		ViewName: legacy.ViewName,
		Subpath:  legacy.Subpath,
	}
	if legacy.Full {
		result.Traversed = legacy.Traversed
		result.VirtualRoot = legacy.VirtualRoot
		result.VirtualRootPath = legacy.VirtualRootPath
	}
	return result, nil
}
