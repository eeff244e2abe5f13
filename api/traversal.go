package api

// VHostRootKey is the request metadata key carrying the virtual-root raw
// path for reverse-proxied deployments. Absence means no virtual hosting.
const VHostRootKey = "X-Vhm-Root"

// Request carries the per-request inputs to traversal. It is a plain value:
// the engine never mutates it and performs no I/O on its behalf.
type Request struct {
	// Path is the raw, still-encoded request path. Empty is treated as "/".
	Path string

	// VHostRoot is the raw virtual-root path taken from the VHostRootKey
	// request metadata entry. Empty means no virtual hosting is in effect.
	VHostRoot string

	// MatchedVars holds variables extracted by an external pattern-based
	// dispatcher. When non-nil, the "traverse" entry (string or []string)
	// replaces Path as the path to walk, and the "subpath" entry (string
	// or []string) seeds the result's Subpath.
	MatchedVars map[string]any

	// Root is the physical root when the caller already resolved it.
	// VirtualRoot uses it as a shortcut instead of walking the lineage.
	Root Resource
}

// TraversalResult describes where a walk stopped. It is constructed fresh
// per call and must be treated as immutable once returned.
//
// Traversed is the prefix of the normalized path consumed by successful
// child lookups; ViewName plus Subpath is the unconsumed remainder, with
// ViewName being its first segment (empty when the whole path resolved).
// Every segment is decoded text, never the raw encoded form.
type TraversalResult struct {
	Context         Resource
	ViewName        string
	Subpath         []string
	Traversed       []string
	VirtualRoot     Resource
	VirtualRootPath []string
	Root            Resource
}

// Traverser resolves a request against a model graph. The engine registers
// itself as the default implementation for resources satisfying the
// Resource (+ optional ChildLookup) capability set; alternate strategies
// may be substituted per root type.
//
// An error is returned only for malformed input (an undecodable path).
// A mid-walk lookup miss is not an error: it is reported in-band through
// ViewName and Subpath.
type Traverser interface {
	Traverse(req *Request) (*TraversalResult, error)
}

// LegacyResult is the deprecated tuple-shaped traversal result produced by
// old traverser implementations. It comes in two shapes: the 3-field shape
// (Context, ViewName, Subpath) and the 6-field shape which additionally
// carries Traversed, VirtualRoot and VirtualRootPath. Full distinguishes
// the two. Neither shape carries a root.
//
// Legacy results are upconverted to TraversalResult once, at the registry
// boundary, and never propagated past it.
type LegacyResult struct {
	Context         Resource
	ViewName        string
	Subpath         []string
	Traversed       []string
	VirtualRoot     Resource
	VirtualRootPath []string

	// Full is true for the 6-field shape.
	Full bool
}

// LegacyTraverser is implemented by pre-1.0 traversal strategies that still
// return tuple-shaped results.
type LegacyTraverser interface {
	TraverseLegacy(req *Request) (*LegacyResult, error)
}
