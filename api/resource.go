package api

// Resource is a location-aware vertex in the model graph: it knows the
// segment that addresses it from its parent and how to reach that parent.
//
// The parent link is a lookup relation, never an ownership edge. Following
// Parent repeatedly from any resource must terminate at exactly one root
// whose Parent returns nil — a cycle in the parent chain is a caller error.
//
// Implementations must return a true nil interface for a missing parent
// (not a typed nil pointer), otherwise root detection breaks.
type Resource interface {
	// Name returns the path segment addressing this resource from its
	// parent. The root's name is the empty string.
	Name() string
	// Parent returns the enclosing resource, or nil for the root.
	Parent() Resource
}

// ChildLookup is the optional child-resolution capability. Resources that
// do not implement it are leaves for traversal purposes: descent stops at
// them and the remaining segments become view name and subpath.
type ChildLookup interface {
	// Child resolves a decoded segment to a child resource.
	Child(name string) (Resource, bool)
}
