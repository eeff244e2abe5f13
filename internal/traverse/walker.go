// Package traverse implements resolution of request paths against a model
// graph: the tree-walk producing a TraversalResult, the inverse functions
// deriving paths from a resource's lineage, virtual-root handling for
// reverse-proxied deployments, and URL generation for resolved contexts.
package traverse

import (
	"strings"

	"github.com/agentic-research/wayfind/api"
	"github.com/agentic-research/wayfind/internal/urlpath"
)

// viewMarker escapes a segment so that it always names a view instead of a
// child, even when a child with that name exists.
const viewMarker = "@@"

// ModelGraphTraverser walks a model graph whose nodes all expose Name and
// Parent, descending through the optional ChildLookup capability. It is
// the default traversal strategy.
type ModelGraphTraverser struct {
	root api.Resource
}

func NewModelGraphTraverser(root api.Resource) *ModelGraphTraverser {
	return &ModelGraphTraverser{root: root}
}

// Traverse implements api.Traverser.
//
// The path to walk is the request path, unless an external dispatcher
// already matched the request: then MatchedVars supplies the "traverse"
// path and the "subpath" seed instead. A virtual-root value is prepended
// to the path before decoding, and the node reached exactly at the end of
// that prefix becomes the result's VirtualRoot.
//
// The only error condition is an undecodable path. A failed child lookup
// mid-walk stops descent and reports the unconsumed remainder in-band via
// ViewName and Subpath.
func (t *ModelGraphTraverser) Traverse(req *api.Request) (*api.TraversalResult, error) {
	var path string
	subpath := []string{}

	if req.MatchedVars != nil {
		var err error
		path, err = matchedTraversePath(req.MatchedVars["traverse"])
		if err != nil {
			return nil, err
		}
		subpath, err = matchedSubpath(req.MatchedVars["subpath"])
		if err != nil {
			return nil, err
		}
	} else {
		path = req.Path
		if path == "" {
			path = "/"
		}
	}

	vrootTuple := []string{}
	vpath := path
	vrootIdx := -1
	if req.VHostRoot != "" {
		var err error
		vrootTuple, err = urlpath.TraversalPath(req.VHostRoot)
		if err != nil {
			return nil, err
		}
		vpath = req.VHostRoot + path
		vrootIdx = len(vrootTuple) - 1
	}

	ob := t.root
	vroot := t.root

	// Known-empty paths skip the decode entirely; same result, no cache
	// traffic.
	vpathTuple := []string{}
	if vpath != "/" && vpath != "" {
		var err error
		vpathTuple, err = urlpath.TraversalPath(vpath)
		if err != nil {
			return nil, err
		}
		for i, segment := range vpathTuple {
			// The traversed window runs through the current segment
			// when a virtual-root prefix is active. The end index can
			// exceed the tuple length once ".." segments shrink the
			// decoded path below the prefix, so it is clamped.
			traversed := vpathTuple[:min(vrootIdx+i+1, len(vpathTuple))]
			if strings.HasPrefix(segment, viewMarker) {
				return &api.TraversalResult{
					Context:         ob,
					ViewName:        segment[len(viewMarker):],
					Subpath:         vpathTuple[i+1:],
					Traversed:       traversed,
					VirtualRoot:     vroot,
					VirtualRootPath: vrootTuple,
					Root:            t.root,
				}, nil
			}
			lookup, ok := ob.(api.ChildLookup)
			var next api.Resource
			if ok {
				next, ok = lookup.Child(segment)
			}
			if !ok {
				// Leaf reached or no such child: the un-descended
				// segment becomes the view name.
				return &api.TraversalResult{
					Context:         ob,
					ViewName:        segment,
					Subpath:         vpathTuple[i+1:],
					Traversed:       traversed,
					VirtualRoot:     vroot,
					VirtualRootPath: vrootTuple,
					Root:            t.root,
				}, nil
			}
			if i == vrootIdx {
				vroot = next
			}
			ob = next
		}
	}

	return &api.TraversalResult{
		Context:         ob,
		ViewName:        "",
		Subpath:         subpath,
		Traversed:       vpathTuple,
		VirtualRoot:     vroot,
		VirtualRootPath: vrootTuple,
		Root:            t.root,
	}, nil
}

// matchedTraversePath shapes a matchdict "traverse" value into a raw path.
// A []string value comes from a *traverse star-segment: each element is a
// decoded segment and must be re-quoted before joining.
func matchedTraversePath(v any) (string, error) {
	switch tv := v.(type) {
	case nil:
		return "/", nil
	case string:
		if tv == "" {
			return "/", nil
		}
		return tv, nil
	case []string:
		quoted := make([]string, len(tv))
		for i, segment := range tv {
			quoted[i] = urlpath.QuotePathSegment(segment)
		}
		path := strings.Join(quoted, "/")
		if path == "" {
			return "/", nil
		}
		return path, nil
	}
	return "", &BadMatchError{Key: "traverse", Value: v}
}

// matchedSubpath shapes a matchdict "subpath" value into decoded segments.
// A plain string is a single un-split path and goes through TraversalPath.
func matchedSubpath(v any) ([]string, error) {
	switch sv := v.(type) {
	case nil:
		return []string{}, nil
	case []string:
		return sv, nil
	case string:
		return urlpath.TraversalPath(sv)
	}
	return nil, &BadMatchError{Key: "subpath", Value: v}
}
