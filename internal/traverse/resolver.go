package traverse

import (
	"strings"

	"github.com/agentic-research/wayfind/api"
	"github.com/agentic-research/wayfind/internal/urlpath"
)

// Lineage returns the ancestor chain of a resource, the resource itself
// first and the root last.
func Lineage(model api.Resource) []api.Resource {
	var chain []api.Resource
	for loc := model; loc != nil; loc = loc.Parent() {
		chain = append(chain, loc)
	}
	return chain
}

// FindRoot walks the lineage of model and returns the resource whose
// parent is nil.
func FindRoot(model api.Resource) api.Resource {
	for _, loc := range Lineage(model) {
		if loc.Parent() == nil {
			return loc
		}
	}
	return model
}

// FindInterface returns the first resource in model's lineage for which
// the predicate holds, or nil if none matches. The predicate abstracts
// "is an instance of / provides capability X".
func FindInterface(model api.Resource, predicate func(api.Resource) bool) api.Resource {
	for _, loc := range Lineage(model) {
		if predicate(loc) {
			return loc
		}
	}
	return nil
}

// ModelPathTuple returns the absolute physical path of model as a decoded
// segment tuple, e.g. ["", "foo", "bar"]. The leading element is the
// root's empty name; by convention that empty first element is what marks
// the tuple as absolute. Any extra arguments are appended as trailing
// elements.
//
// No quoting is performed; segments are the resources' names verbatim.
// Tuples produced here always resolve back through FindModelTuple.
func ModelPathTuple(model api.Resource, extra ...string) []string {
	chain := Lineage(model)
	path := make([]string, 0, len(chain)+len(extra))
	for i := len(chain) - 1; i >= 0; i-- {
		path = append(path, chain[i].Name())
	}
	return append(path, extra...)
}

// ModelPath returns the absolute physical path of model as an encoded
// string, e.g. "/foo/bar": every segment is quoted via QuotePathSegment
// and the result joined with "/". Any extra arguments are appended as
// trailing segments before encoding. The root alone encodes to "/".
//
// ModelPath is the logical inverse of FindModel: paths generated here
// always resolve back to the resource they were generated from.
func ModelPath(model api.Resource, extra ...string) string {
	tuple := ModelPathTuple(model, extra...)
	quoted := make([]string, len(tuple))
	for i, segment := range tuple {
		quoted[i] = urlpath.QuotePathSegment(segment)
	}
	path := strings.Join(quoted, "/")
	if path == "" {
		return "/"
	}
	return path
}

// Traverse resolves an encoded path string against the graph that model
// belongs to. A path starting with "/" is absolute: traversal starts at
// FindRoot(model). Otherwise traversal starts at model itself. The empty
// path resolves to model.
//
// The traversal strategy is chosen through the registry for the start
// resource's type; the default is ModelGraphTraverser.
func Traverse(model api.Resource, path string) (*api.TraversalResult, error) {
	if strings.HasPrefix(path, "/") {
		model = FindRoot(model)
	}
	return traverserFor(model).Traverse(&api.Request{Path: path})
}

// TraverseTuple resolves a decoded segment tuple, such as the return
// value of ModelPathTuple. A leading empty element marks the tuple as
// absolute. Elements are quoted and joined before decoding, so names
// containing "/" or "%" survive the round trip.
func TraverseTuple(model api.Resource, tuple []string) (*api.TraversalResult, error) {
	return Traverse(model, joinTuple(tuple))
}

func joinTuple(tuple []string) string {
	if len(tuple) == 0 {
		return ""
	}
	quoted := make([]string, len(tuple))
	for i, segment := range tuple {
		quoted[i] = urlpath.QuotePathSegment(segment)
	}
	path := strings.Join(quoted, "/")
	if path == "" {
		return "/"
	}
	return path
}

// FindModel resolves an encoded path string (absolute or relative, per the
// Traverse rules) and requires that it resolve completely: a non-empty
// remainder is a NotFoundError naming the unresolved segment and the
// context reached.
func FindModel(model api.Resource, path string) (api.Resource, error) {
	result, err := Traverse(model, path)
	if err != nil {
		return nil, err
	}
	return requireResolved(result)
}

// FindModelTuple is FindModel for decoded segment tuples.
func FindModelTuple(model api.Resource, tuple []string) (api.Resource, error) {
	result, err := TraverseTuple(model, tuple)
	if err != nil {
		return nil, err
	}
	return requireResolved(result)
}

func requireResolved(result *api.TraversalResult) (api.Resource, error) {
	if result.ViewName != "" {
		return nil, &NotFoundError{Remainder: result.ViewName, Context: result.Context}
	}
	return result.Context, nil
}
