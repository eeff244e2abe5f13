package traverse

import (
	"github.com/agentic-research/wayfind/api"
)

// VirtualRoot returns the resource acting as the effective root of the
// request. With no virtual-root value on the request, that is the physical
// root: the one the request already carries when the caller resolved it
// earlier, or the top of model's lineage otherwise. With a virtual-root
// value present, its path is resolved from model via FindModel and the
// resource found there is the virtual root.
func VirtualRoot(model api.Resource, req *api.Request) (api.Resource, error) {
	if req == nil || req.VHostRoot == "" {
		if req != nil && req.Root != nil {
			return req.Root, nil
		}
		return FindRoot(model), nil
	}
	return FindModel(model, req.VHostRoot)
}
