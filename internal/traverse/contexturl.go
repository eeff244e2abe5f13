package traverse

import (
	"fmt"
	"strings"

	"github.com/agentic-research/wayfind/api"
	"github.com/yosida95/uritemplate/v3"
)

// ContextURL generates URLs for a context obtained via graph traversal.
//
// The generated path is the context's encoded model path with a trailing
// "/" (the root stays "/"). When the request carries a virtual-root value
// and the path starts with it, that prefix is stripped, so links stay
// correct behind a rewriting reverse proxy. When the request was matched
// by a route, the route's URI template is expanded with the generated
// path bound to the "traverse" variable; templates should use a reserved
// expansion such as {+traverse} so slashes pass through unescaped.
type ContextURL struct {
	Context api.Resource
	Request *api.Request

	// AppURL is the application base URL; it never ends in "/".
	AppURL string

	// Route is the matched route's URI template, nil when the request
	// was not route-matched.
	Route *uritemplate.Template
}

// VirtualRoot resolves the effective root for this context's request.
func (c *ContextURL) VirtualRoot() (api.Resource, error) {
	return VirtualRoot(c.Context, c.Request)
}

// URL generates the absolute URL for the context.
func (c *ContextURL) URL() (string, error) {
	path := ModelPath(c.Context)
	if path != "/" {
		path += "/"
	}

	if c.Request != nil && c.Request.VHostRoot != "" {
		if vroot := c.Request.VHostRoot; strings.HasPrefix(path, vroot) {
			path = path[len(vroot):]
		}
	}

	if c.Route != nil {
		expanded, err := c.Route.Expand(uritemplate.Values{
			"traverse": uritemplate.String(path),
		})
		if err != nil {
			return "", fmt.Errorf("expand route template: %w", err)
		}
		return c.AppURL + expanded, nil
	}
	return c.AppURL + path, nil
}
