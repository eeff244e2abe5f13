package traverse

import (
	"fmt"

	"github.com/agentic-research/wayfind/api"
)

// NotFoundError reports a FindModel call whose path did not resolve
// completely. Remainder is the first unresolved segment; Context is the
// deepest resource reached before resolution stopped.
type NotFoundError struct {
	Remainder string
	Context   api.Resource
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s has no subelement %q", ModelPath(e.Context), e.Remainder)
}

// BadMatchError reports a route-matched variable of an unusable type.
type BadMatchError struct {
	Key   string
	Value any
}

func (e *BadMatchError) Error() string {
	return fmt.Sprintf("matched variable %q has unsupported type %T", e.Key, e.Value)
}
