package content

import (
	"errors"
	"fmt"
)

var (
	ErrBasePathRequired   = errors.New("content: base path is required")
	ErrBasePathInvalid    = errors.New("content: base path is not a readable directory")
	ErrMissingFrontMatter = errors.New("content: document is missing frontmatter")
	ErrRouteConflict      = errors.New("content: duplicate route")
	ErrRouteInvalid       = errors.New("content: route could not be derived")
)

// RouteConflictError reports two source documents resolving to the same route.
type RouteConflictError struct {
	Route      string
	FirstPath  string
	SecondPath string
}

func (e *RouteConflictError) Error() string {
	return fmt.Sprintf("content: duplicate route %q derived from %s and %s", e.Route, e.FirstPath, e.SecondPath)
}

// Is lets callers match the sentinel via errors.Is.
func (e *RouteConflictError) Is(target error) bool {
	return target == ErrRouteConflict
}
