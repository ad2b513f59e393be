package content

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-static-router/pkg/interfaces"
)

// RouteForPath derives the route a document is served at from its source
// path relative to the content root.
//
// A file at blog/2021-01-01.md is served at /blog/2021-01-01/. The root
// index.md maps to / rather than /index/. Every path segment is normalized
// with the default slug rules, and a frontmatter slug overrides the final
// segment.
func RouteForPath(rel string, fm interfaces.FrontMatter) (string, error) {
	rel = strings.TrimPrefix(filepath.ToSlash(rel), "./")
	if strings.TrimSpace(rel) == "" {
		return "", ErrRouteInvalid
	}

	rel = strings.TrimSuffix(rel, path.Ext(rel))
	segments := strings.Split(rel, "/")

	if len(segments) == 1 && segments[0] == "index" && fm.Slug == "" {
		return "/", nil
	}

	out := make([]string, 0, len(segments))
	for i, segment := range segments {
		if i == len(segments)-1 && fm.Slug != "" {
			segment = fm.Slug
		}

		normalized, err := slug.Normalize(segment)
		if err != nil {
			return "", fmt.Errorf("%w: segment %q: %v", ErrRouteInvalid, segment, err)
		}
		if normalized == "" {
			return "", fmt.Errorf("%w: segment %q normalized to nothing", ErrRouteInvalid, segment)
		}
		out = append(out, normalized)
	}

	return "/" + strings.Join(out, "/") + "/", nil
}
