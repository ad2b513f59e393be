// Package content discovers Markdown documents on a filesystem and turns
// them into routable pages. The StaticLoader is the default
// interfaces.ContentLoader implementation used by the router.
package content

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-static-router/internal/identity"
	"github.com/goliatone/go-static-router/internal/markdown"
	"github.com/goliatone/go-static-router/pkg/interfaces"
)

// LoaderConfig configures how documents are discovered within a base directory.
// Validate reports malformed inputs before any filesystem access happens.
type LoaderConfig struct {
	// BasePath is the root directory where Markdown documents live.
	BasePath string
	// Pattern limits discovered files to those matching the supplied glob
	// (defaults to "*.md"). A pattern without separators matches file names
	// anywhere in the tree; with separators it matches the path relative to
	// BasePath, where a "**" segment spans any number of directories.
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
	// IncludeDrafts keeps documents marked draft: true in the page set.
	IncludeDrafts bool
	// RequireFrontMatter makes documents without a frontmatter block an error
	// instead of producing a page with empty metadata.
	RequireFrontMatter bool
	// Parser carries the Markdown render options applied at load time.
	Parser interfaces.ParseOptions
}

// Validate checks the discovery inputs are well-formed.
func (c LoaderConfig) Validate() error {
	errs := validation.Errors{}

	if pattern := strings.TrimSpace(c.Pattern); pattern != "" {
		for _, segment := range strings.Split(filepath.ToSlash(pattern), "/") {
			if segment == "**" {
				continue
			}
			if _, err := path.Match(segment, "probe.md"); err != nil {
				errs["pattern"] = validation.NewError("staticrouter.content.pattern_invalid", "pattern must be a valid glob expression")
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// StaticLoader walks a filesystem and produces one page per matching document.
type StaticLoader struct {
	fs                 fs.FS
	parser             interfaces.MarkdownParser
	pattern            string
	recursive          bool
	includeDrafts      bool
	requireFrontMatter bool
	parserOpts         interfaces.ParseOptions
}

// NewStaticLoader constructs a loader rooted at cfg.BasePath on the host
// filesystem. When parser is nil a goldmark parser with cfg.Parser defaults
// is created.
func NewStaticLoader(cfg LoaderConfig, parser interfaces.MarkdownParser) (*StaticLoader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := strings.TrimSpace(cfg.BasePath)
	if base == "" {
		return nil, ErrBasePathRequired
	}

	info, err := os.Stat(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBasePathInvalid, base, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrBasePathInvalid, base)
	}

	return NewStaticLoaderFS(os.DirFS(base), cfg, parser), nil
}

// NewStaticLoaderFS constructs a loader over an arbitrary fs.FS, which keeps
// embedded content and test fixtures first-class.
func NewStaticLoaderFS(filesystem fs.FS, cfg LoaderConfig, parser interfaces.MarkdownParser) *StaticLoader {
	pattern := strings.TrimSpace(cfg.Pattern)
	if pattern == "" {
		pattern = "*.md"
	}

	if parser == nil {
		parser = markdown.NewGoldmarkParser(cfg.Parser)
	}

	return &StaticLoader{
		fs:                 filesystem,
		parser:             parser,
		pattern:            pattern,
		recursive:          cfg.Recursive,
		includeDrafts:      cfg.IncludeDrafts,
		requireFrontMatter: cfg.RequireFrontMatter,
		parserOpts:         cfg.Parser,
	}
}

// Load implements interfaces.ContentLoader. Pages come back sorted by source
// path; duplicate derived routes fail the whole pass.
func (l *StaticLoader) Load(ctx context.Context) ([]*interfaces.Page, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var pages []*interfaces.Page
	seen := map[string]string{}

	walkErr := fs.WalkDir(l.fs, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() {
			if !l.recursive && path != "." {
				return fs.SkipDir
			}
			return nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		rel := filepath.ToSlash(path)
		if !l.matchesPattern(rel) {
			return nil
		}

		page, err := l.loadFile(rel)
		if err != nil {
			return err
		}
		if page == nil {
			// Draft filtered out.
			return nil
		}

		if first, exists := seen[page.Route]; exists {
			return &RouteConflictError{
				Route:      page.Route,
				FirstPath:  first,
				SecondPath: page.FilePath,
			}
		}
		seen[page.Route] = page.FilePath

		pages = append(pages, page)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Slice(pages, func(i, j int) bool {
		return pages[i].FilePath < pages[j].FilePath
	})

	return pages, nil
}

func (l *StaticLoader) loadFile(rel string) (*interfaces.Page, error) {
	data, err := fs.ReadFile(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("content loader read %s: %w", rel, err)
	}

	info, err := fs.Stat(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("content loader stat %s: %w", rel, err)
	}

	var fm interfaces.FrontMatter
	var body []byte
	if l.requireFrontMatter {
		fm, body, err = markdown.ParseFrontMatterStrict(data)
	} else {
		fm, body, err = markdown.ParseFrontMatter(data)
	}
	if err != nil {
		if errors.Is(err, markdown.ErrFrontMatterRequired) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFrontMatter, rel)
		}
		return nil, fmt.Errorf("content loader parse %s: %w", rel, err)
	}

	if fm.Draft && !l.includeDrafts {
		return nil, nil
	}

	route, err := RouteForPath(rel, fm)
	if err != nil {
		return nil, fmt.Errorf("content loader route %s: %w", rel, err)
	}

	html, err := l.parser.ParseWithOptions(body, l.parserOpts)
	if err != nil {
		return nil, fmt.Errorf("content loader render %s: %w", rel, err)
	}

	sum := sha256.Sum256(data)

	return &interfaces.Page{
		ID:           identity.PageUUID(route),
		Route:        route,
		FilePath:     rel,
		FrontMatter:  fm,
		Body:         body,
		HTML:         html,
		LastModified: info.ModTime(),
		Checksum:     sum[:],
	}, nil
}

// matchesPattern reports whether a relative slash-separated path matches the
// loader's glob. Patterns without a separator match the base name; patterns
// with separators match segment by segment, where a "**" segment spans any
// number of directories (including none).
func (l *StaticLoader) matchesPattern(rel string) bool {
	pattern := filepath.ToSlash(l.pattern)
	if !strings.Contains(pattern, "/") {
		match, err := path.Match(pattern, path.Base(rel))
		return err == nil && match
	}
	return matchSegments(strings.Split(pattern, "/"), strings.Split(rel, "/"))
}

func matchSegments(pattern, target []string) bool {
	if len(pattern) == 0 {
		return len(target) == 0
	}
	if pattern[0] == "**" {
		for i := 0; i <= len(target); i++ {
			if matchSegments(pattern[1:], target[i:]) {
				return true
			}
		}
		return false
	}
	if len(target) == 0 {
		return false
	}
	match, err := path.Match(pattern[0], target[0])
	if err != nil || !match {
		return false
	}
	return matchSegments(pattern[1:], target[1:])
}
