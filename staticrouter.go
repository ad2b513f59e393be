// Package staticrouter registers filesystem content as routes on a host web
// application. Markdown documents with frontmatter are discovered under a
// content directory, rendered to HTML at load time, and served one route per
// document through the host's template engine with `page` and `router`
// bindings in the render context.
package staticrouter

import (
	"context"
	"sort"
	"strings"
	"sync"

	router "github.com/goliatone/go-router"

	"github.com/goliatone/go-static-router/internal/content"
	"github.com/goliatone/go-static-router/internal/logging"
	"github.com/goliatone/go-static-router/internal/logging/gologger"
	"github.com/goliatone/go-static-router/pkg/interfaces"
)

// ContentLoader exports the loader contract for consumers of the package.
type ContentLoader = interfaces.ContentLoader

// Page exports the page model.
type Page = interfaces.Page

// FrontMatter exports the page metadata model.
type FrontMatter = interfaces.FrontMatter

// StaticLoader exports the filesystem loader so hosts can construct one
// directly when they need an fs.FS override.
type StaticLoader = content.StaticLoader

// LoaderConfig exports the filesystem loader configuration.
type LoaderConfig = content.LoaderConfig

// Router holds the loaded page set and serves it through a go-router
// Context. The page set is immutable between reloads; Reload swaps it
// atomically so in-flight requests always observe a consistent snapshot.
type Router struct {
	cfg      Config
	loader   interfaces.ContentLoader
	provider interfaces.LoggerProvider
	logger   interfaces.Logger

	mu      sync.RWMutex
	pages   map[string]*interfaces.Page
	ordered []*interfaces.Page

	watcher *watcher
}

// Option customises Router construction.
type Option func(*Router)

// WithLoader replaces the default filesystem loader with a custom content
// source. When set, Config.Content.Dir is not required.
func WithLoader(loader interfaces.ContentLoader) Option {
	return func(r *Router) {
		r.loader = loader
	}
}

// WithLoggerProvider overrides the logging provider derived from
// Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(r *Router) {
		r.provider = provider
	}
}

// New builds a Router from the supplied configuration and performs the
// initial content load. Construction fails on invalid configuration, an
// unreadable content directory, or content errors (missing frontmatter,
// duplicate routes). When Config.Watch.Enabled is set the content watcher
// starts immediately; StopWatch ends it.
func New(cfg Config, opts ...Option) (*Router, error) {
	r := &Router{cfg: cfg}

	for _, opt := range opts {
		opt(r)
	}

	if err := validateConfig(cfg, r.loader != nil); err != nil {
		return nil, err
	}

	if r.provider == nil {
		provider, err := loggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		r.provider = provider
	}
	r.logger = logging.RouterLogger(r.provider)

	if r.loader == nil {
		loader, err := content.NewStaticLoader(content.LoaderConfig{
			BasePath:           cfg.Content.Dir,
			Pattern:            cfg.Content.Pattern,
			Recursive:          cfg.Content.Recursive,
			IncludeDrafts:      cfg.Content.IncludeDrafts,
			RequireFrontMatter: cfg.Content.RequireFrontMatter,
			Parser:             cfg.Markdown.ParseOptions(),
		}, nil)
		if err != nil {
			return nil, err
		}
		r.loader = loader
	}

	if err := r.Reload(context.Background()); err != nil {
		return nil, err
	}

	if cfg.Watch.Enabled {
		if err := r.Watch(context.Background()); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// validateConfig runs the configuration checks. A custom loader replaces
// filesystem discovery, so only the content section is waived for it; every
// other section still validates.
func validateConfig(cfg Config, customLoader bool) error {
	if !customLoader {
		return cfg.Validate()
	}
	if err := cfg.Render.Validate(); err != nil {
		return err
	}
	if err := cfg.Watch.Validate(); err != nil {
		return err
	}
	return cfg.Logging.Validate()
}

// Register mounts one GET route per loaded page on the supplied go-router
// router. Registration only mutates the host's routing table; the page set
// stays owned by sr, so registering the same Router against two apps keeps
// their routing tables independent.
func Register[T any](r router.Router[T], sr *Router) error {
	if sr == nil {
		return ErrRouterRequired
	}

	pages := sr.Pages()
	for _, page := range pages {
		r.Get(page.Route, sr.pageHandler)
	}

	sr.logger.Info("registered static routes", "count", len(pages))
	return nil
}

// Mount is the one-call entry point: it builds a Router from cfg and
// registers every page on the host application.
func Mount[T any](r router.Router[T], cfg Config, opts ...Option) (*Router, error) {
	sr, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	if err := Register(r, sr); err != nil {
		return nil, err
	}
	return sr, nil
}

// Reload re-runs the content loader and swaps the page set atomically.
// Routes already registered on a host keep serving; documents added since
// registration become reachable on the next Register call.
func (r *Router) Reload(ctx context.Context) error {
	loaded, err := r.loader.Load(ctx)
	if err != nil {
		return wrapLoadError(err)
	}

	pages := make(map[string]*interfaces.Page, len(loaded))
	for _, page := range loaded {
		pages[page.Route] = page
	}

	r.mu.Lock()
	r.pages = pages
	r.ordered = loaded
	r.mu.Unlock()

	r.logger.Debug("content loaded", "pages", len(loaded))
	return nil
}

// Pages returns the loaded pages ordered by source path. The slice is a
// copy; the pages themselves are shared and must be treated as read-only.
func (r *Router) Pages() []*interfaces.Page {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*interfaces.Page(nil), r.ordered...)
}

// Page returns the page served at route, normalizing missing slashes.
func (r *Router) Page(route string) (*interfaces.Page, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	page, ok := r.pages[normalizeRoute(route)]
	return page, ok
}

// Routes returns every registered route in sorted order.
func (r *Router) Routes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	routes := make([]string, 0, len(r.pages))
	for route := range r.pages {
		routes = append(routes, route)
	}
	sort.Strings(routes)
	return routes
}

// pageHandler serves a single page through the host's view engine. The
// render context carries the page, the router itself, and the request path.
func (r *Router) pageHandler(ctx router.Context) error {
	path := normalizeRoute(ctx.Path())

	page, ok := r.Page(path)
	if !ok {
		r.logger.Warn("page not found", "path", path)
		return notFoundError(path)
	}

	name := page.Template(r.cfg.Render.DefaultTemplate)

	if err := ctx.Render(name, map[string]any{
		"page":    page,
		"router":  r,
		"routes":  r.Routes(),
		"content": page.Content(),
		"path":    path,
	}); err != nil {
		return wrapRenderError(err, page.Route, name)
	}
	return nil
}

func normalizeRoute(route string) string {
	route = strings.TrimSpace(route)
	if route == "" || route == "/" {
		return "/"
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	if !strings.HasSuffix(route, "/") {
		route += "/"
	}
	return route
}

func loggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	default:
		return logging.NoOpProvider(), nil
	}
}
