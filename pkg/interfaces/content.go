package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ContentLoader is the strategy contract for producing the pages a router
// serves. The filesystem loader in internal/content is the default
// implementation; hosts can supply their own source (embedded files, remote
// storage) as long as every returned page carries a unique route.
type ContentLoader interface {
	// Load discovers and parses every available page. Implementations must
	// return pages in a deterministic order and fail on duplicate routes.
	Load(ctx context.Context) ([]*Page, error)
}

// Page represents a single content unit: one source document mapped to one
// route. Pages are immutable once produced by a load pass; a reload produces
// a fresh set rather than mutating existing instances.
type Page struct {
	// ID is a deterministic identifier derived from the route, stable across
	// reloads and process restarts.
	ID uuid.UUID
	// Route is the path the page is served at (leading slash, trailing slash
	// except for the root route "/").
	Route string
	// FilePath is the source path relative to the content root.
	FilePath string
	// FrontMatter holds the parsed document metadata.
	FrontMatter FrontMatter
	// Body is the raw Markdown body without frontmatter delimiters.
	Body []byte
	// HTML is the rendered Markdown body.
	HTML []byte
	// LastModified mirrors the source file's modification time.
	LastModified time.Time
	// Checksum stores a SHA-256 digest of the original file content so
	// reload workflows can detect unchanged documents.
	Checksum []byte
}

// Template returns the template name the page asks for, or fallback when the
// frontmatter does not specify one.
func (p *Page) Template(fallback string) string {
	if p == nil || p.FrontMatter.Template == "" {
		return fallback
	}
	return p.FrontMatter.Template
}

// Content returns the rendered HTML body as a string for template use.
func (p *Page) Content() string {
	if p == nil {
		return ""
	}
	return string(p.HTML)
}

// Get looks up a frontmatter value by key, checking the merged Raw map so
// both well-known and custom keys resolve. Returns nil for unknown keys,
// which keeps template lookups forgiving.
func (p *Page) Get(key string) any {
	if p == nil {
		return nil
	}
	return p.FrontMatter.Raw[key]
}

// FrontMatter models metadata extracted from Markdown files. Well-known keys
// get typed fields while everything else lands in Custom; Raw merges both so
// templates can do uniform lookups.
type FrontMatter struct {
	Title    string         `yaml:"title" json:"title"`
	Slug     string         `yaml:"slug" json:"slug"`
	Summary  string         `yaml:"summary" json:"summary"`
	Status   string         `yaml:"status" json:"status"`
	Template string         `yaml:"template" json:"template"`
	Tags     []string       `yaml:"tags" json:"tags"`
	Author   string         `yaml:"author" json:"author"`
	Date     time.Time      `yaml:"date" json:"date"`
	Draft    bool           `yaml:"draft" json:"draft"`
	Custom   map[string]any `yaml:",inline" json:"custom"`
	Raw      map[string]any `yaml:"-" json:"raw"`
}
