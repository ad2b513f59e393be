package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-static-router/pkg/interfaces"
)

// ErrFrontMatterRequired is returned by ParseFrontMatterStrict when the
// document carries no frontmatter block.
var ErrFrontMatterRequired = errors.New("markdown: frontmatter is required")

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes. Documents without a frontmatter block yield an
// empty FrontMatter and the unchanged body.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	return parseFrontMatter(source, false)
}

// ParseFrontMatterStrict behaves like ParseFrontMatter but fails when the
// document carries no frontmatter block at all.
func ParseFrontMatterStrict(source []byte) (interfaces.FrontMatter, []byte, error) {
	return parseFrontMatter(source, true)
}

func parseFrontMatter(source []byte, required bool) (interfaces.FrontMatter, []byte, error) {
	if required && !hasFrontMatter(source) {
		return interfaces.FrontMatter{}, nil, ErrFrontMatterRequired
	}

	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return envelopeToFrontMatter(meta), body, nil
}

func hasFrontMatter(source []byte) bool {
	trimmed := bytes.TrimLeft(source, " \t\r\n")
	return bytes.HasPrefix(trimmed, []byte("---"))
}

type frontMatterEnvelope struct {
	Title    string         `yaml:"title"`
	Slug     string         `yaml:"slug"`
	Summary  string         `yaml:"summary"`
	Status   string         `yaml:"status"`
	Template string         `yaml:"template"`
	Tags     []string       `yaml:"tags"`
	Author   string         `yaml:"author"`
	Date     time.Time      `yaml:"date"`
	Draft    bool           `yaml:"draft"`
	Custom   map[string]any `yaml:",inline"`
}

func envelopeToFrontMatter(env frontMatterEnvelope) interfaces.FrontMatter {
	if env.Custom == nil {
		env.Custom = map[string]any{}
	}

	raw := make(map[string]any, len(env.Custom)+8)
	for key, value := range env.Custom {
		raw[key] = value
	}

	if env.Title != "" {
		raw["title"] = env.Title
	}
	if env.Slug != "" {
		raw["slug"] = env.Slug
	}
	if env.Summary != "" {
		raw["summary"] = env.Summary
	}
	if env.Status != "" {
		raw["status"] = env.Status
	}
	if env.Template != "" {
		raw["template"] = env.Template
	}
	if len(env.Tags) > 0 {
		raw["tags"] = append([]string(nil), env.Tags...)
	}
	if env.Author != "" {
		raw["author"] = env.Author
	}
	if !env.Date.IsZero() {
		raw["date"] = env.Date
	}
	raw["draft"] = env.Draft

	return interfaces.FrontMatter{
		Title:    env.Title,
		Slug:     env.Slug,
		Summary:  env.Summary,
		Status:   env.Status,
		Template: env.Template,
		Tags:     append([]string(nil), env.Tags...),
		Author:   env.Author,
		Date:     env.Date,
		Draft:    env.Draft,
		Custom:   cloneMap(env.Custom),
		Raw:      raw,
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
