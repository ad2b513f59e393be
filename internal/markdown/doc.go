// Package markdown converts Markdown sources into metadata and HTML. It
// pairs a frontmatter extractor with a goldmark-backed parser; the content
// loader composes both when it turns files into pages.
package markdown
