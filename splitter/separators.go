package splitter

import (
	"fmt"
	"strings"
)

// Format identifies a supported source text format. The format determines
// which separator profile the splitter uses.
type Format int

const (
	// FormatMarkdown splits along markdown structure: headings, code
	// fences, horizontal rules, then blank lines, lines, and words.
	FormatMarkdown Format = iota

	// FormatHTML splits raw HTML source along block-level tags, then
	// head-section tags.
	FormatHTML
)

// String returns the lowercase tag for the format.
func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatHTML:
		return "html"
	default:
		return "unknown"
	}
}

// SupportedFormats returns the tags of all supported formats.
func SupportedFormats() []string {
	return []string{FormatMarkdown.String(), FormatHTML.String()}
}

// UnsupportedFormatError is returned when a format tag is outside the
// supported set.
type UnsupportedFormatError struct {
	// Format is the rejected tag.
	Format string
}

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("format %q is not supported: choose from %s",
		e.Format, strings.Join(SupportedFormats(), ", "))
}

// ParseFormat converts a format tag into a Format. It returns an
// *UnsupportedFormatError for any tag outside the supported set.
func ParseFormat(tag string) (Format, error) {
	switch tag {
	case FormatMarkdown.String():
		return FormatMarkdown, nil
	case FormatHTML.String():
		return FormatHTML, nil
	default:
		return 0, &UnsupportedFormatError{Format: tag}
	}
}

// Separators returns the separator priority list for a format, most
// structurally significant pattern first. The final entry is always the
// empty string, which splits into individual characters and guarantees
// that recursion terminates. The returned patterns are regular
// expressions; pair them with Config.IsSeparatorRegex set to true, as
// [NewForFormat] does.
//
// The mapping is pure and stateless: it is safe to call concurrently, and
// callers may modify the returned slice.
func Separators(f Format) ([]string, error) {
	switch f {
	case FormatMarkdown:
		return []string{
			// Headings, level 1 through 6.
			"\n#{1,6} ",
			// End of a fenced code block.
			"```\n",
			// Horizontal rules: three or more of ***, ---, or ___.
			"\n\\*\\*\\*+\n",
			"\n---+\n",
			"\n___+\n",
			"\n\n",
			"\n",
			" ",
			"",
		}, nil
	case FormatHTML:
		return []string{
			// Block-level tags, in priority order.
			"<body",
			"<div",
			"<p",
			"<br",
			"<li",
			"<h1",
			"<h2",
			"<h3",
			"<h4",
			"<h5",
			"<h6",
			"<span",
			"<table",
			"<tr",
			"<td",
			"<th",
			"<ul",
			"<ol",
			"<header",
			"<footer",
			"<nav",
			// Head-section tags.
			"<head",
			"<style",
			"<script",
			"<meta",
			"<title",
			"",
		}, nil
	default:
		return nil, &UnsupportedFormatError{Format: f.String()}
	}
}
