// Package segmenta provides a fluent API for splitting markdown and HTML
// text into bounded-size, overlapping chunks for embedding and indexing.
//
// Basic usage:
//
//	chunks, warnings, err := segmenta.FromString(text).Markdown().Chunks()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", segmenta.FormatWarnings(warnings))
//	}
//
// With options:
//
//	docs, _, err := segmenta.FromFile("guide.md").
//	    ChunkSize(512).
//	    ChunkOverlap(64).
//	    AddStartIndex().
//	    Documents()
//
// For advanced use cases, the lower-level splitter package is also
// available.
package segmenta

import (
	"github.com/tsawler/segmenta/model"
	"github.com/tsawler/segmenta/splitter"
)

// Warning reports a chunk that exceeded the configured chunk size. See
// [splitter.Warning].
type Warning = splitter.Warning

// FormatWarnings formats a list of warnings as a single string, one
// warning per line.
func FormatWarnings(warnings []Warning) string {
	return splitter.FormatWarnings(warnings)
}

// FromString creates a Segmenter over a text string for fluent
// configuration.
//
// Example:
//
//	chunks, warnings, err := segmenta.FromString(text).Markdown().Chunks()
func FromString(text string) *Segmenter {
	return &Segmenter{
		text:    text,
		hasText: true,
		options: defaultOptions(),
	}
}

// FromFile creates a Segmenter over the file at path. The file is read,
// normalized, and format-detected when a terminal operation runs; its
// source metadata (path, format, and for HTML the title and meta tags) is
// carried onto every produced document.
//
// Example:
//
//	docs, _, err := segmenta.FromFile("notes.md").Documents()
func FromFile(path string) *Segmenter {
	return &Segmenter{
		path:    path,
		options: defaultOptions(),
	}
}

// FromDocuments creates a Segmenter that re-splits existing documents,
// carrying each source document's metadata onto the chunks derived from
// it.
func FromDocuments(docs []model.Document) *Segmenter {
	return &Segmenter{
		docs:    docs,
		hasDocs: true,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustChunks wraps a call to Chunks() and panics if the error is non-nil.
// It discards warnings and returns just the chunk list.
//
// Example:
//
//	chunks := segmenta.MustChunks(segmenta.FromString(text).Markdown().Chunks())
func MustChunks(chunks []string, _ []Warning, err error) []string {
	if err != nil {
		panic(err)
	}
	return chunks
}

// MustDocuments wraps a call to Documents() and panics if the error is
// non-nil. It discards warnings and returns just the document list.
func MustDocuments(docs []model.Document, _ []Warning, err error) []model.Document {
	if err != nil {
		panic(err)
	}
	return docs
}
