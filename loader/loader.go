package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/segmenta/splitter"
)

// Source is a loaded document ready for chunking.
type Source struct {
	// Text is the normalized document text. For HTML sources this is
	// still raw HTML: the HTML separator profile splits on tags.
	Text string

	// Format is the detected source format.
	Format splitter.Format

	// Metadata describes the source: its path and format tag, plus the
	// document title and meta tags for HTML sources.
	Metadata map[string]any
}

// Detect determines the source format from a filename extension. It
// returns an *splitter.UnsupportedFormatError for extensions outside the
// supported set.
func Detect(filename string) (splitter.Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown", ".mdown":
		return splitter.FormatMarkdown, nil
	case ".html", ".htm", ".xhtml":
		return splitter.FormatHTML, nil
	default:
		return 0, &splitter.UnsupportedFormatError{Format: strings.TrimPrefix(ext, ".")}
	}
}

// Load reads and prepares the file at path.
func Load(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return LoadReader(f, path)
}

// LoadReader prepares a source from an io.Reader. The name is used for
// format detection and recorded as the source path.
func LoadReader(r io.Reader, name string) (*Source, error) {
	format, err := Detect(name)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	source := &Source{
		Text:   normalize(string(data)),
		Format: format,
		Metadata: map[string]any{
			"source": name,
			"format": format.String(),
		},
	}

	if format == splitter.FormatHTML {
		for key, value := range extractHTMLMetadata(source.Text) {
			source.Metadata[key] = value
		}
	}

	return source, nil
}

// normalize canonicalizes text for stable chunk boundaries: Windows and
// old-Mac line endings become LF, and the text is normalized to Unicode
// NFC so visually identical strings compare equal.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return norm.NFC.String(text)
}
