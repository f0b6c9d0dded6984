package segmenta

import (
	"github.com/tsawler/segmenta/loader"
	"github.com/tsawler/segmenta/model"
	"github.com/tsawler/segmenta/splitter"
)

// Segmenter provides a fluent interface for configuring and running a
// split. Each chain method returns a new Segmenter, so partially
// configured values can be reused safely:
//
//	base := segmenta.FromString(text).Markdown()
//	coarse, _, _ := base.ChunkSize(2000).Chunks()
//	fine, _, _ := base.ChunkSize(200).Chunks()
type Segmenter struct {
	// Input: exactly one of these is set.
	text    string
	hasText bool
	path    string
	docs    []model.Document
	hasDocs bool

	// Configuration
	options splitOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Segmenter with a deep copy of
// options. This ensures immutability - each chain method returns a new
// instance.
func (g *Segmenter) clone() *Segmenter {
	return &Segmenter{
		text:    g.text,
		hasText: g.hasText,
		path:    g.path,
		docs:    g.docs,
		hasDocs: g.hasDocs,
		options: g.options.clone(),
		err:     g.err,
	}
}

// Format selects the separator profile for the given source format.
func (g *Segmenter) Format(f splitter.Format) *Segmenter {
	newSeg := g.clone()
	newSeg.options.hasFormat = true
	newSeg.options.format = f
	return newSeg
}

// Markdown selects the markdown separator profile. Shorthand for
// Format(splitter.FormatMarkdown).
func (g *Segmenter) Markdown() *Segmenter {
	return g.Format(splitter.FormatMarkdown)
}

// HTML selects the HTML separator profile. Shorthand for
// Format(splitter.FormatHTML).
func (g *Segmenter) HTML() *Segmenter {
	return g.Format(splitter.FormatHTML)
}

// ChunkSize sets the target chunk length, in length-function units.
func (g *Segmenter) ChunkSize(n int) *Segmenter {
	newSeg := g.clone()
	newSeg.options.chunkSize = n
	return newSeg
}

// ChunkOverlap sets the amount of trailing content retained between
// consecutive chunks.
func (g *Segmenter) ChunkOverlap(n int) *Segmenter {
	newSeg := g.clone()
	newSeg.options.chunkOverlap = n
	return newSeg
}

// KeepSeparator controls whether delimiter text is retained in the
// output.
func (g *Segmenter) KeepSeparator(keep bool) *Segmenter {
	newSeg := g.clone()
	newSeg.options.keepSeparator = keep
	return newSeg
}

// Separators overrides the separator priority list. This clears any
// format profile selected earlier in the chain.
func (g *Segmenter) Separators(separators []string) *Segmenter {
	newSeg := g.clone()
	newSeg.options.hasFormat = false
	newSeg.options.separators = make([]string, len(separators))
	copy(newSeg.options.separators, separators)
	return newSeg
}

// Regex treats the separator list set via Separators as regular
// expression patterns.
func (g *Segmenter) Regex() *Segmenter {
	newSeg := g.clone()
	newSeg.options.isRegex = true
	return newSeg
}

// AddStartIndex records each chunk's byte offset into its source text
// under the "start_index" metadata key.
func (g *Segmenter) AddStartIndex() *Segmenter {
	newSeg := g.clone()
	newSeg.options.addStartIndex = true
	return newSeg
}

// StripWhitespace controls whether chunk edges are trimmed.
func (g *Segmenter) StripWhitespace(strip bool) *Segmenter {
	newSeg := g.clone()
	newSeg.options.stripWhitespace = strip
	return newSeg
}

// LengthFunc sets the length measurement strategy. The default counts
// runes.
func (g *Segmenter) LengthFunc(fn splitter.LengthFunc) *Segmenter {
	newSeg := g.clone()
	newSeg.options.lengthFunc = fn
	return newSeg
}

// Metadata attaches key/value annotations to every produced document.
// The map is deep-copied per document, so documents never share it. For
// file sources it is merged over the loader's source metadata.
func (g *Segmenter) Metadata(metadata map[string]any) *Segmenter {
	newSeg := g.clone()
	newSeg.options.metadata = model.CloneMetadata(metadata)
	return newSeg
}

// Chunks runs the split and returns the chunk strings. Returns the
// chunks, any warnings encountered during processing, and an error if
// configuration or input loading failed. Warnings indicate non-fatal
// issues such as chunks that exceeded the configured size.
func (g *Segmenter) Chunks() ([]string, []Warning, error) {
	if g.err != nil {
		return nil, nil, g.err
	}

	if g.hasDocs {
		s, err := g.build(nil)
		if err != nil {
			return nil, nil, err
		}
		var chunks []string
		var warnings []Warning
		for _, doc := range g.docs {
			docChunks, docWarnings := s.SplitText(doc.PageContent)
			chunks = append(chunks, docChunks...)
			warnings = append(warnings, docWarnings...)
		}
		return chunks, warnings, nil
	}

	src, err := g.source()
	if err != nil {
		return nil, nil, err
	}
	s, err := g.build(src)
	if err != nil {
		return nil, nil, err
	}

	chunks, warnings := s.SplitText(src.Text)
	return chunks, warnings, nil
}

// Documents runs the split and wraps every chunk in a model.Document with
// independently owned metadata.
func (g *Segmenter) Documents() ([]model.Document, []Warning, error) {
	if g.err != nil {
		return nil, nil, g.err
	}

	if g.hasDocs {
		s, err := g.build(nil)
		if err != nil {
			return nil, nil, err
		}
		return s.SplitDocuments(g.annotated())
	}

	src, err := g.source()
	if err != nil {
		return nil, nil, err
	}
	s, err := g.build(src)
	if err != nil {
		return nil, nil, err
	}

	metadata := src.Metadata
	if g.options.metadata != nil {
		if metadata == nil {
			metadata = make(map[string]any)
		}
		for k, v := range g.options.metadata {
			metadata[k] = v
		}
	}

	var metadatas []map[string]any
	if metadata != nil {
		metadatas = []map[string]any{metadata}
	}
	return s.CreateDocuments([]string{src.Text}, metadatas)
}

// annotated returns the input documents with any chained Metadata merged
// over each document's own metadata. The inputs are never modified.
func (g *Segmenter) annotated() []model.Document {
	if g.options.metadata == nil {
		return g.docs
	}
	docs := make([]model.Document, len(g.docs))
	for i, doc := range g.docs {
		merged := model.CloneMetadata(doc.Metadata)
		for k, v := range g.options.metadata {
			merged[k] = v
		}
		docs[i] = model.Document{PageContent: doc.PageContent, Metadata: merged}
	}
	return docs
}

// source resolves the input into a loader.Source, reading the file for
// path-based inputs. String inputs carry no source metadata.
func (g *Segmenter) source() (*loader.Source, error) {
	if g.hasText {
		return &loader.Source{Text: g.text}, nil
	}
	return loader.Load(g.path)
}

// build constructs the splitter for the accumulated options. When neither
// a format profile nor an explicit separator list was chosen, a file
// source's detected format supplies the profile.
func (g *Segmenter) build(src *loader.Source) (*splitter.Splitter, error) {
	if g.options.hasFormat {
		return splitter.NewForFormat(g.options.format, g.options.config())
	}
	if g.options.separators == nil && src != nil && !g.hasText {
		return splitter.NewForFormat(src.Format, g.options.config())
	}
	return splitter.NewWithConfig(g.options.config())
}
