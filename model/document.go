package model

// StartIndexKey is the metadata key under which a chunk's offset into its
// source text is stored when start-index tracking is enabled.
const StartIndexKey = "start_index"

// Document represents a piece of text with associated metadata.
type Document struct {
	// PageContent is the text content of the document.
	PageContent string

	// Metadata holds arbitrary key/value annotations. Each Document owns
	// its metadata map; Documents derived from the same source never
	// share one.
	Metadata map[string]any
}

// NewDocument creates a document with an empty metadata map.
func NewDocument(content string) Document {
	return Document{
		PageContent: content,
		Metadata:    make(map[string]any),
	}
}

// CloneMetadata returns a deep copy of a metadata map. Nested maps and
// slices are copied recursively, so mutating the clone cannot affect the
// original. A nil input yields an empty, non-nil map.
func CloneMetadata(metadata map[string]any) map[string]any {
	cloned := make(map[string]any, len(metadata))
	for k, v := range metadata {
		cloned[k] = cloneValue(v)
	}
	return cloned
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		nested := make(map[string]any, len(val))
		for k, item := range val {
			nested[k] = cloneValue(item)
		}
		return nested
	case []any:
		nested := make([]any, len(val))
		for i, item := range val {
			nested[i] = cloneValue(item)
		}
		return nested
	case []string:
		nested := make([]string, len(val))
		copy(nested, val)
		return nested
	default:
		// Scalars (and anything else) are copied by value.
		return val
	}
}
