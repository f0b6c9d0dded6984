package splitter

import (
	"fmt"
	"strings"

	"github.com/tsawler/segmenta/model"
)

// CreateDocuments splits each text and wraps every chunk in a
// model.Document. Metadata is paired with texts by position and deep-copied
// per chunk, so mutating one document's metadata never affects a sibling.
// A nil metadatas slice gives every text an empty metadata map; a non-nil
// slice must match texts in length.
//
// When AddStartIndex is enabled, each document's metadata records the
// chunk's byte offset into its original, unstripped source text under the
// "start_index" key. The search cursor only moves forward, so repeated
// identical chunks resolve to distinct offsets. A chunk that cannot be
// located (possible with exotic length functions) records -1.
func (s *Splitter) CreateDocuments(texts []string, metadatas []map[string]any) ([]model.Document, []Warning, error) {
	if metadatas != nil && len(metadatas) != len(texts) {
		return nil, nil, fmt.Errorf("got %d metadata maps for %d texts", len(metadatas), len(texts))
	}

	var documents []model.Document
	var warnings []Warning
	for i, text := range texts {
		chunks, chunkWarnings := s.SplitText(text)
		warnings = append(warnings, chunkWarnings...)

		index := -1
		for _, chunk := range chunks {
			var metadata map[string]any
			if metadatas != nil {
				metadata = model.CloneMetadata(metadatas[i])
			} else {
				metadata = make(map[string]any)
			}
			if s.config.AddStartIndex {
				index = findFrom(text, chunk, index+1)
				metadata[model.StartIndexKey] = index
			}
			documents = append(documents, model.Document{
				PageContent: chunk,
				Metadata:    metadata,
			})
		}
	}
	return documents, warnings, nil
}

// SplitDocuments splits the content of existing documents, carrying each
// source document's metadata over to the chunks derived from it.
func (s *Splitter) SplitDocuments(documents []model.Document) ([]model.Document, []Warning, error) {
	texts := make([]string, len(documents))
	metadatas := make([]map[string]any, len(documents))
	for i, doc := range documents {
		texts[i] = doc.PageContent
		metadatas[i] = doc.Metadata
	}
	return s.CreateDocuments(texts, metadatas)
}

// findFrom locates the first occurrence of chunk in text at or after the
// from position, returning -1 when absent.
func findFrom(text, chunk string, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(text) {
		return -1
	}
	i := strings.Index(text[from:], chunk)
	if i < 0 {
		return -1
	}
	return from + i
}
