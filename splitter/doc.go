// Package splitter implements recursive, separator-driven text chunking for
// RAG (Retrieval-Augmented Generation) workflows.
//
// The splitter breaks long-form text (markdown or HTML source) into
// bounded-size, overlapping chunks suitable for embedding and indexing. It
// works through a hierarchy of separators, trying the most structurally
// significant pattern first and falling back to finer ones — down to
// individual characters — whenever a piece of text is still too large.
//
// # Basic usage
//
//	s, err := splitter.NewForFormat(splitter.FormatMarkdown, splitter.DefaultConfig())
//	if err != nil {
//	    // handle error
//	}
//	chunks, warnings := s.SplitText(text)
//
// # Configuration
//
// Use [Config] to control chunking behavior:
//
//   - ChunkSize - target chunk length, in LengthFunc units
//   - ChunkOverlap - trailing content retained between consecutive chunks
//   - Separators - ordered separator patterns, most significant first
//   - KeepSeparator - retain delimiter text in the output fragments
//
// # Size is a soft bound
//
// ChunkSize is a target, not a guarantee. A fragment that no remaining
// separator can reduce is emitted whole, even when it exceeds ChunkSize.
// Such chunks are reported as [Warning] values alongside the result rather
// than through a process-wide log sink; downstream consumers must tolerate
// them.
//
// # Documents
//
// [Splitter.CreateDocuments] and [Splitter.SplitDocuments] wrap each chunk
// in a [model.Document] with independently owned (deep-copied) metadata,
// optionally recording each chunk's offset into the source text.
//
// The splitter holds no state between calls: a single Splitter may be used
// from multiple goroutines concurrently.
package splitter
