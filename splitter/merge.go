package splitter

import "strings"

// mergeFragments folds an ordered run of small fragments into chunks
// bounded by ChunkSize, joining each window with separator and retaining a
// best-effort ChunkOverlap of trailing fragments between consecutive
// chunks.
//
// The eviction predicate deliberately mirrors the reference semantics:
// fragments are popped from the front while the running total still
// exceeds the overlap, or while the incoming fragment would still overflow
// the chunk. Downstream indexes may depend on today's exact chunk
// boundaries, so this predicate must not be "improved" in place.
func (s *Splitter) mergeFragments(fragments []string, separator string, warnings *[]Warning) []string {
	separatorLen := s.config.LengthFunc(separator)

	var chunks []string
	var buffer []string
	total := 0

	// gap is the separator cost of appending one more fragment to a
	// buffer currently holding n fragments.
	gap := func(n int) int {
		if n > 0 {
			return separatorLen
		}
		return 0
	}

	for _, fragment := range fragments {
		fragmentLen := s.config.LengthFunc(fragment)
		if total+fragmentLen+gap(len(buffer)) > s.config.ChunkSize {
			if total > s.config.ChunkSize {
				*warnings = append(*warnings, Warning{Size: total, Limit: s.config.ChunkSize})
			}
			if len(buffer) > 0 {
				if chunk, ok := s.joinFragments(buffer, separator); ok {
					chunks = append(chunks, chunk)
				}
				for total > s.config.ChunkOverlap ||
					(total+fragmentLen+gap(len(buffer)) > s.config.ChunkSize && total > 0) {
					evicted := s.config.LengthFunc(buffer[0])
					if len(buffer) > 1 {
						evicted += separatorLen
					}
					total -= evicted
					buffer = buffer[1:]
				}
			}
		}
		buffer = append(buffer, fragment)
		total += fragmentLen + gap(len(buffer)-1)
	}

	if chunk, ok := s.joinFragments(buffer, separator); ok {
		chunks = append(chunks, chunk)
	}
	return chunks
}

// joinFragments joins a window of fragments into one chunk. The second
// return value is false when the chunk is empty (or becomes empty after
// whitespace stripping) and should be dropped.
func (s *Splitter) joinFragments(fragments []string, separator string) (string, bool) {
	chunk := strings.Join(fragments, separator)
	if s.config.StripWhitespace {
		chunk = strings.TrimSpace(chunk)
	}
	if chunk == "" {
		return "", false
	}
	return chunk, true
}
