package splitter

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// LengthFunc measures the length of a piece of text. The default counts
// runes, so multi-byte characters count once.
type LengthFunc func(string) int

// RuneLength is the default LengthFunc. It returns the number of runes in
// the text.
func RuneLength(text string) int {
	return utf8.RuneCountInString(text)
}

// Config holds configuration options for a Splitter.
type Config struct {
	// ChunkSize is the target chunk length, in LengthFunc units.
	// Must be greater than zero. This is a soft bound: an atomic
	// fragment that cannot be reduced further is emitted whole.
	// Default: 1000
	ChunkSize int

	// ChunkOverlap is the amount of trailing content from one chunk
	// retained at the start of the next, to preserve context across
	// chunk boundaries. Must not exceed ChunkSize. Overlap retention is
	// best-effort, not an exact character count.
	// Default: 50
	ChunkOverlap int

	// LengthFunc measures fragment and chunk lengths.
	// Default: RuneLength
	LengthFunc LengthFunc

	// KeepSeparator retains the delimiter text in the output: each
	// matched separator stays attached to the fragment that follows it.
	// Default: true
	KeepSeparator bool

	// AddStartIndex records each chunk's offset into the source text
	// under the "start_index" metadata key when creating documents.
	// The offset is a byte index into the original, unstripped text.
	// Default: false
	AddStartIndex bool

	// StripWhitespace trims leading and trailing whitespace from every
	// produced chunk. A chunk that becomes empty after trimming is
	// dropped.
	// Default: true
	StripWhitespace bool

	// Separators is the separator priority list, tried most significant
	// first. The conventional final entry is the empty string, which
	// splits into individual characters and always matches.
	// Default: ["\n\n", "\n", " ", ""]
	Separators []string

	// IsSeparatorRegex treats each separator as a regular expression
	// instead of a literal string.
	// Default: false
	IsSeparatorRegex bool
}

// DefaultConfig returns the default splitter configuration.
func DefaultConfig() Config {
	return Config{
		ChunkSize:        1000,
		ChunkOverlap:     50,
		LengthFunc:       RuneLength,
		KeepSeparator:    true,
		AddStartIndex:    false,
		StripWhitespace:  true,
		Separators:       []string{"\n\n", "\n", " ", ""},
		IsSeparatorRegex: false,
	}
}

// Splitter splits text into bounded-size, overlapping chunks by recursively
// working through a separator hierarchy. A Splitter is immutable once
// constructed and safe for concurrent use.
type Splitter struct {
	config Config
}

// New creates a splitter with the default configuration.
func New() *Splitter {
	return &Splitter{config: DefaultConfig()}
}

// NewWithConfig creates a splitter with custom configuration. Zero-value
// LengthFunc and Separators fields fall back to their defaults. It returns
// an error if ChunkSize is not positive, if ChunkOverlap is negative or
// larger than ChunkSize, or if IsSeparatorRegex is set and a separator does
// not compile.
func NewWithConfig(config Config) (*Splitter, error) {
	if config.ChunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be greater than zero, got %d", config.ChunkSize)
	}
	if config.ChunkOverlap < 0 {
		return nil, fmt.Errorf("chunk overlap cannot be negative, got %d", config.ChunkOverlap)
	}
	if config.ChunkOverlap > config.ChunkSize {
		return nil, fmt.Errorf("chunk overlap (%d) cannot be larger than chunk size (%d)",
			config.ChunkOverlap, config.ChunkSize)
	}
	if config.LengthFunc == nil {
		config.LengthFunc = RuneLength
	}
	if config.Separators == nil {
		config.Separators = DefaultConfig().Separators
	}
	if config.IsSeparatorRegex {
		for _, sep := range config.Separators {
			if _, err := regexp.Compile(sep); err != nil {
				return nil, fmt.Errorf("separator %q is not a valid regular expression: %w", sep, err)
			}
		}
	}
	return &Splitter{config: config}, nil
}

// NewForFormat creates a splitter whose separators are the profile for the
// given format. The profile patterns are regular expressions, so the
// Separators and IsSeparatorRegex fields of config are overridden. All
// other fields are respected.
func NewForFormat(f Format, config Config) (*Splitter, error) {
	separators, err := Separators(f)
	if err != nil {
		return nil, err
	}
	config.Separators = separators
	config.IsSeparatorRegex = true
	return NewWithConfig(config)
}

// Config returns a copy of the splitter's configuration.
func (s *Splitter) Config() Config {
	return s.config
}

// SplitText splits text into chunks. The returned warnings report chunks
// that exceeded ChunkSize because no separator could reduce them further or
// because overlap retention forced it; such chunks are still included in
// the result. Empty input yields no chunks.
func (s *Splitter) SplitText(text string) ([]string, []Warning) {
	var warnings []Warning
	chunks := s.splitRecursive(text, s.config.Separators, &warnings)
	return chunks, warnings
}

// splitRecursive narrows text down to fragments small enough to merge,
// falling back to finer separators when a fragment is still oversized.
func (s *Splitter) splitRecursive(text string, separators []string, warnings *[]Warning) []string {
	var chunks []string

	// Pick the first separator that occurs in the text. The remaining,
	// lower-priority separators become the recursion tail. When nothing
	// matches, the last entry is the fallback.
	separator := separators[len(separators)-1]
	var tail []string
	for i, sep := range separators {
		if sep == "" {
			separator = sep
			break
		}
		if s.pattern(sep).MatchString(text) {
			separator = sep
			tail = separators[i+1:]
			break
		}
	}

	fragments := s.splitOnSeparator(text, separator)

	// When the delimiter text is kept on the fragments, merging must not
	// insert it a second time.
	mergeSeparator := separator
	if s.config.KeepSeparator {
		mergeSeparator = ""
	}

	// Walk the fragments, buffering a run of small ones. An oversized
	// fragment breaks the run: the buffer is flushed through the merger,
	// then the fragment either recurses on the tail or, when no finer
	// separator remains, is emitted as-is.
	var run []string
	for _, fragment := range fragments {
		if s.config.LengthFunc(fragment) < s.config.ChunkSize {
			run = append(run, fragment)
			continue
		}
		if len(run) > 0 {
			chunks = append(chunks, s.mergeFragments(run, mergeSeparator, warnings)...)
			run = nil
		}
		if len(tail) == 0 {
			// Irreducible: no finer separator remains. The fragment is
			// emitted whole, past the bound, and reported.
			*warnings = append(*warnings, Warning{Size: s.config.LengthFunc(fragment), Limit: s.config.ChunkSize})
			chunks = append(chunks, fragment)
		} else {
			chunks = append(chunks, s.splitRecursive(fragment, tail, warnings)...)
		}
	}
	if len(run) > 0 {
		chunks = append(chunks, s.mergeFragments(run, mergeSeparator, warnings)...)
	}

	return chunks
}

// pattern compiles a separator, quoting it first unless separators are
// regular expressions. Compilation cannot fail here: regex separators are
// validated at construction and quoted literals always compile.
func (s *Splitter) pattern(separator string) *regexp.Regexp {
	if !s.config.IsSeparatorRegex {
		return regexp.MustCompile(regexp.QuoteMeta(separator))
	}
	return regexp.MustCompile(separator)
}

// splitOnSeparator splits text on one separator pattern. The empty
// separator degenerates to a character-level split. Empty fragments are
// discarded.
func (s *Splitter) splitOnSeparator(text, separator string) []string {
	if separator == "" {
		fragments := make([]string, 0, utf8.RuneCountInString(text))
		for _, r := range text {
			fragments = append(fragments, string(r))
		}
		return fragments
	}

	re := s.pattern(separator)
	if !s.config.KeepSeparator {
		return dropEmpty(re.Split(text, -1))
	}

	// Keep each matched delimiter attached to the fragment that follows
	// it, so a heading marker stays with its section.
	matches := re.FindAllStringIndex(text, -1)
	if matches == nil {
		return dropEmpty([]string{text})
	}
	fragments := make([]string, 0, len(matches)+1)
	fragments = append(fragments, text[:matches[0][0]])
	for i, match := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		fragments = append(fragments, text[match[0]:end])
	}
	return dropEmpty(fragments)
}

func dropEmpty(fragments []string) []string {
	kept := fragments[:0]
	for _, fragment := range fragments {
		if fragment != "" {
			kept = append(kept, fragment)
		}
	}
	return kept
}
