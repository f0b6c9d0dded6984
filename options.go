package segmenta

import "github.com/tsawler/segmenta/splitter"

// splitOptions holds configuration accumulated by the fluent chain.
type splitOptions struct {
	chunkSize    int
	chunkOverlap int

	// Separator selection: a format profile, an explicit override list,
	// or the library default when neither is set.
	hasFormat  bool
	format     splitter.Format
	separators []string
	isRegex    bool

	keepSeparator   bool
	addStartIndex   bool
	stripWhitespace bool
	lengthFunc      splitter.LengthFunc

	// metadata is attached (deep-copied) to every produced document.
	metadata map[string]any
}

// defaultOptions returns options mirroring splitter.DefaultConfig.
func defaultOptions() splitOptions {
	config := splitter.DefaultConfig()
	return splitOptions{
		chunkSize:       config.ChunkSize,
		chunkOverlap:    config.ChunkOverlap,
		keepSeparator:   config.KeepSeparator,
		stripWhitespace: config.StripWhitespace,
		lengthFunc:      config.LengthFunc,
	}
}

// clone creates a deep copy of splitOptions.
func (o splitOptions) clone() splitOptions {
	newOpts := o

	if o.separators != nil {
		newOpts.separators = make([]string, len(o.separators))
		copy(newOpts.separators, o.separators)
	}
	if o.metadata != nil {
		newOpts.metadata = make(map[string]any, len(o.metadata))
		for k, v := range o.metadata {
			newOpts.metadata[k] = v
		}
	}

	return newOpts
}

// config assembles a splitter.Config from the accumulated options.
func (o splitOptions) config() splitter.Config {
	return splitter.Config{
		ChunkSize:        o.chunkSize,
		ChunkOverlap:     o.chunkOverlap,
		LengthFunc:       o.lengthFunc,
		KeepSeparator:    o.keepSeparator,
		AddStartIndex:    o.addStartIndex,
		StripWhitespace:  o.stripWhitespace,
		Separators:       o.separators,
		IsSeparatorRegex: o.isRegex,
	}
}
