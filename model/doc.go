// Package model defines the data types shared across the segmenta library.
//
// The central type is [Document]: a piece of text paired with a metadata
// map. Splitting produces one Document per chunk, and every Document owns
// its metadata independently, so callers can annotate one chunk without
// affecting its siblings.
package model
