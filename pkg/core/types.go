package core

import "rlar/pkg/codec"

// Constants for the archive format
const (
	Magic   = "RLAR" // Magic bytes identifying the archive
	Version = 1      // Archive format version
)

// Entry is the in-memory form of one original file inside an archive.
type Entry struct {
	Name         string     // Relative path as supplied at creation time
	OriginalSize uint64     // Byte length before compression
	Codec        codec.Kind // Codec that produced Payload
	Payload      []byte     // Compressed bytes
}

// Archive is an ordered sequence of entries. Entry order equals the
// order inputs were supplied, and extraction writes files in that order.
type Archive struct {
	Entries []Entry
}
