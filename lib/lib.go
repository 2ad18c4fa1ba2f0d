// Package lib exposes the archiver as an embeddable library,
// re-exporting the core package's types and operations.
package lib

import (
	"rlar/pkg/codec"
	"rlar/pkg/core"
)

// Constants for the archive format re-exported from core
const (
	Magic   = core.Magic   // Magic bytes identifying the archive
	Version = core.Version // Archive format version
)

// Re-exported types
type (
	Archive = core.Archive
	Entry   = core.Entry
	Kind    = codec.Kind
)

// Supported codec kinds
const (
	RLE = codec.RLE
	LZ4 = codec.LZ4
)

// CreateArchive compresses inputs into a single archive at outputPath
// using the given codec kind.
func CreateArchive(kind Kind, outputPath string, inputs []string) error {
	a, err := core.New(kind)
	if err != nil {
		return err
	}
	return a.Create(outputPath, inputs)
}

// ExtractArchive expands the archive at inputPath into outputDir. Each
// entry is decoded with the codec recorded in the archive.
func ExtractArchive(inputPath, outputDir string) error {
	a, err := core.New(codec.RLE)
	if err != nil {
		return err
	}
	return a.Extract(inputPath, outputDir)
}

// ListArchive returns the entries of the archive at inputPath without
// extracting anything.
func ListArchive(inputPath string) (*Archive, error) {
	return core.List(inputPath)
}
