package core

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"rlar/pkg/codec"
	"rlar/pkg/progress"
)

// Archiver creates and extracts archives with a codec chosen at
// construction. It holds no state beyond that choice; every operation
// is self-contained and idempotent.
type Archiver struct {
	kind  codec.Kind
	codec codec.Codec
}

// New returns an Archiver using the given codec kind. Unknown kinds
// fail here, before any file I/O happens.
func New(kind codec.Kind) (*Archiver, error) {
	c, err := codec.New(kind)
	if err != nil {
		return nil, err
	}
	return &Archiver{kind: kind, codec: c}, nil
}

// Create reads every input file, encodes it, and writes all entries
// into a single archive at outputPath. Serialization happens once,
// after all inputs are encoded, and the file is written atomically;
// any input error aborts the operation with nothing written.
func (a *Archiver) Create(outputPath string, inputs []string) error {
	for _, input := range inputs {
		if !fileExists(input) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, input)
		}
	}

	progress.Init(totalInputSize(inputs))
	defer progress.Stop()

	archive := &Archive{}
	for _, input := range inputs {
		data, err := readFile(input)
		if err != nil {
			return err
		}
		payload, err := a.codec.Encode(data)
		if err != nil {
			return fmt.Errorf("encode %s: %w", input, err)
		}
		progress.AddBytes(uint64(len(data)))

		log.Info().
			Str("file", input).
			Str("codec", a.kind.String()).
			Int("original", len(data)).
			Int("stored", len(payload)).
			Float64("ratio", achievedRatio(len(data), len(payload))).
			Msg("encoded entry")

		archive.Entries = append(archive.Entries, Entry{
			Name:         input,
			OriginalSize: uint64(len(data)),
			Codec:        a.kind,
			Payload:      payload,
		})
	}

	var buf bytes.Buffer
	if err := WriteArchive(&buf, archive); err != nil {
		return err
	}
	if err := writeFileAtomic(outputPath, buf.Bytes()); err != nil {
		return err
	}

	log.Info().
		Str("archive", outputPath).
		Int("entries", len(archive.Entries)).
		Int("size", buf.Len()).
		Msg("archive created")
	return nil
}

// Extract deserializes the archive at inputPath and writes each entry,
// in stored order, under outputDir. Decoding uses the codec tag stored
// with the entry, not the Archiver's constructed codec, so mixed-codec
// archives extract correctly. Extraction stops at the first failing
// entry; files already written stay on disk.
func (a *Archiver) Extract(inputPath, outputDir string) error {
	archive, err := List(inputPath)
	if err != nil {
		return err
	}

	var totalSize uint64
	for i := range archive.Entries {
		totalSize += archive.Entries[i].OriginalSize
	}
	progress.Init(totalSize)
	defer progress.Stop()

	for i := range archive.Entries {
		entry := &archive.Entries[i]
		c, err := codec.New(entry.Codec)
		if err != nil {
			return fmt.Errorf("entry %q: %w", entry.Name, err)
		}
		decoded, err := c.Decode(entry.Payload)
		if err != nil {
			return fmt.Errorf("decode %q: %w", entry.Name, err)
		}
		if uint64(len(decoded)) != entry.OriginalSize {
			return fmt.Errorf("%w: %q decoded to %d bytes, expected %d",
				ErrIntegrityMismatch, entry.Name, len(decoded), entry.OriginalSize)
		}

		destPath := filepath.Join(outputDir, entry.Name)
		if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
			return fmt.Errorf("create dir for %s: %w", destPath, err)
		}
		if err := writeFile(destPath, decoded); err != nil {
			return err
		}
		progress.AddBytes(uint64(len(decoded)))

		log.Info().
			Str("file", destPath).
			Str("codec", entry.Codec.String()).
			Int("size", len(decoded)).
			Msg("extracted entry")
	}

	log.Info().
		Str("archive", inputPath).
		Int("entries", len(archive.Entries)).
		Msg("archive extracted")
	return nil
}

// List reads and parses the archive at inputPath without extracting
// anything.
func List(inputPath string) (*Archive, error) {
	data, err := readFile(inputPath)
	if err != nil {
		return nil, err
	}
	return ReadArchive(bytes.NewReader(data))
}

// totalInputSize sums input sizes for progress reporting.
func totalInputSize(inputs []string) uint64 {
	var total uint64
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			continue
		}
		total += uint64(info.Size())
	}
	return total
}

// achievedRatio is the real input/output ratio observed for one entry,
// as opposed to the codec's static estimate.
func achievedRatio(original, stored int) float64 {
	if stored == 0 {
		return 1
	}
	return float64(original) / float64(stored)
}
