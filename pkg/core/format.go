package core

import (
	"encoding/binary"
	"fmt"
	"io"

	"rlar/pkg/codec"
)

// On-disk layout, all integers fixed-width little-endian:
//
//	magic (4 bytes) | version (u8) | entryCount (u32)
//
// followed by entryCount frames of:
//
//	nameLen (u16) | name | codecTag (u8) | originalSize (u64) |
//	payloadLen (u32) | payload

const (
	maxNameLen    = 1<<16 - 1
	maxPayloadLen = 1<<32 - 1
)

// WriteArchive serializes a into w in the on-disk container format.
func WriteArchive(w io.Writer, a *Archive) error {
	if _, err := w.Write([]byte(Magic)); err != nil {
		return fmt.Errorf("write magic: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint8(Version)); err != nil {
		return fmt.Errorf("write version: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(a.Entries))); err != nil {
		return fmt.Errorf("write entry count: %w", err)
	}
	for i := range a.Entries {
		if err := writeEntry(w, &a.Entries[i]); err != nil {
			return fmt.Errorf("write entry %d: %w", i, err)
		}
	}
	return nil
}

// writeEntry writes one self-describing entry frame.
func writeEntry(w io.Writer, e *Entry) error {
	name := []byte(e.Name)
	if len(name) > maxNameLen {
		return fmt.Errorf("name %q exceeds %d bytes", e.Name, maxNameLen)
	}
	if uint64(len(e.Payload)) > maxPayloadLen {
		return fmt.Errorf("payload of %q exceeds %d bytes", e.Name, uint64(maxPayloadLen))
	}

	if err := binary.Write(w, binary.LittleEndian, uint16(len(name))); err != nil {
		return fmt.Errorf("write name length: %w", err)
	}
	if _, err := w.Write(name); err != nil {
		return fmt.Errorf("write name: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, byte(e.Codec)); err != nil {
		return fmt.Errorf("write codec tag: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, e.OriginalSize); err != nil {
		return fmt.Errorf("write original size: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(e.Payload))); err != nil {
		return fmt.Errorf("write payload length: %w", err)
	}
	if _, err := w.Write(e.Payload); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	return nil
}

// ReadArchive deserializes an archive from r, validating the header and
// every entry frame. The archive is rejected whole on the first
// inconsistency; there is no partial repair.
func ReadArchive(r io.Reader) (*Archive, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, truncated("read magic", err)
	}
	if string(magic[:]) != Magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrUnsupportedFormat, string(magic[:]))
	}

	var version uint8
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, truncated("read version", err)
	}
	if version != Version {
		return nil, fmt.Errorf("%w: version %d", ErrUnsupportedFormat, version)
	}

	var entryCount uint32
	if err := binary.Read(r, binary.LittleEndian, &entryCount); err != nil {
		return nil, truncated("read entry count", err)
	}

	archive := &Archive{}
	for i := uint32(0); i < entryCount; i++ {
		entry, err := readEntry(r)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		archive.Entries = append(archive.Entries, *entry)
	}
	return archive, nil
}

// readEntry reads one entry frame. Short reads mean the declared lengths
// exceed the remaining stream and surface as ErrTruncatedArchive.
func readEntry(r io.Reader) (*Entry, error) {
	var nameLen uint16
	if err := binary.Read(r, binary.LittleEndian, &nameLen); err != nil {
		return nil, truncated("read name length", err)
	}
	name := make([]byte, nameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return nil, truncated("read name", err)
	}

	var tag uint8
	if err := binary.Read(r, binary.LittleEndian, &tag); err != nil {
		return nil, truncated("read codec tag", err)
	}
	if _, err := codec.New(codec.Kind(tag)); err != nil {
		return nil, err
	}

	var originalSize uint64
	if err := binary.Read(r, binary.LittleEndian, &originalSize); err != nil {
		return nil, truncated("read original size", err)
	}

	var payloadLen uint32
	if err := binary.Read(r, binary.LittleEndian, &payloadLen); err != nil {
		return nil, truncated("read payload length", err)
	}
	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, truncated("read payload", err)
	}

	return &Entry{
		Name:         string(name),
		OriginalSize: originalSize,
		Codec:        codec.Kind(tag),
		Payload:      payload,
	}, nil
}

// truncated maps short-read errors to ErrTruncatedArchive.
func truncated(op string, err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: %s", ErrTruncatedArchive, op)
	}
	return fmt.Errorf("%s: %w", op, err)
}
