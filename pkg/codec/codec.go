// Package codec provides the byte-stream codecs used for archive payloads.
//
// A codec is a stateless whole-buffer transform. Which codec produced a
// payload is recorded per entry in the archive container, so the decode
// side never has to guess.
package codec

import (
	"errors"
	"fmt"
)

// Kind is the one-byte tag identifying a codec in the archive format.
type Kind byte

const (
	RLE Kind = 0 // run-length encoding
	LZ4 Kind = 1 // lz4 frame compression
)

var (
	// ErrUnsupportedCodec is returned for a kind or name outside the
	// supported set.
	ErrUnsupportedCodec = errors.New("unsupported codec")

	// ErrMalformedStream is returned when decode input violates the
	// codec's framing.
	ErrMalformedStream = errors.New("malformed stream")
)

// Codec transforms whole byte buffers with no side effects.
type Codec interface {
	// Encode compresses data. Empty input encodes to empty output.
	Encode(data []byte) ([]byte, error)

	// Decode reverses Encode. It fails with ErrMalformedStream if the
	// input is not a valid encoded stream.
	Decode(data []byte) ([]byte, error)

	// Ratio is a static compression-ratio estimate for typical input.
	// It is informational only; achieved ratios depend on the data.
	Ratio() float64
}

// New returns the codec for the given kind, or ErrUnsupportedCodec.
func New(kind Kind) (Codec, error) {
	switch kind {
	case RLE:
		return &RLECodec{}, nil
	case LZ4:
		return &LZ4Codec{}, nil
	default:
		return nil, fmt.Errorf("%w: tag 0x%02x", ErrUnsupportedCodec, byte(kind))
	}
}

// ParseKind maps a codec name, as given on the command line, to its Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "rle":
		return RLE, nil
	case "lz4":
		return LZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCodec, name)
	}
}

// String returns the codec name for known kinds.
func (k Kind) String() string {
	switch k {
	case RLE:
		return "rle"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(0x%02x)", byte(k))
	}
}
