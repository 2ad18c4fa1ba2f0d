package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4Codec compresses payloads as a single in-memory lz4 frame.
type LZ4Codec struct{}

// Encode compresses data into one lz4 frame.
func (c *LZ4Codec) Encode(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("write lz4 frame: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close lz4 writer: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode decompresses a single lz4 frame.
func (c *LZ4Codec) Decode(data []byte) ([]byte, error) {
	zr := lz4.NewReader(bytes.NewReader(data))
	decoded, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedStream, err)
	}
	return decoded, nil
}

// Ratio returns a static heuristic for general binary input.
func (c *LZ4Codec) Ratio() float64 {
	return 2.0
}
