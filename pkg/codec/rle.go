package codec

import (
	"bytes"
	"fmt"
)

// maxRun is the largest run length representable in one count byte.
const maxRun = 255

// RLECodec implements run-length encoding. Each run of identical bytes
// becomes a (value, count) pair; runs longer than 255 bytes split into
// multiple pairs.
type RLECodec struct{}

// Encode compresses data into (value, count) pairs.
func (c *RLECodec) Encode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}

	encoded := make([]byte, 0, 2*len(data))
	current := data[0]
	count := 1
	for _, b := range data[1:] {
		if b == current && count < maxRun {
			count++
			continue
		}
		encoded = append(encoded, current, byte(count))
		current = b
		count = 1
	}
	encoded = append(encoded, current, byte(count))

	return encoded, nil
}

// Decode expands (value, count) pairs back into the original bytes.
// A dangling value byte or a zero count marks the stream as corrupt.
func (c *RLECodec) Decode(data []byte) ([]byte, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%w: odd input length %d", ErrMalformedStream, len(data))
	}

	decoded := make([]byte, 0, len(data))
	for i := 0; i < len(data); i += 2 {
		value, count := data[i], data[i+1]
		if count == 0 {
			return nil, fmt.Errorf("%w: zero run count at offset %d", ErrMalformedStream, i+1)
		}
		decoded = append(decoded, bytes.Repeat([]byte{value}, int(count))...)
	}

	return decoded, nil
}

// Ratio returns a static heuristic for run-heavy input. Worst-case RLE
// output is twice the input size.
func (c *RLECodec) Ratio() float64 {
	return 1.5
}
