package codec

import (
	"bytes"
	"errors"
	"testing"
)

// TestNewUnsupportedKind verifies construction fails for unknown tags
func TestNewUnsupportedKind(t *testing.T) {
	c, err := New(Kind(0x7f))
	if c != nil {
		t.Fatalf("Expected nil codec for unknown kind, got %T", c)
	}
	if !errors.Is(err, ErrUnsupportedCodec) {
		t.Fatalf("Expected ErrUnsupportedCodec, got %v", err)
	}
}

// TestParseKind verifies codec name resolution
func TestParseKind(t *testing.T) {
	if kind, err := ParseKind("rle"); err != nil || kind != RLE {
		t.Fatalf("ParseKind(rle) = %v, %v", kind, err)
	}
	if kind, err := ParseKind("lz4"); err != nil || kind != LZ4 {
		t.Fatalf("ParseKind(lz4) = %v, %v", kind, err)
	}
	if _, err := ParseKind("zip"); !errors.Is(err, ErrUnsupportedCodec) {
		t.Fatalf("Expected ErrUnsupportedCodec for zip, got %v", err)
	}
}

// TestRLEKnownVector checks the exact encoding of "AAAAABBBCC"
func TestRLEKnownVector(t *testing.T) {
	c := &RLECodec{}

	encoded, err := c.Encode([]byte("AAAAABBBCC"))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want := []byte{0x41, 0x05, 0x42, 0x03, 0x43, 0x02}
	if !bytes.Equal(encoded, want) {
		t.Fatalf("Encoded stream = %x, want %x", encoded, want)
	}

	decoded, err := c.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(decoded, []byte("AAAAABBBCC")) {
		t.Fatalf("Decoded = %q, want AAAAABBBCC", decoded)
	}
}

// TestRLERoundTrip exercises round trips across run-length boundaries
func TestRLERoundTrip(t *testing.T) {
	nonRepeating := make([]byte, 512)
	for i := range nonRepeating {
		nonRepeating[i] = byte(i)
	}

	cases := []struct {
		name       string
		input      []byte
		encodedLen int
	}{
		{"empty", []byte{}, 0},
		{"single byte", []byte{0xAB}, 2},
		{"run of 255", bytes.Repeat([]byte{0x00}, 255), 2},
		{"run of 256", bytes.Repeat([]byte{0x00}, 256), 4},
		{"non-repeating", nonRepeating, 1024},
	}

	c := &RLECodec{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := c.Encode(tc.input)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if len(encoded) != tc.encodedLen {
				t.Fatalf("Encoded length = %d, want %d", len(encoded), tc.encodedLen)
			}
			decoded, err := c.Decode(encoded)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !bytes.Equal(decoded, tc.input) {
				t.Fatalf("Round trip mismatch: got %d bytes, want %d", len(decoded), len(tc.input))
			}
		})
	}
}

// TestRLEDecodeOddLength verifies a dangling value byte is rejected
func TestRLEDecodeOddLength(t *testing.T) {
	c := &RLECodec{}
	_, err := c.Decode([]byte{0x41, 0x05, 0x42})
	if !errors.Is(err, ErrMalformedStream) {
		t.Fatalf("Expected ErrMalformedStream for odd input, got %v", err)
	}
}

// TestRLEDecodeZeroCount verifies a zero run count is rejected, not skipped
func TestRLEDecodeZeroCount(t *testing.T) {
	c := &RLECodec{}
	_, err := c.Decode([]byte{0x41, 0x00})
	if !errors.Is(err, ErrMalformedStream) {
		t.Fatalf("Expected ErrMalformedStream for zero count, got %v", err)
	}
}

// TestLZ4RoundTrip verifies the lz4 codec round trips, including empty input
func TestLZ4RoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		[]byte("hello world"),
		bytes.Repeat([]byte("abcd"), 4096),
	}

	c := &LZ4Codec{}
	for _, input := range inputs {
		encoded, err := c.Encode(input)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		decoded, err := c.Decode(encoded)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if !bytes.Equal(decoded, input) {
			t.Fatalf("Round trip mismatch for %d byte input", len(input))
		}
	}
}

// TestLZ4DecodeGarbage verifies invalid frames surface as malformed streams
func TestLZ4DecodeGarbage(t *testing.T) {
	c := &LZ4Codec{}
	_, err := c.Decode([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
	if !errors.Is(err, ErrMalformedStream) {
		t.Fatalf("Expected ErrMalformedStream for garbage frame, got %v", err)
	}
}

// TestRatioEstimates verifies the static estimates are sane
func TestRatioEstimates(t *testing.T) {
	for _, kind := range []Kind{RLE, LZ4} {
		c, err := New(kind)
		if err != nil {
			t.Fatalf("New(%v) failed: %v", kind, err)
		}
		if c.Ratio() <= 0 {
			t.Fatalf("Ratio for %v = %f, want > 0", kind, c.Ratio())
		}
	}
}
