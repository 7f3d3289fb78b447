package serialization

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"
	"os"

	"github.com/gradix-ml/gradix/internal/tensor"
)

// Load reads a checkpoint from path, verifying magic, version and checksum.
func Load(path string) (*Checkpoint, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Read(raw)
}

// Read parses checkpoint data produced by Write.
func Read(raw []byte) (*Checkpoint, error) {
	if len(raw) < len(Magic)+12 {
		return nil, ErrTruncated
	}

	// The trailer checksum covers everything before it.
	body, trailer := raw[:len(raw)-4], raw[len(raw)-4:]
	want := binary.LittleEndian.Uint32(trailer)
	if got := crc32.ChecksumIEEE(body); got != want {
		return nil, fmt.Errorf("%w: got %08x, want %08x", ErrChecksumMismatch, got, want)
	}

	r := bytes.NewReader(body)

	magic := make([]byte, len(Magic))
	if _, err := io.ReadFull(r, magic); err != nil || string(magic) != Magic {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMagic, magic)
	}

	version, err := readU32(r)
	if err != nil {
		return nil, err
	}
	if version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	count, err := readU32(r)
	if err != nil {
		return nil, err
	}
	if count > MaxTensors {
		return nil, fmt.Errorf("%w: %d", ErrTooManyTensors, count)
	}

	c := NewCheckpoint()
	for i := uint32(0); i < count; i++ {
		name, err := readName(r)
		if err != nil {
			return nil, err
		}

		rank, err := readU32(r)
		if err != nil {
			return nil, err
		}
		shape := make(tensor.Shape, rank)
		elems := uint64(1)
		for d := range shape {
			var dim uint64
			if err := binary.Read(r, binary.LittleEndian, &dim); err != nil {
				return nil, ErrTruncated
			}
			// Bound the element count before int conversion: dims are
			// attacker-controlled and their product must not overflow.
			if dim > MaxElements {
				return nil, fmt.Errorf("%w: dimension %d", ErrTensorTooLarge, dim)
			}
			if elems *= dim; elems > MaxElements {
				return nil, fmt.Errorf("%w: %q needs %d elements", ErrTensorTooLarge, name, elems)
			}
			shape[d] = int(dim)
		}
		if err := shape.Validate(); err != nil {
			return nil, err
		}

		buf := make([]byte, 8*shape.NumElements())
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, ErrTruncated
		}
		data := make([]float64, shape.NumElements())
		for j := range data {
			data[j] = math.Float64frombits(binary.LittleEndian.Uint64(buf[j*8:]))
		}

		t, err := tensor.New(data, shape)
		if err != nil {
			return nil, err
		}
		if err := c.Add(name, t); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func readU32(r *bytes.Reader) (uint32, error) {
	var v uint32
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, ErrTruncated
	}
	return v, nil
}

func readName(r *bytes.Reader) (string, error) {
	n, err := readU32(r)
	if err != nil {
		return "", err
	}
	if n > MaxNameLength {
		return "", fmt.Errorf("%w: %d bytes", ErrTensorNameTooLong, n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", ErrTruncated
	}
	return string(buf), nil
}
