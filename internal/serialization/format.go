// Package serialization reads and writes gradix checkpoint files: named
// float64 tensors (model parameters) in a small binary format.
//
// Layout, all little-endian:
//
//	magic "GRDX" (4 bytes)
//	version uint32
//	tensor count uint32
//	per tensor:
//	    name length uint32, name bytes
//	    rank uint32, dims []uint64
//	    values []float64
//	crc32 (IEEE) of everything above, uint32
//
// The checksum is verified on load; a mismatch fails with
// ErrChecksumMismatch rather than returning silently corrupted weights.
package serialization

import (
	"fmt"

	"github.com/gradix-ml/gradix/internal/tensor"
)

// Format constants.
const (
	Magic   = "GRDX"
	Version = uint32(1)

	// Sanity limits applied when parsing untrusted files.
	MaxTensors    = 1 << 16
	MaxNameLength = 1 << 10
	MaxElements   = 1 << 28 // per tensor (2 GiB of float64)
)

// Checkpoint is an ordered collection of named tensors.
type Checkpoint struct {
	names   []string
	tensors map[string]*tensor.Tensor
}

// NewCheckpoint creates an empty checkpoint.
func NewCheckpoint() *Checkpoint {
	return &Checkpoint{tensors: make(map[string]*tensor.Tensor)}
}

// Add registers a tensor under name. Names must be unique.
func (c *Checkpoint) Add(name string, t *tensor.Tensor) error {
	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: %q (%d bytes)", ErrTensorNameTooLong, name[:32], len(name))
	}
	if _, ok := c.tensors[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTensor, name)
	}
	if len(c.names) >= MaxTensors {
		return ErrTooManyTensors
	}
	c.names = append(c.names, name)
	c.tensors[name] = t
	return nil
}

// Tensor returns the tensor stored under name.
func (c *Checkpoint) Tensor(name string) (*tensor.Tensor, error) {
	t, ok := c.tensors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTensor, name)
	}
	return t, nil
}

// Names returns tensor names in insertion order.
func (c *Checkpoint) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of stored tensors.
func (c *Checkpoint) Len() int {
	return len(c.names)
}
