// Copyright 2025 Gradix ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package serialization reads and writes Gradix checkpoint files.
//
// A checkpoint stores named float64 tensors in a small binary format with a
// CRC-32 trailer. The common case is saving and restoring model parameters:
//
//	err := serialization.SaveParams("model.grdx", model.Parameters())
//	...
//	err = serialization.LoadParams("model.grdx", model.Parameters())
package serialization

import (
	"io"

	"github.com/gradix-ml/gradix/internal/nn"
	"github.com/gradix-ml/gradix/internal/serialization"
)

// Checkpoint is an ordered collection of named tensors.
type Checkpoint = serialization.Checkpoint

// NewCheckpoint creates an empty checkpoint.
func NewCheckpoint() *Checkpoint {
	return serialization.NewCheckpoint()
}

// Save writes the checkpoint to path, replacing any existing file.
func Save(c *Checkpoint, path string) error {
	return serialization.Save(c, path)
}

// Write serializes the checkpoint to w.
func Write(c *Checkpoint, w io.Writer) error {
	return serialization.Write(c, w)
}

// Load reads a checkpoint from path, verifying magic, version and checksum.
func Load(path string) (*Checkpoint, error) {
	return serialization.Load(path)
}

// Read parses checkpoint data produced by Write.
func Read(raw []byte) (*Checkpoint, error) {
	return serialization.Read(raw)
}

// SaveParams writes the given parameters to a checkpoint file, keyed by
// parameter name.
func SaveParams(path string, params []*nn.Parameter) error {
	return serialization.SaveParams(path, params)
}

// LoadParams restores parameter tensors from a checkpoint file.
func LoadParams(path string, params []*nn.Parameter) error {
	return serialization.LoadParams(path, params)
}

// Sentinel errors returned when reading checkpoints.
var (
	ErrInvalidMagic       = serialization.ErrInvalidMagic
	ErrUnsupportedVersion = serialization.ErrUnsupportedVersion
	ErrChecksumMismatch   = serialization.ErrChecksumMismatch
	ErrDuplicateTensor    = serialization.ErrDuplicateTensor
	ErrTensorNameTooLong  = serialization.ErrTensorNameTooLong
	ErrTooManyTensors     = serialization.ErrTooManyTensors
	ErrTensorTooLarge     = serialization.ErrTensorTooLarge
	ErrTruncated          = serialization.ErrTruncated
	ErrUnknownTensor      = serialization.ErrUnknownTensor
)
