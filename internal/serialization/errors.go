package serialization

import "errors"

// Common errors.
var (
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrDuplicateTensor    = errors.New("duplicate tensor name")
	ErrTensorNameTooLong  = errors.New("tensor name too long")
	ErrTooManyTensors     = errors.New("too many tensors in file")
	ErrTensorTooLarge     = errors.New("tensor exceeds element limit")
	ErrTruncated          = errors.New("unexpected end of checkpoint data")
	ErrUnknownTensor      = errors.New("tensor not present in checkpoint")
)
