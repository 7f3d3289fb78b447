package serialization

import (
	"fmt"

	"github.com/gradix-ml/gradix/internal/nn"
	"github.com/gradix-ml/gradix/internal/tensor"
)

// SaveParams writes the given parameters to a checkpoint file, keyed by
// parameter name.
func SaveParams(path string, params []*nn.Parameter) error {
	c := NewCheckpoint()
	for _, p := range params {
		if err := c.Add(p.Name(), p.Data()); err != nil {
			return err
		}
	}
	return Save(c, path)
}

// LoadParams restores parameter tensors from a checkpoint file.
//
// Every parameter must be present in the file with a matching shape; extra
// tensors in the file are ignored.
func LoadParams(path string, params []*nn.Parameter) error {
	c, err := Load(path)
	if err != nil {
		return err
	}

	for _, p := range params {
		t, err := c.Tensor(p.Name())
		if err != nil {
			return err
		}
		if !t.Shape().Equal(p.Data().Shape()) {
			return fmt.Errorf("%w: checkpoint %q has shape %v, parameter has %v",
				tensor.ErrShapeMismatch, p.Name(), t.Shape(), p.Data().Shape())
		}
		p.SetData(t)
	}
	return nil
}
