package serialization

import (
	"bufio"
	"encoding/binary"
	"hash/crc32"
	"io"
	"math"
	"os"
)

// Save writes the checkpoint to path, replacing any existing file.
func Save(c *Checkpoint, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(c, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write serializes the checkpoint to w in the GRDX format.
func Write(c *Checkpoint, w io.Writer) error {
	bw := bufio.NewWriter(w)
	crc := crc32.NewIEEE()
	out := io.MultiWriter(bw, crc)

	if _, err := out.Write([]byte(Magic)); err != nil {
		return err
	}
	if err := writeU32(out, Version); err != nil {
		return err
	}
	if err := writeU32(out, uint32(c.Len())); err != nil {
		return err
	}

	for _, name := range c.names {
		t := c.tensors[name]

		if err := writeU32(out, uint32(len(name))); err != nil {
			return err
		}
		if _, err := out.Write([]byte(name)); err != nil {
			return err
		}

		shape := t.Shape()
		if err := writeU32(out, uint32(len(shape))); err != nil {
			return err
		}
		for _, dim := range shape {
			if err := binary.Write(out, binary.LittleEndian, uint64(dim)); err != nil {
				return err
			}
		}

		buf := make([]byte, 8*len(t.Data()))
		for i, v := range t.Data() {
			binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
		}
		if _, err := out.Write(buf); err != nil {
			return err
		}
	}

	// Trailer: checksum of everything written so far.
	if err := writeU32(bw, crc.Sum32()); err != nil {
		return err
	}
	return bw.Flush()
}

func writeU32(w io.Writer, v uint32) error {
	return binary.Write(w, binary.LittleEndian, v)
}
