package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Decode prints captured device states, as written by replay --wire, one
// JSON object per line.
type Decode struct {
	File   string `arg:"" help:"Capture of compact device states" type:"existingfile"`
	Format string `help:"Device the capture was made for" enum:"xbox360,dualshock4,vita" required:""`
}

func (d *Decode) Run() error {
	f, err := os.Open(d.File)
	if err != nil {
		return err
	}
	defer f.Close()
	return d.Execute(f, os.Stdout)
}

// Execute decodes states from r and writes them to w.
func (d *Decode) Execute(r io.Reader, w io.Writer) error {
	df, err := lookupDevice(d.Format)
	if err != nil {
		return err
	}
	buf := make([]byte, df.wireSize)
	enc := json.NewEncoder(w)
	for i := 0; ; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("state %d: %w", i, err)
		}
		s := df.newState()
		if err := s.UnmarshalBinary(buf); err != nil {
			return fmt.Errorf("state %d: %w", i, err)
		}
		if err := enc.Encode(s); err != nil {
			return err
		}
	}
}
