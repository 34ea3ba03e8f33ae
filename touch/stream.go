package touch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Reader decodes consecutive binary frames from an underlying stream.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r for frame decoding.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next reads one frame. It returns io.EOF only on a clean frame boundary.
func (r *Reader) Next() (Event, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r.r, hdr[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Event{}, ErrShortFrame
		}
		return Event{}, err
	}
	buf := make([]byte, FrameSize(int(hdr[2])))
	copy(buf, hdr[:])
	if _, err := io.ReadFull(r.r, buf[headerSize:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Event{}, ErrShortFrame
		}
		return Event{}, err
	}
	var ev Event
	if err := ev.UnmarshalBinary(buf); err != nil {
		return Event{}, err
	}
	return ev, nil
}

// ReadAll decodes frames until EOF.
func (r *Reader) ReadAll() ([]Event, error) {
	var out []Event
	for {
		ev, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("frame %d: %w", len(out), err)
		}
		out = append(out, ev)
	}
}

// Writer encodes frames onto an underlying stream.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write encodes a single frame.
func (w *Writer) Write(ev Event) error {
	b, err := ev.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = w.w.Write(b)
	return err
}
