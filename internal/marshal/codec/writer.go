package codec

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mabhi256/marshal48/internal/marshal/model"
)

// Writer buffers writes to an external byte sink. Flush is explicit,
// called once at session close, never mid-value.
type Writer struct {
	w *bufio.Writer
}

// NewWriter wraps w with the adapter's internal buffer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriterSize(w, minBufSize)}
}

// WriteByte writes a single byte.
func (wr *Writer) WriteByte(b byte) error {
	if err := wr.w.WriteByte(b); err != nil {
		return fmt.Errorf("%w: %v", model.ErrStreamClosed, err)
	}
	return nil
}

// WriteBytes writes a raw byte slice.
func (wr *Writer) WriteBytes(b []byte) error {
	if _, err := wr.w.Write(b); err != nil {
		return fmt.Errorf("%w: %v", model.ErrStreamClosed, err)
	}
	return nil
}

// Flush pushes any buffered bytes to the sink. A writer error here is
// fatal.
func (wr *Writer) Flush() error {
	if err := wr.w.Flush(); err != nil {
		return fmt.Errorf("%w: %v", model.ErrStreamClosed, err)
	}
	return nil
}
