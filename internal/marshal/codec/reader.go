// Package codec implements the octet stream adapter, the fixnum/byte-
// sequence primitive codec, and the unmarshaller/marshaller. Grounded on
// internal/heap/parser/reader.go's
// BinaryReader (buffered lookahead reads, byte-count tracking), adapted
// from HPROF's fixed big-endian widths to Marshal 4.8's variable-length
// little-endian fixnum encoding.
package codec

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mabhi256/marshal48/internal/marshal/model"
)

// minBufSize is the adapter's internal buffer floor.
const minBufSize = 4096

// Reader is a 1-byte-lookahead buffered reader over an external byte
// source.
type Reader struct {
	r         *bufio.Reader
	bytesRead int64
}

// NewReader wraps r with the adapter's internal buffer.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReaderSize(r, minBufSize)}
}

// BytesRead returns the number of bytes consumed so far. The decoder's
// errors do not include this offset.
func (rd *Reader) BytesRead() int64 { return rd.bytesRead }

// ReadByte reads a single byte. End-of-stream inside a value frame is
// always fatal.
func (rd *Reader) ReadByte() (byte, error) {
	b, err := rd.r.ReadByte()
	if err != nil {
		return 0, translateEOF(err)
	}
	rd.bytesRead++
	return b, nil
}

// PeekByte looks at the next byte without consuming it.
func (rd *Reader) PeekByte() (byte, error) {
	b, err := rd.r.Peek(1)
	if err != nil {
		return 0, translateEOF(err)
	}
	return b[0], nil
}

// ReadExact reads exactly n bytes, possibly spanning multiple buffer
// refills.
func (rd *Reader) ReadExact(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(rd.r, buf)
	rd.bytesRead += int64(read)
	if err != nil {
		return nil, translateEOF(err)
	}
	return buf, nil
}

func translateEOF(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return model.ErrUnexpectedEnd
	}
	return fmt.Errorf("%w: %v", model.ErrStreamClosed, err)
}
