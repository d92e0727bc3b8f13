package codec

import "github.com/mabhi256/marshal48/internal/marshal/model"

// DecodeFixnum reads the format's variable-length signed-integer encoding,
// grounded on original_source/marshal48/unmarshal.c's
// unmarshal_next_fixnum. The positive long form is extended to widths 1-4
// (the original only wires widths 1-3, a plain gap in its switch rather
// than the deliberately-flagged 0xFC..0xFE case below) so that the full
// positive range up to 2^31-1 is reachable.
//
// The long negative form (header bytes 0xFC..0xFE) is left unimplemented,
// deliberately rather than guessed at; decoding one of those three header
// bytes is a fatal BadFixnum.
func DecodeFixnum(r *Reader) (int64, error) {
	cc, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	switch {
	case cc == 0:
		return 0, nil

	case cc >= 1 && cc <= 4:
		buf, err := r.ReadExact(int(cc))
		if err != nil {
			return 0, err
		}
		var v int64
		for i, b := range buf {
			v |= int64(b) << (8 * uint(i))
		}
		return v, nil

	case cc == 0xFF:
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		return 1 - int64(b), nil

	case cc == 0xFC || cc == 0xFD || cc == 0xFE:
		return 0, model.ErrUnsupportedFixnum

	case cc < 0x80:
		return int64(cc) - 5, nil

	default: // 0x80..0xFB
		return 0x80 - int64(cc) - 5, nil
	}
}

// Fixnum range limits, derived from the decodable tag vocabulary above.
const (
	fixnumShortPosMax = 122
	fixnumShortNegMin = -128
	fixnumShortNegMax = -5
	fixnumByteFormMin = -254 // via the 0xFF b branch
	fixnumLongPosMax  = 0x7FFFFFFF
)

// EncodeFixnum writes n using the shortest representation the decodable
// tag vocabulary supports. Negative values more
// negative than fixnumByteFormMin cannot be represented without the long
// negative form DecodeFixnum refuses to read back (DESIGN.md Open
// Question 1), so those are reported as EncodeOverflow rather than
// producing a stream this codec cannot decode.
func EncodeFixnum(w *Writer, n int64) error {
	switch {
	case n == 0:
		return w.WriteByte(0)

	case n >= 1 && n <= fixnumShortPosMax:
		return w.WriteByte(byte(n + 5))

	case n >= fixnumShortNegMin && n <= fixnumShortNegMax:
		return w.WriteByte(byte(123 - n))

	case n >= fixnumByteFormMin && n < 0:
		if err := w.WriteByte(0xFF); err != nil {
			return err
		}
		return w.WriteByte(byte(1 - n))

	case n > fixnumShortPosMax && n <= fixnumLongPosMax:
		return encodeLongPositive(w, n)

	default:
		return model.ErrEncodeOverflow
	}
}

func encodeLongPositive(w *Writer, n int64) error {
	var buf [4]byte
	width := 0
	for v := n; v != 0; v >>= 8 {
		buf[width] = byte(v)
		width++
	}
	if err := w.WriteByte(byte(width)); err != nil {
		return err
	}
	return w.WriteBytes(buf[:width])
}
