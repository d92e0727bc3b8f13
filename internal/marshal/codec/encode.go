package codec

import (
	"fmt"

	"github.com/mabhi256/marshal48/internal/marshal/model"
	"github.com/mabhi256/marshal48/internal/marshal/registry"
)

// Encoder marshals a Session-backed Value tree to a stream, symmetric
// with Decoder. Back-references are emitted from a local
// "already written" table keyed by Ref.ID, distinct from the Session's own
// construction-time dedup tables: the Session remembers
// identity for as long as it lives, this table remembers only what
// this one encode pass has already put on the wire. Each entry holds the
// wire id the value was given, assigned in emission order, which is the
// id a decoder registers it under.
type Encoder struct {
	w       *Writer
	session *registry.Session

	emittedSymbols map[uint32]int64
	emittedObjects map[uint32]int64
}

// NewEncoder builds an Encoder writing to w, using session to resolve and
// intern the constants an encoded attribute (such as String's `E` flag)
// needs to synthesize on the fly.
func NewEncoder(w *Writer, session *registry.Session) *Encoder {
	return &Encoder{
		w:              w,
		session:        session,
		emittedSymbols: make(map[uint32]int64),
		emittedObjects: make(map[uint32]int64),
	}
}

// EncodeHeader writes the two-byte magic header.
func (e *Encoder) EncodeHeader() error {
	if err := e.w.WriteByte(magicMajor); err != nil {
		return err
	}
	return e.w.WriteByte(magicMinor)
}

// Flush pushes any buffered bytes to the underlying sink. Callers must
// call this once after the last EncodeValue.
func (e *Encoder) Flush() error {
	return e.w.Flush()
}

// EncodeValue writes one value, choosing a back-reference over a full
// body whenever this encode pass has already emitted it.
func (e *Encoder) EncodeValue(v *model.Value) error {
	switch v.Kind {
	case model.KindNil:
		return e.w.WriteByte(tagNil)
	case model.KindTrue:
		return e.w.WriteByte(tagTrue)
	case model.KindFalse:
		return e.w.WriteByte(tagFalse)
	case model.KindInt:
		if err := e.w.WriteByte(tagFixnum); err != nil {
			return err
		}
		return EncodeFixnum(e.w, v.IntVal)
	case model.KindSymbol:
		return e.encodeSymbol(v)
	case model.KindString:
		return e.encodeRef(v, func() error { return e.encodeStringBody(v) })
	case model.KindArray:
		return e.encodeRef(v, func() error { return e.encodeArrayBody(v) })
	case model.KindHash:
		return e.encodeRef(v, func() error { return e.encodeHashBody(v) })
	case model.KindObject:
		return e.encodeRef(v, func() error { return e.encodeObjectBody(v) })
	case model.KindUserDefined:
		return e.encodeRef(v, func() error { return e.encodeUserDefinedBody(v) })
	case model.KindUserMarshal:
		return e.encodeRef(v, func() error { return e.encodeUserMarshalBody(v) })
	default:
		return model.ErrTypeMismatch
	}
}

func (e *Encoder) encodeSymbol(v *model.Value) error {
	if id, ok := e.emittedSymbols[v.Ref.ID]; ok {
		if err := e.w.WriteByte(tagSymlink); err != nil {
			return err
		}
		return EncodeFixnum(e.w, id)
	}
	e.emittedSymbols[v.Ref.ID] = int64(len(e.emittedSymbols))
	if err := e.w.WriteByte(tagSymbol); err != nil {
		return err
	}
	return e.writeByteSeq(v.Name)
}

// encodeRef emits a `@` back-reference if this object-table value has
// already been written in this pass, otherwise marks it written and
// delegates to writeBody. Marking happens before writeBody runs so a
// value that references itself (through an array, hash or attribute)
// resolves to a link rather than recursing forever.
func (e *Encoder) encodeRef(v *model.Value, writeBody func() error) error {
	if id, ok := e.emittedObjects[v.Ref.ID]; ok {
		if err := e.w.WriteByte(tagLink); err != nil {
			return err
		}
		return EncodeFixnum(e.w, id)
	}
	e.emittedObjects[v.Ref.ID] = int64(len(e.emittedObjects))
	return writeBody()
}

// encodeClassName writes the class-name Symbol shared by Object,
// UserDefined and UserMarshal's wire frames, rejecting an empty name
// rather than silently producing a frame no host Factory can resolve.
func (e *Encoder) encodeClassName(v *model.Value) error {
	if v.ClassName == "" {
		return fmt.Errorf("class name for %v: %w", v.Kind, model.ErrEmptyClassName)
	}
	return e.EncodeValue(v.ClassNameValue)
}

func (e *Encoder) writeByteSeq(b []byte) error {
	if err := EncodeFixnum(e.w, int64(len(b))); err != nil {
		return err
	}
	return e.w.WriteBytes(b)
}

func (e *Encoder) encodeAttrs(attrs []model.Attribute) error {
	if err := EncodeFixnum(e.w, int64(len(attrs))); err != nil {
		return err
	}
	for _, a := range attrs {
		if err := e.EncodeValue(a.Key); err != nil {
			return err
		}
		if err := e.EncodeValue(a.Val); err != nil {
			return err
		}
	}
	return nil
}

// stringAttrs folds the String kind's `E` encoding flag (held outside
// v.Attrs as StringEncoding) back into an attribute pair at
// encode time, so String needs no special wire-level case beyond the
// usual attribute-frame wrapping.
func (e *Encoder) stringAttrs(v *model.Value) []model.Attribute {
	if v.StringEncoding == nil {
		return v.Attrs
	}
	flag := e.session.NewFalse()
	if *v.StringEncoding {
		flag = e.session.NewTrue()
	}
	key := e.session.InternSymbol([]byte("E"))
	out := make([]model.Attribute, 0, len(v.Attrs)+1)
	out = append(out, v.Attrs...)
	out = append(out, model.Attribute{Key: key, Val: flag})
	return out
}

func (e *Encoder) encodeStringBody(v *model.Value) error {
	attrs := e.stringAttrs(v)
	if len(attrs) == 0 {
		return e.encodeStringRaw(v)
	}
	if err := e.w.WriteByte(tagIVar); err != nil {
		return err
	}
	if err := e.encodeStringRaw(v); err != nil {
		return err
	}
	return e.encodeAttrs(attrs)
}

func (e *Encoder) encodeStringRaw(v *model.Value) error {
	if err := e.w.WriteByte(tagString); err != nil {
		return err
	}
	return e.writeByteSeq(v.Bytes)
}

func (e *Encoder) encodeArrayBody(v *model.Value) error {
	if len(v.Attrs) == 0 {
		return e.encodeArrayRaw(v)
	}
	if err := e.w.WriteByte(tagIVar); err != nil {
		return err
	}
	if err := e.encodeArrayRaw(v); err != nil {
		return err
	}
	return e.encodeAttrs(v.Attrs)
}

func (e *Encoder) encodeArrayRaw(v *model.Value) error {
	if err := e.w.WriteByte(tagArray); err != nil {
		return err
	}
	if err := EncodeFixnum(e.w, int64(len(v.Elements))); err != nil {
		return err
	}
	for _, el := range v.Elements {
		if err := e.EncodeValue(el); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodeHashBody(v *model.Value) error {
	if len(v.Attrs) == 0 {
		return e.encodeHashRaw(v)
	}
	if err := e.w.WriteByte(tagIVar); err != nil {
		return err
	}
	if err := e.encodeHashRaw(v); err != nil {
		return err
	}
	return e.encodeAttrs(v.Attrs)
}

func (e *Encoder) encodeHashRaw(v *model.Value) error {
	if err := e.w.WriteByte(tagHash); err != nil {
		return err
	}
	if err := EncodeFixnum(e.w, int64(len(v.Pairs))); err != nil {
		return err
	}
	for _, p := range v.Pairs {
		if err := e.EncodeValue(p.Key); err != nil {
			return err
		}
		if err := e.EncodeValue(p.Val); err != nil {
			return err
		}
	}
	return nil
}

// encodeObjectBody writes the GenericObject family's own inline attribute
// count and pairs; unlike String/Array/Hash/UserDefined/UserMarshal, its
// attributes never need the separate `I` wrapper frame.
func (e *Encoder) encodeObjectBody(v *model.Value) error {
	if err := e.w.WriteByte(tagObject); err != nil {
		return err
	}
	if err := e.encodeClassName(v); err != nil {
		return err
	}
	return e.encodeAttrs(v.Attrs)
}

func (e *Encoder) encodeUserDefinedBody(v *model.Value) error {
	if len(v.Attrs) == 0 {
		return e.encodeUserDefinedRaw(v)
	}
	if err := e.w.WriteByte(tagIVar); err != nil {
		return err
	}
	if err := e.encodeUserDefinedRaw(v); err != nil {
		return err
	}
	return e.encodeAttrs(v.Attrs)
}

func (e *Encoder) encodeUserDefinedRaw(v *model.Value) error {
	if err := e.w.WriteByte(tagUserDefined); err != nil {
		return err
	}
	if err := e.encodeClassName(v); err != nil {
		return err
	}
	return e.writeByteSeq(v.Bytes)
}

func (e *Encoder) encodeUserMarshalBody(v *model.Value) error {
	if len(v.Attrs) == 0 {
		return e.encodeUserMarshalRaw(v)
	}
	if err := e.w.WriteByte(tagIVar); err != nil {
		return err
	}
	if err := e.encodeUserMarshalRaw(v); err != nil {
		return err
	}
	return e.encodeAttrs(v.Attrs)
}

func (e *Encoder) encodeUserMarshalRaw(v *model.Value) error {
	if err := e.w.WriteByte(tagUserMarshal); err != nil {
		return err
	}
	if err := e.encodeClassName(v); err != nil {
		return err
	}
	nested := v.Nested
	if nested == nil {
		nested = e.session.NewNil()
	}
	return e.EncodeValue(nested)
}
