package codec

import (
	"fmt"

	"github.com/mabhi256/marshal48/internal/marshal/model"
	"github.com/mabhi256/marshal48/internal/marshal/registry"
)

// Decoder unmarshals one stream into a Session-backed Value tree, tag by
// tag. Grounded on internal/heap/parser.Parser's top-level
// record loop, adapted from HPROF's flat record stream to Marshal 4.8's
// recursive, self-referential value tree.
type Decoder struct {
	r       *Reader
	session *registry.Session
	depth   int
}

// NewDecoder builds a Decoder reading from r into session.
func NewDecoder(r *Reader, session *registry.Session) *Decoder {
	return &Decoder{r: r, session: session}
}

// DecodeHeader consumes and validates the two-byte magic header.
func (d *Decoder) DecodeHeader() error {
	major, err := d.r.ReadByte()
	if err != nil {
		return err
	}
	minor, err := d.r.ReadByte()
	if err != nil {
		return err
	}
	if major != magicMajor || minor != magicMinor {
		return fmt.Errorf("got %d.%d: %w", major, minor, model.ErrBadMagic)
	}
	return nil
}

// DecodeValue reads one tagged value, recursing into its children as
// needed. This is the entire format's dispatch point.
func (d *Decoder) DecodeValue() (*model.Value, error) {
	d.depth++
	defer func() { d.depth-- }()
	if d.depth > maxDepth {
		return nil, model.ErrDepthExceeded
	}

	tag, err := d.r.ReadByte()
	if err != nil {
		return nil, err
	}

	switch tag {
	case tagNil:
		return d.session.NewNil(), nil
	case tagTrue:
		return d.session.NewTrue(), nil
	case tagFalse:
		return d.session.NewFalse(), nil
	case tagFixnum:
		n, err := DecodeFixnum(d.r)
		if err != nil {
			return nil, err
		}
		return d.session.NewInt(n), nil
	case tagSymbol:
		return d.decodeSymbol()
	case tagSymlink:
		return d.decodeSymlink()
	case tagLink:
		return d.decodeLink()
	case tagString:
		return d.decodeString()
	case tagArray:
		return d.decodeArray()
	case tagHash:
		return d.decodeHash()
	case tagObject:
		return d.decodeObject()
	case tagUserDefined:
		return d.decodeUserDefined()
	case tagUserMarshal:
		return d.decodeUserMarshal()
	case tagIVar:
		return d.decodeIVar()
	default:
		return nil, fmt.Errorf("tag %q: %w", tag, model.ErrUnknownTag)
	}
}

// readByteSeq reads the fixnum-length-prefixed byte sequence shared by
// Symbol, String and UserDefined payloads.
func (d *Decoder) readByteSeq() ([]byte, error) {
	n, err := DecodeFixnum(d.r)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, model.ErrUnexpectedEnd
	}
	return d.r.ReadExact(int(n))
}

func (d *Decoder) decodeSymbol() (*model.Value, error) {
	name, err := d.readByteSeq()
	if err != nil {
		return nil, err
	}
	return d.session.NewSymbol(name), nil
}

func (d *Decoder) decodeSymlink() (*model.Value, error) {
	n, err := DecodeFixnum(d.r)
	if err != nil {
		return nil, err
	}
	return d.session.LookupSymbol(uint32(n))
}

func (d *Decoder) decodeLink() (*model.Value, error) {
	n, err := DecodeFixnum(d.r)
	if err != nil {
		return nil, err
	}
	return d.session.LookupObject(uint32(n))
}

func (d *Decoder) decodeString() (*model.Value, error) {
	content, err := d.readByteSeq()
	if err != nil {
		return nil, err
	}
	return d.session.NewString(content), nil
}

func (d *Decoder) decodeArray() (*model.Value, error) {
	n, err := DecodeFixnum(d.r)
	if err != nil {
		return nil, err
	}
	v := d.session.NewArray()
	if n > 0 {
		v.Elements = make([]*model.Value, 0, n)
	}
	for i := int64(0); i < n; i++ {
		el, err := d.DecodeValue()
		if err != nil {
			return nil, err
		}
		v.Elements = append(v.Elements, el)
	}
	return v, nil
}

func (d *Decoder) decodeHash() (*model.Value, error) {
	n, err := DecodeFixnum(d.r)
	if err != nil {
		return nil, err
	}
	v := d.session.NewHash()
	if n > 0 {
		v.Pairs = make([]model.Pair, 0, n)
	}
	for i := int64(0); i < n; i++ {
		key, err := d.DecodeValue()
		if err != nil {
			return nil, err
		}
		val, err := d.DecodeValue()
		if err != nil {
			return nil, err
		}
		v.Pairs = append(v.Pairs, model.Pair{Key: key, Val: val})
	}
	return v, nil
}

// decodeClassName reads a value expected to be a Symbol (directly, or via
// a symlink resolving to one), as required before each of Object,
// UserDefined and UserMarshal's class-name slot.
func (d *Decoder) decodeClassName() (*model.Value, error) {
	v, err := d.DecodeValue()
	if err != nil {
		return nil, err
	}
	if v.Kind != model.KindSymbol {
		return nil, model.ErrTypeMismatch
	}
	return v, nil
}

func (d *Decoder) decodeObject() (*model.Value, error) {
	className, err := d.decodeClassName()
	if err != nil {
		return nil, err
	}
	v := d.session.NewObject(className)

	n, err := DecodeFixnum(d.r)
	if err != nil {
		return nil, err
	}
	for i := int64(0); i < n; i++ {
		if err := d.decodeAttributePair(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (d *Decoder) decodeUserDefined() (*model.Value, error) {
	className, err := d.decodeClassName()
	if err != nil {
		return nil, err
	}
	payload, err := d.readByteSeq()
	if err != nil {
		return nil, err
	}
	return d.session.NewUserDefined(className, payload), nil
}

func (d *Decoder) decodeUserMarshal() (*model.Value, error) {
	className, err := d.decodeClassName()
	if err != nil {
		return nil, err
	}
	v := d.session.NewUserMarshal(className, nil)
	nested, err := d.DecodeValue()
	if err != nil {
		return nil, err
	}
	v.Nested = nested
	return v, nil
}

// decodeIVar reads the attribute frame that wraps a carrier value: the
// wrapped value first, then a fixnum count of (symbol, value)
// pairs applied to it via SetAttribute.
func (d *Decoder) decodeIVar() (*model.Value, error) {
	inner, err := d.DecodeValue()
	if err != nil {
		return nil, err
	}
	n, err := DecodeFixnum(d.r)
	if err != nil {
		return nil, err
	}
	for i := int64(0); i < n; i++ {
		if err := d.decodeAttributePair(inner); err != nil {
			return nil, err
		}
	}
	return inner, nil
}

func (d *Decoder) decodeAttributePair(onto *model.Value) error {
	key, err := d.DecodeValue()
	if err != nil {
		return err
	}
	val, err := d.DecodeValue()
	if err != nil {
		return err
	}
	return onto.SetAttribute(key, val)
}
