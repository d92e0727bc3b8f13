// Package marshal composes the model, registry, codec and host packages
// into the format's public surface: Decode, Encode and
// FromHost. It is the only package allowed to depend on both registry
// and host at once — model cannot import registry (registry already
// imports model), so the host-to-Value direction lives here rather than
// alongside model's Value-to-host direction in project.go.
package marshal

import (
	"fmt"
	"io"

	"github.com/mabhi256/marshal48/internal/marshal/codec"
	"github.com/mabhi256/marshal48/internal/marshal/host"
	"github.com/mabhi256/marshal48/internal/marshal/model"
	"github.com/mabhi256/marshal48/internal/marshal/registry"
)

// NewSession starts a fresh reference registry for one decode, encode or
// FromHost call. Not for concurrent or cross-call use.
func NewSession() *registry.Session {
	return registry.New()
}

// Decode reads one stream into a Value tree rooted at the returned Value,
// and the Session that owns it. The Session must outlive
// any later ToHost/Repr call against values reachable from the root.
func Decode(r io.Reader) (*model.Value, *registry.Session, error) {
	session := NewSession()
	dec := codec.NewDecoder(codec.NewReader(r), session)
	if err := dec.DecodeHeader(); err != nil {
		return nil, nil, err
	}
	root, err := dec.DecodeValue()
	if err != nil {
		return nil, nil, err
	}
	return root, session, nil
}

// DecodeToHost is the common-case shortcut: decode a stream and project
// the root straight to a host value in one call.
func DecodeToHost(r io.Reader, caps *host.Capabilities) (any, error) {
	root, _, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return root.ToHost(caps)
}

// Encode writes v's value tree to w. v and every value it
// reaches must belong to session; the encoder tells values apart by
// Ref.ID, so a foreign Value that shares an id with one already written
// is emitted as a back-reference to it.
func Encode(w io.Writer, session *registry.Session, v *model.Value) error {
	enc := codec.NewEncoder(codec.NewWriter(w), session)
	if err := enc.EncodeHeader(); err != nil {
		return err
	}
	if err := enc.EncodeValue(v); err != nil {
		return err
	}
	return enc.Flush()
}

// EncodeFromHost is the common-case shortcut: build a value tree from a
// host data graph in a fresh Session, then encode it in one call.
func EncodeFromHost(w io.Writer, data any) error {
	session := NewSession()
	v, err := FromHost(session, data)
	if err != nil {
		return err
	}
	return Encode(w, session, v)
}

// FromHost converts a host data graph into a Value tree registered in
// session, the inverse of (*model.Value).ToHost.
// Supported inputs: nil, bool, int, int8, int16, int32, int64, uint,
// uint32, string (-> String),
// host.Symbol (-> Symbol), []any (-> Array), host.OrderedMap (-> Hash),
// and host.Value (-> GenericObject/UserDefined/UserMarshal, picked by
// which of marshal_dump/dump it implements).
func FromHost(session *registry.Session, data any) (*model.Value, error) {
	switch x := data.(type) {
	case nil:
		return session.NewNil(), nil
	case bool:
		if x {
			return session.NewTrue(), nil
		}
		return session.NewFalse(), nil
	case int:
		return session.NewInt(int64(x)), nil
	case int8:
		return session.NewInt(int64(x)), nil
	case int16:
		return session.NewInt(int64(x)), nil
	case int32:
		return session.NewInt(int64(x)), nil
	case int64:
		return session.NewInt(x), nil
	case uint:
		return session.NewInt(int64(x)), nil
	case uint32:
		return session.NewInt(int64(x)), nil
	case host.Symbol:
		return session.InternSymbol([]byte(x)), nil
	case string:
		return session.InternString([]byte(x)), nil
	case []any:
		return fromHostArray(session, x)
	case host.OrderedMap:
		return fromHostHash(session, x)
	case host.Value:
		return fromHostObject(session, x)
	default:
		return nil, fmt.Errorf("unsupported host type %T: %w", data, model.ErrTypeMismatch)
	}
}

func fromHostArray(session *registry.Session, items []any) (*model.Value, error) {
	v := session.NewArray()
	v.Elements = make([]*model.Value, 0, len(items))
	for _, item := range items {
		el, err := FromHost(session, item)
		if err != nil {
			return nil, err
		}
		v.Elements = append(v.Elements, el)
	}
	return v, nil
}

func fromHostHash(session *registry.Session, m host.OrderedMap) (*model.Value, error) {
	v := session.NewHash()
	v.Pairs = make([]model.Pair, 0, len(m))
	for _, p := range m {
		key, err := FromHost(session, p.Key)
		if err != nil {
			return nil, err
		}
		val, err := FromHost(session, p.Val)
		if err != nil {
			return nil, err
		}
		v.Pairs = append(v.Pairs, model.Pair{Key: key, Val: val})
	}
	return v, nil
}

func fromHostObject(session *registry.Session, hv host.Value) (*model.Value, error) {
	className := "Object"
	if named, ok := hv.(host.ClassNamed); ok {
		className = named.ClassName()
	}
	classSym := session.InternSymbol([]byte(className))

	if dumped, err := hv.Invoke("marshal_dump", nil); err == nil {
		nested, err := FromHost(session, dumped)
		if err != nil {
			return nil, err
		}
		return session.NewUserMarshal(classSym, nested), nil
	} else if err != host.ErrMethodNotSupported {
		return nil, fmt.Errorf("marshal_dump: %w", model.ErrHostCallFailure)
	}

	if dumped, err := hv.Invoke("dump", nil); err == nil {
		payload, ok := dumped.([]byte)
		if !ok {
			return nil, fmt.Errorf("dump returned %T, want []byte: %w", dumped, model.ErrTypeMismatch)
		}
		return session.NewUserDefined(classSym, payload), nil
	} else if err != host.ErrMethodNotSupported {
		return nil, fmt.Errorf("dump: %w", model.ErrHostCallFailure)
	}

	return fromHostGenericObject(session, classSym, hv)
}

func fromHostGenericObject(session *registry.Session, classSym *model.Value, hv host.Value) (*model.Value, error) {
	v := session.NewObject(classSym)
	lister, ok := hv.(host.AttributeLister)
	if !ok {
		return v, nil
	}
	for _, p := range lister.ListAttributes() {
		name, ok := p.Key.(string)
		if !ok {
			return nil, fmt.Errorf("attribute key %T, want string: %w", p.Key, model.ErrTypeMismatch)
		}
		key := session.InternSymbol(attributeWireName(name))
		val, err := FromHost(session, p.Val)
		if err != nil {
			return nil, err
		}
		v.Attrs = append(v.Attrs, model.Attribute{Key: key, Val: val})
	}
	return v, nil
}

// attributeWireName restores the leading `@` an attribute key is carried
// with on the wire, mirroring project.go's attributeHostKey strip.
func attributeWireName(name string) []byte {
	if len(name) > 0 && name[0] == '@' {
		return []byte(name)
	}
	return append([]byte{'@'}, name...)
}
