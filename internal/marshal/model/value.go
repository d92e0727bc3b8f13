package model

// Pair is an ordered (key, value) entry of a Hash.
type Pair struct {
	Key *Value
	Val *Value
}

// Attribute is an ordered (name, value) entry of the GenericObject family's
// attribute map. Key is expected to be a Symbol.
type Attribute struct {
	Key *Value
	Val *Value
}

// cacheState tracks a value's host-projection cache.
type cacheState byte

const (
	cacheEmpty    cacheState = iota // not yet projected
	cacheUncached                   // Nil/True/False: every projection is fresh
	cacheFilled                     // projected once, reused from here on
)

type cacheSlot struct {
	state cacheState
	host  any
}

// Value is the decoded tree's tagged-union node. Exactly the
// fields relevant to Kind are meaningful; see value_*.go for the per-kind
// operations (Repr, SetAttribute, ToHost). The host-to-Value direction is
// marshal.FromHost, outside this package.
type Value struct {
	Kind Kind
	Ref  Ref

	IntVal int64 // KindInt

	Name []byte // KindSymbol: interned name bytes

	Bytes          []byte // KindString: raw bytes; KindUserDefined: opaque payload
	StringEncoding *bool  // KindString: the `E` attribute, preserved verbatim (nil = unset)

	Elements []*Value // KindArray

	Pairs []Pair // KindHash, ordered

	ClassName      string // KindObject/KindUserDefined/KindUserMarshal
	ClassNameValue *Value // the Symbol Value backing ClassName, kept for dedup round-trip
	Attrs          []Attribute

	Nested *Value // KindUserMarshal: the wrapped value

	cache cacheSlot
}

// NewConstant builds one of the three shared, unregistered constants.
func NewConstant(kind Kind) *Value {
	return &Value{Kind: kind, cache: cacheSlot{state: cacheUncached}}
}

// acceptsAttributes reports whether this Kind resolves set-attribute
// requests itself (GenericObject family) rather than erroring.
func (v *Value) acceptsAttributes() bool {
	switch v.Kind {
	case KindObject, KindUserDefined, KindUserMarshal:
		return true
	default:
		return false
	}
}

// SetAttribute dispatches to the nearest kind that accepts attributes,
// or fails with ErrUnsupportedAttribute.
func (v *Value) SetAttribute(key, val *Value) error {
	if v.Kind == KindString {
		return v.setStringAttribute(key, val)
	}
	if !v.acceptsAttributes() {
		return ErrUnsupportedAttribute
	}
	v.Attrs = append(v.Attrs, Attribute{Key: key, Val: val})
	return nil
}

// CachedHost returns the previously projected host value, if any. Constants
// are never cached: every projection of Nil/True/False is fresh.
func (v *Value) CachedHost() (any, bool) {
	if v.cache.state != cacheFilled {
		return nil, false
	}
	return v.cache.host, true
}

// FillHostCache stores the first successful projection of this value.
// No-op for constants, which stay Uncached forever.
func (v *Value) FillHostCache(host any) {
	if v.cache.state == cacheUncached {
		return
	}
	v.cache.state = cacheFilled
	v.cache.host = host
}

// ResetCache marks a fresh (not-yet-projected) value. Called by
// constructors for every referenceable Kind.
func (v *Value) ResetCache() {
	if v.cache.state != cacheUncached {
		v.cache.state = cacheEmpty
	}
}
