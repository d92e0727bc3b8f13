// Package host defines the "host projection" capability set: a class-name
// factory and a duck-typed host value, passed explicitly rather than
// reached for through
// a global singleton. Grounded on internal/heap/analyzer/resolver.go and
// context.go's pattern of threading a small resolution context through
// every call instead of package-level state.
package host

import "errors"

// ErrMethodNotSupported is the sentinel a Value's Invoke returns for a
// hook it does not implement (e.g. a plain GenericObject asked for
// `marshal_dump`), distinguishing "this value has no such hook" from an
// actual failure inside one it does implement.
var ErrMethodNotSupported = errors.New("host: method not supported")

// Factory materializes a host value for a class name.
// It must be deterministic within a session and must not return a nil
// Value without an error.
type Factory func(className string) (Value, error)

// Value is an opaque handle into the embedding environment. The codec
// manipulates it only through attribute assignment and single-argument
// named-method invocation: `load`, `marshal_load`, `dump`,
// `marshal_dump`.
type Value interface {
	SetAttribute(key string, v any) error
	Invoke(method string, arg any) (any, error)
}

// Capabilities is the small capability struct passed into decode/encode
// instead of a package-level Factory.
type Capabilities struct {
	Factory Factory
}

// New builds a Capabilities from a Factory.
func New(factory Factory) *Capabilities {
	return &Capabilities{Factory: factory}
}

// Pair is one entry of an OrderedMap.
type Pair struct {
	Key any
	Val any
}

// OrderedMap is the host projection of a Hash: Go has no ordered map
// literal, and Hash key order is observable on re-encode, so Hash projects
// to this rather than a plain map[any]any.
type OrderedMap []Pair

// AttributeLister is an optional capability a Value may implement to
// support FromHost for GenericObject: list its attributes in the order
// they should be emitted. A Value that only supports the UserDefined/
// UserMarshal dump hooks need not implement it.
type AttributeLister interface {
	ListAttributes() []Pair
}

// ClassNamed is an optional capability a Value implements to support
// FromHost: it reports the class name the encoded GenericObject,
// UserDefined or UserMarshal wire value should carry. A Value with no
// ClassName is encoded as an anonymous "Object".
type ClassNamed interface {
	ClassName() string
}

// Symbol distinguishes a host string meant to round-trip as a Symbol
// from an ordinary String: both project to a plain Go
// string on decode, so FromHost needs this wrapper to tell them apart
// on the way back in.
type Symbol string

