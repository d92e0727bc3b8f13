// Package demohost is the CLI's stand-in embedding environment: a
// Factory that materializes every class name as a generic, introspectable
// host value, so `marshal48 decode` can project decoded files without
// a real host language attached. Grounded
// on internal/marshal/host's Capabilities contract; this is the one
// concrete implementation of it the module ships.
package demohost

import (
	"fmt"

	"github.com/mabhi256/marshal48/internal/marshal/host"
)

// Object is a class-named attribute bag backed by a map[string]any, plus
// whichever dump/load hook payload it was given.
type Object struct {
	class string
	attrs map[string]any
	order []string

	loadPayload    []byte
	marshalPayload any
}

// NewFactory returns a host.Factory that builds an *Object for any class
// name, never failing.
func NewFactory() host.Factory {
	return func(className string) (host.Value, error) {
		return &Object{class: className, attrs: make(map[string]any)}, nil
	}
}

// ClassName implements host.ClassNamed.
func (o *Object) ClassName() string { return o.class }

// SetAttribute implements host.Value.
func (o *Object) SetAttribute(key string, v any) error {
	if _, ok := o.attrs[key]; !ok {
		o.order = append(o.order, key)
	}
	o.attrs[key] = v
	return nil
}

// Attr looks up a previously set attribute.
func (o *Object) Attr(key string) (any, bool) {
	v, ok := o.attrs[key]
	return v, ok
}

// ListAttributes implements host.AttributeLister, preserving the order
// attributes were first set in.
func (o *Object) ListAttributes() []host.Pair {
	out := make([]host.Pair, 0, len(o.order))
	for _, k := range o.order {
		out = append(out, host.Pair{Key: k, Val: o.attrs[k]})
	}
	return out
}

// Invoke implements host.Value's four named hooks. load/marshal_load
// store whatever they're given so a later dump/marshal_dump on the same
// in-memory Object can hand it straight back, so marshal.FromHost on a
// decoded Object re-encodes it as the same UserDefined/UserMarshal value.
func (o *Object) Invoke(method string, arg any) (any, error) {
	switch method {
	case "load":
		b, ok := arg.([]byte)
		if !ok {
			return nil, fmt.Errorf("load: want []byte, got %T", arg)
		}
		o.loadPayload = append([]byte(nil), b...)
		return nil, nil
	case "marshal_load":
		o.marshalPayload = arg
		return nil, nil
	case "dump":
		if o.loadPayload == nil {
			return nil, host.ErrMethodNotSupported
		}
		return append([]byte(nil), o.loadPayload...), nil
	case "marshal_dump":
		if o.marshalPayload == nil {
			return nil, host.ErrMethodNotSupported
		}
		return o.marshalPayload, nil
	default:
		return nil, host.ErrMethodNotSupported
	}
}
