package model

import (
	"fmt"
	"strconv"
)

// setStringAttribute implements the String attribute rule: the only
// attribute a String accepts is the symbol `E` bound to a boolean.
func (v *Value) setStringAttribute(key, val *Value) error {
	if key.Kind != KindSymbol || string(key.Name) != "E" {
		return ErrUnsupportedAttribute
	}
	if val.Kind != KindTrue && val.Kind != KindFalse {
		return ErrTypeMismatch
	}
	encoded := val.Kind == KindTrue
	v.StringEncoding = &encoded
	return nil
}

func (v *Value) reprString(ctx *ReprCtx) string {
	if !ctx.take(len(v.Bytes) + 2) {
		return "…"
	}
	s := strconv.Quote(string(v.Bytes))
	if v.StringEncoding != nil {
		return fmt.Sprintf("%s<E=%t>", s, *v.StringEncoding)
	}
	return s
}

// toHostString projects to a Go string, caching the projection.
func (v *Value) toHostString() (any, error) {
	if cached, ok := v.CachedHost(); ok {
		return cached, nil
	}
	host := string(v.Bytes)
	v.FillHostCache(host)
	return host, nil
}
