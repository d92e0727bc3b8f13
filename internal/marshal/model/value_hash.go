package model

import (
	"strings"

	"github.com/mabhi256/marshal48/internal/marshal/host"
)

func (v *Value) reprHash(ctx *ReprCtx) string {
	leave, cyclic := ctx.enter(v.Ref)
	defer leave()
	if cyclic {
		return "{…}"
	}

	var b strings.Builder
	b.WriteString("{")
	for i, p := range v.Pairs {
		if i > 0 {
			b.WriteString(", ")
		}
		if !ctx.take(1) {
			b.WriteString("…")
			break
		}
		b.WriteString(p.Key.Repr(ctx))
		b.WriteString(" => ")
		b.WriteString(p.Val.Repr(ctx))
	}
	b.WriteString("}")
	return b.String()
}

// toHostHash projects to a host.OrderedMap, preserving insertion order.
// Cached before recursing so self-referential hashes resolve.
func (v *Value) toHostHash(caps *host.Capabilities) (any, error) {
	if cached, ok := v.CachedHost(); ok {
		return cached, nil
	}
	out := make(host.OrderedMap, len(v.Pairs))
	v.FillHostCache(out)
	for i, p := range v.Pairs {
		hk, err := p.Key.ToHost(caps)
		if err != nil {
			return nil, err
		}
		hv, err := p.Val.ToHost(caps)
		if err != nil {
			return nil, err
		}
		out[i] = host.Pair{Key: hk, Val: hv}
	}
	return out, nil
}
