package model

import (
	"strings"

	"github.com/mabhi256/marshal48/internal/marshal/host"
)

func (v *Value) reprArray(ctx *ReprCtx) string {
	leave, cyclic := ctx.enter(v.Ref)
	defer leave()
	if cyclic {
		return "[…]"
	}

	var b strings.Builder
	b.WriteString("[")
	for i, el := range v.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		if !ctx.take(1) {
			b.WriteString("…")
			break
		}
		b.WriteString(el.Repr(ctx))
	}
	b.WriteString("]")
	return b.String()
}

// toHostArray projects to a []any, recursively projecting each element.
// The cache slot is filled with the (possibly still being populated) slice
// before recursing, so a back-reference cycle through this array resolves
// to the same live slice instead of looping forever.
func (v *Value) toHostArray(caps *host.Capabilities) (any, error) {
	if cached, ok := v.CachedHost(); ok {
		return cached, nil
	}
	out := make([]any, len(v.Elements))
	v.FillHostCache(out)
	for i, el := range v.Elements {
		hv, err := el.ToHost(caps)
		if err != nil {
			return nil, err
		}
		out[i] = hv
	}
	return out, nil
}
