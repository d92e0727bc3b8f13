package model

import "strings"

// ReprCtx is a per-rendering context: it owns the
// transient visited-set used to keep composite rendering cycle-safe, and
// a remaining budget so overflow truncates to `…]`/`…}` rather than
// mid-token. The budget is spent one unit per array element, hash pair or
// attribute rendered and len+2 per string; integers, symbols, constants and
// class names cost nothing, so it bounds the output length only loosely.
type ReprCtx struct {
	visited    map[Ref]bool
	budget     int
	overflowed bool
}

// NewReprCtx creates a rendering context with the given budget (see ReprCtx).
func NewReprCtx(maxLen int) *ReprCtx {
	return &ReprCtx{visited: make(map[Ref]bool), budget: maxLen}
}

// Overflowed reports whether any composite rendering hit a cycle
// (ErrCycleDuringRender — diagnostic only, non-fatal).
func (c *ReprCtx) Overflowed() bool { return c.overflowed }

// enter marks ref as in-progress; the returned leave func must be called
// when done. Reports true if ref is already being rendered (a cycle).
func (c *ReprCtx) enter(ref Ref) (leave func(), cyclic bool) {
	if ref.Kind == RegNone {
		return func() {}, false
	}
	if c.visited[ref] {
		c.overflowed = true
		return func() {}, true
	}
	c.visited[ref] = true
	return func() { delete(c.visited, ref) }, false
}

// take consumes n units of the remaining budget, reporting false (and
// consuming nothing) if the budget was already exhausted.
func (c *ReprCtx) take(n int) bool {
	if c.budget <= 0 {
		return false
	}
	c.budget -= n
	return true
}

// Repr renders a bounded, cycle-safe debug representation of v.
func (v *Value) Repr(ctx *ReprCtx) string {
	if v == nil {
		return "nil"
	}
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindInt:
		return v.reprInt()
	case KindSymbol:
		return v.reprSymbol()
	case KindString:
		return v.reprString(ctx)
	case KindArray:
		return v.reprArray(ctx)
	case KindHash:
		return v.reprHash(ctx)
	case KindObject:
		return v.reprObject(ctx)
	case KindUserDefined:
		return v.reprUserDefined(ctx)
	case KindUserMarshal:
		return v.reprUserMarshal(ctx)
	default:
		return "?"
	}
}

// reprAttrs renders the trailing attribute-map suffix shared by the
// GenericObject family, e.g. `{:@x=1, :@y=2}`.
func reprAttrs(ctx *ReprCtx, attrs []Attribute) string {
	if len(attrs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("{")
	for i, a := range attrs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.Key.Repr(ctx))
		b.WriteString("=")
		b.WriteString(a.Val.Repr(ctx))
		if !ctx.take(1) {
			b.WriteString("…")
			break
		}
	}
	b.WriteString("}")
	return b.String()
}
