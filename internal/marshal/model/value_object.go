package model

import (
	"strings"

	"github.com/mabhi256/marshal48/internal/marshal/host"
)

func (v *Value) reprObject(ctx *ReprCtx) string {
	leave, cyclic := ctx.enter(v.Ref)
	defer leave()
	if cyclic {
		return "#<" + v.ClassName + " …>"
	}
	return "#<" + v.ClassName + " " + reprAttrs(ctx, v.Attrs) + ">"
}

// attributeHostKey strips a leading `@` from a symbol-valued attribute key
// before assigning it on the host object.
func attributeHostKey(key *Value) string {
	if key.Kind == KindSymbol {
		return strings.TrimPrefix(string(key.Name), "@")
	}
	return key.Repr(NewReprCtx(64))
}

// toHostObject projects a GenericObject by materializing it through the
// Factory, then assigning each attribute. The cache is filled as soon as
// the host object exists (before attributes are applied, and before
// recursing into attribute values), so a cycle back to this object
// resolves to the same live host value.
func (v *Value) toHostObject(caps *host.Capabilities) (any, error) {
	if cached, ok := v.CachedHost(); ok {
		return cached, nil
	}
	if caps == nil || caps.Factory == nil {
		return nil, ErrFactoryFailure
	}
	hv, err := caps.Factory(v.ClassName)
	if err != nil || hv == nil {
		return nil, wrapf(ErrFactoryFailure, "class %q: %v", v.ClassName, err)
	}
	v.FillHostCache(hv)

	for _, a := range v.Attrs {
		hval, err := a.Val.ToHost(caps)
		if err != nil {
			return nil, err
		}
		if err := hv.SetAttribute(attributeHostKey(a.Key), hval); err != nil {
			return nil, wrapf(ErrHostCallFailure, "set attribute %q: %v", attributeHostKey(a.Key), err)
		}
	}
	return hv, nil
}
