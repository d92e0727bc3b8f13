package model

import "github.com/mabhi256/marshal48/internal/marshal/host"

func (v *Value) reprUserMarshal(ctx *ReprCtx) string {
	leave, cyclic := ctx.enter(v.Ref)
	defer leave()
	if cyclic {
		return "#<" + v.ClassName + " …>"
	}
	body := "nil"
	if v.Nested != nil {
		body = v.Nested.Repr(ctx)
	}
	out := "#<" + v.ClassName + ":marshal_load " + body
	if suffix := reprAttrs(ctx, v.Attrs); suffix != "" {
		out += " " + suffix
	}
	return out + ">"
}

// toHostUserMarshal projects by materializing the host object via Factory,
// projecting the nested value, invoking `marshal_load` with it, then
// applying attributes.
func (v *Value) toHostUserMarshal(caps *host.Capabilities) (any, error) {
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

	var nested any
	if v.Nested != nil {
		nested, err = v.Nested.ToHost(caps)
		if err != nil {
			return nil, err
		}
	}
	if _, err := hv.Invoke("marshal_load", nested); err != nil {
		return nil, wrapf(ErrHostCallFailure, "marshal_load: %v", err)
	}
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
