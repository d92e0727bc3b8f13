package model

import (
	"fmt"

	"github.com/mabhi256/marshal48/internal/marshal/host"
)

func (v *Value) reprUserDefined(ctx *ReprCtx) string {
	leave, cyclic := ctx.enter(v.Ref)
	defer leave()
	if cyclic {
		return "#<" + v.ClassName + " …>"
	}
	body := fmt.Sprintf("%d bytes", len(v.Bytes))
	if suffix := reprAttrs(ctx, v.Attrs); suffix != "" {
		body += " " + suffix
	}
	return "#<" + v.ClassName + ":load " + body + ">"
}

// toHostUserDefined projects by materializing the host object via Factory,
// invoking its `load` hook with the opaque payload, then applying
// attributes.
func (v *Value) toHostUserDefined(caps *host.Capabilities) (any, error) {
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

	if _, err := hv.Invoke("load", append([]byte(nil), v.Bytes...)); err != nil {
		return nil, wrapf(ErrHostCallFailure, "load: %v", err)
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
