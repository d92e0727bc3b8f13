package model

import "github.com/mabhi256/marshal48/internal/marshal/host"

// ToHost projects v into the embedding environment using caps, dispatching
// on Kind. Composite and object-family kinds cache their
// projection on the Value itself; constants never cache.
func (v *Value) ToHost(caps *host.Capabilities) (any, error) {
	switch v.Kind {
	case KindNil, KindTrue, KindFalse:
		return v.toHostConstant()
	case KindInt:
		return v.toHostInt()
	case KindSymbol:
		return v.toHostSymbol()
	case KindString:
		return v.toHostString()
	case KindArray:
		return v.toHostArray(caps)
	case KindHash:
		return v.toHostHash(caps)
	case KindObject:
		return v.toHostObject(caps)
	case KindUserDefined:
		return v.toHostUserDefined(caps)
	case KindUserMarshal:
		return v.toHostUserMarshal(caps)
	default:
		return nil, ErrTypeMismatch
	}
}
