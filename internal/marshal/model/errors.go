package model

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by decode/encode, per the codec's failure semantics.
// Some call sites wrap them with context (see wrapf); others return them
// bare, so callers test for them with errors.Is. No error carries a stream
// byte offset.
var (
	ErrStreamClosed         = errors.New("marshal: stream error")
	ErrUnexpectedEnd        = errors.New("marshal: unexpected end of stream")
	ErrBadMagic             = errors.New("marshal: bad magic header")
	ErrUnknownTag           = errors.New("marshal: unknown tag")
	ErrUnsupportedFixnum    = errors.New("marshal: unsupported fixnum encoding")
	ErrBadReference         = errors.New("marshal: dangling reference")
	ErrTypeMismatch         = errors.New("marshal: type mismatch")
	ErrUnsupportedAttribute = errors.New("marshal: unsupported attribute")
	ErrFactoryFailure       = errors.New("marshal: factory failed")
	ErrHostCallFailure      = errors.New("marshal: host call failed")
	ErrEncodeOverflow       = errors.New("marshal: value out of encodable range")
	ErrEmptyClassName       = errors.New("marshal: empty class name")
	ErrCycleDuringRender    = errors.New("marshal: cycle detected while rendering")
	ErrDepthExceeded        = errors.New("marshal: nesting depth exceeded")
)

// wrapf wraps a sentinel error kind with formatted context, matching the
// fmt.Errorf("...: %w", err) idiom used throughout the codec.
func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
