// Package registry implements the Session: the reference registry that is
// the scoped state of one decode or encode
// operation. Grounded on internal/heap/registry's StringRegistry/
// BaseRegistry pattern (append-only map/slice plus a count), generalized
// from HPROF's string table to the two append-only, creation-order-indexed
// tables ("symbols" and "objects") the Marshal 4.8 format needs.
package registry

import "github.com/mabhi256/marshal48/internal/marshal/model"

// Session owns the value arena and reference tables for a single decode or
// encode operation. It is not safe for concurrent use.
type Session struct {
	symbols   []*model.Value
	objects   []*model.Value
	ephemeral []*model.Value
	constants [3]*model.Value // Nil, True, False, indexed by Kind

	symbolsByName    map[string]int
	stringsByContent map[string]*model.Value
}

// New creates an empty Session.
func New() *Session {
	return &Session{
		symbolsByName:    make(map[string]int),
		stringsByContent: make(map[string]*model.Value),
	}
}

// Symbols returns the session's symbol table in creation order. The
// returned slice must not be mutated by the caller.
func (s *Session) Symbols() []*model.Value { return s.symbols }

// Objects returns the session's object table in creation order. The
// returned slice must not be mutated by the caller.
func (s *Session) Objects() []*model.Value { return s.objects }

// Lookup resolves a Ref to its registered Value, or ErrBadReference if the
// id is outside the current table.
func (s *Session) Lookup(ref model.Ref) (*model.Value, error) {
	switch ref.Kind {
	case model.RegSymbol:
		if int(ref.ID) >= len(s.symbols) {
			return nil, model.ErrBadReference
		}
		return s.symbols[ref.ID], nil
	case model.RegObject:
		if int(ref.ID) >= len(s.objects) {
			return nil, model.ErrBadReference
		}
		return s.objects[ref.ID], nil
	default:
		return nil, model.ErrBadReference
	}
}

// LookupSymbol resolves a `;` back-reference id.
func (s *Session) LookupSymbol(id uint32) (*model.Value, error) {
	return s.Lookup(model.Ref{Kind: model.RegSymbol, ID: id})
}

// LookupObject resolves an `@` back-reference id.
func (s *Session) LookupObject(id uint32) (*model.Value, error) {
	return s.Lookup(model.Ref{Kind: model.RegObject, ID: id})
}

func (s *Session) registerSymbol(v *model.Value) {
	v.Ref = model.Ref{Kind: model.RegSymbol, ID: uint32(len(s.symbols))}
	s.symbols = append(s.symbols, v)
}

func (s *Session) registerObject(v *model.Value) {
	v.Ref = model.Ref{Kind: model.RegObject, ID: uint32(len(s.objects))}
	s.objects = append(s.objects, v)
}

// adoptEphemeral keeps a non-referenceable value alive for the session's
// lifetime (constants, and any value a caller builds but never registers).
func (s *Session) adoptEphemeral(v *model.Value) {
	s.ephemeral = append(s.ephemeral, v)
}

// --- Constructors (programmatic surface) ---
//
// Every referenceable constructor registers the value before the caller
// fills in its contents, so that a value can hold a back-reference to
// itself.

// NewNil, NewTrue, NewFalse return the session's shared constants.
func (s *Session) NewNil() *model.Value   { return s.constant(model.KindNil) }
func (s *Session) NewTrue() *model.Value  { return s.constant(model.KindTrue) }
func (s *Session) NewFalse() *model.Value { return s.constant(model.KindFalse) }

func (s *Session) constant(kind model.Kind) *model.Value {
	if v := s.constants[kind]; v != nil {
		return v
	}
	v := model.NewConstant(kind)
	s.adoptEphemeral(v)
	s.constants[kind] = v
	return v
}

// NewInt builds an unregistered Int value. Int is never
// registered.
func (s *Session) NewInt(n int64) *model.Value {
	v := &model.Value{Kind: model.KindInt, IntVal: n}
	s.adoptEphemeral(v)
	return v
}

// NewSymbol always creates and registers a fresh Symbol, even if a symbol
// with the same name already exists. Used by the decoder's `:` tag, where
// the wire format is explicit about identity.
func (s *Session) NewSymbol(name []byte) *model.Value {
	v := &model.Value{Kind: model.KindSymbol, Name: append([]byte(nil), name...)}
	v.ResetCache()
	s.registerSymbol(v)
	s.symbolsByName[string(name)] = int(v.Ref.ID)
	return v
}

// InternSymbol returns the existing Symbol with this name if one was
// already created in this session, or creates one. This is the "encoders
// must deduplicate via the symbol table" dedup path, used
// when building a value tree from host data rather than decoding a stream.
func (s *Session) InternSymbol(name []byte) *model.Value {
	if id, ok := s.symbolsByName[string(name)]; ok {
		return s.symbols[id]
	}
	return s.NewSymbol(name)
}

// FindSymbolByName reports whether a symbol with this name was already
// created in this session, without creating one.
func (s *Session) FindSymbolByName(name []byte) (*model.Value, bool) {
	id, ok := s.symbolsByName[string(name)]
	if !ok {
		return nil, false
	}
	return s.symbols[id], true
}

// NewString always creates and registers a fresh String, independent of
// content. Used by the decoder's `"` tag.
func (s *Session) NewString(content []byte) *model.Value {
	v := &model.Value{Kind: model.KindString, Bytes: append([]byte(nil), content...)}
	v.ResetCache()
	s.registerObject(v)
	return v
}

// InternString returns a previously-created String with identical content
// in this session, or creates one. This is the marshal-side content dedup
// used when converting host strings into the value tree
// so that repeated strings become object back-references on encode.
func (s *Session) InternString(content []byte) *model.Value {
	if v, ok := s.stringsByContent[string(content)]; ok {
		return v
	}
	v := s.NewString(content)
	s.stringsByContent[string(content)] = v
	return v
}

// NewArray registers an empty Array. Append to its Elements field directly.
func (s *Session) NewArray() *model.Value {
	v := &model.Value{Kind: model.KindArray}
	v.ResetCache()
	s.registerObject(v)
	return v
}

// NewHash registers an empty Hash. Append to its Pairs field directly.
func (s *Session) NewHash() *model.Value {
	v := &model.Value{Kind: model.KindHash}
	v.ResetCache()
	s.registerObject(v)
	return v
}

// NewObject registers an empty GenericObject for the given class-name Symbol.
func (s *Session) NewObject(className *model.Value) *model.Value {
	v := &model.Value{Kind: model.KindObject, ClassNameValue: className, ClassName: string(className.Name)}
	v.ResetCache()
	s.registerObject(v)
	return v
}

// NewUserDefined registers a UserDefined value with its opaque payload.
func (s *Session) NewUserDefined(className *model.Value, payload []byte) *model.Value {
	v := &model.Value{
		Kind: model.KindUserDefined, ClassNameValue: className, ClassName: string(className.Name),
		Bytes: append([]byte(nil), payload...),
	}
	v.ResetCache()
	s.registerObject(v)
	return v
}

// NewUserMarshal registers a UserMarshal value wrapping nested.
func (s *Session) NewUserMarshal(className *model.Value, nested *model.Value) *model.Value {
	v := &model.Value{Kind: model.KindUserMarshal, ClassNameValue: className, ClassName: string(className.Name), Nested: nested}
	v.ResetCache()
	s.registerObject(v)
	return v
}
