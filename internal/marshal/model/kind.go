package model

import "fmt"

// Kind tags the variant a Value holds. The set is closed: every operation
// that dispatches on Kind must handle all of them (see value_*.go).
type Kind byte

const (
	KindNil Kind = iota
	KindTrue
	KindFalse
	KindInt
	KindSymbol
	KindString
	KindArray
	KindHash
	KindObject      // GenericObject
	KindUserDefined
	KindUserMarshal
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "Nil"
	case KindTrue:
		return "True"
	case KindFalse:
		return "False"
	case KindInt:
		return "Int"
	case KindSymbol:
		return "Symbol"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindHash:
		return "Hash"
	case KindObject:
		return "GenericObject"
	case KindUserDefined:
		return "UserDefined"
	case KindUserMarshal:
		return "UserMarshal"
	default:
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
}

// RegKind identifies which of the session's reference tables (if any) a
// Value is registered in.
type RegKind byte

const (
	RegNone      RegKind = iota // constants and Int: never registered
	RegSymbol                   // registered in the session's symbol table
	RegObject                   // registered in the session's object table
	RegEphemeral                 // owned by the session but not referenceable
)

func (r RegKind) String() string {
	switch r {
	case RegNone:
		return "none"
	case RegSymbol:
		return "symbol"
	case RegObject:
		return "object"
	case RegEphemeral:
		return "ephemeral"
	default:
		return fmt.Sprintf("RegKind(%d)", byte(r))
	}
}

// Ref is the identity slot carried by every Value: which
// table it lives in, and its dense, creation-order index into that table.
type Ref struct {
	Kind RegKind
	ID   uint32
}

func (r Ref) String() string {
	if r.Kind == RegNone {
		return "-"
	}
	return fmt.Sprintf("%s#%d", r.Kind, r.ID)
}
