package codec

// Wire tag bytes. The alphabet this codec understands is closed;
// DecodeValue's default case is ErrUnknownTag.
const (
	tagNil         = '0'
	tagTrue        = 'T'
	tagFalse       = 'F'
	tagFixnum      = 'i'
	tagSymbol      = ':'
	tagSymlink     = ';'
	tagString      = '"'
	tagArray       = '['
	tagHash        = '{'
	tagObject      = 'o'
	tagUserDefined = 'u'
	tagUserMarshal = 'U'
	tagIVar        = 'I'
	tagLink        = '@'
)

// magicMajor, magicMinor are the two header bytes every stream must
// open with.
const (
	magicMajor = 4
	magicMinor = 8
)

// maxDepth bounds DecodeValue's recursion against a maliciously deep
// stream, grounded on internal/heap/parser's record-count sanity caps.
const maxDepth = 512
