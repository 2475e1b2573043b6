package types

import "errors"

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindType      ErrKind = iota // accessor called on the wrong tag
	ErrKindNotFound                 // keyed/indexed lookup missed
	ErrKindInvalidOp                // edit on a non-container, unrelated sibling, ...
	ErrKindDecode                   // malformed input bytes
	ErrKindBuffer                   // encode target too small
	ErrKindIO                       // file open/write failure
	ErrKindLimit                    // a configured Limits bound was exceeded
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindType:
		return "type"
	case ErrKindNotFound:
		return "not-found"
	case ErrKindInvalidOp:
		return "invalid-operation"
	case ErrKindDecode:
		return "decode"
	case ErrKindBuffer:
		return "buffer"
	case ErrKindIO:
		return "io"
	case ErrKindLimit:
		return "limit"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause

	base *Error // sentinel this error was derived from, see Wrap
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e.base == nil {
		return false
	}
	return e.base == t
}

// Sentinels commonly returned by implementations.
var (
	// ErrTypeMismatch indicates an accessor or setter was used on the wrong tag.
	ErrTypeMismatch = &Error{Kind: ErrKindType, Msg: "tag has different type"}
	// ErrNotFound indicates a keyed or indexed child lookup missed.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrInvalidOperation indicates a structural edit that cannot apply here.
	ErrInvalidOperation = &Error{Kind: ErrKindInvalidOp, Msg: "invalid operation"}
	// ErrNoParent indicates Parent was called on a cursor with an empty ancestor stack.
	ErrNoParent = &Error{Kind: ErrKindInvalidOp, Msg: "cursor has no parent"}
	// ErrReleased indicates the node behind a cursor has already been freed.
	ErrReleased = &Error{Kind: ErrKindInvalidOp, Msg: "node released"}
	// ErrDecode indicates the input bytes could not be decoded.
	ErrDecode = &Error{Kind: ErrKindDecode, Msg: "decode failure"}
	// ErrInsufficientBuffer indicates the encoder ran out of buffer capacity.
	ErrInsufficientBuffer = &Error{Kind: ErrKindBuffer, Msg: "insufficient buffer"}
	// ErrIO indicates a file could not be opened or fully written.
	ErrIO = &Error{Kind: ErrKindIO, Msg: "i/o failure"}
	// ErrLimit indicates a Limits bound was exceeded.
	ErrLimit = &Error{Kind: ErrKindLimit, Msg: "limit exceeded"}
)

// Wrap returns a new *Error of the sentinel's kind carrying msg and cause.
// errors.Is(result, sentinel) holds.
func Wrap(sentinel *Error, msg string, cause error) error {
	return &Error{Kind: sentinel.Kind, Msg: msg, Err: cause, base: sentinel}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries a typed error of kind k.
func IsKind(err error, k ErrKind) bool {
	kind, ok := KindOf(err)
	return ok && kind == k
}
