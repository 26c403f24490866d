package types

import "errors"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindLoad     ErrKind = iota // document could not be opened (bad path, wrong password, malformed file)
	ErrKindDecode                  // stream content could not be decoded for display
	ErrKindUsage                   // malformed command line
	ErrKindState                   // operation invalid for the current lifecycle state
	ErrKindNotFound                // missing tree path, object or recent entry
)

// String returns a short lowercase label for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindLoad:
		return "load"
	case ErrKindDecode:
		return "decode"
	case ErrKindUsage:
		return "usage"
	case ErrKindState:
		return "state"
	case ErrKindNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause

	category bool // matches every error of Kind under errors.Is
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

// Is lets errors.Is(err, ErrLoad) match every load failure regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return t.category && t.Kind == e.Kind
}

// Kind sentinels. Compare with errors.Is to test the category of an error.
var (
	// ErrLoad matches any document load failure.
	ErrLoad = &Error{Kind: ErrKindLoad, Msg: "load error", category: true}
	// ErrDecode matches any stream decoding failure.
	ErrDecode = &Error{Kind: ErrKindDecode, Msg: "decode error", category: true}
	// ErrUsage matches any command line usage error.
	ErrUsage = &Error{Kind: ErrKindUsage, Msg: "usage error", category: true}
	// ErrState matches any lifecycle state error.
	ErrState = &Error{Kind: ErrKindState, Msg: "state error", category: true}
	// ErrNotFound matches any lookup failure.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found", category: true}
)

// Sentinels commonly returned by implementations.
var (
	// ErrNoDocument indicates an operation that needs an open document ran without one.
	ErrNoDocument = &Error{Kind: ErrKindState, Msg: "no document open"}
	// ErrClosed indicates use of a document after Close.
	ErrClosed = &Error{Kind: ErrKindState, Msg: "document is closed"}
	// ErrPassword indicates an encrypted document that the given password does not open.
	ErrPassword = &Error{Kind: ErrKindLoad, Msg: "password required or incorrect"}
	// ErrMissingPassword indicates -password was given without a value.
	ErrMissingPassword = &Error{Kind: ErrKindUsage, Msg: "-password requires a value"}
)

// Wrap builds a typed error of the given kind around cause.
func Wrap(kind ErrKind, msg string, cause error) error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
