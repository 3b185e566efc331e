package puz

import "fmt"

// Kind categorizes the errors this package returns, mirroring the
// taxonomy of legacy Across Lite tooling: a malformed file is handled
// differently than an invalid argument or a checksum that simply didn't
// match the supplied key.
type Kind int

const (
	// KindMalformedHeader means the input buffer was shorter than the fixed
	// header, or a header field was out of range.
	KindMalformedHeader Kind = iota

	// KindMalformedBody means the variable-length body or a trailing
	// section couldn't be parsed: a clue count that ran past the end of the
	// buffer, a GRBS section with no matching RTBL, a section that
	// contributed zero bytes, or a malformed "WxH" size line.
	KindMalformedBody

	// KindInvalidArgument means the caller passed a nil puzzle, a negative
	// or out-of-range index, or asked to set the clue count on a puzzle
	// that already has clues.
	KindInvalidArgument

	// KindNotLocked means Unlock was called on a puzzle that isn't
	// scrambled.
	KindNotLocked

	// KindWrongKey means the supplied key decoded to a solution whose
	// checksum didn't match the scrambled checksum in the header.
	KindWrongKey
)

func (k Kind) String() string {
	switch k {
	case KindMalformedHeader:
		return "malformed header"
	case KindMalformedBody:
		return "malformed body"
	case KindInvalidArgument:
		return "invalid argument"
	case KindNotLocked:
		return "not locked"
	case KindWrongKey:
		return "wrong key"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every operation in this package that
// can fail for a reason more specific than "some lower layer failed".
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("puz: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("puz: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func newErr(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

func newErrf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func wrapErr(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}
