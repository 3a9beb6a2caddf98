package blit

import (
	"errors"
	"fmt"
)

// Kind categorizes an error.
type Kind int

// Error kinds.
const (
	// KindUnknown is an error of unknown type.
	KindUnknown Kind = iota

	// FormatNotSupported is returned when the requested pixel format is not the platform's native
	// format. The caller may retry with the native format.
	FormatNotSupported

	// HandleMismatch is returned when the window or display handle does not belong to the backend.
	HandleMismatch

	// NativeResourceCreationFailed is returned when the platform can not create the native image or
	// drawing context backing a buffer.
	NativeResourceCreationFailed

	// TransferFailed is returned when the native blit failed, or the pixels could not be prepared
	// for it. The buffer is left intact and may be blitted again.
	TransferFailed

	// InvalidArgument is returned for sizes that can not be represented.
	InvalidArgument
)

func (k Kind) String() string {
	switch k {
	case FormatNotSupported:
		return "format not supported"
	case HandleMismatch:
		return "handle mismatch"
	case NativeResourceCreationFailed:
		return "native resource creation failed"
	case TransferFailed:
		return "transfer failed"
	case InvalidArgument:
		return "invalid argument"
	default:
		return "unknown"
	}
}

// Sentinel errors, one per kind; errors.Is matches any *Error of the same kind.
var (
	ErrFormatNotSupported = &Error{Kind: FormatNotSupported}
	ErrHandleMismatch     = &Error{Kind: HandleMismatch}
	ErrNativeResource     = &Error{Kind: NativeResourceCreationFailed}
	ErrTransfer           = &Error{Kind: TransferFailed}
	ErrInvalidArgument    = &Error{Kind: InvalidArgument}
	ErrClosed             = errors.New("blit: buffer is closed")
)

// Error is returned by every operation of this module and its backends.
type Error struct {
	// Op is the operation that failed (e.g., "x11.New").
	Op string

	// Kind categorizes the error.
	Kind Kind

	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Op == "" && e.Err == nil:
		return "blit: " + e.Kind.String()
	case e.Err == nil:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	case e.Op == "":
		return fmt.Sprintf("blit: %s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Wrap returns an *Error for the operation, or nil if err is nil.
func Wrap(op string, kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

// Errorf returns an *Error with a formatted cause.
func Errorf(op string, kind Kind, format string, args ...any) error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
