package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error surfaced by the catalog layer
type Kind int

const (
	KindUnknown Kind = iota
	KindNotReady
	KindUnauthorized
	KindValidation
	KindRemote
	KindPartialSuccess
	KindNotFound
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindNotReady:
		return "NotReady"
	case KindUnauthorized:
		return "Unauthorized"
	case KindValidation:
		return "ValidationError"
	case KindRemote:
		return "RemoteFailure"
	case KindPartialSuccess:
		return "PartialSuccess"
	case KindNotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}

// Sentinel errors, one per kind
var (
	ErrNotReady       = errors.New("not initialized")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrValidation     = errors.New("validation failed")
	ErrRemote         = errors.New("remote call failed")
	ErrPartialSuccess = errors.New("partially applied")
	ErrNotFound       = errors.New("not found")
)

var sentinels = map[Kind]error{
	KindNotReady:       ErrNotReady,
	KindUnauthorized:   ErrUnauthorized,
	KindValidation:     ErrValidation,
	KindRemote:         ErrRemote,
	KindPartialSuccess: ErrPartialSuccess,
	KindNotFound:       ErrNotFound,
}

// unauthorizedMarkers are matched against remote error text, which carries
// no structured code.
var unauthorizedMarkers = []string{"Unauthorized", "admin"}

// Error is a classified error
type Error struct {
	Kind    Kind
	Field   string
	Message string
	StoryID uint64
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		return e.Err.Error()
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind
func (e *Error) Is(target error) bool {
	if s, ok := sentinels[e.Kind]; ok {
		return s == target
	}
	return false
}

// New creates an error of the given kind
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Wrap wraps err with a kind and message
func Wrap(err error, kind Kind, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation creates a validation error for a named input field
func Validation(field, message string) error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// NotReady is returned by writes issued before the gateway is initialized
func NotReady() error {
	return &Error{Kind: KindNotReady, Message: "Actor not initialized"}
}

// PartialSuccess reports that a story was created but a follow-up step failed
func PartialSuccess(storyID uint64, err error) error {
	return &Error{
		Kind:    KindPartialSuccess,
		Message: fmt.Sprintf("story %d created, thumbnail upload failed", storyID),
		StoryID: storyID,
		Err:     err,
	}
}

// Classify maps a remote rejection onto Unauthorized or RemoteFailure,
// keeping the original message. Already classified errors pass through.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	msg := err.Error()
	for _, marker := range unauthorizedMarkers {
		if strings.Contains(msg, marker) {
			return &Error{Kind: KindUnauthorized, Err: err}
		}
	}
	return &Error{Kind: KindRemote, Err: err}
}

// KindOf returns the kind of err, or KindUnknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// IsNotReady returns true if the error is a not-ready error
func IsNotReady(err error) bool {
	return errors.Is(err, ErrNotReady)
}

// IsUnauthorized returns true if the error is an unauthorized error
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsValidation returns true if the error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsRemote returns true if the error is a remote failure
func IsRemote(err error) bool {
	return errors.Is(err, ErrRemote)
}

// IsPartialSuccess returns true if a multi-step mutation failed after its first step
func IsPartialSuccess(err error) bool {
	return errors.Is(err, ErrPartialSuccess)
}

// IsNotFound returns true if the error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
