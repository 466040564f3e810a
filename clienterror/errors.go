package clienterror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// Kind classifies an Error.
type Kind int

// Possible kinds of Error. Unknown is never produced by this package but is
// returned by KindOf for errors that did not originate here.
const (
	Unknown Kind = iota
	MalformedReference
	ToolNotFound
	BackendError
	UnsupportedOperation
	UnsupportedFormat
	CloudUnavailable
	Configuration
)

var kindNames = map[Kind]string{
	Unknown:              "unknown",
	MalformedReference:   "malformed-reference",
	ToolNotFound:         "tool-not-found",
	BackendError:         "backend-error",
	UnsupportedOperation: "unsupported-operation",
	UnsupportedFormat:    "unsupported-format",
	CloudUnavailable:     "cloud-unavailable",
	Configuration:        "configuration",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[Unknown]
}

// Error is the error surfaced to callers of the client. Its message is always
// plain text: colour escape sequences are removed when the error is built.
type Error struct {
	kind  Kind
	msg   string
	input string
	err   error
}

// New returns an Error of the given kind with msg stripped of ANSI escapes.
func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: StripColor(msg)}
}

// Newf is New with a format string.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// NewFromBytes builds an Error from raw process output. Invalid UTF-8 is
// replaced rather than rejected.
func NewFromBytes(kind Kind, b []byte) *Error {
	s := string(b)
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	return New(kind, strings.TrimSpace(s))
}

// Wrap returns an Error of the given kind whose cause is err.
func Wrap(kind Kind, err error, msg string) *Error {
	e := New(kind, msg)
	e.err = err
	return e
}

// WithInput records the user input that caused the error.
func (e *Error) WithInput(input string) *Error {
	e.input = input
	return e
}

func (e *Error) Error() string {
	if e.err != nil && e.msg == "" {
		return StripColor(e.err.Error())
	}
	return e.msg
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// Kind returns the classification of the error.
func (e *Error) Kind() Kind {
	return e.kind
}

// Input returns the offending user input, when there was one.
func (e *Error) Input() string {
	return e.input
}

// Code maps the error kind onto an http status code so that presentation
// layers can treat these errors the same way as any other ClientError.
func (e *Error) Code() int {
	switch e.kind {
	case MalformedReference:
		return http.StatusBadRequest
	case UnsupportedOperation, UnsupportedFormat:
		return http.StatusNotImplemented
	case CloudUnavailable, ToolNotFound:
		return http.StatusServiceUnavailable
	case BackendError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// KindOf returns the Kind of the first Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return Unknown
}

// Is reports whether err's chain contains an Error of the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// StripColor removes terminal escape sequences, for output from tools whose
// colour flag cannot be overridden.
func StripColor(s string) string {
	return ansi.Strip(s)
}
