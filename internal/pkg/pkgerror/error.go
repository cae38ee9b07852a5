package pkgerror

import "fmt"

type Type int

const (
	TypeBusiness Type = iota + 1
	TypeServer
)

type Code string

const (
	CodeInvalidInput Code = "invalid_input"
	CodeUnauthorized Code = "unauthorized"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeUnavailable  Code = "unavailable"
	CodeInternal     Code = "internal"
)

// Error is the error shape understood by pkgrouter. Business errors carry a
// user facing message; server errors hide the wrapped cause behind a generic
// message.
type Error struct {
	typ      Type
	code     Code
	msg      string
	redirect string
	err      error
}

func NewBusiness(msg string, code Code) *Error {
	return &Error{typ: TypeBusiness, code: code, msg: msg}
}

func NewServer(err error) *Error {
	return &Error{typ: TypeServer, code: CodeInternal, msg: "internal server error", err: err}
}

// WithRedirect returns a copy of e that tells the client which view to go
// back to.
func (e *Error) WithRedirect(path string) *Error {
	clone := *e
	clone.redirect = path
	return &clone
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Type() Type {
	return e.typ
}

func (e *Error) Code() Code {
	return e.code
}

func (e *Error) Msg() string {
	return e.msg
}

func (e *Error) Redirect() string {
	return e.redirect
}
