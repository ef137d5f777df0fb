package services

import (
	"errors"
	"fmt"
)

// Kind classifies every failure a core operation can report.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindUnauthorized
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

// Error is the single categorized outcome of a failed operation. Message is
// safe to show to clients; Err carries the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Client-facing messages.
const (
	MsgInvalidRequest     = "invalid request"
	MsgInvalidToken       = "invalid token"
	MsgMissingToken       = "missing authorization token"
	MsgAdminOnly          = "admin only resource"
	MsgSignupConflict     = "user with this phone number already exists"
	MsgWrongOTP           = "wrong OTP code"
	MsgUserNotFound       = "user not found"
	MsgWrongCredentials   = "wrong phone number or password"
	MsgOrderNotFound      = "order not found"
	MsgOrdersListNotFound = "orders list not found"
	MsgStatusUnchanged    = "order status unchanged"
	MsgInvalidStatus      = "status must be one of accepted, onthemove or completed"
	MsgMenuNotFound       = "menu not found"
	MsgPaymentFailed      = "payment could not be initiated"
	MsgServerError        = "internal server error"
)

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: MsgServerError, Err: err}
}

// KindOf returns the kind of err, or KindInternal for uncategorized errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
