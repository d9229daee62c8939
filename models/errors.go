package models

import (
	"errors"
	"fmt"
)

// Code is the numeric error code of a failed ledger operation. The
// values mirror the original contract's error constants and are part of
// the API surface.
type Code uint32

const (
	CodeUnauthorized          Code = iota + 100 // 100
	CodeInsufficientFunds                       // 101, reserved
	CodeInvalidAsset                            // 102
	CodeTransferFailed                          // 103
	CodeComplianceCheckFailed                   // 104
	CodeInvalidInput                            // 105
	CodeInsufficientShares                      // 106
	CodeEventLogging                            // 107
)

func (c Code) String() string {
	switch c {
	case CodeUnauthorized:
		return "unauthorized"
	case CodeInsufficientFunds:
		return "insufficient funds"
	case CodeInvalidAsset:
		return "invalid asset"
	case CodeTransferFailed:
		return "transfer failed"
	case CodeComplianceCheckFailed:
		return "compliance check failed"
	case CodeInvalidInput:
		return "invalid input"
	case CodeInsufficientShares:
		return "insufficient shares"
	case CodeEventLogging:
		return "event logging failed"
	}
	return fmt.Sprintf("code %d", uint32(c))
}

// Error is a typed ledger failure. Two errors match under errors.Is when
// their codes are equal, regardless of detail text.
type Error struct {
	Code   Code
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Errf builds an *Error with a formatted detail message.
func Errf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// Sentinel values for matching with errors.Is.
var (
	ErrUnauthorized          = &Error{Code: CodeUnauthorized}
	ErrInsufficientFunds     = &Error{Code: CodeInsufficientFunds}
	ErrInvalidAsset          = &Error{Code: CodeInvalidAsset}
	ErrTransferFailed        = &Error{Code: CodeTransferFailed}
	ErrComplianceCheckFailed = &Error{Code: CodeComplianceCheckFailed}
	ErrInvalidInput          = &Error{Code: CodeInvalidInput}
	ErrInsufficientShares    = &Error{Code: CodeInsufficientShares}
	ErrEventLogging          = &Error{Code: CodeEventLogging}
)

// CodeOf extracts the ledger code from err, unwrapping as needed.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return 0, false
}
