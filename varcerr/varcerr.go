// Package varcerr defines the closed error taxonomy that every VARC
// component reports through. Messages themselves are still built with
// github.com/luci/luci-go/common/errors; this package only adds a Code
// so callers (in particular the CLI's exit-code mapping) can switch on
// failure kind without parsing strings.
package varcerr

import (
	"github.com/luci/luci-go/common/errors"
)

// Code identifies which failure category an error belongs to.
type Code int

const (
	// Unknown is the zero value; it should never be attached deliberately.
	Unknown Code = iota
	MalformedHeader
	Truncated
	PasswordRequired
	DecryptFailure
	CompressionFailure
	DecompressionFailure
	ChecksumMismatch
	NotFound
	IoFailure
	InvalidArgument
	CryptoFailure
	Duplicate
)

func (c Code) String() string {
	switch c {
	case MalformedHeader:
		return "MalformedHeader"
	case Truncated:
		return "Truncated"
	case PasswordRequired:
		return "PasswordRequired"
	case DecryptFailure:
		return "DecryptFailure"
	case CompressionFailure:
		return "CompressionFailure"
	case DecompressionFailure:
		return "DecompressionFailure"
	case ChecksumMismatch:
		return "ChecksumMismatch"
	case NotFound:
		return "NotFound"
	case IoFailure:
		return "IoFailure"
	case InvalidArgument:
		return "InvalidArgument"
	case CryptoFailure:
		return "CryptoFailure"
	case Duplicate:
		return "Duplicate"
	default:
		return "Unknown"
	}
}

// codedError pairs a Code with the underlying github.com/luci/luci-go
// error that carries the human-readable reason.
type codedError struct {
	code Code
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

// New builds a fresh error tagged with code, using luci-go's
// %(key)s-style reason formatting.
func New(code Code, reason string) error {
	return &codedError{code, errors.Reason(reason).Err()}
}

// Newf builds a tagged error with luci-go's %(name)verb substitution
// template and details supplied as alternating key/value pairs.
func Newf(code Code, reason string, kv ...interface{}) error {
	b := errors.Reason(reason)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		b = b.D(key, kv[i+1])
	}
	return &codedError{code, b.Err()}
}

// Annotate wraps an existing error with a Code and an additional reason,
// using luci-go's errors.Annotate(err).Reason(...).Err() idiom.
func Annotate(err error, code Code, reason string) error {
	if err == nil {
		return nil
	}
	return &codedError{code, errors.Annotate(err).Reason(reason).Err()}
}

// CodeOf extracts the Code attached to err, or Unknown if err was never
// tagged by this package.
func CodeOf(err error) Code {
	for err != nil {
		if ce, ok := err.(*codedError); ok {
			return ce.code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return Unknown
}

// Is reports whether err (or anything it wraps) carries code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
