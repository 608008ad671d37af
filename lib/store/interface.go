package store

import (
	"fmt"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// IStore is the generic interface for interacting with the key-value store
// engine. The engine never reports "key not found" as an error: Load and
// Erase carry an explicit found flag, and the error return is reserved for
// internal faults (and, for remote implementations, transport failures).
type IStore interface {
	// Load returns the value for a key. The boolean return value indicates
	// whether a value for the key was found. The engine state is unchanged.
	Load(key string) (value []byte, found bool, err error)
	// Store inserts or updates a key-value pair. An existing value for the
	// same key is overwritten unconditionally.
	Store(key string, value []byte) (err error)
	// Erase removes a key-value pair. The boolean return value indicates
	// whether the key was present. Erasing a missing key is a no-op.
	Erase(key string) (found bool, err error)
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode)
// and an error message.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message.
}

// Error implements the error interface.
func (e *Error) Error() string {
	errorCode := ""
	switch e.Code {
	case RetCInternalError:
		errorCode = "InternalError"
	case RetCInvalidKey:
		errorCode = "InvalidKey"
	default:
		errorCode = "Unknown"
	}

	return fmt.Sprintf("StoreError (code %s): %s", errorCode, e.Msg)
}

// NewError creates a new store Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess       RetCode = iota // 0: Command executed successfully.
	RetCInternalError                // 1: Command failed due to an internal error.
	RetCInvalidKey                   // 2: The key is not a valid store key (e.g. empty).
)
