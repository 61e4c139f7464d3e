// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package expense

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// Kind classifies an operation failure.
type Kind int

const (
	// KindValidation marks a rejected input (e.g. a field name outside
	// the allow-list). No statement was executed.
	KindValidation Kind = iota + 1

	// KindStorage marks a failure reported by the database engine.
	KindStorage

	// KindReadOnly marks a write against a read-only database. Cloud
	// deployments surface this with a stable message independent of the
	// driver's wording.
	KindReadOnly
)

// String returns the kind label used in envelopes and logs.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindStorage:
		return "storage"
	case KindReadOnly:
		return "read_only"
	default:
		return "unknown"
	}
}

// Error is a classified operation failure.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Msg != "" {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// validationErrorf builds a KindValidation error.
func validationErrorf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// storageError wraps a driver failure, promoting read-only violations to
// KindReadOnly with a stable message.
func storageError(op string, err error) *Error {
	var se sqlite3.Error
	if errors.As(err, &se) {
		if se.Code == sqlite3.ErrReadonly || se.ExtendedCode == sqlite3.ErrReadonlyDbMoved {
			return &Error{
				Kind: KindReadOnly,
				Msg:  "database is read-only; writes are not permitted in this deployment",
				Err:  err,
			}
		}
	}
	return &Error{Kind: KindStorage, Msg: op, Err: err}
}

// KindOf extracts the error kind, or KindStorage for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

// IsValidation reports whether err is a rejected-input error.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}
