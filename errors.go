// Copyright (C) 2022  Shanhu Tech Inc.
//
// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the
// Free Software Foundation, either version 3 of the License, or (at your
// option) any later version.
//
// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU Affero General Public License
// for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ccproto

import (
	"errors"
	"fmt"

	"shanhu.io/misc/errcode"
)

var (
	// ErrWrongDependencyCount is the kind of error returned when a
	// dependency attribute does not hold exactly one target.
	ErrWrongDependencyCount = errors.New("wrong dependency count")

	// ErrPreconditionViolation is the kind of error returned when a caller
	// breaks the contract of the analysis core, such as a dependency missing
	// its mandatory files-to-build provider or an empty product name. It is
	// a defect of the caller and is never retried.
	ErrPreconditionViolation = errors.New("precondition violation")
)

// RuleError is an analysis error attributed to a rule and, when known, to
// one of its attributes.
type RuleError struct {
	Label string // Label of the target being analyzed; may be empty.
	Attr  string // Offending attribute; may be empty.
	Kind  error  // ErrWrongDependencyCount or ErrPreconditionViolation.
	Err   error
}

func (e *RuleError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Err != nil {
		msg = e.Err.Error()
	}
	switch {
	case e.Label != "" && e.Attr != "":
		return fmt.Sprintf("%s: attribute %q: %s", e.Label, e.Attr, msg)
	case e.Label != "":
		return fmt.Sprintf("%s: %s", e.Label, msg)
	case e.Attr != "":
		return fmt.Sprintf("attribute %q: %s", e.Attr, msg)
	}
	return msg
}

// Is matches the error kind, so errors.Is(err, ErrWrongDependencyCount)
// works on a *RuleError.
func (e *RuleError) Is(target error) bool { return target == e.Kind }

func (e *RuleError) Unwrap() error { return e.Err }

func attrError(label, attr string, err error) *RuleError {
	return &RuleError{
		Label: label,
		Attr:  attr,
		Kind:  ErrWrongDependencyCount,
		Err:   err,
	}
}

func preconditionf(label, f string, args ...interface{}) *RuleError {
	return &RuleError{
		Label: label,
		Kind:  ErrPreconditionViolation,
		Err:   errcode.InvalidArgf(f, args...),
	}
}
