/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import "reflect"

// ActivationError is the single error kind surfaced by the plan compiler:
// constructor selection failures, unresolvable parameters, nil delegate
// results, initializer failures and plan compilation failures all carry it.
// It holds the implementation identity (when known) and, where applicable,
// the underlying cause.
type ActivationError struct {
	// Impl is the implementation type being activated, or nil when the
	// failure is not tied to one type.
	Impl reflect.Type
	// Msg is the human-readable explanation.
	Msg string
	// Cause is the wrapped underlying failure, or nil.
	Cause error
}

// NewActivationError constructs an ActivationError without a cause.
func NewActivationError(impl reflect.Type, msg string) *ActivationError {
	return &ActivationError{Impl: impl, Msg: msg}
}

// WrapActivation constructs an ActivationError wrapping cause.
func WrapActivation(impl reflect.Type, msg string, cause error) *ActivationError {
	return &ActivationError{Impl: impl, Msg: msg, Cause: cause}
}

// Error implements the error interface.
func (e *ActivationError) Error() string {
	s := "injx: " + e.Msg
	if e.Impl != nil {
		s += " (" + e.Impl.String() + ")"
	}
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

// Unwrap returns the underlying cause, or nil.
func (e *ActivationError) Unwrap() error { return e.Cause }
