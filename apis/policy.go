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

// Constructor describes one candidate constructor of an implementation:
// a func value producing the implementation (optionally with a trailing
// error result) plus its formal parameters.
type Constructor struct {
	// Impl is the type the constructor produces (first result).
	Impl reflect.Type
	// Func is the constructor func value.
	Func reflect.Value
	// Params are the formal parameters in declaration order.
	Params []Parameter
}

// Parameter identifies one formal parameter of a constructor.
type Parameter struct {
	// Owner is the constructor func the parameter belongs to.
	Owner reflect.Value
	// Index is the zero-based position within Owner's inputs.
	Index int
	// Type is the declared parameter type.
	Type reflect.Type
}

// ParameterKey is a comparable identity for a formal parameter.
// Two parameters of structurally identical constructors have distinct
// keys unless they belong to the same func at the same position.
type ParameterKey struct {
	owner uintptr
	index int
}

// Key returns the comparable identity of the parameter.
func (p Parameter) Key() ParameterKey {
	return ParameterKey{owner: p.Owner.Pointer(), index: p.Index}
}

// ConstructorPolicy selects exactly one constructor for an implementation
// type. Implementations may consult host.Locked() and behave permissively
// during the registration phase and strictly afterwards.
type ConstructorPolicy interface {
	// SelectConstructor returns the constructor to use for impl when it is
	// requested as service, or an *ActivationError when no constructor
	// qualifies. It must have no side effects beyond internal caching.
	SelectConstructor(host Host, service, impl reflect.Type) (Constructor, error)
}

// ParameterPolicy produces a construction node for a formal parameter,
// or signals that the parameter is unresolvable.
type ParameterPolicy interface {
	// BuildParameter returns a node producing a value for p, or an
	// *ActivationError when p cannot be resolved. It must be callable
	// speculatively: an unresolvable probe must not affect registration
	// state.
	BuildParameter(host Host, p Parameter) (Node, error)
}
