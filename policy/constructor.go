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

// Package policy provides the reference resolution policies: a
// most-resolvable-parameters constructor policy and a registration-backed
// parameter policy. Both are ordinary conforming implementations of the
// apis contracts; composition hosts may install custom policies instead.
package policy

import (
	"reflect"
	"sort"

	"dirpx.dev/injx/apis"
	"dirpx.dev/injx/node"
)

// NewMostResolvable creates the default apis.ConstructorPolicy. Candidates
// are ordered by parameter count descending with stable order among equal
// counts. Before the host is locked the longest constructor wins
// unconditionally, since dependent registrations may not exist yet. After
// the lock the first constructor whose every parameter is resolvable wins.
func NewMostResolvable() apis.ConstructorPolicy {
	return &mostResolvable{}
}

// mostResolvable selects the longest constructor with resolvable parameters.
type mostResolvable struct{}

// Ensure mostResolvable implements apis.ConstructorPolicy.
var _ apis.ConstructorPolicy = (*mostResolvable)(nil)

// SelectConstructor picks one constructor for impl, or fails with an
// apis.ActivationError distinguishing "no constructor registered" from
// "no constructor has only resolvable parameters".
func (*mostResolvable) SelectConstructor(host apis.Host, _, impl reflect.Type) (apis.Constructor, error) {
	ctors := host.Constructors(impl)
	if len(ctors) == 0 {
		return apis.Constructor{}, apis.NewActivationError(impl,
			"no constructor registered for "+node.TypeName(impl))
	}

	ordered := make([]apis.Constructor, len(ctors))
	copy(ordered, ctors)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Params) > len(ordered[j].Params)
	})

	// Registration phase: dependent registrations may still be missing,
	// so the longest constructor is accepted unconditionally.
	if !host.Locked() {
		return ordered[0], nil
	}

	for _, c := range ordered {
		if resolvable(host, c) {
			return c, nil
		}
	}
	return apis.Constructor{}, apis.NewActivationError(impl,
		"no constructor of "+node.TypeName(impl)+" has only resolvable parameters")
}

// resolvable probes whether every parameter of c either has a backing
// registration or can be built by the parameter policy. The registration
// lookup runs first so the policy probe only fires for registration-less
// parameters, keeping the probe free of build side effects.
func resolvable(host apis.Host, c apis.Constructor) bool {
	for _, p := range c.Params {
		if _, ok := host.Registration(p.Type); ok {
			continue
		}
		n, err := host.ParameterPolicy().BuildParameter(host, p)
		if err != nil || n == nil {
			return false
		}
	}
	return true
}
