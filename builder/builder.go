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

// Package builder orchestrates construction-plan building: constructor and
// parameter resolution, relationship capture, interception, nil-result
// guarding, initializer wrapping and override substitution.
package builder

import (
	"fmt"
	"reflect"

	"dirpx.dev/injx/apis"
	"dirpx.dev/injx/node"
)

// Builder assembles construction nodes for registrations. It holds no
// per-build state and is safe for concurrent use as long as the host is.
type Builder struct {
	host apis.Host
}

// New creates a Builder bound to a composition host.
func New(host apis.Host) *Builder {
	return &Builder{host: host}
}

// BuildFromDelegate wraps a caller-supplied creator closure: the delegate
// node is offered to interceptors, guarded against nil results and wrapped
// with the service's initializer, in that order. The registration's
// relationship set is emptied: a delegate plan has no discoverable edges.
func (b *Builder) BuildFromDelegate(reg apis.Registration, service reflect.Type, create func() (any, error)) (apis.Node, error) {
	if create == nil {
		return nil, apis.NewActivationError(service, "nil creator delegate")
	}

	var n apis.Node = node.NewDelegate(service, create)
	n, err := b.intercept(reg, service, service, n)
	if err != nil {
		return nil, err
	}
	n = guardNil(service, n)
	n = b.wrapInitializer(service, n)

	reg.ReplaceRelationships(nil)
	return n, nil
}

// BuildFromConstructor builds a plan for impl via its selected constructor.
// One relationship edge is captured per parameter with a backing
// registration; parameters resolved purely by policy capability are not
// recorded. Arguments come from the override placeholder when the
// registration overrides the parameter, otherwise from the parameter
// policy. The assembled call node is offered to interceptors, wrapped with
// the initializer, and finally every placeholder is substituted with its
// replacement, so interceptors never see substituted overrides and
// overrides are never double-processed.
func (b *Builder) BuildFromConstructor(reg apis.Registration, service, impl reflect.Type) (apis.Node, error) {
	ctor, err := b.host.ConstructorPolicy().SelectConstructor(b.host, service, impl)
	if err != nil {
		return nil, err
	}

	edges := make([]apis.Relationship, 0, len(ctor.Params))
	for _, p := range ctor.Params {
		if dep, ok := b.host.Registration(p.Type); ok {
			edges = append(edges, apis.Relationship{
				Consumer:   impl,
				Lifestyle:  reg.Lifestyle(),
				Dependency: dep,
			})
		}
	}

	args := make([]apis.Node, len(ctor.Params))
	var overrides []apis.NodeOverride
	for i, p := range ctor.Params {
		if ov, ok := reg.Override(p); ok {
			args[i] = ov.Placeholder
			overrides = append(overrides, ov)
			continue
		}
		pn, perr := b.host.ParameterPolicy().BuildParameter(b.host, p)
		if perr != nil {
			return nil, perr
		}
		if pn == nil {
			// A policy returning neither node nor error is a programming
			// error; surface it instead of tolerating it.
			return nil, apis.NewActivationError(impl, fmt.Sprintf(
				"parameter policy returned no node for parameter %d (%s)", p.Index, node.TypeName(p.Type)))
		}
		args[i] = pn
	}

	var n apis.Node = node.NewCall(ctor, args)
	n, err = b.intercept(reg, service, impl, n)
	if err != nil {
		return nil, err
	}
	n = b.wrapInitializer(impl, n)

	for _, ov := range overrides {
		ph, ok := ov.Placeholder.(*node.Placeholder)
		if !ok {
			continue
		}
		n = node.Substitute(n, ph, ov.Replacement)
	}

	reg.ReplaceRelationships(edges)
	return n, nil
}

// intercept offers n to every registered interceptor in registration
// order. The result of the last interceptor is used downstream.
func (b *Builder) intercept(reg apis.Registration, service, impl reflect.Type, n apis.Node) (apis.Node, error) {
	for _, it := range b.host.Interceptors() {
		next := it(reg, service, impl, n)
		if next == nil {
			return nil, apis.NewActivationError(impl, "interceptor returned no node")
		}
		n = next
	}
	return n, nil
}

// guardNil fails the factory with an ActivationError when a delegate
// yields a nil (or typed-nil) result. Constructor plans need no guard.
func guardNil(service reflect.Type, inner apis.Node) apis.Node {
	return node.NewWrap("nil-guard", inner, func(v any) (any, error) {
		if isNil(v) {
			return nil, apis.NewActivationError(service, "delegate returned nil")
		}
		return v, nil
	})
}

// isNil reports whether v is nil, including typed nils inside interfaces.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// wrapInitializer wraps inner so the freshly built instance passes through
// the host's initializer for impl, when one is registered. Errors and
// panics inside the callback are re-signalled as ActivationError carrying
// the implementation identity and the original failure.
func (b *Builder) wrapInitializer(impl reflect.Type, inner apis.Node) apis.Node {
	init := b.host.Initializer(impl)
	if init == nil {
		return inner
	}
	return node.NewWrap("initializer", inner, func(v any) (out any, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				out = nil
				err = apis.WrapActivation(impl, "initializer panicked", fmt.Errorf("%v", rec))
			}
		}()
		if ierr := init(v); ierr != nil {
			return nil, apis.WrapActivation(impl, "initializer failed", ierr)
		}
		return v, nil
	})
}
