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

// Interceptor is a user-supplied plan rewrite hook. It is offered the node
// under construction together with the owning registration and the service
// and implementation identities, and returns the node to use downstream
// (possibly the input unchanged). Interceptors run synchronously, inline,
// and at most once per build.
type Interceptor func(reg Registration, service, impl reflect.Type, n Node) Node

// Initializer is a user-supplied post-construction callback applied to
// freshly built instances of a given implementation type.
type Initializer func(instance any) error

// Host is the boundary to the owning composition root. The plan builder
// and the resolution policies consume registrations, constructors, hooks
// and phase information exclusively through this interface.
type Host interface {
	// Constructors returns the candidate constructors recorded for impl,
	// in registration order. An empty slice means none are known.
	Constructors(impl reflect.Type) []Constructor

	// Registration returns the registration for a service type if one
	// exists, even if that registration is not currently buildable. It is
	// used to decide whether a dependency edge is diagnostically
	// recordable, never to resolve the construction node itself.
	Registration(t reflect.Type) (Registration, bool)

	// Initializer returns the post-construction callback for impl, or nil
	// when none is registered.
	Initializer(impl reflect.Type) Initializer

	// Interceptors returns the registered plan rewrite hooks in
	// registration order.
	Interceptors() []Interceptor

	// ConstructorPolicy returns the active constructor resolution policy.
	ConstructorPolicy() ConstructorPolicy

	// ParameterPolicy returns the active parameter resolution policy.
	ParameterPolicy() ParameterPolicy

	// Locked reports whether the registration phase has ended. Policies
	// may behave permissively before the first resolution and strictly
	// after.
	Locked() bool
}
