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

// Package injx is a construction-plan compiler for dependency injection.
//
// Given a description of how to create a service instance (which
// constructor, which parameters, which dependencies, or simply a creator
// closure), injx produces a reusable factory that creates correctly wired
// instances. Third parties can observe and rewrite the construction plan
// before it is finalized, post-process freshly created instances, and
// introspect the captured dependency graph for diagnostics.
//
// # Design
//
// The core data structure is the construction node (apis.Node): an
// immutable, side-effect-free description of one step of object creation.
// Nodes compose into a tree rooted at the node that produces the fully
// built service instance. The concrete variants live in package node:
//
//   - Delegate: invoke a stored zero-argument closure.
//   - Call: call a constructor with one argument node per parameter.
//   - Wrap: post-process an inner node's result (nil guards, initializers).
//   - Constant: produce a fixed value.
//   - Placeholder: an identity-only stand-in for an overridden parameter.
//
// Around the node model sit small, single-concern packages:
//
//   - apis: the pure contracts: Node, ConstructorPolicy, ParameterPolicy,
//     Host, Registration, Lifestyle, ActivationError. Everything else
//     depends on apis; apis depends on nothing.
//
//   - policy: the reference resolution policies. The constructor policy
//     ("most resolvable parameters") orders candidates by parameter count
//     descending; before the host is locked the longest candidate wins
//     unconditionally, afterwards the first candidate whose parameters are
//     all resolvable wins. The parameter policy resolves a parameter to
//     the built node of its type's registration. Both are pluggable per
//     host: installing a custom policy changes selection behavior without
//     touching the build pipeline.
//
//   - builder: the plan builder. It resolves the constructor, captures one
//     relationship edge per registration-backed parameter, assembles the
//     argument nodes (override placeholders where the registration has
//     overrides, policy-resolved nodes elsewhere), offers the node to the
//     registered interceptors exactly once, wraps the result with the nil
//     guard (delegates only) and the initializer, and finally substitutes
//     every placeholder with its real replacement. Interceptors therefore
//     always see a resolvable but not yet finalized plan, and overrides
//     are never double-processed.
//
//   - registration: the owning entity. A Registration holds one lifestyle,
//     one thread-safe relationship set and at most one override table, and
//     exposes BuildNode/BuildFactory. The relationship set always reflects
//     the most recent build; rebuilds clear and repopulate it in one
//     critical section so concurrent diagnostic readers never observe a
//     partially cleared set.
//
//   - compiler: turns a finished node tree into a zero-argument factory.
//     Go has no runtime code generation, so compilation is an
//     ahead-of-time fold into nested closures; invoking the factory runs
//     no tree walks. Argument-type mismatches introduced by faulty
//     interceptors or overrides are caught at compile time.
//
//   - diag: plan-tree rendering, relationship formatting and an opt-in
//     zap-based logging interceptor.
//
// The root package provides a minimal, type-keyed composition host that
// records constructors, registrations, initializers and interceptors and
// carries the registration-phase flag. It is intentionally small: no
// name-based lookup, no disposal management, no caching lifestyles. A
// lifestyle implementation wraps the compiled factory with its caching
// strategy outside this module.
//
// # Errors
//
// Every failure (constructor selection, unresolvable parameters, nil
// delegate results, initializer failures, plan compilation failures) is
// surfaced to the immediate caller as an *apis.ActivationError carrying
// the implementation identity and, where applicable, the underlying
// cause. Nothing is retried and nothing is swallowed.
//
// # Concurrency model
//
// Plan building is synchronous, in-process computation; no component
// performs I/O or blocking waits and no cancellation semantics apply.
// Shared mutable state is confined to the per-registration relationship
// set and override table. Relationship reads return snapshot copies taken
// under the registration's lock; rebuilds replace the set wholesale under
// the same lock. Override tables are expected to be replaced before the
// first build only.
//
// # Usage pattern
//
//	host := injx.New()
//	host.AddConstructor(NewRepository)   // func(db *DB) *Repository
//	host.AddConstructor(NewService)      // func(r *Repository) *Service
//	host.RegisterConstructor(injx.Transient, reflect.TypeOf((*Service)(nil)), reflect.TypeOf((*Service)(nil)))
//	// ... register dependencies ...
//	host.Lock()
//
//	reg, _ := host.Registration(reflect.TypeOf((*Service)(nil)))
//	factory, err := reg.(*registration.Registration).BuildFactory()
//	svc, err := factory()
//
// Interception and initialization hook in through the host:
//
//	host.AddInterceptor(diag.LoggingInterceptor(logger))
//	host.SetInitializer(implType, func(v any) error { return v.(*Service).Warmup() })
package injx
