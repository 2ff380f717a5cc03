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

// Package registration provides the owning entity of a construction plan:
// one lifestyle, one relationship set, at most one override table, and a
// single BuildNode operation that compiles the plan through the builder.
package registration

import (
	"reflect"
	"sync"

	"dirpx.dev/injx/apis"
	"dirpx.dev/injx/builder"
	"dirpx.dev/injx/compiler"
	"dirpx.dev/injx/node"
)

// Registration holds one construction plan for a (service, lifestyle)
// pair. It is immutable after construction except for its relationship set
// and its override table, both of which are replaced wholesale.
type Registration struct {
	service   reflect.Type
	impl      reflect.Type
	lifestyle apis.Lifestyle

	// create is non-nil for delegate-based registrations.
	create func() (any, error)

	bld  *builder.Builder
	rels relationshipSet

	mu        sync.Mutex
	overrides map[apis.ParameterKey]apis.NodeOverride
}

// Ensure Registration implements apis.Registration.
var _ apis.Registration = (*Registration)(nil)

// NewDelegate creates a registration whose plan invokes a caller-supplied
// creator closure ("transient via delegate").
func NewDelegate(host apis.Host, ls apis.Lifestyle, service reflect.Type, create func() (any, error)) *Registration {
	return &Registration{
		service:   service,
		impl:      service,
		lifestyle: ls,
		create:    create,
		bld:       builder.New(host),
	}
}

// NewConstructor creates a registration whose plan calls a constructor of
// impl selected by the host's constructor policy ("transient via
// constructor").
func NewConstructor(host apis.Host, ls apis.Lifestyle, service, impl reflect.Type) *Registration {
	return &Registration{
		service:   service,
		impl:      impl,
		lifestyle: ls,
		bld:       builder.New(host),
	}
}

// ServiceType returns the abstract service type.
func (r *Registration) ServiceType() reflect.Type { return r.service }

// ImplementationType returns the concrete implementation type. For
// delegate-based registrations it equals the service type.
func (r *Registration) ImplementationType() reflect.Type { return r.impl }

// Lifestyle returns the lifestyle the registration was created under.
func (r *Registration) Lifestyle() apis.Lifestyle { return r.lifestyle }

// BuildNode rebuilds the construction plan. The relationship set is
// repopulated to reflect this build.
func (r *Registration) BuildNode() (apis.Node, error) {
	if r.create != nil {
		return r.bld.BuildFromDelegate(r, r.service, r.create)
	}
	return r.bld.BuildFromConstructor(r, r.service, r.impl)
}

// BuildFactory builds the plan and compiles it into an invokable factory.
// This is the closure a lifestyle wraps with its caching strategy.
func (r *Registration) BuildFactory() (compiler.Factory, error) {
	n, err := r.BuildNode()
	if err != nil {
		return nil, err
	}
	return compiler.Compile(n)
}

// Relationships returns a snapshot of the dependency edges captured by the
// most recent build. Safe for concurrent use with a rebuild.
func (r *Registration) Relationships() []apis.Relationship {
	return r.rels.snapshot()
}

// ReplaceRelationships clears and repopulates the relationship set in one
// critical section, de-duplicating edges.
func (r *Registration) ReplaceRelationships(edges []apis.Relationship) {
	r.rels.replace(edges)
}

// SetParameterOverrides replaces the override table wholesale. Each entry
// gets a fresh placeholder, so overrides set twice never collide with
// placeholders from an earlier table. Overrides naming parameters that the
// selected constructor does not have are inert. Expected to be called
// before the first build; concurrent mutation is not supported.
func (r *Registration) SetParameterOverrides(pairs []apis.ParameterOverride) {
	table := make(map[apis.ParameterKey]apis.NodeOverride, len(pairs))
	for _, p := range pairs {
		table[p.Param.Key()] = apis.NodeOverride{
			Placeholder: node.NewPlaceholder(p.Param),
			Replacement: p.Replacement,
		}
	}

	r.mu.Lock()
	r.overrides = table
	r.mu.Unlock()
}

// Override returns the stored override for a formal parameter, if any.
func (r *Registration) Override(p apis.Parameter) (apis.NodeOverride, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ov, ok := r.overrides[p.Key()]
	return ov, ok
}
