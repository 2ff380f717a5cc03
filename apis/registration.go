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

// Lifestyle identifies the caching policy a registration is created under.
// The caching strategy itself lives outside this core; only the identity is
// carried, so relationship edges can report it.
type Lifestyle interface {
	// Name returns a short identifier such as "transient" or "singleton".
	Name() string
}

// Relationship is one dependency edge discovered while building a plan:
// the consumer implementation, built under its lifestyle, depends on the
// dependency's registration. Relationship values are comparable and are
// de-duplicated by the owning set.
type Relationship struct {
	// Consumer is the implementation type that holds the dependency.
	Consumer reflect.Type
	// Lifestyle is the lifestyle the consumer is registered under.
	Lifestyle Lifestyle
	// Dependency is the registration backing the consumed parameter.
	Dependency Registration
}

// ParameterOverride instructs a registration to feed a caller-supplied
// node into a specific constructor parameter instead of the node the
// parameter policy would resolve.
type ParameterOverride struct {
	// Param is the formal parameter to override.
	Param Parameter
	// Replacement produces the overridden argument value.
	Replacement Node
}

// NodeOverride is the stored form of a parameter override: the placeholder
// that stands in for the parameter during interception and the replacement
// node substituted after interception.
type NodeOverride struct {
	Placeholder Node
	Replacement Node
}

// Registration owns one construction plan: exactly one lifestyle, one
// relationship set and at most one override table. Concrete registrations
// build either from a delegate or from a constructor.
type Registration interface {
	// ServiceType returns the abstract service type the registration
	// satisfies.
	ServiceType() reflect.Type

	// Lifestyle returns the lifestyle the registration was created under.
	Lifestyle() Lifestyle

	// BuildNode produces the construction node for the service. Each call
	// rebuilds the plan and repopulates the relationship set.
	BuildNode() (Node, error)

	// Relationships returns a snapshot of the dependency edges captured by
	// the most recent build. Safe for concurrent use with BuildNode.
	Relationships() []Relationship

	// ReplaceRelationships clears and repopulates the relationship set in
	// one critical section, de-duplicating edges.
	ReplaceRelationships(edges []Relationship)

	// Override returns the stored override for a formal parameter, if any.
	Override(p Parameter) (NodeOverride, bool)
}
