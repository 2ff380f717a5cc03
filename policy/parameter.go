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

package policy

import (
	"strconv"

	"dirpx.dev/injx/apis"
	"dirpx.dev/injx/node"
)

// NewRegistrationBacked creates the default apis.ParameterPolicy: a
// parameter resolves to the built node of its type's registration.
// Parameters without a backing registration are unresolvable.
func NewRegistrationBacked() apis.ParameterPolicy {
	return &registrationBacked{}
}

// registrationBacked resolves parameters through host registrations.
type registrationBacked struct{}

// Ensure registrationBacked implements apis.ParameterPolicy.
var _ apis.ParameterPolicy = (*registrationBacked)(nil)

// BuildParameter returns the node built by the registration for p's type.
// A miss is an unresolvable-parameter apis.ActivationError and leaves all
// registration state untouched, so the call doubles as a capability probe.
func (*registrationBacked) BuildParameter(host apis.Host, p apis.Parameter) (apis.Node, error) {
	reg, ok := host.Registration(p.Type)
	if !ok {
		return nil, apis.NewActivationError(p.Type,
			"parameter "+strconv.Itoa(p.Index)+" of type "+node.TypeName(p.Type)+" is not registered")
	}
	n, err := reg.BuildNode()
	if err != nil {
		return nil, err
	}
	return n, nil
}
