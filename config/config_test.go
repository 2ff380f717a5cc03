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

package config_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/injx/apis"
	"dirpx.dev/injx/config"
	"dirpx.dev/injx/policy"
)

// TestDefault verifies the zero configuration leaves policy selection to
// the host.
func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.New()
	assert.Nil(t, cfg.ConstructorPolicy)
	assert.Nil(t, cfg.ParameterPolicy)
	assert.Empty(t, cfg.Interceptors)
}

// TestWithPolicies verifies the policy options install the given policies.
func TestWithPolicies(t *testing.T) {
	t.Parallel()

	cp := policy.NewMostResolvable()
	pp := policy.NewRegistrationBacked()
	cfg := config.New(
		config.WithConstructorPolicy(cp),
		config.WithParameterPolicy(pp),
	)
	assert.Equal(t, cp, cfg.ConstructorPolicy)
	assert.Equal(t, pp, cfg.ParameterPolicy)
}

// TestWithInterceptors verifies order is preserved across options and nil
// hooks are dropped.
func TestWithInterceptors(t *testing.T) {
	t.Parallel()

	var order []int
	mk := func(id int) apis.Interceptor {
		return func(_ apis.Registration, _, _ reflect.Type, n apis.Node) apis.Node {
			order = append(order, id)
			return n
		}
	}

	cfg := config.New(
		config.WithInterceptors(mk(1), nil),
		config.WithInterceptors(mk(2)),
	)
	require.Len(t, cfg.Interceptors, 2)

	for _, it := range cfg.Interceptors {
		it(nil, nil, nil, nil)
	}
	assert.Equal(t, []int{1, 2}, order)
}
