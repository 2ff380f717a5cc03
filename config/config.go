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

// Package config assembles apis.Config values from functional options.
package config

import (
	"dirpx.dev/injx/apis"
)

// New constructs an apis.Config from the given options. Policies left nil
// are filled with the reference policies by the composition host.
func New(opts ...Option) apis.Config {
	cfg := Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Default is the configuration used when no options are provided.
func Default() apis.Config {
	return apis.Config{}
}

// Option is a functional option that mutates an apis.Config during
// construction.
type Option func(*apis.Config)

// WithConstructorPolicy installs a custom constructor resolution policy.
// A nil policy resets to the reference policy.
func WithConstructorPolicy(p apis.ConstructorPolicy) Option {
	return func(c *apis.Config) {
		c.ConstructorPolicy = p
	}
}

// WithParameterPolicy installs a custom parameter resolution policy.
// A nil policy resets to the reference policy.
func WithParameterPolicy(p apis.ParameterPolicy) Option {
	return func(c *apis.Config) {
		c.ParameterPolicy = p
	}
}

// WithInterceptors appends plan rewrite hooks, preserving order across
// multiple WithInterceptors options. Nil interceptors are ignored.
func WithInterceptors(its ...apis.Interceptor) Option {
	return func(c *apis.Config) {
		for _, it := range its {
			if it != nil {
				c.Interceptors = append(c.Interceptors, it)
			}
		}
	}
}
