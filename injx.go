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

package injx

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/injx/apis"
	"dirpx.dev/injx/config"
	"dirpx.dev/injx/policy"
	"dirpx.dev/injx/registration"
)

var (
	// ErrNotFunc is returned when a registered constructor is not a func.
	ErrNotFunc = errors.New("injx: constructor is not a func")
	// ErrVariadic is returned when a registered constructor is variadic.
	ErrVariadic = errors.New("injx: variadic constructors are not supported")
	// ErrBadResults is returned when a constructor does not return exactly
	// the instance, optionally followed by an error.
	ErrBadResults = errors.New("injx: constructor must return the instance and an optional error")
)

// Lifestyle is a name-only apis.Lifestyle. The caching strategies
// themselves live outside this module; registrations only carry the
// identity so relationship edges can report it.
type Lifestyle string

// Name implements apis.Lifestyle.
func (l Lifestyle) Name() string { return string(l) }

// Transient is the lifestyle for registrations whose factories are
// invoked on every resolution.
const Transient = Lifestyle("transient")

// Host is a minimal, type-keyed composition root: it records candidate
// constructors, registrations, initializers and interceptors, carries the
// registration-phase flag, and hands all of it to the plan builder through
// the apis.Host boundary. It never looks services up by name.
type Host struct {
	ctorPolicy  apis.ConstructorPolicy
	paramPolicy apis.ParameterPolicy

	mu           sync.Mutex
	ctors        map[reflect.Type][]apis.Constructor
	regs         map[reflect.Type]apis.Registration
	inits        map[reflect.Type]apis.Initializer
	interceptors []apis.Interceptor

	locked atomic.Bool
}

// Ensure Host implements apis.Host.
var _ apis.Host = (*Host)(nil)

// New creates a Host from the given options. Policies not supplied default
// to the reference policies.
func New(opts ...config.Option) *Host {
	cfg := config.New(opts...)
	h := &Host{
		ctorPolicy:   cfg.ConstructorPolicy,
		paramPolicy:  cfg.ParameterPolicy,
		ctors:        map[reflect.Type][]apis.Constructor{},
		regs:         map[reflect.Type]apis.Registration{},
		inits:        map[reflect.Type]apis.Initializer{},
		interceptors: cfg.Interceptors,
	}
	if h.ctorPolicy == nil {
		h.ctorPolicy = policy.NewMostResolvable()
	}
	if h.paramPolicy == nil {
		h.paramPolicy = policy.NewRegistrationBacked()
	}
	return h
}

// AddConstructor records fn as a candidate constructor for the type of its
// first result. fn must be a non-variadic func returning the instance and
// an optional error.
func (h *Host) AddConstructor(fn any) (apis.Constructor, error) {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return apis.Constructor{}, ErrNotFunc
	}
	if t.IsVariadic() {
		return apis.Constructor{}, ErrVariadic
	}
	if t.NumOut() < 1 || t.NumOut() > 2 {
		return apis.Constructor{}, ErrBadResults
	}
	if t.NumOut() == 2 && t.Out(1) != reflect.TypeOf((*error)(nil)).Elem() {
		return apis.Constructor{}, ErrBadResults
	}

	fv := reflect.ValueOf(fn)
	params := make([]apis.Parameter, t.NumIn())
	for i := range params {
		params[i] = apis.Parameter{Owner: fv, Index: i, Type: t.In(i)}
	}
	c := apis.Constructor{Impl: t.Out(0), Func: fv, Params: params}

	h.mu.Lock()
	h.ctors[c.Impl] = append(h.ctors[c.Impl], c)
	h.mu.Unlock()
	return c, nil
}

// Constructors returns a snapshot of the candidate constructors for impl,
// in registration order.
func (h *Host) Constructors(impl reflect.Type) []apis.Constructor {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]apis.Constructor, len(h.ctors[impl]))
	copy(out, h.ctors[impl])
	return out
}

// AddRegistration records reg under its service type, replacing any
// previous registration for that type.
func (h *Host) AddRegistration(reg apis.Registration) {
	if reg == nil {
		return
	}
	h.mu.Lock()
	h.regs[reg.ServiceType()] = reg
	h.mu.Unlock()
}

// Registration returns the registration for a service type, if any.
func (h *Host) Registration(t reflect.Type) (apis.Registration, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	reg, ok := h.regs[t]
	return reg, ok
}

// SetInitializer installs a post-construction callback for impl. A nil
// callback removes the current one.
func (h *Host) SetInitializer(impl reflect.Type, init apis.Initializer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if init == nil {
		delete(h.inits, impl)
		return
	}
	h.inits[impl] = init
}

// Initializer returns the callback for impl, or nil when none is set.
func (h *Host) Initializer(impl reflect.Type) apis.Initializer {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.inits[impl]
}

// AddInterceptor appends a plan rewrite hook. Interceptors run in the
// order they were added, once per build.
func (h *Host) AddInterceptor(it apis.Interceptor) {
	if it == nil {
		return
	}
	h.mu.Lock()
	h.interceptors = append(h.interceptors, it)
	h.mu.Unlock()
}

// Interceptors returns a snapshot of the registered hooks in order.
func (h *Host) Interceptors() []apis.Interceptor {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]apis.Interceptor, len(h.interceptors))
	copy(out, h.interceptors)
	return out
}

// ConstructorPolicy returns the active constructor resolution policy.
func (h *Host) ConstructorPolicy() apis.ConstructorPolicy { return h.ctorPolicy }

// ParameterPolicy returns the active parameter resolution policy.
func (h *Host) ParameterPolicy() apis.ParameterPolicy { return h.paramPolicy }

// Lock ends the registration phase. From here on the reference
// constructor policy selects strictly: only constructors whose parameters
// are all resolvable qualify.
func (h *Host) Lock() { h.locked.Store(true) }

// Locked reports whether the registration phase has ended.
func (h *Host) Locked() bool { return h.locked.Load() }

// RegisterConstructor creates a constructor-based registration for
// service implemented by impl under the given lifestyle, and records it.
func (h *Host) RegisterConstructor(ls apis.Lifestyle, service, impl reflect.Type) *registration.Registration {
	reg := registration.NewConstructor(h, ls, service, impl)
	h.AddRegistration(reg)
	return reg
}

// RegisterDelegate creates a delegate-based registration for service under
// the given lifestyle, and records it.
func (h *Host) RegisterDelegate(ls apis.Lifestyle, service reflect.Type, create func() (any, error)) *registration.Registration {
	reg := registration.NewDelegate(h, ls, service, create)
	h.AddRegistration(reg)
	return reg
}
