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

// Package compiler turns a finished construction node into a zero-argument
// factory. Go has no runtime code generation, so compilation is an
// ahead-of-time recursive fold into nested closures: the tree is validated
// and flattened once, then each factory invocation runs closures only.
package compiler

import (
	"fmt"
	"reflect"

	"dirpx.dev/injx/apis"
	"dirpx.dev/injx/node"
)

// Factory creates one correctly wired service instance per call.
type Factory func() (any, error)

// errType is the reflect.Type of the error interface.
var errType = reflect.TypeOf((*error)(nil)).Elem()

// Compile validates the node tree and compiles it into a Factory. Type
// mismatches introduced by a faulty interceptor or override, leftover
// placeholders and unknown node kinds fail with an ActivationError naming
// the offending node and target type.
func Compile(n apis.Node) (Factory, error) {
	if n == nil {
		return nil, apis.NewActivationError(nil, "cannot compile nil node")
	}
	return compile(n)
}

func compile(n apis.Node) (Factory, error) {
	switch t := n.(type) {
	case *node.Constant:
		v := t.Value()
		return func() (any, error) { return v, nil }, nil

	case *node.Delegate:
		return t.Invoke, nil

	case *node.Wrap:
		inner, err := compile(t.Inner())
		if err != nil {
			return nil, err
		}
		post := t.Post()
		return func() (any, error) {
			v, err := inner()
			if err != nil {
				return nil, err
			}
			return post(v)
		}, nil

	case *node.Call:
		return compileCall(t)

	case *node.Placeholder:
		return nil, apis.NewActivationError(t.ResultType(),
			fmt.Sprintf("unsubstituted %s in plan", t))

	default:
		return nil, apis.NewActivationError(n.ResultType(),
			fmt.Sprintf("cannot compile unknown node kind %T (%s)", n, n))
	}
}

// compileCall validates the argument nodes against the constructor
// signature and compiles the call into a closure invoking the constructor
// through reflection.
func compileCall(c *node.Call) (Factory, error) {
	ctor := c.Ctor()
	if !ctor.Func.IsValid() || ctor.Func.Kind() != reflect.Func {
		return nil, apis.NewActivationError(ctor.Impl, "constructor is not a func")
	}
	ft := ctor.Func.Type()
	if ft.NumOut() < 1 || ft.NumOut() > 2 {
		return nil, apis.NewActivationError(ctor.Impl, "constructor must return the instance and an optional error")
	}
	if ft.NumOut() == 2 && ft.Out(1) != errType {
		return nil, apis.NewActivationError(ctor.Impl, "constructor's second result must be error")
	}

	args := c.Children()
	if len(args) != ft.NumIn() {
		return nil, apis.NewActivationError(ctor.Impl, fmt.Sprintf(
			"constructor expects %d arguments, plan %s carries %d", ft.NumIn(), c, len(args)))
	}

	compiled := make([]Factory, len(args))
	for i, a := range args {
		if at := a.ResultType(); at != nil && !at.AssignableTo(ft.In(i)) {
			return nil, apis.NewActivationError(ctor.Impl, fmt.Sprintf(
				"argument %d (%s) is not assignable to %s", i, a, node.TypeName(ft.In(i))))
		}
		f, err := compile(a)
		if err != nil {
			return nil, err
		}
		compiled[i] = f
	}

	hasErr := ft.NumOut() == 2
	fn := ctor.Func
	impl := ctor.Impl
	return func() (any, error) {
		in := make([]reflect.Value, len(compiled))
		for i, f := range compiled {
			v, err := f()
			if err != nil {
				return nil, err
			}
			in[i] = argValue(v, ft.In(i))
		}
		out := fn.Call(in)
		if hasErr && !out[1].IsNil() {
			return nil, apis.WrapActivation(impl, "constructor failed", out[1].Interface().(error))
		}
		return out[0].Interface(), nil
	}, nil
}

// argValue converts an evaluated argument to a reflect.Value usable for
// the parameter type. Untyped nils need the parameter's zero value.
func argValue(v any, pt reflect.Type) reflect.Value {
	if v == nil {
		return reflect.Zero(pt)
	}
	rv := reflect.ValueOf(v)
	if rv.Type() != pt && rv.Type().AssignableTo(pt) {
		// Wrap concrete values into interface parameters explicitly so
		// Call sees the declared parameter type.
		out := reflect.New(pt).Elem()
		out.Set(rv)
		return out
	}
	return rv
}
