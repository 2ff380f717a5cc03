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

// Package node provides the concrete construction-node variants and the
// plan rewriter. A node tree is an immutable description of how to build
// one service instance; the compiler package turns a tree into an
// invokable factory.
package node

import (
	"fmt"
	"reflect"
	"strconv"
	"sync/atomic"

	"dirpx.dev/injx/apis"
)

// Delegate invokes a stored zero-argument closure.
type Delegate struct {
	typ reflect.Type
	fn  func() (any, error)
}

// NewDelegate wraps a zero-argument creator closure producing typ.
func NewDelegate(typ reflect.Type, fn func() (any, error)) *Delegate {
	return &Delegate{typ: typ, fn: fn}
}

// Ensure Delegate implements apis.Node.
var _ apis.Node = (*Delegate)(nil)

// ResultType returns the declared result type of the delegate.
func (d *Delegate) ResultType() reflect.Type { return d.typ }

// Children returns nil: a delegate is a leaf.
func (d *Delegate) Children() []apis.Node { return nil }

// WithChildren returns the delegate unchanged.
func (d *Delegate) WithChildren(_ []apis.Node) apis.Node { return d }

// Invoke runs the stored closure.
func (d *Delegate) Invoke() (any, error) { return d.fn() }

func (d *Delegate) String() string {
	return "delegate(" + TypeName(d.typ) + ")"
}

// Call invokes a constructor with one argument node per formal parameter.
type Call struct {
	ctor apis.Constructor
	args []apis.Node
}

// NewCall builds a constructor-call node. The args slice is copied.
func NewCall(ctor apis.Constructor, args []apis.Node) *Call {
	cp := make([]apis.Node, len(args))
	copy(cp, args)
	return &Call{ctor: ctor, args: cp}
}

// Ensure Call implements apis.Node.
var _ apis.Node = (*Call)(nil)

// Ctor returns the constructor descriptor.
func (c *Call) Ctor() apis.Constructor { return c.ctor }

// ResultType returns the implementation type the constructor produces.
func (c *Call) ResultType() reflect.Type { return c.ctor.Impl }

// Children returns a copy of the argument nodes in declaration order.
func (c *Call) Children() []apis.Node {
	cp := make([]apis.Node, len(c.args))
	copy(cp, c.args)
	return cp
}

// WithChildren returns a new call with the argument nodes replaced.
func (c *Call) WithChildren(children []apis.Node) apis.Node {
	return NewCall(c.ctor, children)
}

func (c *Call) String() string {
	return "call(" + TypeName(c.ctor.Impl) + ", " + strconv.Itoa(len(c.args)) + " args)"
}

// Wrap post-processes the result of an inner node through a closure.
// It is used for nil-result guarding and initializer invocation.
type Wrap struct {
	label string
	inner apis.Node
	post  func(any) (any, error)
}

// NewWrap wraps inner with a post-processing closure. The label names the
// wrap in diagnostics ("nil-guard", "initializer", ...).
func NewWrap(label string, inner apis.Node, post func(any) (any, error)) *Wrap {
	return &Wrap{label: label, inner: inner, post: post}
}

// Ensure Wrap implements apis.Node.
var _ apis.Node = (*Wrap)(nil)

// Label returns the diagnostic label of the wrap.
func (w *Wrap) Label() string { return w.label }

// Inner returns the wrapped node.
func (w *Wrap) Inner() apis.Node { return w.inner }

// Post returns the post-processing closure.
func (w *Wrap) Post() func(any) (any, error) { return w.post }

// ResultType returns the result type of the wrapped node.
func (w *Wrap) ResultType() reflect.Type { return w.inner.ResultType() }

// Children returns the single wrapped node.
func (w *Wrap) Children() []apis.Node { return []apis.Node{w.inner} }

// WithChildren returns a new wrap around the replacement inner node.
// Anything other than exactly one child leaves the wrap unchanged.
func (w *Wrap) WithChildren(children []apis.Node) apis.Node {
	if len(children) != 1 {
		return w
	}
	return NewWrap(w.label, children[0], w.post)
}

func (w *Wrap) String() string {
	return w.label + "(" + TypeName(w.ResultType()) + ")"
}

// Constant produces a fixed value.
type Constant struct {
	typ reflect.Type
	val any
}

// NewConstant builds a constant node. A nil typ is inferred from val.
func NewConstant(typ reflect.Type, val any) *Constant {
	if typ == nil {
		typ = reflect.TypeOf(val)
	}
	return &Constant{typ: typ, val: val}
}

// Ensure Constant implements apis.Node.
var _ apis.Node = (*Constant)(nil)

// Value returns the stored value.
func (c *Constant) Value() any { return c.val }

// ResultType returns the declared type of the constant.
func (c *Constant) ResultType() reflect.Type { return c.typ }

// Children returns nil: a constant is a leaf.
func (c *Constant) Children() []apis.Node { return nil }

// WithChildren returns the constant unchanged.
func (c *Constant) WithChildren(_ []apis.Node) apis.Node { return c }

func (c *Constant) String() string {
	return "const(" + TypeName(c.typ) + ")"
}

// tokens issues process-wide unique placeholder identities.
var tokens atomic.Uint64

// Placeholder stands in for an overridden constructor parameter until the
// rewriter substitutes the real replacement node. Its identity is the
// token, never its structure: two placeholders for the same parameter are
// still distinct.
type Placeholder struct {
	token uint64
	param apis.Parameter
}

// NewPlaceholder creates a placeholder with a fresh unique token.
func NewPlaceholder(p apis.Parameter) *Placeholder {
	return &Placeholder{token: tokens.Add(1), param: p}
}

// Ensure Placeholder implements apis.Node.
var _ apis.Node = (*Placeholder)(nil)

// Token returns the unique identity of the placeholder.
func (p *Placeholder) Token() uint64 { return p.token }

// Param returns the formal parameter the placeholder stands for.
func (p *Placeholder) Param() apis.Parameter { return p.param }

// ResultType returns the overridden parameter's type.
func (p *Placeholder) ResultType() reflect.Type { return p.param.Type }

// Children returns nil: a placeholder is a leaf.
func (p *Placeholder) Children() []apis.Node { return nil }

// WithChildren returns the placeholder unchanged.
func (p *Placeholder) WithChildren(_ []apis.Node) apis.Node { return p }

func (p *Placeholder) String() string {
	return fmt.Sprintf("placeholder#%d(%s)", p.token, TypeName(p.param.Type))
}
