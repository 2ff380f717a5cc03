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

package node_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/injx/apis"
	"dirpx.dev/injx/node"
)

// TestSubstitute_ByIdentityOnly verifies that only the placeholder with
// the matching token is substituted: a structurally identical placeholder
// for the same parameter is left alone.
func TestSubstitute_ByIdentityOnly(t *testing.T) {
	t.Parallel()

	p := param()
	target := node.NewPlaceholder(p)
	twin := node.NewPlaceholder(p) // same parameter, different identity
	repl := node.NewConstant(reflect.TypeOf(0), 42)

	root := node.NewCall(ctor(), []apis.Node{target})
	out := node.Substitute(root, target, repl)
	require.IsType(t, &node.Call{}, out)
	assert.Same(t, repl, out.(*node.Call).Children()[0].(*node.Constant))

	// The twin must survive substitution of the target.
	root = node.NewCall(ctor(), []apis.Node{twin})
	out = node.Substitute(root, target, repl)
	assert.Same(t, twin, out.(*node.Call).Children()[0].(*node.Placeholder))
}

// TestSubstitute_DeepTree verifies substitution through wrap and call
// layers.
func TestSubstitute_DeepTree(t *testing.T) {
	t.Parallel()

	ph := node.NewPlaceholder(param())
	repl := node.NewConstant(reflect.TypeOf(0), 9)

	call := node.NewCall(ctor(), []apis.Node{ph})
	root := node.NewWrap("initializer", call, func(v any) (any, error) { return v, nil })

	out := node.Substitute(root, ph, repl)
	w, ok := out.(*node.Wrap)
	require.True(t, ok)
	inner, ok := w.Inner().(*node.Call)
	require.True(t, ok)
	assert.Same(t, repl, inner.Children()[0].(*node.Constant))
}

// TestSubstitute_NoMatchSharesTree verifies untouched trees are returned
// as-is, not copied.
func TestSubstitute_NoMatchSharesTree(t *testing.T) {
	t.Parallel()

	ph := node.NewPlaceholder(param())
	repl := node.NewConstant(reflect.TypeOf(0), 1)

	root := node.NewCall(ctor(), []apis.Node{node.NewConstant(reflect.TypeOf(0), 5)})
	out := node.Substitute(root, ph, repl)
	assert.Same(t, root, out.(*node.Call))

	assert.Nil(t, node.Substitute(nil, ph, repl))
	assert.Same(t, root, node.Substitute(root, nil, repl).(*node.Call))
}

// TestSubstitute_RootPlaceholder verifies a placeholder at the root is
// replaced directly.
func TestSubstitute_RootPlaceholder(t *testing.T) {
	t.Parallel()

	ph := node.NewPlaceholder(param())
	repl := node.NewConstant(reflect.TypeOf(0), 3)

	out := node.Substitute(ph, ph, repl)
	assert.Same(t, repl, out.(*node.Constant))
}
