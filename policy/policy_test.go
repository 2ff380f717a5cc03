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

package policy_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	injx "dirpx.dev/injx"
	"dirpx.dev/injx/apis"
	"dirpx.dev/injx/policy"
)

type gear struct{}

type engine struct{ g *gear }

func newGear() *gear { return &gear{} }

func newEngine0() *engine { return &engine{} }

func newEngine1(g *gear) *engine { return &engine{g: g} }

func newEngine3(g *gear, _ int, _ string) *engine { return &engine{g: g} }

var (
	gearType   = reflect.TypeOf(&gear{})
	engineType = reflect.TypeOf(&engine{})
)

// newHost wires a host with gear registered and the engine constructors of
// parameter counts {0, 1, 3}.
func newHost(t *testing.T) *injx.Host {
	t.Helper()
	h := injx.New()
	_, err := h.AddConstructor(newGear)
	require.NoError(t, err)
	h.RegisterConstructor(injx.Transient, gearType, gearType)

	for _, fn := range []any{newEngine0, newEngine1, newEngine3} {
		_, err := h.AddConstructor(fn)
		require.NoError(t, err)
	}
	return h
}

// TestSelect_PreLockLongestWins verifies the registration phase accepts
// the longest constructor unconditionally.
func TestSelect_PreLockLongestWins(t *testing.T) {
	t.Parallel()

	h := newHost(t)
	p := policy.NewMostResolvable()

	c, err := p.SelectConstructor(h, engineType, engineType)
	require.NoError(t, err)
	assert.Len(t, c.Params, 3)
}

// TestSelect_PostLockMostResolvable verifies that after the lock the
// 1-parameter constructor wins over the 3-parameter one whose int and
// string parameters are unresolvable.
func TestSelect_PostLockMostResolvable(t *testing.T) {
	t.Parallel()

	h := newHost(t)
	h.Lock()
	p := policy.NewMostResolvable()

	c, err := p.SelectConstructor(h, engineType, engineType)
	require.NoError(t, err)
	require.Len(t, c.Params, 1)
	assert.Equal(t, gearType, c.Params[0].Type)
}

// TestSelect_NoConstructor verifies the "nothing registered" failure is
// distinct from the "nothing resolvable" one.
func TestSelect_NoConstructor(t *testing.T) {
	t.Parallel()

	h := injx.New()
	p := policy.NewMostResolvable()

	_, err := p.SelectConstructor(h, engineType, engineType)
	var aerr *apis.ActivationError
	require.True(t, errors.As(err, &aerr))
	assert.Contains(t, aerr.Error(), "no constructor registered")
}

// TestSelect_NoneResolvable verifies a descriptive failure when every
// candidate has unresolvable parameters after the lock.
func TestSelect_NoneResolvable(t *testing.T) {
	t.Parallel()

	h := injx.New()
	_, err := h.AddConstructor(newEngine3)
	require.NoError(t, err)
	h.Lock()

	p := policy.NewMostResolvable()
	_, err = p.SelectConstructor(h, engineType, engineType)
	var aerr *apis.ActivationError
	require.True(t, errors.As(err, &aerr))
	assert.Contains(t, aerr.Error(), "resolvable parameters")
}

// TestSelect_StableTieBreak verifies the first registered constructor wins
// among candidates of equal parameter count.
func TestSelect_StableTieBreak(t *testing.T) {
	t.Parallel()

	first := func() *engine { return &engine{} }
	second := func() *engine { return &engine{} }

	h := injx.New()
	_, err := h.AddConstructor(first)
	require.NoError(t, err)
	_, err = h.AddConstructor(second)
	require.NoError(t, err)
	h.Lock()

	p := policy.NewMostResolvable()
	c, err := p.SelectConstructor(h, engineType, engineType)
	require.NoError(t, err)
	assert.Equal(t, reflect.ValueOf(first).Pointer(), c.Func.Pointer())
}

// TestBuildParameter_Backed verifies a registration-backed parameter
// resolves to its registration's node.
func TestBuildParameter_Backed(t *testing.T) {
	t.Parallel()

	h := newHost(t)
	pp := policy.NewRegistrationBacked()

	p := apis.Parameter{Owner: reflect.ValueOf(newEngine1), Index: 0, Type: gearType}
	n, err := pp.BuildParameter(h, p)
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, gearType, n.ResultType())
}

// TestBuildParameter_Unresolvable verifies a registration-less parameter
// fails with ActivationError, leaving it usable as a capability probe.
func TestBuildParameter_Unresolvable(t *testing.T) {
	t.Parallel()

	h := injx.New()
	pp := policy.NewRegistrationBacked()

	p := apis.Parameter{Owner: reflect.ValueOf(newEngine3), Index: 1, Type: reflect.TypeOf(0)}
	_, err := pp.BuildParameter(h, p)
	var aerr *apis.ActivationError
	require.True(t, errors.As(err, &aerr))
	assert.Contains(t, aerr.Error(), "not registered")
}
