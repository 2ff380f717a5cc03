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

package registration_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	injx "dirpx.dev/injx"
	"dirpx.dev/injx/apis"
	"dirpx.dev/injx/node"
)

type thing struct{ n int }

func newThing() *thing { return &thing{} }

var thingType = reflect.TypeOf(&thing{})

// TestBuildFactory_Delegate verifies the end-to-end path from a delegate
// registration to an invoked factory.
func TestBuildFactory_Delegate(t *testing.T) {
	t.Parallel()

	h := injx.New()
	reg := h.RegisterDelegate(injx.Transient, thingType, func() (any, error) {
		return &thing{n: 5}, nil
	})

	f, err := reg.BuildFactory()
	require.NoError(t, err)
	v, err := f()
	require.NoError(t, err)
	assert.Equal(t, 5, v.(*thing).n)

	assert.Equal(t, thingType, reg.ServiceType())
	assert.Equal(t, thingType, reg.ImplementationType())
	assert.Equal(t, injx.Transient, reg.Lifestyle())
}

// TestReplaceRelationships_Dedupes verifies duplicate edges collapse while
// preserving first-seen order.
func TestReplaceRelationships_Dedupes(t *testing.T) {
	t.Parallel()

	h := injx.New()
	reg := h.RegisterDelegate(injx.Transient, thingType, func() (any, error) {
		return &thing{}, nil
	})
	dep := h.RegisterDelegate(injx.Transient, reflect.TypeOf(0), func() (any, error) {
		return 1, nil
	})

	edge := apis.Relationship{Consumer: thingType, Lifestyle: injx.Transient, Dependency: dep}
	other := apis.Relationship{Consumer: thingType, Lifestyle: injx.Transient, Dependency: reg}
	reg.ReplaceRelationships([]apis.Relationship{edge, other, edge, other})

	edges := reg.Relationships()
	require.Len(t, edges, 2)
	assert.Equal(t, edge, edges[0])
	assert.Equal(t, other, edges[1])
}

// TestRelationships_SnapshotIsolated verifies mutating a returned snapshot
// does not leak into the set.
func TestRelationships_SnapshotIsolated(t *testing.T) {
	t.Parallel()

	h := injx.New()
	reg := h.RegisterDelegate(injx.Transient, thingType, func() (any, error) {
		return &thing{}, nil
	})
	edge := apis.Relationship{Consumer: thingType, Lifestyle: injx.Transient, Dependency: reg}
	reg.ReplaceRelationships([]apis.Relationship{edge})

	snap := reg.Relationships()
	snap[0] = apis.Relationship{}
	assert.Equal(t, edge, reg.Relationships()[0])
}

// TestSetParameterOverrides_WholesaleReplace verifies a second call
// replaces the table and issues fresh placeholder identities.
func TestSetParameterOverrides_WholesaleReplace(t *testing.T) {
	t.Parallel()

	h := injx.New()
	reg := h.RegisterConstructor(injx.Transient, thingType, thingType)

	p := apis.Parameter{Owner: reflect.ValueOf(newThing), Index: 0, Type: reflect.TypeOf(0)}
	q := apis.Parameter{Owner: reflect.ValueOf(newThing), Index: 1, Type: reflect.TypeOf("")}

	reg.SetParameterOverrides([]apis.ParameterOverride{
		{Param: p, Replacement: node.NewConstant(nil, 1)},
		{Param: q, Replacement: node.NewConstant(nil, "x")},
	})
	first, ok := reg.Override(p)
	require.True(t, ok)
	_, ok = reg.Override(q)
	require.True(t, ok)

	reg.SetParameterOverrides([]apis.ParameterOverride{
		{Param: p, Replacement: node.NewConstant(nil, 2)},
	})
	second, ok := reg.Override(p)
	require.True(t, ok)
	_, ok = reg.Override(q)
	assert.False(t, ok, "old table must be gone")

	fp := first.Placeholder.(*node.Placeholder)
	sp := second.Placeholder.(*node.Placeholder)
	assert.NotEqual(t, fp.Token(), sp.Token())
}
