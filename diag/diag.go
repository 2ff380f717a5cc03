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

// Package diag renders construction plans and relationship snapshots for
// operators, and provides an opt-in logging interceptor. Nothing here is
// on the build hot path; everything works off public snapshots.
package diag

import (
	"fmt"
	"strings"

	"github.com/m1gwings/treedrawer/tree"

	"dirpx.dev/injx/apis"
	"dirpx.dev/injx/node"
)

// Tree renders the construction node tree as a drawing, one box per node
// labelled with the node's String().
func Tree(n apis.Node) string {
	if n == nil {
		return "<nil plan>"
	}
	t := tree.NewTree(tree.NodeString(n.String()))
	addChildren(t, n)
	return fmt.Sprint(t)
}

func addChildren(t *tree.Tree, n apis.Node) {
	for i, c := range n.Children() {
		t.AddChild(tree.NodeString(c.String()))
		ct, err := t.Child(i)
		if err != nil {
			continue
		}
		addChildren(ct, c)
	}
}

// Relationships formats a registration's captured dependency edges, one
// edge per line, in capture order.
func Relationships(reg apis.Registration) string {
	edges := reg.Relationships()
	if len(edges) == 0 {
		return "(no captured relationships)"
	}
	var sb strings.Builder
	for _, e := range edges {
		sb.WriteString(node.TypeName(e.Consumer))
		sb.WriteString(" [")
		sb.WriteString(e.Lifestyle.Name())
		sb.WriteString("] -> ")
		sb.WriteString(node.TypeName(e.Dependency.ServiceType()))
		sb.WriteString("\n")
	}
	return sb.String()
}
