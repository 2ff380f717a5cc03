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

package apis

import "reflect"

// Node is one immutable step of a construction plan: invoke a stored
// delegate, call a constructor with argument nodes, or post-process the
// result of an inner node. Nodes compose into a tree rooted at the node
// that produces the fully built service instance.
//
// Nodes are pure data. Implementations must not mutate themselves after
// construction; rewrites produce new nodes via WithChildren.
type Node interface {
	// ResultType reports the static type of the value this node produces.
	ResultType() reflect.Type

	// Children returns the direct sub-nodes in evaluation order.
	// Leaf nodes return nil.
	Children() []Node

	// WithChildren returns a copy of the node with its direct sub-nodes
	// replaced. Leaf nodes return themselves unchanged.
	WithChildren(children []Node) Node

	// String returns a short human-readable description for diagnostics.
	String() string
}
