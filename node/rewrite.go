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

package node

import "dirpx.dev/injx/apis"

// Substitute returns a tree in which every occurrence of the placeholder
// ph within root is replaced by repl. Matching is by placeholder token
// only: structurally identical placeholders with different tokens are
// never substituted. Subtrees without a match are returned unchanged
// (shared, not copied).
func Substitute(root apis.Node, ph *Placeholder, repl apis.Node) apis.Node {
	if ph == nil || root == nil {
		return root
	}
	if p, ok := root.(*Placeholder); ok {
		if p.Token() == ph.Token() {
			return repl
		}
		return root
	}
	kids := root.Children()
	if len(kids) == 0 {
		return root
	}
	changed := false
	out := make([]apis.Node, len(kids))
	for i, k := range kids {
		nk := Substitute(k, ph, repl)
		out[i] = nk
		if nk != k {
			changed = true
		}
	}
	if !changed {
		return root
	}
	return root.WithChildren(out)
}
