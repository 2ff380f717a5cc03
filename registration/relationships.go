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

package registration

import (
	"sync"

	"dirpx.dev/injx/apis"
)

// relationshipSet is the per-registration collection of dependency edges.
// Reads return snapshot copies and writes clear-and-repopulate, all under
// one mutex, so a concurrent diagnostic reader never observes a partially
// cleared set.
type relationshipSet struct {
	mu    sync.Mutex
	edges []apis.Relationship
}

// snapshot returns a copy of the current edges, in insertion order.
func (s *relationshipSet) snapshot() []apis.Relationship {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]apis.Relationship, len(s.edges))
	copy(out, s.edges)
	return out
}

// replace atomically swaps the set contents for the de-duplicated edges,
// preserving first-seen order.
func (s *relationshipSet) replace(edges []apis.Relationship) {
	seen := make(map[apis.Relationship]struct{}, len(edges))
	out := make([]apis.Relationship, 0, len(edges))
	for _, e := range edges {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}

	s.mu.Lock()
	s.edges = out
	s.mu.Unlock()
}
