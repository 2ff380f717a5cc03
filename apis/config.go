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

// Config carries the pluggable pieces a composition host is created with.
// It is passed by value and should be treated as immutable by consumers.
// Nil policy fields select the reference policies.
type Config struct {
	// ConstructorPolicy selects a constructor per implementation type.
	ConstructorPolicy ConstructorPolicy

	// ParameterPolicy resolves constructor parameters to nodes.
	ParameterPolicy ParameterPolicy

	// Interceptors are plan rewrite hooks applied in order on every build.
	Interceptors []Interceptor
}
