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

import (
	"path"
	"reflect"
	"strings"
)

// TypeName returns a short, stable "pkg.Type" name for t, keeping pointer
// markers and stripping generic instantiation parameters. It is used in
// node descriptions and error messages.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	prefix := ""
	for t.Kind() == reflect.Ptr {
		prefix += "*"
		t = t.Elem()
	}
	name := stripTypeParams(t.Name())
	if name == "" {
		// Anonymous/unnamed types fall back to the full reflect string.
		return prefix + t.String()
	}
	if p := t.PkgPath(); p != "" {
		name = path.Base(p) + "." + name
	}
	return prefix + name
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
