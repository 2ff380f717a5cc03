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

package diag

import (
	"reflect"

	"go.uber.org/zap"

	"dirpx.dev/injx/apis"
	"dirpx.dev/injx/node"
)

// LoggingInterceptor returns an apis.Interceptor that logs every plan
// build at debug level and returns the node unchanged. Install it through
// the host's interceptor hook; it never rewrites the plan.
func LoggingInterceptor(log *zap.Logger) apis.Interceptor {
	if log == nil {
		log = zap.NewNop()
	}
	return func(reg apis.Registration, service, impl reflect.Type, n apis.Node) apis.Node {
		log.Debug("construction plan built",
			zap.String("service", node.TypeName(service)),
			zap.String("impl", node.TypeName(impl)),
			zap.String("lifestyle", reg.Lifestyle().Name()),
			zap.String("plan", n.String()),
		)
		return n
	}
}
