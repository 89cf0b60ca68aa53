/*
 * Copyright 2021. Go-Sharding Author All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 *  File author: Anders Xiao
 */

package telemetry

import (
	"strings"
	"sync"

	"go.opentelemetry.io/otel/metric"
)

type NamedMeter struct {
	meter         metric.Meter
	recorderMutex sync.Mutex
	recorders     map[string]interface{}
}

func (m *NamedMeter) getOrPutRecorder(name string, factory func() interface{}) interface{} {
	m.recorderMutex.Lock()
	defer m.recorderMutex.Unlock()
	r, ok := m.recorders[name]
	if !ok {
		r = factory()
		m.recorders[name] = r
	}
	return r
}

func (m *NamedMeter) NewInt64Counter(name, desc string) metric.Int64Counter {
	fac := func() interface{} {
		return metric.Must(m.meter).NewInt64Counter(name, metric.WithDescription(desc))
	}
	r := m.getOrPutRecorder(name, fac)
	return r.(metric.Int64Counter)
}

// BuildMetricName joins name parts into a snake_case dotted metric name,
// "RouteEngine", "selected" becomes "route_engine.selected".
func BuildMetricName(parts ...string) string {
	if len(parts) == 0 {
		panic("name for 'BuildMetricName' can not be nil or empty")
	}
	converted := make([]string, 0, len(parts))
	for _, p := range parts {
		converted = append(converted, toSnake(p))
	}
	return strings.Join(converted, ".")
}

func toSnake(s string) string {
	sb := &strings.Builder{}
	prevUpper := true
	for _, c := range s {
		if 'A' <= c && c <= 'Z' {
			if !prevUpper {
				sb.WriteByte('_')
			}
			sb.WriteRune(c - 'A' + 'a')
			prevUpper = true
		} else {
			sb.WriteRune(c)
			prevUpper = false
		}
	}
	return sb.String()
}
