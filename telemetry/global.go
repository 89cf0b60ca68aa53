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
	"sync"

	"go.opentelemetry.io/otel"
)

var meterMap = make(map[string]*NamedMeter)
var meterMutex sync.Mutex

// GetMeter returns the meter for an instrumentation name, the same instance
// is handed out for repeated calls.
func GetMeter(instrumentationName string) *NamedMeter {
	meterMutex.Lock()
	defer meterMutex.Unlock()
	if m, ok := meterMap[instrumentationName]; ok {
		return m
	}
	nm := &NamedMeter{
		meter:     otel.Meter(instrumentationName),
		recorders: make(map[string]interface{}),
	}
	meterMap[instrumentationName] = nm
	return nm
}
