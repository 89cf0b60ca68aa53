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

package testkit

import (
	"fmt"
	"testing"

	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/assert"
)

func errorDifferent(excepted interface{}, actual interface{}) string {
	sb := newStringBuilder()
	sb.WriteLine("array not same")

	sb.WriteLine("excepted: ")
	sb.WriteLine(fmt.Sprintf("%v", excepted))
	sb.WriteLine()

	sb.WriteLine("actual: ")
	sb.WriteLine(fmt.Sprintf("%v", actual))
	sb.WriteLine()

	return sb.String()
}

// AssertStrArrayEquals asserts two string slices hold the same elements,
// element order is not significant.
func AssertStrArrayEquals(t *testing.T, excepted []string, actual []string, msgAndArgs ...interface{}) bool {
	if !assert.Equal(t, len(excepted), len(actual), msgAndArgs...) {
		t.Log(errorDifferent(excepted, actual))
		return false
	}
	e := sorted(excepted)
	a := sorted(actual)
	if !assert.Equal(t, e, a, msgAndArgs...) {
		t.Log(errorDifferent(excepted, actual))
		return false
	}
	return true
}

func sorted(values []string) []string {
	array := make([]interface{}, len(values))
	for i, v := range values {
		array[i] = v
	}
	utils.Sort(array, utils.StringComparator)
	result := make([]string, len(values))
	for i, v := range array {
		result[i] = v.(string)
	}
	return result
}
