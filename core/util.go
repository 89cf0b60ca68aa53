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

package core

import (
	"fmt"
	"strings"
)

var LineSeparator = "\n"

func TrimAndLower(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// IfBlank returns blankValue when value is empty or whitespace only.
func IfBlank(value string, blankValue string) string {
	if strings.TrimSpace(value) == "" {
		return blankValue
	}
	return value
}

func IfBlankAndTrim(value string, blankValue string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return blankValue
	}
	return v
}

// ItoString interface to string
func ItoString(a interface{}) (bool, string) {
	switch v := a.(type) {
	case nil:
		return false, "NULL"
	case []byte:
		return true, string(v)
	case string:
		return true, v
	default:
		return false, fmt.Sprintf("%v", v)
	}
}

// DistinctStrings keeps the first occurrence of each name, identity is
// case-insensitive, input order is preserved.
func DistinctStrings(values []string) []string {
	if len(values) < 2 {
		return values
	}
	seen := make(map[Identifier]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		key := Ident(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, v)
	}
	return result
}
