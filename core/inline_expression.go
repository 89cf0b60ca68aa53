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
	"strconv"
	"strings"

	"github.com/pingcap/errors"
)

// ExpandInlineExpression expands a data node expression such as
// "ds_${0..1}.t_order_${0..1}" or "t_${[a,b]}". Supported placeholders are
// numeric ranges "${begin..end}" and enumerations "${[v1,v2,...]}", multiple
// placeholders produce the cartesian product. A top level comma separates
// independent expressions. Whitespace around items is ignored.
func ExpandInlineExpression(expression string) ([]string, error) {
	var result []string
	for _, exp := range splitTopLevel(expression) {
		if strings.TrimSpace(exp) == "" {
			continue
		}
		expanded, err := expandOne(strings.TrimSpace(exp))
		if err != nil {
			return nil, err
		}
		result = append(result, expanded...)
	}
	return result, nil
}

// splitTopLevel splits on commas that sit outside of "${...}".
func splitTopLevel(expression string) []string {
	var parts []string
	depth := 0
	last := 0
	for i := 0; i < len(expression); i++ {
		switch expression[i] {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, expression[last:i])
				last = i + 1
			}
		}
	}
	return append(parts, expression[last:])
}

func expandOne(exp string) ([]string, error) {
	start := strings.Index(exp, "${")
	if start < 0 {
		return []string{exp}, nil
	}
	end := strings.Index(exp[start:], "}")
	if end < 0 {
		return nil, errors.Errorf("inline expression syntax error, '}' is missing: %s", exp)
	}
	end += start

	values, err := expandPlaceholder(exp[start+2 : end])
	if err != nil {
		return nil, errors.Annotatef(err, "inline expression: %s", exp)
	}

	suffixes, err := expandOne(exp[end+1:])
	if err != nil {
		return nil, err
	}

	prefix := exp[:start]
	result := make([]string, 0, len(values)*len(suffixes))
	for _, v := range values {
		for _, s := range suffixes {
			result = append(result, prefix+v+s)
		}
	}
	return result, nil
}

func expandPlaceholder(body string) ([]string, error) {
	body = strings.TrimSpace(body)
	if strings.HasPrefix(body, "[") && strings.HasSuffix(body, "]") {
		items := strings.Split(body[1:len(body)-1], ",")
		values := make([]string, 0, len(items))
		for _, item := range items {
			if v := strings.TrimSpace(item); v != "" {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			return nil, errors.New("empty enumeration placeholder")
		}
		return values, nil
	}
	if idx := strings.Index(body, ".."); idx >= 0 {
		begin, err := strconv.Atoi(strings.TrimSpace(body[:idx]))
		if err != nil {
			return nil, errors.Annotate(err, "range begin is not a number")
		}
		end, err := strconv.Atoi(strings.TrimSpace(body[idx+2:]))
		if err != nil {
			return nil, errors.Annotate(err, "range end is not a number")
		}
		if end < begin {
			return nil, errors.Errorf("invalid range %d..%d", begin, end)
		}
		values := make([]string, 0, end-begin+1)
		for i := begin; i <= end; i++ {
			values = append(values, strconv.Itoa(i))
		}
		return values, nil
	}
	return nil, errors.Errorf("unsupported placeholder: ${%s}", body)
}
