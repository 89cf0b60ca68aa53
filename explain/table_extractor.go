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

package explain

import (
	"github.com/endink/go-sharding/core"
	"github.com/pingcap/parser/ast"
)

// ExtractTableNames collects the distinct table names referenced anywhere in
// a statement node, subqueries included. First occurrence wins for the
// spelling, identity is case-insensitive.
func ExtractTableNames(node ast.Node) []string {
	if node == nil {
		return nil
	}
	visitor := &tableNameVisitor{seen: make(map[core.Identifier]struct{})}
	node.Accept(visitor)
	return visitor.names
}

type tableNameVisitor struct {
	names []string
	seen  map[core.Identifier]struct{}
}

func (v *tableNameVisitor) Enter(in ast.Node) (ast.Node, bool) {
	if table, ok := in.(*ast.TableName); ok {
		name := table.Name.O
		key := core.Ident(name)
		if _, dup := v.seen[key]; !dup {
			v.seen[key] = struct{}{}
			v.names = append(v.names, name)
		}
	}
	return in, false
}

func (v *tableNameVisitor) Leave(in ast.Node) (ast.Node, bool) {
	return in, true
}
