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

package rule

import (
	"fmt"
)

// DataNode is one physical location of a logic table, a table instance on a
// concrete data source.
type DataNode struct {
	DataSourceName string
	TableName      string
}

func (n DataNode) String() string {
	return fmt.Sprintf("%s.%s", n.DataSourceName, n.TableName)
}

// Rule is an immutable snapshot of one table governing rule. A rule answers
// membership questions about logic tables and maps physical names back to
// logic names. Snapshots are replaced wholesale on configuration refresh and
// are never mutated, so they are safe for concurrent use.
type Rule interface {
	Name() string

	// AllTableNames lists the logic tables this rule governs.
	AllTableNames() []string

	ContainsTable(tableName string) bool

	// ContainsAllTables reports whether every given table is governed by
	// this rule. An empty input yields false, a statement without tables
	// gives the rule nothing to claim.
	ContainsAllTables(tableNames []string) bool

	// FilterTables returns the governed subset of the given names, input
	// order preserved.
	FilterTables(tableNames []string) []string

	// FindLogicTableByActualTable maps a physical table name back to its
	// logic table. The second result is false when the name is no sharded
	// table instance, in that case the name stands for itself.
	FindLogicTableByActualTable(actualTableName string) (string, bool)

	// DataSourceNames lists every physical data source the rule spans,
	// sorted for stable iteration.
	DataSourceNames() []string

	// DataNodesOf lists the physical locations of one logic table.
	DataNodesOf(logicTableName string) []DataNode

	// IsBound reports whether two tables share one binding group, tables
	// in one group are always altered and renamed together.
	IsBound(tableA, tableB string) bool
}
