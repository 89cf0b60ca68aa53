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
	"sort"

	"github.com/endink/go-sharding/core"
	"github.com/pingcap/errors"
	"github.com/scylladb/go-set/strset"
)

var _ Rule = &BroadcastRule{}

// BroadcastRule governs tables that are fully replicated on every data
// source. A broadcast table keeps its own name on each physical copy, so
// there is no actual to logic mapping to resolve.
type BroadcastRule struct {
	name            string
	dataSourceNames []string
	tables          map[core.Identifier]string
	tableNames      []string
}

func NewBroadcastRule(name string, dataSourceNames []string, tableNames []string) (*BroadcastRule, error) {
	if len(dataSourceNames) == 0 {
		return nil, errors.Errorf("broadcast rule '%s' requires at least one data source", name)
	}
	sources := strset.New(dataSourceNames...).List()
	sort.Strings(sources)

	r := &BroadcastRule{
		name:            name,
		dataSourceNames: sources,
		tables:          make(map[core.Identifier]string, len(tableNames)),
	}
	for _, t := range tableNames {
		key := core.Ident(t)
		if key.IsBlank() {
			return nil, errors.Errorf("broadcast rule '%s' contains a blank table name", name)
		}
		if _, ok := r.tables[key]; ok {
			continue
		}
		r.tables[key] = t
		r.tableNames = append(r.tableNames, t)
	}
	return r, nil
}

func (r *BroadcastRule) Name() string {
	return r.name
}

func (r *BroadcastRule) AllTableNames() []string {
	return r.tableNames
}

func (r *BroadcastRule) ContainsTable(tableName string) bool {
	_, ok := r.tables[core.Ident(tableName)]
	return ok
}

func (r *BroadcastRule) ContainsAllTables(tableNames []string) bool {
	if len(tableNames) == 0 {
		return false
	}
	for _, t := range tableNames {
		if !r.ContainsTable(t) {
			return false
		}
	}
	return true
}

func (r *BroadcastRule) FilterTables(tableNames []string) []string {
	var result []string
	for _, t := range core.DistinctStrings(tableNames) {
		if r.ContainsTable(t) {
			result = append(result, t)
		}
	}
	return result
}

// FindLogicTableByActualTable always misses, broadcast copies carry the
// logic name already.
func (r *BroadcastRule) FindLogicTableByActualTable(string) (string, bool) {
	return "", false
}

func (r *BroadcastRule) DataSourceNames() []string {
	return r.dataSourceNames
}

func (r *BroadcastRule) DataNodesOf(logicTableName string) []DataNode {
	display, ok := r.tables[core.Ident(logicTableName)]
	if !ok {
		return nil
	}
	nodes := make([]DataNode, 0, len(r.dataSourceNames))
	for _, ds := range r.dataSourceNames {
		nodes = append(nodes, DataNode{DataSourceName: ds, TableName: display})
	}
	return nodes
}

// IsBound treats all broadcast tables as one binding group, every copy has
// the identical configuration.
func (r *BroadcastRule) IsBound(tableA, tableB string) bool {
	return r.ContainsTable(tableA) && r.ContainsTable(tableB)
}
