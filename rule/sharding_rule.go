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
	"go.uber.org/multierr"
)

var _ Rule = &ShardingRule{}

// ShardingTable describes one horizontally partitioned logic table and the
// physical data nodes realizing it.
type ShardingTable struct {
	Name      string
	DataNodes []DataNode
}

func NewShardingTable(name string, dataNodes []DataNode) *ShardingTable {
	return &ShardingTable{Name: name, DataNodes: dataNodes}
}

// DataSourceNames lists the data sources holding at least one partition of
// this table, sorted.
func (t *ShardingTable) DataSourceNames() []string {
	set := strset.New()
	for _, n := range t.DataNodes {
		set.Add(n.DataSourceName)
	}
	names := set.List()
	sort.Strings(names)
	return names
}

func (t *ShardingTable) ActualTableNames() []string {
	names := make([]string, 0, len(t.DataNodes))
	for _, n := range t.DataNodes {
		names = append(names, n.TableName)
	}
	return core.DistinctStrings(names)
}

// ShardingRule governs horizontally partitioned tables. Beside membership it
// keeps the reverse index from physical table names to logic tables, every
// physical name maps to exactly one logic table or to none.
type ShardingRule struct {
	name            string
	tables          map[core.Identifier]*ShardingTable
	tableNames      []string
	actualToLogic   map[core.Identifier]string
	bindingGroups   []*strset.Set
	dataSourceNames []string
}

func NewShardingRule(name string, tables []*ShardingTable, bindingGroups [][]string) (*ShardingRule, error) {
	r := &ShardingRule{
		name:          name,
		tables:        make(map[core.Identifier]*ShardingTable, len(tables)),
		actualToLogic: make(map[core.Identifier]string),
	}

	var err error
	sources := strset.New()
	for _, t := range tables {
		key := core.Ident(t.Name)
		if key.IsBlank() {
			err = multierr.Append(err, errors.Errorf("sharding rule '%s' contains a blank table name", name))
			continue
		}
		if _, ok := r.tables[key]; ok {
			err = multierr.Append(err, errors.Errorf("logic table '%s' is configured twice", t.Name))
			continue
		}
		if len(t.DataNodes) == 0 {
			err = multierr.Append(err, errors.Errorf("logic table '%s' has no data nodes", t.Name))
			continue
		}
		r.tables[key] = t
		r.tableNames = append(r.tableNames, t.Name)
		for _, node := range t.DataNodes {
			sources.Add(node.DataSourceName)
			actualKey := core.Ident(node.TableName)
			if owner, ok := r.actualToLogic[actualKey]; ok && core.Ident(owner) != key {
				err = multierr.Append(err, errors.Errorf(
					"actual table '%s' belongs to both logic table '%s' and '%s'", node.TableName, owner, t.Name))
				continue
			}
			r.actualToLogic[actualKey] = t.Name
		}
	}

	for _, group := range bindingGroups {
		set := strset.New()
		for _, tableName := range group {
			if !r.ContainsTable(tableName) {
				err = multierr.Append(err, errors.Errorf(
					"binding table '%s' is not a sharding table of rule '%s'", tableName, name))
				continue
			}
			set.Add(core.Ident(tableName).String())
		}
		if set.Size() > 1 {
			r.bindingGroups = append(r.bindingGroups, set)
		}
	}

	if err != nil {
		return nil, err
	}

	r.dataSourceNames = sources.List()
	sort.Strings(r.dataSourceNames)
	return r, nil
}

func (r *ShardingRule) Name() string {
	return r.name
}

func (r *ShardingRule) AllTableNames() []string {
	return r.tableNames
}

// Table returns the sharding table descriptor of a logic name.
func (r *ShardingRule) Table(logicTableName string) (*ShardingTable, bool) {
	t, ok := r.tables[core.Ident(logicTableName)]
	return t, ok
}

func (r *ShardingRule) ContainsTable(tableName string) bool {
	_, ok := r.tables[core.Ident(tableName)]
	return ok
}

func (r *ShardingRule) ContainsAllTables(tableNames []string) bool {
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

func (r *ShardingRule) FilterTables(tableNames []string) []string {
	var result []string
	for _, t := range core.DistinctStrings(tableNames) {
		if r.ContainsTable(t) {
			result = append(result, t)
		}
	}
	return result
}

func (r *ShardingRule) FindLogicTableByActualTable(actualTableName string) (string, bool) {
	logic, ok := r.actualToLogic[core.Ident(actualTableName)]
	return logic, ok
}

func (r *ShardingRule) DataSourceNames() []string {
	return r.dataSourceNames
}

func (r *ShardingRule) DataNodesOf(logicTableName string) []DataNode {
	if t, ok := r.tables[core.Ident(logicTableName)]; ok {
		return t.DataNodes
	}
	return nil
}

func (r *ShardingRule) IsBound(tableA, tableB string) bool {
	a := core.Ident(tableA)
	b := core.Ident(tableB)
	if a == b {
		return true
	}
	for _, group := range r.bindingGroups {
		if group.Has(a.String()) && group.Has(b.String()) {
			return true
		}
	}
	return false
}
