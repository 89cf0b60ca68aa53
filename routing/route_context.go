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

package routing

import (
	"github.com/scylladb/go-set/strset"
)

// RouteTarget is one resolved execution target. Table is empty for targets
// that address a whole data source.
type RouteTarget struct {
	DataSource string
	Table      string
}

// RouteContext accumulates the execution targets of one statement. It is
// built fresh per statement, owned by the routing call that creates it and
// handed off to the execution layer afterwards. Targets keep insertion
// order, duplicates are dropped.
type RouteContext struct {
	targets           []RouteTarget
	seen              *strset.Set
	databaseBroadcast bool
}

func NewRouteContext() *RouteContext {
	return &RouteContext{
		seen: strset.New(),
	}
}

// AddDataSource records a whole data source target, unqualified by table.
func (r *RouteContext) AddDataSource(dataSourceName string) {
	r.add(RouteTarget{DataSource: dataSourceName})
}

// AddTable records one physical table target.
func (r *RouteContext) AddTable(dataSourceName, tableName string) {
	r.add(RouteTarget{DataSource: dataSourceName, Table: tableName})
}

func (r *RouteContext) add(target RouteTarget) {
	key := target.DataSource + "\x00" + target.Table
	if r.seen.Has(key) {
		return
	}
	r.seen.Add(key)
	r.targets = append(r.targets, target)
}

func (r *RouteContext) markDatabaseBroadcast() {
	r.databaseBroadcast = true
}

// IsDatabaseBroadcast reports whether the statement must reach every data
// source, BEGIN and friends.
func (r *RouteContext) IsDatabaseBroadcast() bool {
	return r.databaseBroadcast
}

func (r *RouteContext) IsEmpty() bool {
	return len(r.targets) == 0
}

// Targets returns the resolved targets in insertion order. The slice is the
// context's own, callers hand the whole context to the execution layer and
// must not grow it.
func (r *RouteContext) Targets() []RouteTarget {
	return r.targets
}

// DataSourceNames lists the distinct data sources among the targets in
// first-seen order.
func (r *RouteContext) DataSourceNames() []string {
	seen := strset.New()
	var names []string
	for _, t := range r.targets {
		if !seen.Has(t.DataSource) {
			seen.Add(t.DataSource)
			names = append(names, t.DataSource)
		}
	}
	return names
}
