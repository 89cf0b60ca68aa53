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
	"github.com/endink/go-sharding/rule"
	"github.com/pingcap/errors"
)

// EngineKind tags the routing strategy of one statement. This is a closed
// set, Engine.Route matches it exhaustively.
type EngineKind int

const (
	// KindIgnore means the rule has no opinion about the statement, the
	// caller continues with other rules or default routing. This is normal
	// control flow, not a failure.
	KindIgnore EngineKind = iota
	// KindDatabaseBroadcast sends the statement to every data source,
	// unqualified by table.
	KindDatabaseBroadcast
	// KindTableBroadcast sends the statement to every physical instance of
	// the governed tables.
	KindTableBroadcast
	// KindUnicast sends the statement to exactly one data source, pinned
	// per session.
	KindUnicast
)

var engineKindNames = []string{"Ignore", "DatabaseBroadcast", "TableBroadcast", "Unicast"}

func (k EngineKind) String() string {
	if k < 0 || int(k) >= len(engineKindNames) {
		return ""
	}
	return engineKindNames[k]
}

// Engine computes the execution targets of one statement for one strategy.
// The zero value is the ignore engine.
type Engine struct {
	kind       EngineKind
	tableNames []string
	connection *ConnectionContext
}

func IgnoreEngine() Engine {
	return Engine{kind: KindIgnore}
}

func DatabaseBroadcastEngine() Engine {
	return Engine{kind: KindDatabaseBroadcast}
}

func TableBroadcastEngine(tableNames []string) Engine {
	return Engine{kind: KindTableBroadcast, tableNames: tableNames}
}

func UnicastEngine(tableNames []string, connection *ConnectionContext) Engine {
	return Engine{kind: KindUnicast, tableNames: tableNames, connection: connection}
}

func (e Engine) Kind() EngineKind {
	return e.kind
}

// TableNames returns the governed tables the engine was selected for.
func (e Engine) TableNames() []string {
	return e.tableNames
}

// Route populates the route context with the targets of this engine. The
// rule snapshot is only read, the context is owned by the caller.
func (e Engine) Route(r rule.Rule, ctx *RouteContext) error {
	switch e.kind {
	case KindIgnore:
		return nil
	case KindDatabaseBroadcast:
		for _, ds := range r.DataSourceNames() {
			ctx.AddDataSource(ds)
		}
		ctx.markDatabaseBroadcast()
		return nil
	case KindTableBroadcast:
		for _, table := range e.tableNames {
			for _, node := range r.DataNodesOf(table) {
				ctx.AddTable(node.DataSourceName, node.TableName)
			}
		}
		return nil
	case KindUnicast:
		return e.routeUnicast(r, ctx)
	default:
		return errors.Errorf("unknown route engine kind: %d", e.kind)
	}
}

// routeUnicast picks one data source. The data source already pinned for
// this session wins as long as the rule still spans it, otherwise the first
// one in sorted order is taken and pinned for the rest of the session.
func (e Engine) routeUnicast(r rule.Rule, ctx *RouteContext) error {
	sources := r.DataSourceNames()
	if len(sources) == 0 {
		return errors.Errorf("rule '%s' has no data source to unicast to", r.Name())
	}

	selected := sources[0]
	if e.connection != nil {
		if pinned, ok := e.connection.PinnedDataSource(); ok && containsString(sources, pinned) {
			selected = pinned
		}
		e.connection.Pin(selected)
	}

	if len(e.tableNames) == 0 {
		ctx.AddDataSource(selected)
		return nil
	}
	for _, table := range e.tableNames {
		ctx.AddTable(selected, table)
	}
	return nil
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
