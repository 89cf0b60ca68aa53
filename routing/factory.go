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
	"context"

	"github.com/endink/go-sharding/core"
	"github.com/endink/go-sharding/explain"
	"github.com/endink/go-sharding/metadata"
	"github.com/endink/go-sharding/rule"
	"github.com/endink/go-sharding/telemetry"
	"go.opentelemetry.io/otel/label"
)

var meter = telemetry.GetMeter("routing")
var engineSelectedCounter = meter.NewInt64Counter(
	telemetry.BuildMetricName("RouteEngine", "Selected"),
	"count of route engine selections by kind")

// NewRouteEngine classifies a statement against one rule and returns the
// engine realizing the selected strategy. The decision is a pure function of
// its inputs, the same statement and rule always select the same engine.
//
// Priority order: transaction control first, then DDL (cursor DDL before
// ordinary DDL), then DAL, then DCL, everything else is treated as DML.
func NewRouteEngine(r rule.Rule, schema *metadata.Schema, query *QueryContext) Engine {
	engine := selectEngine(r, schema, query)
	engineSelectedCounter.Add(context.Background(), 1, label.String("kind", engine.Kind().String()))
	return engine
}

func selectEngine(r rule.Rule, schema *metadata.Schema, query *QueryContext) Engine {
	sc := query.Statement
	switch sc.Category() {
	case explain.CategoryTCL:
		// every data source must see BEGIN/COMMIT/ROLLBACK
		return DatabaseBroadcastEngine()
	case explain.CategoryDDL:
		if cursor, ok := sc.(explain.CursorAware); ok {
			return selectCursorEngine(r, cursor, query.Connection)
		}
		return selectDDLEngine(r, schema, sc)
	case explain.CategoryDAL:
		return selectDALEngine(r, sc)
	case explain.CategoryDCL:
		return selectDCLEngine(r, sc)
	default:
		return selectDMLEngine(r, sc, query.Connection)
	}
}

// selectCursorEngine routes cursor DDL. Cursor state is node local, so a
// fully governed statement goes to exactly one node, closing all cursors
// concerns every node.
func selectCursorEngine(r rule.Rule, sc explain.CursorAware, conn *ConnectionContext) Engine {
	if sc.IsCloseAll() {
		return DatabaseBroadcastEngine()
	}
	tables := explain.TableNames(sc)
	if r.ContainsAllTables(tables) {
		return UnicastEngine(tables, conn)
	}
	return IgnoreEngine()
}

// selectDDLEngine routes ordinary DDL. A statement that carries no table
// names may still address tables through its indexes, the schema resolves
// those. The rule only claims the statement when it governs every resulting
// table, a partial broadcast would split the schema across rule domains.
func selectDDLEngine(r rule.Rule, schema *metadata.Schema, sc explain.StatementContext) Engine {
	tables := explain.TableNames(sc)
	if len(tables) == 0 && schema != nil {
		for _, index := range explain.IndexNames(sc) {
			tables = append(tables, schema.TablesByIndex(index)...)
		}
	}
	if r.ContainsAllTables(tables) {
		return TableBroadcastEngine(tables)
	}
	return IgnoreEngine()
}

func selectDALEngine(r rule.Rule, sc explain.StatementContext) Engine {
	if _, ok := sc.(*explain.UseContext); ok {
		// session context switch has no table scope
		return IgnoreEngine()
	}
	tables := explain.TableNames(sc)
	governed := r.FilterTables(tables)
	// FilterTables deduplicates, so full coverage is a set comparison; a
	// table referenced under two spellings still counts once.
	if len(governed) > 0 && len(governed) == len(core.DistinctStrings(tables)) {
		return TableBroadcastEngine(governed)
	}
	return IgnoreEngine()
}

// selectDCLEngine routes data control statements. A grant naming exactly one
// concrete table broadcasts as soon as that table is governed, even when
// other referenced tables are not. This asymmetry against the DDL/DAL rule
// is deliberate, grants on a single table are scoped narrowly enough that a
// partial claim cannot split schema state.
func selectDCLEngine(r rule.Rule, sc explain.StatementContext) Engine {
	tables := explain.TableNames(sc)
	governed := r.FilterTables(tables)
	singleConcrete := explain.IsSingleConcreteTable(sc)
	if (singleConcrete && len(governed) > 0) || (len(governed) > 0 && len(governed) == len(core.DistinctStrings(tables))) {
		return TableBroadcastEngine(governed)
	}
	return IgnoreEngine()
}

// selectDMLEngine routes queries and writes. Broadcast tables are fully
// replicated, a read needs one copy only while a write must reach every
// replica.
func selectDMLEngine(r rule.Rule, sc explain.StatementContext, conn *ConnectionContext) Engine {
	tables := explain.TableNames(sc)
	if !r.ContainsAllTables(tables) {
		return IgnoreEngine()
	}
	if explain.IsReadOnly(sc) {
		return UnicastEngine(tables, conn)
	}
	return DatabaseBroadcastEngine()
}
