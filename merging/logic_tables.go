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

package merging

import (
	"time"

	"github.com/endink/go-sharding/logging"
	"github.com/endink/go-sharding/metadata"
	"github.com/endink/go-sharding/rule"
	"github.com/scylladb/go-set/strset"
)

var logger = logging.GetLogger("merging")
var droppedRowLog = logging.NewThrottledLogger("merge dropped row", logger, 30*time.Second)

// CellDecorator rewrites display cells of an emitted row, the logic table's
// metadata is handed along when the schema knows it. Decorators run after
// the first cell was rewritten to the logic name.
type CellDecorator func(row Row, logicTableName, actualTableName string, table *metadata.Table)

// LogicTablesMerger folds the per data source result rows of an
// introspection statement (SHOW TABLES and friends) into one logical
// sequence. The first cell of each row is the table name, physical names are
// rewritten to their logic name and duplicates across shards are dropped.
type LogicTablesMerger struct {
	rule       rule.Rule
	schema     *metadata.Schema
	decorators []CellDecorator
}

func NewLogicTablesMerger(r rule.Rule, schema *metadata.Schema, decorators ...CellDecorator) *LogicTablesMerger {
	return &LogicTablesMerger{
		rule:       r,
		schema:     schema,
		decorators: decorators,
	}
}

// Merge consumes each cursor to exhaustion in the given order and emits at
// most one row per logic table name. For a name reported by several physical
// sources the row content of the first source wins, that tie-break is the
// only order dependent part of the merge.
func (m *LogicTablesMerger) Merge(results []QueryResult) ([]Row, error) {
	seen := strset.New()
	var merged []Row
	for _, each := range results {
		for each.Next() {
			if row, ok := m.mergeRow(each.Row(), seen); ok {
				merged = append(merged, row)
			}
		}
		if err := each.Err(); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

func (m *LogicTablesMerger) mergeRow(source Row, seen *strset.Set) (Row, bool) {
	if len(source) == 0 {
		return nil, false
	}
	row := source.clone()
	actualTableName := row.CellString(0)

	if logicTableName, ok := m.rule.FindLogicTableByActualTable(actualTableName); ok {
		key := nameKey(logicTableName)
		if seen.Has(key) {
			// duplicate physical instance of an already emitted logic table
			return nil, false
		}
		seen.Add(key)
		row.SetCell(0, logicTableName)
		m.decorate(row, logicTableName, actualTableName)
		return row, true
	}

	// The name resolves to no logic table. In a context without governed
	// tables every row passes through, otherwise the physical name stands
	// in for itself and is deduplicated under its own name. A name that
	// stays unresolved against a non-empty rule is dropped rather than
	// failing the whole merge.
	if len(m.rule.AllTableNames()) == 0 || !seen.Has(nameKey(actualTableName)) {
		seen.Add(nameKey(actualTableName))
		m.decorate(row, actualTableName, actualTableName)
		return row, true
	}
	droppedRowLog.Infof("dropped duplicate row of table '%s'", actualTableName)
	return nil, false
}

func (m *LogicTablesMerger) decorate(row Row, logicTableName, actualTableName string) {
	if len(m.decorators) == 0 {
		return
	}
	var table *metadata.Table
	if m.schema != nil {
		table, _ = m.schema.Table(logicTableName)
	}
	for _, d := range m.decorators {
		d(row, logicTableName, actualTableName, table)
	}
}

func nameKey(name string) string {
	return string(nameIdent(name))
}
