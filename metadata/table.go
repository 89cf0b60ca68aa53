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

package metadata

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/endink/go-sharding/core"
)

type TableType int

const (
	TypeTable TableType = iota
	TypeView
)

func (t TableType) String() string {
	if t == TypeView {
		return "VIEW"
	}
	return "TABLE"
}

// Table is the per logic table schema snapshot. Columns keep their
// declaration order and are addressed case-insensitively, the positions of
// visible columns are dense and follow declaration order so result set
// columns can be projected positionally.
//
// A Table is built once from an externally fetched schema snapshot and then
// mutated in place by Put/Remove calls when schema change events arrive, it
// is not safe for unsynchronized concurrent mutation.
type Table struct {
	name      string
	tableType TableType

	columns          *linkedhashmap.Map // key core.Identifier, value *Column
	visibleColumns   []string
	visiblePositions map[core.Identifier]int
	primaryKeys      []string

	indexes     map[core.Identifier]*Index
	indexNames  []string
	constraints map[core.Identifier]*Constraint
}

func NewTable(name string, tableType TableType, columns []*Column, indexes []*Index, constraints []*Constraint) *Table {
	t := &Table{
		name:        name,
		tableType:   tableType,
		columns:     linkedhashmap.New(),
		indexes:     make(map[core.Identifier]*Index, len(indexes)),
		constraints: make(map[core.Identifier]*Constraint, len(constraints)),
	}
	for _, c := range columns {
		t.columns.Put(core.Ident(c.Name), c)
	}
	t.refreshDerived()
	for _, i := range indexes {
		t.PutIndex(i)
	}
	for _, c := range constraints {
		t.PutConstraint(c)
	}
	return t
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) Type() TableType {
	return t.tableType
}

func (t *Table) IsView() bool {
	return t.tableType == TypeView
}

// Column looks a column up by name.
func (t *Table) Column(columnName string) (*Column, bool) {
	v, ok := t.columns.Get(core.Ident(columnName))
	if !ok {
		return nil, false
	}
	return v.(*Column), true
}

func (t *Table) ContainsColumn(columnName string) bool {
	_, ok := t.columns.Get(core.Ident(columnName))
	return ok
}

// Columns lists the column metadata in declaration order.
func (t *Table) Columns() []*Column {
	values := t.columns.Values()
	result := make([]*Column, 0, len(values))
	for _, v := range values {
		result = append(result, v.(*Column))
	}
	return result
}

func (t *Table) ColumnNames() []string {
	cols := t.Columns()
	names := make([]string, 0, len(cols))
	for _, c := range cols {
		names = append(names, c.Name)
	}
	return names
}

// VisibleColumns lists visible column names, order equals declaration order.
func (t *Table) VisibleColumns() []string {
	return t.visibleColumns
}

// VisibleColumnPosition returns the zero based position of a column among
// the visible columns.
func (t *Table) VisibleColumnPosition(columnName string) (int, bool) {
	pos, ok := t.visiblePositions[core.Ident(columnName)]
	return pos, ok
}

func (t *Table) PrimaryKeyColumns() []string {
	return t.primaryKeys
}

// PutColumn inserts or replaces a column. A replaced column keeps its
// declaration position, a new column is appended. The visible column
// positions stay dense afterwards.
func (t *Table) PutColumn(column *Column) {
	t.columns.Put(core.Ident(column.Name), column)
	t.refreshDerived()
}

// RemoveColumn removes a column by name, unknown names are ignored.
func (t *Table) RemoveColumn(columnName string) {
	t.columns.Remove(core.Ident(columnName))
	t.refreshDerived()
}

func (t *Table) refreshDerived() {
	t.visibleColumns = t.visibleColumns[:0]
	t.primaryKeys = t.primaryKeys[:0]
	t.visiblePositions = make(map[core.Identifier]int, t.columns.Size())
	index := 0
	it := t.columns.Iterator()
	for it.Next() {
		c := it.Value().(*Column)
		if c.PrimaryKey {
			t.primaryKeys = append(t.primaryKeys, c.Name)
		}
		if c.Visible {
			t.visibleColumns = append(t.visibleColumns, c.Name)
			t.visiblePositions[it.Key().(core.Identifier)] = index
			index++
		}
	}
}

func (t *Table) Index(indexName string) (*Index, bool) {
	i, ok := t.indexes[core.Ident(indexName)]
	return i, ok
}

func (t *Table) ContainsIndex(indexName string) bool {
	_, ok := t.indexes[core.Ident(indexName)]
	return ok
}

func (t *Table) PutIndex(index *Index) {
	key := core.Ident(index.Name)
	if _, ok := t.indexes[key]; !ok {
		t.indexNames = append(t.indexNames, index.Name)
	}
	t.indexes[key] = index
}

func (t *Table) RemoveIndex(indexName string) {
	key := core.Ident(indexName)
	if _, ok := t.indexes[key]; !ok {
		return
	}
	delete(t.indexes, key)
	for i, n := range t.indexNames {
		if core.Ident(n) == key {
			t.indexNames = append(t.indexNames[:i], t.indexNames[i+1:]...)
			break
		}
	}
}

func (t *Table) IndexNames() []string {
	return t.indexNames
}

func (t *Table) Constraint(constraintName string) (*Constraint, bool) {
	c, ok := t.constraints[core.Ident(constraintName)]
	return c, ok
}

func (t *Table) PutConstraint(constraint *Constraint) {
	t.constraints[core.Ident(constraint.Name)] = constraint
}

func (t *Table) RemoveConstraint(constraintName string) {
	delete(t.constraints, core.Ident(constraintName))
}
