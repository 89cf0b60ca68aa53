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
	"testing"

	"github.com/stretchr/testify/assert"
)

func orderTableMeta() *Table {
	return NewTable("t_order", TypeTable,
		[]*Column{
			{Name: "order_id", DataType: "bigint", PrimaryKey: true, Visible: true},
			{Name: "user_id", DataType: "bigint", Visible: true},
			{Name: "hidden_flag", DataType: "tinyint", Visible: false},
			{Name: "status", DataType: "varchar", Visible: true},
		},
		[]*Index{{Name: "idx_user_id", Columns: []string{"user_id"}}},
		[]*Constraint{{Name: "fk_user", ReferencedTableName: "t_user"}})
}

func TestTableColumns(t *testing.T) {
	table := orderTableMeta()

	assert.Equal(t, []string{"order_id", "user_id", "hidden_flag", "status"}, table.ColumnNames())
	assert.Equal(t, []string{"order_id", "user_id", "status"}, table.VisibleColumns())
	assert.Equal(t, []string{"order_id"}, table.PrimaryKeyColumns())

	c, ok := table.Column("USER_ID")
	assert.True(t, ok)
	assert.Equal(t, "user_id", c.Name)
	assert.False(t, table.ContainsColumn("missing"))
}

func TestVisibleColumnPositionsAreDense(t *testing.T) {
	table := orderTableMeta()

	for i, name := range table.VisibleColumns() {
		pos, ok := table.VisibleColumnPosition(name)
		assert.True(t, ok)
		assert.Equal(t, i, pos)
	}
	// invisible column has no position
	_, ok := table.VisibleColumnPosition("hidden_flag")
	assert.False(t, ok)
}

func TestPutColumnKeepsOrder(t *testing.T) {
	table := orderTableMeta()

	// replacing keeps the declaration position
	table.PutColumn(&Column{Name: "USER_ID", DataType: "int", Visible: true})
	assert.Equal(t, []string{"order_id", "user_id", "hidden_flag", "status"}, table.ColumnNames())
	c, _ := table.Column("user_id")
	assert.Equal(t, "int", c.DataType)

	// a new column is appended and positions stay dense
	table.PutColumn(&Column{Name: "created_at", DataType: "datetime", Visible: true})
	assert.Equal(t, []string{"order_id", "user_id", "status", "created_at"}, table.VisibleColumns())
	pos, ok := table.VisibleColumnPosition("created_at")
	assert.True(t, ok)
	assert.Equal(t, 3, pos)
}

func TestRemoveColumn(t *testing.T) {
	table := orderTableMeta()
	table.RemoveColumn("user_id")

	assert.Equal(t, []string{"order_id", "hidden_flag", "status"}, table.ColumnNames())
	pos, ok := table.VisibleColumnPosition("status")
	assert.True(t, ok)
	assert.Equal(t, 1, pos)
}

func TestIndexesAndConstraints(t *testing.T) {
	table := orderTableMeta()

	assert.True(t, table.ContainsIndex("IDX_USER_ID"))
	table.PutIndex(&Index{Name: "idx_status", Columns: []string{"status"}})
	assert.Equal(t, []string{"idx_user_id", "idx_status"}, table.IndexNames())

	table.RemoveIndex("idx_user_id")
	assert.False(t, table.ContainsIndex("idx_user_id"))
	assert.Equal(t, []string{"idx_status"}, table.IndexNames())

	_, ok := table.Constraint("fk_user")
	assert.True(t, ok)
	table.RemoveConstraint("fk_user")
	_, ok = table.Constraint("fk_user")
	assert.False(t, ok)
}

func TestTableType(t *testing.T) {
	table := orderTableMeta()
	assert.Equal(t, TypeTable, table.Type())
	assert.False(t, table.IsView())

	view := NewTable("v_order", TypeView, nil, nil, nil)
	assert.True(t, view.IsView())
	assert.Equal(t, "VIEW", view.Type().String())
}
