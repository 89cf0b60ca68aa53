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
	"testing"

	"github.com/endink/go-sharding/testkit"
	"github.com/stretchr/testify/assert"
)

func orderTable() *ShardingTable {
	return NewShardingTable("t_order", []DataNode{
		{DataSourceName: "ds_0", TableName: "t_order_0"},
		{DataSourceName: "ds_1", TableName: "t_order_1"},
	})
}

func orderItemTable() *ShardingTable {
	return NewShardingTable("t_order_item", []DataNode{
		{DataSourceName: "ds_0", TableName: "t_order_item_0"},
		{DataSourceName: "ds_1", TableName: "t_order_item_1"},
	})
}

func testShardingRule(t *testing.T) *ShardingRule {
	r, err := NewShardingRule("sharding",
		[]*ShardingTable{orderTable(), orderItemTable()},
		[][]string{{"t_order", "t_order_item"}})
	assert.Nil(t, err)
	return r
}

func TestShardingMembership(t *testing.T) {
	r := testShardingRule(t)

	testkit.AssertStrArrayEquals(t, []string{"t_order", "t_order_item"}, r.AllTableNames())
	assert.True(t, r.ContainsTable("T_Order"))
	assert.False(t, r.ContainsTable("t_order_0"))
	assert.True(t, r.ContainsAllTables([]string{"t_order", "t_order_item"}))
	assert.False(t, r.ContainsAllTables([]string{"t_order", "t_user"}))
}

func TestFindLogicTableByActualTable(t *testing.T) {
	r := testShardingRule(t)

	logic, ok := r.FindLogicTableByActualTable("t_order_1")
	assert.True(t, ok)
	assert.Equal(t, "t_order", logic)

	logic, ok = r.FindLogicTableByActualTable("T_ORDER_0")
	assert.True(t, ok)
	assert.Equal(t, "t_order", logic)

	_, ok = r.FindLogicTableByActualTable("t_order")
	assert.False(t, ok)
}

func TestShardingDataNodes(t *testing.T) {
	r := testShardingRule(t)

	assert.Equal(t, []string{"ds_0", "ds_1"}, r.DataSourceNames())
	assert.Equal(t, []DataNode{
		{DataSourceName: "ds_0", TableName: "t_order_0"},
		{DataSourceName: "ds_1", TableName: "t_order_1"},
	}, r.DataNodesOf("t_order"))

	table, ok := r.Table("t_order")
	assert.True(t, ok)
	testkit.AssertStrArrayEquals(t, []string{"t_order_0", "t_order_1"}, table.ActualTableNames())
}

func TestShardingBinding(t *testing.T) {
	r := testShardingRule(t)

	assert.True(t, r.IsBound("t_order", "t_order_item"))
	assert.True(t, r.IsBound("t_order", "T_ORDER"))
	assert.False(t, r.IsBound("t_order", "t_user"))
}

func TestShardingRuleConflictingActualTable(t *testing.T) {
	conflicting := NewShardingTable("t_other", []DataNode{
		{DataSourceName: "ds_0", TableName: "t_order_0"},
	})
	_, err := NewShardingRule("sharding", []*ShardingTable{orderTable(), conflicting}, nil)
	assert.NotNil(t, err)
}

func TestShardingRuleUnknownBindingTable(t *testing.T) {
	_, err := NewShardingRule("sharding", []*ShardingTable{orderTable()}, [][]string{{"t_order", "t_missing"}})
	assert.NotNil(t, err)
}

func TestShardingRuleDuplicateLogicTable(t *testing.T) {
	_, err := NewShardingRule("sharding", []*ShardingTable{orderTable(), orderTable()}, nil)
	assert.NotNil(t, err)
}
