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
	"testing"

	"github.com/endink/go-sharding/rule"
	"github.com/stretchr/testify/assert"
)

func TestDatabaseBroadcastRoute(t *testing.T) {
	r := dictRule(t)
	ctx := NewRouteContext()

	err := DatabaseBroadcastEngine().Route(r, ctx)
	assert.Nil(t, err)
	assert.True(t, ctx.IsDatabaseBroadcast())
	assert.Equal(t, []RouteTarget{
		{DataSource: "ds_0"},
		{DataSource: "ds_1"},
	}, ctx.Targets())
}

func TestTableBroadcastRoute(t *testing.T) {
	r := dictRule(t)
	ctx := NewRouteContext()

	err := TableBroadcastEngine([]string{"t_dict"}).Route(r, ctx)
	assert.Nil(t, err)
	assert.False(t, ctx.IsDatabaseBroadcast())
	assert.Equal(t, []RouteTarget{
		{DataSource: "ds_0", Table: "t_dict"},
		{DataSource: "ds_1", Table: "t_dict"},
	}, ctx.Targets())
}

func TestTableBroadcastRouteSharding(t *testing.T) {
	order := rule.NewShardingTable("t_order", []rule.DataNode{
		{DataSourceName: "ds_0", TableName: "t_order_0"},
		{DataSourceName: "ds_1", TableName: "t_order_1"},
	})
	r, err := rule.NewShardingRule("sharding", []*rule.ShardingTable{order}, nil)
	assert.Nil(t, err)

	ctx := NewRouteContext()
	err = TableBroadcastEngine([]string{"t_order"}).Route(r, ctx)
	assert.Nil(t, err)
	assert.Equal(t, []RouteTarget{
		{DataSource: "ds_0", Table: "t_order_0"},
		{DataSource: "ds_1", Table: "t_order_1"},
	}, ctx.Targets())
}

func TestIgnoreRoute(t *testing.T) {
	r := dictRule(t)
	ctx := NewRouteContext()

	err := IgnoreEngine().Route(r, ctx)
	assert.Nil(t, err)
	assert.True(t, ctx.IsEmpty())
}

func TestUnicastRoute(t *testing.T) {
	r := dictRule(t)
	conn := NewConnectionContext()

	ctx := NewRouteContext()
	err := UnicastEngine([]string{"t_dict"}, conn).Route(r, ctx)
	assert.Nil(t, err)
	assert.Equal(t, []RouteTarget{{DataSource: "ds_0", Table: "t_dict"}}, ctx.Targets())

	pinned, ok := conn.PinnedDataSource()
	assert.True(t, ok)
	assert.Equal(t, "ds_0", pinned)
}

func TestUnicastRouteHonorsPin(t *testing.T) {
	r := dictRule(t)
	conn := NewConnectionContext()
	conn.Pin("ds_1")

	ctx := NewRouteContext()
	err := UnicastEngine([]string{"t_dict"}, conn).Route(r, ctx)
	assert.Nil(t, err)
	assert.Equal(t, []RouteTarget{{DataSource: "ds_1", Table: "t_dict"}}, ctx.Targets())
}

func TestUnicastRouteRepinsStalePin(t *testing.T) {
	r := dictRule(t)
	conn := NewConnectionContext()
	conn.Pin("ds_gone")

	ctx := NewRouteContext()
	err := UnicastEngine([]string{"t_dict"}, conn).Route(r, ctx)
	assert.Nil(t, err)
	assert.Equal(t, []RouteTarget{{DataSource: "ds_0", Table: "t_dict"}}, ctx.Targets())

	pinned, _ := conn.PinnedDataSource()
	assert.Equal(t, "ds_0", pinned)
}

func TestUnicastRouteStablePerSession(t *testing.T) {
	r := dictRule(t)
	conn := NewConnectionContext()

	for i := 0; i < 3; i++ {
		ctx := NewRouteContext()
		err := UnicastEngine([]string{"t_dict"}, conn).Route(r, ctx)
		assert.Nil(t, err)
		assert.Equal(t, []RouteTarget{{DataSource: "ds_0", Table: "t_dict"}}, ctx.Targets())
	}
}

func TestUnicastRouteWithoutTables(t *testing.T) {
	r := dictRule(t)
	ctx := NewRouteContext()

	err := UnicastEngine(nil, nil).Route(r, ctx)
	assert.Nil(t, err)
	assert.Equal(t, []RouteTarget{{DataSource: "ds_0"}}, ctx.Targets())
}

func TestRouteContextDedup(t *testing.T) {
	ctx := NewRouteContext()
	ctx.AddTable("ds_0", "t_dict")
	ctx.AddTable("ds_0", "t_dict")
	ctx.AddDataSource("ds_0")

	assert.Equal(t, []RouteTarget{
		{DataSource: "ds_0", Table: "t_dict"},
		{DataSource: "ds_0"},
	}, ctx.Targets())
	assert.Equal(t, []string{"ds_0"}, ctx.DataSourceNames())
}
