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

package config

import (
	"testing"

	"github.com/endink/go-sharding/rule"
	"github.com/endink/go-sharding/testkit"
	"github.com/stretchr/testify/assert"
)

const testRulesYAML = `
rules:
  dataSources:
    - ds_0
    - ds_1
  broadcast:
    tables:
      - t_dict
      - t_config
  sharding:
    tables:
      t_order:
        actualDataNodes: ds_${0..1}.t_order_${0..1}
      t_order_item:
        actualDataNodes: ds_${0..1}.t_order_item_${0..1}
    bindingTables:
      - t_order, t_order_item
`

func TestLoadYAMLString(t *testing.T) {
	cnf, err := LoadYAMLString(testRulesYAML)
	assert.Nil(t, err)

	assert.Equal(t, []string{"ds_0", "ds_1"}, cnf.DataSources)
	assert.Equal(t, []string{"t_dict", "t_config"}, cnf.Broadcast.Tables)
	assert.Len(t, cnf.Sharding.Tables, 2)
	assert.Equal(t, "ds_${0..1}.t_order_${0..1}", cnf.Sharding.Tables["t_order"].ActualDataNodes)
	assert.Equal(t, []string{"t_order, t_order_item"}, cnf.Sharding.BindingTables)
}

func TestBuildBroadcastRule(t *testing.T) {
	cnf, err := LoadYAMLString(testRulesYAML)
	assert.Nil(t, err)

	r, err := cnf.BuildBroadcastRule("broadcast")
	assert.Nil(t, err)
	assert.Equal(t, []string{"ds_0", "ds_1"}, r.DataSourceNames())
	testkit.AssertStrArrayEquals(t, []string{"t_dict", "t_config"}, r.AllTableNames())
}

func TestBuildShardingRule(t *testing.T) {
	cnf, err := LoadYAMLString(testRulesYAML)
	assert.Nil(t, err)

	r, err := cnf.BuildShardingRule("sharding")
	assert.Nil(t, err)
	testkit.AssertStrArrayEquals(t, []string{"t_order", "t_order_item"}, r.AllTableNames())
	assert.Equal(t, []string{"ds_0", "ds_1"}, r.DataSourceNames())

	logic, ok := r.FindLogicTableByActualTable("t_order_1")
	assert.True(t, ok)
	assert.Equal(t, "t_order", logic)

	assert.True(t, r.IsBound("t_order", "t_order_item"))
}

func TestParseDataNodes(t *testing.T) {
	nodes, err := ParseDataNodes("ds_${0..1}.t_order_${0..1}")
	assert.Nil(t, err)
	assert.Equal(t, []rule.DataNode{
		{DataSourceName: "ds_0", TableName: "t_order_0"},
		{DataSourceName: "ds_0", TableName: "t_order_1"},
		{DataSourceName: "ds_1", TableName: "t_order_0"},
		{DataSourceName: "ds_1", TableName: "t_order_1"},
	}, nodes)
}

func TestParseDataNodesEnum(t *testing.T) {
	nodes, err := ParseDataNodes("ds_${[a,b]}.t_user")
	assert.Nil(t, err)
	assert.Equal(t, []rule.DataNode{
		{DataSourceName: "ds_a", TableName: "t_user"},
		{DataSourceName: "ds_b", TableName: "t_user"},
	}, nodes)
}

func TestParseDataNodesInvalid(t *testing.T) {
	_, err := ParseDataNodes("")
	assert.NotNil(t, err)

	_, err = ParseDataNodes("no_dot_here")
	assert.NotNil(t, err)

	_, err = ParseDataNodes("trailing.")
	assert.NotNil(t, err)
}

func TestBuildShardingRuleBadExpression(t *testing.T) {
	cnf := &RulesConfig{
		Sharding: ShardingConfig{
			Tables: map[string]ShardingTableConfig{
				"t_broken": {ActualDataNodes: "ds_${0..x}.t_broken"},
			},
		},
	}
	_, err := cnf.BuildShardingRule("sharding")
	assert.NotNil(t, err)
}
