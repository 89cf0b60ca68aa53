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

// Package config builds rule snapshots from YAML configuration. A refresh
// simply loads a new snapshot and swaps it in wholesale, rules themselves
// stay immutable.
package config

import (
	"strings"

	"github.com/endink/go-sharding/core"
	"github.com/endink/go-sharding/logging"
	"github.com/endink/go-sharding/rule"
	"github.com/pingcap/errors"
	"go.uber.org/config"
	"go.uber.org/multierr"
)

var logger = logging.GetLogger("config")

// ShardingTableConfig configures one sharded logic table.
type ShardingTableConfig struct {
	// ActualDataNodes is an inline expression of physical locations,
	// "ds_${0..1}.t_order_${0..1}".
	ActualDataNodes string `yaml:"actualDataNodes"`
}

type ShardingConfig struct {
	Tables map[string]ShardingTableConfig `yaml:"tables"`
	// BindingTables groups tables that share one sharding configuration,
	// each entry is a comma separated table list.
	BindingTables []string `yaml:"bindingTables"`
}

type BroadcastConfig struct {
	Tables []string `yaml:"tables"`
}

// RulesConfig is the "rules" section of the configuration file.
type RulesConfig struct {
	DataSources []string        `yaml:"dataSources"`
	Broadcast   BroadcastConfig `yaml:"broadcast"`
	Sharding    ShardingConfig  `yaml:"sharding"`
}

// LoadFile reads a rules configuration from a YAML file.
func LoadFile(path string) (*RulesConfig, error) {
	logger.Infof("loading rule configuration from %s", path)
	yaml, err := config.NewYAML(config.File(path), config.Permissive())
	if err != nil {
		return nil, errors.Annotatef(err, "load rule configuration file '%s'", path)
	}
	return populate(yaml)
}

// LoadYAMLString reads a rules configuration from YAML content, tests and
// embedded defaults use it.
func LoadYAMLString(content string) (*RulesConfig, error) {
	yaml, err := config.NewYAML(config.Source(strings.NewReader(content)), config.Permissive())
	if err != nil {
		return nil, errors.Annotate(err, "parse rule configuration")
	}
	return populate(yaml)
}

func populate(yaml *config.YAML) (*RulesConfig, error) {
	cnf := &RulesConfig{}
	if err := yaml.Get("rules").Populate(cnf); err != nil {
		return nil, errors.Annotate(err, "populate rule configuration")
	}
	return cnf, nil
}

// BuildBroadcastRule builds the broadcast rule snapshot of this
// configuration.
func (c *RulesConfig) BuildBroadcastRule(name string) (*rule.BroadcastRule, error) {
	return rule.NewBroadcastRule(name, c.DataSources, c.Broadcast.Tables)
}

// BuildShardingRule expands every table's data node expression and builds
// the sharding rule snapshot. All configuration faults are reported at once.
func (c *RulesConfig) BuildShardingRule(name string) (*rule.ShardingRule, error) {
	var err error
	tables := make([]*rule.ShardingTable, 0, len(c.Sharding.Tables))
	for tableName, tableCnf := range c.Sharding.Tables {
		nodes, nodeErr := ParseDataNodes(tableCnf.ActualDataNodes)
		if nodeErr != nil {
			err = multierr.Append(err, errors.Annotatef(nodeErr, "table '%s'", tableName))
			continue
		}
		tables = append(tables, rule.NewShardingTable(tableName, nodes))
	}

	groups := make([][]string, 0, len(c.Sharding.BindingTables))
	for _, entry := range c.Sharding.BindingTables {
		var group []string
		for _, t := range strings.Split(entry, ",") {
			if trimmed := strings.TrimSpace(t); trimmed != "" {
				group = append(group, trimmed)
			}
		}
		if len(group) > 0 {
			groups = append(groups, group)
		}
	}

	if err != nil {
		return nil, err
	}
	return rule.NewShardingRule(name, tables, groups)
}

// ParseDataNodes expands an inline data node expression into concrete
// physical locations, each expanded item must look like
// "dataSource.table".
func ParseDataNodes(expression string) ([]rule.DataNode, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, errors.New("actualDataNodes is empty")
	}
	expanded, err := core.ExpandInlineExpression(expression)
	if err != nil {
		return nil, err
	}
	nodes := make([]rule.DataNode, 0, len(expanded))
	for _, item := range expanded {
		idx := strings.LastIndex(item, ".")
		if idx <= 0 || idx == len(item)-1 {
			return nil, errors.Errorf("invalid data node '%s', expected 'dataSource.table'", item)
		}
		nodes = append(nodes, rule.DataNode{
			DataSourceName: item[:idx],
			TableName:      item[idx+1:],
		})
	}
	return nodes, nil
}
