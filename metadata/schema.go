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
	"sort"

	"github.com/endink/go-sharding/core"
)

// Schema holds the table metadata of one logic database.
type Schema struct {
	name   string
	tables map[core.Identifier]*Table
}

func NewSchema(name string, tables ...*Table) *Schema {
	s := &Schema{
		name:   name,
		tables: make(map[core.Identifier]*Table, len(tables)),
	}
	for _, t := range tables {
		s.PutTable(t)
	}
	return s
}

func (s *Schema) Name() string {
	return s.name
}

func (s *Schema) Table(tableName string) (*Table, bool) {
	t, ok := s.tables[core.Ident(tableName)]
	return t, ok
}

func (s *Schema) ContainsTable(tableName string) bool {
	_, ok := s.tables[core.Ident(tableName)]
	return ok
}

func (s *Schema) PutTable(table *Table) {
	s.tables[core.Ident(table.Name())] = table
}

func (s *Schema) RemoveTable(tableName string) {
	delete(s.tables, core.Ident(tableName))
}

func (s *Schema) AllTableNames() []string {
	names := make([]string, 0, len(s.tables))
	for _, t := range s.tables {
		names = append(names, t.Name())
	}
	sort.Strings(names)
	return names
}

// TablesByIndex resolves the tables that own an index of the given name.
// DDL statements such as DROP INDEX may reference a table only through the
// index, routing falls back to this lookup.
func (s *Schema) TablesByIndex(indexName string) []string {
	var result []string
	for _, name := range s.AllTableNames() {
		if s.tables[core.Ident(name)].ContainsIndex(indexName) {
			result = append(result, name)
		}
	}
	return result
}
