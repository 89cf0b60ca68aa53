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

// Column is the schema description of one table column.
type Column struct {
	Name          string
	DataType      string
	PrimaryKey    bool
	Generated     bool
	CaseSensitive bool
	Visible       bool
	Unsigned      bool
	Nullable      bool
}

// Index is the schema description of one table index.
type Index struct {
	Name    string
	Columns []string
	Unique  bool
}

// Constraint describes a foreign key style constraint and the table it
// references.
type Constraint struct {
	Name                string
	ReferencedTableName string
}
