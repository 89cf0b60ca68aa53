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

package explain

// SelectContext is a pure read DML statement.
type SelectContext struct {
	Tables []string
}

func (c *SelectContext) Category() StatementCategory { return CategoryDML }
func (c *SelectContext) TableNames() []string        { return c.Tables }
func (c *SelectContext) IsReadOnly() bool            { return true }

// ModifyContext is a writing DML statement, INSERT, UPDATE, DELETE, LOAD.
type ModifyContext struct {
	Tables []string
}

func (c *ModifyContext) Category() StatementCategory { return CategoryDML }
func (c *ModifyContext) TableNames() []string        { return c.Tables }
func (c *ModifyContext) IsReadOnly() bool            { return false }

// TCLContext is a transaction control statement.
type TCLContext struct{}

func (c *TCLContext) Category() StatementCategory { return CategoryTCL }

// DDLContext is an ordinary data definition statement.
type DDLContext struct {
	Tables  []string
	Indexes []string
}

func (c *DDLContext) Category() StatementCategory { return CategoryDDL }
func (c *DDLContext) TableNames() []string        { return c.Tables }
func (c *DDLContext) IndexNames() []string        { return c.Indexes }

// CursorContext is a cursor handling statement, DECLARE, OPEN, FETCH and
// CLOSE. The MySQL dialect parser never produces one, the stored procedure
// layer of the proxy constructs these directly.
type CursorContext struct {
	Tables   []string
	CloseAll bool
}

func (c *CursorContext) Category() StatementCategory { return CategoryDDL }
func (c *CursorContext) TableNames() []string        { return c.Tables }
func (c *CursorContext) IsCloseAll() bool            { return c.CloseAll }

// AlterViewContext is an ALTER VIEW statement. SelectTables holds the tables
// referenced by the new view body when the statement carries one, RenameTo
// is set when the dialect supports ALTER VIEW ... RENAME TO.
type AlterViewContext struct {
	View         string
	SelectTables []string
	RenameTo     string
}

func (c *AlterViewContext) Category() StatementCategory { return CategoryDDL }
func (c *AlterViewContext) TableNames() []string        { return []string{c.View} }

func (c *AlterViewContext) Renames() []TableRename {
	if c.RenameTo == "" {
		return nil
	}
	return []TableRename{{From: c.View, To: c.RenameTo}}
}

// RenameTableContext is a RENAME TABLE statement, MySQL renames views with
// it as well.
type RenameTableContext struct {
	Targets []TableRename
}

func (c *RenameTableContext) Category() StatementCategory { return CategoryDDL }

func (c *RenameTableContext) TableNames() []string {
	names := make([]string, 0, len(c.Targets)*2)
	for _, t := range c.Targets {
		names = append(names, t.From, t.To)
	}
	return names
}

func (c *RenameTableContext) Renames() []TableRename { return c.Targets }

// DALContext is an administrative or diagnostic statement.
type DALContext struct {
	Tables []string
}

func (c *DALContext) Category() StatementCategory { return CategoryDAL }
func (c *DALContext) TableNames() []string        { return c.Tables }

// UseContext is a session context switch, it has no table scope and no rule
// ever claims it.
type UseContext struct {
	Database string
}

func (c *UseContext) Category() StatementCategory { return CategoryDAL }

// DCLContext is a data control statement. A grant on a whole database shows
// up as the wildcard table name "*".
type DCLContext struct {
	Tables []string
}

func (c *DCLContext) Category() StatementCategory { return CategoryDCL }
func (c *DCLContext) TableNames() []string        { return c.Tables }

// WildcardTable is the table name standing for "all tables" in DCL
// statements.
const WildcardTable = "*"

// IsSingleConcreteTable reports whether a context references exactly one
// non-wildcard table.
func IsSingleConcreteTable(sc StatementContext) bool {
	tables := TableNames(sc)
	return len(tables) == 1 && tables[0] != WildcardTable
}
