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

import (
	"github.com/pingcap/parser/ast"
)

// Bind classifies a parsed statement into its statement context. The
// category decides which routing branch handles the statement, the concrete
// context carries the capabilities the branch needs.
func Bind(stmt ast.StmtNode) StatementContext {
	switch node := stmt.(type) {
	case *ast.SelectStmt, *ast.UnionStmt:
		return &SelectContext{Tables: ExtractTableNames(stmt)}
	case *ast.InsertStmt, *ast.UpdateStmt, *ast.DeleteStmt, *ast.LoadDataStmt:
		return &ModifyContext{Tables: ExtractTableNames(stmt)}
	case *ast.BeginStmt, *ast.CommitStmt, *ast.RollbackStmt:
		return &TCLContext{}
	case *ast.CreateTableStmt:
		return bindCreateTable(node)
	case *ast.AlterTableStmt:
		return &DDLContext{Tables: tableNameOf(node.Table)}
	case *ast.DropTableStmt:
		return &DDLContext{Tables: tableNamesOf(node.Tables)}
	case *ast.TruncateTableStmt:
		return &DDLContext{Tables: tableNameOf(node.Table)}
	case *ast.CreateIndexStmt:
		return &DDLContext{Tables: tableNameOf(node.Table), Indexes: []string{node.IndexName}}
	case *ast.DropIndexStmt:
		return &DDLContext{Tables: tableNameOf(node.Table), Indexes: []string{node.IndexName}}
	case *ast.CreateViewStmt:
		return bindCreateView(node)
	case *ast.RenameTableStmt:
		return bindRenameTable(node)
	case *ast.CreateDatabaseStmt, *ast.DropDatabaseStmt:
		return &DDLContext{}
	case *ast.GrantStmt:
		return &DCLContext{Tables: grantLevelTables(node.Level)}
	case *ast.RevokeStmt:
		return &DCLContext{Tables: grantLevelTables(node.Level)}
	case *ast.CreateUserStmt, *ast.DropUserStmt, *ast.AlterUserStmt, *ast.SetPwdStmt:
		return &DCLContext{}
	case *ast.UseStmt:
		return &UseContext{Database: node.DBName}
	case *ast.ShowStmt:
		return &DALContext{Tables: tableNameOf(node.Table)}
	case *ast.ExplainStmt:
		return &DALContext{Tables: ExtractTableNames(node.Stmt)}
	case *ast.AnalyzeTableStmt:
		return &DALContext{Tables: tableNamesOf(node.TableNames)}
	case *ast.SetStmt, *ast.FlushStmt, *ast.AdminStmt, *ast.KillStmt:
		return &DALContext{}
	default:
		// Statements no category claims route like writes, a broadcast
		// table must not silently miss a replica.
		return &ModifyContext{Tables: ExtractTableNames(stmt)}
	}
}

// bindCreateView maps CREATE OR REPLACE VIEW onto the alter view context,
// MySQL spells view redefinition that way.
func bindCreateView(node *ast.CreateViewStmt) StatementContext {
	viewName := node.ViewName.Name.O
	if !node.OrReplace {
		return &DDLContext{Tables: []string{viewName}}
	}
	return &AlterViewContext{
		View:         viewName,
		SelectTables: ExtractTableNames(node.Select),
	}
}

func bindCreateTable(node *ast.CreateTableStmt) StatementContext {
	tables := tableNameOf(node.Table)
	if node.ReferTable != nil {
		tables = append(tables, node.ReferTable.Name.O)
	}
	return &DDLContext{Tables: tables}
}

func bindRenameTable(node *ast.RenameTableStmt) StatementContext {
	targets := make([]TableRename, 0, len(node.TableToTables))
	for _, t := range node.TableToTables {
		targets = append(targets, TableRename{
			From: t.OldTable.Name.O,
			To:   t.NewTable.Name.O,
		})
	}
	return &RenameTableContext{Targets: targets}
}

func grantLevelTables(level *ast.GrantLevel) []string {
	if level == nil {
		return nil
	}
	if level.Level == ast.GrantLevelTable && level.TableName != "" {
		return []string{level.TableName}
	}
	return []string{WildcardTable}
}

func tableNameOf(table *ast.TableName) []string {
	if table == nil {
		return nil
	}
	return []string{table.Name.O}
}

func tableNamesOf(tables []*ast.TableName) []string {
	names := make([]string, 0, len(tables))
	for _, t := range tables {
		names = append(names, t.Name.O)
	}
	return names
}
