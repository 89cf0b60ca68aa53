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

// StatementCategory is the closed classification of a parsed statement,
// routing dispatches on it before anything else.
type StatementCategory int

const (
	// CategoryDML covers data queries and manipulation, it is the default
	// category for statements no other category claims.
	CategoryDML StatementCategory = iota
	// CategoryTCL covers transaction control, BEGIN, COMMIT, ROLLBACK.
	CategoryTCL
	// CategoryDDL covers data definition.
	CategoryDDL
	// CategoryDCL covers data control, GRANT, REVOKE, user management.
	CategoryDCL
	// CategoryDAL covers administrative and diagnostic statements, SHOW,
	// USE, SET, FLUSH and friends.
	CategoryDAL
)

var categoryNames = []string{"DML", "TCL", "DDL", "DCL", "DAL"}

func (c StatementCategory) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return ""
	}
	return categoryNames[c]
}

// StatementContext is a read-only facade over one parsed statement. Concrete
// contexts additionally implement zero or more of the capability interfaces
// below, callers discover capabilities with type assertions.
type StatementContext interface {
	Category() StatementCategory
}

// TableAware is implemented by contexts that reference tables.
type TableAware interface {
	TableNames() []string
}

// IndexAware is implemented by contexts that reference indexes, DDL such as
// DROP INDEX may carry no table name at all.
type IndexAware interface {
	IndexNames() []string
}

// CursorAware is implemented by cursor handling DDL contexts. Cursor state
// is node local, the routing layer pins such statements to a single node
// unless the statement closes all cursors.
type CursorAware interface {
	StatementContext
	IsCloseAll() bool
}

// TableRename is one rename target of a DDL statement.
type TableRename struct {
	From string
	To   string
}

// RenameAware is implemented by contexts whose statement renames tables or
// views.
type RenameAware interface {
	Renames() []TableRename
}

type readAware interface {
	IsReadOnly() bool
}

// TableNames derives the referenced table names of a context, nil when the
// context exposes none.
func TableNames(sc StatementContext) []string {
	if t, ok := sc.(TableAware); ok {
		return t.TableNames()
	}
	return nil
}

// IndexNames derives the referenced index names of a context.
func IndexNames(sc StatementContext) []string {
	if i, ok := sc.(IndexAware); ok {
		return i.IndexNames()
	}
	return nil
}

// IsReadOnly reports whether a statement is a pure read.
func IsReadOnly(sc StatementContext) bool {
	if r, ok := sc.(readAware); ok {
		return r.IsReadOnly()
	}
	return false
}
