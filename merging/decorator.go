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

package merging

import (
	"strings"

	"github.com/endink/go-sharding/core"
	"github.com/endink/go-sharding/metadata"
)

func nameIdent(name string) core.Identifier {
	return core.Ident(name)
}

// ShowCreateTableDecorator rewrites the DDL text cell of SHOW CREATE TABLE
// rows, the physical table name inside the statement text is replaced by the
// logic name. Sharded replicas may disagree on physical DDL details, the
// emitted text is simply the first replica's definition under the logic
// name.
func ShowCreateTableDecorator() CellDecorator {
	return func(row Row, logicTableName, actualTableName string, _ *metadata.Table) {
		if len(row) < 2 || logicTableName == actualTableName {
			return
		}
		ddl := row.CellString(1)
		replaced := strings.ReplaceAll(ddl, quoteName(actualTableName), quoteName(logicTableName))
		// fall back to the bare name for drivers that strip quoting
		replaced = strings.ReplaceAll(replaced, actualTableName, logicTableName)
		row.SetCell(1, replaced)
	}
}

func quoteName(name string) string {
	return "`" + name + "`"
}
