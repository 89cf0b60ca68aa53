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
	"github.com/endink/go-sharding/core"
)

// Row is one result row, cell values are what the driver produced.
type Row []interface{}

func (r Row) Cell(column int) interface{} {
	return r[column]
}

func (r Row) SetCell(column int, value interface{}) {
	r[column] = value
}

// CellString renders a cell as string, bytes and strings come back as-is,
// everything else through fmt.
func (r Row) CellString(column int) string {
	_, s := core.ItoString(r[column])
	return s
}

func (r Row) clone() Row {
	c := make(Row, len(r))
	copy(c, r)
	return c
}

// QueryResult is a forward-only cursor over the rows one physical data
// source returned.
type QueryResult interface {
	// Next advances to the next row, false when the cursor is exhausted.
	Next() bool
	// Row returns the current row, only valid after Next reported true.
	Row() Row
	// Err reports the error that terminated iteration, if any.
	Err() error
}

// MemoryQueryResult is a QueryResult over rows already held in memory, the
// merger output and tests use it.
type MemoryQueryResult struct {
	rows   []Row
	cursor int
}

var _ QueryResult = &MemoryQueryResult{}

func NewMemoryQueryResult(rows ...Row) *MemoryQueryResult {
	return &MemoryQueryResult{rows: rows, cursor: -1}
}

func (m *MemoryQueryResult) Next() bool {
	if m.cursor+1 >= len(m.rows) {
		return false
	}
	m.cursor++
	return true
}

func (m *MemoryQueryResult) Row() Row {
	return m.rows[m.cursor]
}

func (m *MemoryQueryResult) Err() error {
	return nil
}
