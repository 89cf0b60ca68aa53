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
	"sync"

	"github.com/endink/go-sharding/explain"
)

// ConnectionContext is session scoped mutable state. It carries the data
// source a previous unicast statement of the same session was pinned to, so
// consecutive unicast statements observe their own writes and cursor state.
// A session runs at most one statement at a time, the lock only guards
// against management threads peeking at the pin.
type ConnectionContext struct {
	mu               sync.Mutex
	pinnedDataSource string
}

func NewConnectionContext() *ConnectionContext {
	return &ConnectionContext{}
}

// PinnedDataSource returns the data source pinned for this session, if any.
func (c *ConnectionContext) PinnedDataSource() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pinnedDataSource, c.pinnedDataSource != ""
}

// Pin remembers the unicast data source for subsequent statements of the
// session.
func (c *ConnectionContext) Pin(dataSourceName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pinnedDataSource = dataSourceName
}

// QueryContext bundles everything routing needs to know about one incoming
// statement.
type QueryContext struct {
	Statement  explain.StatementContext
	Parameters []interface{}
	Connection *ConnectionContext
}

func NewQueryContext(statement explain.StatementContext, connection *ConnectionContext, parameters ...interface{}) *QueryContext {
	if connection == nil {
		connection = NewConnectionContext()
	}
	return &QueryContext{
		Statement:  statement,
		Parameters: parameters,
		Connection: connection,
	}
}
