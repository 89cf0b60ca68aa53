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

// Package validator enforces cross shard consistency invariants around DDL
// execution. PreValidate runs before any physical statement is dispatched, a
// failure there must stop execution entirely, partial DDL across shards is
// never acceptable. PostValidate runs after routing with the resolved route
// context for statement kinds that need post-route reconciliation.
package validator

import (
	"github.com/endink/go-sharding/explain"
	"github.com/endink/go-sharding/metadata"
	"github.com/endink/go-sharding/routing"
	"github.com/endink/go-sharding/rule"
)

type Validator interface {
	PreValidate(r rule.Rule, sc explain.StatementContext, schema *metadata.Schema) error
	PostValidate(r rule.Rule, sc explain.StatementContext, routeContext *routing.RouteContext) error
}

// New returns the validator responsible for a statement context, false when
// the statement kind needs no consistency validation.
func New(sc explain.StatementContext) (Validator, bool) {
	switch sc.(type) {
	case *explain.AlterViewContext:
		return &AlterViewValidator{}, true
	case *explain.RenameTableContext:
		return &RenameTableValidator{}, true
	default:
		return nil, false
	}
}
