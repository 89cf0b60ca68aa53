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

package validator

import (
	"github.com/endink/go-sharding/explain"
	"github.com/endink/go-sharding/metadata"
	"github.com/endink/go-sharding/routing"
	"github.com/endink/go-sharding/rule"
	"github.com/pingcap/errors"
)

// AlterViewValidator guards ALTER VIEW statements.
//
// The view body must not depend on sharded tables the view is not bound
// with, otherwise each shard would hold a view over a different partition
// slice. A rename must not move the view across sharding configurations,
// either both names share one binding group or neither is sharded.
type AlterViewValidator struct{}

var _ Validator = &AlterViewValidator{}

func (v *AlterViewValidator) PreValidate(r rule.Rule, sc explain.StatementContext, _ *metadata.Schema) error {
	av, ok := sc.(*explain.AlterViewContext)
	if !ok {
		return errors.Errorf("alter view validator got a %T statement context", sc)
	}
	if err := v.validateEngagedTables(r, av); err != nil {
		return err
	}
	if av.RenameTo != "" {
		return v.validateRename(r, av.View, av.RenameTo)
	}
	return nil
}

func (v *AlterViewValidator) validateEngagedTables(r rule.Rule, av *explain.AlterViewContext) error {
	var engaged []string
	for _, table := range av.SelectTables {
		if r.ContainsTable(table) && !r.IsBound(table, av.View) {
			engaged = append(engaged, table)
		}
	}
	if len(engaged) > 0 {
		return &EngagedViewError{ViewName: av.View, Tables: engaged}
	}
	return nil
}

func (v *AlterViewValidator) validateRename(r rule.Rule, originView, targetView string) error {
	if !r.ContainsTable(originView) && !r.ContainsTable(targetView) {
		return nil
	}
	if r.IsBound(originView, targetView) {
		return nil
	}
	return &RenamedViewError{OriginView: originView, TargetView: targetView}
}

// PostValidate is a no-op, routing already enforced everything ALTER VIEW
// needs after dispatch.
func (v *AlterViewValidator) PostValidate(rule.Rule, explain.StatementContext, *routing.RouteContext) error {
	return nil
}
