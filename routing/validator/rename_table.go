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
	"go.uber.org/multierr"
)

// RenameTableValidator applies the same binding group invariant as view
// renames to RENAME TABLE, every target pair must keep its sharding
// configuration. All violating pairs are reported at once.
type RenameTableValidator struct{}

var _ Validator = &RenameTableValidator{}

func (v *RenameTableValidator) PreValidate(r rule.Rule, sc explain.StatementContext, _ *metadata.Schema) error {
	rt, ok := sc.(*explain.RenameTableContext)
	if !ok {
		return errors.Errorf("rename table validator got a %T statement context", sc)
	}
	var err error
	for _, target := range rt.Targets {
		if !r.ContainsTable(target.From) && !r.ContainsTable(target.To) {
			continue
		}
		if r.IsBound(target.From, target.To) {
			continue
		}
		err = multierr.Append(err, &RenamedTableError{OriginTable: target.From, TargetTable: target.To})
	}
	return err
}

// PostValidate is a no-op extension point.
func (v *RenameTableValidator) PostValidate(rule.Rule, explain.StatementContext, *routing.RouteContext) error {
	return nil
}
