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
	"testing"

	"github.com/endink/go-sharding/explain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func TestRenameTableUnsharded(t *testing.T) {
	r := viewRule(t)
	v := &RenameTableValidator{}

	err := v.PreValidate(r, &explain.RenameTableContext{
		Targets: []explain.TableRename{{From: "t_user", To: "t_user_new"}},
	}, nil)
	assert.Nil(t, err)
}

func TestRenameTableWithinBindingGroup(t *testing.T) {
	r := viewRule(t)
	v := &RenameTableValidator{}

	err := v.PreValidate(r, &explain.RenameTableContext{
		Targets: []explain.TableRename{{From: "t_order", To: "v_order"}},
	}, nil)
	assert.Nil(t, err)
}

func TestRenameTableAcrossConfiguration(t *testing.T) {
	r := viewRule(t)
	v := &RenameTableValidator{}

	err := v.PreValidate(r, &explain.RenameTableContext{
		Targets: []explain.TableRename{{From: "t_order", To: "t_order_new"}},
	}, nil)
	assert.NotNil(t, err)

	renamed, ok := err.(*RenamedTableError)
	assert.True(t, ok)
	assert.Equal(t, "t_order", renamed.OriginTable)
	assert.Equal(t, "t_order_new", renamed.TargetTable)
}

func TestRenameTableCollectsAllViolations(t *testing.T) {
	r := viewRule(t)
	v := &RenameTableValidator{}

	err := v.PreValidate(r, &explain.RenameTableContext{
		Targets: []explain.TableRename{
			{From: "t_order", To: "t_order_new"},
			{From: "t_user", To: "t_user_new"},
			{From: "t_order_item", To: "t_order"},
		},
	}, nil)
	assert.NotNil(t, err)
	assert.Len(t, multierr.Errors(err), 2)
}
