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

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandRange(t *testing.T) {
	values, err := ExpandInlineExpression("t_order_${0..2}")
	assert.Nil(t, err)
	assert.Equal(t, []string{"t_order_0", "t_order_1", "t_order_2"}, values)
}

func TestExpandEnumeration(t *testing.T) {
	values, err := ExpandInlineExpression("t_${[a, b]}")
	assert.Nil(t, err)
	assert.Equal(t, []string{"t_a", "t_b"}, values)
}

func TestExpandCartesian(t *testing.T) {
	values, err := ExpandInlineExpression("ds_${0..1}.t_order_${0..1}")
	assert.Nil(t, err)
	assert.Equal(t, []string{
		"ds_0.t_order_0",
		"ds_0.t_order_1",
		"ds_1.t_order_0",
		"ds_1.t_order_1",
	}, values)
}

func TestExpandTopLevelComma(t *testing.T) {
	values, err := ExpandInlineExpression("ds_0.t_a, ds_1.t_${[b,c]}")
	assert.Nil(t, err)
	assert.Equal(t, []string{"ds_0.t_a", "ds_1.t_b", "ds_1.t_c"}, values)
}

func TestExpandWithoutPlaceholder(t *testing.T) {
	values, err := ExpandInlineExpression("t_order")
	assert.Nil(t, err)
	assert.Equal(t, []string{"t_order"}, values)
}

func TestExpandSyntaxErrors(t *testing.T) {
	_, err := ExpandInlineExpression("t_${0..")
	assert.NotNil(t, err)

	_, err = ExpandInlineExpression("t_${2..0}")
	assert.NotNil(t, err)

	_, err = ExpandInlineExpression("t_${abc}")
	assert.NotNil(t, err)

	_, err = ExpandInlineExpression("t_${[]}")
	assert.NotNil(t, err)
}

func TestIdentifier(t *testing.T) {
	assert.Equal(t, Ident("T_Order"), Ident(" t_order "))
	assert.True(t, Ident("  ").IsBlank())
	assert.True(t, Ident("T_ORDER").EqualsIgnoreCase("t_order"))
}

func TestDistinctStrings(t *testing.T) {
	assert.Equal(t, []string{"T_Order", "t_user"}, DistinctStrings([]string{"T_Order", "t_order", "t_user"}))
}
