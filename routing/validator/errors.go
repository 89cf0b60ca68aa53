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
	"fmt"
	"strings"
)

// EngagedViewError reports a view whose body depends on sharded tables that
// are not bound with the view. Executing such a statement would leave the
// view definition inconsistent across shards.
type EngagedViewError struct {
	ViewName string
	Tables   []string
}

func (e *EngagedViewError) Error() string {
	return fmt.Sprintf("view '%s' engages sharding tables [%s] that are not bound with it",
		e.ViewName, strings.Join(e.Tables, ", "))
}

// RenamedViewError reports an ALTER VIEW rename that would move the view
// across sharding configurations.
type RenamedViewError struct {
	OriginView string
	TargetView string
}

func (e *RenamedViewError) Error() string {
	return fmt.Sprintf("renaming view '%s' to '%s' changes its sharding configuration",
		e.OriginView, e.TargetView)
}

// RenamedTableError reports a RENAME TABLE target pair that does not share
// one sharding configuration.
type RenamedTableError struct {
	OriginTable string
	TargetTable string
}

func (e *RenamedTableError) Error() string {
	return fmt.Sprintf("renaming table '%s' to '%s' changes its sharding configuration",
		e.OriginTable, e.TargetTable)
}
