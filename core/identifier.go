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

// Identifier is a SQL identifier normalized for case insensitive
// comparison, MySQL treats table and column names that way by default. Use
// it as map key wherever names from user SQL meet configured names.
type Identifier string

// Ident normalizes a raw name into an Identifier.
func Ident(name string) Identifier {
	return Identifier(TrimAndLower(name))
}

func (i Identifier) String() string {
	return string(i)
}

func (i Identifier) IsBlank() bool {
	return i == ""
}

// EqualsIgnoreCase compares the identifier against a raw name.
func (i Identifier) EqualsIgnoreCase(name string) bool {
	return i == Ident(name)
}
