/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sqltype

// FieldType is the declared type tag of one result-set column. The numeric
// values mirror the standard SQL type codes, so fixtures can be declared with
// the same constants a real driver would report. The tag is descriptive only:
// it is never validated against the cells actually stored in a column.
type FieldType int16

const (
	FieldTypeBit       FieldType = -7
	FieldTypeTinyInt   FieldType = -6
	FieldTypeBigInt    FieldType = -5
	FieldTypeChar      FieldType = 1
	FieldTypeNumeric   FieldType = 2
	FieldTypeDecimal   FieldType = 3
	FieldTypeInteger   FieldType = 4
	FieldTypeSmallInt  FieldType = 5
	FieldTypeFloat     FieldType = 6
	FieldTypeReal      FieldType = 7
	FieldTypeDouble    FieldType = 8
	FieldTypeVarChar   FieldType = 12
	FieldTypeBoolean   FieldType = 16
	FieldTypeDate      FieldType = 91
	FieldTypeTime      FieldType = 92
	FieldTypeTimestamp FieldType = 93
)

// TypeName returns the SQL name of the type tag.
func (t FieldType) TypeName() string {
	switch t {
	case FieldTypeBit:
		return "BIT"
	case FieldTypeTinyInt:
		return "TINYINT"
	case FieldTypeBigInt:
		return "BIGINT"
	case FieldTypeChar:
		return "CHAR"
	case FieldTypeNumeric:
		return "NUMERIC"
	case FieldTypeDecimal:
		return "DECIMAL"
	case FieldTypeInteger:
		return "INTEGER"
	case FieldTypeSmallInt:
		return "SMALLINT"
	case FieldTypeFloat:
		return "FLOAT"
	case FieldTypeReal:
		return "REAL"
	case FieldTypeDouble:
		return "DOUBLE"
	case FieldTypeVarChar:
		return "VARCHAR"
	case FieldTypeBoolean:
		return "BOOLEAN"
	case FieldTypeDate:
		return "DATE"
	case FieldTypeTime:
		return "TIME"
	case FieldTypeTimestamp:
		return "TIMESTAMP"
	default:
		return "UNKNOWN"
	}
}

func (t FieldType) String() string {
	return t.TypeName()
}

// IsNumeric reports whether the tag names a numeric column type.
func (t FieldType) IsNumeric() bool {
	switch t {
	case FieldTypeBit, FieldTypeTinyInt, FieldTypeBigInt, FieldTypeNumeric,
		FieldTypeDecimal, FieldTypeInteger, FieldTypeSmallInt, FieldTypeFloat,
		FieldTypeReal, FieldTypeDouble:
		return true
	}
	return false
}

// IsTemporal reports whether the tag names a date/time column type.
func (t FieldType) IsTemporal() bool {
	switch t {
	case FieldTypeDate, FieldTypeTime, FieldTypeTimestamp:
		return true
	}
	return false
}
