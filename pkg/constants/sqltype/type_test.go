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

import (
	"testing"
)

import (
	"github.com/stretchr/testify/assert"
)

func TestFieldType_TypeName(t *testing.T) {
	assert.Equal(t, "BIT", FieldTypeBit.TypeName())
	assert.Equal(t, "TINYINT", FieldTypeTinyInt.TypeName())
	assert.Equal(t, "BIGINT", FieldTypeBigInt.TypeName())
	assert.Equal(t, "CHAR", FieldTypeChar.TypeName())
	assert.Equal(t, "NUMERIC", FieldTypeNumeric.TypeName())
	assert.Equal(t, "DECIMAL", FieldTypeDecimal.TypeName())
	assert.Equal(t, "INTEGER", FieldTypeInteger.TypeName())
	assert.Equal(t, "SMALLINT", FieldTypeSmallInt.TypeName())
	assert.Equal(t, "FLOAT", FieldTypeFloat.TypeName())
	assert.Equal(t, "REAL", FieldTypeReal.TypeName())
	assert.Equal(t, "DOUBLE", FieldTypeDouble.TypeName())
	assert.Equal(t, "VARCHAR", FieldTypeVarChar.TypeName())
	assert.Equal(t, "BOOLEAN", FieldTypeBoolean.TypeName())
	assert.Equal(t, "DATE", FieldTypeDate.TypeName())
	assert.Equal(t, "TIME", FieldTypeTime.TypeName())
	assert.Equal(t, "TIMESTAMP", FieldTypeTimestamp.TypeName())
	assert.Equal(t, "UNKNOWN", FieldType(9999).TypeName())
}

func TestFieldType_Codes(t *testing.T) {
	// the tags mirror the standard SQL type codes
	assert.Equal(t, FieldType(-7), FieldTypeBit)
	assert.Equal(t, FieldType(4), FieldTypeInteger)
	assert.Equal(t, FieldType(8), FieldTypeDouble)
	assert.Equal(t, FieldType(12), FieldTypeVarChar)
	assert.Equal(t, FieldType(16), FieldTypeBoolean)
	assert.Equal(t, FieldType(91), FieldTypeDate)
	assert.Equal(t, FieldType(92), FieldTypeTime)
	assert.Equal(t, FieldType(93), FieldTypeTimestamp)
}

func TestFieldType_Classes(t *testing.T) {
	assert.True(t, FieldTypeInteger.IsNumeric())
	assert.True(t, FieldTypeDecimal.IsNumeric())
	assert.True(t, FieldTypeDouble.IsNumeric())
	assert.False(t, FieldTypeVarChar.IsNumeric())
	assert.False(t, FieldTypeBoolean.IsNumeric())
	assert.False(t, FieldTypeTimestamp.IsNumeric())

	assert.True(t, FieldTypeDate.IsTemporal())
	assert.True(t, FieldTypeTime.IsTemporal())
	assert.True(t, FieldTypeTimestamp.IsTemporal())
	assert.False(t, FieldTypeInteger.IsTemporal())
}
