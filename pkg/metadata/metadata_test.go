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

package metadata

import (
	"testing"
)

import (
	"github.com/stretchr/testify/assert"
)

import (
	"github.com/ci-rt/mockcursor/pkg/constants/sqltype"
	"github.com/ci-rt/mockcursor/pkg/sqlerrors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		numCols int
		labels  []string
		types   []sqltype.FieldType
		wantErr assert.ErrorAssertionFunc
	}{
		{
			"TestNew_Ok",
			2,
			[]string{"name", "age"},
			[]sqltype.FieldType{sqltype.FieldTypeVarChar, sqltype.FieldTypeInteger},
			assert.NoError,
		},
		{"TestNew_Zero", 0, nil, nil, assert.NoError},
		{"TestNew_Negative", -1, nil, nil, assert.Error},
		{
			"TestNew_ShortLabels",
			2,
			[]string{"name"},
			[]sqltype.FieldType{sqltype.FieldTypeVarChar, sqltype.FieldTypeInteger},
			assert.Error,
		},
		{
			"TestNew_ShortTypes",
			2,
			[]string{"name", "age"},
			[]sqltype.FieldType{sqltype.FieldTypeVarChar},
			assert.Error,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.numCols, tt.labels, tt.types)
			tt.wantErr(t, err)
		})
	}
}

func TestResultMetadata_Accessors(t *testing.T) {
	md, err := New(2, []string{"name", "age"},
		[]sqltype.FieldType{sqltype.FieldTypeVarChar, sqltype.FieldTypeInteger})
	assert.NoError(t, err)

	assert.Equal(t, 2, md.ColumnCount())

	label, err := md.ColumnLabel(1)
	assert.NoError(t, err)
	assert.Equal(t, "name", label)

	label, err = md.ColumnLabel(2)
	assert.NoError(t, err)
	assert.Equal(t, "age", label)

	typ, err := md.ColumnType(2)
	assert.NoError(t, err)
	assert.Equal(t, sqltype.FieldTypeInteger, typ)

	typeName, err := md.ColumnTypeName(1)
	assert.NoError(t, err)
	assert.Equal(t, "VARCHAR", typeName)
}

func TestResultMetadata_OutOfRange(t *testing.T) {
	md, err := New(2, []string{"name", "age"},
		[]sqltype.FieldType{sqltype.FieldTypeVarChar, sqltype.FieldTypeInteger})
	assert.NoError(t, err)

	for _, idx := range []int{0, -1, 3} {
		_, err = md.ColumnLabel(idx)
		assert.True(t, sqlerrors.IsColumnOutOfRange(err))
		_, err = md.ColumnType(idx)
		assert.True(t, sqlerrors.IsColumnOutOfRange(err))
	}
}

func TestResultMetadata_CopiesInput(t *testing.T) {
	labels := []string{"name"}
	types := []sqltype.FieldType{sqltype.FieldTypeVarChar}
	md, err := New(1, labels, types)
	assert.NoError(t, err)

	labels[0] = "mutated"
	types[0] = sqltype.FieldTypeInteger

	label, err := md.ColumnLabel(1)
	assert.NoError(t, err)
	assert.Equal(t, "name", label)

	typ, err := md.ColumnType(1)
	assert.NoError(t, err)
	assert.Equal(t, sqltype.FieldTypeVarChar, typ)
}
