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
	perrors "github.com/pkg/errors"
)

import (
	"github.com/ci-rt/mockcursor/pkg/constants/sqltype"
	"github.com/ci-rt/mockcursor/pkg/proto"
	"github.com/ci-rt/mockcursor/pkg/sqlerrors"
)

var _ proto.Metadata = (*ResultMetadata)(nil)

// ResultMetadata is the column descriptor set of one cursor: count, labels
// and declared type tags, index-aligned. It is built once alongside the
// cursor and never mutated.
type ResultMetadata struct {
	numCols int
	labels  []string
	types   []sqltype.FieldType
}

// New validates that the label and type sequences match the declared column
// count and returns the descriptor. The input slices are copied.
func New(numCols int, labels []string, types []sqltype.FieldType) (*ResultMetadata, error) {
	if numCols < 0 {
		return nil, perrors.Errorf("negative column count: %d", numCols)
	}
	if len(labels) != numCols {
		return nil, perrors.Errorf("got %d column labels, want %d", len(labels), numCols)
	}
	if len(types) != numCols {
		return nil, perrors.Errorf("got %d column types, want %d", len(types), numCols)
	}

	md := &ResultMetadata{
		numCols: numCols,
		labels:  make([]string, numCols),
		types:   make([]sqltype.FieldType, numCols),
	}
	copy(md.labels, labels)
	copy(md.types, types)

	return md, nil
}

// ColumnCount returns the number of declared columns.
func (rm *ResultMetadata) ColumnCount() int {
	return rm.numCols
}

// ColumnLabel returns the label of the designated column. Indexes are 1-based.
func (rm *ResultMetadata) ColumnLabel(columnIndex int) (string, error) {
	if columnIndex < 1 || columnIndex > rm.numCols {
		return "", sqlerrors.NewColumnOutOfRangeError(columnIndex, rm.numCols)
	}
	return rm.labels[columnIndex-1], nil
}

// ColumnType returns the declared type tag of the designated column.
// Indexes are 1-based.
func (rm *ResultMetadata) ColumnType(columnIndex int) (sqltype.FieldType, error) {
	if columnIndex < 1 || columnIndex > rm.numCols {
		return 0, sqlerrors.NewColumnOutOfRangeError(columnIndex, rm.numCols)
	}
	return rm.types[columnIndex-1], nil
}

// ColumnTypeName returns the SQL name of the designated column's type tag.
func (rm *ResultMetadata) ColumnTypeName(columnIndex int) (string, error) {
	t, err := rm.ColumnType(columnIndex)
	if err != nil {
		return "", err
	}
	return t.TypeName(), nil
}
