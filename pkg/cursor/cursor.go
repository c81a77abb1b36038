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

package cursor

import (
	"time"
)

import (
	perrors "github.com/pkg/errors"
)

import (
	"github.com/ci-rt/mockcursor/pkg/constants/sqltype"
	"github.com/ci-rt/mockcursor/pkg/metadata"
	"github.com/ci-rt/mockcursor/pkg/proto"
	"github.com/ci-rt/mockcursor/pkg/sqlerrors"
)

var _ proto.Cursor = (*MockCursor)(nil)

// MockCursor emulates a forward-only, read-only result-set cursor over a
// fixed in-memory row set, for unit tests of SQL-backed data-source adapters.
// It owns its row set exclusively; rows are immutable after construction.
// Not safe for concurrent use: one cursor serves one test execution context.
type MockCursor struct {
	rows    []proto.Row
	numCols int
	md      *metadata.ResultMetadata

	rowIndex int
	wasNull  bool
}

// New builds a cursor over the given row set and column descriptors. It fails
// fast when the label or type sequence length differs from numCols, or when
// any row's width differs from numCols.
func New(rows []proto.Row, numCols int, labels []string, types []sqltype.FieldType) (*MockCursor, error) {
	md, err := metadata.New(numCols, labels, types)
	if err != nil {
		return nil, perrors.WithStack(err)
	}
	for i, row := range rows {
		if len(row) != numCols {
			return nil, perrors.Errorf("row %d has %d cells, want %d", i, len(row), numCols)
		}
	}

	return &MockCursor{
		rows:     rows,
		numCols:  numCols,
		md:       md,
		rowIndex: -1,
	}, nil
}

// Next moves the cursor forward one row from its current position and reports
// whether the new position is on a row. It never fails: once past the last
// row it keeps returning false, and the position keeps advancing without ever
// re-entering the row set.
func (cu *MockCursor) Next() bool {
	cu.rowIndex++
	return cu.rowIndex < len(cu.rows)
}

// getCell is the single read primitive behind every typed accessor. It
// enforces the 1-based column bound, requires an on-row position, and
// refreshes the null-read flag on success.
func (cu *MockCursor) getCell(columnIndex int) (proto.Value, error) {
	if columnIndex < 1 || columnIndex > cu.numCols {
		return nil, sqlerrors.NewColumnOutOfRangeError(columnIndex, cu.numCols)
	}
	if cu.rowIndex < 0 || cu.rowIndex >= len(cu.rows) {
		return nil, sqlerrors.NewNoCurrentRowError(cu.rowIndex)
	}

	v := cu.rows[cu.rowIndex][columnIndex-1]
	cu.wasNull = v == nil
	return v, nil
}

// GetString renders the designated cell as text. Every stored kind has a
// textual form, so no type check applies. NULL yields "".
func (cu *MockCursor) GetString(columnIndex int) (string, error) {
	v, err := cu.getCell(columnIndex)
	if err != nil {
		return "", err
	}
	if cu.wasNull {
		return "", nil
	}
	return v.String(), nil
}

// GetBoolean reads the designated cell as a boolean. The stored kind must be
// boolean; there is no coercion from other kinds. NULL yields false.
func (cu *MockCursor) GetBoolean(columnIndex int) (bool, error) {
	v, err := cu.getCell(columnIndex)
	if err != nil {
		return false, err
	}
	if cu.wasNull {
		return false, nil
	}
	if v.Family() != proto.ValueFamilyBool {
		return false, sqlerrors.NewTypeMismatchError(v.Family().String(), proto.ValueFamilyBool.String())
	}
	return v.Bool()
}

// GetDouble reads the designated cell as a double-precision float, widening
// signed-integer, floating-point and decimal cells. NULL yields 0.
func (cu *MockCursor) GetDouble(columnIndex int) (float64, error) {
	v, err := cu.getCell(columnIndex)
	if err != nil {
		return 0, err
	}
	if cu.wasNull {
		return 0, nil
	}
	switch v.Family() {
	case proto.ValueFamilySign, proto.ValueFamilyFloat, proto.ValueFamilyDecimal:
		return v.Float64()
	default:
		return 0, sqlerrors.NewTypeMismatchError(v.Family().String(), proto.ValueFamilyFloat.String())
	}
}

// GetDate reads the designated cell as a calendar date.
// NULL yields the zero time.
func (cu *MockCursor) GetDate(columnIndex int) (time.Time, error) {
	return cu.getTemporal(columnIndex, proto.ValueFamilyDate)
}

// GetTime reads the designated cell as a time of day.
// NULL yields the zero time.
func (cu *MockCursor) GetTime(columnIndex int) (time.Time, error) {
	return cu.getTemporal(columnIndex, proto.ValueFamilyTime)
}

// GetTimestamp reads the designated cell as a timestamp.
// NULL yields the zero time.
func (cu *MockCursor) GetTimestamp(columnIndex int) (time.Time, error) {
	return cu.getTemporal(columnIndex, proto.ValueFamilyTimestamp)
}

func (cu *MockCursor) getTemporal(columnIndex int, want proto.ValueFamily) (time.Time, error) {
	v, err := cu.getCell(columnIndex)
	if err != nil {
		return time.Time{}, err
	}
	if cu.wasNull {
		return time.Time{}, nil
	}
	if v.Family() != want {
		return time.Time{}, sqlerrors.NewTypeMismatchError(v.Family().String(), want.String())
	}
	return v.Time()
}

// WasNull reports whether the most recent successful cell read, via any typed
// accessor, retrieved SQL NULL. It is cursor-wide state, not per-column: a
// later read of a non-null cell resets it.
func (cu *MockCursor) WasNull() bool {
	return cu.wasNull
}

// Metadata returns the column descriptor set built at construction.
func (cu *MockCursor) Metadata() proto.Metadata {
	return cu.md
}
