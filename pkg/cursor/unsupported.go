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
	"io"
	"time"
)

import (
	"github.com/ci-rt/mockcursor/pkg/sqlerrors"
	"github.com/ci-rt/mockcursor/pkg/util/log"
)

// Operation identifies one standard-cursor capability outside the
// forward-scan and typed-read contract. Every such capability is permanently
// unsupported: a test reaching one means the adapter under test exercised
// functionality this fixture deliberately does not carry.
type Operation uint8

const (
	_ Operation = iota
	OpClose
	OpPrevious
	OpFirst
	OpLast
	OpBeforeFirst
	OpAfterLast
	OpAbsolute
	OpRelative
	OpGetRow
	OpFindColumn
	OpReadByLabel
	OpUpdateRow
	OpInsertRow
	OpDeleteRow
	OpRefreshRow
	OpStream
	OpLargeObject
	OpNationalString
	OpWrapper
	OpFetchTuning
	OpHoldability
	OpWarnings
	OpCursorName
)

var _operationNames = [...]string{
	OpClose:          "CLOSE",
	OpPrevious:       "PREVIOUS",
	OpFirst:          "FIRST",
	OpLast:           "LAST",
	OpBeforeFirst:    "BEFORE_FIRST",
	OpAfterLast:      "AFTER_LAST",
	OpAbsolute:       "ABSOLUTE",
	OpRelative:       "RELATIVE",
	OpGetRow:         "GET_ROW",
	OpFindColumn:     "FIND_COLUMN",
	OpReadByLabel:    "READ_BY_LABEL",
	OpUpdateRow:      "UPDATE_ROW",
	OpInsertRow:      "INSERT_ROW",
	OpDeleteRow:      "DELETE_ROW",
	OpRefreshRow:     "REFRESH_ROW",
	OpStream:         "STREAM",
	OpLargeObject:    "LARGE_OBJECT",
	OpNationalString: "NATIONAL_STRING",
	OpWrapper:        "WRAPPER",
	OpFetchTuning:    "FETCH_TUNING",
	OpHoldability:    "HOLDABILITY",
	OpWarnings:       "WARNINGS",
	OpCursorName:     "CURSOR_NAME",
}

func (op Operation) String() string {
	return _operationNames[op]
}

// unsupported is the shared fallback behind every stubbed capability. The
// debug trace names the operation so a failing adapter test points straight
// at the unexpected call.
func (cu *MockCursor) unsupported(op Operation) error {
	log.Debugf("unsupported cursor operation invoked: %s", op)
	return sqlerrors.NewUnsupportedOperationError(op.String())
}

// Close is unsupported: the fixture holds no resources to release, and a
// strict failure catches adapters that manage cursor lifecycle unexpectedly.
func (cu *MockCursor) Close() error {
	return cu.unsupported(OpClose)
}

// Previous is unsupported: the cursor is forward-only.
func (cu *MockCursor) Previous() (bool, error) {
	return false, cu.unsupported(OpPrevious)
}

// First is unsupported: the cursor is forward-only.
func (cu *MockCursor) First() (bool, error) {
	return false, cu.unsupported(OpFirst)
}

// Last is unsupported: the cursor is forward-only.
func (cu *MockCursor) Last() (bool, error) {
	return false, cu.unsupported(OpLast)
}

// BeforeFirst is unsupported: the cursor is forward-only.
func (cu *MockCursor) BeforeFirst() error {
	return cu.unsupported(OpBeforeFirst)
}

// AfterLast is unsupported: the cursor is forward-only.
func (cu *MockCursor) AfterLast() error {
	return cu.unsupported(OpAfterLast)
}

// Absolute is unsupported: the cursor is forward-only.
func (cu *MockCursor) Absolute(row int) (bool, error) {
	return false, cu.unsupported(OpAbsolute)
}

// Relative is unsupported: the cursor is forward-only.
func (cu *MockCursor) Relative(offset int) (bool, error) {
	return false, cu.unsupported(OpRelative)
}

// GetRow is unsupported.
func (cu *MockCursor) GetRow() (int, error) {
	return 0, cu.unsupported(OpGetRow)
}

// FindColumn is unsupported: cells are addressed by 1-based index only.
func (cu *MockCursor) FindColumn(label string) (int, error) {
	return 0, cu.unsupported(OpFindColumn)
}

// GetStringByLabel is unsupported: cells are addressed by 1-based index only.
func (cu *MockCursor) GetStringByLabel(label string) (string, error) {
	return "", cu.unsupported(OpReadByLabel)
}

// GetBooleanByLabel is unsupported: cells are addressed by 1-based index only.
func (cu *MockCursor) GetBooleanByLabel(label string) (bool, error) {
	return false, cu.unsupported(OpReadByLabel)
}

// GetDoubleByLabel is unsupported: cells are addressed by 1-based index only.
func (cu *MockCursor) GetDoubleByLabel(label string) (float64, error) {
	return 0, cu.unsupported(OpReadByLabel)
}

// GetTimestampByLabel is unsupported: cells are addressed by 1-based index only.
func (cu *MockCursor) GetTimestampByLabel(label string) (time.Time, error) {
	return time.Time{}, cu.unsupported(OpReadByLabel)
}

// UpdateRow is unsupported: the row set is read-only.
func (cu *MockCursor) UpdateRow() error {
	return cu.unsupported(OpUpdateRow)
}

// InsertRow is unsupported: the row set is read-only.
func (cu *MockCursor) InsertRow() error {
	return cu.unsupported(OpInsertRow)
}

// DeleteRow is unsupported: the row set is read-only.
func (cu *MockCursor) DeleteRow() error {
	return cu.unsupported(OpDeleteRow)
}

// RefreshRow is unsupported: the row set is fixed at construction.
func (cu *MockCursor) RefreshRow() error {
	return cu.unsupported(OpRefreshRow)
}

// GetBinaryStream is unsupported: no streaming access.
func (cu *MockCursor) GetBinaryStream(columnIndex int) (io.Reader, error) {
	return nil, cu.unsupported(OpStream)
}

// GetCharacterStream is unsupported: no streaming access.
func (cu *MockCursor) GetCharacterStream(columnIndex int) (io.Reader, error) {
	return nil, cu.unsupported(OpStream)
}

// GetBlob is unsupported: no large-object access.
func (cu *MockCursor) GetBlob(columnIndex int) ([]byte, error) {
	return nil, cu.unsupported(OpLargeObject)
}

// GetClob is unsupported: no large-object access.
func (cu *MockCursor) GetClob(columnIndex int) (string, error) {
	return "", cu.unsupported(OpLargeObject)
}

// GetNString is unsupported: no internationalized-string access.
func (cu *MockCursor) GetNString(columnIndex int) (string, error) {
	return "", cu.unsupported(OpNationalString)
}

// Unwrap is unsupported: the fixture wraps nothing.
func (cu *MockCursor) Unwrap(target interface{}) error {
	return cu.unsupported(OpWrapper)
}

// SetFetchSize is unsupported: all rows are materialized up front.
func (cu *MockCursor) SetFetchSize(rows int) error {
	return cu.unsupported(OpFetchTuning)
}

// SetFetchDirection is unsupported: the cursor is forward-only.
func (cu *MockCursor) SetFetchDirection(direction int) error {
	return cu.unsupported(OpFetchTuning)
}

// GetHoldability is unsupported: a query-execution-environment concern.
func (cu *MockCursor) GetHoldability() (int, error) {
	return 0, cu.unsupported(OpHoldability)
}

// GetWarnings is unsupported.
func (cu *MockCursor) GetWarnings() (string, error) {
	return "", cu.unsupported(OpWarnings)
}

// ClearWarnings is unsupported.
func (cu *MockCursor) ClearWarnings() error {
	return cu.unsupported(OpWarnings)
}

// GetCursorName is unsupported.
func (cu *MockCursor) GetCursorName() (string, error) {
	return "", cu.unsupported(OpCursorName)
}
