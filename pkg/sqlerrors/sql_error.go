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

package sqlerrors

import (
	"fmt"
	"strings"
)

import (
	perrors "github.com/pkg/errors"
)

// Error numbers for the failure classes the fixture can signal, aligned with
// the MySQL numbering so adapter code handles them like real driver errors.
const (
	ERUnknownColumn   = 1054
	ERNotSupportedYet = 1235
	ERNoCurrentRow    = 1329
	ERWrongValue      = 1366
)

// SQLSTATE values matching the error numbers above.
const (
	SSUnknownSQLState     = "HY000"
	SSColumnNotFound      = "42S22"
	SSFeatureNotSupported = "0A000"
	SSInvalidCursorState  = "24000"
	SSInvalidCast         = "22018"
)

// SQLError is the error structure returned from every failing cursor call.
type SQLError struct {
	Num     int
	State   string
	Message string
}

// NewSQLError creates a new SQLError.
// If sqlState is left empty, it will default to "HY000" (general error).
func NewSQLError(number int, sqlState string, format string, args ...interface{}) *SQLError {
	if sqlState == "" {
		sqlState = SSUnknownSQLState
	}
	return &SQLError{
		Num:     number,
		State:   sqlState,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface
func (se *SQLError) Error() string {
	var buf strings.Builder
	buf.WriteString(se.Message)

	// Keep errno and SQLSTATE in a parseable suffix, the same shape real
	// drivers render after RPC boundaries flatten errors to strings.
	buf.WriteString(fmt.Sprintf(" (errno %v) (sqlstate %v)", se.Num, se.State))

	return buf.String()
}

// Number returns the internal error code.
func (se *SQLError) Number() int {
	return se.Num
}

// SQLState returns the SQLSTATE value.
func (se *SQLError) SQLState() string {
	return se.State
}

// NewColumnOutOfRangeError signals a 1-based column index outside the
// declared column count.
func NewColumnOutOfRangeError(columnIndex, numCols int) *SQLError {
	return NewSQLError(ERUnknownColumn, SSColumnNotFound,
		"the column index is out of bounds. index = %d, number of columns = %d", columnIndex, numCols)
}

// NewUnsupportedOperationError signals a capability outside the forward-scan
// and typed-read contract.
func NewUnsupportedOperationError(operation string) *SQLError {
	return NewSQLError(ERNotSupportedYet, SSFeatureNotSupported,
		"operation %s is not supported", operation)
}

// NewNoCurrentRowError signals a cell read while the cursor is positioned
// before the first or after the last row.
func NewNoCurrentRowError(position int) *SQLError {
	return NewSQLError(ERNoCurrentRow, SSInvalidCursorState,
		"no current row, cursor position = %d", position)
}

// NewTypeMismatchError signals a typed accessor applied to a cell of an
// incompatible stored kind.
func NewTypeMismatchError(stored, want string) *SQLError {
	return NewSQLError(ERWrongValue, SSInvalidCast,
		"cannot read %s cell as %s", stored, want)
}

func hasNumber(err error, number int) bool {
	var se *SQLError
	return perrors.As(err, &se) && se.Num == number
}

// IsColumnOutOfRange returns true if target error is an out-of-bounds column access.
func IsColumnOutOfRange(err error) bool {
	return hasNumber(err, ERUnknownColumn)
}

// IsUnsupported returns true if target error is the shared unsupported-operation failure.
func IsUnsupported(err error) bool {
	return hasNumber(err, ERNotSupportedYet)
}

// IsNoCurrentRow returns true if target error is an off-row cell read.
func IsNoCurrentRow(err error) bool {
	return hasNumber(err, ERNoCurrentRow)
}

// IsTypeMismatch returns true if target error is a stored-kind mismatch.
func IsTypeMismatch(err error) bool {
	return hasNumber(err, ERWrongValue)
}
