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

package proto

import (
	"time"
)

import (
	"github.com/ci-rt/mockcursor/pkg/constants/sqltype"
)

type (
	// Row is one materialized table row: an ordered sequence of nullable cell
	// values, index-aligned with the declared columns. Rows are immutable
	// once handed to a cursor.
	Row []Value

	// Cursor is the forward-only, read-only scan surface a data-source
	// adapter drives: advance with Next, then read the current row's cells by
	// 1-based column index, checking WasNull after each read. Column reads
	// while the cursor is before the first or after the last row fail.
	Cursor interface {
		// Next moves the cursor forward one row from its current position.
		// The cursor starts before the first row; the first call makes the
		// first row current. It returns false once positioned after the last
		// row and keeps returning false on every later call.
		Next() bool

		// GetString renders the cell as text, whatever its stored kind.
		// NULL yields "" with the null-read flag set.
		GetString(columnIndex int) (string, error)

		// GetBoolean reads a boolean-typed cell. NULL yields false.
		GetBoolean(columnIndex int) (bool, error)

		// GetDouble widens an integral, floating-point or decimal cell to
		// float64. NULL yields 0.
		GetDouble(columnIndex int) (float64, error)

		// GetDate reads a date-typed cell. NULL yields the zero time.
		GetDate(columnIndex int) (time.Time, error)

		// GetTime reads a time-of-day-typed cell. NULL yields the zero time.
		GetTime(columnIndex int) (time.Time, error)

		// GetTimestamp reads a timestamp-typed cell. NULL yields the zero time.
		GetTimestamp(columnIndex int) (time.Time, error)

		// WasNull reports whether the most recent cell read, via any typed
		// accessor, retrieved SQL NULL.
		WasNull() bool

		// Metadata returns the fixed column shape of this cursor.
		Metadata() Metadata
	}

	// Metadata describes the column shape associated with a cursor: count,
	// labels and declared type tags, all fixed at construction.
	Metadata interface {
		ColumnCount() int
		ColumnLabel(columnIndex int) (string, error)
		ColumnType(columnIndex int) (sqltype.FieldType, error)
	}
)
