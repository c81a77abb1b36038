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
	"testing"
)

import (
	perrors "github.com/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestNewSQLError(t *testing.T) {
	se := NewSQLError(ERUnknownColumn, SSColumnNotFound, "column %d not found", 5)
	assert.Equal(t, ERUnknownColumn, se.Number())
	assert.Equal(t, SSColumnNotFound, se.SQLState())
	assert.Equal(t, "column 5 not found (errno 1054) (sqlstate 42S22)", se.Error())
}

func TestNewSQLError_DefaultState(t *testing.T) {
	se := NewSQLError(ERWrongValue, "", "boom")
	assert.Equal(t, SSUnknownSQLState, se.SQLState())
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
	}{
		{"TestPredicates_ColumnOutOfRange", NewColumnOutOfRangeError(3, 2), IsColumnOutOfRange},
		{"TestPredicates_Unsupported", NewUnsupportedOperationError("PREVIOUS"), IsUnsupported},
		{"TestPredicates_NoCurrentRow", NewNoCurrentRowError(-1), IsNoCurrentRow},
		{"TestPredicates_TypeMismatch", NewTypeMismatchError("STRING", "BOOL"), IsTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.pred(tt.err))

			// still recognized through wrapping
			assert.True(t, tt.pred(perrors.WithStack(tt.err)))
			assert.True(t, tt.pred(perrors.Wrap(tt.err, "scanning row")))

			// each predicate matches only its own class
			for _, other := range tests {
				if other.name != tt.name {
					assert.False(t, other.pred(tt.err))
				}
			}
		})
	}

	assert.False(t, IsUnsupported(nil))
	assert.False(t, IsUnsupported(perrors.New("plain")))
}

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, NewColumnOutOfRangeError(3, 2).Error(), "index = 3, number of columns = 2")
	assert.Contains(t, NewUnsupportedOperationError("UPDATE_ROW").Error(), "operation UPDATE_ROW is not supported")
	assert.Contains(t, NewNoCurrentRowError(-1).Error(), "cursor position = -1")
	assert.Contains(t, NewTypeMismatchError("STRING", "BOOL").Error(), "cannot read STRING cell as BOOL")
}
