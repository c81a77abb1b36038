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

// Package fixture assembles mock cursors from plain Go literals, so a test
// declares its table shape and rows in one place without building the value
// union by hand.
package fixture

import (
	perrors "github.com/pkg/errors"
)

import (
	"github.com/ci-rt/mockcursor/pkg/constants/sqltype"
	"github.com/ci-rt/mockcursor/pkg/cursor"
	"github.com/ci-rt/mockcursor/pkg/proto"
)

// Col declares one column of a fixture table.
type Col struct {
	Label string
	Type  sqltype.FieldType
}

type option struct {
	cols []Col
	rows [][]interface{}
}

// Option represents the option to build a cursor.
type Option func(*option)

// WithColumns declares the column shape of the table.
func WithColumns(cols ...Col) Option {
	return func(o *option) {
		o.cols = append(o.cols, cols...)
	}
}

// WithRow appends one row of cells, given as Go literals. A nil cell or a
// proto.Null literal is SQL NULL. time.Time cells become timestamps; wrap
// them with proto.NewValueDate or proto.NewValueTime for the narrower kinds.
func WithRow(cells ...interface{}) Option {
	return func(o *option) {
		o.rows = append(o.rows, cells)
	}
}

// New builds a cursor from some options, converting every declared cell into
// the value union and validating the table shape.
func New(options ...Option) (*cursor.MockCursor, error) {
	var o option
	for _, it := range options {
		it(&o)
	}

	labels := make([]string, len(o.cols))
	types := make([]sqltype.FieldType, len(o.cols))
	for i, col := range o.cols {
		labels[i] = col.Label
		types[i] = col.Type
	}

	rows := make([]proto.Row, len(o.rows))
	for i, cells := range o.rows {
		row := make(proto.Row, len(cells))
		for j, cell := range cells {
			v, err := proto.NewValue(cell)
			if err != nil {
				return nil, perrors.Wrapf(err, "row %d, column %d", i, j+1)
			}
			row[j] = v
		}
		rows[i] = row
	}

	return cursor.New(rows, len(o.cols), labels, types)
}

// MustNew is New, panicking on a malformed declaration. Intended for test
// setup where the declaration is a literal.
func MustNew(options ...Option) *cursor.MockCursor {
	cu, err := New(options...)
	if err != nil {
		panic(err.Error())
	}
	return cu
}
