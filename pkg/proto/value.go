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
	"fmt"
	"strconv"
	"time"
)

import (
	perrors "github.com/pkg/errors"

	"github.com/shopspring/decimal"

	"github.com/spf13/cast"
)

const (
	_ ValueFamily = iota
	ValueFamilyString
	ValueFamilySign
	ValueFamilyFloat
	ValueFamilyDecimal
	ValueFamilyBool
	ValueFamilyDate
	ValueFamilyTime
	ValueFamilyTimestamp
)

var _valueFamilyNames = [...]struct {
	name     string
	numeric  bool
	temporal bool
}{
	ValueFamilyString:    {"STRING", false, false},
	ValueFamilySign:      {"SIGNED", true, false},
	ValueFamilyFloat:     {"FLOAT", true, false},
	ValueFamilyDecimal:   {"DECIMAL", true, false},
	ValueFamilyBool:      {"BOOL", false, false},
	ValueFamilyDate:      {"DATE", false, true},
	ValueFamilyTime:      {"TIME", false, true},
	ValueFamilyTimestamp: {"TIMESTAMP", false, true},
}

// Null is the literal SQL NULL. A nil Value carries the same meaning; the
// explicit literal exists so row declarations can spell the cell out.
type Null struct{}

func (n Null) String() string {
	return "NULL"
}

type ValueFamily uint8

func (v ValueFamily) IsNumeric() bool {
	return _valueFamilyNames[v].numeric
}

func (v ValueFamily) IsTemporal() bool {
	return _valueFamilyNames[v].temporal
}

func (v ValueFamily) String() string {
	return _valueFamilyNames[v].name
}

// Value represents the cell value of one row/column position. It is a closed
// union: every supported stored kind has exactly one concrete family here,
// and a nil Value represents SQL NULL.
type Value interface {
	fmt.Stringer
	Family() ValueFamily
	Int64() (int64, error)
	Float64() (float64, error)
	Decimal() (decimal.Decimal, error)
	Bool() (bool, error)
	Time() (time.Time, error)
}

var (
	_ Value = (*stringValue)(nil)
	_ Value = (*int64Value)(nil)
	_ Value = (*float64Value)(nil)
	_ Value = (*decimalValue)(nil)
	_ Value = (*boolValue)(nil)
	_ Value = (*temporalValue)(nil)
)

func MustNewValue(input interface{}) Value {
	v, err := NewValue(input)
	if err != nil {
		panic(err.Error())
	}
	return v
}

// NewValue bridges a plain Go literal into the value union. A nil input or a
// Null literal becomes a nil Value. time.Time literals default to the
// timestamp family; use NewValueDate or NewValueTime for the narrower kinds.
func NewValue(input interface{}) (Value, error) {
	if input == nil {
		return nil, nil
	}
	switch v := input.(type) {
	case Null, *Null:
		return nil, nil
	case Value:
		return v, nil
	case int8:
		return NewValueInt64(int64(v)), nil
	case int16:
		return NewValueInt64(int64(v)), nil
	case int32:
		return NewValueInt64(int64(v)), nil
	case int64:
		return NewValueInt64(v), nil
	case int:
		return NewValueInt64(int64(v)), nil
	case uint8:
		return NewValueInt64(int64(v)), nil
	case uint16:
		return NewValueInt64(int64(v)), nil
	case uint32:
		return NewValueInt64(int64(v)), nil
	case uint64:
		return NewValueInt64(int64(v)), nil
	case uint:
		return NewValueInt64(int64(v)), nil
	case string:
		return NewValueString(v), nil
	case []byte:
		return NewValueString(cast.ToString(v)), nil
	case bool:
		return NewValueBool(v), nil
	case float32:
		return NewValueFloat64(float64(v)), nil
	case float64:
		return NewValueFloat64(v), nil
	case time.Time:
		return NewValueTimestamp(v), nil
	case *time.Time:
		if v == nil {
			return nil, nil
		}
		return NewValueTimestamp(*v), nil
	case decimal.Decimal:
		return NewValueDecimal(v), nil
	case *decimal.Decimal:
		if v == nil {
			return nil, nil
		}
		return NewValueDecimal(*v), nil
	case decimal.NullDecimal:
		if !v.Valid {
			return nil, nil
		}
		return NewValueDecimal(v.Decimal), nil
	default:
		if s, err := cast.ToStringE(v); err == nil {
			return NewValueString(s), nil
		}
		return nil, perrors.Errorf("unsupported cell value type: %T", v)
	}
}

type stringValue string

func NewValueString(s string) Value {
	return stringValue(s)
}

func (s stringValue) String() string {
	return string(s)
}

func (s stringValue) Family() ValueFamily {
	return ValueFamilyString
}

func (s stringValue) Int64() (int64, error) {
	return strconv.ParseInt(string(s), 10, 64)
}

func (s stringValue) Float64() (float64, error) {
	return strconv.ParseFloat(string(s), 64)
}

func (s stringValue) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(string(s))
}

func (s stringValue) Bool() (bool, error) {
	return strconv.ParseBool(string(s))
}

func (s stringValue) Time() (t time.Time, err error) {
	input := string(s)

	if input == "" {
		return
	}

	if t, err = time.Parse("2006-01-02", input); err == nil {
		return t, nil
	}

	if t, err = time.Parse("15:04:05", input); err == nil {
		return t, nil
	}

	if t, err = time.Parse("2006-01-02 15:04:05", input); err == nil {
		return t, nil
	}

	if t, err = time.Parse("2006-01-02 15:04:05.000000", input); err == nil {
		return t, nil
	}

	err = perrors.Errorf("cannot parse time from '%s'", input)
	return
}

type int64Value int64

func NewValueInt64(v int64) Value {
	return int64Value(v)
}

func (i int64Value) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (i int64Value) Family() ValueFamily {
	return ValueFamilySign
}

func (i int64Value) Int64() (int64, error) {
	return int64(i), nil
}

func (i int64Value) Float64() (float64, error) {
	return float64(i), nil
}

func (i int64Value) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromInt(int64(i)), nil
}

func (i int64Value) Bool() (bool, error) {
	return int64(i) != 0, nil
}

func (i int64Value) Time() (time.Time, error) {
	return time.Time{}, perrors.New("cannot convert int64 to time")
}

type float64Value float64

func NewValueFloat64(v float64) Value {
	return float64Value(v)
}

func (f float64Value) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

func (f float64Value) Family() ValueFamily {
	return ValueFamilyFloat
}

func (f float64Value) Int64() (int64, error) {
	return int64(f), nil
}

func (f float64Value) Float64() (float64, error) {
	return float64(f), nil
}

func (f float64Value) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromFloat(float64(f)), nil
}

func (f float64Value) Bool() (bool, error) {
	return float64(f) != 0, nil
}

func (f float64Value) Time() (time.Time, error) {
	return time.Time{}, perrors.New("cannot convert float64 to time")
}

type decimalValue decimal.Decimal

func NewValueDecimal(d decimal.Decimal) Value {
	return decimalValue(d)
}

func MustNewValueDecimalString(s string) Value {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err.Error())
	}
	return NewValueDecimal(d)
}

func (d decimalValue) String() string {
	return decimal.Decimal(d).String()
}

func (d decimalValue) Family() ValueFamily {
	return ValueFamilyDecimal
}

func (d decimalValue) Int64() (int64, error) {
	return decimal.Decimal(d).IntPart(), nil
}

func (d decimalValue) Float64() (float64, error) {
	return decimal.Decimal(d).InexactFloat64(), nil
}

func (d decimalValue) Decimal() (decimal.Decimal, error) {
	return decimal.Decimal(d), nil
}

func (d decimalValue) Bool() (bool, error) {
	return !decimal.Decimal(d).IsZero(), nil
}

func (d decimalValue) Time() (time.Time, error) {
	return time.Time{}, perrors.New("cannot convert decimal to time")
}

type boolValue bool

func NewValueBool(b bool) Value {
	return boolValue(b)
}

func (b boolValue) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (b boolValue) Family() ValueFamily {
	return ValueFamilyBool
}

func (b boolValue) Int64() (int64, error) {
	if b {
		return 1, nil
	}
	return 0, nil
}

func (b boolValue) Float64() (float64, error) {
	if b {
		return 1, nil
	}
	return 0, nil
}

func (b boolValue) Decimal() (decimal.Decimal, error) {
	if b {
		return decimal.NewFromInt(1), nil
	}
	return decimal.Zero, nil
}

func (b boolValue) Bool() (bool, error) {
	return bool(b), nil
}

func (b boolValue) Time() (time.Time, error) {
	return time.Time{}, perrors.New("cannot convert bool to time")
}

// temporalValue backs the three date/time families, which differ only in
// family tag and textual layout.
type temporalValue struct {
	t      time.Time
	family ValueFamily
	layout string
}

func NewValueDate(t time.Time) Value {
	return temporalValue{t: t, family: ValueFamilyDate, layout: "2006-01-02"}
}

func NewValueTime(t time.Time) Value {
	return temporalValue{t: t, family: ValueFamilyTime, layout: "15:04:05"}
}

func NewValueTimestamp(t time.Time) Value {
	return temporalValue{t: t, family: ValueFamilyTimestamp, layout: "2006-01-02 15:04:05"}
}

func (t temporalValue) String() string {
	return t.t.Format(t.layout)
}

func (t temporalValue) Family() ValueFamily {
	return t.family
}

func (t temporalValue) Int64() (int64, error) {
	return 0, perrors.Errorf("cannot convert %s to int64", t.family)
}

func (t temporalValue) Float64() (float64, error) {
	return 0, perrors.Errorf("cannot convert %s to float64", t.family)
}

func (t temporalValue) Decimal() (decimal.Decimal, error) {
	return decimal.Zero, perrors.Errorf("cannot convert %s to decimal", t.family)
}

func (t temporalValue) Bool() (bool, error) {
	return false, perrors.Errorf("cannot convert %s to bool", t.family)
}

func (t temporalValue) Time() (time.Time, error) {
	return t.t, nil
}
