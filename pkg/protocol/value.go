package protocol

import (
	"fmt"
	"math"
)

// Discriminant for the optional numeric attachment, one case per
// numeric width and signedness
type ValueKind uint8

const (
	ValueAbsent ValueKind = iota
	ValueUint8
	ValueUint16
	ValueUint32
	ValueUint64
	ValueInt8
	ValueInt16
	ValueInt32
	ValueInt64
	ValueFloat32
	ValueFloat64
)

var valueKindNames = map[ValueKind]string{
	ValueAbsent:  "absent",
	ValueUint8:   "u8",
	ValueUint16:  "u16",
	ValueUint32:  "u32",
	ValueUint64:  "u64",
	ValueInt8:    "i8",
	ValueInt16:   "i16",
	ValueInt32:   "i32",
	ValueInt64:   "i64",
	ValueFloat32: "f32",
	ValueFloat64: "f64",
}

func (kind ValueKind) String() (name string) {
	name, known := valueKindNames[kind]
	if !known {
		name = fmt.Sprintf("unknown(%d)", uint8(kind))
	}
	return
}

// Tagged numeric payload. The zero value is the absent case, which is the
// only case with end-to-end wire support (typed values are the declared
// PayloadTypedValue kind, rejected by the v1 codec).
type Value struct {
	kind ValueKind
	bits uint64
}

func Uint8Value(v uint8) Value   { return Value{kind: ValueUint8, bits: uint64(v)} }
func Uint16Value(v uint16) Value { return Value{kind: ValueUint16, bits: uint64(v)} }
func Uint32Value(v uint32) Value { return Value{kind: ValueUint32, bits: uint64(v)} }
func Uint64Value(v uint64) Value { return Value{kind: ValueUint64, bits: v} }
func Int8Value(v int8) Value     { return Value{kind: ValueInt8, bits: uint64(v)} }
func Int16Value(v int16) Value   { return Value{kind: ValueInt16, bits: uint64(v)} }
func Int32Value(v int32) Value   { return Value{kind: ValueInt32, bits: uint64(v)} }
func Int64Value(v int64) Value   { return Value{kind: ValueInt64, bits: uint64(v)} }
func Float32Value(v float32) Value {
	return Value{kind: ValueFloat32, bits: uint64(math.Float32bits(v))}
}
func Float64Value(v float64) Value {
	return Value{kind: ValueFloat64, bits: math.Float64bits(v)}
}

func (val Value) Kind() (kind ValueKind) {
	kind = val.kind
	return
}

// Reports whether no numeric payload is attached
func (val Value) Absent() (absent bool) {
	absent = val.kind == ValueAbsent
	return
}

// Unsigned payload, ok only for unsigned kinds
func (val Value) Uint() (v uint64, ok bool) {
	switch val.kind {
	case ValueUint8, ValueUint16, ValueUint32, ValueUint64:
		v = val.bits
		ok = true
	}
	return
}

// Signed payload, ok only for signed kinds
func (val Value) Int() (v int64, ok bool) {
	switch val.kind {
	case ValueInt8:
		v = int64(int8(val.bits))
		ok = true
	case ValueInt16:
		v = int64(int16(val.bits))
		ok = true
	case ValueInt32:
		v = int64(int32(val.bits))
		ok = true
	case ValueInt64:
		v = int64(val.bits)
		ok = true
	}
	return
}

// Float payload, ok only for float kinds
func (val Value) Float() (v float64, ok bool) {
	switch val.kind {
	case ValueFloat32:
		v = float64(math.Float32frombits(uint32(val.bits)))
		ok = true
	case ValueFloat64:
		v = math.Float64frombits(val.bits)
		ok = true
	}
	return
}

func (val Value) String() (text string) {
	switch {
	case val.Absent():
		text = "absent"
	default:
		if v, ok := val.Uint(); ok {
			text = fmt.Sprintf("%s(%d)", val.kind, v)
			return
		}
		if v, ok := val.Int(); ok {
			text = fmt.Sprintf("%s(%d)", val.kind, v)
			return
		}
		if v, ok := val.Float(); ok {
			text = fmt.Sprintf("%s(%g)", val.kind, v)
			return
		}
		text = val.kind.String()
	}
	return
}
