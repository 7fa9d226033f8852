// Package models contains domain models for the docstore service.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	domainerrors "github.com/unifiedui/docstore-service/internal/domain/errors"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindNull is the null value.
	KindNull Kind = iota
	// KindBool is a boolean.
	KindBool
	// KindInt is a signed 64-bit integer.
	KindInt
	// KindFloat is a 64-bit float.
	KindFloat
	// KindString is a UTF-8 string.
	KindString
	// KindDocument is a nested document.
	KindDocument
	// KindArray is an ordered sequence of values.
	KindArray
	// KindObjectID is a 12-byte server object identifier.
	KindObjectID
	// KindDateTime is a UTC timestamp with millisecond precision.
	KindDateTime
	// KindRaw is any other BSON value (binary, decimal, timestamp, regex and
	// so on), held as the driver's Go representation.
	KindRaw
)

var kindNames = [...]string{
	KindNull:     "null",
	KindBool:     "bool",
	KindInt:      "int",
	KindFloat:    "float",
	KindString:   "string",
	KindDocument: "document",
	KindArray:    "array",
	KindObjectID: "objectId",
	KindDateTime: "datetime",
	KindRaw:      "raw",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a dynamically typed document field value.
// The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	doc  Document
	arr  []Value
	oid  primitive.ObjectID
	t    time.Time
	raw  interface{}
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Doc returns a nested document value.
func Doc(d Document) Value {
	if d == nil {
		d = Document{}
	}
	return Value{kind: KindDocument, doc: d}
}

// Array returns an array value.
func Array(values ...Value) Value {
	if values == nil {
		values = []Value{}
	}
	return Value{kind: KindArray, arr: values}
}

// ObjectID returns an object identifier value.
func ObjectID(oid primitive.ObjectID) Value { return Value{kind: KindObjectID, oid: oid} }

// DateTime returns a timestamp value truncated to the millisecond precision the server stores.
func DateTime(t time.Time) Value {
	return Value{kind: KindDateTime, t: t.UTC().Truncate(time.Millisecond)}
}

// Raw returns a value carrying a driver BSON type with no dedicated kind,
// such as primitive.Binary or primitive.Decimal128.
func Raw(v interface{}) Value { return Value{kind: KindRaw, raw: v} }

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the integer held by v.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the float held by v.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsDocument returns the nested document held by v.
func (v Value) AsDocument() (Document, bool) { return v.doc, v.kind == KindDocument }

// AsArray returns the elements held by v.
func (v Value) AsArray() ([]Value, bool) { return v.arr, v.kind == KindArray }

// AsObjectID returns the object identifier held by v.
func (v Value) AsObjectID() (primitive.ObjectID, bool) { return v.oid, v.kind == KindObjectID }

// AsDateTime returns the timestamp held by v.
func (v Value) AsDateTime() (time.Time, bool) { return v.t, v.kind == KindDateTime }

// AsRaw returns the driver value held by v.
func (v Value) AsRaw() (interface{}, bool) { return v.raw, v.kind == KindRaw }

// Interface converts v into the plain Go value the driver serializes.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindDocument:
		return v.doc.Map()
	case KindArray:
		out := make([]interface{}, len(v.arr))
		for i, elem := range v.arr {
			out[i] = elem.Interface()
		}
		return out
	case KindObjectID:
		return v.oid
	case KindDateTime:
		return v.t
	case KindRaw:
		return v.raw
	default:
		return nil
	}
}

// Equal reports whether v and o hold the same variant and contents.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f || (math.IsNaN(v.f) && math.IsNaN(o.f))
	case KindString:
		return v.s == o.s
	case KindDocument:
		return v.doc.Equal(o.doc)
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindObjectID:
		return v.oid == o.oid
	case KindDateTime:
		return v.t.Equal(o.t)
	case KindRaw:
		return rawEqual(v.raw, o.raw)
	}
	return false
}

// rawEqual compares two driver values by their BSON type and encoding.
func rawEqual(a, b interface{}) bool {
	ta, da, errA := bson.MarshalValue(a)
	tb, db, errB := bson.MarshalValue(b)
	if errA != nil || errB != nil {
		return reflect.DeepEqual(a, b)
	}
	return ta == tb && bytes.Equal(da, db)
}

// String renders v for logs and CLI output.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindObjectID:
		return v.oid.Hex()
	case KindDateTime:
		return v.t.Format(time.RFC3339Nano)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("<%s>", v.kind)
	}
	return string(data)
}

// FromInterface converts a value produced by the driver or by JSON decoding into a Value.
func FromInterface(in interface{}) (Value, error) {
	switch x := in.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint:
		return fromUint(uint64(x))
	case uint64:
		return fromUint(x)
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case json.Number:
		return fromJSONNumber(x)
	case string:
		return String(x), nil
	case primitive.ObjectID:
		return ObjectID(x), nil
	case primitive.DateTime:
		return DateTime(x.Time()), nil
	case time.Time:
		return DateTime(x), nil
	case primitive.Null, primitive.Undefined:
		return Null(), nil
	case primitive.Binary, primitive.Decimal128, primitive.Timestamp, primitive.Regex,
		primitive.JavaScript, primitive.CodeWithScope, primitive.Symbol, primitive.DBPointer,
		primitive.MinKey, primitive.MaxKey:
		return Raw(x), nil
	case []byte:
		return Raw(primitive.Binary{Data: x}), nil
	case primitive.D:
		doc := make(Document, len(x))
		for _, elem := range x {
			val, err := FromInterface(elem.Value)
			if err != nil {
				return Value{}, fmt.Errorf("field %q: %w", elem.Key, err)
			}
			doc[elem.Key] = val
		}
		return Doc(doc), nil
	case primitive.M:
		return fromMap(x)
	case map[string]interface{}:
		return fromMap(x)
	case Document:
		return Doc(x), nil
	case primitive.A:
		return fromSlice(x)
	case []interface{}:
		return fromSlice(x)
	}
	return Value{}, domainerrors.NewUnsupportedValueTypeError(fmt.Sprintf("%T", in))
}

func fromMap(m map[string]interface{}) (Value, error) {
	doc, err := DocumentFromMap(m)
	if err != nil {
		return Value{}, err
	}
	return Doc(doc), nil
}

func fromSlice(in []interface{}) (Value, error) {
	out := make([]Value, len(in))
	for i, elem := range in {
		val, err := FromInterface(elem)
		if err != nil {
			return Value{}, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = val
	}
	return Array(out...), nil
}

// fromUint keeps integers beyond the int64 range exact as a decimal.
func fromUint(u uint64) (Value, error) {
	if u <= math.MaxInt64 {
		return Int(int64(u)), nil
	}
	dec, err := primitive.ParseDecimal128(strconv.FormatUint(u, 10))
	if err != nil {
		return Value{}, err
	}
	return Raw(dec), nil
}

func fromJSONNumber(n json.Number) (Value, error) {
	if i, err := n.Int64(); err == nil {
		return Int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return Value{}, domainerrors.NewBadRequestError("invalid number", n.String())
	}
	return Float(f), nil
}

// MarshalJSON encodes v. Object identifiers and timestamps use the
// {"$oid": ...} and {"$date": ...} forms so they survive a round trip.
// Raw values use relaxed MongoDB Extended JSON.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindRaw:
		return marshalExtJSONValue(v.raw)
	case KindObjectID:
		return json.Marshal(map[string]string{"$oid": v.oid.Hex()})
	case KindDateTime:
		return json.Marshal(map[string]string{"$date": v.t.Format(time.RFC3339Nano)})
	case KindDocument:
		return json.Marshal(v.doc)
	case KindArray:
		return json.Marshal(v.arr)
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return nil, fmt.Errorf("cannot encode %v as JSON", v.f)
		}
		// Keep a fraction or exponent so integral floats decode back as floats.
		out := strconv.FormatFloat(v.f, 'g', -1, 64)
		if !strings.ContainsAny(out, ".eE") {
			out += ".0"
		}
		return []byte(out), nil
	}
	return json.Marshal(v.Interface())
}

// UnmarshalJSON decodes any JSON value into v. Integral numbers become
// KindInt, everything else numeric becomes KindFloat.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	val, err := fromJSON(raw)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func fromJSON(raw interface{}) (Value, error) {
	switch x := raw.(type) {
	case map[string]interface{}:
		if len(x) == 1 {
			if hex, ok := x["$oid"].(string); ok {
				oid, err := primitive.ObjectIDFromHex(hex)
				if err != nil {
					return Value{}, domainerrors.NewBadRequestError("invalid $oid", hex)
				}
				return ObjectID(oid), nil
			}
			if ts, ok := x["$date"].(string); ok {
				t, err := time.Parse(time.RFC3339Nano, ts)
				if err != nil {
					return Value{}, domainerrors.NewBadRequestError("invalid $date", ts)
				}
				return DateTime(t), nil
			}
		}
		if isExtJSONWrapper(x) {
			return fromExtJSON(x)
		}
		doc := make(Document, len(x))
		for key, elem := range x {
			val, err := fromJSON(elem)
			if err != nil {
				return Value{}, err
			}
			doc[key] = val
		}
		return Doc(doc), nil
	case []interface{}:
		out := make([]Value, len(x))
		for i, elem := range x {
			val, err := fromJSON(elem)
			if err != nil {
				return Value{}, err
			}
			out[i] = val
		}
		return Array(out...), nil
	}
	return FromInterface(raw)
}
