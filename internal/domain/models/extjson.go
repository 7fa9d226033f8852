package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	domainerrors "github.com/unifiedui/docstore-service/internal/domain/errors"
)

// extJSONKeys are the type wrappers of MongoDB Extended JSON v2 that have no
// dedicated Value kind. $oid and $date are decoded directly by fromJSON.
var extJSONKeys = map[string]bool{
	"$binary":            true,
	"$uuid":              true,
	"$numberDecimal":     true,
	"$numberLong":        true,
	"$numberInt":         true,
	"$numberDouble":      true,
	"$timestamp":         true,
	"$regularExpression": true,
	"$code":              true,
	"$symbol":            true,
	"$dbPointer":         true,
	"$minKey":            true,
	"$maxKey":            true,
	"$undefined":         true,
	"$date":              true,
}

// isExtJSONWrapper reports whether a decoded JSON object is an Extended JSON
// type wrapper rather than a document.
func isExtJSONWrapper(m map[string]interface{}) bool {
	switch len(m) {
	case 1:
		for key := range m {
			return extJSONKeys[key]
		}
	case 2:
		_, code := m["$code"]
		_, scope := m["$scope"]
		return code && scope
	}
	return false
}

func fromExtJSON(m map[string]interface{}) (Value, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return Value{}, domainerrors.NewBadRequestError("invalid extended JSON value", err.Error())
	}
	v, err := ParseExtJSONValue(string(data))
	if err != nil {
		return Value{}, domainerrors.NewBadRequestError("invalid extended JSON value", err.Error())
	}
	return FromInterface(v)
}

// ExtJSONValue renders a single driver value as relaxed Extended JSON.
func ExtJSONValue(v interface{}) (string, error) {
	data, err := marshalExtJSONValue(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ParseExtJSONValue decodes a single Extended JSON value, canonical or relaxed,
// into the driver's Go representation.
func ParseExtJSONValue(s string) (interface{}, error) {
	var doc bson.D
	if err := bson.UnmarshalExtJSON([]byte(`{"v":`+s+`}`), false, &doc); err != nil {
		return nil, err
	}
	if len(doc) != 1 || doc[0].Key != "v" {
		return nil, fmt.Errorf("not a single extended JSON value: %s", s)
	}
	return doc[0].Value, nil
}

// marshalExtJSONValue wraps v in a document because the driver only encodes
// documents to Extended JSON.
func marshalExtJSONValue(v interface{}) ([]byte, error) {
	data, err := bson.MarshalExtJSON(bson.D{{Key: "v", Value: v}}, false, false)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		V json.RawMessage `json:"v"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, err
	}
	return wrapper.V, nil
}
