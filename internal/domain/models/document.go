package models

import (
	"fmt"
	"sort"
)

// IDField is the field the server uses as the document primary key.
const IDField = "_id"

// Document is an unordered mapping of field names to values. No schema is enforced.
type Document map[string]Value

// DocumentFromMap converts a decoded driver or JSON map into a Document.
func DocumentFromMap(m map[string]interface{}) (Document, error) {
	doc := make(Document, len(m))
	for key, raw := range m {
		val, err := FromInterface(raw)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		doc[key] = val
	}
	return doc, nil
}

// Map converts d into a plain map the driver can serialize.
func (d Document) Map() map[string]interface{} {
	out := make(map[string]interface{}, len(d))
	for key, val := range d {
		out[key] = val.Interface()
	}
	return out
}

// Equal reports whether d and o hold the same fields with equal values.
func (d Document) Equal(o Document) bool {
	if len(d) != len(o) {
		return false
	}
	for key, val := range d {
		other, ok := o[key]
		if !ok || !val.Equal(other) {
			return false
		}
	}
	return true
}

// Without returns a copy of d with the named fields removed.
func (d Document) Without(fields ...string) Document {
	out := make(Document, len(d))
	for key, val := range d {
		out[key] = val
	}
	for _, field := range fields {
		delete(out, field)
	}
	return out
}

// Keys returns the field names of d in sorted order.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d))
	for key := range d {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
