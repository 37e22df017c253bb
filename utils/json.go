package utils

import (
	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// Marshal encodes v as JSON. goccy/go-json honours the same struct tags and
// Marshaler/TextMarshaler interfaces as encoding/json.
func Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// IsJSONObject reports whether the top-level value in data is a JSON object.
func IsJSONObject(data []byte) bool {
	return gjson.ParseBytes(data).IsObject()
}

// IsJSONArray reports whether the top-level value in data is a JSON array.
func IsJSONArray(data []byte) bool {
	return gjson.ParseBytes(data).IsArray()
}

// HasJSONField reports whether the object in data has the given top-level key.
func HasJSONField(data []byte, field string) bool {
	return gjson.GetBytes(data, gjson.Escape(field)).Exists()
}
