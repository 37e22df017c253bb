// Package responses holds the resource snapshots returned by the RabbitMQ
// management API and the tolerant decoders for them.
package responses

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/octabyte/bm-rabbitmq-api/utils"
)

// undefined is reported for string fields some server versions leave out.
const undefined = "?"

// Decode parses a management API payload into T. Malformed input is reported
// as a *DecodeError naming the target type and, when known, the field.
func Decode[T any](data []byte) (T, error) {
	var out T
	if err := utils.Unmarshal(data, &out); err != nil {
		return out, toDecodeError(fmt.Sprintf("%T", out), data, reflect.TypeOf(&out).Elem(), err)
	}
	return out, nil
}

// toDecodeError wraps err for a failed decode of data into target. Errors
// that already name a field pass through unchanged; otherwise the field is
// located by decoding the members of data one at a time.
func toDecodeError(typeName string, data []byte, target reflect.Type, err error) error {
	var nested *DecodeError
	if errors.As(err, &nested) && nested.Field != "" {
		return nested
	}

	out := &DecodeError{Type: typeName, Err: err}
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case nested != nil:
		out.Offset = nested.Offset
		out.Err = nested.Err
	case errors.As(err, &typeErr):
		out.Field = typeErr.Field
		out.Offset = typeErr.Offset
	case errors.As(err, &syntaxErr):
		out.Offset = syntaxErr.Offset
	}

	if gjson.ValidBytes(data) {
		if path := locate(data, target); path != "" {
			out.Field = path
		}
	}
	return out
}

// locate returns the dotted JSON path (object keys and array indexes) of the
// first member of data that does not decode into its Go type, or "" when no
// single member is at fault.
func locate(data []byte, target reflect.Type) string {
	for target.Kind() == reflect.Pointer {
		target = target.Elem()
	}

	value := gjson.ParseBytes(data)
	path := ""
	switch {
	case target.Kind() == reflect.Struct && value.IsObject():
		value.ForEach(func(key, member gjson.Result) bool {
			fieldType, ok := jsonFieldType(target, key.String())
			if !ok || decodes([]byte(member.Raw), fieldType) {
				return true
			}
			path = joinPath(key.String(), locate([]byte(member.Raw), fieldType))
			return false
		})
	case target.Kind() == reflect.Slice && value.IsArray():
		index := 0
		value.ForEach(func(_, item gjson.Result) bool {
			if decodes([]byte(item.Raw), target.Elem()) {
				index++
				return true
			}
			path = joinPath(strconv.Itoa(index), locate([]byte(item.Raw), target.Elem()))
			return false
		})
	}
	return path
}

func decodes(data []byte, target reflect.Type) bool {
	return utils.Unmarshal(data, reflect.New(target).Interface()) == nil
}

// jsonFieldType finds the type of the exported field of t that the JSON key
// maps to, honouring json tags.
func jsonFieldType(t reflect.Type, key string) (reflect.Type, bool) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		switch {
		case name == "-":
			continue
		case name == "" && strings.EqualFold(field.Name, key):
			return field.Type, true
		case name == key:
			return field.Type, true
		}
	}
	return nil, false
}

func joinPath(head, tail string) string {
	if tail == "" {
		return head
	}
	return head + "." + tail
}

// decodeMapOrSeq decodes an object into its entries. Legacy payloads send
// an empty array where an object is expected; any array yields an empty map.
// null stays nil.
func decodeMapOrSeq(data []byte) (map[string]interface{}, error) {
	value := gjson.ParseBytes(data)
	switch {
	case value.IsArray():
		return map[string]interface{}{}, nil
	case value.Type == gjson.Null:
		return nil, nil
	}

	var m map[string]interface{}
	if err := utils.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func formatList(xs []string) string {
	return "[" + strings.Join(xs, ", ") + "]"
}

// formatEntries renders one "key: value" line per entry, sorted by key, with
// values in their JSON form.
func formatEntries(m map[string]interface{}) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		value, err := utils.Marshal(m[k])
		if err != nil {
			value = []byte(fmt.Sprint(m[k]))
		}
		fmt.Fprintf(&b, "%s: %s\n", k, value)
	}
	return b.String()
}
