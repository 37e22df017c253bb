package requests

import (
	"math"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/octabyte/bm-rabbitmq-api/utils"
)

// XArguments is an open bag of optional, broker- or plugin-specific
// arguments attached to a queue, exchange or binding (x-max-length,
// x-dead-letter-exchange, x-queue-type and so on).
type XArguments map[string]interface{}

// QueueTypeArgument is the argument key carrying the queue type.
const QueueTypeArgument = "x-queue-type"

// Clone returns a shallow copy. A nil receiver yields nil.
func (a XArguments) Clone() XArguments {
	if a == nil {
		return nil
	}
	out := make(XArguments, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Merge returns a new map holding the entries of a with overlay applied on
// top. On overlapping keys the overlay's value wins. Neither input is modified.
func (a XArguments) Merge(overlay XArguments) XArguments {
	out := make(XArguments, len(a)+len(overlay))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}

// Table converts the arguments into an amqp.Table so the same bundle can be
// declared over AMQP 0-9-1. Nested maps become nested tables.
func (a XArguments) Table() amqp.Table {
	if a == nil {
		return nil
	}
	table := make(amqp.Table, len(a))
	for k, v := range a {
		table[k] = toTableValue(v)
	}
	return table
}

func toTableValue(v interface{}) interface{} {
	switch value := v.(type) {
	case XArguments:
		return value.Table()
	case map[string]interface{}:
		return XArguments(value).Table()
	case []interface{}:
		out := make([]interface{}, len(value))
		for i, item := range value {
			out[i] = toTableValue(item)
		}
		return out
	case []string:
		out := make([]interface{}, len(value))
		for i, item := range value {
			out[i] = item
		}
		return out
	case int:
		return int64(value)
	case uint:
		return int64(value)
	case uint32:
		return int64(value)
	case uint64:
		return int64(value)
	case float32:
		return wholeToInt(float64(value))
	case float64:
		return wholeToInt(value)
	default:
		return v
	}
}

// wholeToInt narrows a float holding a whole number to int64. JSON decoding
// yields float64 for every number, and the broker rejects doubles for
// integer arguments such as x-max-length.
func wholeToInt(f float64) interface{} {
	if f != math.Trunc(f) || math.IsInf(f, 0) || f < math.MinInt64 || f >= math.MaxInt64 {
		return f
	}
	return int64(f)
}

// Encode renders a declaration bundle as the JSON payload expected by the
// management API.
func Encode(v interface{}) ([]byte, error) {
	return utils.Marshal(v)
}
