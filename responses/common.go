package responses

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/octabyte/bm-rabbitmq-api/utils"
)

// TagList is a list of tags. Older servers send it as a comma-separated
// string, newer ones as an array; both decode. It always encodes as an array.
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	value := gjson.ParseBytes(data)
	switch {
	case value.Type == gjson.Null:
		*t = nil
	case value.Type == gjson.String:
		tags := TagList{}
		for _, tag := range strings.Split(value.String(), ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
		*t = tags
	case value.IsArray():
		var tags []string
		if err := utils.Unmarshal(data, &tags); err != nil {
			return err
		}
		*t = tags
	default:
		return &DecodeError{Type: "TagList", Err: fmt.Errorf("expected array or string, got %s", value.Type)}
	}
	return nil
}

func (t TagList) Contains(tag string) bool {
	for _, v := range t {
		if v == tag {
			return true
		}
	}
	return false
}

func (t TagList) String() string {
	return formatList(t)
}

// NodeList is a list of cluster node names.
type NodeList []string

func (n NodeList) String() string {
	return formatList(n)
}

// XArguments are the optional arguments reported for a queue, exchange,
// binding or consumer.
type XArguments map[string]interface{}

func (a XArguments) String() string {
	return formatEntries(a)
}

// EnforcedLimits maps a limit name (max-connections, max-queues, ...) to its value.
type EnforcedLimits map[string]interface{}

func (l EnforcedLimits) String() string {
	return formatEntries(l)
}

// TagMap holds cluster or node tags. Servers before 4.0 do not report it.
type TagMap map[string]interface{}

func (m TagMap) String() string {
	return formatEntries(m)
}

// PolicyDefinition holds the keys applied by a policy. nil when the server sent null.
type PolicyDefinition map[string]interface{}

func (d PolicyDefinition) String() string {
	return formatEntries(d)
}

// RuntimeParameterValue is the component-specific body of a runtime parameter.
// An array payload decodes to an empty value.
type RuntimeParameterValue map[string]interface{}

func (v *RuntimeParameterValue) UnmarshalJSON(data []byte) error {
	m, err := decodeMapOrSeq(data)
	if err != nil {
		return err
	}
	*v = m
	return nil
}

func (v RuntimeParameterValue) String() string {
	return formatEntries(v)
}

// MessageProperties are the basic properties of a fetched message.
// An array payload decodes to an empty value.
type MessageProperties map[string]interface{}

func (p *MessageProperties) UnmarshalJSON(data []byte) error {
	m, err := decodeMapOrSeq(data)
	if err != nil {
		return err
	}
	*p = m
	return nil
}

func (p MessageProperties) String() string {
	return formatEntries(p)
}
