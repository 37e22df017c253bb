package responses

import (
	"github.com/octabyte/bm-rabbitmq-api/enums"
	"github.com/octabyte/bm-rabbitmq-api/utils"
)

// QueueInfo is a queue as listed by the API, with its runtime metrics.
// Counters the server omits are zero.
type QueueInfo struct {
	Name       string     `json:"name"`
	VHost      string     `json:"vhost"`
	QueueType  string     `json:"type"`
	Durable    bool       `json:"durable"`
	AutoDelete bool       `json:"auto_delete"`
	Exclusive  bool       `json:"exclusive"`
	Arguments  XArguments `json:"arguments"`

	// Node defaults to "?" when the server omits it.
	Node  string `json:"node"`
	State string `json:"state"`
	// Leader, Members and Online are only reported for quorum queues and streams.
	Leader  *string  `json:"leader,omitempty"`
	Members NodeList `json:"members,omitempty"`
	Online  NodeList `json:"online,omitempty"`

	Memory               uint64  `json:"memory"`
	ConsumerCount        uint16  `json:"consumers"`
	ConsumerUtilisation  float32 `json:"consumer_utilisation"`
	ExclusiveConsumerTag *string `json:"exclusive_consumer_tag,omitempty"`
	Policy               *string `json:"policy,omitempty"`

	MessageBytes               uint64 `json:"message_bytes"`
	MessageBytesPersistent     uint64 `json:"message_bytes_persistent"`
	MessageBytesRAM            uint64 `json:"message_bytes_ram"`
	MessageBytesReady          uint64 `json:"message_bytes_ready"`
	MessageBytesUnacknowledged uint64 `json:"message_bytes_unacknowledged"`

	MessageCount               uint64 `json:"messages"`
	OnDiskMessageCount         uint64 `json:"messages_persistent"`
	InMemoryMessageCount       uint64 `json:"messages_ram"`
	UnacknowledgedMessageCount uint64 `json:"messages_unacknowledged"`
}

func (q *QueueInfo) UnmarshalJSON(data []byte) error {
	type plain QueueInfo
	out := plain{Node: undefined}
	if err := utils.Unmarshal(data, &out); err != nil {
		return err
	}
	*q = QueueInfo(out)
	return nil
}

// Type parses the reported queue type; unknown types read as classic.
func (q QueueInfo) Type() enums.QueueType {
	return enums.ParseQueueType(q.QueueType)
}

// QueueDefinition is a queue as it appears in a definitions export.
type QueueDefinition struct {
	Name       string     `json:"name"`
	VHost      string     `json:"vhost"`
	Durable    bool       `json:"durable"`
	AutoDelete bool       `json:"auto_delete"`
	Arguments  XArguments `json:"arguments"`
}

// ExchangeInfo describes an exchange. Plugin-provided types are kept verbatim.
type ExchangeInfo struct {
	Name         string             `json:"name"`
	VHost        string             `json:"vhost"`
	ExchangeType enums.ExchangeType `json:"type"`
	Durable      bool               `json:"durable"`
	AutoDelete   bool               `json:"auto_delete"`
	Internal     bool               `json:"internal"`
	Arguments    XArguments         `json:"arguments"`
}

// ExchangeDefinition is an exchange as it appears in a definitions export.
type ExchangeDefinition = ExchangeInfo

type BindingInfo struct {
	VHost           string                       `json:"vhost"`
	Source          string                       `json:"source"`
	Destination     string                       `json:"destination"`
	DestinationType enums.BindingDestinationType `json:"destination_type"`
	RoutingKey      string                       `json:"routing_key"`
	Arguments       XArguments                   `json:"arguments"`
	// PropertiesKey identifies the binding in DELETE paths; absent in exports.
	PropertiesKey *string `json:"properties_key,omitempty"`
}
