package requests

// MessageProperties are AMQP 0-9-1 basic properties keyed by their
// management API names (content_type, delivery_mode, headers, ...).
type MessageProperties map[string]interface{}

// PayloadEncoding of published or fetched message bodies.
const (
	PayloadEncodingString = "string"
	PayloadEncodingBase64 = "base64"
	PayloadEncodingAuto   = "auto"
)

// PublishMessageParams is the body of POST /api/exchanges/{vhost}/{name}/publish.
type PublishMessageParams struct {
	RoutingKey      string            `json:"routing_key"`
	Payload         string            `json:"payload"`
	PayloadEncoding string            `json:"payload_encoding"`
	Properties      MessageProperties `json:"properties"`
}

// NewPublishMessageParams publishes a string payload. Properties is never nil
// because the API rejects a missing properties object.
func NewPublishMessageParams(routingKey, payload string, properties MessageProperties) PublishMessageParams {
	if properties == nil {
		properties = MessageProperties{}
	}
	return PublishMessageParams{
		RoutingKey:      routingKey,
		Payload:         payload,
		PayloadEncoding: PayloadEncodingString,
		Properties:      properties,
	}
}

// AckMode decides what happens to messages fetched through the API.
type AckMode string

const (
	AckModeAckRequeueTrue     AckMode = "ack_requeue_true"
	AckModeAckRequeueFalse    AckMode = "ack_requeue_false"
	AckModeRejectRequeueTrue  AckMode = "reject_requeue_true"
	AckModeRejectRequeueFalse AckMode = "reject_requeue_false"
)

// GetMessagesParams is the body of POST /api/queues/{vhost}/{name}/get.
type GetMessagesParams struct {
	Count    int     `json:"count"`
	AckMode  AckMode `json:"ackmode"`
	Encoding string  `json:"encoding"`
	// Truncate: payloads longer than this many bytes are cut; 0 means no limit.
	Truncate int `json:"truncate,omitempty"`
}

// NewGetMessagesParams fetches up to count messages and requeues them.
func NewGetMessagesParams(count int) GetMessagesParams {
	return GetMessagesParams{
		Count:    count,
		AckMode:  AckModeAckRequeueTrue,
		Encoding: PayloadEncodingAuto,
	}
}
