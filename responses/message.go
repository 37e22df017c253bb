package responses

import (
	"fmt"
	"strings"
)

// GetMessage is a message fetched from a queue through the API.
type GetMessage struct {
	PayloadBytes    uint32            `json:"payload_bytes"`
	Redelivered     bool              `json:"redelivered"`
	Exchange        string            `json:"exchange"`
	RoutingKey      string            `json:"routing_key"`
	MessageCount    uint32            `json:"message_count"`
	Properties      MessageProperties `json:"properties"`
	Payload         string            `json:"payload"`
	PayloadEncoding string            `json:"payload_encoding"`
}

func (m GetMessage) String() string {
	return fmt.Sprintf("payload: %s\nexchange: %s\nrouting key: %s\nredelivered: %t\nproperties: %s\n",
		m.Payload, m.Exchange, m.RoutingKey, m.Redelivered, m.Properties)
}

type MessageList []GetMessage

func (l MessageList) String() string {
	var b strings.Builder
	for _, m := range l {
		b.WriteString(m.String())
		b.WriteString("\n")
	}
	return b.String()
}

// MessageRouted is the result of publishing through the API.
type MessageRouted struct {
	Routed bool `json:"routed"`
}

func (r MessageRouted) String() string {
	if r.Routed {
		return "Message published and routed successfully"
	}
	return "Message published but NOT routed"
}
