package responses

import "github.com/octabyte/bm-rabbitmq-api/utils"

// Connection represents a client connection.
type Connection struct {
	// Name identifies the connection; use it to close the connection.
	Name string `json:"name"`
	// Node the client is connected to.
	Node string `json:"node"`
	// State defaults to "?" when the server omits it.
	State string `json:"state"`
	// Protocol, e.g. "AMQP 0-9-1".
	Protocol    string `json:"protocol"`
	Username    string `json:"user"`
	VHost       string `json:"vhost,omitempty"`
	ConnectedAt uint64 `json:"connected_at"`
	// ServerHostname and ServerPort are the address the client connected to.
	ServerHostname string `json:"host"`
	ServerPort     uint32 `json:"port"`
	ClientHostname string `json:"peer_host"`
	ClientPort     uint32 `json:"peer_port"`
	ChannelMax     uint16 `json:"channel_max"`
	ChannelCount   uint16 `json:"channels"`
	// ClientProperties are the metadata and capabilities the client announced.
	ClientProperties ClientProperties `json:"client_properties"`
}

func (c *Connection) UnmarshalJSON(data []byte) error {
	type plain Connection
	out := plain{State: undefined}
	if err := utils.Unmarshal(data, &out); err != nil {
		return err
	}
	*c = Connection(out)
	return nil
}

type ClientProperties struct {
	ConnectionName string              `json:"connection_name"`
	Platform       string              `json:"platform"`
	Product        string              `json:"product"`
	Version        string              `json:"version"`
	Capabilities   *ClientCapabilities `json:"capabilities,omitempty"`
}

type ClientCapabilities struct {
	AuthenticationFailureClose bool `json:"authentication_failure_close"`
	BasicNack                  bool `json:"basic.nack"`
	ConnectionBlocked          bool `json:"connection.blocked"`
	ConsumerCancelNotify       bool `json:"consumer_cancel_notify"`
	ExchangeToExchangeBindings bool `json:"exchange_exchange_bindings"`
	PublisherConfirms          bool `json:"publisher_confirms"`
}

// UserConnection is the short connection form listed per user.
type UserConnection struct {
	Name     string `json:"name"`
	Node     string `json:"node"`
	Username string `json:"user"`
	VHost    string `json:"vhost"`
}

type Channel struct {
	ID                          uint32            `json:"number"`
	Name                        string            `json:"name"`
	ConnectionDetails           ConnectionDetails `json:"connection_details"`
	VHost                       string            `json:"vhost"`
	State                       string            `json:"state"`
	ConsumerCount               uint32            `json:"consumer_count"`
	HasPublisherConfirmsEnabled bool              `json:"confirm"`
	PrefetchCount               uint32            `json:"prefetch_count"`
	MessagesUnacknowledged      uint32            `json:"messages_unacknowledged"`
	MessagesUnconfirmed         uint32            `json:"messages_unconfirmed"`
}

type ConnectionDetails struct {
	Name           string `json:"name"`
	ClientHostname string `json:"peer_host"`
	ClientPort     uint32 `json:"peer_port"`
}

type ChannelDetails struct {
	ID             uint32 `json:"number"`
	Name           string `json:"name"`
	ConnectionName string `json:"connection_name"`
	Node           string `json:"node"`
	ClientHostname string `json:"peer_host"`
	ClientPort     uint32 `json:"peer_port"`
	Username       string `json:"user"`
}

type NameAndVirtualHost struct {
	Name  string `json:"name"`
	VHost string `json:"vhost"`
}

type Consumer struct {
	ConsumerTag   string     `json:"consumer_tag"`
	Active        bool       `json:"active"`
	ManualAck     bool       `json:"ack_required"`
	PrefetchCount uint32     `json:"prefetch_count"`
	Exclusive     bool       `json:"exclusive"`
	Arguments     XArguments `json:"arguments"`
	// DeliveryAckTimeout in milliseconds.
	DeliveryAckTimeout uint64             `json:"consumer_timeout"`
	Queue              NameAndVirtualHost `json:"queue"`
	ChannelDetails     ChannelDetails     `json:"channel_details"`
}
