package enums

// ExchangeType is the type of an exchange. Most values ship with modern
// RabbitMQ distributions; types provided by 3rd party plugins are carried as
// arbitrary strings and must be echoed back unchanged on redeclare.
type ExchangeType string

const (
	ExchangeTypeFanout  ExchangeType = "fanout"
	ExchangeTypeTopic   ExchangeType = "topic"
	ExchangeTypeDirect  ExchangeType = "direct"
	ExchangeTypeHeaders ExchangeType = "headers"

	ExchangeTypeConsistentHashing ExchangeType = "x-consistent-hash"
	// ships with the rabbitmq-sharding plugin
	ExchangeTypeModulusHash          ExchangeType = "x-modulus-hash"
	ExchangeTypeRandom               ExchangeType = "x-random"
	ExchangeTypeLocalRandom          ExchangeType = "x-local-random"
	ExchangeTypeJMSTopic             ExchangeType = "x-jms-topic"
	ExchangeTypeRecentHistory        ExchangeType = "x-recent-history"
	ExchangeTypeDelayedMessage       ExchangeType = "x-delayed-message"
	ExchangeTypeMessageDeduplication ExchangeType = "x-message-deduplication"
)

// KnownExchangeTypes lists every exchange type with a canonical wire string.
var KnownExchangeTypes = []ExchangeType{
	ExchangeTypeFanout,
	ExchangeTypeTopic,
	ExchangeTypeDirect,
	ExchangeTypeHeaders,
	ExchangeTypeConsistentHashing,
	ExchangeTypeModulusHash,
	ExchangeTypeRandom,
	ExchangeTypeLocalRandom,
	ExchangeTypeJMSTopic,
	ExchangeTypeRecentHistory,
	ExchangeTypeDelayedMessage,
	ExchangeTypeMessageDeduplication,
}

// ParseExchangeType never fails: unknown values are returned as plugin types.
func ParseExchangeType(s string) ExchangeType {
	return ExchangeType(s)
}

func (t ExchangeType) String() string {
	return string(t)
}

// IsKnown reports whether t is one of KnownExchangeTypes.
func (t ExchangeType) IsKnown() bool {
	for _, known := range KnownExchangeTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsPlugin reports whether t is anything other than the four AMQP 0-9-1 core types.
func (t ExchangeType) IsPlugin() bool {
	switch t {
	case ExchangeTypeFanout, ExchangeTypeTopic, ExchangeTypeDirect, ExchangeTypeHeaders:
		return false
	default:
		return true
	}
}
