package requests

import "github.com/octabyte/bm-rabbitmq-api/enums"

// ExchangeParams holds the properties used at exchange declaration time.
// Unlike QueueParams, the type is a top-level field and no argument is injected.
type ExchangeParams struct {
	Name       string             `json:"name"`
	Type       enums.ExchangeType `json:"type"`
	Durable    bool               `json:"durable"`
	AutoDelete bool               `json:"auto_delete"`
	Arguments  XArguments         `json:"arguments,omitempty"`
}

func NewExchangeParams(name string, exchangeType enums.ExchangeType, durable, autoDelete bool, optionalArgs XArguments) ExchangeParams {
	return ExchangeParams{
		Name:       name,
		Type:       exchangeType,
		Durable:    durable,
		AutoDelete: autoDelete,
		Arguments:  optionalArgs,
	}
}

// NewDurableExchangeParams declares a durable, non auto-delete exchange of any type,
// including plugin-provided ones.
func NewDurableExchangeParams(name string, exchangeType enums.ExchangeType, optionalArgs XArguments) ExchangeParams {
	return NewExchangeParams(name, exchangeType, true, false, optionalArgs)
}

func FanoutExchangeParams(name string, durable, autoDelete bool, optionalArgs XArguments) ExchangeParams {
	return NewExchangeParams(name, enums.ExchangeTypeFanout, durable, autoDelete, optionalArgs)
}

func DurableFanoutExchangeParams(name string, optionalArgs XArguments) ExchangeParams {
	return NewDurableExchangeParams(name, enums.ExchangeTypeFanout, optionalArgs)
}

func TopicExchangeParams(name string, durable, autoDelete bool, optionalArgs XArguments) ExchangeParams {
	return NewExchangeParams(name, enums.ExchangeTypeTopic, durable, autoDelete, optionalArgs)
}

func DurableTopicExchangeParams(name string, optionalArgs XArguments) ExchangeParams {
	return NewDurableExchangeParams(name, enums.ExchangeTypeTopic, optionalArgs)
}

func DirectExchangeParams(name string, durable, autoDelete bool, optionalArgs XArguments) ExchangeParams {
	return NewExchangeParams(name, enums.ExchangeTypeDirect, durable, autoDelete, optionalArgs)
}

func DurableDirectExchangeParams(name string, optionalArgs XArguments) ExchangeParams {
	return NewDurableExchangeParams(name, enums.ExchangeTypeDirect, optionalArgs)
}

func HeadersExchangeParams(name string, durable, autoDelete bool, optionalArgs XArguments) ExchangeParams {
	return NewExchangeParams(name, enums.ExchangeTypeHeaders, durable, autoDelete, optionalArgs)
}

func DurableHeadersExchangeParams(name string, optionalArgs XArguments) ExchangeParams {
	return NewDurableExchangeParams(name, enums.ExchangeTypeHeaders, optionalArgs)
}
