package requests

import "github.com/octabyte/bm-rabbitmq-api/enums"

// VirtualHostParams are the properties of a virtual host to be created or updated.
type VirtualHostParams struct {
	Name string `json:"name"`
	// Description: what purpose does this virtual host serve?
	Description *string `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	// DefaultQueueType: used when clients declare queues without x-queue-type.
	DefaultQueueType *enums.QueueType `json:"default_queue_type,omitempty"`
	Tracing          bool             `json:"tracing"`
}

// NamedVirtualHost returns params with only the name set.
func NamedVirtualHost(name string) VirtualHostParams {
	return VirtualHostParams{Name: name}
}

// LimitTarget is satisfied by the two resource-limit vocabularies.
type LimitTarget interface {
	enums.VirtualHostLimitTarget | enums.UserLimitTarget
	String() string
}

// EnforcedLimitParams is a resource usage limit to be enforced on a
// virtual host or a user. A negative value removes the cap.
type EnforcedLimitParams[T LimitTarget] struct {
	Kind  T     `json:"kind"`
	Value int64 `json:"value"`
}

func NewEnforcedLimitParams[T LimitTarget](kind T, value int64) EnforcedLimitParams[T] {
	return EnforcedLimitParams[T]{Kind: kind, Value: value}
}

// UserParams are the properties of a user to be created or updated.
// Tags is the comma-separated list the API expects, e.g. "administrator,monitoring".
type UserParams struct {
	Name         string `json:"name"`
	PasswordHash string `json:"password_hash"`
	Tags         string `json:"tags"`
}

// RuntimeParameterValue is the component-specific body of a runtime parameter.
type RuntimeParameterValue map[string]interface{}

// RuntimeParameterDefinition represents a runtime parameter
// (federation upstreams, shovels and so on).
type RuntimeParameterDefinition struct {
	Name      string                `json:"name"`
	VHost     string                `json:"vhost"`
	Component string                `json:"component"`
	Value     RuntimeParameterValue `json:"value"`
}

// PolicyDefinition holds the keys a policy applies, e.g. max-length or
// dead-letter-exchange.
type PolicyDefinition map[string]interface{}

// PolicyParams represents a policy to be declared.
type PolicyParams struct {
	VHost      string             `json:"vhost"`
	Name       string             `json:"name"`
	Pattern    string             `json:"pattern"`
	ApplyTo    enums.PolicyTarget `json:"apply-to"`
	Priority   int32              `json:"priority"`
	Definition PolicyDefinition   `json:"definition"`
}

// Permissions grants a user access to a virtual host. Each of Configure, Read
// and Write is a regular expression over resource names.
type Permissions struct {
	User      string `json:"user"`
	VHost     string `json:"vhost"`
	Configure string `json:"configure"`
	Read      string `json:"read"`
	Write     string `json:"write"`
}

// BindingParams binds Source (an exchange) to Destination.
// Only RoutingKey and Arguments travel in the request body; the rest
// identify the binding in the request path.
type BindingParams struct {
	VHost           string                       `json:"-"`
	Source          string                       `json:"-"`
	Destination     string                       `json:"-"`
	DestinationType enums.BindingDestinationType `json:"-"`
	RoutingKey      string                       `json:"routing_key"`
	Arguments       XArguments                   `json:"arguments,omitempty"`
}

// NewQueueBindingParams binds an exchange to a queue.
func NewQueueBindingParams(vhost, exchange, queue, routingKey string, optionalArgs XArguments) BindingParams {
	return BindingParams{
		VHost:           vhost,
		Source:          exchange,
		Destination:     queue,
		DestinationType: enums.BindingDestinationTypeQueue,
		RoutingKey:      routingKey,
		Arguments:       optionalArgs,
	}
}

// NewExchangeBindingParams binds an exchange to another exchange.
func NewExchangeBindingParams(vhost, source, destination, routingKey string, optionalArgs XArguments) BindingParams {
	return BindingParams{
		VHost:           vhost,
		Source:          source,
		Destination:     destination,
		DestinationType: enums.BindingDestinationTypeExchange,
		RoutingKey:      routingKey,
		Arguments:       optionalArgs,
	}
}
