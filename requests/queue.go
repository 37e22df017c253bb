package requests

import "github.com/octabyte/bm-rabbitmq-api/enums"

// QueueParams holds the properties used at queue declaration time.
// See https://www.rabbitmq.com/docs/queues
type QueueParams struct {
	// Name: The name of the queue. The server rejects names longer than 255 bytes.
	Name string `json:"name"`
	// Type: classic, quorum or stream. It travels in Arguments as x-queue-type.
	Type enums.QueueType `json:"-"`
	// Durable: Indicates whether the queue survives a broker restart.
	Durable bool `json:"durable"`
	// AutoDelete: Indicates whether the queue is deleted when its last consumer unsubscribes.
	AutoDelete bool `json:"auto_delete"`
	// Exclusive: Indicates whether the queue is used by only one connection.
	Exclusive bool `json:"exclusive"`
	// Arguments: Optional queue arguments, always including x-queue-type.
	// The commonly used ones are listed below:
	// - `x-message-ttl`: The time-to-live for messages in milliseconds.
	// - `x-max-length`: The maximum number of ready messages.
	// - `x-max-length-bytes`: The maximum total size of ready messages.
	// - `x-overflow`: drop-head, reject-publish or reject-publish-dlx.
	// - `x-dead-letter-exchange`: The exchange dead-lettered messages are republished to.
	// - `x-dead-letter-routing-key`: The routing key used when dead-lettering.
	// - `x-max-age`: Retention for streams, e.g. "7D".
	Arguments XArguments `json:"arguments,omitempty"`
}

// NewQueueParams builds a fully specified queue declaration.
func NewQueueParams(name string, queueType enums.QueueType, durable, autoDelete, exclusive bool, optionalArgs XArguments) QueueParams {
	return QueueParams{
		Name:       name,
		Type:       queueType,
		Durable:    durable,
		AutoDelete: autoDelete,
		Exclusive:  exclusive,
		Arguments:  CombinedArgs(optionalArgs, queueType),
	}
}

// NewQuorumQueueParams declares a durable quorum queue.
func NewQuorumQueueParams(name string, optionalArgs XArguments) QueueParams {
	return NewQueueParams(name, enums.QueueTypeQuorum, true, false, false, optionalArgs)
}

// NewStreamParams declares a durable stream.
func NewStreamParams(name string, optionalArgs XArguments) QueueParams {
	return NewQueueParams(name, enums.QueueTypeStream, true, false, false, optionalArgs)
}

// NewDurableClassicQueueParams declares a durable classic queue.
func NewDurableClassicQueueParams(name string, optionalArgs XArguments) QueueParams {
	return NewQueueParams(name, enums.QueueTypeClassic, true, false, false, optionalArgs)
}

// CombinedArgs starts from a map holding only the x-queue-type marker and
// merges optionalArgs on top of it. An x-queue-type supplied by the caller
// therefore replaces the marker derived from queueType.
func CombinedArgs(optionalArgs XArguments, queueType enums.QueueType) XArguments {
	defaults := XArguments{QueueTypeArgument: queueType.String()}
	return defaults.Merge(optionalArgs)
}
