package responses

import "github.com/octabyte/bm-rabbitmq-api/enums"

// VirtualHostMetadata groups the optional virtual host properties.
type VirtualHostMetadata struct {
	Tags             TagList `json:"tags"`
	Description      *string `json:"description,omitempty"`
	DefaultQueueType *string `json:"default_queue_type,omitempty"`
}

// VirtualHost represents a virtual host. Description and DefaultQueueType
// are nil on servers that predate them.
type VirtualHost struct {
	Name             string               `json:"name"`
	Tags             TagList              `json:"tags,omitempty"`
	Description      *string              `json:"description,omitempty"`
	DefaultQueueType *string              `json:"default_queue_type,omitempty"`
	Metadata         *VirtualHostMetadata `json:"metadata,omitempty"`
}

// QueueType reports the default queue type, falling back to classic when the
// server did not send one.
func (v VirtualHost) QueueType() enums.QueueType {
	if v.DefaultQueueType == nil {
		return enums.QueueTypeClassic
	}
	return enums.ParseQueueType(*v.DefaultQueueType)
}

// VirtualHostLimits are the limits enforced on one virtual host.
type VirtualHostLimits struct {
	VHost  string         `json:"vhost"`
	Limits EnforcedLimits `json:"value"`
}

// UserLimits are the limits enforced on one user.
type UserLimits struct {
	Username string         `json:"user"`
	Limits   EnforcedLimits `json:"value"`
}
