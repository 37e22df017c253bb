package responses

import (
	"reflect"

	"github.com/octabyte/bm-rabbitmq-api/utils"
)

// HealthCheckFailureDetails is the body of a failed health check. It is
// either *ClusterAlarmCheckDetails or *QuorumCriticalityCheckDetails.
type HealthCheckFailureDetails interface {
	FailureReason() string
	healthCheckFailure()
}

// ClusterAlarmCheckDetails lists the resource alarms in effect.
type ClusterAlarmCheckDetails struct {
	Status string          `json:"status,omitempty"`
	Reason string          `json:"reason"`
	Alarms []ResourceAlarm `json:"alarms"`
}

func (d *ClusterAlarmCheckDetails) FailureReason() string { return d.Reason }
func (*ClusterAlarmCheckDetails) healthCheckFailure() {}

type ResourceAlarm struct {
	Node     string `json:"node"`
	Resource string `json:"resource"`
}

// QuorumCriticalityCheckDetails lists the queues that would lose quorum if
// the target node were shut down.
type QuorumCriticalityCheckDetails struct {
	Status string                  `json:"status,omitempty"`
	Reason string                  `json:"reason"`
	Queues []QuorumEndangeredQueue `json:"queues"`
}

func (d *QuorumCriticalityCheckDetails) FailureReason() string { return d.Reason }
func (*QuorumCriticalityCheckDetails) healthCheckFailure() {}

type QuorumEndangeredQueue struct {
	Name      string `json:"name"`
	VHost     string `json:"virtual_host"`
	QueueType string `json:"type"`
}

// DecodeHealthCheckFailure picks the failure shape from the evidence fields
// present in data: "alarms" or "queues". There is no discriminator field.
func DecodeHealthCheckFailure(data []byte) (HealthCheckFailureDetails, error) {
	const typeName = "HealthCheckFailureDetails"
	if !utils.IsJSONObject(data) {
		return nil, &DecodeError{Type: typeName, Err: ErrUnknownHealthCheckShape}
	}

	var details HealthCheckFailureDetails
	switch {
	case utils.HasJSONField(data, "alarms"):
		details = &ClusterAlarmCheckDetails{}
	case utils.HasJSONField(data, "queues"):
		details = &QuorumCriticalityCheckDetails{}
	default:
		return nil, &DecodeError{Type: typeName, Err: ErrUnknownHealthCheckShape}
	}

	if err := utils.Unmarshal(data, details); err != nil {
		return nil, toDecodeError(typeName, data, reflect.TypeOf(details), err)
	}
	return details, nil
}
