package responses

import "github.com/octabyte/bm-rabbitmq-api/enums"

// RuntimeParameter is a component-specific parameter such as a federation
// upstream or a shovel.
type RuntimeParameter struct {
	Name      string                `json:"name"`
	VHost     string                `json:"vhost"`
	Component string                `json:"component"`
	Value     RuntimeParameterValue `json:"value"`
}

// GlobalRuntimeParameter is a cluster-wide parameter such as cluster_name.
type GlobalRuntimeParameter struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

type Policy struct {
	Name       string             `json:"name"`
	VHost      string             `json:"vhost"`
	Pattern    string             `json:"pattern"`
	ApplyTo    enums.PolicyTarget `json:"apply-to"`
	Priority   int16              `json:"priority"`
	Definition PolicyDefinition   `json:"definition"`
}

// AppliesTo reports whether the policy covers objects of the given target,
// treating "all" and the queue umbrella target as supersets.
func (p Policy) AppliesTo(target enums.PolicyTarget) bool {
	switch p.ApplyTo {
	case enums.PolicyTargetAll:
		return true
	case enums.PolicyTargetQueues:
		return target == enums.PolicyTargetQueues || target == enums.PolicyTargetClassicQueues ||
			target == enums.PolicyTargetQuorumQueues || target == enums.PolicyTargetStreams
	default:
		return p.ApplyTo == target
	}
}
