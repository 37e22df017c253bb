package enums

// PolicyTarget is the set of entities a policy applies to ("apply-to").
type PolicyTarget string

const (
	PolicyTargetQueues        PolicyTarget = "queues"
	PolicyTargetClassicQueues PolicyTarget = "classic_queues"
	PolicyTargetQuorumQueues  PolicyTarget = "quorum_queues"
	PolicyTargetStreams       PolicyTarget = "streams"
	PolicyTargetExchanges     PolicyTarget = "exchanges"
	PolicyTargetAll           PolicyTarget = "all"
)

var KnownPolicyTargets = []PolicyTarget{
	PolicyTargetQueues,
	PolicyTargetClassicQueues,
	PolicyTargetQuorumQueues,
	PolicyTargetStreams,
	PolicyTargetExchanges,
	PolicyTargetAll,
}

// ParsePolicyTarget maps unknown values to PolicyTargetQueues.
func ParsePolicyTarget(s string) PolicyTarget {
	for _, known := range KnownPolicyTargets {
		if PolicyTarget(s) == known {
			return known
		}
	}
	return PolicyTargetQueues
}

func (t PolicyTarget) String() string {
	return string(ParsePolicyTarget(string(t)))
}

func (t PolicyTarget) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *PolicyTarget) UnmarshalText(text []byte) error {
	*t = ParsePolicyTarget(string(text))
	return nil
}
