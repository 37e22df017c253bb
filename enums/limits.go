package enums

// VirtualHostLimitTarget names a resource cap enforced on a virtual host.
type VirtualHostLimitTarget string

const (
	VirtualHostLimitTargetMaxConnections VirtualHostLimitTarget = "max-connections"
	VirtualHostLimitTargetMaxQueues      VirtualHostLimitTarget = "max-queues"
)

var KnownVirtualHostLimitTargets = []VirtualHostLimitTarget{
	VirtualHostLimitTargetMaxConnections,
	VirtualHostLimitTargetMaxQueues,
}

// ParseVirtualHostLimitTarget maps unknown values to max-connections.
func ParseVirtualHostLimitTarget(s string) VirtualHostLimitTarget {
	if VirtualHostLimitTarget(s) == VirtualHostLimitTargetMaxQueues {
		return VirtualHostLimitTargetMaxQueues
	}
	return VirtualHostLimitTargetMaxConnections
}

func (t VirtualHostLimitTarget) String() string {
	return string(ParseVirtualHostLimitTarget(string(t)))
}

func (t VirtualHostLimitTarget) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *VirtualHostLimitTarget) UnmarshalText(text []byte) error {
	*t = ParseVirtualHostLimitTarget(string(text))
	return nil
}

// UserLimitTarget names a resource cap enforced on a user.
type UserLimitTarget string

const (
	UserLimitTargetMaxConnections UserLimitTarget = "max-connections"
	UserLimitTargetMaxChannels    UserLimitTarget = "max-channels"
)

var KnownUserLimitTargets = []UserLimitTarget{
	UserLimitTargetMaxConnections,
	UserLimitTargetMaxChannels,
}

// ParseUserLimitTarget maps unknown values to max-connections.
func ParseUserLimitTarget(s string) UserLimitTarget {
	if UserLimitTarget(s) == UserLimitTargetMaxChannels {
		return UserLimitTargetMaxChannels
	}
	return UserLimitTargetMaxConnections
}

func (t UserLimitTarget) String() string {
	return string(ParseUserLimitTarget(string(t)))
}

func (t UserLimitTarget) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *UserLimitTarget) UnmarshalText(text []byte) error {
	*t = ParseUserLimitTarget(string(text))
	return nil
}
