package enums

// QueueType is closed: any unrecognised value decodes as QueueTypeClassic.
type QueueType string

const (
	QueueTypeClassic QueueType = "classic" // Default RabbitMQ queue
	QueueTypeQuorum  QueueType = "quorum"  // Replicated, data safety
	QueueTypeStream  QueueType = "stream"  // Replicated, append-only log
)

var KnownQueueTypes = []QueueType{QueueTypeClassic, QueueTypeQuorum, QueueTypeStream}

func ParseQueueType(s string) QueueType {
	switch QueueType(s) {
	case QueueTypeClassic, QueueTypeQuorum, QueueTypeStream:
		return QueueType(s)
	default:
		return QueueTypeClassic
	}
}

// String returns the canonical wire string. Out-of-set values (including
// the zero value) are reported as the default.
func (t QueueType) String() string {
	return string(ParseQueueType(string(t)))
}

// IsReplicated reports whether queues of this type have a leader and members.
func (t QueueType) IsReplicated() bool {
	switch ParseQueueType(string(t)) {
	case QueueTypeQuorum, QueueTypeStream:
		return true
	default:
		return false
	}
}

func (t QueueType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *QueueType) UnmarshalText(text []byte) error {
	*t = ParseQueueType(string(text))
	return nil
}
