package responses

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/octabyte/bm-rabbitmq-api/enums"
	"github.com/octabyte/bm-rabbitmq-api/utils"
)

// ProcessID is an OS process identifier. Some servers report it as a
// numeric string; both forms decode.
type ProcessID uint32

func (p *ProcessID) UnmarshalJSON(data []byte) error {
	pid, err := parseProcessID(gjson.ParseBytes(data))
	if err != nil {
		return err
	}
	*p = pid
	return nil
}

func parseProcessID(value gjson.Result) (ProcessID, error) {
	var raw string
	switch value.Type {
	case gjson.Null:
		return 0, nil
	case gjson.Number:
		raw = value.Raw
	case gjson.String:
		raw = strings.TrimSpace(value.Str)
	default:
		return 0, fmt.Errorf("%w: %s", ErrNotNumeric, value.Raw)
	}

	pid, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, raw)
	}
	return ProcessID(pid), nil
}

// ClusterNode is a cluster member with its resource usage.
type ClusterNode struct {
	Name string `json:"name"`
	// Uptime in milliseconds.
	Uptime                        uint64    `json:"uptime"`
	RunQueue                      uint32    `json:"run_queue"`
	Processors                    uint32    `json:"processors"`
	OSPid                         ProcessID `json:"os_pid"`
	FDTotal                       uint32    `json:"fd_total"`
	TotalErlangProcesses          uint32    `json:"proc_total"`
	MemoryHighWatermark           uint64    `json:"mem_limit"`
	HasMemoryAlarmInEffect        bool      `json:"mem_alarm"`
	FreeDiskSpaceLowWatermark     uint64    `json:"disk_free_limit"`
	HasFreeDiskSpaceAlarmInEffect bool      `json:"disk_free_alarm"`
	RatesMode                     string    `json:"rates_mode"`
}

func (n *ClusterNode) UnmarshalJSON(data []byte) error {
	if pid := gjson.GetBytes(data, "os_pid"); pid.Exists() {
		if _, err := parseProcessID(pid); err != nil {
			return &DecodeError{Type: "ClusterNode", Field: "os_pid", Offset: int64(pid.Index), Err: err}
		}
	}

	type plain ClusterNode
	var out plain
	if err := utils.Unmarshal(data, &out); err != nil {
		return err
	}
	*n = ClusterNode(out)
	return nil
}

// ClusterIdentity carries the cluster name.
type ClusterIdentity struct {
	Name string `json:"name"`
}

type ChurnRates struct {
	ConnectionCreated uint32 `json:"connection_created"`
	ConnectionClosed  uint32 `json:"connection_closed"`
	QueueDeclared     uint32 `json:"queue_declared"`
	QueueCreated      uint32 `json:"queue_created"`
	QueueDeleted      uint32 `json:"queue_deleted"`
	ChannelCreated    uint32 `json:"channel_created"`
	ChannelClosed     uint32 `json:"channel_closed"`
}

func (r ChurnRates) String() string {
	return fmt.Sprintf(
		"connection_created: %d\nconnection_closed: %d\nqueue_declared: %d\nqueue_created: %d\nqueue_deleted: %d\nchannel_created: %d\nchannel_closed: %d\n",
		r.ConnectionCreated, r.ConnectionClosed, r.QueueDeclared, r.QueueCreated, r.QueueDeleted, r.ChannelCreated, r.ChannelClosed,
	)
}

type ObjectTotals struct {
	Connections uint64 `json:"connections"`
	Channels    uint64 `json:"channels"`
	Queues      uint64 `json:"queues"`
	Exchanges   uint64 `json:"exchanges"`
	Consumers   uint64 `json:"consumers"`
}

func (t ObjectTotals) String() string {
	return fmt.Sprintf("connections: %d\nchannels: %d\nqueues: %d\nexchanges: %d\nconsumers: %d\n",
		t.Connections, t.Channels, t.Queues, t.Exchanges, t.Consumers)
}

// Listener is a port a node accepts connections on.
type Listener struct {
	Node      string                  `json:"node"`
	Protocol  enums.SupportedProtocol `json:"protocol"`
	Port      uint32                  `json:"port"`
	Interface string                  `json:"ip_address"`
}

// Overview is the cluster-wide summary. ClusterTags and NodeTags are nil on
// servers before 4.0.
type Overview struct {
	ClusterName       string `json:"cluster_name"`
	Node              string `json:"node"`
	ErlangFullVersion string `json:"erlang_full_version"`
	ErlangVersion     string `json:"erlang_version"`
	RabbitMQVersion   string `json:"rabbitmq_version"`
	ProductName       string `json:"product_name"`
	ProductVersion    string `json:"product_version"`

	ClusterTags TagMap `json:"cluster_tags,omitempty"`
	NodeTags    TagMap `json:"node_tags,omitempty"`

	StatisticsDBEventQueue uint64       `json:"statistics_db_event_queue"`
	ChurnRates             ChurnRates   `json:"churn_rates"`
	ObjectTotals           ObjectTotals `json:"object_totals"`
	Listeners              []Listener   `json:"listeners,omitempty"`
}
