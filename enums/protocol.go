package enums

// SupportedProtocol identifies a listener protocol as reported by the
// management API (overview listeners, node contexts).
// Values outside the known set are plugin or future protocols and are
// kept verbatim.
type SupportedProtocol string

const (
	SupportedProtocolClustering SupportedProtocol = "clustering"

	// AMQP 1.0 and AMQP 0-9-1 share a listener
	SupportedProtocolAMQP        SupportedProtocol = "amqp"
	SupportedProtocolAMQPWithTLS SupportedProtocol = "amqps"

	SupportedProtocolStream        SupportedProtocol = "stream"
	SupportedProtocolStreamWithTLS SupportedProtocol = "stream/ssl"

	SupportedProtocolMQTT                      SupportedProtocol = "mqtt"
	SupportedProtocolMQTTWithTLS               SupportedProtocol = "mqtt/ssl"
	SupportedProtocolMQTTOverWebSockets        SupportedProtocol = "http/web-mqtt"
	SupportedProtocolMQTTOverWebSocketsWithTLS SupportedProtocol = "https/web-mqtt"

	SupportedProtocolSTOMP                      SupportedProtocol = "stomp"
	SupportedProtocolSTOMPWithTLS               SupportedProtocol = "stomp/ssl"
	SupportedProtocolSTOMPOverWebSockets        SupportedProtocol = "http/web-stomp"
	SupportedProtocolSTOMPOverWebSocketsWithTLS SupportedProtocol = "https/web-stomp"

	SupportedProtocolPrometheus        SupportedProtocol = "http/prometheus"
	SupportedProtocolPrometheusWithTLS SupportedProtocol = "https/prometheus"

	SupportedProtocolHTTP        SupportedProtocol = "http"
	SupportedProtocolHTTPWithTLS SupportedProtocol = "https"
)

// KnownSupportedProtocols lists every protocol with a canonical wire string.
var KnownSupportedProtocols = []SupportedProtocol{
	SupportedProtocolClustering,
	SupportedProtocolAMQP,
	SupportedProtocolAMQPWithTLS,
	SupportedProtocolStream,
	SupportedProtocolStreamWithTLS,
	SupportedProtocolMQTT,
	SupportedProtocolMQTTWithTLS,
	SupportedProtocolMQTTOverWebSockets,
	SupportedProtocolMQTTOverWebSocketsWithTLS,
	SupportedProtocolSTOMP,
	SupportedProtocolSTOMPWithTLS,
	SupportedProtocolSTOMPOverWebSockets,
	SupportedProtocolSTOMPOverWebSocketsWithTLS,
	SupportedProtocolPrometheus,
	SupportedProtocolPrometheusWithTLS,
	SupportedProtocolHTTP,
	SupportedProtocolHTTPWithTLS,
}

var tlsProtocols = map[SupportedProtocol]struct{}{
	SupportedProtocolAMQPWithTLS:                {},
	SupportedProtocolStreamWithTLS:              {},
	SupportedProtocolMQTTWithTLS:                {},
	SupportedProtocolMQTTOverWebSocketsWithTLS:  {},
	SupportedProtocolSTOMPWithTLS:               {},
	SupportedProtocolSTOMPOverWebSocketsWithTLS: {},
	SupportedProtocolPrometheusWithTLS:          {},
	SupportedProtocolHTTPWithTLS:                {},
}

// ParseSupportedProtocol never fails: unknown values are returned as-is.
func ParseSupportedProtocol(s string) SupportedProtocol {
	return SupportedProtocol(s)
}

func (p SupportedProtocol) String() string {
	return string(p)
}

// IsKnown reports whether p is one of the protocols listed in KnownSupportedProtocols.
func (p SupportedProtocol) IsKnown() bool {
	for _, known := range KnownSupportedProtocols {
		if p == known {
			return true
		}
	}
	return false
}

// IsTLS reports whether p is a known TLS-enabled listener protocol.
// Unknown protocols are never considered TLS-enabled.
func (p SupportedProtocol) IsTLS() bool {
	_, ok := tlsProtocols[p]
	return ok
}
