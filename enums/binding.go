package enums

// BindingDestinationType is either a queue or another exchange
// (exchange-to-exchange bindings). Unknown values decode as a queue.
type BindingDestinationType string

const (
	BindingDestinationTypeQueue    BindingDestinationType = "queue"
	BindingDestinationTypeExchange BindingDestinationType = "exchange"
)

var KnownBindingDestinationTypes = []BindingDestinationType{
	BindingDestinationTypeQueue,
	BindingDestinationTypeExchange,
}

func ParseBindingDestinationType(s string) BindingDestinationType {
	if BindingDestinationType(s) == BindingDestinationTypeExchange {
		return BindingDestinationTypeExchange
	}
	return BindingDestinationTypeQueue
}

func (t BindingDestinationType) String() string {
	return string(ParseBindingDestinationType(string(t)))
}

// PathAbbreviation returns the single letter used in binding endpoint paths,
// e.g. /api/bindings/{vhost}/e/{source}/q/{destination}.
func (t BindingDestinationType) PathAbbreviation() string {
	if ParseBindingDestinationType(string(t)) == BindingDestinationTypeExchange {
		return "e"
	}
	return "q"
}

func (t BindingDestinationType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *BindingDestinationType) UnmarshalText(text []byte) error {
	*t = ParseBindingDestinationType(string(text))
	return nil
}
