package responses

// DefinitionSet is a definitions export: the topology and access control
// state of a cluster. Encoding it yields a payload the import endpoint accepts.
type DefinitionSet struct {
	ServerVersion  string `json:"rabbitmq_version"`
	RabbitVersion  string `json:"rabbit_version,omitempty"`
	ProductName    string `json:"product_name,omitempty"`
	ProductVersion string `json:"product_version,omitempty"`

	Users            []User                   `json:"users"`
	VirtualHosts     []VirtualHost            `json:"vhosts"`
	Permissions      []Permissions            `json:"permissions"`
	TopicPermissions []TopicPermissions       `json:"topic_permissions,omitempty"`
	Parameters       []RuntimeParameter       `json:"parameters"`
	GlobalParameters []GlobalRuntimeParameter `json:"global_parameters,omitempty"`
	Policies         []Policy                 `json:"policies"`

	Queues    []QueueDefinition    `json:"queues"`
	Exchanges []ExchangeDefinition `json:"exchanges"`
	Bindings  []BindingInfo        `json:"bindings"`
}

// TopicPermissions restrict routing keys a user may publish or consume on a
// topic exchange.
type TopicPermissions struct {
	User     string `json:"user"`
	VHost    string `json:"vhost"`
	Exchange string `json:"exchange"`
	Write    string `json:"write"`
	Read     string `json:"read"`
}

// QueuesIn returns the queue definitions that belong to vhost.
func (d DefinitionSet) QueuesIn(vhost string) []QueueDefinition {
	var out []QueueDefinition
	for _, q := range d.Queues {
		if q.VHost == vhost {
			out = append(out, q)
		}
	}
	return out
}

// ExchangesIn returns the exchange definitions that belong to vhost.
func (d DefinitionSet) ExchangesIn(vhost string) []ExchangeDefinition {
	var out []ExchangeDefinition
	for _, x := range d.Exchanges {
		if x.VHost == vhost {
			out = append(out, x)
		}
	}
	return out
}

// BindingsIn returns the bindings that belong to vhost.
func (d DefinitionSet) BindingsIn(vhost string) []BindingInfo {
	var out []BindingInfo
	for _, b := range d.Bindings {
		if b.VHost == vhost {
			out = append(out, b)
		}
	}
	return out
}
