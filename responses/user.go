package responses

// User as listed by the API and exported in definitions.
type User struct {
	Name             string  `json:"name"`
	Tags             TagList `json:"tags"`
	PasswordHash     string  `json:"password_hash"`
	HashingAlgorithm string  `json:"hashing_algorithm,omitempty"`
}

// IsAdministrator reports whether the user carries the administrator tag.
func (u User) IsAdministrator() bool {
	return u.Tags.Contains("administrator")
}

// Permissions of a user in a virtual host.
type Permissions struct {
	User      string `json:"user"`
	VHost     string `json:"vhost"`
	Configure string `json:"configure"`
	Read      string `json:"read"`
	Write     string `json:"write"`
}
