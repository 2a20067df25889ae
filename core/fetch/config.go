package fetch

// Config holds configuration for outbound federation requests.
type Config struct {
	// TimeoutSeconds is the per-request timeout in seconds. A hung remote
	// must never block a sync indefinitely.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// UserAgent is sent on every outbound request.
	UserAgent string `mapstructure:"user_agent" default:"mamoji/1.0"`
	// Insecure switches host URLs to plain http. Only for local testing.
	Insecure bool `mapstructure:"insecure" default:"false"`
}
