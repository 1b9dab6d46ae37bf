package server

// Config holds configuration for the read-only HTTP API.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey protects the API when set; empty leaves it open.
	ApiKey string `mapstructure:"api_key" default:""`
}
