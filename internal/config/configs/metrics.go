package configs

// Metrics controls the Prometheus scrape endpoint.
type Metrics struct {
	Enabled bool   `env:"ENABLED" envDefault:"true"`
	Path    string `env:"PATH" envDefault:"/metrics"`
}
