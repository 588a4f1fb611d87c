package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultTimeout bounds each health check request.
const DefaultTimeout = 2 * time.Second

// Duration is a time.Duration that unmarshals from a YAML string like "2s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q: %w", value.Line, s, err)
	}
	d.Duration = dur
	return nil
}

// Endpoint is a named service exposed at a base URL.
type Endpoint struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Config is the root poller configuration. Endpoints are checked and
// reported in slice order.
type Config struct {
	Endpoints []Endpoint `yaml:"endpoints"`
	Timeout   Duration   `yaml:"timeout"`
	Parallel  bool       `yaml:"parallel"`
}

// Default returns the built-in reference mapping.
func Default() *Config {
	return &Config{
		Endpoints: []Endpoint{
			{Name: "auth", URL: "http://auth-service:5000"},
			{Name: "user", URL: "http://user-service:5001"},
			{Name: "payment", URL: "http://payment-service:5002"},
			{Name: "order", URL: "http://order-service:5003"},
			{Name: "frontend", URL: "http://frontend-service"},
		},
		Timeout: Duration{DefaultTimeout},
	}
}

// Load reads, parses, and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Timeout is a pointer so an omitted value can be told apart from "0s".
	type rawConfig struct {
		Endpoints []Endpoint `yaml:"endpoints"`
		Timeout   *Duration  `yaml:"timeout"`
		Parallel  bool       `yaml:"parallel"`
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg := &Config{
		Endpoints: raw.Endpoints,
		Timeout:   Duration{DefaultTimeout},
		Parallel:  raw.Parallel,
	}
	if raw.Timeout != nil {
		cfg.Timeout = *raw.Timeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every endpoint has a unique name and an absolute
// http(s) URL, and that the timeout is positive.
func (c *Config) Validate() error {
	if len(c.Endpoints) == 0 {
		return fmt.Errorf("at least one endpoint must be configured")
	}
	if c.Timeout.Duration <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout.Duration)
	}

	names := make(map[string]bool, len(c.Endpoints))
	for i, ep := range c.Endpoints {
		if ep.Name == "" {
			return fmt.Errorf("endpoint[%d]: name is required", i)
		}
		if names[ep.Name] {
			return fmt.Errorf("duplicate endpoint name %q", ep.Name)
		}
		names[ep.Name] = true

		if ep.URL == "" {
			return fmt.Errorf("endpoint %q: url is required", ep.Name)
		}
		u, err := url.Parse(ep.URL)
		if err != nil {
			return fmt.Errorf("endpoint %q: invalid url %q: %w", ep.Name, ep.URL, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("endpoint %q: url %q must use http or https", ep.Name, ep.URL)
		}
		if u.Host == "" {
			return fmt.Errorf("endpoint %q: url %q has no host", ep.Name, ep.URL)
		}
	}
	return nil
}
