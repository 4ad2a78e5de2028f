// Package config handles configuration for the CLI client: defaults, an
// optional JSON overlay and command-line flags, later sources winning.
package config

// Config holds runtime settings for the meal-planner CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend REST API.
//   - SessionDBPath: path of the local sqlite file holding the saved session.
type Config struct {
	ServerEndpointAddr string
	SessionDBPath      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.SessionDBPath = "mealplanner.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
