package config

import "time"

// Config holds runtime settings for the marketplace client.
//
// Fields:
//   - APIBaseURL: base URL of the backend collection API.
//   - LocalOnly: pin the data service to the local cache for the whole
//     process lifetime. This is the one and only mode switch; nothing is
//     inferred from hostnames or other environment sniffing.
//   - DatabasePath: SQLite file backing the local cache.
//   - CacheQuotaBytes: size budget for the cache, 0 for unlimited.
//   - OnlineCheckInterval: how often the client probes server reachability.
type Config struct {
	APIBaseURL          string
	LocalOnly           bool
	DatabasePath        string
	CacheQuotaBytes     int64
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.LocalOnly = false
	c.DatabasePath = "wheelmarket.db"
	c.CacheQuotaBytes = 0
	c.OnlineCheckInterval = 5 * time.Second
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
