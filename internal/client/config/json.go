package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/wheelmarket/wheelmarket/internal/flagx"
	"github.com/wheelmarket/wheelmarket/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "5s"
// or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL          string         `json:"api_base_url"`
	LocalOnly           *bool          `json:"local_only"`
	DatabasePath        string         `json:"database_path"`
	CacheQuotaBytes     int64          `json:"cache_quota_bytes"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
}

// parseJson overlays Config with values loaded from a JSON file resolved via
// the -c/-config flags. Absent file means no overlay; read or parse errors
// panic (caller should recover if desired). Intended usage is
// defaults -> parseJson -> parseFlags, later stages overriding earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.LocalOnly != nil {
		cfg.LocalOnly = *jc.LocalOnly
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.CacheQuotaBytes > 0 {
		cfg.CacheQuotaBytes = jc.CacheQuotaBytes
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
}
