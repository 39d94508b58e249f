// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Cache    CacheConfig    `mapstructure:"cache"`
	APIs     APIsConfig     `mapstructure:"apis"`
	Registry RegistryConfig `mapstructure:"registry"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address         string `mapstructure:"address"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// PipelineConfig holds the orchestrator-level settings. The critique and
// refinement flags are read once at orchestrator construction.
type PipelineConfig struct {
	EnableCritique      bool  `mapstructure:"enable_critique"`
	EnableRefinement    bool  `mapstructure:"enable_refinement"`
	ResultCacheCapacity int   `mapstructure:"result_cache_capacity"`
	WeatherSeed         int64 `mapstructure:"weather_seed"` // 0 means time-seeded
}

// CacheConfig holds the lookup-cache settings. When redis.address is set, the
// lookup caches are backed by Redis instead of process memory.
type CacheConfig struct {
	LookupTTL int `mapstructure:"lookup_ttl"` // milliseconds

	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// APIsConfig holds settings for external API integrations.
type APIsConfig struct {
	GenAI struct {
		BaseURL     string  `mapstructure:"base_url"`
		APIKey      string  `mapstructure:"api_key"`
		Model       string  `mapstructure:"model"`
		Temperature float64 `mapstructure:"temperature"`
		Timeout     int     `mapstructure:"timeout"` // milliseconds
		MaxRetries  int     `mapstructure:"max_retries"`
	} `mapstructure:"genai"`

	WebSearch struct {
		BaseURL    string `mapstructure:"base_url"`
		APIKey     string `mapstructure:"api_key"`
		EngineID   string `mapstructure:"engine_id"`
		Timeout    int    `mapstructure:"timeout"` // milliseconds; bounded-call deadline
		MaxResults int    `mapstructure:"max_results"`
	} `mapstructure:"web_search"`
}

// RegistryConfig points at an optional place-registry JSON file. When the path
// is empty the compiled-in registry defaults are used.
type RegistryConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
