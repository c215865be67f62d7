package config

type Config struct {
	Mongo         MongoConfig         `mapstructure:"mongo"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Server        ServerConfig        `mapstructure:"server"`
	Admin         AdminConfig         `mapstructure:"admin"`
	Contact       ContactConfig       `mapstructure:"contact"`
	Email         EmailConfig         `mapstructure:"email"`
	Observability ObservabilityConfig `mapstructure:"observability"`
	Logging       LoggingConfig       `mapstructure:"logging"`
}

type MongoConfig struct {
	URI    string `mapstructure:"uri"`
	DBName string `mapstructure:"dbname"`

	MaxPoolSize     uint64 `mapstructure:"max_pool_size"`
	MinPoolSize     uint64 `mapstructure:"min_pool_size"`
	MaxIdleTimeMs   int    `mapstructure:"max_idle_time_ms"`
	ConnectTimeoutS int    `mapstructure:"connect_timeout_seconds"`
	SelectTimeoutS  int    `mapstructure:"server_selection_timeout_seconds"`
}

type RedisConfig struct {
	Addr                string `mapstructure:"addr"`
	DB                  int    `mapstructure:"db"`
	Username            string `mapstructure:"username"`
	Password            string `mapstructure:"password"`
	PoolSize            int    `mapstructure:"pool_size"`
	MinIdleConns        int    `mapstructure:"min_idle_conns"`
	DialTimeoutSeconds  int    `mapstructure:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds"`
}

type ServerConfig struct {
	Port           int        `mapstructure:"port"`
	TimeoutSeconds int        `mapstructure:"timeout_seconds"`
	Environment    string     `mapstructure:"environment"`
	Domain         string     `mapstructure:"domain"`
	CORS           CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAgeSeconds    int      `mapstructure:"max_age_seconds"`
}

type AdminConfig struct {
	// Password gates the /api/admin endpoints via HTTP basic auth.
	// The username part of the credentials is ignored.
	Password string `mapstructure:"password"`
}

type ContactConfig struct {
	// CooldownDays is how long a given email address is blocked from
	// submitting a second inquiry.
	CooldownDays int `mapstructure:"cooldown_days"`

	// ListingTTLMinutes bounds staleness of the cached admin listing.
	ListingTTLMinutes int `mapstructure:"listing_ttl_minutes"`

	// DefaultRegion is the ISO 3166-1 region used when parsing phone
	// numbers that carry no country prefix.
	DefaultRegion string `mapstructure:"default_region"`

	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type RateLimitConfig struct {
	ContactPerMinute int `mapstructure:"contact_per_minute"`
	AdminPerMinute   int `mapstructure:"admin_per_minute"`
}

type EmailConfig struct {
	Enabled bool       `mapstructure:"enabled"`
	From    string     `mapstructure:"from"`
	SMTP    SMTPConfig `mapstructure:"smtp"`

	// Business identity rendered into the notification templates.
	BusinessName    string `mapstructure:"business_name"`
	BusinessPhone   string `mapstructure:"business_phone"`
	BusinessEmail   string `mapstructure:"business_email"`
	BusinessAddress string `mapstructure:"business_address"`

	// OwnerAddress receives new-inquiry notifications. Falls back to From.
	OwnerAddress string `mapstructure:"owner_address"`
}

type SMTPConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"`
	UseTLS         bool   `mapstructure:"use_tls"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type ObservabilityConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	ServiceName    string        `mapstructure:"service_name"`
	ServiceVersion string        `mapstructure:"service_version"`
	Tracing        TracingConfig `mapstructure:"tracing"`
	Metrics        MetricsConfig `mapstructure:"metrics"`
}

type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	SamplingRate float64 `mapstructure:"sampling_rate"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string       `mapstructure:"level"`  // debug, info, warn, error
	Format string       `mapstructure:"format"` // text, json
	Output OutputConfig `mapstructure:"output"`
}

type OutputConfig struct {
	Stdout bool          `mapstructure:"stdout"`
	File   FileLogConfig `mapstructure:"file"`
	Loki   LokiConfig    `mapstructure:"loki"`
}

type FileLogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type LokiConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

func (c *Config) Validate() error {
	if c.Contact.CooldownDays <= 0 {
		c.Contact.CooldownDays = 30
	}
	if c.Contact.ListingTTLMinutes <= 0 {
		c.Contact.ListingTTLMinutes = 5
	}
	if c.Contact.RateLimit.ContactPerMinute <= 0 {
		c.Contact.RateLimit.ContactPerMinute = 10
	}
	if c.Contact.RateLimit.AdminPerMinute <= 0 {
		c.Contact.RateLimit.AdminPerMinute = 30
	}
	return nil
}
