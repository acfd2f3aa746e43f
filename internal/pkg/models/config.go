package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	APIKey    APIKeyConfig
	Pricing   PricingConfig
	Geo       GeoConfig
	RateLimit RateLimitConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Address string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// APIKeyConfig contains API keys for service-to-service communication
type APIKeyConfig struct {
	BookingService string
	AdminConsole   string
}

// PricingConfig contains taxi pricing backend configuration
type PricingConfig struct {
	BaseURL        string
	ClientID       string
	APIKey         string
	Language       string
	Currency       string
	TimeoutSeconds int
}

// GeoConfig contains location resolution configuration
type GeoConfig struct {
	ShortLinkHosts  string // comma-separated host patterns treated as link shorteners
	MaxRedirectHops int
	TimeoutSeconds  int
	ResolveCacheTTL int // minutes a resolved short link stays cached
}

// RateLimitConfig bounds request rates on the public API
type RateLimitConfig struct {
	Requests      int // max requests per caller per window
	PeriodSeconds int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
