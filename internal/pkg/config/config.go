package config

import (
	"log"
	"strings"

	"github.com/kemana-app/kemana/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from an optional config file and the
// environment. Environment variables take precedence over file values.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("no config file loaded, using environment and defaults:", err)
	}

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "kemana-booking")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "dev")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 9990)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.username", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.database", "kemana")
	v.SetDefault("db.ssl_mode", "disable")
	v.SetDefault("db.max_conns", 10)
	v.SetDefault("db.idle_conns", 2)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.address", "localhost:4150")

	v.SetDefault("jwt.expiration", 60)
	v.SetDefault("jwt.issuer", "kemana-booking")

	v.SetDefault("pricing.base_url", "https://taxi-routeinfo.taxi.example.net")
	v.SetDefault("pricing.language", "en")
	v.SetDefault("pricing.currency", "IDR")
	v.SetDefault("pricing.timeout_seconds", 5)

	v.SetDefault("geo.short_link_hosts", "goo.gl,maps.app.goo.gl,clck.ru,surl.li,cutt.ly")
	v.SetDefault("geo.max_redirect_hops", 5)
	v.SetDefault("geo.timeout_seconds", 5)
	v.SetDefault("geo.resolve_cache_ttl", 60)

	v.SetDefault("rate_limit.requests", 60)
	v.SetDefault("rate_limit.period_seconds", 60)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	configs.App.Name = v.GetString("app.name")
	configs.App.Environment = v.GetString("app.environment")
	configs.App.Debug = v.GetBool("app.debug")
	configs.App.Version = v.GetString("app.version")

	configs.Server.Host = v.GetString("server.host")
	configs.Server.Port = v.GetInt("server.port")
	configs.Server.ReadTimeout = v.GetInt("server.read_timeout")
	configs.Server.WriteTimeout = v.GetInt("server.write_timeout")
	configs.Server.ShutdownTimeout = v.GetInt("server.shutdown_timeout")

	configs.Database.Host = v.GetString("db.host")
	configs.Database.Port = v.GetInt("db.port")
	configs.Database.Username = v.GetString("db.username")
	configs.Database.Password = v.GetString("db.password")
	configs.Database.Database = v.GetString("db.database")
	configs.Database.SSLMode = v.GetString("db.ssl_mode")
	configs.Database.MaxConns = v.GetInt("db.max_conns")
	configs.Database.IdleConns = v.GetInt("db.idle_conns")

	configs.Redis.Host = v.GetString("redis.host")
	configs.Redis.Port = v.GetInt("redis.port")
	configs.Redis.Password = v.GetString("redis.password")
	configs.Redis.DB = v.GetInt("redis.db")
	configs.Redis.PoolSize = v.GetInt("redis.pool_size")

	configs.NSQ.Address = v.GetString("nsq.address")

	configs.JWT.Secret = v.GetString("jwt.secret")
	configs.JWT.Expiration = v.GetInt("jwt.expiration")
	configs.JWT.Issuer = v.GetString("jwt.issuer")

	configs.APIKey.BookingService = v.GetString("apikey.booking_service")
	configs.APIKey.AdminConsole = v.GetString("apikey.admin_console")

	configs.Pricing.BaseURL = v.GetString("pricing.base_url")
	configs.Pricing.ClientID = v.GetString("pricing.client_id")
	configs.Pricing.APIKey = v.GetString("pricing.api_key")
	configs.Pricing.Language = v.GetString("pricing.language")
	configs.Pricing.Currency = v.GetString("pricing.currency")
	configs.Pricing.TimeoutSeconds = v.GetInt("pricing.timeout_seconds")

	configs.Geo.ShortLinkHosts = v.GetString("geo.short_link_hosts")
	configs.Geo.MaxRedirectHops = v.GetInt("geo.max_redirect_hops")
	configs.Geo.TimeoutSeconds = v.GetInt("geo.timeout_seconds")
	configs.Geo.ResolveCacheTTL = v.GetInt("geo.resolve_cache_ttl")

	configs.RateLimit.Requests = v.GetInt("rate_limit.requests")
	configs.RateLimit.PeriodSeconds = v.GetInt("rate_limit.period_seconds")

	configs.Logger.Level = v.GetString("logger.level")
	configs.Logger.FilePath = v.GetString("logger.file_path")

	return configs
}
