package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"naturalize/pkg/platform/strutil"
)

// EnvPrefix namespaces every environment variable read by Load.
const EnvPrefix = "INTAKE"

// Profile store backends.
const (
	ProfileBackendMemory   = "memory"
	ProfileBackendPostgres = "postgres"
	ProfileBackendRedis    = "redis"
)

// Config is the full process configuration.
type Config struct {
	Server   Server
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Log      LogConfig
	Profile  ProfileConfig
	Gate     GateConfig
	Presence PresenceConfig
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	ShutdownTimeout time.Duration
	// AdminToken guards the intake admin API. Empty disables the API.
	AdminToken string
}

// DatabaseConfig configures the Postgres connection pool.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig configures the Redis client. Empty URL means Redis is not used.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the audit event producer. No brokers means audit
// events stay in memory.
type KafkaConfig struct {
	Brokers           []string
	AuditTopic        string
	Partitions        int32
	ReplicationFactor int16
}

type LogConfig struct {
	Level  string
	Format string
}

// ProfileConfig selects the user profile store backend.
type ProfileConfig struct {
	Backend string
}

// GateConfig holds the waiting-room path policy.
type GateConfig struct {
	Restricted    []string
	AlwaysAllowed []string
	RedirectTo    string
}

type PresenceConfig struct {
	LongTripDays int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.admin_token", "")

	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 30*time.Minute)

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)
	v.SetDefault("redis.dial_timeout", 5*time.Second)
	v.SetDefault("redis.read_timeout", 3*time.Second)
	v.SetDefault("redis.write_timeout", 3*time.Second)

	v.SetDefault("kafka.brokers", "")
	v.SetDefault("kafka.audit_topic", "intake.audit")
	v.SetDefault("kafka.partitions", 1)
	v.SetDefault("kafka.replication_factor", 1)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("profile.backend", ProfileBackendMemory)

	v.SetDefault("gate.restricted", "/application/")
	v.SetDefault("gate.always_allowed", "/purgatory/,/application/eligibility/")
	v.SetDefault("gate.redirect_to", "/purgatory/")

	v.SetDefault("presence.long_trip_days", 183)
}

// Load reads configuration from an optional file and INTAKE_* environment
// variables, e.g. INTAKE_SERVER_ADDR or INTAKE_REDIS_URL. List values are
// comma separated.
func Load(file string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := Config{
		Server: Server{
			Addr:            v.GetString("server.addr"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
			AdminToken:      v.GetString("server.admin_token"),
		},
		Database: DatabaseConfig{
			URL:             v.GetString("database.url"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("database.conn_max_lifetime"),
		},
		Redis: RedisConfig{
			URL:          v.GetString("redis.url"),
			PoolSize:     v.GetInt("redis.pool_size"),
			MinIdleConns: v.GetInt("redis.min_idle_conns"),
			DialTimeout:  v.GetDuration("redis.dial_timeout"),
			ReadTimeout:  v.GetDuration("redis.read_timeout"),
			WriteTimeout: v.GetDuration("redis.write_timeout"),
		},
		Kafka: KafkaConfig{
			Brokers:           list(v, "kafka.brokers"),
			AuditTopic:        v.GetString("kafka.audit_topic"),
			Partitions:        v.GetInt32("kafka.partitions"),
			ReplicationFactor: int16(v.GetInt("kafka.replication_factor")),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Profile: ProfileConfig{
			Backend: strings.ToLower(strings.TrimSpace(v.GetString("profile.backend"))),
		},
		Gate: GateConfig{
			Restricted:    strutil.PathPrefixes(list(v, "gate.restricted")),
			AlwaysAllowed: strutil.PathPrefixes(list(v, "gate.always_allowed")),
			RedirectTo:    v.GetString("gate.redirect_to"),
		},
		Presence: PresenceConfig{
			LongTripDays: v.GetInt("presence.long_trip_days"),
		},
	}
	return cfg, cfg.Validate()
}

// Validate rejects configurations the server cannot start with.
func (c Config) Validate() error {
	switch c.Profile.Backend {
	case ProfileBackendMemory:
	case ProfileBackendPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("profile backend %q requires database.url", c.Profile.Backend)
		}
	case ProfileBackendRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("profile backend %q requires redis.url", c.Profile.Backend)
		}
	default:
		return fmt.Errorf("unknown profile backend %q", c.Profile.Backend)
	}
	if c.Presence.LongTripDays <= 0 {
		return fmt.Errorf("presence.long_trip_days must be positive, got %d", c.Presence.LongTripDays)
	}
	if c.Gate.RedirectTo == "" {
		return fmt.Errorf("gate.redirect_to is required")
	}
	if len(c.Gate.Restricted) == 0 {
		return fmt.Errorf("gate.restricted must list at least one path prefix")
	}
	return nil
}

// list accepts either a native list (config file) or a comma separated string (env).
func list(v *viper.Viper, key string) []string {
	return strutil.SplitList(v.GetStringSlice(key)...)
}
