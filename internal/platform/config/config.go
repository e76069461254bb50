// Package config loads service configuration through viper: an optional
// fisc.yaml plus FISC_-prefixed environment variables, env winning.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	id "fisc/pkg/domain"
)

// Config is the full service configuration.
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	Auth       AuthConfig
	Government GovernmentConfig
	Store      StoreConfig
	Postgres   PostgresConfig
	Events     EventsConfig
	Settlement SettlementConfig
}

type ServerConfig struct {
	Addr string
}

type LogConfig struct {
	Level string
}

type AuthConfig struct {
	SigningKey string
	Issuer     string
	Audience   string
}

type GovernmentConfig struct {
	// Wallet is the initial government principal, required at first boot.
	Wallet string
}

type StoreConfig struct {
	// Driver selects the ledger store: "memory" or "postgres".
	Driver string
}

type PostgresConfig struct {
	URL string
}

type EventsConfig struct {
	Kafka KafkaConfig
	Redis RedisStreamConfig
}

type KafkaConfig struct {
	// Brokers is empty when the Kafka sink is disabled.
	Brokers []string
	Topic   string
}

type RedisStreamConfig struct {
	// URL is empty when the Redis stream sink is disabled.
	URL    string
	Stream string
}

type SettlementConfig struct {
	// Treasury is the custody account that holds collected funds.
	Treasury string
	// InitialBalance seeds the in-process bank's treasury account. A
	// development convenience only; production balances arrive through
	// deposits.
	InitialBalance uint64
}

// Load reads configuration from fisc.yaml (if present in the working
// directory or /etc/fisc) and the FISC_ environment.
func Load() (Config, error) {
	v := viper.New()

	v.SetConfigName("fisc")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/fisc")

	v.SetEnvPrefix("FISC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("auth.issuer", "fisc")
	v.SetDefault("auth.audience", "fisc-api")
	v.SetDefault("store.driver", "memory")
	v.SetDefault("events.kafka.topic", "fisc.ledger.events")
	v.SetDefault("events.redis.stream", "fisc:ledger:events")
	v.SetDefault("settlement.treasury", "0xffffffffffffffffffffffffffffffffffffffff")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Server: ServerConfig{Addr: v.GetString("server.addr")},
		Log:    LogConfig{Level: v.GetString("log.level")},
		Auth: AuthConfig{
			SigningKey: v.GetString("auth.signing_key"),
			Issuer:     v.GetString("auth.issuer"),
			Audience:   v.GetString("auth.audience"),
		},
		Government: GovernmentConfig{Wallet: v.GetString("government.wallet")},
		Store:      StoreConfig{Driver: v.GetString("store.driver")},
		Postgres:   PostgresConfig{URL: v.GetString("postgres.url")},
		Events: EventsConfig{
			Kafka: KafkaConfig{
				Brokers: v.GetStringSlice("events.kafka.brokers"),
				Topic:   v.GetString("events.kafka.topic"),
			},
			Redis: RedisStreamConfig{
				URL:    v.GetString("events.redis.url"),
				Stream: v.GetString("events.redis.stream"),
			},
		},
		Settlement: SettlementConfig{
			Treasury:       v.GetString("settlement.treasury"),
			InitialBalance: v.GetUint64("settlement.initial_balance"),
		},
	}

	if cfg.Auth.SigningKey == "" {
		// Development default; override in any real deployment.
		cfg.Auth.SigningKey = "dev-secret-key-change-in-production"
	}

	return cfg, nil
}

// Validate checks the parts of the configuration the server cannot start
// without.
func (c Config) Validate() error {
	if c.Government.Wallet == "" {
		return fmt.Errorf("government.wallet is required")
	}
	if _, err := id.ParsePrincipal(c.Government.Wallet); err != nil {
		return fmt.Errorf("government.wallet: %w", err)
	}
	if _, err := id.ParsePrincipal(c.Settlement.Treasury); err != nil {
		return fmt.Errorf("settlement.treasury: %w", err)
	}
	switch c.Store.Driver {
	case "memory":
	case "postgres":
		if c.Postgres.URL == "" {
			return fmt.Errorf("postgres.url is required when store.driver is postgres")
		}
	default:
		return fmt.Errorf("unknown store.driver %q", c.Store.Driver)
	}
	return nil
}

// GovernmentPrincipal returns the validated initial government wallet.
func (c Config) GovernmentPrincipal() (id.Principal, error) {
	return id.ParsePrincipal(c.Government.Wallet)
}

// TreasuryPrincipal returns the validated treasury custody account.
func (c Config) TreasuryPrincipal() (id.Principal, error) {
	return id.ParsePrincipal(c.Settlement.Treasury)
}
