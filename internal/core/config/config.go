package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"loopa-api/internal/core/logger"
	"loopa-api/internal/features/earnings/domain"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// RedisURL is the connection URL for the Redis cache.
	RedisURL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379"`

	// Storefront holds the storefront order API configuration.
	Storefront StorefrontConfig `mapstructure:",squash"`

	// Payout holds the creator payout policy configuration.
	Payout PayoutConfig `mapstructure:",squash"`
}

// StorefrontConfig holds the credentials for the storefront order API.
type StorefrontConfig struct {
	// URL is the base URL of the storefront.
	URL string `mapstructure:"STORE_URL" required:"true"`
	// ConsumerKey is the public key for API access.
	ConsumerKey string `mapstructure:"STORE_CONSUMER_KEY" required:"true"`
	// ConsumerSecret is the secret key for API access.
	ConsumerSecret string `mapstructure:"STORE_CONSUMER_SECRET" required:"true"`
}

// PayoutConfig holds the payout policy settings for creator earnings.
type PayoutConfig struct {
	// Model selects the payout model: "proportional" or "fixed".
	Model string `mapstructure:"PAYOUT_MODEL" default:"proportional"`
	// CreatorShare is the fraction of revenue paid to the creator under the
	// proportional model. Out-of-range values are clamped by the domain.
	CreatorShare float64 `mapstructure:"PAYOUT_CREATOR_SHARE" default:"0.7"`
	// CreatorPerUnit is the flat amount paid to the creator per unit sold
	// under the fixed model.
	CreatorPerUnit float64 `mapstructure:"PAYOUT_CREATOR_PER_UNIT" default:"5"`
	// PlatformPerUnit is the flat amount retained by Loopa per unit sold
	// under the fixed model.
	PlatformPerUnit float64 `mapstructure:"PAYOUT_PLATFORM_PER_UNIT" default:"3"`
	// StatsCacheTTL is how long computed sales statistics stay cached, in seconds.
	StatsCacheTTL int `mapstructure:"STATS_CACHE_TTL" default:"60"`
}

// Policy converts the payout configuration into a domain payout policy.
// The domain corrects an out-of-range share silently; a warning is logged
// here so misconfiguration is at least visible in the logs.
func (p PayoutConfig) Policy() domain.PayoutPolicy {
	policy := domain.PayoutPolicy{
		CreatorShare:    p.CreatorShare,
		CreatorPerUnit:  p.CreatorPerUnit,
		PlatformPerUnit: p.PlatformPerUnit,
	}

	if strings.EqualFold(p.Model, string(domain.PayoutModelFixed)) {
		policy.Model = domain.PayoutModelFixed
	} else {
		policy.Model = domain.PayoutModelProportional
	}

	if policy.Model == domain.PayoutModelProportional {
		if effective := policy.Share(); effective != p.CreatorShare {
			logger.Get().Warn("Payout share out of range, clamped",
				zap.Float64("configured", p.CreatorShare),
				zap.Float64("effective", effective),
			)
		}
	}

	return policy
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
