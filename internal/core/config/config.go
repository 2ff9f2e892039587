package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
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

	// Dispatch holds the dispatch service connection details.
	Dispatch DispatchConfig `mapstructure:",squash"`

	// Depot holds the fixed route origin used when no depot is known.
	Depot DepotConfig `mapstructure:",squash"`

	// Routing holds the ETA synthesis tunables.
	Routing RoutingConfig `mapstructure:",squash"`
}

// DispatchConfig holds the connection details for the shipment/dispatch service.
type DispatchConfig struct {
	// Source selects where assignments and orders are read from: "http" or "redis".
	Source string `mapstructure:"DISPATCH_SOURCE" default:"http"`
	// BaseURL is the base URL of the dispatch service REST API.
	BaseURL string `mapstructure:"DISPATCH_URL" required:"true"`
	// APIKey authenticates the rider client against the dispatch API.
	APIKey string `mapstructure:"DISPATCH_API_KEY"`
	// RedisURL is the connection URL for the dispatcher's snapshot store.
	RedisURL string `mapstructure:"DISPATCH_REDIS_URL" default:"redis://localhost:6379"`
}

// DepotConfig holds the configured city-center fallback origin. The defaults
// point at central Karachi, where the pilot fleet operates.
type DepotConfig struct {
	// Latitude of the depot origin.
	Latitude float64 `mapstructure:"DEPOT_LAT" default:"24.8607"`
	// Longitude of the depot origin.
	Longitude float64 `mapstructure:"DEPOT_LNG" default:"67.0011"`
}

// RoutingConfig holds the synthetic ETA constants.
type RoutingConfig struct {
	// ServiceMinutes is the per-stop service time assumed when an order has no estimate.
	ServiceMinutes int `mapstructure:"ROUTE_SERVICE_MINUTES" default:"12"`
	// StopBufferMinutes is the inter-stop travel allowance.
	StopBufferMinutes int `mapstructure:"ROUTE_STOP_BUFFER_MINUTES" default:"12"`
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
