// Package config loads presentation settings for the analyzer adapters.
// Classification behavior is deliberately not configurable; only how results
// are shown can change.
package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds adapter settings. Defaults reproduce the stock tool; a config
// file or environment variables can rebrand or silence parts of the output.
type Config struct {
	// DefaultFormat is the console encoding used when none is requested
	// (text, json or yaml).
	DefaultFormat string

	// NoColor disables styling in the interactive form.
	NoColor bool

	// ShowDisclaimer controls the IMPORTANT NOTES block in text output.
	ShowDisclaimer bool

	// Outbound links shown by the adapters.
	Website      string
	SupportEmail string
}

// Load reads configuration from an optional pushtoken.yaml and environment
// variables, falling back to defaults.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envMappings := map[string]string{
		"DefaultFormat":  "PUSHTOKEN_DEFAULT_FORMAT",
		"NoColor":        "PUSHTOKEN_NO_COLOR",
		"ShowDisclaimer": "PUSHTOKEN_SHOW_DISCLAIMER",
		"Website":        "PUSHTOKEN_WEBSITE",
		"SupportEmail":   "PUSHTOKEN_SUPPORT_EMAIL",
	}

	for configKey, envVar := range envMappings {
		if err := v.BindEnv(configKey, envVar); err != nil {
			log.Warn().Err(err).Msgf("Failed to bind environment variable %s for %s", envVar, configKey)
		}
	}

	v.SetConfigName("pushtoken")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.pushtoken")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug().Msg("Config file not found, using environment variables and defaults")
	} else {
		log.Debug().Msgf("Using config file: %s", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DefaultFormat", "text")
	v.SetDefault("NoColor", false)
	v.SetDefault("ShowDisclaimer", true)
	v.SetDefault("Website", "https://hawk-eyes.io")
	v.SetDefault("SupportEmail", "customer_service@hawk-eyes.io")
}

func validateConfig(config *Config) error {
	switch strings.ToLower(config.DefaultFormat) {
	case "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("invalid DefaultFormat %q (expected text, json or yaml)", config.DefaultFormat)
	}
}
