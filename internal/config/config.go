// Package config loads optional tool configuration from cppsmith.yml in the
// current directory. A missing file is not an error; every setting has a
// default.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds tool-level settings.
type Config struct {
	// TargetDir is the default directory projects are generated into.
	TargetDir string

	// LegacyPrivateSections switches the code generator to cbuilder-parity
	// output (private header sections filled from the public member lists).
	LegacyPrivateSections bool
}

// Load reads cppsmith.yml with environment variable overrides
// (CPPSMITH_TARGET_DIR, CPPSMITH_LEGACY_PRIVATE_SECTIONS).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("cppsmith")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvPrefix("CPPSMITH")

	v.SetDefault("target_dir", ".")
	v.SetDefault("legacy_private_sections", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read cppsmith.yml: %w", err)
		}
	}

	return &Config{
		TargetDir:             v.GetString("target_dir"),
		LegacyPrivateSections: v.GetBool("legacy_private_sections"),
	}, nil
}
