// Package config loads ambient runtime configuration for the field
// detection engine, following the same viper-based YAML+env pattern the
// teacher's own internal/infra/config.Load uses.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/doc-assembly/fielddetect/internal/core/service/detection"
)

// envPrefix is this module's environment variable namespace, e.g.
// FIELDDETECT_DETECTION_CHECKBOX_SIZE_MIN.
const envPrefix = "FIELDDETECT"

// Config is the full ambient configuration: detection tunables plus
// logging.
type Config struct {
	Detection detection.Config `mapstructure:"detection"`
	Log       LogConfig        `mapstructure:"log"`
}

// LogConfig controls the slog handler the CLI entrypoint builds.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "text" or "json"
}

// Load reads configuration from an optional "fielddetect.yaml" file
// (searched in the working directory and "./settings") plus environment
// variables, which take precedence. A missing config file is not an
// error: the detection defaults and LogConfig zero values already produce
// a usable Config.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("fielddetect")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./settings")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// MustLoad is Load, panicking on error. Intended for cmd/ entrypoints
// where a bad config is a startup-time fatal error anyway.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("loading config: %v", err))
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	d := detection.DefaultConfig()

	v.SetDefault("detection.detection_confidence_threshold", d.DetectionConfidenceThreshold)
	v.SetDefault("detection.classification_confidence_threshold", d.ClassificationConfidenceThreshold)
	v.SetDefault("detection.role_confidence_threshold", d.RoleConfidenceThreshold)
	v.SetDefault("detection.line_horizontal_epsilon", d.LineHorizontalEpsilon)
	v.SetDefault("detection.underline_min_width", d.MinUnderlineLength)
	v.SetDefault("detection.label_search_radius", d.MaxLabelDistance)
	v.SetDefault("detection.overlap_threshold", d.OverlapThreshold)
	v.SetDefault("detection.checkbox_size_min", d.CheckboxSizeMin)
	v.SetDefault("detection.checkbox_size_max", d.CheckboxSizeMax)
	v.SetDefault("detection.checkbox_squareness_tol", d.CheckboxSquarenessTol)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
