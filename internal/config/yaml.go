// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file specified by path. If path
// is empty, it searches default locations ("prosody.yaml"). If no file is
// found, built-in defaults are used. After loading, environment variable
// overrides are applied and the final configuration is validated.
func LoadConfig(path string) (*Config, error) {
	cfg := NewConfig()

	if path == "" {
		// Define potential locations for the config file.
		candidates := []string{
			"prosody.yaml",
		}
		found := false
		for _, candidate := range candidates {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				found = true
				break
			}
		}
		if !found {
			cfg.applyEnvOverrides()
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("invalid default configuration: %w", err)
			}
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply environment variable overrides AFTER loading from file.
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration can drive one transfer run.
func (c *Config) Validate() error {
	if c.EmotionFile == "" || c.NeutralFile == "" {
		return fmt.Errorf("emotion_file and neutral_file must be set")
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output_file must be set")
	}
	if c.SampleRate < MinSampleRate || c.SampleRate > MaxSampleRate {
		return fmt.Errorf("sample_rate %d out of range [%d, %d]",
			c.SampleRate, MinSampleRate, MaxSampleRate)
	}
	if c.FramePeriod < MinFramePeriod || c.FramePeriod > MaxFramePeriod {
		return fmt.Errorf("frame_period %.2f out of range [%.1f, %.1f]",
			c.FramePeriod, MinFramePeriod, MaxFramePeriod)
	}
	return nil
}

// applyEnvOverrides applies PROSODY_* environment variables on top of the
// values loaded from defaults or file.
func (c *Config) applyEnvOverrides() {
	if val, ok := os.LookupEnv("PROSODY_SAMPLE_RATE"); ok {
		if iVal, err := strconv.Atoi(val); err == nil {
			c.SampleRate = iVal
		}
	}
	if val, ok := os.LookupEnv("PROSODY_FRAME_PERIOD"); ok {
		if fVal, err := strconv.ParseFloat(val, 64); err == nil {
			c.FramePeriod = fVal
		}
	}
	if val, ok := os.LookupEnv("PROSODY_LOG_LEVEL"); ok {
		c.LogLevel = val
	}
	if val, ok := os.LookupEnv("PROSODY_VERBOSE"); ok {
		if bVal, err := strconv.ParseBool(val); err == nil {
			c.Verbose = bVal
		}
	}
}
