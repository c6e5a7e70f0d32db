// Package config loads the job file describing the build and patch operations.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/ShotaroTanimura/outputExcel/internal/logger"
	"github.com/ShotaroTanimura/outputExcel/pkg/workbook/models"
)

// Config is a job file: one section per operation.
type Config struct {
	Build BuildConfig `toml:"build"`
	Patch PatchConfig `toml:"patch"`
}

// BuildConfig describes the workbook written by the build operation.
type BuildConfig struct {
	OutputFile string       `toml:"output_file"`
	SheetName  string       `toml:"sheet_name"`
	Origin     string       `toml:"origin,omitempty"`
	Rows       []models.Row `toml:"rows"`
}

// PatchConfig describes the sheet replaced or appended by the patch operation.
type PatchConfig struct {
	SourceFile string       `toml:"source_file"`
	OutputFile string       `toml:"output_file"`
	SheetName  string       `toml:"sheet_name"`
	Origin     string       `toml:"origin,omitempty"`
	Rows       []models.Row `toml:"rows"`
}

// DefaultConfig returns the built-in job.
func DefaultConfig() *Config {
	return &Config{
		Build: BuildConfig{
			OutputFile: "output.xlsx",
			SheetName:  "Sheet1",
			Rows: []models.Row{
				{"S.No", "Name", "Age"},
				{1, "John", 25},
				{2, "Jane", 28},
			},
		},
		Patch: PatchConfig{
			SourceFile: "../doc/sample.xlsx",
			OutputFile: "update.xlsx",
			SheetName:  "Sheet2",
			Rows: []models.Row{
				{"施設名", "所在地", "対象製品", "点検実施者", "点検実施日"},
				{"東京のカフェ", "東京丸の内", "かつ丼", "東京さん", "2023/01/01"},
				{1, 2, 3, 4, 5},
			},
		},
	}
}

// LoadConfig loads configuration from the specified config file path.
// An empty path yields DefaultConfig.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		logger.Debug("Using built-in configuration")
		return DefaultConfig(), nil
	}

	var config Config
	md, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("Unknown config key", "path", configPath, "key", key.String())
	}

	// Set defaults if missing
	defaults := DefaultConfig()
	if config.Build.OutputFile == "" {
		config.Build.OutputFile = defaults.Build.OutputFile
	}
	if config.Build.SheetName == "" {
		config.Build.SheetName = defaults.Build.SheetName
	}
	if config.Build.Rows == nil {
		config.Build.Rows = defaults.Build.Rows
	}
	if config.Patch.SourceFile == "" {
		config.Patch.SourceFile = defaults.Patch.SourceFile
	}
	if config.Patch.OutputFile == "" {
		config.Patch.OutputFile = defaults.Patch.OutputFile
	}
	if config.Patch.SheetName == "" {
		config.Patch.SheetName = defaults.Patch.SheetName
	}
	if config.Patch.Rows == nil {
		config.Patch.Rows = defaults.Patch.Rows
	}

	logger.Info("Loaded configuration", "path", configPath)
	return &config, nil
}

// SaveConfig saves configuration to the specified config file path.
func SaveConfig(configPath string, config *Config) error {
	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	logger.Info("Saved configuration", "path", configPath)
	return nil
}
