package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/investment-projector/internal/calculation"
	"github.com/rpgo/investment-projector/internal/domain"
)

// InputParser handles parsing of asset catalog files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// Load returns the built-in configuration when filename is empty, otherwise
// the parsed and validated file.
func (ip *InputParser) Load(filename string) (*domain.Configuration, error) {
	if filename == "" {
		return DefaultConfiguration(), nil
	}
	return ip.LoadFromFile(filename)
}

// LoadFromFile loads configuration from a YAML, JSON or TOML file.
// The format is chosen by extension; anything other than .toml is read as YAML.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	applyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// applyDefaults fills settings the file left out
func applyDefaults(config *domain.Configuration) {
	defaults := calculation.DefaultLimits()
	if config.Limits.MaxHorizonYears == 0 {
		config.Limits.MaxHorizonYears = defaults.MaxHorizonYears
	}
	if config.Limits.MaxSimulations == 0 {
		config.Limits.MaxSimulations = defaults.MaxSimulations
	}
	if config.Simulations == 0 {
		config.Simulations = calculation.DefaultSimulations
	}
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Limits.MaxHorizonYears <= 0 {
		return fmt.Errorf("limits.max_horizon_years must be positive")
	}
	if config.Limits.MaxSimulations <= 0 {
		return fmt.Errorf("limits.max_simulations must be positive")
	}
	if config.Simulations <= 0 || config.Simulations > config.Limits.MaxSimulations {
		return fmt.Errorf("simulations must be between 1 and %d", config.Limits.MaxSimulations)
	}

	if len(config.Assets) == 0 {
		return fmt.Errorf("no asset classes provided")
	}
	for _, name := range config.Assets.Names() {
		asset := config.Assets[name]
		if err := ip.validateAsset(name, &asset); err != nil {
			return fmt.Errorf("asset %s validation failed: %w", name, err)
		}
	}

	return nil
}

// validateAsset validates a single asset class
func (ip *InputParser) validateAsset(name string, asset *domain.AssetClass) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("asset name is required")
	}
	if asset.RiskLevel == "" {
		return fmt.Errorf("risk level is required")
	}
	if math.IsNaN(asset.Volatility) || math.IsInf(asset.Volatility, 0) || asset.Volatility < 0 {
		return fmt.Errorf("volatility must be a non-negative number")
	}
	if math.IsNaN(asset.ExpectedReturn) || math.IsInf(asset.ExpectedReturn, 0) {
		return fmt.Errorf("expected return must be a finite number")
	}
	if asset.ExpectedReturn < -1 {
		return fmt.Errorf("expected return cannot be less than -100%%")
	}
	return nil
}

// DefaultConfiguration returns the built-in asset catalog
func DefaultConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Simulations: calculation.DefaultSimulations,
		Limits:      calculation.DefaultLimits(),
		Assets: domain.AssetCatalog{
			"Savings": {
				RiskLevel:      "Low",
				Volatility:     0.01,
				ExpectedReturn: 0.04, // 4% APY
				Description:    "High liquidity, capital preservation focus. FD/High-Yield Savings.",
			},
			"Bonds": {
				RiskLevel:      "Low-Medium",
				Volatility:     0.05,
				ExpectedReturn: 0.06,
				Description:    "Fixed income securities, government/corporate bonds.",
			},
			"Index Funds": {
				RiskLevel:      "Medium-High",
				Volatility:     0.15,
				ExpectedReturn: 0.10, // S&P 500 historical average
				Description:    "Diversified equity exposure. S&P 500 / Total Market.",
			},
			"Crypto": {
				RiskLevel:      "Very High",
				Volatility:     0.80,
				ExpectedReturn: 0.15,
				Description:    "Digital assets, high volatility, speculative.",
			},
		},
	}
}

// SaveToFile writes a configuration as YAML, e.g. to seed an editable catalog
func (ip *InputParser) SaveToFile(filename string, config *domain.Configuration) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
