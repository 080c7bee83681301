package domain

import (
	"sort"
	"strings"
)

// AssetClass describes the return assumptions for one kind of investment
type AssetClass struct {
	Name           string  `yaml:"-" toml:"-" json:"name"`
	RiskLevel      string  `yaml:"risk_level" toml:"risk_level" json:"risk_level"`
	Volatility     float64 `yaml:"volatility" toml:"volatility" json:"volatility"`                // annual standard deviation
	ExpectedReturn float64 `yaml:"expected_return" toml:"expected_return" json:"expected_return"` // annual mean return
	Description    string  `yaml:"description" toml:"description" json:"description"`
}

// AssetCatalog maps asset class name to its assumptions
type AssetCatalog map[string]AssetClass

// Names returns the catalog keys in sorted order
func (c AssetCatalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named asset class with its Name populated
func (c AssetCatalog) Lookup(name string) (AssetClass, bool) {
	asset, ok := c[name]
	if !ok {
		return AssetClass{}, false
	}
	asset.Name = name
	return asset, true
}

// Resolve finds the catalog key matching name, ignoring case and surrounding space
func (c AssetCatalog) Resolve(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if _, ok := c[name]; ok {
		return name, true
	}
	for key := range c {
		if strings.EqualFold(key, name) {
			return key, true
		}
	}
	return "", false
}

// Limits bounds the work a single request may ask for
type Limits struct {
	MaxHorizonYears int `yaml:"max_horizon_years" toml:"max_horizon_years" json:"max_horizon_years"`
	MaxSimulations  int `yaml:"max_simulations" toml:"max_simulations" json:"max_simulations"`
}

// Configuration is the top-level asset catalog file
type Configuration struct {
	Simulations int          `yaml:"simulations" toml:"simulations" json:"simulations"`
	Limits      Limits       `yaml:"limits" toml:"limits" json:"limits"`
	Assets      AssetCatalog `yaml:"assets" toml:"assets" json:"assets"`
}
