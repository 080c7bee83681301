package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/investment-projector/internal/calculation"
	"github.com/rpgo/investment-projector/internal/domain"
)

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func decodeReport(t *testing.T, out string) domain.Report {
	t.Helper()
	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	return report
}

func TestProjectCommand(t *testing.T) {
	out, _, err := runCommand(t, "project", "--principal", "1000", "--rate", "0.10", "--years", "1", "--format", "json")
	require.NoError(t, err)

	report := decodeReport(t, out)
	require.Len(t, report.Assets, 1)
	require.Len(t, report.Assets[0].Growth, 1)
	assert.Equal(t, "1104.71", report.Assets[0].Growth[0].Balance.StringFixed(2))
}

func TestProjectCommandRejectsInvalidInput(t *testing.T) {
	_, stderr, err := runCommand(t, "project", "--principal", "-1", "--rate", "0.05", "--years", "5")
	require.Error(t, err)
	assert.ErrorIs(t, err, calculation.ErrInvalidInput)
	assert.Contains(t, stderr, "principal cannot be negative")
}

func TestProjectCommandReportsOverflow(t *testing.T) {
	_, stderr, err := runCommand(t, "project", "--principal", "1e308", "--rate", "0.5", "--years", "5")
	require.Error(t, err)
	assert.ErrorIs(t, err, calculation.ErrInvalidInput)
	assert.Contains(t, stderr, "balance overflows")
}

func TestRiskCommand(t *testing.T) {
	args := []string{"risk", "--principal", "1000", "--years", "10", "--mean", "0.07", "--volatility", "0.15", "--seed", "42", "--format", "json"}
	out, _, err := runCommand(t, args...)
	require.NoError(t, err)
	again, _, err := runCommand(t, args...)
	require.NoError(t, err)
	assert.Equal(t, out, again)

	report := decodeReport(t, out)
	risk := report.Assets[0].Risk
	require.NotNil(t, risk)
	assert.True(t, risk.P5.LessThanOrEqual(risk.P50))
	assert.True(t, risk.P50.LessThanOrEqual(risk.P95))
	assert.Equal(t, calculation.DefaultSimulations, report.Assets[0].Simulations)
}

func TestRiskCommandZeroHorizon(t *testing.T) {
	out, _, err := runCommand(t, "risk", "--principal", "500", "--years", "0", "--mean", "0.07", "--volatility", "0.15", "--format", "json")
	require.NoError(t, err)

	risk := decodeReport(t, out).Assets[0].Risk
	require.NotNil(t, risk)
	assert.True(t, risk.P5.Equal(decimal.NewFromInt(500)))
	assert.True(t, risk.P95.Equal(decimal.NewFromInt(500)))
}

func TestRiskCommandRejectsNegativeHorizon(t *testing.T) {
	_, _, err := runCommand(t, "risk", "--principal", "1000", "--years", "-1", "--mean", "0.05", "--volatility", "0.1")
	assert.ErrorIs(t, err, calculation.ErrInvalidInput)
}

func TestDashboardCommand(t *testing.T) {
	out, _, err := runCommand(t, "dashboard", "index funds", "--seed", "7", "--format", "json")
	require.NoError(t, err)

	report := decodeReport(t, out)
	require.Len(t, report.Assets, 1)
	ar := report.Assets[0]
	assert.Equal(t, "Index Funds", ar.Asset.Name)
	assert.Len(t, ar.Growth, 10)
	assert.Equal(t, 70000.0, ar.RiskBasis)
	require.NotNil(t, ar.Risk)
}

func TestDashboardCommandConsole(t *testing.T) {
	out, _, err := runCommand(t, "dashboard", "Savings", "--years", "3", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Savings Dashboard")
	assert.Contains(t, out, "Projected Returns")
	assert.Contains(t, out, "Median (50%)")
}

func TestDashboardCommandUnknownAsset(t *testing.T) {
	_, _, err := runCommand(t, "dashboard", "Gold")
	require.Error(t, err)
	assert.ErrorIs(t, err, calculation.ErrUnknownAsset)
	assert.Contains(t, err.Error(), "Bonds, Crypto, Index Funds, Savings")
}

func TestCompareCommand(t *testing.T) {
	out, _, err := runCommand(t, "compare", "--years", "5", "--seed", "3", "--format", "risk-csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[1], "Bonds,"))
	assert.True(t, strings.HasPrefix(lines[4], "Savings,"))
}

func TestAssetsCommandWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[assets.Gold]
risk_level = "Medium"
volatility = 0.12
expected_return = 0.05
description = "Physical and paper gold."
`), 0o644))

	out, _, err := runCommand(t, "assets", "--config", path, "--format", "plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Gold: Risk=Medium Return=5.0% Volatility=12.0%")
	assert.NotContains(t, out, "Savings")
}

func TestInitConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	out, _, err := runCommand(t, "init-config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Asset catalog written to")

	out, _, err = runCommand(t, "dashboard", "crypto", "--config", path, "--format", "csv", "--years", "2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Asset,Year,Balance,TotalPrincipal,Interest\nCrypto,1,"))
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := runCommand(t, "dashboard", "Bonds", "--years", "2", "--seed", "5", "--verbose", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "built report for Bonds")
}

func TestUnsupportedFormat(t *testing.T) {
	_, _, err := runCommand(t, "assets", "--format", "pdf")
	assert.Error(t, err)
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := runCommand(t, "assets", "--config", "does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading asset catalog")
}
