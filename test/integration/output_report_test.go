package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/investment-projector/internal/domain"
	"github.com/rpgo/investment-projector/internal/output"
)

func TestRenderAllFormats(t *testing.T) {
	engine := loadEngine(t, "../testdata/assets.yaml")
	seed := int64(5)
	report, err := engine.CompareAssets(context.Background(),
		domain.InvestmentPlan{Principal: 1000, MonthlyContribution: 100, HorizonYears: 3}, &seed)
	require.NoError(t, err)

	for _, name := range output.FormatNames() {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, output.Render(&buf, report, name))
			assert.NotEmpty(t, buf.String())
		})
	}

	var buf bytes.Buffer
	require.NoError(t, output.Render(&buf, report, "json"))
	var decoded domain.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, report.Assets[1].Asset.Name, decoded.Assets[1].Asset.Name)
	assert.True(t, report.Assets[1].Risk.P50.Equal(decoded.Assets[1].Risk.P50))

	buf.Reset()
	require.NoError(t, output.Render(&buf, report, "csv"))
	assert.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), 1+3*3)
}
