package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/investment-projector/internal/domain"
)

// CSVGrowthExporter writes the yearly growth table, one row per asset and year.
type CSVGrowthExporter struct{}

func (c CSVGrowthExporter) Name() string { return "csv" }
func (c CSVGrowthExporter) Extension() string { return "csv" }

func (c CSVGrowthExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Asset", "Year", "Balance", "TotalPrincipal", "Interest"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, ar := range report.Assets {
		for _, snap := range ar.Growth {
			row := []string{
				ar.Asset.Name,
				strconv.Itoa(snap.Year),
				snap.Balance.StringFixed(2),
				snap.TotalPrincipal.StringFixed(2),
				snap.Interest.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVRiskSummarizer writes one row per asset with its assumptions and risk range.
type CSVRiskSummarizer struct{}

func (c CSVRiskSummarizer) Name() string { return "risk-csv" }
func (c CSVRiskSummarizer) Extension() string { return "csv" }

func (c CSVRiskSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Asset", "RiskLevel", "ExpectedReturn", "Volatility", "Years", "RiskBasis", "Simulations", "FinalBalance", "P5", "P50", "P95"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, ar := range report.Assets {
		row := []string{
			ar.Asset.Name,
			ar.Asset.RiskLevel,
			strconv.FormatFloat(ar.Asset.ExpectedReturn, 'f', -1, 64),
			strconv.FormatFloat(ar.Asset.Volatility, 'f', -1, 64),
			strconv.Itoa(ar.Plan.HorizonYears),
			strconv.FormatFloat(ar.RiskBasis, 'f', 2, 64),
			strconv.Itoa(ar.Simulations),
			"", "", "", "",
		}
		if last, ok := ar.Growth.Final(); ok {
			row[7] = last.Balance.StringFixed(2)
		}
		if ar.Risk != nil {
			row[8] = ar.Risk.P5.StringFixed(2)
			row[9] = ar.Risk.P50.StringFixed(2)
			row[10] = ar.Risk.P95.StringFixed(2)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
