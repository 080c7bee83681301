package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/investment-projector/internal/domain"
)

// ConsoleLiteFormatter provides a concise plain-text summary via the formatter interface.
type ConsoleLiteFormatter struct{}

func (c ConsoleLiteFormatter) Name() string { return "console-lite" }
func (c ConsoleLiteFormatter) Extension() string { return "txt" }

func (c ConsoleLiteFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "INVESTMENT PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, ar := range report.Assets {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s: Risk=%s Return=%s Volatility=%s\n",
			assetTitle(ar),
			orDash(ar.Asset.RiskLevel),
			FormatPercentage(ar.Asset.ExpectedReturn),
			FormatPercentage(ar.Asset.Volatility),
		)
		if last, ok := ar.Growth.Final(); ok {
			fmt.Fprintf(&buf, "  Year %d: Balance=%s Principal=%s Interest=%s\n",
				last.Year,
				FormatCurrency(last.Balance),
				FormatCurrency(last.TotalPrincipal),
				FormatCurrency(last.Interest),
			)
		}
		if ar.Risk != nil {
			fmt.Fprintf(&buf, "  Range: P5=%s P50=%s P95=%s\n",
				FormatCurrency(ar.Risk.P5),
				FormatCurrency(ar.Risk.P50),
				FormatCurrency(ar.Risk.P95),
			)
		}
	}
	return buf.Bytes(), nil
}

func assetTitle(ar domain.AssetReport) string {
	if ar.Asset.Name == "" {
		return "Custom"
	}
	return ar.Asset.Name
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
