package output

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/rpgo/investment-projector/internal/domain"
)

// ErrUnsupportedFormat is returned for format names with no registered formatter
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formatter turns a report into the bytes of one output format.
// Implementations are pure; writing is left to Render and Save.
type Formatter interface {
	Format(report *domain.Report) ([]byte, error)
	Name() string
	// Extension is the file extension Save uses, without the dot.
	Extension() string
}

var formatters = register(
	ConsoleFormatter{},
	ConsoleLiteFormatter{},
	CSVGrowthExporter{},
	CSVRiskSummarizer{},
	JSONFormatter{},
)

// aliases maps friendlier names onto registered formatters
var aliases = map[string]string{
	"table":       "console",
	"text":        "console-lite",
	"plain":       "console-lite",
	"csv-growth":  "csv",
	"csv-risk":    "risk-csv",
	"json-pretty": "json",
}

func register(fs ...Formatter) map[string]Formatter {
	m := make(map[string]Formatter, len(fs))
	for _, f := range fs {
		m[f.Name()] = f
	}
	return m
}

// Lookup resolves a format name or alias, ignoring case and surrounding space.
func Lookup(name string) (Formatter, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	if f, ok := formatters[key]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s", ErrUnsupportedFormat, name, strings.Join(FormatNames(), ", "))
}

// FormatNames returns the canonical format names in sorted order.
func FormatNames() []string {
	return slices.Sorted(maps.Keys(formatters))
}

// Render formats a report with the named formatter and writes it to w.
func Render(w io.Writer, report *domain.Report, format string) error {
	f, err := Lookup(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("formatting %s output: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// Save formats a report into investment_report_<timestamp>.<ext> in the
// working directory and returns the file name.
func Save(report *domain.Report, format string) (string, error) {
	f, err := Lookup(format)
	if err != nil {
		return "", err
	}
	data, err := f.Format(report)
	if err != nil {
		return "", fmt.Errorf("formatting %s output: %w", f.Name(), err)
	}
	filename := fmt.Sprintf("investment_report_%s.%s", time.Now().Format("20060102_150405"), f.Extension())
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}
