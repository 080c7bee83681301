package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	if got := m.Format(); got != "$12.35" { // rounded for display
		t.Fatalf("NewMoney display mismatch: got %s", got)
	}

	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}
}

func TestCents(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{2.344, "2.34"},
		{2.345, "2.35"},
		{1104.7130674412, "1104.71"},
		{-0.005, "-0.01"},
		{1200, "1200"},
	}
	for _, c := range cases {
		if got := Cents(c.in).String(); got != c.out {
			t.Fatalf("Cents(%v) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestIsNegative(t *testing.T) {
	if !NewMoney(-5.05).IsNegative() || NewMoney(10.10).IsNegative() {
		t.Fatalf("IsNegative logic failure")
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{0, "$0.00"},
		{12.5, "$12.50"},
		{999.999, "$1,000.00"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{-4321, "-$4,321.00"},
		{-0.001, "$0.00"},
	}
	for _, c := range cases {
		if got := NewMoney(c.in).Format(); got != c.out {
			t.Fatalf("Format(%v) got %s want %s", c.in, got, c.out)
		}
	}
}
