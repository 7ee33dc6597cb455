package stock

import "testing"

func TestParseLocaleNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1.234,50", 1234.50},
		{"1234", 1234},
		{"0,5", 0.5},
		{"10.000.000,99", 10000000.99},
		{"  120,00  ", 120},
		{"", 0},
		{"abc", 0},
		{"12,34,56", 0},
		{"-5,5", -5.5},
	}

	for _, c := range cases {
		if got := ParseLocaleNumber(c.in); got != c.want {
			t.Errorf("ParseLocaleNumber(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFormatLocaleNumber(t *testing.T) {
	cases := []struct {
		in       float64
		decimals int
		want     string
	}{
		{1234.5, 2, "1.234,50"},
		{0, 2, "0,00"},
		{999, 0, "999"},
		{1000, 0, "1.000"},
		{10000000.99, 2, "10.000.000,99"},
		{-1234.5, 2, "-1.234,50"},
	}

	for _, c := range cases {
		if got := FormatLocaleNumber(c.in, c.decimals); got != c.want {
			t.Errorf("FormatLocaleNumber(%v, %d) = %q, want %q", c.in, c.decimals, got, c.want)
		}
	}
}

func TestLocaleNumberRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.5, 12, 1234.56, 10000000.99} {
		got := ParseLocaleNumber(FormatLocaleNumber(v, 2))
		if got != v {
			t.Errorf("round trip de %v devolveu %v", v, got)
		}
	}
}
