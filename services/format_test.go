package services

import "testing"

func TestCurrencyFormatter_Format(t *testing.T) {
	cf, err := NewCurrencyFormatter("en-GB")
	if err != nil {
		t.Fatalf("NewCurrencyFormatter() error = %v", err)
	}

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"zero", "0", "0.00"},
		{"small integer", "5", "5.00"},
		{"with decimals", "42.5", "42.50"},
		{"sundries", "2.25", "2.25"},
		{"hundreds", "999.99", "999.99"},
		{"thousands", "1234.5", "1,234.50"},
		{"millions", "1234567.89", "1,234,567.89"},
		{"rounds half up", "0.125", "0.13"},
		{"third decimal place", "37.035", "37.04"},
		{"negative", "-100", "-100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cf.Format(dec(tt.input))
			if got != tt.expect {
				t.Errorf("Format(%s) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestCurrencyFormatter_ZeroValueUsesDefaultLocale(t *testing.T) {
	var cf CurrencyFormatter
	if got := cf.Format(dec("1234.5")); got != "1,234.50" {
		t.Errorf("Format() = %q, want %q", got, "1,234.50")
	}
}

func TestNewCurrencyFormatter_EmptyLocale(t *testing.T) {
	cf, err := NewCurrencyFormatter("")
	if err != nil {
		t.Fatalf("NewCurrencyFormatter(\"\") error = %v", err)
	}
	if got := cf.Format(dec("45")); got != "45.00" {
		t.Errorf("Format() = %q, want %q", got, "45.00")
	}
}

func TestNewCurrencyFormatter_InvalidLocale(t *testing.T) {
	if _, err := NewCurrencyFormatter("not a locale!"); err == nil {
		t.Error("expected error for invalid locale")
	}
}
