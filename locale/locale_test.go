// File: /locale/locale_test.go
package locale

import (
	"testing"
	"time"
)

func TestNegotiate(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", Persian},
		{"en-US,en;q=0.9", English},
		{"fa-IR,fa;q=0.9,en;q=0.5", Persian},
	}
	for _, tt := range tests {
		if got := Negotiate(tt.header, Persian); got != tt.want {
			t.Errorf("Negotiate(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}

	if got := Negotiate("", "en"); got != English {
		t.Errorf("empty header must use the default, got %q", got)
	}
}

func TestDigits(t *testing.T) {
	if got := ToPersianDigits("09121234567"); got != "۰۹۱۲۱۲۳۴۵۶۷" {
		t.Errorf("ToPersianDigits = %q", got)
	}
	if got := ToLatinDigits("۰۹۱۲ ١٢٣"); got != "0912 123" {
		t.Errorf("ToLatinDigits = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n        float64
		decimals int
		lang     string
		want     string
	}{
		{1234567, 0, English, "1,234,567"},
		{999, 0, English, "999"},
		{-1500.5, 1, English, "-1,500.5"},
		{1250000, 0, Persian, "۱٬۲۵۰٬۰۰۰"},
		{4.5, 1, Persian, "۴٫۵"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n, tt.decimals, tt.lang); got != tt.want {
			t.Errorf("FormatNumber(%v, %d, %s) = %q, want %q", tt.n, tt.decimals, tt.lang, got, tt.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	if got := FormatCurrency(150000, English); got != "150,000 Toman" {
		t.Errorf("en currency = %q", got)
	}
	if got := FormatCurrency(150000, Persian); got != "۱۵۰٬۰۰۰ تومان" {
		t.Errorf("fa currency = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	nowruz := time.Date(2024, 3, 20, 18, 30, 0, 0, time.UTC)

	if got := FormatDate(nowruz, English); got != "Mar 20, 2024" {
		t.Errorf("en date = %q", got)
	}
	if got := FormatDate(nowruz, Persian); got != "۱ فروردین ۱۴۰۳" {
		t.Errorf("fa date = %q", got)
	}
}

func TestFormatCountdown(t *testing.T) {
	d := 2*24*time.Hour + 3*time.Hour + 15*time.Minute

	if got := FormatCountdown(d, English); got != "2d 3h 15m" {
		t.Errorf("en countdown = %q", got)
	}
	if got := FormatCountdown(2*24*time.Hour, Persian); got != "۲ روز" {
		t.Errorf("fa countdown = %q", got)
	}
	if got := FormatCountdown(30*time.Second, English); got != "1m" {
		t.Errorf("sub-minute countdown = %q", got)
	}
	if got := FormatCountdown(-time.Minute, English); got != "started" {
		t.Errorf("past countdown = %q", got)
	}
	if Direction("fa") != "rtl" || Direction("en-GB") != "ltr" {
		t.Error("unexpected text direction")
	}
}
