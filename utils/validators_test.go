// File: /utils/validators_test.go
package utils

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"09121234567", "09121234567", true},
		{"+989121234567", "09121234567", true},
		{"00989121234567", "09121234567", true},
		{"989121234567", "09121234567", true},
		{"9121234567", "09121234567", true},
		{"۰۹۱۲ ۱۲۳ ۴۵۶۷", "09121234567", true},
		{"0912-123-4567", "09121234567", true},
		{"0212345678", "0212345678", false},
		{"0912123456", "0912123456", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizePhone(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NormalizePhone(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIsValidVerificationCode(t *testing.T) {
	for code, want := range map[string]bool{
		"1234":    true,
		"۱۲۳۴۵":   true,
		"123456":  true,
		"123":     false,
		"1234567": false,
		"12a4":    false,
	} {
		if got := IsValidVerificationCode(code); got != want {
			t.Errorf("IsValidVerificationCode(%q) = %v", code, got)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	if !IsValidEmail("user@example.com") {
		t.Error("valid email rejected")
	}
	if IsValidEmail("user@") {
		t.Error("invalid email accepted")
	}
}
