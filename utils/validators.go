// File: /utils/validators.go
package utils

import (
	"regexp"
	"strings"
	"unicode"

	"socialhub-app/locale"
)

var (
	emailRegex       = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	mobileRegex      = regexp.MustCompile(`^09\d{9}$`)
	verifyCodeRegex  = regexp.MustCompile(`^\d{4,6}$`)
	calendarDayRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// NormalizePhone converts an Iranian mobile number typed in any common form
// (Persian digits, spaces, +98, 0098, 98 prefix) to 09xxxxxxxxx. ok is false
// when the result is not a mobile number.
func NormalizePhone(phone string) (string, bool) {
	phone = locale.ToLatinDigits(phone)
	phone = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '(' || r == ')' {
			return -1
		}
		return r
	}, phone)

	switch {
	case strings.HasPrefix(phone, "+98"):
		phone = "0" + phone[3:]
	case strings.HasPrefix(phone, "0098"):
		phone = "0" + phone[4:]
	case strings.HasPrefix(phone, "98") && len(phone) == 12:
		phone = "0" + phone[2:]
	case strings.HasPrefix(phone, "9") && len(phone) == 10:
		phone = "0" + phone
	}

	return phone, mobileRegex.MatchString(phone)
}

// IsValidVerificationCode accepts 4 to 6 digit SMS codes in either digit set.
func IsValidVerificationCode(code string) bool {
	return verifyCodeRegex.MatchString(locale.ToLatinDigits(strings.TrimSpace(code)))
}

// IsCalendarDay reports whether s looks like YYYY-MM-DD. Range checks are
// left to the calendar being parsed.
func IsCalendarDay(s string) bool {
	return calendarDayRegex.MatchString(s)
}
