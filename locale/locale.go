// File: /locale/locale.go
package locale

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"socialhub-app/jalali"
)

const (
	Persian = "fa"
	English = "en"
)

var (
	supported = []language.Tag{language.Persian, language.English}
	matcher   = language.NewMatcher(supported)

	persianDigits = [10]rune{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'}
	arabicDigits  = [10]rune{'٠', '١', '٢', '٣', '٤', '٥', '٦', '٧', '٨', '٩'}
)

// Negotiate picks fa or en from an Accept-Language header, falling back to def.
func Negotiate(acceptLanguage, def string) string {
	if acceptLanguage == "" {
		return Normalize(def)
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Normalize(def)
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Normalize(def)
	}
	if idx == 1 {
		return English
	}
	return Persian
}

// Normalize maps anything that is not English to Persian, the product default.
func Normalize(lang string) string {
	if strings.HasPrefix(strings.ToLower(lang), English) {
		return English
	}
	return Persian
}

func Direction(lang string) string {
	if Normalize(lang) == Persian {
		return "rtl"
	}
	return "ltr"
}

// ToPersianDigits replaces ASCII digits in s with Extended Arabic-Indic digits.
func ToPersianDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			r = persianDigits[r-'0']
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToLatinDigits replaces Persian and Arabic-Indic digits in s with ASCII digits.
func ToLatinDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= persianDigits[0] && r <= persianDigits[9]:
			r = '0' + (r - persianDigits[0])
		case r >= arabicDigits[0] && r <= arabicDigits[9]:
			r = '0' + (r - arabicDigits[0])
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatNumber groups thousands and renders n with the given number of decimals.
func FormatNumber(n float64, decimals int, lang string) string {
	neg := n < 0
	s := strconv.FormatFloat(math.Abs(n), 'f', decimals, 64)

	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i+1:]
	}

	groupSep, decimalSep := ",", "."
	if Normalize(lang) == Persian {
		groupSep, decimalSep = "٬", "٫"
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(groupSep)
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteString(decimalSep)
		b.WriteString(frac)
	}

	if Normalize(lang) == Persian {
		return ToPersianDigits(b.String())
	}
	return b.String()
}

func FormatCurrency(amount float64, lang string) string {
	if Normalize(lang) == Persian {
		return FormatNumber(amount, 0, lang) + " تومان"
	}
	return FormatNumber(amount, 0, lang) + " Toman"
}

// FormatDate renders t as a Solar Hijri date for fa and a Gregorian one for en.
func FormatDate(t time.Time, lang string) string {
	if Normalize(lang) == Persian {
		return ToPersianDigits(jalali.FromTime(t).Format("d MMMM yyyy", Persian))
	}
	return t.Format("Jan 2, 2006")
}

func FormatDateTime(t time.Time, lang string) string {
	if Normalize(lang) == Persian {
		return FormatDate(t, lang) + "، " + ToPersianDigits(t.Format("15:04"))
	}
	return t.Format("Jan 2, 2006 15:04")
}

// FormatCountdown renders the time left until an event starts.
func FormatCountdown(d time.Duration, lang string) string {
	fa := Normalize(lang) == Persian
	if d <= 0 {
		if fa {
			return "شروع شده"
		}
		return "started"
	}

	days := int(d / (24 * time.Hour))
	hours := int(d % (24 * time.Hour) / time.Hour)
	minutes := int(d % time.Hour / time.Minute)

	units := [3]string{"d", "h", "m"}
	if fa {
		units = [3]string{" روز", " ساعت", " دقیقه"}
	}

	var parts []string
	for i, v := range [3]int{days, hours, minutes} {
		if v == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d%s", v, units[i]))
	}
	// under a minute left
	if len(parts) == 0 {
		parts = append(parts, "1"+units[2])
	}

	if fa {
		return ToPersianDigits(strings.Join(parts, " و "))
	}
	return strings.Join(parts, " ")
}
