// File: /jalali/jalali.go
//
// Package jalali converts between the Gregorian and the Solar Hijri (Persian) calendars.
// The arithmetic follows the 33-year break table used by the Iranian calendar authority
// and is exact for Solar Hijri years -61 through 3177.
package jalali

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrOutOfRange = errors.New("jalali: year out of supported range")

var breaks = [...]int{
	-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181,
	1210, 1635, 2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178,
}

// Month names, index 0 is Farvardin.
var (
	MonthNamesFa = [12]string{
		"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
		"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
	}
	MonthNamesEn = [12]string{
		"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
		"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand",
	}
	WeekdayNamesFa = [7]string{
		"یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنجشنبه", "جمعه", "شنبه",
	}
)

// Date is a Solar Hijri calendar date.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// ToJalali converts a Gregorian date to Solar Hijri.
func ToJalali(gy, gm, gd int) (Date, error) {
	if gy-621 < breaks[0] || gy-621 >= breaks[len(breaks)-1] {
		return Date{}, ErrOutOfRange
	}
	return dayToJalali(gregorianToDay(gy, gm, gd)), nil
}

// ToGregorian converts a Solar Hijri date to a Gregorian year, month and day.
func ToGregorian(jy, jm, jd int) (int, int, int, error) {
	if !Valid(jy, jm, jd) {
		return 0, 0, 0, fmt.Errorf("jalali: invalid date %04d/%02d/%02d", jy, jm, jd)
	}
	gy, gm, gd := dayToGregorian(jalaliToDay(jy, jm, jd))
	return gy, gm, gd, nil
}

// FromTime converts t, in its own location, to a Solar Hijri date.
func FromTime(t time.Time) Date {
	return dayToJalali(gregorianToDay(t.Year(), int(t.Month()), t.Day()))
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) (time.Time, error) {
	gy, gm, gd, err := ToGregorian(d.Year, d.Month, d.Day)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(gy, time.Month(gm), gd, 0, 0, 0, 0, loc), nil
}

// IsLeap reports whether jy has 366 days.
func IsLeap(jy int) bool {
	leap, _, _, err := calendar(jy, false)
	return err == nil && leap == 0
}

// MonthLength returns the number of days in the given Solar Hijri month.
func MonthLength(jy, jm int) int {
	switch {
	case jm <= 6:
		return 31
	case jm <= 11:
		return 30
	case IsLeap(jy):
		return 30
	default:
		return 29
	}
}

func Valid(jy, jm, jd int) bool {
	return jy >= breaks[0] && jy < breaks[len(breaks)-1] &&
		jm >= 1 && jm <= 12 &&
		jd >= 1 && jd <= MonthLength(jy, jm)
}

// Format renders d using a small layout language: yyyy, yy, MMMM (month name),
// MM, M, dd, d. Month names follow lang ("fa" or "en").
func (d Date) Format(layout, lang string) string {
	names := MonthNamesEn
	if lang == "fa" {
		names = MonthNamesFa
	}
	r := strings.NewReplacer(
		"yyyy", fmt.Sprintf("%04d", d.Year),
		"yy", fmt.Sprintf("%02d", d.Year%100),
		"MMMM", names[d.Month-1],
		"MM", fmt.Sprintf("%02d", d.Month),
		"M", fmt.Sprintf("%d", d.Month),
		"dd", fmt.Sprintf("%02d", d.Day),
		"d", fmt.Sprintf("%d", d.Day),
	)
	return r.Replace(layout)
}

// calendar returns, for Solar Hijri year jy, the number of years since the last
// leap year (0 means jy itself is leap), the Gregorian year in which jy starts,
// and the March day of Farvardin 1st.
func calendar(jy int, skipLeap bool) (leap, gy, march int, err error) {
	if jy < breaks[0] || jy >= breaks[len(breaks)-1] {
		return 0, 0, 0, ErrOutOfRange
	}

	gy = jy + 621
	leapJ := -14
	jp := breaks[0]
	jump := 0
	for i := 1; i < len(breaks); i++ {
		jm := breaks[i]
		jump = jm - jp
		if jy < jm {
			break
		}
		leapJ += jump/33*8 + (jump%33)/4
		jp = jm
	}

	n := jy - jp
	leapJ += n/33*8 + (n%33+3)/4
	if jump%33 == 4 && jump-n == 4 {
		leapJ++
	}

	leapG := gy/4 - (gy/100+1)*3/4 - 150
	march = 20 + leapJ - leapG
	if skipLeap {
		return 0, gy, march, nil
	}

	if jump-n < 6 {
		n = n - jump + (jump+4)/33*33
	}
	leap = ((n+1)%33 - 1) % 4
	if leap == -1 {
		leap = 4
	}
	return leap, gy, march, nil
}

func jalaliToDay(jy, jm, jd int) int {
	_, gy, march, _ := calendar(jy, true)
	return gregorianToDay(gy, 3, march) + (jm-1)*31 - jm/7*(jm-7) + jd - 1
}

func dayToJalali(jdn int) Date {
	gy, _, _ := dayToGregorian(jdn)
	jy := gy - 621
	leap, _, march, _ := calendar(jy, false)
	k := jdn - gregorianToDay(gy, 3, march)

	if k >= 0 {
		if k <= 185 {
			return Date{Year: jy, Month: 1 + k/31, Day: k%31 + 1}
		}
		k -= 186
	} else {
		jy--
		k += 179
		if leap == 1 {
			k++
		}
	}
	return Date{Year: jy, Month: 7 + k/30, Day: k%30 + 1}
}

// gregorianToDay returns the Julian Day Number of a Gregorian date.
func gregorianToDay(gy, gm, gd int) int {
	d := (gy+(gm-8)/6+100100)*1461/4 +
		(153*((gm+9)%12)+2)/5 +
		gd - 34840408
	return d - (gy+100100+(gm-8)/6)/100*3/4 + 752
}

func dayToGregorian(jdn int) (int, int, int) {
	j := 4*jdn + 139361631
	j += (4*jdn+183187720)/146097*3/4*4 - 3908
	i := (j%1461)/4*5 + 308
	gd := (i%153)/5 + 1
	gm := (i/153)%12 + 1
	gy := j/1461 - 100100 + (8-gm)/6
	return gy, gm, gd
}
