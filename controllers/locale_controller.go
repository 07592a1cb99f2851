// File: /controllers/locale_controller.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"socialhub-app/jalali"
	"socialhub-app/locale"
	"socialhub-app/middleware"
	"socialhub-app/models"
	"socialhub-app/services"
	"socialhub-app/store"
	"socialhub-app/utils"
)

const dayLayout = "2006-01-02"

// Years below this are read as Solar Hijri.
const jalaliYearLimit = 1700

var errBadDay = errors.New("date must be YYYY-MM-DD")

type LocaleController struct {
	location *services.LocationService
}

func NewLocaleController(location *services.LocationService) *LocaleController {
	return &LocaleController{location: location}
}

type SetLanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

func (lc *LocaleController) SetLanguage(c *gin.Context) {
	s := middleware.GetSession(c)

	var req SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}
	lang := strings.ToLower(strings.TrimSpace(req.Language))
	if lang != locale.Persian && lang != locale.English {
		utils.SendValidationError(c, "language must be fa or en")
		return
	}

	state := s.Dispatch(store.SetLanguage{Language: lang})
	c.JSON(http.StatusOK, gin.H{
		"language":  state.Language,
		"direction": state.Direction(),
	})
}

func (lc *LocaleController) UpdateLocation(c *gin.Context) {
	s := middleware.GetSession(c)

	var req models.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	p, err := lc.location.UpdateLocation(s, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"location": p})
}

func (lc *LocaleController) ClearLocation(c *gin.Context) {
	s := middleware.GetSession(c)
	lc.location.ClearLocation(s)
	utils.SendSuccess(c, "Location cleared", nil)
}

type calendarDay struct {
	Gregorian time.Time
	Jalali    jalali.Date
	IsJalali  bool
}

// parseDay reads YYYY-MM-DD (or YYYY/MM/DD) in either calendar. Persian digits
// are accepted.
func parseDay(raw string) (calendarDay, error) {
	v := strings.ReplaceAll(strings.TrimSpace(locale.ToLatinDigits(raw)), "/", "-")
	if !utils.IsCalendarDay(v) {
		return calendarDay{}, errBadDay
	}

	parts := strings.Split(v, "-")
	y, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	d, _ := strconv.Atoi(parts[2])

	if y < jalaliYearLimit {
		jd := jalali.Date{Year: y, Month: m, Day: d}
		t, err := jd.Time(time.UTC)
		if err != nil {
			return calendarDay{}, fmt.Errorf("%s is not a valid Solar Hijri date", v)
		}
		return calendarDay{Gregorian: t, Jalali: jd, IsJalali: true}, nil
	}

	t, err := time.Parse(dayLayout, v)
	if err != nil {
		return calendarDay{}, fmt.Errorf("%s is not a valid Gregorian date", v)
	}
	jd, err := jalali.ToJalali(y, m, d)
	if err != nil {
		return calendarDay{}, err
	}
	return calendarDay{Gregorian: t, Jalali: jd}, nil
}

// ConvertDate converts ?date= between calendars. The target defaults to the
// other calendar; to=gregorian or to=jalali forces one.
func (lc *LocaleController) ConvertDate(c *gin.Context) {
	s := middleware.GetSession(c)
	lang := s.State().Language

	day, err := parseDay(c.Query("date"))
	if err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	to := strings.ToLower(c.Query("to"))
	switch to {
	case "":
		to = "jalali"
		if day.IsJalali {
			to = "gregorian"
		}
	case "gregorian", "jalali":
	default:
		utils.SendValidationError(c, "to must be gregorian or jalali")
		return
	}

	result := day.Jalali.Format("yyyy-MM-dd", lang)
	if to == "gregorian" {
		result = day.Gregorian.Format(dayLayout)
	}

	c.JSON(http.StatusOK, gin.H{
		"to":        to,
		"result":    result,
		"gregorian": day.Gregorian.Format(dayLayout),
		"jalali":    day.Jalali,
		"weekday":   weekdayName(day.Gregorian.Weekday(), lang),
		"formatted": locale.FormatDate(day.Gregorian, lang),
	})
}

func weekdayName(w time.Weekday, lang string) string {
	if lang == locale.Persian {
		return jalali.WeekdayNamesFa[w]
	}
	return w.String()
}
