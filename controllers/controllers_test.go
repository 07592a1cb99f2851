// File: /controllers/controllers_test.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"socialhub-app/apiclient"
	"socialhub-app/models"
	"socialhub-app/services"
	"socialhub-app/store"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		in        string
		gregorian string
		jalali    string
		isJalali  bool
		wantErr   bool
	}{
		{in: "2024-03-20", gregorian: "2024-03-20", jalali: "1403/01/01"},
		{in: "1403-01-01", gregorian: "2024-03-20", jalali: "1403/01/01", isJalali: true},
		{in: "۱۴۰۳/۱۲/۳۰", gregorian: "2025-03-20", jalali: "1403/12/30", isJalali: true},
		{in: "1404-12-30", wantErr: true},
		{in: "2023-02-29", wantErr: true},
		{in: "20240320", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		day, err := parseDay(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseDay(%q) accepted", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseDay(%q): %v", tt.in, err)
			continue
		}
		if got := day.Gregorian.Format(dayLayout); got != tt.gregorian {
			t.Errorf("parseDay(%q) gregorian = %s, want %s", tt.in, got, tt.gregorian)
		}
		if got := day.Jalali.String(); got != tt.jalali {
			t.Errorf("parseDay(%q) jalali = %s, want %s", tt.in, got, tt.jalali)
		}
		if day.IsJalali != tt.isJalali {
			t.Errorf("parseDay(%q) isJalali = %v", tt.in, day.IsJalali)
		}
	}
}

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err  error
		want int
	}{
		{services.ErrLoginRequired, http.StatusUnauthorized},
		{fmt.Errorf("wrapped: %w", apiclient.ErrUnauthorized), http.StatusUnauthorized},
		{services.ErrEventNotFound, http.StatusNotFound},
		{services.ErrNotInCart, http.StatusNotFound},
		{services.ErrInvalidPhone, http.StatusBadRequest},
		{services.ErrInvalidAccuracy, http.StatusBadRequest},
		{services.ErrNotEnoughSeats, http.StatusConflict},
		{services.ErrReservationNotConfirmed, http.StatusConflict},
		{&services.ResendError{RetryAfter: 1500 * time.Millisecond}, http.StatusTooManyRequests},
		{services.ErrSessionClosed, http.StatusServiceUnavailable},
		{errors.New("connection refused"), http.StatusBadGateway},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		respondError(c, tt.err)
		if rec.Code != tt.want {
			t.Errorf("%v: status = %d, want %d", tt.err, rec.Code, tt.want)
		}
	}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	respondError(c, &services.ResendError{RetryAfter: 1500 * time.Millisecond})
	if got := rec.Header().Get("Retry-After"); got != "2" {
		t.Errorf("Retry-After = %q, want 2", got)
	}
}

func TestSummarize(t *testing.T) {
	now := time.Now()
	state := store.InitialState("fa")
	state.Cart = []models.CartItem{{
		Event:          &models.Event{ID: "e1", Price: 1000},
		NumberOfPeople: 3,
		TotalPrice:     3000,
		Status:         models.CartStatusInProgress,
	}}
	state.Reservations = []models.Reservation{
		{ID: "r1", Status: models.ReservationStatusPending},
		{ID: "r2", Status: models.ReservationStatusConfirmed},
	}
	state.Notifications = []models.Notification{models.NewNotification(models.NotificationTypeInfo, "hi")}

	sum := summarize(state, now)
	if sum.Direction != "rtl" {
		t.Errorf("direction = %s", sum.Direction)
	}
	if sum.Cart.Count != 1 || sum.Cart.TotalPrice != 3000 {
		t.Errorf("cart = %+v", sum.Cart)
	}
	if len(sum.PendingReservations) != 1 || sum.PendingReservations[0].ID != "r1" {
		t.Errorf("pending = %+v", sum.PendingReservations)
	}
	if sum.Counts.Reservations != 2 || len(sum.Notifications) != 1 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestEventViewMarksCartAndCapacity(t *testing.T) {
	now := time.Now()
	e := models.Event{ID: "e1", Price: 50000, Capacity: 10, TotalReservedPeople: 4, StartTime: now.Add(26 * time.Hour)}

	state := store.InitialState("en")
	state.Cart = []models.CartItem{{Event: &e, NumberOfPeople: 1, TotalPrice: 50000, Status: models.CartStatusInProgress}}

	v := newEventView(e, state, now)
	if !v.InCart || v.FreeCapacity != 6 {
		t.Errorf("view = %+v", v)
	}
	if v.PriceFormatted != "50,000 Toman" {
		t.Errorf("price = %q", v.PriceFormatted)
	}
	if v.StartsIn == "" || v.StartsIn == "started" {
		t.Errorf("starts_in = %q", v.StartsIn)
	}
}
