// File: /apiclient/endpoints.go
package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"socialhub-app/models"
)

// Catalog

func (c *Client) ListEvents(ctx context.Context) ([]models.Event, error) {
	return getList[models.Event](ctx, c, "/events/")
}

func (c *Client) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	var e models.Event
	if err := c.do(ctx, http.MethodGet, "/events/"+url.PathEscape(id)+"/", nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *Client) ListSocialHubs(ctx context.Context) ([]models.SocialHub, error) {
	return getList[models.SocialHub](ctx, c, "/social-hubs/")
}

func (c *Client) GetSocialHub(ctx context.Context, id string) (*models.SocialHub, error) {
	var h models.SocialHub
	if err := c.do(ctx, http.MethodGet, "/social-hubs/"+url.PathEscape(id)+"/", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]models.EventCategory, error) {
	return getList[models.EventCategory](ctx, c, "/event-categories/")
}

// Auth

func (c *Client) SendCode(ctx context.Context, phone string) error {
	return c.do(ctx, http.MethodPost, "/auth/send-code/", models.SendCodeRequest{PhoneNumber: phone}, nil)
}

func (c *Client) VerifyCode(ctx context.Context, phone, code string) (*models.VerifyCodeResponse, error) {
	var resp models.VerifyCodeResponse
	req := models.VerifyCodeRequest{PhoneNumber: phone, Code: code}
	if err := c.do(ctx, http.MethodPost, "/auth/verify-code/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RefreshToken exchanges a refresh token for a new token pair. The gateway may
// omit the refresh token when it does not rotate it.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (*models.Tokens, error) {
	var t models.Tokens
	if err := c.do(ctx, http.MethodPost, "/auth/refresh/", models.RefreshRequest{Refresh: refresh}, &t); err != nil {
		return nil, err
	}
	if t.Refresh == "" {
		t.Refresh = refresh
	}
	return &t, nil
}

func (c *Client) Me(ctx context.Context) (*models.Customer, error) {
	var customer models.Customer
	if err := c.do(ctx, http.MethodGet, "/customers/me/", nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Reservations

func (c *Client) ListMyReservations(ctx context.Context) ([]models.Reservation, error) {
	return getList[models.Reservation](ctx, c, "/reservations/")
}

func (c *Client) CreateReservation(ctx context.Context, eventID string, people int) (*models.Reservation, error) {
	var r models.Reservation
	req := models.CreateReservationRequest{Event: eventID, NumberOfPeople: people}
	if err := c.do(ctx, http.MethodPost, "/reservations/", req, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) ConfirmReservation(ctx context.Context, id string) (*models.Reservation, error) {
	return c.reservationAction(ctx, id, "confirm")
}

func (c *Client) CancelReservation(ctx context.Context, id string) (*models.Reservation, error) {
	return c.reservationAction(ctx, id, "cancel")
}

func (c *Client) reservationAction(ctx context.Context, id, action string) (*models.Reservation, error) {
	var r models.Reservation
	if err := c.do(ctx, http.MethodPost, "/reservations/"+url.PathEscape(id)+"/"+action+"/", nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Favorites

type favoriteStatus struct {
	IsFavorite bool `json:"is_favorite"`
}

type favoriteCount struct {
	Count int `json:"count"`
}

func favoritePath(hubID string) string {
	return "/customers/favorites/" + url.PathEscape(hubID) + "/"
}

func (c *Client) ListFavorites(ctx context.Context) ([]models.SocialHub, error) {
	return getList[models.SocialHub](ctx, c, "/customers/favorites/")
}

func (c *Client) AddFavorite(ctx context.Context, hubID string) error {
	return c.do(ctx, http.MethodPost, favoritePath(hubID), nil, nil)
}

func (c *Client) RemoveFavorite(ctx context.Context, hubID string) error {
	return c.do(ctx, http.MethodDelete, favoritePath(hubID), nil, nil)
}

func (c *Client) CheckFavorite(ctx context.Context, hubID string) (bool, error) {
	var st favoriteStatus
	if err := c.do(ctx, http.MethodGet, favoritePath(hubID)+"check/", nil, &st); err != nil {
		return false, err
	}
	return st.IsFavorite, nil
}

func (c *Client) ClearFavorites(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/customers/favorites/", nil, nil)
}

func (c *Client) CountFavorites(ctx context.Context) (int, error) {
	var n favoriteCount
	if err := c.do(ctx, http.MethodGet, "/customers/favorites/count/", nil, &n); err != nil {
		return 0, err
	}
	return n.Count, nil
}

// Cart mirror

type cartItemRequest struct {
	Event          string `json:"event"`
	NumberOfPeople int    `json:"number_of_people"`
}

func (c *Client) AddCartItem(ctx context.Context, eventID string, people int) error {
	return c.do(ctx, http.MethodPost, "/cart/items/", cartItemRequest{Event: eventID, NumberOfPeople: people}, nil)
}

func (c *Client) RemoveCartItem(ctx context.Context, eventID string) error {
	return c.do(ctx, http.MethodDelete, "/cart/items/"+url.PathEscape(eventID)+"/", nil, nil)
}

// Support tickets

func (c *Client) ListTickets(ctx context.Context) ([]models.SupportTicket, error) {
	return getList[models.SupportTicket](ctx, c, "/support/tickets/")
}

func (c *Client) GetTicket(ctx context.Context, id string) (*models.SupportTicket, error) {
	var t models.SupportTicket
	if err := c.do(ctx, http.MethodGet, "/support/tickets/"+url.PathEscape(id)+"/", nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) CreateTicket(ctx context.Context, req models.CreateTicketRequest) (*models.SupportTicket, error) {
	var t models.SupportTicket
	if err := c.do(ctx, http.MethodPost, "/support/tickets/", req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) AddTicketComment(ctx context.Context, id, message string) (*models.TicketComment, error) {
	var comment models.TicketComment
	req := models.AddCommentRequest{Message: message}
	if err := c.do(ctx, http.MethodPost, "/support/tickets/"+url.PathEscape(id)+"/comments/", req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}
