// File: /store/actions.go
package store

import (
	"time"

	"socialhub-app/geo"
	"socialhub-app/models"
)

type ActionType string

const (
	ActionSetEvents                ActionType = "set_events"
	ActionSetSocialHubs            ActionType = "set_social_hubs"
	ActionSetCategories            ActionType = "set_categories"
	ActionSetReservations          ActionType = "set_reservations"
	ActionSetLoading               ActionType = "set_loading"
	ActionSetError                 ActionType = "set_error"
	ActionToggleCategory           ActionType = "toggle_category"
	ActionToggleSocialHub          ActionType = "toggle_social_hub"
	ActionSetMaxPrice              ActionType = "set_max_price"
	ActionSetMinRating             ActionType = "set_min_rating"
	ActionSetDate                  ActionType = "set_date"
	ActionSetMinCapacity           ActionType = "set_min_capacity"
	ActionClearFilters             ActionType = "clear_filters"
	ActionLogin                    ActionType = "login"
	ActionLogout                   ActionType = "logout"
	ActionAddFavorite              ActionType = "add_favorite"
	ActionRemoveFavorite           ActionType = "remove_favorite"
	ActionSetFavorites             ActionType = "set_favorites"
	ActionReserve                  ActionType = "reserve"
	ActionAddReservation           ActionType = "add_reservation"
	ActionUpdateReservationStatus  ActionType = "update_reservation_status"
	ActionExpirePendingReservation ActionType = "expire_pending_reservation"
	ActionCleanupStaleReservations ActionType = "cleanup_stale_reservations"
	ActionAddToCart                ActionType = "add_to_cart"
	ActionRemoveFromCart           ActionType = "remove_from_cart"
	ActionUpdateCartItem           ActionType = "update_cart_item"
	ActionClearCart                ActionType = "clear_cart"
	ActionRestoreCart              ActionType = "restore_cart"
	ActionAddNotification          ActionType = "add_notification"
	ActionRemoveNotification       ActionType = "remove_notification"
	ActionSetLanguage              ActionType = "set_language"
	ActionSetUserLocation          ActionType = "set_user_location"
)

// Action is a tagged state transition request.
type Action interface {
	Type() ActionType
}

// Catalog

type SetEvents struct {
	Events []models.Event
	Source DataSource
}

type SetSocialHubs struct {
	SocialHubs []models.SocialHub
	Source     DataSource
}

type SetCategories struct {
	Categories []models.EventCategory
	Source     DataSource
}

type SetReservations struct {
	Reservations []models.Reservation
}

type SetLoading struct {
	Resource Resource
	Loading  bool
}

// SetError records a failed load. A nil Err clears the error.
type SetError struct {
	Resource Resource
	Err      *string
}

// Filters

type ToggleCategory struct{ CategoryID string }
type ToggleSocialHub struct{ SocialHubID string }
type SetMaxPrice struct{ MaxPrice *float64 }
type SetMinRating struct{ MinRating *float64 }
type SetDate struct{ Date *string }
type SetMinCapacity struct{ MinCapacity *int }
type ClearFilters struct{}

// Session

type Login struct{ Customer models.Customer }
type Logout struct{}

type AddFavorite struct{ SocialHubID string }
type RemoveFavorite struct{ SocialHubID string }
type SetFavorites struct{ SocialHubIDs []string }

// Reservations

// Reserve creates a pending reservation locally, without the API.
type Reserve struct {
	EventID        string
	NumberOfPeople int
	At             time.Time
}

// AddReservation inserts or replaces a reservation returned by the API.
type AddReservation struct{ Reservation models.Reservation }

type UpdateReservationStatus struct {
	ReservationID string
	Status        models.ReservationStatus
}

type ExpirePendingReservation struct{ ReservationID string }
type CleanupStaleReservations struct{}

// Cart

type AddToCart struct {
	Event          models.Event
	NumberOfPeople int
	At             time.Time
}

type RemoveFromCart struct{ EventID string }

type UpdateCartItem struct {
	EventID       string
	Status        models.CartStatus
	ReservationID string
}

type ClearCart struct{}
type RestoreCart struct{ Items []models.CartItem }

// UI

type AddNotification struct{ Notification models.Notification }
type RemoveNotification struct{ NotificationID string }
type SetLanguage struct{ Language string }
type SetUserLocation struct{ Location *geo.Point }

func (SetEvents) Type() ActionType                { return ActionSetEvents }
func (SetSocialHubs) Type() ActionType            { return ActionSetSocialHubs }
func (SetCategories) Type() ActionType            { return ActionSetCategories }
func (SetReservations) Type() ActionType          { return ActionSetReservations }
func (SetLoading) Type() ActionType               { return ActionSetLoading }
func (SetError) Type() ActionType                 { return ActionSetError }
func (ToggleCategory) Type() ActionType           { return ActionToggleCategory }
func (ToggleSocialHub) Type() ActionType          { return ActionToggleSocialHub }
func (SetMaxPrice) Type() ActionType              { return ActionSetMaxPrice }
func (SetMinRating) Type() ActionType             { return ActionSetMinRating }
func (SetDate) Type() ActionType                  { return ActionSetDate }
func (SetMinCapacity) Type() ActionType           { return ActionSetMinCapacity }
func (ClearFilters) Type() ActionType             { return ActionClearFilters }
func (Login) Type() ActionType                    { return ActionLogin }
func (Logout) Type() ActionType                   { return ActionLogout }
func (AddFavorite) Type() ActionType              { return ActionAddFavorite }
func (RemoveFavorite) Type() ActionType           { return ActionRemoveFavorite }
func (SetFavorites) Type() ActionType             { return ActionSetFavorites }
func (Reserve) Type() ActionType                  { return ActionReserve }
func (AddReservation) Type() ActionType           { return ActionAddReservation }
func (UpdateReservationStatus) Type() ActionType  { return ActionUpdateReservationStatus }
func (ExpirePendingReservation) Type() ActionType { return ActionExpirePendingReservation }
func (CleanupStaleReservations) Type() ActionType { return ActionCleanupStaleReservations }
func (AddToCart) Type() ActionType                { return ActionAddToCart }
func (RemoveFromCart) Type() ActionType           { return ActionRemoveFromCart }
func (UpdateCartItem) Type() ActionType           { return ActionUpdateCartItem }
func (ClearCart) Type() ActionType                { return ActionClearCart }
func (RestoreCart) Type() ActionType              { return ActionRestoreCart }
func (AddNotification) Type() ActionType          { return ActionAddNotification }
func (RemoveNotification) Type() ActionType       { return ActionRemoveNotification }
func (SetLanguage) Type() ActionType              { return ActionSetLanguage }
func (SetUserLocation) Type() ActionType          { return ActionSetUserLocation }

// TouchesCart reports whether applying a may change the cart.
func TouchesCart(a Action) bool {
	switch a.(type) {
	case AddToCart, RemoveFromCart, UpdateCartItem, ClearCart, RestoreCart, Logout, ExpirePendingReservation:
		return true
	}
	return false
}

// TouchesReservations reports whether applying a may change the reservation list.
func TouchesReservations(a Action) bool {
	switch a.(type) {
	case SetReservations, Reserve, AddReservation, UpdateReservationStatus,
		ExpirePendingReservation, CleanupStaleReservations:
		return true
	}
	return false
}
