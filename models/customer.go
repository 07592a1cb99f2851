// File: /models/customer.go
package models

type Customer struct {
	ID          string      `json:"id"`
	PhoneNumber string      `json:"phone_number"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Email       string      `json:"email,omitempty"`
	Favorites   StringSlice `json:"favorites"`
}

func (c Customer) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}

type AuthState struct {
	User       *Customer `json:"user"`
	IsLoggedIn bool      `json:"isLoggedIn"`
}

type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

type SendCodeRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

type VerifyCodeRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Code        string `json:"code" binding:"required"`
}

// VerifyCodeResponse is what the gateway returns after a successful SMS verification.
type VerifyCodeResponse struct {
	Access   string   `json:"access"`
	Refresh  string   `json:"refresh"`
	Customer Customer `json:"customer"`
	IsNew    bool     `json:"is_new"`
}
