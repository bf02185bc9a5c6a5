package response

import (
	"github.com/venkatbala210/hotel-management-system/internal/gateway"

	"github.com/jinzhu/copier"
)

type LoginResponse struct {
	Token          string `json:"token"`
	Role           string `json:"role"`
	ExpirationTime string `json:"expirationTime,omitempty"`
	// Redirect echoes where the client should resume after a forced login.
	Redirect string `json:"redirect,omitempty"`
}

func FromLoginResult(result gateway.LoginResult, redirect string) *LoginResponse {
	var resp LoginResponse
	_ = copier.Copy(&resp, &result)
	resp.Redirect = redirect
	return &resp
}
