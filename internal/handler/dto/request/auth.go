package request

import (
	"timebar/internal/domain/shop"
)

type LoginRequest struct {
	Domain   string `json:"domain" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (shop.Credentials, error) {
	return shop.NewCredentials(r.Domain, r.Password)
}
