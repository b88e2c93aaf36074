//go:build unit || e2e

package builder

import (
	reqdto "timebar/internal/handler/dto/request"
)

type AuthBuilder struct {
	Domain   string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Domain:   "demo.myshopify.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Domain:   a.Domain,
		Password: a.Password,
	}
}
