package usecase

import (
	"context"
	"errors"

	"timebar/internal/domain/shop"
	"timebar/internal/pkg/jwt"
	"timebar/internal/pkg/password"
	"timebar/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrShopNotFound       = errors.New("shop not found")
	ErrInvalidCredentials = errors.New("invalid domain or password")
	ErrShopInactive       = errors.New("shop account is inactive")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type AuthUseCase interface {
	Login(ctx context.Context, credentials shop.Credentials) (string, *queries.ShopView, error)
	CurrentShop(ctx context.Context, shopID uuid.UUID) (*queries.ShopView, error)
	ValidateToken(tokenString string) (uuid.UUID, string, error)
}

type authUseCaseImpl struct {
	shops      queries.ShopReadStore
	jwtService *jwt.Service
}

func NewAuthUseCase(shops queries.ShopReadStore, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		shops:      shops,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials shop.Credentials) (string, *queries.ShopView, error) {
	view, err := a.validateShop(ctx, credentials)
	if err != nil {
		return "", nil, err
	}

	token, err := a.jwtService.GenerateToken(view.ID, view.Domain)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}
	return token, view, nil
}

func (a *authUseCaseImpl) validateShop(ctx context.Context, credentials shop.Credentials) (*queries.ShopView, error) {
	view, hashedPassword, err := a.shops.FindByDomain(ctx, credentials.Domain().String())
	if err != nil {
		// Same error as a password mismatch so shop domains are not enumerable
		return nil, ErrInvalidCredentials
	}
	if view == nil {
		return nil, ErrInvalidCredentials
	}
	if !view.IsActive {
		return nil, ErrShopInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	return view, nil
}

func (a *authUseCaseImpl) CurrentShop(ctx context.Context, shopID uuid.UUID) (*queries.ShopView, error) {
	view, err := a.shops.FindByID(ctx, shopID)
	if err != nil || view == nil {
		return nil, ErrShopNotFound
	}
	if !view.IsActive {
		return nil, ErrShopInactive
	}
	return view, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, string, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}
	return claims.ShopID, claims.ShopDomain, nil
}
