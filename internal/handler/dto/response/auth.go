package response

import "timebar/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	Shop        *queries.ShopView `json:"shop"`
}
