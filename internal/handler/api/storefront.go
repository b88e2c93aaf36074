package api

import (
	"errors"
	"net/http"
	"strings"

	reqdto "timebar/internal/handler/dto/request"
	"timebar/internal/handler/httperr"
	"timebar/internal/usecase/commands"
	"timebar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// StorefrontHandler serves the unauthenticated endpoints the embedded widget
// talks to. Responses stay minimal and cacheable-by-nobody: the widget polls
// per page view.
type StorefrontHandler struct {
	q    queries.StorefrontQueries
	cmds commands.ImpressionCommands
}

func NewStorefrontHandler(q queries.StorefrontQueries, cmds commands.ImpressionCommands) *StorefrontHandler {
	return &StorefrontHandler{q: q, cmds: cmds}
}

// @Summary Resolve storefront timer
// @Description Return the timer the widget should display for this shop and page context
// @Tags storefront
// @Produce json
// @Param shop query string true "Shop domain"
// @Param product_id query string false "Product ID of the current page"
// @Param collection_ids query string false "Comma-separated collection IDs of the current page"
// @Success 200 {object} queries.StorefrontTimerView
// @Success 204 "No timer to display"
// @Failure 400 {object} map[string]string
// @Router /storefront/timer [get]
func (h *StorefrontHandler) GetTimer(c *gin.Context) {
	shopDomain := c.Query("shop")
	if shopDomain == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("missing shop parameter"), "Missing shop", nil)
		return
	}
	productID := c.Query("product_id")
	collectionIDs := splitCSV(c.QueryArray("collection_ids"))

	view, err := h.q.ActiveTimer(c.Request.Context(), shopDomain, productID, collectionIDs)
	if err != nil {
		if errors.Is(err, queries.ErrNoActiveTimer) {
			c.Status(http.StatusNoContent)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Record impression
// @Description Count one widget view for a timer; accepted even when the timer is gone
// @Tags storefront
// @Accept json
// @Param request body reqdto.RecordImpressionRequest true "Impression"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string
// @Router /storefront/impressions [post]
func (h *StorefrontHandler) RecordImpression(c *gin.Context) {
	var req reqdto.RecordImpressionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Record(c.Request.Context(), req.Shop, req.TimerID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.Status(http.StatusAccepted)
}

// splitCSV flattens repeated query params and comma-joined values into one
// list; the widget client sends the latter.
func splitCSV(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
