package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	domtimer "timebar/internal/domain/timer"
	reqdto "timebar/internal/handler/dto/request"
	resdto "timebar/internal/handler/dto/response"
	"timebar/internal/handler/httperr"
	"timebar/internal/handler/middleware"
	"timebar/internal/pkg/clock"
	"timebar/internal/usecase/commands"
	"timebar/internal/usecase/queries"
	"timebar/internal/widget/countdown"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TimerHandler struct {
	cmds  commands.TimerCommands
	q     queries.TimerQueries
	clock clock.Clock
}

func NewTimerHandler(cmds commands.TimerCommands, q queries.TimerQueries, clk clock.Clock) *TimerHandler {
	return &TimerHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Create timer
// @Description Create a fixed or evergreen countdown timer for the authenticated shop
// @Tags timers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTimerRequest true "Create timer request"
// @Success 201 {object} resdto.TimerResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /timers [post]
func (h *TimerHandler) Create(c *gin.Context) {
	shopID, ok := middleware.GetShopID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing shop context"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreateTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand(), shopID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create timer failed", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.TimerID, shopID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load timer", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTimerView(view))
}

// @Summary Get timer
// @Description Get one of the shop's timers by ID
// @Tags timers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Timer ID"
// @Success 200 {object} resdto.TimerResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /timers/{id} [get]
func (h *TimerHandler) Get(c *gin.Context) {
	shopID, ok := middleware.GetShopID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing shop context"), "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id, shopID)
	if err != nil {
		if errors.Is(err, queries.ErrTimerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimerView(view))
}

// @Summary List timers
// @Description List the shop's timers with optional filters and keyset pagination
// @Tags timers
// @Produce json
// @Security BearerAuth
// @Param kind query string false "Filter by kind (fixed|evergreen)"
// @Param active query bool false "Filter by enabled flag"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.TimerListItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /timers [get]
func (h *TimerHandler) List(c *gin.Context) {
	shopID, ok := middleware.GetShopID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing shop context"), "Unauthorized", nil)
		return
	}

	var filters queries.TimerFilters
	if v := c.Query("kind"); v != "" {
		filters.Kind = &v
	}
	if v := c.Query("active"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filters.Active = &b
		}
	}
	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.ListByShop(c.Request.Context(), shopID, filters, cursor, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	resp := gin.H{"timers": resdto.FromTimerList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update timer
// @Description Partially update one of the shop's timers; kind is immutable
// @Tags timers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Timer ID"
// @Param request body reqdto.UpdateTimerRequest true "Update timer request"
// @Success 200 {object} resdto.TimerResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /timers/{id} [put]
func (h *TimerHandler) Update(c *gin.Context) {
	shopID, ok := middleware.GetShopID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing shop context"), "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateTimerRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToCommand(), shopID); err != nil {
		h.abortCommandErr(c, err, "Update failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id, shopID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load timer", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimerView(view))
}

// @Summary Enable or disable timer
// @Description Flip the timer's enabled flag without touching its schedule
// @Tags timers
// @Accept json
// @Security BearerAuth
// @Param id path string true "Timer ID"
// @Param request body reqdto.SetTimerActiveRequest true "Toggle request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /timers/{id}/active [patch]
func (h *TimerHandler) SetActive(c *gin.Context) {
	shopID, ok := middleware.GetShopID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing shop context"), "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.SetTimerActiveRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil || req.Active == nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.SetActive(c.Request.Context(), id, *req.Active, shopID); err != nil {
		h.abortCommandErr(c, err, "Toggle failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete timer
// @Description Delete one of the shop's timers
// @Tags timers
// @Security BearerAuth
// @Param id path string true "Timer ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /timers/{id} [delete]
func (h *TimerHandler) Delete(c *gin.Context) {
	shopID, ok := middleware.GetShopID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing shop context"), "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id, shopID); err != nil {
		h.abortCommandErr(c, err, "Delete failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Preview countdown
// @Description Stream the live countdown text for a timer as server-sent events
// @Tags timers
// @Produce text/event-stream
// @Security BearerAuth
// @Param id path string true "Timer ID"
// @Param seconds query int false "Max stream length in seconds (default 60, max 300)"
// @Success 200 {string} string "SSE stream of tick events"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /timers/{id}/preview [get]
func (h *TimerHandler) Preview(c *gin.Context) {
	shopID, ok := middleware.GetShopID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing shop context"), "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id, shopID)
	if err != nil {
		if errors.Is(err, queries.ErrTimerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	maxSeconds := 60
	if v := c.Query("seconds"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil && iv > 0 && iv <= 300 {
			maxSeconds = iv
		}
	}

	now := h.clock.Now()
	end := previewEnd(view, now)

	frames := make(chan countdown.Frame, 1)
	expired := make(chan struct{})
	loop := countdown.NewLoop(end,
		func(f countdown.Frame) {
			select {
			case frames <- f:
			default: // slow client, drop the tick
			}
		},
		func() { close(expired) },
		countdown.WithClock(h.clock),
	)
	loop.Start()
	defer loop.Stop()

	deadline := time.After(time.Duration(maxSeconds) * time.Second)
	c.Header("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case f := <-frames:
			c.SSEvent("tick", f.Text)
			return true
		case <-expired:
			c.SSEvent("expired", "")
			return false
		case <-deadline:
			return false
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// previewEnd mirrors what the storefront runtime would display: the stored
// window for fixed timers, a freshly armed window for evergreen ones.
func previewEnd(view *queries.TimerView, now time.Time) time.Time {
	if view.Kind == domtimer.KindEvergreen.String() {
		return now.Add(time.Duration(view.DurationMinutes) * time.Minute)
	}
	if view.EndsAt != nil {
		return *view.EndsAt
	}
	return now
}

func (h *TimerHandler) abortCommandErr(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, commands.ErrTimerNotFoundWrite), errors.Is(err, commands.ErrTimerNotOwned):
		// Not-owned reads as absence so timer IDs stay opaque across shops
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
	}
}
