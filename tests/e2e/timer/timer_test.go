//go:build e2e

package timer_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"timebar/internal/handler/dto/response"
	"timebar/tests/common/authtest"
	"timebar/tests/common/builder"
	"timebar/tests/common/dbtest"
	"timebar/tests/common/httptest"
	"timebar/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const timersURL = "/api/timers"

type TimerSuite struct {
	e2e.SharedSuite
}

func (s *TimerSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestTimerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(TimerSuite))
}

// =============================================================================
// TestCreateTimer - Timer creation API tests
// =============================================================================

func (s *TimerSuite) TestCreateTimer() {
	s.Run("Normal case: Fixed-window timer created successfully", func() {
		t := s.T()

		dbtest.CreateTestShop(t, s.DB, "alpha.myshopify.com", "Alpha Shop")
		token := authtest.LoginShop(t, s.Router, "alpha.myshopify.com", "password123")

		startsAt := time.Now().Add(1 * time.Hour).Truncate(time.Second)
		endsAt := startsAt.Add(24 * time.Hour)
		reqBody := builder.NewTimerBuilder().
			WithWindow(startsAt, endsAt).
			WithAppearance([]byte(`{"message":"Sale ends in","bg_color":"#111111"}`)).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, timersURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, "Should create timer successfully")

		var actual response.TimerResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actual)
		require.NoError(t, err)
		require.NotEmpty(t, actual.ID, "Timer ID should not be empty")

		startsUnix := startsAt.Unix()
		endsUnix := endsAt.Unix()
		expected := &response.TimerResponse{
			Kind:           "fixed",
			Status:         "scheduled",
			StartsAt:       &startsUnix,
			EndsAt:         &endsUnix,
			TargetingScope: "all",
			Active:         true,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.TimerResponse{}, "ID", "Appearance", "CreatedAt", "UpdatedAt"),
			cmpopts.EquateEmpty(),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Timer response mismatch (-want +got):\n%s", diff)
		}
		require.JSONEq(t, `{"message":"Sale ends in","bg_color":"#111111"}`, string(actual.Appearance))
	})

	s.Run("Normal case: Evergreen timer created without window", func() {
		t := s.T()

		dbtest.CreateTestShop(t, s.DB, "alpha.myshopify.com", "Alpha Shop")
		token := authtest.LoginShop(t, s.Router, "alpha.myshopify.com", "password123")

		reqBody := builder.NewTimerBuilder().
			AsEvergreen(90).
			WithTargeting("products", "prod-1", "prod-2").
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, timersURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code)

		var actual response.TimerResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actual)
		require.NoError(t, err)
		require.Equal(t, "evergreen", actual.Kind)
		require.Equal(t, "active", actual.Status, "Evergreen timers are always live while enabled")
		require.Equal(t, int32(90), actual.DurationMinutes)
		require.Equal(t, "products", actual.TargetingScope)
		require.ElementsMatch(t, []string{"prod-1", "prod-2"}, actual.TargetingIDs)
		require.Nil(t, actual.StartsAt)
		require.Nil(t, actual.EndsAt)
	})

	s.Run("Error case: Fixed timer with inverted window is rejected", func() {
		t := s.T()

		dbtest.CreateTestShop(t, s.DB, "alpha.myshopify.com", "Alpha Shop")
		token := authtest.LoginShop(t, s.Router, "alpha.myshopify.com", "password123")

		endsAt := time.Now().Add(1 * time.Hour)
		startsAt := endsAt.Add(2 * time.Hour)
		reqBody := builder.NewTimerBuilder().
			WithWindow(startsAt, endsAt).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, timersURL, reqBody, token)
		require.Equal(t, http.StatusBadRequest, w.Code, "Should reject end before start")
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		reqBody := builder.NewTimerBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, timersURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, "Should reject unauthorized access")
	})
}

// =============================================================================
// TestGetTimer - Timer detail retrieval API tests
// =============================================================================

func (s *TimerSuite) TestGetTimer() {
	s.Run("Normal case: Timer retrieved successfully by ID", func() {
		t := s.T()

		shopID := dbtest.CreateTestShop(t, s.DB, "alpha.myshopify.com", "Alpha Shop")
		token := authtest.LoginShop(t, s.Router, "alpha.myshopify.com", "password123")

		timerID := dbtest.CreateTestTimer(t, s.DB, dbtest.TimerFixture{
			ShopID:          shopID,
			Kind:            "evergreen",
			DurationMinutes: 30,
			Active:          true,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, timersURL+"/"+timerID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code, "Should retrieve timer successfully")

		var actual response.TimerResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actual)
		require.NoError(t, err)
		require.Equal(t, timerID.String(), actual.ID)
		require.Equal(t, "evergreen", actual.Kind)
		require.Equal(t, int32(30), actual.DurationMinutes)
	})

	s.Run("Normal case: Expired fixed timer reports expired status", func() {
		t := s.T()

		shopID := dbtest.CreateTestShop(t, s.DB, "alpha.myshopify.com", "Alpha Shop")
		token := authtest.LoginShop(t, s.Router, "alpha.myshopify.com", "password123")

		startsAt := time.Now().Add(-3 * time.Hour)
		endsAt := time.Now().Add(-1 * time.Hour)
		timerID := dbtest.CreateTestTimer(t, s.DB, dbtest.TimerFixture{
			ShopID:   shopID,
			Kind:     "fixed",
			StartsAt: &startsAt,
			EndsAt:   &endsAt,
			Active:   true,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, timersURL+"/"+timerID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var actual response.TimerResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actual)
		require.NoError(t, err)
		require.Equal(t, "expired", actual.Status)
	})

	s.Run("Error case: Timer of another shop is not found", func() {
		t := s.T()

		otherShopID := dbtest.CreateTestShop(t, s.DB, "other.myshopify.com", "Other Shop")
		dbtest.CreateTestShop(t, s.DB, "alpha.myshopify.com", "Alpha Shop")
		token := authtest.LoginShop(t, s.Router, "alpha.myshopify.com", "password123")

		timerID := dbtest.CreateTestTimer(t, s.DB, dbtest.TimerFixture{
			ShopID:          otherShopID,
			Kind:            "evergreen",
			DurationMinutes: 15,
			Active:          true,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, timersURL+"/"+timerID.String(), nil, token)
		require.Equal(t, http.StatusNotFound, w.Code, "Cross-shop access should look like absence")
	})

	s.Run("Error case: Unknown timer ID returns 404", func() {
		t := s.T()

		dbtest.CreateTestShop(t, s.DB, "alpha.myshopify.com", "Alpha Shop")
		token := authtest.LoginShop(t, s.Router, "alpha.myshopify.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, timersURL+"/"+uuid.New().String(), nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestListTimers - Timer list API tests (keyset pagination)
// =============================================================================

func (s *TimerSuite) TestListTimers() {
	type listResponse struct {
		Timers     []*response.TimerListItemResponse `json:"timers"`
		NextCursor string                            `json:"next_cursor"`
	}

	s.Run("Normal case: Timers listed newest first", func() {
		t := s.T()

		shopID := dbtest.CreateTestShop(t, s.DB, "alpha.myshopify.com", "Alpha Shop")
		token := authtest.LoginShop(t, s.Router, "alpha.myshopify.com", "password123")

		base := time.Now().Add(-1 * time.Hour)
		var ids []uuid.UUID
		for i := 0; i < 3; i++ {
			id := dbtest.CreateTestTimer(t, s.DB, dbtest.TimerFixture{
				ShopID:          shopID,
				Kind:            "evergreen",
				DurationMinutes: 10,
				Active:          true,
				CreatedAt:       base.Add(time.Duration(i) * time.Minute),
			})
			ids = append(ids, id)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, timersURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var actual listResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actual)
		require.NoError(t, err)
		require.Len(t, actual.Timers, 3)
		require.Equal(t, ids[2].String(), actual.Timers[0].ID, "Newest timer should come first")
		require.Equal(t, ids[0].String(), actual.Timers[2].ID)
		require.Empty(t, actual.NextCursor, "No further pages expected")
	})

	s.Run("Normal case: Pagination walks all pages without overlap", func() {
		t := s.T()

		shopID := dbtest.CreateTestShop(t, s.DB, "alpha.myshopify.com", "Alpha Shop")
		token := authtest.LoginShop(t, s.Router, "alpha.myshopify.com", "password123")

		base := time.Now().Add(-1 * time.Hour)
		for i := 0; i < 5; i++ {
			dbtest.CreateTestTimer(t, s.DB, dbtest.TimerFixture{
				ShopID:          shopID,
				Kind:            "evergreen",
				DurationMinutes: 10,
				Active:          true,
				CreatedAt:       base.Add(time.Duration(i) * time.Minute),
			})
		}

		seen := map[string]bool{}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, timersURL+"?limit=2", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var page listResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Len(t, page.Timers, 2)
		require.NotEmpty(t, page.NextCursor)
		for _, it := range page.Timers {
			seen[it.ID] = true
		}

		for page.NextCursor != "" {
			url := fmt.Sprintf("%s?limit=2&after=%s", timersURL, page.NextCursor)
			w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
			require.Equal(t, http.StatusOK, w.Code)
			page = listResponse{}
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
			for _, it := range page.Timers {
				require.False(t, seen[it.ID], "Pages must not overlap")
				seen[it.ID] = true
			}
		}
		require.Len(t, seen, 5, "All timers should be visited exactly once")
	})

	s.Run("Normal case: Kind and active filters narrow the list", func() {
		t := s.T()

		shopID := dbtest.CreateTestShop(t, s.DB, "alpha.myshopify.com", "Alpha Shop")
		token := authtest.LoginShop(t, s.Router, "alpha.myshopify.com", "password123")

		startsAt := time.Now().Add(-1 * time.Hour)
		endsAt := time.Now().Add(1 * time.Hour)
		fixedID := dbtest.CreateTestTimer(t, s.DB, dbtest.TimerFixture{
			ShopID:   shopID,
			Kind:     "fixed",
			StartsAt: &startsAt,
			EndsAt:   &endsAt,
			Active:   true,
		})
		dbtest.CreateTestTimer(t, s.DB, dbtest.TimerFixture{
			ShopID:          shopID,
			Kind:            "evergreen",
			DurationMinutes: 10,
			Active:          false,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, timersURL+"?kind=fixed&active=true", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var actual listResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Len(t, actual.Timers, 1)
		require.Equal(t, fixedID.String(), actual.Timers[0].ID)
	})

	s.Run("Normal case: Other shops' timers never appear", func() {
		t := s.T()

		otherShopID := dbtest.CreateTestShop(t, s.DB, "other.myshopify.com", "Other Shop")
		dbtest.CreateTestShop(t, s.DB, "alpha.myshopify.com", "Alpha Shop")
		token := authtest.LoginShop(t, s.Router, "alpha.myshopify.com", "password123")

		dbtest.CreateTestTimer(t, s.DB, dbtest.TimerFixture{
			ShopID:          otherShopID,
			Kind:            "evergreen",
			DurationMinutes: 10,
			Active:          true,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, timersURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var actual listResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Empty(t, actual.Timers)
	})

	s.Run("Error case: Malformed cursor is rejected", func() {
		t := s.T()

		dbtest.CreateTestShop(t, s.DB, "alpha.myshopify.com", "Alpha Shop")
		token := authtest.LoginShop(t, s.Router, "alpha.myshopify.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, timersURL+"?after=not-a-cursor", nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestUpdateTimer - Timer update API tests (partial merge)
// =============================================================================

func (s *TimerSuite) TestUpdateTimer() {
	s.Run("Normal case: Untouched fields survive a partial update", func() {
		t := s.T()

		shopID := dbtest.CreateTestShop(t, s.DB, "alpha.myshopify.com", "Alpha Shop")
		token := authtest.LoginShop(t, s.Router, "alpha.myshopify.com", "password123")

		timerID := dbtest.CreateTestTimer(t, s.DB, dbtest.TimerFixture{
			ShopID:          shopID,
			Kind:            "evergreen",
			DurationMinutes: 30,
			TargetingScope:  "products",
			TargetingIDs:    []string{"prod-1"},
			Appearance:      map[string]any{"message": "Hurry!"},
			Active:          true,
		})

		newDuration := int32(45)
		reqBody := map[string]any{"duration_minutes": newDuration}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, timersURL+"/"+timerID.String(), reqBody, token)
		require.Equal(t, http.StatusOK, w.Code, "Should update timer successfully")

		var actual response.TimerResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, int32(45), actual.DurationMinutes)
		require.Equal(t, "products", actual.TargetingScope, "Targeting should be untouched")
		require.Equal(t, []string{"prod-1"}, actual.TargetingIDs)
		require.JSONEq(t, `{"message":"Hurry!"}`, string(actual.Appearance))
	})

	s.Run("Normal case: Fixed window can be moved", func() {
		t := s.T()

		shopID := dbtest.CreateTestShop(t, s.DB, "alpha.myshopify.com", "Alpha Shop")
		token := authtest.LoginShop(t, s.Router, "alpha.myshopify.com", "password123")

		startsAt := time.Now().Add(1 * time.Hour)
		endsAt := startsAt.Add(2 * time.Hour)
		timerID := dbtest.CreateTestTimer(t, s.DB, dbtest.TimerFixture{
			ShopID:   shopID,
			Kind:     "fixed",
			StartsAt: &startsAt,
			EndsAt:   &endsAt,
			Active:   true,
		})

		newEnd := endsAt.Add(24 * time.Hour).Truncate(time.Second)
		reqBody := map[string]any{"ends_at": newEnd.Format(time.RFC3339)}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, timersURL+"/"+timerID.String(), reqBody, token)
		require.Equal(t, http.StatusOK, w.Code)

		var actual response.TimerResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.NotNil(t, actual.EndsAt)
		require.Equal(t, newEnd.Unix(), *actual.EndsAt)
	})

	s.Run("Error case: Update that inverts the window is rejected", func() {
		t := s.T()

		shopID := dbtest.CreateTestShop(t, s.DB, "alpha.myshopify.com", "Alpha Shop")
		token := authtest.LoginShop(t, s.Router, "alpha.myshopify.com", "password123")

		startsAt := time.Now().Add(1 * time.Hour)
		endsAt := startsAt.Add(2 * time.Hour)
		timerID := dbtest.CreateTestTimer(t, s.DB, dbtest.TimerFixture{
			ShopID:   shopID,
			Kind:     "fixed",
			StartsAt: &startsAt,
			EndsAt:   &endsAt,
			Active:   true,
		})

		reqBody := map[string]any{"ends_at": startsAt.Add(-1 * time.Hour).Format(time.RFC3339)}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, timersURL+"/"+timerID.String(), reqBody, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: Updating another shop's timer returns 404", func() {
		t := s.T()

		otherShopID := dbtest.CreateTestShop(t, s.DB, "other.myshopify.com", "Other Shop")
		dbtest.CreateTestShop(t, s.DB, "alpha.myshopify.com", "Alpha Shop")
		token := authtest.LoginShop(t, s.Router, "alpha.myshopify.com", "password123")

		timerID := dbtest.CreateTestTimer(t, s.DB, dbtest.TimerFixture{
			ShopID:          otherShopID,
			Kind:            "evergreen",
			DurationMinutes: 15,
			Active:          true,
		})

		reqBody := map[string]any{"duration_minutes": 60}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, timersURL+"/"+timerID.String(), reqBody, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestSetTimerActive - Activation toggle API tests
// =============================================================================

func (s *TimerSuite) TestSetTimerActive() {
	s.Run("Normal case: Timer can be paused and resumed", func() {
		t := s.T()

		shopID := dbtest.CreateTestShop(t, s.DB, "alpha.myshopify.com", "Alpha Shop")
		token := authtest.LoginShop(t, s.Router, "alpha.myshopify.com", "password123")

		timerID := dbtest.CreateTestTimer(t, s.DB, dbtest.TimerFixture{
			ShopID:          shopID,
			Kind:            "evergreen",
			DurationMinutes: 30,
			Active:          true,
		})
		url := timersURL + "/" + timerID.String() + "/active"

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, map[string]any{"active": false}, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, timersURL+"/"+timerID.String(), nil, token)
		require.Equal(t, http.StatusOK, gw.Code)
		var actual response.TimerResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &actual))
		require.False(t, actual.Active)
		require.Equal(t, "inactive", actual.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, url, map[string]any{"active": true}, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		gw = httptest.PerformRequest(t, s.Router, http.MethodGet, timersURL+"/"+timerID.String(), nil, token)
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &actual))
		require.True(t, actual.Active)
	})

	s.Run("Error case: Missing active flag fails binding", func() {
		t := s.T()

		shopID := dbtest.CreateTestShop(t, s.DB, "alpha.myshopify.com", "Alpha Shop")
		token := authtest.LoginShop(t, s.Router, "alpha.myshopify.com", "password123")

		timerID := dbtest.CreateTestTimer(t, s.DB, dbtest.TimerFixture{
			ShopID:          shopID,
			Kind:            "evergreen",
			DurationMinutes: 30,
			Active:          true,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, timersURL+"/"+timerID.String()+"/active", map[string]any{}, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestDeleteTimer - Timer deletion API tests
// =============================================================================

func (s *TimerSuite) TestDeleteTimer() {
	s.Run("Normal case: Deleted timer is gone", func() {
		t := s.T()

		shopID := dbtest.CreateTestShop(t, s.DB, "alpha.myshopify.com", "Alpha Shop")
		token := authtest.LoginShop(t, s.Router, "alpha.myshopify.com", "password123")

		timerID := dbtest.CreateTestTimer(t, s.DB, dbtest.TimerFixture{
			ShopID:          shopID,
			Kind:            "evergreen",
			DurationMinutes: 30,
			Active:          true,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, timersURL+"/"+timerID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, "Should delete timer successfully")

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, timersURL+"/"+timerID.String(), nil, token)
		require.Equal(t, http.StatusNotFound, gw.Code)
	})

	s.Run("Error case: Deleting another shop's timer returns 404 and keeps it", func() {
		t := s.T()

		otherShopID := dbtest.CreateTestShop(t, s.DB, "other.myshopify.com", "Other Shop")
		dbtest.CreateTestShop(t, s.DB, "alpha.myshopify.com", "Alpha Shop")
		token := authtest.LoginShop(t, s.Router, "alpha.myshopify.com", "password123")
		otherToken := authtest.LoginShop(t, s.Router, "other.myshopify.com", "password123")

		timerID := dbtest.CreateTestTimer(t, s.DB, dbtest.TimerFixture{
			ShopID:          otherShopID,
			Kind:            "evergreen",
			DurationMinutes: 15,
			Active:          true,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, timersURL+"/"+timerID.String(), nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, timersURL+"/"+timerID.String(), nil, otherToken)
		require.Equal(t, http.StatusOK, gw.Code, "Owner should still see the timer")
	})
}
