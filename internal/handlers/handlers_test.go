package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{services.ErrNotFound, 404},
		{fmt.Errorf("%w: booking 7", services.ErrNotFound), 404},
		{services.ErrInvalidArgument, 400},
		{fmt.Errorf("%w: invalid status: bogus", services.ErrInvalidArgument), 400},
		{services.ErrConflict, 400},
		{fmt.Errorf("database exploded"), 500},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respondError(c, tc.err)
		assert.Equal(t, tc.code, w.Code, "error %v", tc.err)
	}
}

func TestRecommendPlannersRejectsBlankCriteria(t *testing.T) {
	r := gin.New()
	r.POST("/api/ai/recommend", RecommendPlanners(nil))

	for _, body := range []string{`{}`, `{"criteria":""}`, `{"criteria":"   "}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/ai/recommend", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, 400, w.Code, "body %s", body)
		assert.Equal(t, "Criteria cannot be empty.", w.Body.String())
	}
}

func TestUpdateBookingStatusRejectsBadID(t *testing.T) {
	r := gin.New()
	r.PUT("/bookings/:id/status", UpdateBookingStatus(nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/bookings/abc/status?status=CONFIRMED", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestMarkPaidRequiresAmount(t *testing.T) {
	r := gin.New()
	r.PUT("/booking/payment/:id", MarkPaid(nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/booking/payment/1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "amount")
}

func TestCreateBookingRejectsBadDate(t *testing.T) {
	r := gin.New()
	r.POST("/booking", CreateBooking(nil))

	form := "name=A&email=a%40b.com&eventType=Wedding&eventName=X&eventDate=12-04-2026&venue=Hall&plannerId=1"
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "YYYY-MM-DD")
}
