package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

type stubHandler struct{ hit string }

func (s *stubHandler) mark(name string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		s.hit = name
		c.Status(http.StatusNoContent)
	}
}

func (s *stubHandler) PublishRide(c *ginext.Context)      { s.mark("PublishRide")(c) }
func (s *stubHandler) GetRide(c *ginext.Context)          { s.mark("GetRide")(c) }
func (s *stubHandler) SearchRides(c *ginext.Context)      { s.mark("SearchRides")(c) }
func (s *stubHandler) StartRide(c *ginext.Context)        { s.mark("StartRide")(c) }
func (s *stubHandler) CompleteRide(c *ginext.Context)     { s.mark("CompleteRide")(c) }
func (s *stubHandler) CancelRide(c *ginext.Context)       { s.mark("CancelRide")(c) }
func (s *stubHandler) BookRide(c *ginext.Context)         { s.mark("BookRide")(c) }
func (s *stubHandler) CancelBooking(c *ginext.Context)    { s.mark("CancelBooking")(c) }
func (s *stubHandler) GetRiderBookings(c *ginext.Context) { s.mark("GetRiderBookings")(c) }
func (s *stubHandler) SubmitReview(c *ginext.Context)     { s.mark("SubmitReview")(c) }
func (s *stubHandler) GetUserRating(c *ginext.Context)    { s.mark("GetUserRating")(c) }
func (s *stubHandler) GetUserReviews(c *ginext.Context)   { s.mark("GetUserReviews")(c) }

func TestInitRouter_Routes(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodPost, "/api/rides", "PublishRide"},
		{http.MethodPost, "/api/rides/search", "SearchRides"},
		{http.MethodGet, "/api/rides/abc", "GetRide"},
		{http.MethodPost, "/api/rides/abc/start", "StartRide"},
		{http.MethodPost, "/api/rides/abc/complete", "CompleteRide"},
		{http.MethodPost, "/api/rides/abc/cancel", "CancelRide"},
		{http.MethodPost, "/api/rides/abc/book", "BookRide"},
		{http.MethodPost, "/api/bookings/abc/cancel", "CancelBooking"},
		{http.MethodGet, "/api/riders/abc/bookings", "GetRiderBookings"},
		{http.MethodPost, "/api/reviews", "SubmitReview"},
		{http.MethodGet, "/api/users/abc/rating", "GetUserRating"},
		{http.MethodGet, "/api/users/abc/reviews", "GetUserReviews"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			h := &stubHandler{}
			r := InitRouter("test", h)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tt.want, h.hit)
		})
	}
}

func TestInitRouter_HealthAndMetrics(t *testing.T) {
	r := InitRouter("test", &stubHandler{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
