package router

import (
	"net/http"

	"github.com/tendolkarurja/IPD/internal/metrics"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	PublishRide(c *ginext.Context)
	GetRide(c *ginext.Context)
	SearchRides(c *ginext.Context)
	StartRide(c *ginext.Context)
	CompleteRide(c *ginext.Context)
	CancelRide(c *ginext.Context)
	BookRide(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	GetRiderBookings(c *ginext.Context)
	SubmitReview(c *ginext.Context)
	GetUserRating(c *ginext.Context)
	GetUserReviews(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Rides
		api.POST("/rides", h.PublishRide)
		api.POST("/rides/search", h.SearchRides)
		api.GET("/rides/:id", h.GetRide)
		api.POST("/rides/:id/start", h.StartRide)
		api.POST("/rides/:id/complete", h.CompleteRide)
		api.POST("/rides/:id/cancel", h.CancelRide)

		// Bookings
		api.POST("/rides/:id/book", h.BookRide)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.GET("/riders/:id/bookings", h.GetRiderBookings)

		// Reviews
		api.POST("/reviews", h.SubmitReview)
		api.GET("/users/:id/rating", h.GetUserRating)
		api.GET("/users/:id/reviews", h.GetUserReviews)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})
	router.GET("/metrics", metrics.Handler())

	return router
}
