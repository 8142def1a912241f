package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	ApplyToEvent(c *ginext.Context)
	InviteToEvent(c *ginext.Context)
	GetEventBookings(c *ginext.Context)
	SelectBooking(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	CompleteBooking(c *ginext.Context)
	RequestBookingCancel(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CreateMusician(c *ginext.Context)
	GetMusician(c *ginext.Context)
	ListMusicians(c *ginext.Context)
	GetMusicianBookings(c *ginext.Context)
	CreateVenue(c *ginext.Context)
	GetVenue(c *ginext.Context)
	ListVenues(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/:id/bookings", h.GetEventBookings)

		// Bookings
		api.POST("/events/:id/apply", h.ApplyToEvent)
		api.POST("/events/:id/invite", h.InviteToEvent)
		api.POST("/bookings/:id/select", h.SelectBooking)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/complete", h.CompleteBooking)
		api.POST("/bookings/:id/cancel-request", h.RequestBookingCancel)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		// Musicians
		api.POST("/musicians", h.CreateMusician)
		api.GET("/musicians", h.ListMusicians)
		api.GET("/musicians/:id", h.GetMusician)
		api.GET("/musicians/:id/bookings", h.GetMusicianBookings)

		// Venues
		api.POST("/venues", h.CreateVenue)
		api.GET("/venues", h.ListVenues)
		api.GET("/venues/:id", h.GetVenue)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
