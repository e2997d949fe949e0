package routes

import (
	"net/http"

	"gatherly/booking"
	"gatherly/events"
	"gatherly/home"
	"gatherly/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/eventpic/*filepath", http.Dir("static/eventpic"))
}

func AddEventRoutes(router *httprouter.Router, h *events.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/events/events", h.GetEvents)
	router.GET("/api/events/events/count", h.GetEventsCount)
	router.POST("/api/events/event", rl.Limit(h.CreateEvent))
	router.GET("/api/events/event/:slug", h.GetEvent)
	router.PUT("/api/events/event/:slug", rl.Limit(h.EditEvent))
	router.POST("/api/events/event/:slug/banner", rl.Limit(h.UploadBanner))
	router.GET("/api/events/event/:slug/updates", h.EventUpdates)
}

func AddBookingRoutes(router *httprouter.Router, h *booking.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/bookings", rl.Limit(h.CreateBooking))
	router.GET("/api/bookings/event/:eventid", h.GetEventBookings)
	router.GET("/api/bookings/booking/:bookingid/ticket", h.PrintConfirmation)
}

func AddHomeRoutes(router *httprouter.Router, h *home.Handler) {
	router.GET("/api/home/:section", h.GetHomeContent)
}
