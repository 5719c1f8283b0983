package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the API router. Session endpoints are open; everything else
// requires the session cookie and passes through the auth middleware.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.sessionStatus)
		r.Post("/loginUser", h.loginUser)
		r.Post("/registerUser", h.registerUser)
		r.Post("/logout", h.logout)
		r.Post("/reset-password", h.resetPassword)
		r.Post("/reset-password/confirm", h.confirmResetPassword)
	})

	// routes that require an authenticated session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/getUserInfo", h.getUserInfo)

		r.Get("/therapists", h.listTherapists)
		r.Get("/therapists/{id}", h.getTherapist)
		r.Get("/therapists/{id}/availability", h.getAvailability)
		r.Post("/therapists/{id}/rate", h.rateTherapist)

		r.Post("/appointments/request", h.requestAppointment)
		r.Get("/user/appointments", h.listAppointments)

		r.Post("/messages/send", h.sendMessage)
	})

	return router
}

// InitDetection builds the router of the detection service listener. It
// shares the session middleware with the API router but serves only the
// annotation listing at its root.
func (h *Handler) InitDetection() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.listAnnotations)
	})

	return router
}
