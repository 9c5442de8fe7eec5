package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"github.com/Srivastav4327/RentMate/internal/access"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON, app.timeout)
	authMiddleware := standardMiddleware.Append(access.DefaultGate.Middleware(access.RequireAuth, app.identity))
	adminAuthMiddleware := standardMiddleware.Append(access.DefaultGate.Middleware(access.RequireAdmin, app.identity))
	wsMiddleware := alice.New(app.recoverPanic, app.logRequest, access.DefaultGate.Middleware(access.RequireAuth, app.identity))

	mux := pat.New()

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/user/refresh", standardMiddleware.ThenFunc(app.userHandler.Refresh))
	mux.Post("/user/sign_out", standardMiddleware.ThenFunc(app.userHandler.SignOut))
	mux.Get("/user/me", authMiddleware.ThenFunc(app.userHandler.Me))
	mux.Post("/user/devices", authMiddleware.ThenFunc(app.userHandler.RegisterDevice))

	// Catalog
	mux.Get("/catalog/options", standardMiddleware.ThenFunc(app.catalogHandler.Options))
	mux.Get("/catalog/categories", standardMiddleware.ThenFunc(app.catalogHandler.Categories))
	mux.Get("/catalog/cities", standardMiddleware.ThenFunc(app.catalogHandler.Cities))

	// Listings
	mux.Get("/listings/featured", standardMiddleware.ThenFunc(app.listingHandler.Featured))
	mux.Get("/listings/:id", standardMiddleware.ThenFunc(app.listingHandler.Get))
	mux.Get("/listings", standardMiddleware.ThenFunc(app.listingHandler.List))
	mux.Post("/listings", authMiddleware.ThenFunc(app.listingHandler.Create))
	mux.Put("/listings/:id", authMiddleware.ThenFunc(app.listingHandler.Update))
	mux.Del("/listings/:id", authMiddleware.ThenFunc(app.listingHandler.Delete))

	// Rentals
	mux.Post("/rentals/quote", standardMiddleware.ThenFunc(app.rentalHandler.Quote))
	mux.Post("/rentals/:id/status", authMiddleware.ThenFunc(app.rentalHandler.UpdateStatus))
	mux.Post("/rentals/:id/payment", authMiddleware.ThenFunc(app.rentalHandler.UpdatePayment))
	mux.Get("/rentals/:id", authMiddleware.ThenFunc(app.rentalHandler.Get))
	mux.Post("/rentals", authMiddleware.ThenFunc(app.rentalHandler.Create))
	mux.Get("/rentals", authMiddleware.ThenFunc(app.rentalHandler.List))

	// Admin
	mux.Get("/admin/dashboard", adminAuthMiddleware.ThenFunc(app.adminHandler.Overview))
	mux.Get("/admin/users", adminAuthMiddleware.ThenFunc(app.userHandler.List))
	mux.Post("/admin/commands", adminAuthMiddleware.ThenFunc(app.adminHandler.Execute))
	mux.Get("/admin/commands/:id", adminAuthMiddleware.ThenFunc(app.adminHandler.Command))

	// Notifications
	mux.Get("/ws", wsMiddleware.ThenFunc(app.hub.ServeWS))

	return mux
}
