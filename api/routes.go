package api

import (
	"github.com/go-chi/chi/v5"
)

const adminRole = "Admin"

// setupRoutes declares the route table. Reads on blogs and tags are open,
// reports need a valid token, and every mutation needs the Admin role.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		// Public reads
		r.Get("/blogs", handlers.blogHandler.getAll())
		r.Get("/blogs/{blogID}", handlers.blogHandler.get())
		r.Get("/tags", handlers.tagHandler.getAll())
		r.Get("/tags/{tagID}", handlers.tagHandler.get())

		// Authentication endpoints
		r.Post("/auth/login", handlers.authHandler.login())
		r.Post("/auth/register", handlers.authHandler.register())

		// Demo reset endpoint
		r.Get("/seed-db", handlers.databaseHandler.seed())

		// Reports require a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(auth.authenticate)

			r.Post("/blog-reports/inner-join", handlers.reportHandler.innerJoin())
			r.Post("/blog-reports/left-join", handlers.reportHandler.leftJoin())
		})

		// Mutations are admin only
		r.Group(func(r chi.Router) {
			r.Use(auth.authenticate)
			r.Use(auth.requireRole(adminRole))

			r.Post("/blogs", handlers.blogHandler.create())
			r.Put("/blogs/{blogID}", handlers.blogHandler.update())
			r.Delete("/blogs/{blogID}", handlers.blogHandler.delete())

			r.Post("/tags", handlers.tagHandler.create())
			r.Put("/tags/{tagID}", handlers.tagHandler.update())
			r.Delete("/tags/{tagID}", handlers.tagHandler.delete())
		})
	})
}
