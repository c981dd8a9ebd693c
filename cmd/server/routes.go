package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"

	"fundilink.backend/internal/domain/entities"
	"fundilink.backend/internal/interfaces/http/handlers"
	"fundilink.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	fundiHandler   *handlers.FundiHandler
	catalogHandler *handlers.CatalogHandler
	adminHandler   *handlers.AdminHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", d.authHandler.SignUp)
			auth.POST("/signin", d.authHandler.SignIn)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
			auth.POST("/signout", d.authMiddleware, d.authHandler.SignOut)
		}

		// Fundi onboarding (protected)
		fundi := v1.Group("/fundi")
		fundi.Use(d.authMiddleware)
		{
			fundi.POST("/apply",
				middleware.RequireRole(entities.UserRoleUser, entities.UserRoleAdmin, entities.UserRoleSuperAdmin),
				middleware.IdempotencyMiddleware(),
				d.fundiHandler.Apply,
			)
			fundi.GET("/status", d.fundiHandler.Status)
			fundi.GET("/pending", middleware.RequireAdmin(), d.fundiHandler.ListPending)
			fundi.GET("/all", middleware.RequireAdmin(), d.fundiHandler.ListAll)
			fundi.PATCH("/verify/:fundiId", middleware.RequireAdmin(), d.fundiHandler.Verify)
		}

		// Catalog routes (public read, admin write)
		services := v1.Group("/services")
		{
			services.GET("", d.catalogHandler.ListServices)
			services.GET("/:id", d.catalogHandler.GetService)
			services.POST("", d.authMiddleware, middleware.RequireAdmin(), d.catalogHandler.CreateService)
			services.PATCH("/:id", d.authMiddleware, middleware.RequireAdmin(), d.catalogHandler.RenameService)
		}
		locations := v1.Group("/locations")
		{
			locations.GET("", d.catalogHandler.ListLocations)
			locations.GET("/:id", d.catalogHandler.GetLocation)
			locations.POST("", d.authMiddleware, middleware.RequireAdmin(), d.catalogHandler.CreateLocation)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.GET("/stats", d.adminHandler.Stats)
		}
	}
}

func registerHealthRoute(r *gin.Engine, health *handlers.HealthHandler, metricsHandler http.Handler) {
	r.GET("/health", health.Health)
	r.GET("/metrics", gin.WrapH(metricsHandler))
}

// newHTTPHandler wraps the router with the browser origin policy
func newHTTPHandler(r *gin.Engine, allowedOrigins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{
			"Accept", "Authorization", "Content-Type",
			middleware.SessionHeader, middleware.IdempotencyHeader, middleware.RequestIDHeader,
		},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "X-Idempotency-Hit"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler(r)
}
