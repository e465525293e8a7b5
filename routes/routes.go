package routes

import (
	"time"

	"hobyhub/handlers"
	"hobyhub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDiscoveryRoutes registers the feed, filter and location endpoints.
func RegisterDiscoveryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/feed", hb.Discovery.GetFeed)
		api.POST("/feed/refresh", hb.Discovery.RefreshFeed)
		api.POST("/feed/more", hb.Discovery.LoadMore)

		api.GET("/filters", hb.Discovery.GetFilters)
		api.PUT("/filters", hb.Discovery.UpdateFilters)
		api.POST("/filters/apply", hb.Discovery.ApplyFilters)
		api.POST("/filters/clear", hb.Discovery.ClearFilters)

		api.PUT("/sort", hb.Discovery.SetSort)
		api.PUT("/mode", hb.Discovery.SetMode)

		api.POST("/location/detect", hb.Discovery.DetectLocation)
	}
}

// RegisterActivityRoutes registers listing detail and category endpoints.
func RegisterActivityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/activities/:id", hb.Activities.GetActivity)
		api.POST("/activities/:id/handoff", hb.Activities.StoreHandoff)

		api.GET("/categories", hb.Categories.ListCategories)
		api.GET("/categories/:id/subcategories", hb.Categories.ListSubCategories)

		api.GET("/favorites", hb.Favorites.List)
		api.POST("/favorites/toggle", hb.Favorites.Toggle)
	}
}

// RegisterAuthRoutes registers OTP login and profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/otp", hb.Auth.RequestOTP)
		api.POST("/verify", hb.Auth.VerifyOTP)
		api.POST("/signout", hb.Auth.SignOut)
	}

	profile := r.Group("/api/profile")
	{
		profile.GET("", hb.Auth.GetProfile)
		profile.PUT("", hb.Auth.UpdateProfile)
	}
}

// RegisterVendorRoutes registers the registration wizard and listing
// management endpoints. Listing management requires a valid vendor token.
func RegisterVendorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vendors")
	{
		api.GET("/register", hb.Vendors.GetWizard)
		api.POST("/register/step", hb.Vendors.SaveStep)
		api.POST("/register/submit", hb.Vendors.Submit)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("/classes", hb.Vendors.CreateClass)
		protected.PUT("/classes/:id", hb.Vendors.UpdateClass)
		protected.DELETE("/classes/:id", hb.Vendors.DeleteClass)
		protected.POST("/courses", hb.Vendors.CreateCourse)
		protected.PUT("/courses/:id", hb.Vendors.UpdateCourse)
		protected.DELETE("/courses/:id", hb.Vendors.DeleteCourse)
		protected.POST("/images", hb.Vendors.UploadImageMeta)
	}
}

// RegisterRoutes assembles CORS and every route group.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Session-ID"},
		ExposeHeaders:    []string{"X-Session-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)

	RegisterDiscoveryRoutes(r, hb)
	RegisterActivityRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterVendorRoutes(r, hb)
}
