package routes

import (
	"koovappally_front_end/internal/handlers"
	"koovappally_front_end/internal/handlers/admin"
	"koovappally_front_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.Use(middleware.LoadSession())

	// Auth
	r.POST("/auth/login", handlers.Login)
	r.POST("/auth/register", handlers.Register)
	r.POST("/auth/logout", handlers.Logout)
	r.GET("/auth/:provider", handlers.BeginAuth)
	r.GET("/auth/:provider/callback", handlers.CallbackAuth)
	r.GET("/me", handlers.Me)

	// Catalogue + recherche par image (publics)
	r.GET("/products", handlers.ListProducts)
	r.GET("/image-search/health", handlers.ImageSearchHealth)
	r.POST("/image-search", middleware.ImageSearchRateLimit(), handlers.SearchByImage)

	// Panier / wishlist : accessibles en invité, le handler bascule de mode
	r.GET("/cart", handlers.GetCart)
	r.POST("/cart/add", handlers.AddToCart)
	r.PATCH("/cart/quantity", handlers.UpdateCartQuantity)
	r.DELETE("/cart/:productId", handlers.RemoveFromCart)
	r.DELETE("/cart", handlers.ClearCart)
	r.GET("/wishlist", handlers.GetWishlist)
	r.POST("/wishlist/add", handlers.AddToWishlist)
	r.DELETE("/wishlist/:productId", handlers.RemoveFromWishlist)

	// Badges du header
	r.GET("/counts", handlers.GetCounts)
	r.GET("/ws/counts", handlers.CountsWebSocket)

	// Espace client connecté
	authed := r.Group("/", middleware.RequireAuth())
	{
		authed.PUT("/profile", handlers.UpdateProfile)
		authed.PUT("/change-password", handlers.ChangePassword)
		authed.GET("/addresses", handlers.ListAddresses)
		authed.POST("/addresses", handlers.CreateAddress)
		authed.PUT("/addresses/:id", handlers.UpdateAddress)
		authed.DELETE("/addresses/:id", handlers.DeleteAddress)
		authed.PATCH("/addresses/:id/default", handlers.SetDefaultAddress)
		authed.POST("/checkout/selection", handlers.SaveCheckoutSelection)
		authed.GET("/checkout/selection", handlers.GetCheckoutSelection)
		authed.GET("/preferences/location", handlers.GetBuyerLocation)
		authed.PUT("/preferences/location", handlers.SetBuyerLocation)
	}

	// Back-office
	adminGroup := r.Group("/admin", middleware.RequireRole("admin"))
	{
		adminGroup.GET("/overview", admin.GetOverview)
		adminGroup.GET("/vendors", admin.GetVendorsPage)
		adminGroup.POST("/vendors", admin.CreateVendor)
		adminGroup.PUT("/vendors/:id", admin.UpdateVendor)
		adminGroup.POST("/vendors/validate-field", admin.ValidateVendorField)
		adminGroup.POST("/intakes", admin.CreateWoodIntake)
		adminGroup.PUT("/intakes/:id/status", admin.UpdateIntakeStatus)
		adminGroup.GET("/stock", admin.GetStock)
		adminGroup.POST("/stock", admin.CreateStock)
		adminGroup.GET("/users", admin.GetUsers)
		adminGroup.GET("/users/:id", admin.GetUser)
		adminGroup.POST("/wood-quality/predict", admin.PredictWoodQuality)
		adminGroup.POST("/wood-quality/samples", admin.AddWoodQualitySample)
		adminGroup.POST("/wood-quality/train", admin.TrainWoodQuality)
	}
}
