package routes

import (
	"net/http"

	"sudrsya/admin"
	"sudrsya/auth"
	"sudrsya/cart"
	"sudrsya/checkout"
	"sudrsya/coupons"
	"sudrsya/invoice"
	"sudrsya/middleware"
	"sudrsya/products"
	"sudrsya/ratelim"
	"sudrsya/settings"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/productpic/*filepath", http.Dir("static/productpic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/login", rl.Limit(auth.AdminLogin))
}

func AddProductRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/products", rl.Limit(products.GetProducts))
	router.GET("/api/products/:id", rl.Limit(products.GetProduct))
}

func AddCartRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/cart", rl.Limit(cart.GetCart))
	router.GET("/api/cart/offer", rl.Limit(cart.GetOffer))
	router.POST("/api/cart/items", rl.Limit(cart.AddToCart))
	router.PATCH("/api/cart/items/:id", rl.Limit(cart.ChangeQuantity))
	router.DELETE("/api/cart/items/:id", rl.Limit(cart.RemoveFromCart))
	router.POST("/api/cart/coupon", rl.Limit(cart.ApplyCoupon))
	router.DELETE("/api/cart/coupon", rl.Limit(cart.RemoveCoupon))
}

func AddCheckoutRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/checkout/whatsapp", rl.Limit(checkout.WhatsAppHandoff))
}

func AddSettingsRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/settings", rl.Limit(settings.GetSettings))
	router.PUT("/api/admin/settings", middleware.Authenticate(settings.UpdateSettings))
}

func AddAdminRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/admin/products", middleware.Authenticate(products.CreateProduct))
	router.PUT("/api/admin/products/:id", middleware.Authenticate(products.UpdateProduct))
	router.DELETE("/api/admin/products/:id", middleware.Authenticate(products.DeleteProduct))
	router.POST("/api/admin/products/:id/images", middleware.Authenticate(products.UploadProductImages))

	router.GET("/api/admin/coupons", middleware.Authenticate(coupons.GetCoupons))
	router.POST("/api/admin/coupons", middleware.Authenticate(coupons.CreateCoupon))
	router.PATCH("/api/admin/coupons/:id/toggle", middleware.Authenticate(coupons.ToggleCoupon))
	router.DELETE("/api/admin/coupons/:id", middleware.Authenticate(coupons.DeleteCoupon))

	router.GET("/api/admin/analytics", middleware.Authenticate(admin.GetAnalytics))
	router.GET("/api/admin/invoice/:token", middleware.Authenticate(invoice.GenerateInvoice))
}

func RoutesWrapper(router *httprouter.Router, rl *ratelim.RateLimiter) {
	AddStaticRoutes(router)
	AddAuthRoutes(router, rl)
	AddProductRoutes(router, rl)
	AddCartRoutes(router, rl)
	AddCheckoutRoutes(router, rl)
	AddSettingsRoutes(router, rl)
	AddAdminRoutes(router, rl)
}
