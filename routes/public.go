package routes

import (
	"github.com/gin-gonic/gin"

	accountControllers "github.com/Ricardo-1112/shuiba-order/controllers/account"
	orderControllers "github.com/Ricardo-1112/shuiba-order/controllers/order"
	productControllers "github.com/Ricardo-1112/shuiba-order/controllers/product"
	shopControllers "github.com/Ricardo-1112/shuiba-order/controllers/shop"
)

// SetupPublicRoutes registers everything reachable without a session:
// registration, login, catalog browsing, the fixed enumerations, and the
// live order feed the admin panel subscribes to.
func SetupPublicRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", accountControllers.Register(deps.Accounts, deps.JWTSecret)) // POST /auth/register
		authGroup.POST("/login", accountControllers.Login(deps.Accounts, deps.JWTSecret))       // POST /auth/login
	}

	r.GET("/products", productControllers.GetProducts(deps.Catalog))        // GET /products
	r.GET("/products/:id", productControllers.GetProductByID(deps.Catalog)) // GET /products/:id
	r.GET("/slots", shopControllers.GetPickupSlots(deps.Shop))              // GET /slots
	r.GET("/categories", shopControllers.GetCategories(deps.Shop))          // GET /categories

	r.GET("/ws/orders", orderControllers.OrderFeedHandler) // GET /ws/orders
}
