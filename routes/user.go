package routes

import (
	"github.com/gin-gonic/gin"

	accountControllers "github.com/Ricardo-1112/shuiba-order/controllers/account"
	cartControllers "github.com/Ricardo-1112/shuiba-order/controllers/cart"
	orderControllers "github.com/Ricardo-1112/shuiba-order/controllers/order"
	"github.com/Ricardo-1112/shuiba-order/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(deps.JWTSecret))
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(deps.Cart))                          // GET /user/cart
			cartGroup.POST("", cartControllers.AddCartItem(deps.Cart, deps.Catalog))       // POST /user/cart
			cartGroup.POST("/qty", cartControllers.ChangeQty(deps.Cart))                   // POST /user/cart/qty
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(deps.Cart))    // DELETE /user/cart/:product_id
			cartGroup.DELETE("", cartControllers.ClearCart(deps.Cart))                     // DELETE /user/cart
		}

		// ──────────────── Orders ────────────────
		userGroup.POST("/orders", orderControllers.PlaceOrder(deps.Orders, deps.Cart)) // POST /user/orders
		userGroup.GET("/orders", orderControllers.GetMyOrders(deps.Orders))            // GET /user/orders

		// ──────────────── Session ────────────────
		userGroup.POST("/logout", accountControllers.Logout(deps.Cart)) // POST /user/logout
	}
}
