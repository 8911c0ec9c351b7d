package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/Ricardo-1112/shuiba-order/controllers/order"
	productControllers "github.com/Ricardo-1112/shuiba-order/controllers/product"
	"github.com/Ricardo-1112/shuiba-order/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a JWT with
// the admin flag; the engines check the acting session a second time.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(deps.JWTSecret), middleware.AdminOnly)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(deps.Catalog))    // POST /admin/products
			productAdmin.PUT("/:id", productControllers.UpdateProduct(deps.Catalog)) // PUT /admin/products/:id
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(deps.Orders))                        // GET /admin/orders
			orderAdmin.DELETE("", orderControllers.ClearOrders(deps.Orders))                      // DELETE /admin/orders
			orderAdmin.PUT("/:order_id/status", orderControllers.UpdateOrderStatus(deps.Orders)) // PUT /admin/orders/:order_id/status
		}
	}
}
