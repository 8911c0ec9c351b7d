package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Ricardo-1112/shuiba-order/accounts"
	"github.com/Ricardo-1112/shuiba-order/cart"
	"github.com/Ricardo-1112/shuiba-order/catalog"
	"github.com/Ricardo-1112/shuiba-order/config"
	"github.com/Ricardo-1112/shuiba-order/orders"
)

// Deps carries the constructed stores and settings the route groups wire
// into their handlers.
type Deps struct {
	Catalog   *catalog.Catalog
	Cart      *cart.Engine
	Orders    *orders.Engine
	Accounts  *accounts.Directory
	Shop      config.Shop
	JWTSecret string
}

// SetupRoutes is the single entry point that wires up the public, user and
// admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public routes (no middleware)
	SetupPublicRoutes(r, deps)

	// User routes (JWT-protected)
	SetupUserRoutes(r, deps)

	// Admin routes (JWT + admin flag)
	SetupAdminRoutes(r, deps)
}
