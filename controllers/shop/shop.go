package shopControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ricardo-1112/shuiba-order/config"
)

// GET /slots
func GetPickupSlots(shop config.Shop) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, shop.PickupSlots)
	}
}

// GET /categories
func GetCategories(shop config.Shop) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, shop.Categories)
	}
}
